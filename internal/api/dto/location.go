package dto

type LocationResponse struct {
	LocationID            int    `json:"location_id"`
	Name                  string `json:"name"`
	BaselineTravelMinutes int64  `json:"baseline_travel_minutes"`
	DwellMinutes          int64  `json:"dwell_minutes"`
	OpensAt               string `json:"opens_at"`
	ClosesAt              string `json:"closes_at"`
}

type ListLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}
