package dto

// PlanRequest carries optional overrides; unset fields fall back to the
// server defaults.
type PlanRequest struct {
	StartTime      string   `json:"start_time" validate:"omitempty,clock"`
	TimeLimitHours *float64 `json:"time_limit_hours" validate:"omitempty,gte=0,lte=24"`
	Strategy       string   `json:"strategy" validate:"omitempty,max=32"`
	StrictWindows  *bool    `json:"strict_windows"`
}

type StopResponse struct {
	LocationID    int    `json:"location_id"`
	Name          string `json:"name"`
	TravelMinutes int64  `json:"travel_minutes"`
	ArriveAt      string `json:"arrive_at"`
	DwellMinutes  int64  `json:"dwell_minutes"`
	DepartAt      string `json:"depart_at"`
}

type ItineraryResponse struct {
	Strategy           string         `json:"strategy"`
	StartAt            string         `json:"start_at"`
	Deadline           string         `json:"deadline"`
	Path               []int          `json:"path"`
	Stops              []StopResponse `json:"stops"`
	VisitCount         int            `json:"visit_count"`
	TotalTimeMinutes   int64          `json:"total_time_minutes"`
	TotalTravelMinutes int64          `json:"total_travel_minutes"`
	TotalDwellMinutes  int64          `json:"total_dwell_minutes"`
	FinishAt           string         `json:"finish_at"`
	NodesExplored      int            `json:"nodes_explored"`
}

type CompareResponse struct {
	BestFirst          ItineraryResponse `json:"best_first"`
	Greedy             ItineraryResponse `json:"greedy"`
	BestFirstDominates bool              `json:"best_first_dominates"`
}
