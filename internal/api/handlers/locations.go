package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
	"tour-itinerary-service/internal/api/dto"
	"tour-itinerary-service/internal/domain"
	"tour-itinerary-service/internal/platform/obs"
	"tour-itinerary-service/internal/ports"

	"go.uber.org/zap"
)

// LocationHandler exposes the read-only location catalog.
type LocationHandler struct {
	Repo ports.CatalogRepository
}

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	catalog, err := h.Repo.LoadCatalog(r.Context())
	if err != nil {
		zap.L().Error("list locations failed", zap.String("req_id", obs.RequestID(r.Context())), zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	locs := catalog.Locations()
	res := dto.ListLocationsResponse{
		Locations: make([]dto.LocationResponse, 0, len(locs)),
	}
	for _, l := range locs {
		res.Locations = append(res.Locations, toLocationResponse(l))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Get serves /locations/{id}.
func (h *LocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/locations/"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "location id must be an integer")
		return
	}

	catalog, err := h.Repo.LoadCatalog(r.Context())
	if err != nil {
		zap.L().Error("get location failed", zap.String("req_id", obs.RequestID(r.Context())), zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	l, err := catalog.Location(id)
	if errors.Is(err, domain.ErrUnknownLocation) {
		writeError(w, r, http.StatusNotFound, "location not found")
		return
	}
	if err != nil {
		zap.L().Error("get location failed", zap.String("req_id", obs.RequestID(r.Context())), zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toLocationResponse(l))
}

func toLocationResponse(l domain.Location) dto.LocationResponse {
	return dto.LocationResponse{
		LocationID:            l.ID,
		Name:                  l.Name,
		BaselineTravelMinutes: int64(l.BaselineTravel / time.Minute),
		DwellMinutes:          int64(l.Dwell / time.Minute),
		OpensAt:               l.OpensAt.String(),
		ClosesAt:              l.ClosesAt.String(),
	}
}
