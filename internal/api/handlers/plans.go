package handlers

import (
	"errors"
	"net/http"
	"time"
	"tour-itinerary-service/internal/api/dto"
	"tour-itinerary-service/internal/domain"
	"tour-itinerary-service/internal/platform/obs"
	"tour-itinerary-service/internal/ports"
	"tour-itinerary-service/internal/services"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// PlanDefaults fill in request fields the client leaves out.
type PlanDefaults struct {
	StartTime       string
	TimeLimitHours  float64
	StrictWindows   bool
	TransferPenalty time.Duration
}

type PlanHandler struct {
	Repo     ports.CatalogRepository
	Observer ports.SearchObserver
	Defaults PlanDefaults

	validate *validator.Validate
}

func NewPlanHandler(repo ports.CatalogRepository, observer ports.SearchObserver, defaults PlanDefaults) *PlanHandler {
	return &PlanHandler{
		Repo:     repo,
		Observer: observer,
		Defaults: defaults,
		validate: newValidator(),
	}
}

// Plan runs one planning strategy and returns its itinerary.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	it, err := services.PlanTour(r.Context(), req, h.Repo, h.Observer)
	if err != nil {
		h.fail(w, r, "plan tour failed", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toItineraryResponse(it))
}

// Compare runs the best-first search and the greedy baseline side by side.
func (h *PlanHandler) Compare(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	cmp, err := services.CompareStrategies(r.Context(), req, h.Repo, h.Observer)
	if err != nil {
		h.fail(w, r, "compare strategies failed", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CompareResponse{
		BestFirst:          toItineraryResponse(cmp.BestFirst),
		Greedy:             toItineraryResponse(cmp.Greedy),
		BestFirstDominates: cmp.BestFirstDominates(),
	})
}

func (h *PlanHandler) decode(w http.ResponseWriter, r *http.Request) (services.PlanTourRequest, bool) {
	var body dto.PlanRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return services.PlanTourRequest{}, false
	}

	if err := h.validate.Struct(body); err != nil {
		writeError(w, r, http.StatusBadRequest, describeValidation(err))
		return services.PlanTourRequest{}, false
	}

	penalty := h.Defaults.TransferPenalty
	req := services.PlanTourRequest{
		StartTime:       h.Defaults.StartTime,
		TimeLimitHours:  h.Defaults.TimeLimitHours,
		Strategy:        body.Strategy,
		StrictWindows:   h.Defaults.StrictWindows,
		TransferPenalty: &penalty,
	}
	if body.StartTime != "" {
		req.StartTime = body.StartTime
	}
	if body.TimeLimitHours != nil {
		req.TimeLimitHours = *body.TimeLimitHours
	}
	if body.StrictWindows != nil {
		req.StrictWindows = *body.StrictWindows
	}

	return req, true
}

func (h *PlanHandler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	switch {
	case errors.Is(err, domain.ErrMalformedTime):
		writeError(w, r, http.StatusBadRequest, "start_time must be HH:MM")
	case errors.Is(err, domain.ErrUnknownStrategy):
		writeError(w, r, http.StatusBadRequest, "unknown strategy")
	default:
		zap.L().Error(msg, zap.String("req_id", obs.RequestID(r.Context())), zap.Error(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func toItineraryResponse(it *domain.Itinerary) dto.ItineraryResponse {
	stops := make([]dto.StopResponse, 0, len(it.Stops))
	for _, s := range it.Stops {
		stops = append(stops, dto.StopResponse{
			LocationID:    s.LocationID,
			Name:          s.Name,
			TravelMinutes: minutes(s.Travel),
			ArriveAt:      domain.FormatClock(s.ArriveAt),
			DwellMinutes:  minutes(s.Dwell),
			DepartAt:      domain.FormatClock(s.DepartAt),
		})
	}

	return dto.ItineraryResponse{
		Strategy:           it.Strategy,
		StartAt:            domain.FormatClock(it.StartAt),
		Deadline:           domain.FormatClock(it.Deadline),
		Path:               it.Path,
		Stops:              stops,
		VisitCount:         it.VisitCount(),
		TotalTimeMinutes:   minutes(it.TotalTime()),
		TotalTravelMinutes: minutes(it.TotalTravel()),
		TotalDwellMinutes:  minutes(it.TotalDwell()),
		FinishAt:           domain.FormatClock(it.FinishAt()),
		NodesExplored:      it.NodesExplored,
	}
}

func minutes(d time.Duration) int64 { return int64(d / time.Minute) }
