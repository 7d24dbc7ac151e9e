package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/johnpapajani/rezi-booking-gateway/internal/api/handlers"
	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
	checkAvailability "github.com/johnpapajani/rezi-booking-gateway/internal/usecase/check_availability"
)

const (
	msgMissingDate         = "date is required"
	msgInvalidDate         = "invalid date format, expected YYYY-MM-DD"
	msgInvalidPartySize    = "invalid party size"
	msgBusinessNotFound    = "business not found"
	msgServiceNotFound     = "service not found"
	msgUpstreamUnavailable = "reservation service is temporarily unavailable"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{slug}/services/{serviceId}/availability
// Query params: date (required, YYYY-MM-DD), partySize (optional, default 1)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]
	serviceID := vars["serviceId"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /businesses/{slug}/services/{id}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	partySize := domain.DefaultPartySize
	if raw := r.URL.Query().Get("partySize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < domain.MinPartySize {
			h.logger.Warn("GET /businesses/{slug}/services/{id}/availability - Invalid party size: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidPartySize)
			return
		}
		partySize = n
	}

	req := &checkAvailability.Request{
		BusinessSlug: slug,
		ServiceID:    serviceID,
		Date:         dateStr,
		PartySize:    partySize,
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{slug}/services/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, checkAvailability.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{slug}/services/{id}/availability - Business not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, checkAvailability.ErrServiceNotFound):
			h.logger.Warn("GET /businesses/{slug}/services/{id}/availability - Service not found: slug=%s, service=%s", slug, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /businesses/{slug}/services/{id}/availability - Failed: slug=%s, service=%s, error=%v",
				slug, serviceID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamUnavailable)
		}
		return
	}

	h.logger.Info("GET /businesses/{slug}/services/{id}/availability - %d slots retrieved: slug=%s, service=%s, date=%s",
		len(result.Matrix.Slots), slug, serviceID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(req, result))
}
