package select_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/johnpapajani/rezi-booking-gateway/internal/api/handlers"
	"github.com/johnpapajani/rezi-booking-gateway/internal/service/sessions"
	"github.com/johnpapajani/rezi-booking-gateway/internal/service/sessions/models"
)

const (
	msgInvalidBody      = "invalid request body"
	msgSessionNotFound  = "selection session not found or expired"
	msgSlotNotAvailable = "this time is no longer available, please pick another"
	msgNotLoaded        = "availability is still loading, please retry"
)

type Handler struct {
	service SessionsService
	logger  Logger
}

func NewHandler(service SessionsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/slot
// Body: {"startsAt": "2025-03-10T17:00:00Z"}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req models.SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.StartsAt.IsZero() {
		h.logger.Warn("POST /sessions/{id}/slot - Invalid body: session=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	req.SessionID = sessionID

	result, err := h.service.SelectSlot(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/slot - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrSlotNotAvailable):
			h.logger.Warn("POST /sessions/{id}/slot - Slot not available: session=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, sessions.ErrNotLoaded):
			h.logger.Warn("POST /sessions/{id}/slot - Matrix not loaded: session=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgNotLoaded)

		default:
			h.logger.Error("POST /sessions/{id}/slot - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/slot - Slot selected: session=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
