package proceed_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/johnpapajani/rezi-booking-gateway/internal/api/handlers"
	"github.com/johnpapajani/rezi-booking-gateway/internal/service/sessions"
)

const (
	msgSessionNotFound = "selection session not found or expired"
	msgNoSlotSelected  = "please select a time slot first"
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

// Handle POST /api/v1/sessions/{sessionId}/proceed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.service.Proceed(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/proceed - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrNoSlotSelected):
			h.logger.Warn("POST /sessions/{id}/proceed - No slot selected: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgNoSlotSelected)

		default:
			h.logger.Error("POST /sessions/{id}/proceed - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/proceed - Draft created: session=%s, draft=%s, table=%s",
		sessionID, result.DraftToken, result.TableID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
