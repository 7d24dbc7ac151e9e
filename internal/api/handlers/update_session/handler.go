package update_session

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/johnpapajani/rezi-booking-gateway/internal/api/handlers"
	"github.com/johnpapajani/rezi-booking-gateway/internal/service/sessions"
	"github.com/johnpapajani/rezi-booking-gateway/internal/service/sessions/models"
)

const (
	msgInvalidBody      = "invalid request body"
	msgSessionNotFound  = "selection session not found or expired"
	msgPastDate         = "please choose today or a future date"
	msgInvalidPartySize = "party size must be at least 1"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
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

// Handle PATCH /api/v1/sessions/{sessionId}
// Body: {"date": "2025-03-10", "partySize": 2} - оба поля опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req models.UpdateSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /sessions/{id} - Invalid body: session=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	req.SessionID = sessionID

	result, err := h.service.UpdateSelection(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{id} - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrPastDate):
			h.logger.Warn("PATCH /sessions/{id} - Past date rejected: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, sessions.ErrInvalidPartySize):
			h.logger.Warn("PATCH /sessions/{id} - Invalid party size: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidPartySize)

		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("PATCH /sessions/{id} - Invalid input: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("PATCH /sessions/{id} - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /sessions/{id} - Selection updated: session=%s, date=%s, party=%d, state=%s",
		sessionID, result.Date, result.PartySize, result.State)
	handlers.RespondJSON(w, http.StatusOK, result)
}
