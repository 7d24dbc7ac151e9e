package start_session

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
	msgInvalidBody    = "invalid request body"
	msgInvalidRequest = "invalid business slug, service id or timezone"
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

// Handle POST /api/v1/businesses/{slug}/services/{serviceId}/sessions
// Body: {"viewerTimezone": "Europe/Tirane"} (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req models.StartSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /businesses/{slug}/services/{id}/sessions - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	req.BusinessSlug = vars["slug"]
	req.ServiceID = vars["serviceId"]

	result, err := h.service.Start(r.Context(), &req)
	if err != nil {
		if errors.Is(err, sessions.ErrInvalidInput) {
			h.logger.Warn("POST /businesses/{slug}/services/{id}/sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
			return
		}
		h.logger.Error("POST /businesses/{slug}/services/{id}/sessions - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /businesses/{slug}/services/{id}/sessions - Session started: id=%s, state=%s",
		result.SessionID, result.State)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
