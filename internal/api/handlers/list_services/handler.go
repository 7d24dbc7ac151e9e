package list_services

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/johnpapajani/rezi-booking-gateway/internal/api/handlers"
	"github.com/johnpapajani/rezi-booking-gateway/internal/service/storefront"
)

const (
	msgMissingSlug         = "business slug is required"
	msgBusinessNotFound    = "business not found"
	msgUpstreamUnavailable = "reservation service is temporarily unavailable"
)

type Handler struct {
	service StorefrontService
	logger  Logger
}

func NewHandler(service StorefrontService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{slug}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if slug == "" {
		handlers.RespondBadRequest(w, msgMissingSlug)
		return
	}

	services, err := h.service.ListServices(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, storefront.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{slug}/services - Business not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, storefront.ErrUpstreamUnavailable):
			h.logger.Error("GET /businesses/{slug}/services - Upstream unavailable: slug=%s, error=%v", slug, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamUnavailable)

		default:
			h.logger.Error("GET /businesses/{slug}/services - Failed to list services: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{slug}/services - %d services retrieved: slug=%s", len(services), slug)
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(services))
}
