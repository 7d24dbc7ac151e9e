package list_customer_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/johnpapajani/rezi-booking-gateway/internal/api/handlers"
	"github.com/johnpapajani/rezi-booking-gateway/internal/service/storefront"
)

const (
	msgMissingPhone = "phone is required"
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

// Handle GET /api/v1/businesses/{slug}/my-bookings
// Query params: phone (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	phone := r.URL.Query().Get("phone")
	if phone == "" {
		h.logger.Warn("GET /businesses/{slug}/my-bookings - Missing phone: slug=%s", slug)
		handlers.RespondBadRequest(w, msgMissingPhone)
		return
	}

	records, err := h.service.ListCustomerBookings(r.Context(), slug, phone)
	if err != nil {
		if errors.Is(err, storefront.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgMissingPhone)
			return
		}
		h.logger.Error("GET /businesses/{slug}/my-bookings - Failed: slug=%s, error=%v", slug, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /businesses/{slug}/my-bookings - %d bookings retrieved: slug=%s", len(records), slug)
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(records))
}
