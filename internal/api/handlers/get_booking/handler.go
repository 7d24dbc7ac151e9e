package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/johnpapajani/rezi-booking-gateway/internal/api/handlers"
	"github.com/johnpapajani/rezi-booking-gateway/internal/service/storefront"
)

const (
	msgMissingPhone        = "phone is required"
	msgBookingNotFound     = "booking not found"
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

// Handle GET /api/v1/bookings/{bookingId}
// Query params: phone (required) - телефон клиента как учетные данные
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	phone := r.URL.Query().Get("phone")
	if phone == "" {
		h.logger.Warn("GET /bookings/{id} - Missing phone: id=%s", bookingID)
		handlers.RespondBadRequest(w, msgMissingPhone)
		return
	}

	booking, err := h.service.GetBooking(r.Context(), bookingID, phone)
	if err != nil {
		switch {
		case errors.Is(err, storefront.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking not found: id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, storefront.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingPhone)

		case errors.Is(err, storefront.ErrUpstreamUnavailable):
			h.logger.Error("GET /bookings/{id} - Upstream unavailable: id=%s, error=%v", bookingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamUnavailable)

		default:
			h.logger.Error("GET /bookings/{id} - Failed: id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id} - Booking retrieved: id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(booking))
}
