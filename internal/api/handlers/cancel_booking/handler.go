package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/johnpapajani/rezi-booking-gateway/internal/api/handlers"
	"github.com/johnpapajani/rezi-booking-gateway/internal/service/storefront"
)

const (
	msgInvalidBody         = "invalid request body"
	msgMissingPhone        = "phone is required"
	msgBookingNotFound     = "booking not found"
	msgCannotCancel        = "this booking can no longer be cancelled"
	msgTooLateToCancel     = "it is too late to cancel this booking online, please contact the venue"
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

// Handle POST /api/v1/bookings/{bookingId}/cancel
// Body: {"phone": "+355691234567"}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/cancel - Invalid body: id=%s, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	if req.Phone == "" {
		handlers.RespondBadRequest(w, msgMissingPhone)
		return
	}

	booking, err := h.service.Cancel(r.Context(), bookingID, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, storefront.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/cancel - Booking not found: id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, storefront.ErrCannotCancel):
			h.logger.Warn("POST /bookings/{id}/cancel - Cannot cancel: id=%s", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		case errors.Is(err, storefront.ErrTooLateToCancel):
			h.logger.Warn("POST /bookings/{id}/cancel - Too late to cancel: id=%s", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgTooLateToCancel)

		case errors.Is(err, storefront.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingPhone)

		case errors.Is(err, storefront.ErrUpstreamUnavailable):
			h.logger.Error("POST /bookings/{id}/cancel - Upstream unavailable: id=%s, error=%v", bookingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamUnavailable)

		default:
			h.logger.Error("POST /bookings/{id}/cancel - Failed: id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/cancel - Booking cancelled: id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(booking))
}
