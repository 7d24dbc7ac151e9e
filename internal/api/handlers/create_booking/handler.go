package create_booking

import (
	"errors"
	"net/http"

	"github.com/johnpapajani/rezi-booking-gateway/internal/api/handlers"
	submitBooking "github.com/johnpapajani/rezi-booking-gateway/internal/usecase/submit_booking"
)

const (
	msgInvalidBody        = "invalid request body"
	msgMissingDraftToken  = "draft token is required"
	msgDraftNotFound      = "your booking draft has expired, please pick a time again"
	msgSubmissionInFlight = "this booking is already being submitted"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
// Body: {"draftToken": "...", "name": "...", "phone": "...", "email": "..."}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("POST /bookings - Missing draft token")
		handlers.RespondBadRequest(w, msgMissingDraftToken)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var validationErrs submitBooking.ValidationErrors
		var conflict *submitBooking.ConflictError

		switch {
		case errors.As(err, &validationErrs):
			h.logger.Warn("POST /bookings - Validation failed: draft=%s, errors=%d", req.DraftToken, len(validationErrs))
			handlers.RespondValidationErrors(w, FromValidationErrors(validationErrs))

		case errors.As(err, &conflict):
			// Сообщение сервера отдается дословно
			h.logger.Warn("POST /bookings - Slot conflict: draft=%s", req.DraftToken)
			handlers.RespondError(w, http.StatusConflict, conflict.Message)

		case errors.Is(err, submitBooking.ErrDraftNotFound):
			h.logger.Warn("POST /bookings - Draft not found: draft=%s", req.DraftToken)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, submitBooking.ErrSubmissionInFlight):
			h.logger.Warn("POST /bookings - Submission already in flight: draft=%s", req.DraftToken)
			handlers.RespondError(w, http.StatusConflict, msgSubmissionInFlight)

		default:
			h.logger.Error("POST /bookings - Failed: draft=%s, error=%v", req.DraftToken, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%s, draft=%s", result.Booking.ID, req.DraftToken)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
