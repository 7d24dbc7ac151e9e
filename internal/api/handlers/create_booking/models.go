package create_booking

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/johnpapajani/rezi-booking-gateway/internal/api/handlers"
	submitBooking "github.com/johnpapajani/rezi-booking-gateway/internal/usecase/submit_booking"
	"github.com/johnpapajani/rezi-booking-gateway/pkg/timezone"
)

var validate = validator.New()

// CreateBookingRequest HTTP request model.
// Поля клиента здесь не помечены required нарочно: их проверяет use case,
// собирая все ошибки формы разом вместо отказа на первой.
type CreateBookingRequest struct {
	DraftToken string  `json:"draftToken" validate:"required"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Email      *string `json:"email,omitempty"`
}

// Validate проверяет структурную корректность запроса
func (r *CreateBookingRequest) Validate() error {
	return validate.Struct(r)
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *CreateBookingRequest) ToUseCaseRequest() *submitBooking.Request {
	return &submitBooking.Request{
		DraftToken: r.DraftToken,
		Name:       r.Name,
		Phone:      r.Phone,
		Email:      r.Email,
	}
}

// CreateBookingResponse HTTP response model: подтверждение бронирования
type CreateBookingResponse struct {
	BookingID string    `json:"bookingId"`
	Status    string    `json:"status"`
	TableID   string    `json:"tableId,omitempty"`
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`
	PartySize int       `json:"partySize"`
	Timezone  string    `json:"timezone"`
	// LocalWhen человекочитаемые дата и время визита в таймзоне бизнеса
	LocalWhen string `json:"localWhen,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *CreateBookingResponse {
	out := &CreateBookingResponse{
		BookingID: resp.Booking.ID,
		Status:    string(resp.Booking.Status),
		TableID:   resp.Booking.TableID,
		StartsAt:  resp.Booking.StartsAt,
		EndsAt:    resp.Booking.EndsAt,
		PartySize: resp.Booking.PartySize,
		Timezone:  resp.BusinessTimezone,
	}

	if resp.BusinessTimezone != "" {
		if when, err := timezone.FormatDateTimeInZone(resp.Booking.StartsAt, resp.BusinessTimezone); err == nil {
			out.LocalWhen = when
		}
	}
	return out
}

// FromValidationErrors конвертирует ошибки валидации use case в HTTP модель
func FromValidationErrors(errs submitBooking.ValidationErrors) []handlers.FieldError {
	out := make([]handlers.FieldError, len(errs))
	for i, fe := range errs {
		out[i] = handlers.FieldError{
			Field:   fe.Field,
			Code:    fe.Code,
			Message: fe.Message,
		}
	}
	return out
}
