package submit_booking

import (
	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
)

// Request модель запроса на отправку бронирования
type Request struct {
	DraftToken string  // токен черновика, выданный на шаге proceed
	Name       string  // имя клиента
	Phone      string  // телефон клиента
	Email      *string // email клиента (опционально)
}

// Response модель ответа с созданным бронированием и контекстом для
// экрана подтверждения (бизнес и услуга уже в памяти, повторный fetch
// не нужен).
type Response struct {
	Booking          *domain.Booking
	BusinessTimezone string
	LocalDate        string // выбранная дата в формате YYYY-MM-DD
}
