package reserveapi

import (
	"errors"
	"fmt"
)

var (
	// ErrBusinessNotFound возвращается, когда бизнес с таким slug не найден
	ErrBusinessNotFound = errors.New("reserveapi client: business not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("reserveapi client: service not found")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// (или телефон не совпадает с указанным при создании)
	ErrBookingNotFound = errors.New("reserveapi client: booking not found")

	// ErrSlotConflict возвращается, когда слот уже занят на момент отправки.
	// Сообщение сервера доступно через ConflictError.
	ErrSlotConflict = errors.New("reserveapi client: slot conflict")

	// ErrRejected возвращается, когда API отклонил запрос как некорректный
	ErrRejected = errors.New("reserveapi client: request rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("reserveapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("reserveapi client: invalid response")
)

// ConflictError несет дословное сообщение сервера об отказе
// (например "slot no longer available"). Должно показываться пользователю
// без изменений.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("reserveapi client: conflict: %s", e.Message)
}

// Unwrap позволяет сопоставлять ConflictError через errors.Is(err, ErrSlotConflict).
func (e *ConflictError) Unwrap() error {
	return ErrSlotConflict
}
