package submit_booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDraftNotFound возвращается, когда черновик не найден или истек
	ErrDraftNotFound = errors.New("submit_booking: draft not found or expired")

	// ErrSubmissionInFlight возвращается при повторной отправке черновика,
	// пока первая еще выполняется. Защита от double-click: без неё двойной
	// клик создал бы два бронирования.
	ErrSubmissionInFlight = errors.New("submit_booking: submission already in flight for this draft")

	// ErrValidation возвращается при непройденной валидации полей клиента.
	// Конкретные поля доступны через ValidationErrors.
	ErrValidation = errors.New("submit_booking: validation failed")

	// ErrSlotTaken возвращается, когда слот заняли между выбором и
	// отправкой. Сообщение сервера доступно через ConflictError.
	ErrSlotTaken = errors.New("submit_booking: slot no longer available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)

// Field codes поля валидации
const (
	CodeNameRequired     = "name_required"
	CodeNameTooLong      = "name_too_long"
	CodePhoneRequired    = "phone_required"
	CodePhoneInvalid     = "phone_invalid"
	CodeEmailInvalid     = "email_invalid"
	CodeNoTableAvailable = "no_table_available"
)

// FieldError одна ошибка валидации поля формы.
type FieldError struct {
	Field   string
	Code    string
	Message string
}

// ValidationErrors агрегирует все непройденные проверки: пользователь
// видит каждую проблему сразу, а не только первую.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Code
	}
	return fmt.Sprintf("submit_booking: validation failed: %s", strings.Join(parts, ", "))
}

// Unwrap позволяет сопоставлять через errors.Is(err, ErrValidation).
func (e ValidationErrors) Unwrap() error {
	return ErrValidation
}

// Has сообщает, содержит ли набор ошибку с данным кодом.
func (e ValidationErrors) Has(code string) bool {
	for _, fe := range e {
		if fe.Code == code {
			return true
		}
	}
	return false
}

// ConflictError несет дословное сообщение сервера об отказе.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("submit_booking: conflict: %s", e.Message)
}

// Unwrap позволяет сопоставлять через errors.Is(err, ErrSlotTaken).
func (e *ConflictError) Unwrap() error {
	return ErrSlotTaken
}
