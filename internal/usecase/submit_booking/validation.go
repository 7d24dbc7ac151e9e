package submit_booking

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
)

var (
	// Телефон: только +, цифры, пробелы, скобки и дефисы.
	phonePattern = regexp.MustCompile(`^[+0-9][0-9+\s()\-]*$`)

	// Email: стандартная форма local@domain.tld.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// validateCustomer прогоняет ВСЕ проверки и возвращает полный набор
// непройденных: формы показывают каждую проблему одновременно,
// без short-circuit на первой.
func validateCustomer(req *Request, draft *domain.BookingDraft) ValidationErrors {
	var errs ValidationErrors

	name := strings.TrimSpace(req.Name)
	switch {
	case name == "":
		errs = append(errs, FieldError{
			Field:   "name",
			Code:    CodeNameRequired,
			Message: "name is required",
		})
	case len(name) > domain.MaxCustomerName:
		errs = append(errs, FieldError{
			Field:   "name",
			Code:    CodeNameTooLong,
			Message: fmt.Sprintf("name must be at most %d characters", domain.MaxCustomerName),
		})
	}

	phone := strings.TrimSpace(req.Phone)
	switch {
	case phone == "":
		errs = append(errs, FieldError{
			Field:   "phone",
			Code:    CodePhoneRequired,
			Message: "phone is required",
		})
	case !phonePattern.MatchString(phone) || len(phone) > domain.MaxCustomerPhone:
		errs = append(errs, FieldError{
			Field:   "phone",
			Code:    CodePhoneInvalid,
			Message: "phone may contain only digits, +, spaces, parentheses and hyphens",
		})
	}

	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		email := strings.TrimSpace(*req.Email)
		if !emailPattern.MatchString(email) || len(email) > domain.MaxCustomerEmail {
			errs = append(errs, FieldError{
				Field:   "email",
				Code:    CodeEmailInvalid,
				Message: "email must look like local@domain.tld",
			})
		}
	}

	// Подбор стола должен был состояться на шаге proceed. Его отсутствие -
	// пользовательская ошибка валидации ("нет свободного стола"),
	// она блокирует отправку вместе с остальными.
	if draft.TableID == nil || *draft.TableID == "" {
		errs = append(errs, FieldError{
			Field:   "table",
			Code:    CodeNoTableAvailable,
			Message: "no table available for this party size",
		})
	}

	return errs
}
