package check_availability

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("check_availability: business not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("check_availability: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrUpstreamUnavailable возвращается при недоступности reservation API.
	// Автоматических ретраев нет: следующая смена даты или ручной retry
	// пользователя естественно повторит запрос.
	ErrUpstreamUnavailable = errors.New("check_availability: reservation API unavailable")
)
