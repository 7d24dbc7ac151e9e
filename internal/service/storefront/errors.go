package storefront

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("business not found")

	// ErrBookingNotFound возвращается, когда бронирование не найдено или
	// телефон не совпадает
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel возвращается, когда бронирование уже нельзя отменить
	// по статусу
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrTooLateToCancel возвращается при отмене позже допустимого срока
	// до начала визита
	ErrTooLateToCancel = errors.New("too late to cancel this booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrUpstreamUnavailable возвращается, когда reservation API недоступен
	ErrUpstreamUnavailable = errors.New("reservation service unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
