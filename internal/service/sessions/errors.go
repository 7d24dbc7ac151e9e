package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия выбора не найдена или истекла
	ErrSessionNotFound = errors.New("selection session not found")

	// ErrPastDate возвращается при выборе даты раньше сегодняшней
	ErrPastDate = errors.New("date is in the past")

	// ErrInvalidPartySize возвращается при размере группы меньше 1
	ErrInvalidPartySize = errors.New("invalid party size")

	// ErrSlotNotAvailable возвращается при выборе слота вне текущей матрицы
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrNotLoaded возвращается при выборе слота до загрузки матрицы
	ErrNotLoaded = errors.New("availability is not loaded")

	// ErrNoSlotSelected возвращается при попытке proceed без выбранного слота
	ErrNoSlotSelected = errors.New("no slot selected")

	// ErrNoTableAvailable возвращается, когда ни один стол не вмещает группу
	ErrNoTableAvailable = errors.New("no table available for this party size")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
