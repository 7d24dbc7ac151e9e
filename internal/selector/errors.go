package selector

import "errors"

var (
	// ErrPastDate возвращается при выборе даты раньше сегодняшней
	// (в календаре зрителя, с точностью до дня)
	ErrPastDate = errors.New("selector: date is in the past")

	// ErrInvalidPartySize возвращается при размере группы меньше 1
	ErrInvalidPartySize = errors.New("selector: party size must be at least 1")

	// ErrStaleGeneration возвращается при попытке применить результат
	// fetch, который был вытеснен более новым запросом параметров
	ErrStaleGeneration = errors.New("selector: fetch result superseded by a newer request")

	// ErrNotLoaded возвращается при выборе слота вне состояния Loaded
	ErrNotLoaded = errors.New("selector: availability is not loaded")

	// ErrSlotNotInMatrix возвращается при выборе слота, отсутствующего в
	// текущей матрице. Это programming error вызывающей стороны, а не
	// пользовательский сценарий.
	ErrSlotNotInMatrix = errors.New("selector: slot is not in the current availability matrix")

	// ErrNoSlotSelected возвращается при переходе к бронированию без
	// выбранного слота
	ErrNoSlotSelected = errors.New("selector: no slot selected")

	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("selector: session not found")
)
