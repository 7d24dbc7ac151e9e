// Package selector реализует state machine выбора даты и слота для одной
// browsing-сессии клиента: Idle -> Loading -> {Loaded, Failed}, с повторным
// входом в Loading при каждой смене даты или размера группы.
//
// Матрица доступности принадлежит сессии на время одного запроса
// (date, partySize) и полностью заменяется - никогда не патчится - при любой
// смене параметров. Устаревшие ответы отбрасываются по номеру поколения:
// применяется последний выданный запрос, а не последний пришедший ответ.
package selector

import (
	"sync"
	"time"

	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
)

// State состояние сессии выбора
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateFailed  State = "failed"
)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Session одна сессия выбора даты/слота. Все переходы сериализуются
// внутренним мьютексом: применение матрицы и ре-валидация выбранного слота
// атомарны, окна, в котором можно действовать по устаревшему слоту, нет.
type Session struct {
	mu sync.Mutex

	id           string
	businessSlug string
	serviceID    string

	state      State
	date       time.Time // day granularity, viewer's calendar
	partySize  int
	generation uint64

	matrix    *domain.AvailabilityMatrix
	resources []domain.Resource // eligible for the current party size
	selected  *domain.AvailabilitySlot
	lastError string

	viewerLoc    *time.Location
	timeProvider TimeProvider
	touchedAt    time.Time
}

// Snapshot неизменяемый срез состояния сессии для рендеринга.
type Snapshot struct {
	ID           string
	BusinessSlug string
	ServiceID    string
	State        State
	Date         time.Time
	PartySize    int
	Generation   uint64
	Matrix       *domain.AvailabilityMatrix
	Resources    []domain.Resource
	SelectedSlot *domain.AvailabilitySlot
	LastError    string
}

// NewSession создает сессию в состоянии Idle: сегодняшняя дата в календаре
// зрителя, размер группы 1. Первый fetch переводит её в Loading через
// BeginFetch.
func NewSession(id, businessSlug, serviceID string, viewerLoc *time.Location, tp TimeProvider) *Session {
	if tp == nil {
		tp = &RealTimeProvider{}
	}
	if viewerLoc == nil {
		viewerLoc = time.UTC
	}
	now := tp.Now().In(viewerLoc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, viewerLoc)

	return &Session{
		id:           id,
		businessSlug: businessSlug,
		serviceID:    serviceID,
		state:        StateIdle,
		date:         today,
		partySize:    domain.DefaultPartySize,
		viewerLoc:    viewerLoc,
		timeProvider: tp,
		touchedAt:    tp.Now(),
	}
}

// ID возвращает идентификатор сессии.
func (s *Session) ID() string { return s.id }

// BusinessSlug возвращает slug бизнеса сессии.
func (s *Session) BusinessSlug() string { return s.businessSlug }

// ServiceID возвращает услугу сессии.
func (s *Session) ServiceID() string { return s.serviceID }

// SelectDate переводит сессию на новую дату. Дата строго раньше сегодняшней
// (в календаре зрителя) отклоняется, состояние не меняется. Успешный переход
// очищает выбранный слот, переводит в Loading и возвращает номер поколения
// для последующего ApplyFetchResult.
func (s *Session) SelectDate(d time.Time) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isPastDay(d) {
		return 0, ErrPastDate
	}

	s.date = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, s.viewerLoc)
	s.selected = nil
	return s.enterLoading(), nil
}

// SelectPartySize меняет размер группы. Значение вне диапазона
// [MinPartySize, MaxPartySize] отклоняется.
func (s *Session) SelectPartySize(n int) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n < domain.MinPartySize || n > domain.MaxPartySize {
		return 0, ErrInvalidPartySize
	}

	s.partySize = n
	s.selected = nil
	return s.enterLoading(), nil
}

// BeginFetch переводит сессию в Loading без смены параметров (первый fetch
// после создания или ручной retry после Failed).
func (s *Session) BeginFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enterLoading()
}

// ApplyFetchResult применяет результат fetch, выданного под поколением gen.
// Результат устаревшего поколения отбрасывается целиком (ErrStaleGeneration):
// ответ для вытесненных параметров не должен перезаписать состояние текущих,
// даже если по сети он пришел позже нового.
//
// При успехе ранее выбранный слот ре-валидируется по точному совпадению
// starts_at и молча снимается, если его больше нет в матрице - это сценарий
// "слот заняли", он не считается ошибкой.
func (s *Session) ApplyFetchResult(gen uint64, matrix *domain.AvailabilityMatrix, resources []domain.Resource, fetchErr error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return ErrStaleGeneration
	}

	s.touchedAt = s.timeProvider.Now()

	if fetchErr != nil {
		// Fail-safe: никогда не показываем устаревшие слоты как актуальные.
		s.state = StateFailed
		s.matrix = &domain.AvailabilityMatrix{Slots: []domain.AvailabilitySlot{}}
		s.resources = nil
		s.selected = nil
		s.lastError = fetchErr.Error()
		return nil
	}

	s.state = StateLoaded
	s.matrix = matrix
	s.resources = resources
	s.lastError = ""

	if s.selected != nil && !matrix.Contains(s.selected.StartsAt) {
		s.selected = nil
	}
	return nil
}

// SelectSlot выбирает слот из текущей матрицы. Слот, отсутствующий в
// матрице, отклоняется - молчаливое принятие было бы programming error.
func (s *Session) SelectSlot(startsAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateLoaded {
		return ErrNotLoaded
	}

	slot, ok := s.matrix.SlotAt(startsAt)
	if !ok {
		return ErrSlotNotInMatrix
	}

	s.selected = &slot
	s.touchedAt = s.timeProvider.Now()
	return nil
}

// Draft собирает BookingDraft из текущего выбора. Доступно только при
// выбранном слоте.
func (s *Session) Draft() (*domain.BookingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateLoaded || s.selected == nil {
		return nil, ErrNoSlotSelected
	}

	tz := ""
	if s.matrix != nil {
		tz = s.matrix.BusinessTimezone
	}

	return &domain.BookingDraft{
		BusinessSlug:     s.businessSlug,
		ServiceID:        s.serviceID,
		LocalDate:        s.date.Format(domain.DateFormat),
		Slot:             *s.selected,
		PartySize:        s.partySize,
		BusinessTimezone: tz,
		CreatedAt:        s.timeProvider.Now(),
	}, nil
}

// Resources возвращает столы, подходящие текущему размеру группы,
// в порядке upstream списка.
func (s *Session) Resources() []domain.Resource {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resources
}

// PartySize возвращает текущий размер группы.
func (s *Session) PartySize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.partySize
}

// Params возвращает текущие параметры fetch: дату (Y-M-D) и размер группы.
func (s *Session) Params() (string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.date.Format(domain.DateFormat), s.partySize
}

// Snapshot возвращает срез состояния для рендеринга.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ID:           s.id,
		BusinessSlug: s.businessSlug,
		ServiceID:    s.serviceID,
		State:        s.state,
		Date:         s.date,
		PartySize:    s.partySize,
		Generation:   s.generation,
		Matrix:       s.matrix,
		Resources:    s.resources,
		SelectedSlot: s.selected,
		LastError:    s.lastError,
	}
}

// enterLoading инвалидирует матрицу и выдает новое поколение. Выбор слота
// не трогает: при refetch с теми же параметрами он ре-валидируется в
// ApplyFetchResult, а при смене даты или размера группы его снимает сам
// мутатор. Вызывается под мьютексом.
func (s *Session) enterLoading() uint64 {
	s.state = StateLoading
	s.matrix = nil
	s.resources = nil
	s.lastError = ""
	s.generation++
	s.touchedAt = s.timeProvider.Now()
	return s.generation
}

// isPastDay сравнивает дату с сегодняшней с точностью до дня
// в календаре зрителя. Вызывается под мьютексом.
func (s *Session) isPastDay(d time.Time) bool {
	now := s.timeProvider.Now().In(s.viewerLoc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.viewerLoc)
	dd := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, s.viewerLoc)
	return dd.Before(today)
}

func (s *Session) lastTouched() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touchedAt
}
