package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/johnpapajani/rezi-booking-gateway/internal/assigner"
	"github.com/johnpapajani/rezi-booking-gateway/internal/domain"
	"github.com/johnpapajani/rezi-booking-gateway/internal/selector"
	"github.com/johnpapajani/rezi-booking-gateway/internal/service/sessions/models"
	"github.com/johnpapajani/rezi-booking-gateway/internal/usecase/check_availability"
	"github.com/johnpapajani/rezi-booking-gateway/pkg/timezone"
)

// Service сервис сессий выбора даты и слота. Оркестрирует selector state
// machine, загрузку доступности и переход к черновику бронирования.
type Service struct {
	fetcher      AvailabilityFetcher
	registry     SessionRegistry
	draftStore   DraftStore
	ids          IDGenerator
	timeProvider selector.TimeProvider
	draftTTL     time.Duration
	logger       Logger
}

// UUIDGenerator генератор идентификаторов на базе UUID v4
type UUIDGenerator struct{}

// NewID возвращает новый идентификатор
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// NewService создает новый экземпляр сервиса сессий
func NewService(
	fetcher AvailabilityFetcher,
	registry SessionRegistry,
	draftStore DraftStore,
	draftTTL time.Duration,
	logger Logger,
) *Service {
	return &Service{
		fetcher:      fetcher,
		registry:     registry,
		draftStore:   draftStore,
		ids:          UUIDGenerator{},
		timeProvider: &selector.RealTimeProvider{},
		draftTTL:     draftTTL,
		logger:       logger,
	}
}

// Start создает сессию выбора: сегодняшняя дата в календаре зрителя, группа
// из одного человека, и сразу выполняет первый fetch доступности.
func (s *Service) Start(ctx context.Context, req *models.StartSessionRequest) (*models.SessionResponse, error) {
	if req.BusinessSlug == "" || req.ServiceID == "" {
		return nil, fmt.Errorf("%w: business slug and service id are required", ErrInvalidInput)
	}

	viewerLoc := time.UTC
	if req.ViewerTimezone != "" {
		loc, err := timezone.LoadZone(req.ViewerTimezone)
		if err != nil {
			s.logger.Warn("Start: invalid viewer timezone %q: %v", req.ViewerTimezone, err)
			return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, req.ViewerTimezone)
		}
		viewerLoc = loc
	}

	sess := selector.NewSession(s.ids.NewID(), req.BusinessSlug, req.ServiceID, viewerLoc, s.timeProvider)
	s.registry.Put(sess)

	s.logger.Info("Start: session=%s business=%s service=%s tz=%s",
		sess.ID(), req.BusinessSlug, req.ServiceID, viewerLoc)

	gen := sess.BeginFetch()
	s.fetch(ctx, sess, gen)

	return models.FromSnapshot(sess.Snapshot()), nil
}

// UpdateSelection меняет дату и/или размер группы сессии. Каждый принятый
// переход вытесняет предыдущий fetch; применяется результат последнего
// выданного поколения. Пустой запрос означает повторный fetch текущих
// параметров (retry после Failed).
func (s *Service) UpdateSelection(ctx context.Context, req *models.UpdateSelectionRequest) (*models.SessionResponse, error) {
	sess, err := s.registry.Get(req.SessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	// 1. Разбираем входные данные до каких-либо мутаций: отклоненный
	// параметр не должен оставить сессию в полуприменённом состоянии.
	var newDate *time.Time
	if req.Date != nil {
		d, parseErr := time.Parse(domain.DateFormat, *req.Date)
		if parseErr != nil {
			s.logger.Warn("UpdateSelection: session=%s malformed date %q", req.SessionID, *req.Date)
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
		newDate = &d
	}
	if req.PartySize != nil && *req.PartySize < domain.MinPartySize {
		return nil, ErrInvalidPartySize
	}

	// 2. Применяем переходы; запоминаем последнее выданное поколение
	var gen uint64
	touched := false
	if newDate != nil {
		gen, err = sess.SelectDate(*newDate)
		if err != nil {
			if errors.Is(err, selector.ErrPastDate) {
				s.logger.Warn("UpdateSelection: session=%s rejected past date %s", req.SessionID, *req.Date)
				return nil, ErrPastDate
			}
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		touched = true
	}
	if req.PartySize != nil {
		gen, err = sess.SelectPartySize(*req.PartySize)
		if err != nil {
			return nil, ErrInvalidPartySize
		}
		touched = true
	}
	if !touched {
		gen = sess.BeginFetch()
	}

	// 3. Fetch под последним поколением
	s.fetch(ctx, sess, gen)

	return models.FromSnapshot(sess.Snapshot()), nil
}

// SelectSlot выбирает слот текущей матрицы по точному starts_at.
func (s *Service) SelectSlot(ctx context.Context, req *models.SelectSlotRequest) (*models.SessionResponse, error) {
	sess, err := s.registry.Get(req.SessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	if err := sess.SelectSlot(req.StartsAt); err != nil {
		switch {
		case errors.Is(err, selector.ErrNotLoaded):
			return nil, ErrNotLoaded
		case errors.Is(err, selector.ErrSlotNotInMatrix):
			s.logger.Warn("SelectSlot: session=%s slot %s is not in the current matrix",
				req.SessionID, req.StartsAt.Format(time.RFC3339))
			return nil, ErrSlotNotAvailable
		default:
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	return models.FromSnapshot(sess.Snapshot()), nil
}

// Get возвращает текущий срез состояния сессии.
func (s *Service) Get(_ context.Context, sessionID string) (*models.SessionResponse, error) {
	sess, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	return models.FromSnapshot(sess.Snapshot()), nil
}

// Proceed фиксирует выбор: first-fit подбор стола, черновик в хранилище с
// TTL, токен наружу. Отсутствие подходящего стола не блокирует переход -
// черновик сохраняется без стола, отказ случится на отправке с понятным
// кодом ошибки.
func (s *Service) Proceed(ctx context.Context, sessionID string) (*models.ProceedResponse, error) {
	sess, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	draft, err := sess.Draft()
	if err != nil {
		s.logger.Warn("Proceed: session=%s has no selected slot", sessionID)
		return nil, ErrNoSlotSelected
	}

	// First-fit: первый стол upstream списка, вмещающий группу. Никакого
	// подбора "лучшего" стола - порядок списка и есть приоритет.
	tableID, tableCode := "", ""
	table, err := assigner.FirstFit(sess.Resources(), sess.PartySize())
	if err != nil {
		s.logger.Warn("Proceed: session=%s no table fits party of %d", sessionID, sess.PartySize())
	} else {
		draft.TableID = &table.ID
		tableID, tableCode = table.ID, table.Code
	}

	draft.Token = s.ids.NewID()
	if err := s.draftStore.Save(ctx, draft); err != nil {
		s.logger.Error("Proceed: session=%s failed to save draft: %v", sessionID, err)
		return nil, fmt.Errorf("%w: failed to save draft: %v", ErrInternal, err)
	}

	s.logger.Info("Proceed: session=%s draft=%s table=%s slot=%s",
		sessionID, draft.Token, tableID, draft.Slot.StartsAt.Format(time.RFC3339))

	return &models.ProceedResponse{
		DraftToken: draft.Token,
		TableID:    tableID,
		TableCode:  tableCode,
		ExpiresAt:  draft.CreatedAt.Add(s.draftTTL),
	}, nil
}

// fetch выполняет запрос доступности и применяет его результат под
// поколением gen. Устаревшее поколение просто отбрасывается: это штатный
// исход вытесненного запроса, а не ошибка.
func (s *Service) fetch(ctx context.Context, sess *selector.Session, gen uint64) {
	date, party := sess.Params()

	var matrix *domain.AvailabilityMatrix
	var resources []domain.Resource
	resp, err := s.fetcher.Execute(ctx, &check_availability.Request{
		BusinessSlug: sess.BusinessSlug(),
		ServiceID:    sess.ServiceID(),
		Date:         date,
		PartySize:    party,
	})
	if err != nil {
		s.logger.Warn("fetch: session=%s date=%s party=%d failed: %v", sess.ID(), date, party, err)
	} else {
		matrix, resources = resp.Matrix, resp.Resources
	}

	if applyErr := sess.ApplyFetchResult(gen, matrix, resources, err); applyErr != nil {
		if errors.Is(applyErr, selector.ErrStaleGeneration) {
			s.logger.Info("fetch: session=%s gen=%d superseded, result dropped", sess.ID(), gen)
			return
		}
		s.logger.Error("fetch: session=%s apply failed: %v", sess.ID(), applyErr)
	}
}
