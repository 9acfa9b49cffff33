package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/alligatorO15/expense-analytics/internal/analytics"
	"github.com/alligatorO15/expense-analytics/internal/calendar"
	"github.com/alligatorO15/expense-analytics/internal/models"
	"github.com/alligatorO15/expense-analytics/internal/repository"
	"github.com/google/uuid"
)

type AnalyticsService interface {
	CreateSession(ctx context.Context, userID uuid.UUID, input *models.AnalyticsSessionCreate) (*SessionView, error)
	GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*SessionView, error)
	DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error

	UpdatePeriod(ctx context.Context, userID, sessionID uuid.UUID, period models.TimePeriod) (*SessionView, error)
	UpdateSelectedIndex(ctx context.Context, userID, sessionID uuid.UUID, index int) (*SessionView, error)
	UpdateCategories(ctx context.Context, userID, sessionID uuid.UUID, names []string) (*SessionView, error)
	ToggleSortOrder(ctx context.Context, userID, sessionID uuid.UUID) (*SessionView, error)
	ApplyCustomRange(ctx context.Context, userID, sessionID uuid.UUID, interval models.DateInterval) (*SessionView, error)
	CancelCustomRange(ctx context.Context, userID, sessionID uuid.UUID) (*SessionView, error)
	Refresh(ctx context.Context, userID, sessionID uuid.UUID) (*SessionView, error)
	SelectCategory(ctx context.Context, userID, sessionID uuid.UUID, row int) (*analytics.CategoryDetail, error)

	// ExpensesChanged помечает сессии пользователя устаревшими, они перечитаются при следующем обращении
	ExpensesChanged(userID uuid.UUID)
	// Sweep удаляет сессии, к которым не обращались дольше ttl
	Sweep(now time.Time) int
	// RunJanitor вызывает Sweep раз в interval до отмены ctx
	RunJanitor(ctx context.Context, interval time.Duration)
}

// SessionView снимок сессии для ответа api
type SessionView struct {
	ID uuid.UUID `json:"id"`
	analytics.Snapshot
}

type AnalyticsOptions struct {
	Calendar        calendar.Calendar
	DefaultCurrency models.Currency
	SessionTTL      time.Duration
	Logger          *log.Logger
	Now             func() time.Time
}

// запись реестра. mu сериализует операции над одной сессией
type sessionEntry struct {
	mu       sync.Mutex
	userID   uuid.UUID
	session  *analytics.Session
	lastUsed time.Time
	stale    bool
}

type analyticsService struct {
	expenseRepo repository.ExpenseRepository
	opts        AnalyticsOptions

	mu       sync.RWMutex
	sessions map[uuid.UUID]*sessionEntry
}

func NewAnalyticsService(expenseRepo repository.ExpenseRepository, opts AnalyticsOptions) AnalyticsService {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.DefaultCurrency == "" {
		opts.DefaultCurrency = models.CurrencyRUB
	}
	return &analyticsService{
		expenseRepo: expenseRepo,
		opts:        opts,
		sessions:    make(map[uuid.UUID]*sessionEntry),
	}
}

// userExpenseQuery ограничивает запросы сессии расходами одного пользователя
type userExpenseQuery struct {
	repo   repository.ExpenseRepository
	userID uuid.UUID
}

func (q userExpenseQuery) FetchExpenses(ctx context.Context, start, end time.Time, categoryNames []string) ([]models.ExpenseCategory, error) {
	return q.repo.FetchCategoriesWithExpenses(ctx, q.userID, models.DateInterval{Start: start, End: end}, categoryNames)
}

func (s *analyticsService) CreateSession(ctx context.Context, userID uuid.UUID, input *models.AnalyticsSessionCreate) (*SessionView, error) {
	now := s.opts.Now()
	s.Sweep(now)

	currency := s.opts.DefaultCurrency
	if input != nil && input.Currency != "" {
		currency = input.Currency
	}
	today := now
	if input != nil && input.Today != nil {
		today = *input.Today
	}

	session := analytics.NewSession(analytics.Options{
		Query:    userExpenseQuery{repo: s.expenseRepo, userID: userID},
		Calendar: s.opts.Calendar,
		Currency: currency,
		Logger:   s.opts.Logger,
		Now:      s.opts.Now,
	})
	session.Initialize(ctx, today)
	if input != nil && input.Period != "" && input.Period != models.TimePeriodDay {
		session.UpdateTypeTimePeriod(ctx, input.Period)
	}

	id := uuid.New()
	entry := &sessionEntry{userID: userID, session: session, lastUsed: now}

	s.mu.Lock()
	s.sessions[id] = entry
	s.mu.Unlock()

	return &SessionView{ID: id, Snapshot: session.Snapshot()}, nil
}

func (s *analyticsService) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*SessionView, error) {
	return s.withSession(ctx, userID, sessionID, func(*analytics.Session) error { return nil })
}

func (s *analyticsService) DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sessionID]
	if !ok || entry.userID != userID {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

func (s *analyticsService) UpdatePeriod(ctx context.Context, userID, sessionID uuid.UUID, period models.TimePeriod) (*SessionView, error) {
	return s.withSession(ctx, userID, sessionID, func(session *analytics.Session) error {
		session.UpdateTypeTimePeriod(ctx, period)
		return nil
	})
}

func (s *analyticsService) UpdateSelectedIndex(ctx context.Context, userID, sessionID uuid.UUID, index int) (*SessionView, error) {
	return s.withSession(ctx, userID, sessionID, func(session *analytics.Session) error {
		return session.UpdateSelectedIndex(ctx, index)
	})
}

func (s *analyticsService) UpdateCategories(ctx context.Context, userID, sessionID uuid.UUID, names []string) (*SessionView, error) {
	return s.withSession(ctx, userID, sessionID, func(session *analytics.Session) error {
		session.UpdateSelectedCategories(ctx, names)
		return nil
	})
}

func (s *analyticsService) ToggleSortOrder(ctx context.Context, userID, sessionID uuid.UUID) (*SessionView, error) {
	return s.withSession(ctx, userID, sessionID, func(session *analytics.Session) error {
		session.UpdateCategorySortOrder(ctx)
		return nil
	})
}

func (s *analyticsService) ApplyCustomRange(ctx context.Context, userID, sessionID uuid.UUID, interval models.DateInterval) (*SessionView, error) {
	return s.withSession(ctx, userID, sessionID, func(session *analytics.Session) error {
		return session.ApplyCustomInterval(ctx, interval)
	})
}

func (s *analyticsService) CancelCustomRange(ctx context.Context, userID, sessionID uuid.UUID) (*SessionView, error) {
	return s.withSession(ctx, userID, sessionID, func(session *analytics.Session) error {
		session.CancelCustomInterval(ctx)
		return nil
	})
}

func (s *analyticsService) Refresh(ctx context.Context, userID, sessionID uuid.UUID) (*SessionView, error) {
	return s.withSession(ctx, userID, sessionID, func(session *analytics.Session) error {
		session.Refresh(ctx)
		return nil
	})
}

func (s *analyticsService) SelectCategory(ctx context.Context, userID, sessionID uuid.UUID, row int) (*analytics.CategoryDetail, error) {
	var detail analytics.CategoryDetail
	_, err := s.withSession(ctx, userID, sessionID, func(session *analytics.Session) error {
		var err error
		detail, err = session.SelectCategory(row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (s *analyticsService) ExpensesChanged(userID uuid.UUID) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, entry := range s.sessions {
		if entry.userID != userID {
			continue
		}
		entry.mu.Lock()
		entry.stale = true
		entry.mu.Unlock()
	}
}

func (s *analyticsService) Sweep(now time.Time) int {
	if s.opts.SessionTTL <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, entry := range s.sessions {
		// занятую сессию не трогаем, она сейчас используется
		if !entry.mu.TryLock() {
			continue
		}
		expired := now.Sub(entry.lastUsed) > s.opts.SessionTTL
		entry.mu.Unlock()
		if expired {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		s.opts.Logger.Printf("analytics: удалено устаревших сессий: %d", removed)
	}
	return removed
}

func (s *analyticsService) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(s.opts.Now())
		}
	}
}

// withSession выполняет fn над сессией под ее мьютексом и возвращает снимок после fn.
// Устаревшая сессия сначала перечитывает данные
func (s *analyticsService) withSession(ctx context.Context, userID, sessionID uuid.UUID, fn func(*analytics.Session) error) (*SessionView, error) {
	s.mu.RLock()
	entry, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok || entry.userID != userID {
		return nil, ErrSessionNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.lastUsed = s.opts.Now()
	if entry.stale {
		entry.session.Refresh(ctx)
		entry.stale = false
	}

	if err := fn(entry.session); err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}

	return &SessionView{ID: sessionID, Snapshot: entry.session.Snapshot()}, nil
}
