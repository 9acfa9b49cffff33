package service

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/alligatorO15/expense-analytics/internal/models"
	"github.com/alligatorO15/expense-analytics/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// memoryDB репозитории в памяти с тем же контрактом ошибок, что и у pgx реализаций
type memoryDB struct {
	mu         sync.Mutex
	categories map[uuid.UUID]models.ExpenseCategory
	expenses   map[uuid.UUID]models.Expense
	fetches    int
}

func newMemoryDB() *memoryDB {
	return &memoryDB{
		categories: make(map[uuid.UUID]models.ExpenseCategory),
		expenses:   make(map[uuid.UUID]models.Expense),
	}
}

func (db *memoryDB) repositories() *repository.Repositories {
	return &repository.Repositories{
		TxManager: inlineTx{},
		Category:  memCategoryRepo{db},
		Expense:   memExpenseRepo{db},
	}
}

type inlineTx struct{}

func (inlineTx) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (inlineTx) WithTxOptions(ctx context.Context, _ pgx.TxOptions, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memCategoryRepo struct{ db *memoryDB }

func (r memCategoryRepo) Create(_ context.Context, category *models.ExpenseCategory) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	r.db.categories[category.ID] = *category
	return nil
}

func (r memCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*models.ExpenseCategory, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c, ok := r.db.categories[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &c, nil
}

func (r memCategoryRepo) GetByUserID(_ context.Context, userID uuid.UUID) ([]models.ExpenseCategory, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var result []models.ExpenseCategory
	for _, c := range r.db.categories {
		if c.UserID == userID {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SortOrder < result[j].SortOrder })
	return result, nil
}

func (r memCategoryRepo) Update(_ context.Context, id, userID uuid.UUID, update *models.CategoryUpdate) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c, ok := r.db.categories[id]
	if !ok || c.UserID != userID {
		return pgx.ErrNoRows
	}
	if update.Name != nil {
		c.Name = *update.Name
	}
	if update.PrimaryColor != nil {
		c.PrimaryColor = *update.PrimaryColor
	}
	if update.SortOrder != nil {
		c.SortOrder = *update.SortOrder
	}
	r.db.categories[id] = c
	return nil
}

func (r memCategoryRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c, ok := r.db.categories[id]
	if !ok || c.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(r.db.categories, id)
	// как ON DELETE CASCADE в схеме
	for expenseID, e := range r.db.expenses {
		if e.CategoryID == id {
			delete(r.db.expenses, expenseID)
		}
	}
	return nil
}

type memExpenseRepo struct{ db *memoryDB }

func (r memExpenseRepo) Create(_ context.Context, expense *models.Expense) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	if expense.CreatedAt.IsZero() {
		expense.CreatedAt = time.Now()
	}
	r.db.expenses[expense.ID] = *expense
	return nil
}

func (r memExpenseRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Expense, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	e, ok := r.db.expenses[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &e, nil
}

func (r memExpenseRepo) GetByFilter(_ context.Context, userID uuid.UUID, _ *models.ExpenseFilter) ([]models.Expense, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var result []models.Expense
	for _, e := range r.db.expenses {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r memExpenseRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	e, ok := r.db.expenses[id]
	if !ok || e.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(r.db.expenses, id)
	return nil
}

func (r memExpenseRepo) FetchCategoriesWithExpenses(_ context.Context, userID uuid.UUID, interval models.DateInterval, names []string) ([]models.ExpenseCategory, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.fetches++

	var result []models.ExpenseCategory
	for _, c := range r.db.categories {
		if c.UserID != userID || (len(names) > 0 && !slices.Contains(names, c.Name)) {
			continue
		}
		c.Expenses = nil
		for _, e := range r.db.expenses {
			if e.CategoryID == c.ID && interval.Contains(e.Date) {
				c.Expenses = append(c.Expenses, e)
			}
		}
		if len(c.Expenses) > 0 {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SortOrder < result[j].SortOrder })
	return result, nil
}

// rublesOnly курс 1:1 для всех валют, тестам сервисов курсы не важны
type rublesOnly struct{}

func (rublesOnly) Convert(_ context.Context, value decimal.Decimal, _ models.Currency) (models.Amount, error) {
	return models.NewAmount(value, value, value), nil
}

type recordingListener struct {
	users []uuid.UUID
}

func (l *recordingListener) ExpensesChanged(userID uuid.UUID) {
	l.users = append(l.users, userID)
}
