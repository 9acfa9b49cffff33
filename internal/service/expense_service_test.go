package service

import (
	"context"
	"testing"
	"time"

	"github.com/alligatorO15/expense-analytics/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type expenseFixture struct {
	db       *memoryDB
	svc      ExpenseService
	listener *recordingListener
	userID   uuid.UUID
	category *models.ExpenseCategory
}

func newExpenseFixture(t *testing.T) *expenseFixture {
	t.Helper()
	db := newMemoryDB()
	repos := db.repositories()
	listener := &recordingListener{}
	userID := uuid.New()
	category, err := NewCategoryService(repos.Category, repos.TxManager, nil).Create(context.Background(), userID,
		&models.CategoryCreate{Name: "Кофе", PrimaryColor: "brown", SecondaryColor: "brownLight", IconName: "cup"})
	require.NoError(t, err)

	return &expenseFixture{
		db:       db,
		svc:      NewExpenseService(repos.TxManager, repos.Expense, repos.Category, rublesOnly{}, listener),
		listener: listener,
		userID:   userID,
		category: category,
	}
}

func (f *expenseFixture) input(value int64) *models.ExpenseCreate {
	return &models.ExpenseCreate{
		CategoryID: f.category.ID,
		Date:       time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC),
		Value:      decimal.NewFromInt(value),
		Currency:   models.CurrencyRUB,
	}
}

func TestExpenseService_Create(t *testing.T) {
	f := newExpenseFixture(t)

	expense, err := f.svc.Create(context.Background(), f.userID, f.input(250))

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, expense.ID)
	assert.True(t, expense.Amount.RUB.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, []uuid.UUID{f.userID}, f.listener.users)
}

func TestExpenseService_Create_Rejects(t *testing.T) {
	f := newExpenseFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.userID, f.input(0))
	assert.ErrorIs(t, err, ErrNonPositiveAmount)

	_, err = f.svc.Create(ctx, uuid.New(), f.input(10))
	assert.ErrorIs(t, err, ErrNotFound, "category of another user")

	missing := f.input(10)
	missing.CategoryID = uuid.New()
	_, err = f.svc.Create(ctx, f.userID, missing)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Empty(t, f.listener.users)
}

func TestExpenseService_Replace(t *testing.T) {
	f := newExpenseFixture(t)
	ctx := context.Background()
	original, err := f.svc.Create(ctx, f.userID, f.input(100))
	require.NoError(t, err)

	replaced, err := f.svc.Replace(ctx, f.userID, original.ID, f.input(300))

	require.NoError(t, err)
	assert.Equal(t, original.ID, replaced.ID)
	assert.Equal(t, original.CreatedAt, replaced.CreatedAt)
	stored, err := f.svc.GetByID(ctx, f.userID, original.ID)
	require.NoError(t, err)
	assert.True(t, stored.Amount.RUB.Equal(decimal.NewFromInt(300)))
	assert.Len(t, f.db.expenses, 1)
	assert.Len(t, f.listener.users, 2)

	_, err = f.svc.Replace(ctx, uuid.New(), original.ID, f.input(1))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExpenseService_Delete(t *testing.T) {
	f := newExpenseFixture(t)
	ctx := context.Background()
	expense, err := f.svc.Create(ctx, f.userID, f.input(100))
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.Delete(ctx, uuid.New(), expense.ID), ErrNotFound)
	require.NoError(t, f.svc.Delete(ctx, f.userID, expense.ID))
	_, err = f.svc.GetByID(ctx, f.userID, expense.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
