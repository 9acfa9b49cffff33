package service

import (
	"context"
	"errors"

	"github.com/alligatorO15/expense-analytics/internal/models"
	"github.com/alligatorO15/expense-analytics/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNonPositiveAmount = errors.New("amount must be positive")

// AmountConverter раскладывает введенную сумму по всем валютам
type AmountConverter interface {
	Convert(ctx context.Context, value decimal.Decimal, from models.Currency) (models.Amount, error)
}

// ExpenseListener узнает об изменении расходов пользователя
type ExpenseListener interface {
	ExpensesChanged(userID uuid.UUID)
}

type ExpenseService interface {
	Create(ctx context.Context, userID uuid.UUID, input *models.ExpenseCreate) (*models.Expense, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Expense, error)
	GetByFilter(ctx context.Context, userID uuid.UUID, filter *models.ExpenseFilter) ([]models.Expense, error)
	// Replace редактирование: удаление и добавление с тем же id в одной транзакции
	Replace(ctx context.Context, userID, id uuid.UUID, input *models.ExpenseCreate) (*models.Expense, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type expenseService struct {
	txManager    repository.TxManager
	expenseRepo  repository.ExpenseRepository
	categoryRepo repository.CategoryRepository
	converter    AmountConverter
	listeners    []ExpenseListener
}

func NewExpenseService(txManager repository.TxManager, expenseRepo repository.ExpenseRepository, categoryRepo repository.CategoryRepository, converter AmountConverter, listeners ...ExpenseListener) ExpenseService {
	return &expenseService{
		txManager:    txManager,
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		converter:    converter,
		listeners:    listeners,
	}
}

func (s *expenseService) Create(ctx context.Context, userID uuid.UUID, input *models.ExpenseCreate) (*models.Expense, error) {
	expense, err := s.prepare(ctx, userID, input)
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	s.changed(userID)
	return expense, nil
}

func (s *expenseService) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if expense.UserID != userID {
		return nil, ErrNotFound
	}
	return expense, nil
}

func (s *expenseService) GetByFilter(ctx context.Context, userID uuid.UUID, filter *models.ExpenseFilter) ([]models.Expense, error) {
	return s.expenseRepo.GetByFilter(ctx, userID, filter)
}

func (s *expenseService) Replace(ctx context.Context, userID, id uuid.UUID, input *models.ExpenseCreate) (*models.Expense, error) {
	original, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	// конвертируем до транзакции, чтобы не держать ее открытой на время запроса курсов
	replacement, err := s.prepare(ctx, userID, input)
	if err != nil {
		return nil, err
	}
	replacement.ID = original.ID
	replacement.CreatedAt = original.CreatedAt

	err = s.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.expenseRepo.Delete(txCtx, id, userID); err != nil {
			return notFound(err)
		}
		return s.expenseRepo.Create(txCtx, replacement)
	})
	if err != nil {
		return nil, err
	}

	s.changed(userID)
	return replacement, nil
}

func (s *expenseService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.expenseRepo.Delete(ctx, id, userID); err != nil {
		return notFound(err)
	}
	s.changed(userID)
	return nil
}

// prepare проверяет категорию и считает сумму во всех валютах
func (s *expenseService) prepare(ctx context.Context, userID uuid.UUID, input *models.ExpenseCreate) (*models.Expense, error) {
	if !input.Value.IsPositive() {
		return nil, ErrNonPositiveAmount
	}

	category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, notFound(err)
	}
	if category.UserID != userID {
		return nil, ErrNotFound
	}

	amount, err := s.converter.Convert(ctx, input.Value, input.Currency)
	if err != nil {
		return nil, err
	}

	return &models.Expense{
		UserID:     userID,
		CategoryID: input.CategoryID,
		Date:       input.Date,
		Note:       input.Note,
		Amount:     amount,
	}, nil
}

func (s *expenseService) changed(userID uuid.UUID) {
	for _, l := range s.listeners {
		l.ExpensesChanged(userID)
	}
}
