package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alligatorO15/expense-analytics/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ExpenseRepository interface {
	Create(ctx context.Context, expense *models.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error)
	GetByFilter(ctx context.Context, userID uuid.UUID, filter *models.ExpenseFilter) ([]models.Expense, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	// FetchCategoriesWithExpenses категории пользователя с расходами за интервал.
	// Категории без расходов в интервале не возвращаются. Пустой names - без фильтра по именам
	FetchCategoriesWithExpenses(ctx context.Context, userID uuid.UUID, interval models.DateInterval, names []string) ([]models.ExpenseCategory, error)
}

type expenseRepository struct {
	pool *pgxpool.Pool
}

func NewExpenseRepository(pool *pgxpool.Pool) ExpenseRepository {
	return &expenseRepository{pool: pool}
}

// db возвращает транзакцию из контекста или pool
func (r *expenseRepository) db(ctx context.Context) DBTX {
	return GetTxOrPool(ctx, r.pool)
}

const expenseColumns = `e.id, e.user_id, e.category_id, e.date, e.note, e.amount_rub, e.amount_usd, e.amount_eur, e.created_at`

func (r *expenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	query := `
		INSERT INTO expenses (id, user_id, category_id, date, note, amount_rub, amount_usd, amount_eur, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	if expense.ID == uuid.Nil {
		expense.ID = uuid.New()
	}
	if expense.CreatedAt.IsZero() {
		expense.CreatedAt = time.Now()
	}

	_, err := r.db(ctx).Exec(ctx, query,
		expense.ID, expense.UserID, expense.CategoryID, expense.Date, expense.Note,
		expense.Amount.RUB, expense.Amount.USD, expense.Amount.EUR,
		expense.CreatedAt,
	)
	return err
}

func (r *expenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses e WHERE e.id = $1`

	expense, err := scanExpense(r.db(ctx).QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) GetByFilter(ctx context.Context, userID uuid.UUID, filter *models.ExpenseFilter) ([]models.Expense, error) {
	baseQuery := `SELECT ` + expenseColumns + ` FROM expenses e WHERE e.user_id = $1`

	var conditions []string
	args := []interface{}{userID}
	argIndex := 2

	if filter != nil && filter.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("e.date >= $%d", argIndex))
		args = append(args, models.StartOfDay(*filter.DateFrom))
		argIndex++
	}

	if filter != nil && filter.DateTo != nil {
		// DateTo включительно: берем все до полуночи следующего дня
		conditions = append(conditions, fmt.Sprintf("e.date < $%d", argIndex))
		args = append(args, models.StartOfDay(*filter.DateTo).AddDate(0, 0, 1))
		argIndex++
	}

	if len(conditions) > 0 {
		baseQuery += " AND " + strings.Join(conditions, " AND ")
	}
	baseQuery += " ORDER BY e.date DESC, e.created_at DESC"

	rows, err := r.db(ctx).Query(ctx, baseQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

func (r *expenseRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM expenses WHERE id = $1 AND user_id = $2`

	tag, err := r.db(ctx).Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *expenseRepository) FetchCategoriesWithExpenses(ctx context.Context, userID uuid.UUID, interval models.DateInterval, names []string) ([]models.ExpenseCategory, error) {
	query := `
		SELECT c.id, c.user_id, c.name, c.primary_color, c.secondary_color, c.icon_name, c.sort_order, c.created_at, c.updated_at,
			` + expenseColumns + `
		FROM categories c
		JOIN expenses e ON e.category_id = c.id
		WHERE c.user_id = $1 AND e.date >= $2 AND e.date < $3
	`
	args := []interface{}{userID, models.StartOfDay(interval.Start), interval.ExclusiveEnd()}

	if len(names) > 0 {
		query += " AND c.name = ANY($4)"
		args = append(args, names)
	}
	query += " ORDER BY c.sort_order, c.name, c.id, e.date, e.created_at"

	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var joined []categoryExpenseRow
	for rows.Next() {
		var row categoryExpenseRow
		c, e := &row.category, &row.expense
		err := rows.Scan(
			&c.ID, &c.UserID, &c.Name, &c.PrimaryColor, &c.SecondaryColor, &c.IconName,
			&c.SortOrder, &c.CreatedAt, &c.UpdatedAt,
			&e.ID, &e.UserID, &e.CategoryID, &e.Date, &e.Note,
			&e.Amount.RUB, &e.Amount.USD, &e.Amount.EUR, &e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		joined = append(joined, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return groupByCategory(joined), nil
}

// строка join categories x expenses
type categoryExpenseRow struct {
	category models.ExpenseCategory
	expense  models.Expense
}

// groupByCategory сворачивает строки, отсортированные по категории, в категории со списками расходов.
// Строки одной категории идут подряд, порядок категорий сохраняется
func groupByCategory(rows []categoryExpenseRow) []models.ExpenseCategory {
	var categories []models.ExpenseCategory

	for _, row := range rows {
		last := len(categories) - 1
		if last < 0 || !models.SameCategory(categories[last], row.category) {
			category := row.category
			category.Expenses = nil
			categories = append(categories, category)
			last++
		}
		categories[last].Expenses = append(categories[last].Expenses, row.expense)
	}
	return categories
}

func scanExpense(row pgx.Row) (models.Expense, error) {
	var expense models.Expense
	err := row.Scan(
		&expense.ID, &expense.UserID, &expense.CategoryID, &expense.Date, &expense.Note,
		&expense.Amount.RUB, &expense.Amount.USD, &expense.Amount.EUR,
		&expense.CreatedAt,
	)
	return expense, err
}
