package repository

import (
	"context"
	"time"

	"github.com/alligatorO15/expense-analytics/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.ExpenseCategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ExpenseCategory, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.ExpenseCategory, error)
	Update(ctx context.Context, id, userID uuid.UUID, update *models.CategoryUpdate) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type categoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &categoryRepository{pool: pool}
}

func (r *categoryRepository) db(ctx context.Context) DBTX {
	return GetTxOrPool(ctx, r.pool)
}

const categoryColumns = `id, user_id, name, primary_color, secondary_color, icon_name, sort_order, created_at, updated_at`

func (r *categoryRepository) Create(ctx context.Context, category *models.ExpenseCategory) error {
	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	_, err := r.db(ctx).Exec(ctx, query,
		category.ID, category.UserID, category.Name,
		category.PrimaryColor, category.SecondaryColor, category.IconName,
		category.SortOrder, category.CreatedAt, category.UpdatedAt,
	)
	return err
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ExpenseCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	category, err := scanCategory(r.db(ctx).QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.ExpenseCategory, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE user_id = $1
		ORDER BY sort_order, name
	`

	rows, err := r.db(ctx).Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.ExpenseCategory
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// Update меняет только переданные поля. Чужую или несуществующую категорию не трогает и возвращает pgx.ErrNoRows
func (r *categoryRepository) Update(ctx context.Context, id, userID uuid.UUID, update *models.CategoryUpdate) error {
	query := `
		UPDATE categories SET
			name = COALESCE($3, name),
			primary_color = COALESCE($4, primary_color),
			secondary_color = COALESCE($5, secondary_color),
			icon_name = COALESCE($6, icon_name),
			sort_order = COALESCE($7, sort_order),
			updated_at = $8
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.db(ctx).Exec(ctx, query,
		id, userID, update.Name, update.PrimaryColor, update.SecondaryColor,
		update.IconName, update.SortOrder, time.Now(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete удаляет категорию вместе с ее расходами (ON DELETE CASCADE)
func (r *categoryRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM categories WHERE id = $1 AND user_id = $2`

	tag, err := r.db(ctx).Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanCategory(row pgx.Row) (models.ExpenseCategory, error) {
	var category models.ExpenseCategory
	err := row.Scan(
		&category.ID, &category.UserID, &category.Name,
		&category.PrimaryColor, &category.SecondaryColor, &category.IconName,
		&category.SortOrder, &category.CreatedAt, &category.UpdatedAt,
	)
	return category, err
}
