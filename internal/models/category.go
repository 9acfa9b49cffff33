package models

import (
	"time"

	"github.com/google/uuid"
)

// ExpenseCategory категория расходов вместе с ее расходами.
// Для аналитики сюда попадают только расходы из запрошенного интервала (фильтрует сервис запросов)
type ExpenseCategory struct {
	ID             uuid.UUID `json:"id" db:"id"`
	UserID         uuid.UUID `json:"user_id" db:"user_id"`
	Name           string    `json:"name" db:"name"`
	PrimaryColor   string    `json:"primary_color" db:"primary_color"`     // роль основного цвета, например "orange"
	SecondaryColor string    `json:"secondary_color" db:"secondary_color"` // роль цвета фона иконки
	IconName       string    `json:"icon_name" db:"icon_name"`
	SortOrder      int       `json:"sort_order" db:"sort_order"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`

	Expenses []Expense `json:"expenses,omitempty"`
}

// SameCategory категории равны если совпадают id, остальные поля не важны
func SameCategory(a, b ExpenseCategory) bool {
	return a.ID == b.ID
}

type CategoryCreate struct {
	Name           string `json:"name" binding:"required,max=100"`
	PrimaryColor   string `json:"primary_color" binding:"required"`
	SecondaryColor string `json:"secondary_color" binding:"required"`
	IconName       string `json:"icon_name" binding:"required"`
}

type CategoryUpdate struct {
	Name           *string `json:"name"`
	PrimaryColor   *string `json:"primary_color"`
	SecondaryColor *string `json:"secondary_color"`
	IconName       *string `json:"icon_name"`
	SortOrder      *int    `json:"sort_order"`
}

// CategoryPreset описание дефолтной категории из yaml файла пресетов
type CategoryPreset struct {
	Name           string `yaml:"name" validate:"required,max=100"`
	PrimaryColor   string `yaml:"primaryColor" validate:"required"`
	SecondaryColor string `yaml:"secondaryColor" validate:"required"`
	IconName       string `yaml:"iconName" validate:"required"`
}
