package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense неизменяемая запись о расходе. Редактирование = удаление + добавление с тем же id
type Expense struct {
	ID         uuid.UUID `json:"id" db:"id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	CategoryID uuid.UUID `json:"category_id" db:"category_id"`
	Date       time.Time `json:"date" db:"date"`
	Note       *string   `json:"note,omitempty" db:"note"`
	Amount     Amount    `json:"amount"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type ExpenseCreate struct {
	CategoryID uuid.UUID       `json:"category_id" binding:"required"`
	Date       time.Time       `json:"date" binding:"required"`
	Note       *string         `json:"note"`
	Value      decimal.Decimal `json:"value" binding:"required"`
	Currency   Currency        `json:"currency" binding:"required,oneof=RUB USD EUR"`
}

type ExpenseFilter struct {
	DateFrom *time.Time `form:"date_from" time_format:"2006-01-02"`
	DateTo   *time.Time `form:"date_to" time_format:"2006-01-02"`
}
