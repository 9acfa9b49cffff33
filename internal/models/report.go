package models

import (
	"github.com/shopspring/decimal"
)

// CategorySummary агрегат одной категории за интервал
type CategorySummary struct {
	Category ExpenseCategory `json:"category"`
	Amount   decimal.Decimal `json:"amount"`  // сумма в домашней валюте
	Percent  decimal.Decimal `json:"percent"` // доля от итога интервала в %, 0 если итог 0
}

// PeriodCategoryReport агрегат одного интервала окна
// sum(Summaries[i].Amount) == TotalAmount
type PeriodCategoryReport struct {
	Summaries   []CategorySummary `json:"summaries"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
}

func (r PeriodCategoryReport) IsEmpty() bool {
	return r.TotalAmount.IsZero()
}

// Segment кусок круговой диаграммы
type Segment struct {
	ColorRole string          `json:"color_role"`
	Percent   decimal.Decimal `json:"percent"`
}

// ReportDisplay то что нужно экрану для диаграммы: отформатированный итог + сегменты
type ReportDisplay struct {
	TotalAmount string    `json:"total_amount"`
	Segments    []Segment `json:"segments"`
}

// CategoryRow строка таблицы категорий под диаграммой
type CategoryRow struct {
	CategoryID     string `json:"category_id"`
	IconName       string `json:"icon_name"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	Name           string `json:"name"`
	ExpenseCount   int    `json:"expense_count"`
	Amount         string `json:"amount"`
	Percent        string `json:"percent"`
}
