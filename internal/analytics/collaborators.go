package analytics

import (
	"context"
	"time"

	"github.com/alligatorO15/expense-analytics/internal/models"
)

//go:generate mockgen -source=collaborators.go -destination=mock_collaborators_test.go -package=analytics

// ExpenseQuery отдает категории, в которых остались только расходы из [start, end] (по дням включительно).
// Пустой categoryNames значит без фильтра
type ExpenseQuery interface {
	FetchExpenses(ctx context.Context, start, end time.Time, categoryNames []string) ([]models.ExpenseCategory, error)
}

// RangePicker внешний выбор произвольного диапазона. Результат возвращается через
// Session.ApplyCustomInterval или Session.CancelCustomInterval
type RangePicker interface {
	RequestCustomRange(previous models.TimePeriod)
}

// Navigator открывает детализацию категории
type Navigator interface {
	OpenCategoryDetail(detail CategoryDetail)
}

// CategoryDetail все что нужно экрану детализации выбранной строки
type CategoryDetail struct {
	Interval models.DateInterval         `json:"interval"`
	Title    string                      `json:"title"`
	Report   models.PeriodCategoryReport `json:"-"`
	Summary  models.CategorySummary      `json:"summary"`
}
