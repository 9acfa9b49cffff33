package report

import (
	"github.com/alligatorO15/expense-analytics/internal/format"
	"github.com/alligatorO15/expense-analytics/internal/models"
)

func Display(report models.PeriodCategoryReport, currency models.Currency) models.ReportDisplay {
	return models.ReportDisplay{
		TotalAmount: format.Amount(report.TotalAmount, currency),
		Segments:    Segments(report),
	}
}

func Rows(report models.PeriodCategoryReport, currency models.Currency) []models.CategoryRow {
	rows := make([]models.CategoryRow, 0, len(report.Summaries))
	for _, summary := range report.Summaries {
		category := summary.Category
		rows = append(rows, models.CategoryRow{
			CategoryID:     category.ID.String(),
			IconName:       category.IconName,
			PrimaryColor:   category.PrimaryColor,
			SecondaryColor: category.SecondaryColor,
			Name:           category.Name,
			ExpenseCount:   len(category.Expenses),
			Amount:         format.Amount(summary.Amount, currency),
			Percent:        format.Percent(summary.Percent),
		})
	}
	return rows
}
