// Package report сворачивает категории с расходами одного интервала в итог,
// суммы по категориям и их доли
package report

import (
	"sort"

	"github.com/alligatorO15/expense-analytics/internal/models"
	"github.com/shopspring/decimal"
)

// PlaceholderColorRole цвет единственного сегмента диаграммы для интервала без расходов
const PlaceholderColorRole = "gray"

var hundred = decimal.NewFromInt(100)

// AmountSelector выбирает из Amount значение в домашней валюте
type AmountSelector func(models.Amount) decimal.Decimal

func SelectCurrency(currency models.Currency) AmountSelector {
	return func(a models.Amount) decimal.Decimal {
		return a.In(currency)
	}
}

// Build считает отчет по интервалу. Порядок категорий сохраняется, сортирует вызывающий
func Build(categories []models.ExpenseCategory, amountOf AmountSelector) models.PeriodCategoryReport {
	report := models.PeriodCategoryReport{
		Summaries:   make([]models.CategorySummary, 0, len(categories)),
		TotalAmount: decimal.Zero,
	}

	for _, category := range categories {
		amount := decimal.Zero
		for _, expense := range category.Expenses {
			amount = amount.Add(amountOf(expense.Amount))
		}
		report.TotalAmount = report.TotalAmount.Add(amount)
		report.Summaries = append(report.Summaries, models.CategorySummary{
			Category: category,
			Amount:   amount,
			Percent:  decimal.Zero,
		})
	}

	// второй проход: доли можно посчитать только зная итог
	if !report.TotalAmount.IsZero() {
		for i := range report.Summaries {
			report.Summaries[i].Percent = report.Summaries[i].Amount.Div(report.TotalAmount).Mul(hundred)
		}
	}

	return report
}

// Sort стабильно сортирует категории по сумме. Итог и доли не пересчитываются
func Sort(report models.PeriodCategoryReport, order models.SortOrder) models.PeriodCategoryReport {
	summaries := make([]models.CategorySummary, len(report.Summaries))
	copy(summaries, report.Summaries)

	sort.SliceStable(summaries, func(i, j int) bool {
		if order == models.SortAscending {
			return summaries[i].Amount.LessThan(summaries[j].Amount)
		}
		return summaries[i].Amount.GreaterThan(summaries[j].Amount)
	})

	return models.PeriodCategoryReport{Summaries: summaries, TotalAmount: report.TotalAmount}
}

// Segments сегменты круговой диаграммы. Для пустого интервала - один серый сегмент на 100%,
// чтобы экрану всегда было что нарисовать
func Segments(report models.PeriodCategoryReport) []models.Segment {
	if report.IsEmpty() {
		return []models.Segment{{ColorRole: PlaceholderColorRole, Percent: hundred}}
	}

	segments := make([]models.Segment, 0, len(report.Summaries))
	for _, summary := range report.Summaries {
		segments = append(segments, models.Segment{
			ColorRole: summary.Category.PrimaryColor,
			Percent:   summary.Percent,
		})
	}
	return segments
}
