package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/alligatorO15/expense-analytics/internal/calendar"
	"github.com/alligatorO15/expense-analytics/internal/config"
	"github.com/alligatorO15/expense-analytics/internal/models"
	"github.com/alligatorO15/expense-analytics/internal/repository"
	"github.com/alligatorO15/expense-analytics/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC)

type stubExpenseRepo struct {
	repository.ExpenseRepository
	names [][]string
}

func (r *stubExpenseRepo) FetchCategoriesWithExpenses(ctx context.Context, userID uuid.UUID, interval models.DateInterval, names []string) ([]models.ExpenseCategory, error) {
	r.names = append(r.names, names)
	if !interval.Contains(today) {
		return nil, nil
	}
	food := models.ExpenseCategory{ID: uuid.New(), Name: "Продукты", PrimaryColor: "orange"}
	food.Expenses = []models.Expense{{ID: uuid.New(), CategoryID: food.ID, Date: today, Amount: models.NewAmount(decimal.NewFromInt(1500), decimal.NewFromInt(15), decimal.NewFromInt(14))}}
	taxi := models.ExpenseCategory{ID: uuid.New(), Name: "Транспорт", PrimaryColor: "yellow"}
	taxi.Expenses = []models.Expense{{ID: uuid.New(), CategoryID: taxi.ID, Date: today, Amount: models.NewAmount(decimal.NewFromInt(500), decimal.NewFromInt(5), decimal.NewFromInt(5))}}
	return []models.ExpenseCategory{food, taxi}, nil
}

func newAnalytics(repo repository.ExpenseRepository) service.AnalyticsService {
	return service.NewAnalyticsService(repo, service.AnalyticsOptions{
		Calendar: calendar.New(time.UTC),
		Logger:   log.New(io.Discard, "", 0),
	})
}

func testConfig() *config.Config {
	return &config.Config{Location: time.UTC, FirstWeekday: time.Monday, DefaultCurrency: "RUB"}
}

func TestSessionInput(t *testing.T) {
	input, err := sessionInput(testConfig(), Args{Period: "Week", Anchor: "2025-05-15", Currency: "usd"})

	require.NoError(t, err)
	assert.Equal(t, models.TimePeriodWeek, input.Period)
	assert.Equal(t, models.CurrencyUSD, input.Currency)
	require.NotNil(t, input.Today)
	assert.Equal(t, today, *input.Today)
}

func TestSessionInput_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args Args
	}{
		{"unknown period", Args{Period: "decade"}},
		{"custom without range", Args{Period: "custom", From: "2025-05-01"}},
		{"unknown currency", Args{Period: "month", Currency: "GBP"}},
		{"bad anchor", Args{Period: "month", Anchor: "15.05.2025"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sessionInput(testConfig(), tt.args)

			assert.Error(t, err)
		})
	}
}

func TestBuildView(t *testing.T) {
	repo := &stubExpenseRepo{}
	args := Args{Period: "day", Categories: []string{"Продукты", "Транспорт"}, Ascending: true, Shift: -1}
	input, err := sessionInput(testConfig(), Args{Period: "day", Anchor: "2025-05-16"})
	require.NoError(t, err)

	view, err := buildView(context.Background(), newAnalytics(repo), uuid.New(), time.UTC, input, args)

	require.NoError(t, err)
	assert.Equal(t, models.SortAscending, view.SortOrder)
	assert.Equal(t, []string{"Продукты", "Транспорт"}, view.CategoryFilter)
	cell, ok := view.Selected()
	require.True(t, ok)
	assert.True(t, cell.Interval.Contains(today))
	require.Len(t, cell.Rows, 2)
	assert.Equal(t, "Транспорт", cell.Rows[0].Name)
	assert.Contains(t, repo.names, []string{"Продукты", "Транспорт"})
}

func TestBuildView_CustomRange(t *testing.T) {
	args := Args{Period: "custom", From: "2025-05-01", To: "2025-05-31"}
	input, err := sessionInput(testConfig(), args)
	require.NoError(t, err)

	view, err := buildView(context.Background(), newAnalytics(&stubExpenseRepo{}), uuid.New(), time.UTC, input, args)

	require.NoError(t, err)
	assert.Equal(t, models.TimePeriodCustom, view.Period)
	require.Len(t, view.Cells, 1)
	assert.Len(t, view.Cells[0].Rows, 2)
}

func TestPrintView(t *testing.T) {
	input, err := sessionInput(testConfig(), Args{Period: "day", Anchor: "2025-05-15"})
	require.NoError(t, err)
	view, err := buildView(context.Background(), newAnalytics(&stubExpenseRepo{}), uuid.New(), time.UTC, input, Args{})
	require.NoError(t, err)

	var out bytes.Buffer
	printView(&out, view)

	assert.Contains(t, out.String(), "Продукты")
	assert.Contains(t, out.String(), "Транспорт")
	assert.Contains(t, out.String(), "*")
}
