package format

import (
	"testing"
	"time"

	"github.com/alligatorO15/expense-analytics/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func interval(y1 int, m1 time.Month, d1 int, y2 int, m2 time.Month, d2 int) models.DateInterval {
	return models.DateInterval{
		Start: time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC),
	}
}

func TestIntervalTitle(t *testing.T) {
	tests := []struct {
		name     string
		interval models.DateInterval
		expected string
	}{
		{"single_day", interval(2025, 5, 15, 2025, 5, 15), "15 мая 2025"},
		{"same_month", interval(2025, 5, 12, 2025, 5, 18), "12 – 18 мая 2025"},
		{"whole_month", interval(2025, 5, 1, 2025, 5, 31), "1 – 31 мая 2025"},
		{"same_year", interval(2025, 4, 28, 2025, 5, 4), "28 апреля – 4 мая 2025"},
		{"whole_year", interval(2025, 1, 1, 2025, 12, 31), "1 января – 31 декабря 2025"},
		{"across_years", interval(2025, 12, 29, 2026, 1, 4), "29 декабря 2025 – 4 января 2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IntervalTitle(tt.interval))
		})
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		value    string
		currency models.Currency
		expected string
	}{
		{"0", models.CurrencyRUB, "0,00 ₽"},
		{"100", models.CurrencyRUB, "100,00 ₽"},
		{"1234.5", models.CurrencyRUB, "1 234,50 ₽"},
		{"1234567.891", models.CurrencyUSD, "1 234 567,89 $"},
		{"-999999.99", models.CurrencyEUR, "-999 999,99 €"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Amount(decimal.RequireFromString(tt.value), tt.currency))
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "100,0 %", Percent(decimal.NewFromInt(100)))
	assert.Equal(t, "33,3 %", Percent(decimal.RequireFromString("33.33333333")))
	assert.Equal(t, "0,0 %", Percent(decimal.Zero))
}
