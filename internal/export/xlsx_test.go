package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/alligatorO15/expense-analytics/internal/analytics"
	"github.com/alligatorO15/expense-analytics/internal/models"
	"github.com/alligatorO15/expense-analytics/internal/report"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func sampleSnapshot() analytics.Snapshot {
	v := decimal.NewFromInt(250)
	food := models.ExpenseCategory{
		ID:       uuid.New(),
		Name:     "Продукты",
		Expenses: []models.Expense{{ID: uuid.New(), Amount: models.NewAmount(v, v, v)}, {ID: uuid.New(), Amount: models.NewAmount(v, v, v)}},
	}
	day := func(d int) time.Time { return time.Date(2025, 5, d, 0, 0, 0, 0, time.UTC) }

	return analytics.Snapshot{
		Period:        models.TimePeriodDay,
		Currency:      models.CurrencyRUB,
		SelectedIndex: 1,
		Cells: []analytics.Cell{
			{Interval: models.DateInterval{Start: day(14), End: day(14)}, Title: "14 мая 2025", Report: report.Build(nil, report.SelectCurrency(models.CurrencyRUB))},
			{Interval: models.DateInterval{Start: day(15), End: day(15)}, Title: "15 мая 2025", Report: report.Build([]models.ExpenseCategory{food}, report.SelectCurrency(models.CurrencyRUB))},
		},
	}
}

func TestWorkbook(t *testing.T) {
	file, err := Workbook(sampleSnapshot())
	require.NoError(t, err)

	summary := file.Sheet[SummarySheet]
	require.NotNil(t, summary)
	require.Len(t, summary.Rows, 3)
	assert.Equal(t, "Итог, RUB", summary.Rows[0].Cells[3].String())
	assert.Equal(t, "15 мая 2025", summary.Rows[2].Cells[0].Value)
	assert.Equal(t, "2025-05-15", summary.Rows[2].Cells[1].Value)
	total, err := summary.Rows[2].Cells[3].Float()
	require.NoError(t, err)
	assert.InDelta(t, 500.0, total, 1e-9)
	assert.Equal(t, "да", summary.Rows[2].Cells[4].Value)

	categories := file.Sheet[CategoriesSheet]
	require.NotNil(t, categories)
	require.Len(t, categories.Rows, 2, "header and one category, the empty day adds nothing")
	assert.Equal(t, "Продукты", categories.Rows[1].Cells[1].Value)
	count, err := categories.Rows[1].Cells[2].Int()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestWriteXLSX_RoundTrip(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteXLSX(&buf, sampleSnapshot()))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	assert.Len(t, file.Sheets, 2)
	assert.Equal(t, SummarySheet, file.Sheets[0].Name)
}
