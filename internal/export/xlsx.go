// Package export выгружает окно аналитики в xlsx
package export

import (
	"fmt"
	"io"

	"github.com/alligatorO15/expense-analytics/internal/analytics"
	"github.com/tealeg/xlsx"
)

const (
	SummarySheet    = "Сводка"
	CategoriesSheet = "Категории"

	moneyFormat   = "#,##0.00"
	percentFormat = "0.0"
	dateFormat    = "2006-01-02"
)

// Workbook строит книгу из снимка: лист сводки по интервалам и лист категорий
func Workbook(snapshot analytics.Snapshot) (*xlsx.File, error) {
	file := xlsx.NewFile()

	summary, err := file.AddSheet(SummarySheet)
	if err != nil {
		return nil, err
	}
	addHeader(summary, "Интервал", "Начало", "Конец", fmt.Sprintf("Итог, %s", snapshot.Currency), "Выбран")

	categories, err := file.AddSheet(CategoriesSheet)
	if err != nil {
		return nil, err
	}
	addHeader(categories, "Интервал", "Категория", "Расходов", fmt.Sprintf("Сумма, %s", snapshot.Currency), "Доля, %")

	for i, cell := range snapshot.Cells {
		row := summary.AddRow()
		row.AddCell().SetString(cell.Title)
		row.AddCell().SetString(cell.Interval.Start.Format(dateFormat))
		row.AddCell().SetString(cell.Interval.End.Format(dateFormat))
		total, _ := cell.Report.TotalAmount.Float64()
		row.AddCell().SetFloatWithFormat(total, moneyFormat)
		selected := ""
		if i == snapshot.SelectedIndex {
			selected = "да"
		}
		row.AddCell().SetString(selected)

		for _, s := range cell.Report.Summaries {
			row := categories.AddRow()
			row.AddCell().SetString(cell.Title)
			row.AddCell().SetString(s.Category.Name)
			row.AddCell().SetInt(len(s.Category.Expenses))
			amount, _ := s.Amount.Float64()
			row.AddCell().SetFloatWithFormat(amount, moneyFormat)
			percent, _ := s.Percent.Round(1).Float64()
			row.AddCell().SetFloatWithFormat(percent, percentFormat)
		}
	}

	return file, nil
}

// WriteXLSX пишет книгу снимка в w
func WriteXLSX(w io.Writer, snapshot analytics.Snapshot) error {
	file, err := Workbook(snapshot)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	return file.Write(w)
}

func addHeader(sheet *xlsx.Sheet, titles ...string) {
	style := xlsx.NewStyle()
	style.Font.Bold = true
	style.ApplyFont = true

	row := sheet.AddRow()
	for _, title := range titles {
		cell := row.AddCell()
		cell.SetString(title)
		cell.SetStyle(style)
	}
}
