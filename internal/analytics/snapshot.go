package analytics

import (
	"github.com/alligatorO15/expense-analytics/internal/models"
	"github.com/alligatorO15/expense-analytics/internal/report"
)

// Cell ячейка окна в виде, готовом для отдачи наружу
type Cell struct {
	Interval models.DateInterval         `json:"interval"`
	Title    string                      `json:"title"`
	Report   models.PeriodCategoryReport `json:"-"`
	Display  models.ReportDisplay        `json:"display"`
	Rows     []models.CategoryRow        `json:"rows"`
}

// Snapshot копия состояния сессии, изменения сессии на нее не влияют
type Snapshot struct {
	Period              models.TimePeriod `json:"period"`
	SortOrder           models.SortOrder  `json:"sort_order"`
	Currency            models.Currency   `json:"currency"`
	CategoryFilter      []string          `json:"category_filter"`
	SelectedIndex       int               `json:"selected_index"`
	AwaitingCustomRange bool              `json:"awaiting_custom_range"`
	Cells               []Cell            `json:"cells"`
}

// Selected выбранная ячейка, false если окно пустое
func (s Snapshot) Selected() (Cell, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Cells) {
		return Cell{}, false
	}
	return s.Cells[s.SelectedIndex], true
}

func (s *Session) Snapshot() Snapshot {
	snapshot := Snapshot{
		Period:              s.period,
		SortOrder:           s.sortOrder,
		Currency:            s.currency,
		CategoryFilter:      append([]string{}, s.categoryFilter...),
		SelectedIndex:       s.selectedIndex,
		AwaitingCustomRange: s.awaitingCustomRange,
		Cells:               make([]Cell, 0, s.win.len()),
	}
	for i := range s.win.intervals {
		r := s.win.reports[i]
		snapshot.Cells = append(snapshot.Cells, Cell{
			Interval: s.win.intervals[i],
			Title:    s.win.titles[i],
			Report:   r,
			Display:  report.Display(r, s.currency),
			Rows:     report.Rows(r, s.currency),
		})
	}
	return snapshot
}
