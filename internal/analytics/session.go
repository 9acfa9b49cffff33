// Package analytics держит состояние экрана аналитики: скользящее окно интервалов,
// отчеты по ним, выбранный индекс, период, фильтр категорий и порядок сортировки.
//
// Каждая операция строит новое окно в стороне и подменяет его целиком,
// после чего один раз уведомляет наблюдателей.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"time"

	"github.com/alligatorO15/expense-analytics/internal/calendar"
	"github.com/alligatorO15/expense-analytics/internal/format"
	"github.com/alligatorO15/expense-analytics/internal/models"
	"github.com/alligatorO15/expense-analytics/internal/report"
)

var (
	ErrIndexOutOfRange = errors.New("selected index out of window range")
	ErrRowOutOfRange   = errors.New("category row out of range")
	ErrEmptyWindow     = errors.New("analytics window is empty")
	ErrInvalidInterval = errors.New("interval end is before start")
)

type Options struct {
	Query     ExpenseQuery
	Picker    RangePicker // может быть nil
	Navigator Navigator   // может быть nil
	Calendar  calendar.Calendar
	Currency  models.Currency
	SortOrder models.SortOrder
	Logger    *log.Logger
	Observers []Observer
	// Now часы сессии, по умолчанию time.Now
	Now func() time.Time
}

// window три параллельных среза одной длины, индекс i во всех - одна ячейка
type window struct {
	intervals []models.DateInterval
	reports   []models.PeriodCategoryReport
	titles    []string
}

func (w window) len() int {
	return len(w.intervals)
}

// окно, которое показывали до входа в custom, для отмены выбора диапазона
type stashedWindow struct {
	period        models.TimePeriod
	win           window
	selectedIndex int
}

// Session не потокобезопасна: одна операция за раз, как и один жест пользователя за раз
type Session struct {
	query     ExpenseQuery
	picker    RangePicker
	navigator Navigator
	calendar  calendar.Calendar
	currency  models.Currency
	logger    *log.Logger
	observers []Observer
	now       func() time.Time

	// today опорный день окна. initDay и clockAtInit - день и показания часов на момент Initialize
	today               time.Time
	initDay             time.Time
	clockAtInit         time.Time
	period              models.TimePeriod
	previousPeriod      models.TimePeriod
	sortOrder           models.SortOrder
	categoryFilter      []string
	awaitingCustomRange bool

	win           window
	selectedIndex int
	stash         *stashedWindow
}

func NewSession(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	currency := opts.Currency
	if currency == "" {
		currency = models.CurrencyRUB
	}
	sortOrder := opts.SortOrder
	if sortOrder == "" {
		sortOrder = models.SortDescending
	}
	cal := opts.Calendar
	if cal.Location == nil {
		cal = calendar.New(nil)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	clock := now()

	return &Session{
		query:          opts.Query,
		picker:         opts.Picker,
		navigator:      opts.Navigator,
		calendar:       cal,
		currency:       currency,
		logger:         logger,
		observers:      append([]Observer(nil), opts.Observers...),
		now:            now,
		today:          clock.In(cal.Location),
		initDay:        clock.In(cal.Location),
		clockAtInit:    clock,
		period:         models.TimePeriodDay,
		previousPeriod: models.TimePeriodDay,
		sortOrder:      sortOrder,
	}
}

func (s *Session) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// Initialize строит дневное окно вокруг today и выбирает его середину
func (s *Session) Initialize(ctx context.Context, today time.Time) {
	s.today = today.In(s.calendar.Location)
	s.initDay = s.today
	s.clockAtInit = s.now()
	s.period = models.TimePeriodDay
	s.previousPeriod = models.TimePeriodDay
	s.awaitingCustomRange = false
	s.stash = nil

	win := s.buildWindow(ctx, s.calendar.ListDateIntervals(s.period, s.today))
	s.commit(win, calendar.WindowRadius)
}

// UpdateTypeTimePeriod для day/week/month/year перестраивает окно вокруг today.
// Для custom очищает окно и просит RangePicker выбрать диапазон
func (s *Session) UpdateTypeTimePeriod(ctx context.Context, period models.TimePeriod) {
	if period == models.TimePeriodCustom {
		s.enterCustomMode()
		return
	}

	s.today = s.currentDay()
	s.period = period
	s.awaitingCustomRange = false
	s.stash = nil

	win := s.buildWindow(ctx, s.calendar.ListDateIntervals(period, s.today))
	s.commit(win, calendar.WindowRadius)
}

// currentDay день Initialize, сдвинутый на число полуночей, прошедших с тех пор по часам сессии
func (s *Session) currentDay() time.Time {
	loc := s.calendar.Location
	from := models.StartOfDay(s.clockAtInit.In(loc))
	to := models.StartOfDay(s.now().In(loc))
	days := int(math.Round(to.Sub(from).Hours() / 24))
	if days <= 0 {
		return s.initDay
	}
	return s.initDay.AddDate(0, 0, days)
}

func (s *Session) enterCustomMode() {
	if s.period != models.TimePeriodCustom {
		s.previousPeriod = s.period
	}
	if s.win.len() > 0 {
		s.stash = &stashedWindow{period: s.period, win: s.win, selectedIndex: s.selectedIndex}
	}
	s.period = models.TimePeriodCustom
	s.awaitingCustomRange = true

	s.commit(window{}, 0)

	if s.picker != nil {
		s.picker.RequestCustomRange(s.previousPeriod)
	}
	s.notify(Event{Kind: EventCustomRangeRequested, Period: s.period, WindowLength: 0})
}

// ApplyCustomInterval заменяет окно одной ячейкой с выбранным диапазоном
func (s *Session) ApplyCustomInterval(ctx context.Context, interval models.DateInterval) error {
	interval = models.DateInterval{
		Start: models.StartOfDay(interval.Start.In(s.calendar.Location)),
		End:   models.StartOfDay(interval.End.In(s.calendar.Location)),
	}
	// сравниваем дни, время внутри дня не важно
	if interval.End.Before(interval.Start) {
		return ErrInvalidInterval
	}

	if s.period != models.TimePeriodCustom {
		s.previousPeriod = s.period
	}
	s.period = models.TimePeriodCustom
	s.awaitingCustomRange = false
	s.stash = nil

	win := s.buildWindow(ctx, []models.DateInterval{interval})
	s.commit(win, 0)
	return nil
}

// CancelCustomInterval возвращает окно, которое было до входа в custom, без перезапроса данных.
// Если возвращать нечего - строит окно предыдущего периода заново
func (s *Session) CancelCustomInterval(ctx context.Context) {
	if !s.awaitingCustomRange {
		return
	}
	s.awaitingCustomRange = false

	if stash := s.stash; stash != nil {
		s.stash = nil
		s.period = stash.period
		s.commit(stash.win, stash.selectedIndex)
		return
	}

	previous := s.previousPeriod
	if previous == models.TimePeriodCustom {
		previous = models.TimePeriodDay
	}
	s.UpdateTypeTimePeriod(ctx, previous)
}

// UpdateSelectedIndex выбирает ячейку. Если это крайняя ячейка - окно растет на одну ячейку в ее сторону.
// При росте в начало выбор остается на той же ячейке, то есть на индексе 1
func (s *Session) UpdateSelectedIndex(ctx context.Context, index int) error {
	length := s.win.len()
	if index < 0 || index >= length {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, length)
	}

	win, selected := s.win, index
	if s.period != models.TimePeriodCustom {
		switch index {
		case length - 1:
			last := s.win.intervals[length-1]
			if interval, ok := s.calendar.AdjacentInterval(s.period, last.Start, models.DirectionAfter); ok {
				win = s.win.appended(s.buildCell(ctx, interval))
			}
		case 0:
			first := s.win.intervals[0]
			if interval, ok := s.calendar.AdjacentInterval(s.period, first.Start, models.DirectionBefore); ok {
				win = s.win.prepended(s.buildCell(ctx, interval))
				selected = 1
			}
		}
	}

	s.commit(win, selected)
	return nil
}

// UpdateSelectedCategories запоминает фильтр по именам категорий и перезапрашивает все ячейки
// с теми же границами
func (s *Session) UpdateSelectedCategories(ctx context.Context, names []string) {
	s.categoryFilter = append([]string(nil), names...)
	s.commit(s.buildWindow(ctx, s.win.intervals), s.selectedIndex)
}

// UpdateCategorySortOrder меняет порядок сортировки и пересортировывает уже посчитанные отчеты
func (s *Session) UpdateCategorySortOrder(ctx context.Context) {
	s.sortOrder = s.sortOrder.Toggle()

	win := window{
		intervals: append([]models.DateInterval(nil), s.win.intervals...),
		reports:   make([]models.PeriodCategoryReport, s.win.len()),
		titles:    append([]string(nil), s.win.titles...),
	}
	for i, r := range s.win.reports {
		win.reports[i] = report.Sort(r, s.sortOrder)
	}
	s.commit(win, s.selectedIndex)
}

// Refresh перезапрашивает все ячейки окна, например после добавления расхода
func (s *Session) Refresh(ctx context.Context) {
	s.commit(s.buildWindow(ctx, s.win.intervals), s.selectedIndex)
}

// SelectCategory открывает детализацию row-й категории выбранной ячейки
func (s *Session) SelectCategory(row int) (CategoryDetail, error) {
	if s.win.len() == 0 {
		return CategoryDetail{}, ErrEmptyWindow
	}
	r := s.win.reports[s.selectedIndex]
	if row < 0 || row >= len(r.Summaries) {
		return CategoryDetail{}, fmt.Errorf("%w: %d not in [0, %d)", ErrRowOutOfRange, row, len(r.Summaries))
	}

	detail := CategoryDetail{
		Interval: s.win.intervals[s.selectedIndex],
		Title:    s.win.titles[s.selectedIndex],
		Report:   r,
		Summary:  r.Summaries[row],
	}
	if s.navigator != nil {
		s.navigator.OpenCategoryDetail(detail)
	}
	s.notify(Event{
		Kind:          EventCategorySelected,
		Period:        s.period,
		SelectedIndex: s.selectedIndex,
		WindowLength:  s.win.len(),
		Detail:        &detail,
	})
	return detail, nil
}

func (s *Session) Period() models.TimePeriod {
	return s.period
}

func (s *Session) SortOrder() models.SortOrder {
	return s.sortOrder
}

func (s *Session) SelectedIndex() int {
	return s.selectedIndex
}

func (s *Session) Len() int {
	return s.win.len()
}

func (s *Session) AwaitingCustomRange() bool {
	return s.awaitingCustomRange
}

func (s *Session) buildWindow(ctx context.Context, intervals []models.DateInterval) window {
	win := window{
		intervals: make([]models.DateInterval, 0, len(intervals)),
		reports:   make([]models.PeriodCategoryReport, 0, len(intervals)),
		titles:    make([]string, 0, len(intervals)),
	}
	for _, interval := range intervals {
		c := s.buildCell(ctx, interval)
		win.intervals = append(win.intervals, c.interval)
		win.reports = append(win.reports, c.report)
		win.titles = append(win.titles, c.title)
	}
	return win
}

type cell struct {
	interval models.DateInterval
	report   models.PeriodCategoryReport
	title    string
}

func (s *Session) buildCell(ctx context.Context, interval models.DateInterval) cell {
	title := format.IntervalTitle(interval)

	categories, err := s.query.FetchExpenses(ctx, interval.Start, interval.End, s.categoryFilter)
	if err != nil {
		// ошибку не пробрасываем: ячейка считается пустой
		s.logger.Printf("analytics: не удалось получить расходы за %s: %v", title, err)
		categories = nil
	}

	r := report.Sort(report.Build(categories, report.SelectCurrency(s.currency)), s.sortOrder)
	return cell{interval: interval, report: r, title: title}
}

func (w window) appended(c cell) window {
	return window{
		intervals: append(append(make([]models.DateInterval, 0, w.len()+1), w.intervals...), c.interval),
		reports:   append(append(make([]models.PeriodCategoryReport, 0, w.len()+1), w.reports...), c.report),
		titles:    append(append(make([]string, 0, w.len()+1), w.titles...), c.title),
	}
}

func (w window) prepended(c cell) window {
	return window{
		intervals: append([]models.DateInterval{c.interval}, w.intervals...),
		reports:   append([]models.PeriodCategoryReport{c.report}, w.reports...),
		titles:    append([]string{c.title}, w.titles...),
	}
}

// commit единственное место, где меняется окно
func (s *Session) commit(win window, selected int) {
	s.win = win
	s.selectedIndex = selected
	s.notify(Event{
		Kind:          EventWindowCommitted,
		Period:        s.period,
		SelectedIndex: selected,
		WindowLength:  win.len(),
	})
}

func (s *Session) notify(event Event) {
	for _, o := range s.observers {
		o.OnAnalyticsEvent(event)
	}
}
