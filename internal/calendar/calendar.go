// Package calendar переводит тип периода и опорную дату в конкретные интервалы окна аналитики.
// Состояния не хранит.
package calendar

import (
	"time"

	"github.com/alligatorO15/expense-analytics/internal/models"
)

// WindowRadius сколько интервалов строится по каждую сторону от опорного
const WindowRadius = 2

// Calendar правила недели и часовой пояс, в котором считаются границы
type Calendar struct {
	Location     *time.Location
	FirstWeekday time.Weekday
}

// New календарь с понедельником как первым днем недели
func New(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.Local
	}
	return Calendar{Location: loc, FirstWeekday: time.Monday}
}

// ListDateIntervals возвращает 5 интервалов по возрастанию: 2 до, интервал с anchor и 2 после.
// Для custom возвращает nil - единственный интервал задает пользователь
func (c Calendar) ListDateIntervals(period models.TimePeriod, anchor time.Time) []models.DateInterval {
	if period == models.TimePeriodCustom {
		return nil
	}

	current := c.IntervalFor(period, anchor)
	intervals := make([]models.DateInterval, 0, 2*WindowRadius+1)
	for offset := -WindowRadius; offset <= WindowRadius; offset++ {
		intervals = append(intervals, c.IntervalFor(period, c.shift(period, current.Start, offset)))
	}
	return intervals
}

// AdjacentInterval интервал сразу до или после того, в который попадает reference.
// Для custom второе значение false - такой интервал нельзя продолжить
func (c Calendar) AdjacentInterval(period models.TimePeriod, reference time.Time, direction models.Direction) (models.DateInterval, bool) {
	if period == models.TimePeriodCustom {
		return models.DateInterval{}, false
	}

	offset := 1
	if direction == models.DirectionBefore {
		offset = -1
	}
	start := c.IntervalFor(period, reference).Start
	return c.IntervalFor(period, c.shift(period, start, offset)), true
}

// IntervalFor границы интервала периода, содержащего reference
func (c Calendar) IntervalFor(period models.TimePeriod, reference time.Time) models.DateInterval {
	day := models.StartOfDay(reference.In(c.location()))

	switch period {
	case models.TimePeriodDay, models.TimePeriodCustom:
		return models.DateInterval{Start: day, End: day}
	case models.TimePeriodWeek:
		start := c.weekStart(day)
		return models.DateInterval{Start: start, End: start.AddDate(0, 0, 6)}
	case models.TimePeriodMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return models.DateInterval{Start: start, End: start.AddDate(0, 1, -1)}
	case models.TimePeriodYear:
		start := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, day.Location())
		return models.DateInterval{Start: start, End: start.AddDate(1, 0, -1)}
	default:
		// не умеем считать такой период - вырожденный интервал вместо ошибки
		return models.DateInterval{Start: day, End: day}
	}
}

// shift сдвигает начало интервала на offset единиц периода.
// Для месяца и года start всегда первое число, поэтому AddDate не "перескакивает" через месяц
func (c Calendar) shift(period models.TimePeriod, start time.Time, offset int) time.Time {
	switch period {
	case models.TimePeriodWeek:
		return start.AddDate(0, 0, 7*offset)
	case models.TimePeriodMonth:
		return start.AddDate(0, offset, 0)
	case models.TimePeriodYear:
		return start.AddDate(offset, 0, 0)
	default:
		return start.AddDate(0, 0, offset)
	}
}

func (c Calendar) weekStart(day time.Time) time.Time {
	diff := (int(day.Weekday()) - int(c.FirstWeekday) + 7) % 7
	return day.AddDate(0, 0, -diff)
}

func (c Calendar) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}
