package models

import (
	"fmt"
	"time"
)

// TimePeriod определяет какой календарный компонент задает границы интервалов окна
type TimePeriod string

const (
	TimePeriodDay    TimePeriod = "day"
	TimePeriodWeek   TimePeriod = "week" // неделя начинается с первого дня недели календаря (по умолчанию понедельник)
	TimePeriodMonth  TimePeriod = "month"
	TimePeriodYear   TimePeriod = "year"
	TimePeriodCustom TimePeriod = "custom" // произвольный диапазон, задается пользователем
)

func ParseTimePeriod(s string) (TimePeriod, error) {
	switch p := TimePeriod(s); p {
	case TimePeriodDay, TimePeriodWeek, TimePeriodMonth, TimePeriodYear, TimePeriodCustom:
		return p, nil
	}
	return "", fmt.Errorf("unknown time period %q", s)
}

type Direction int

const (
	DirectionBefore Direction = iota
	DirectionAfter
)

type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

func (o SortOrder) Toggle() SortOrder {
	if o == SortAscending {
		return SortDescending
	}
	return SortAscending
}

// DateInterval закрытый интервал [Start, End] с точностью до дня.
// Обе границы - полночь по локальному времени календаря
type DateInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func NewDateInterval(start, end time.Time) (DateInterval, error) {
	if end.Before(start) {
		return DateInterval{}, fmt.Errorf("interval end %s is before start %s", end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	return DateInterval{Start: start, End: end}, nil
}

// Contains сравнивает по календарным дням
func (d DateInterval) Contains(t time.Time) bool {
	day := StartOfDay(t.In(d.Start.Location()))
	return !day.Before(StartOfDay(d.Start)) && !day.After(StartOfDay(d.End))
}

// ExclusiveEnd полночь дня после End, удобно для запросов date < $n
func (d DateInterval) ExclusiveEnd() time.Time {
	return StartOfDay(d.End).AddDate(0, 0, 1)
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
