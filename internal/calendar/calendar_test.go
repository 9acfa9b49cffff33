package calendar

import (
	"testing"
	"time"

	"github.com/alligatorO15/expense-analytics/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var moscow = time.FixedZone("MSK", 3*60*60)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, moscow)
}

func TestListDateIntervals_Month(t *testing.T) {
	cal := New(moscow)

	intervals := cal.ListDateIntervals(models.TimePeriodMonth, time.Date(2025, 5, 15, 14, 30, 0, 0, moscow))

	require.Len(t, intervals, 5)
	expected := []models.DateInterval{
		{Start: date(2025, 3, 1), End: date(2025, 3, 31)},
		{Start: date(2025, 4, 1), End: date(2025, 4, 30)},
		{Start: date(2025, 5, 1), End: date(2025, 5, 31)},
		{Start: date(2025, 6, 1), End: date(2025, 6, 30)},
		{Start: date(2025, 7, 1), End: date(2025, 7, 31)},
	}
	for i := range expected {
		assert.True(t, expected[i].Start.Equal(intervals[i].Start), "start of %d: %s", i, intervals[i].Start)
		assert.True(t, expected[i].End.Equal(intervals[i].End), "end of %d: %s", i, intervals[i].End)
	}
}

func TestIntervalFor(t *testing.T) {
	tests := []struct {
		name      string
		cal       Calendar
		period    models.TimePeriod
		reference time.Time
		start     time.Time
		end       time.Time
	}{
		{"day", New(moscow), models.TimePeriodDay, time.Date(2025, 5, 15, 23, 59, 0, 0, moscow), date(2025, 5, 15), date(2025, 5, 15)},
		{"week_monday_first", New(moscow), models.TimePeriodWeek, date(2025, 5, 14), date(2025, 5, 12), date(2025, 5, 18)},
		{"week_on_sunday", New(moscow), models.TimePeriodWeek, date(2025, 5, 18), date(2025, 5, 12), date(2025, 5, 18)},
		{"week_sunday_first", Calendar{Location: moscow, FirstWeekday: time.Sunday}, models.TimePeriodWeek, date(2025, 5, 14), date(2025, 5, 11), date(2025, 5, 17)},
		{"february_leap", New(moscow), models.TimePeriodMonth, date(2024, 2, 10), date(2024, 2, 1), date(2024, 2, 29)},
		{"year", New(moscow), models.TimePeriodYear, date(2025, 8, 3), date(2025, 1, 1), date(2025, 12, 31)},
		{"custom_identity", New(moscow), models.TimePeriodCustom, date(2025, 8, 3), date(2025, 8, 3), date(2025, 8, 3)},
		{"unknown_period_fallback", New(moscow), models.TimePeriod("quarter"), date(2025, 8, 3), date(2025, 8, 3), date(2025, 8, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval := tt.cal.IntervalFor(tt.period, tt.reference)

			assert.True(t, tt.start.Equal(interval.Start), "start: %s", interval.Start)
			assert.True(t, tt.end.Equal(interval.End), "end: %s", interval.End)
		})
	}
}

func TestListDateIntervals_Properties(t *testing.T) {
	cal := New(moscow)
	anchors := []time.Time{
		date(2025, 1, 1),
		date(2024, 2, 29),
		date(2025, 5, 15),
		date(2025, 12, 31),
		time.Date(2025, 3, 30, 23, 30, 0, 0, moscow),
	}
	periods := []models.TimePeriod{models.TimePeriodDay, models.TimePeriodWeek, models.TimePeriodMonth, models.TimePeriodYear}

	for _, period := range periods {
		for _, anchor := range anchors {
			intervals := cal.ListDateIntervals(period, anchor)

			require.Len(t, intervals, 5, "%s %s", period, anchor)
			assert.True(t, intervals[2].Contains(anchor), "%s: middle cell must contain %s", period, anchor)
			for i, interval := range intervals {
				assert.False(t, interval.End.Before(interval.Start), "%s: cell %d is inverted", period, i)
				if i == 0 {
					continue
				}
				prev := intervals[i-1]
				assert.True(t, prev.End.AddDate(0, 0, 1).Equal(interval.Start),
					"%s @ %s: gap or overlap between %d and %d", period, anchor, i-1, i)
			}
		}
	}
}

func TestAdjacentInterval_Seamless(t *testing.T) {
	cal := New(moscow)
	periods := []models.TimePeriod{models.TimePeriodDay, models.TimePeriodWeek, models.TimePeriodMonth, models.TimePeriodYear}

	for _, period := range periods {
		window := cal.ListDateIntervals(period, date(2025, 5, 15))
		first, last := window[0], window[len(window)-1]

		before, ok := cal.AdjacentInterval(period, first.Start, models.DirectionBefore)
		require.True(t, ok)
		after, ok := cal.AdjacentInterval(period, last.Start, models.DirectionAfter)
		require.True(t, ok)

		assert.True(t, before.End.AddDate(0, 0, 1).Equal(first.Start), "%s: before must end right before the window", period)
		assert.True(t, last.End.AddDate(0, 0, 1).Equal(after.Start), "%s: after must start right after the window", period)
	}
}

func TestAdjacentInterval_MonthFromEndOfMonth(t *testing.T) {
	cal := New(moscow)

	// 31 января + 1 месяц через AddDate дал бы 3 марта, интервал должен быть февралем
	after, ok := cal.AdjacentInterval(models.TimePeriodMonth, date(2025, 1, 31), models.DirectionAfter)

	require.True(t, ok)
	assert.True(t, date(2025, 2, 1).Equal(after.Start))
	assert.True(t, date(2025, 2, 28).Equal(after.End))
}

func TestCustomPeriodIsNotAutoExtended(t *testing.T) {
	cal := New(moscow)

	assert.Nil(t, cal.ListDateIntervals(models.TimePeriodCustom, date(2025, 5, 15)))
	_, ok := cal.AdjacentInterval(models.TimePeriodCustom, date(2025, 5, 15), models.DirectionAfter)
	assert.False(t, ok)
}
