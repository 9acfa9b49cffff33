package models

import "time"

// запросы к api сессий аналитики

type AnalyticsSessionCreate struct {
	Today    *time.Time `json:"today"`
	Period   TimePeriod `json:"period" binding:"omitempty,oneof=day week month year"`
	Currency Currency   `json:"currency" binding:"omitempty,oneof=RUB USD EUR"`
}

type PeriodUpdate struct {
	Period TimePeriod `json:"period" binding:"required,oneof=day week month year custom"`
}

type SelectedIndexUpdate struct {
	Index *int `json:"index" binding:"required"`
}

type CategoryFilterUpdate struct {
	Names []string `json:"names" binding:"dive,required"`
}

// CustomRangeInput даты в формате 2006-01-02, обе включительно
type CustomRangeInput struct {
	Start string `json:"start" binding:"required,datetime=2006-01-02"`
	End   string `json:"end" binding:"required,datetime=2006-01-02"`
}

// Interval разбирает даты в зоне loc
func (in CustomRangeInput) Interval(loc *time.Location) (DateInterval, error) {
	start, err := time.ParseInLocation("2006-01-02", in.Start, loc)
	if err != nil {
		return DateInterval{}, err
	}
	end, err := time.ParseInLocation("2006-01-02", in.End, loc)
	if err != nil {
		return DateInterval{}, err
	}
	return NewDateInterval(start, end)
}
