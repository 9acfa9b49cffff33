// Package format строит строки для экрана аналитики: заголовки интервалов, суммы и проценты
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/alligatorO15/expense-analytics/internal/models"
	"github.com/shopspring/decimal"
)

// месяцы в родительном падеже: "12 мая"
var monthsGenitive = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

var currencySymbols = map[models.Currency]string{
	models.CurrencyRUB: "₽",
	models.CurrencyUSD: "$",
	models.CurrencyEUR: "€",
}

// IntervalTitle заголовок ячейки окна:
//
//	один день              "15 мая 2025"
//	один месяц и год       "12 – 18 мая 2025"
//	один год               "28 апреля – 4 мая 2025"
//	иначе                  "29 декабря 2025 – 4 января 2026"
func IntervalTitle(interval models.DateInterval) string {
	start, end := interval.Start, interval.End.In(interval.Start.Location())

	switch {
	case sameDay(start, end):
		return fmt.Sprintf("%d %s %d", start.Day(), month(start), start.Year())
	case start.Year() == end.Year() && start.Month() == end.Month():
		return fmt.Sprintf("%d – %d %s %d", start.Day(), end.Day(), month(end), end.Year())
	case start.Year() == end.Year():
		return fmt.Sprintf("%d %s – %d %s %d", start.Day(), month(start), end.Day(), month(end), end.Year())
	default:
		return fmt.Sprintf("%d %s %d – %d %s %d", start.Day(), month(start), start.Year(), end.Day(), month(end), end.Year())
	}
}

// Amount сумма с двумя знаками, разделителем разрядов и символом валюты: "1 234,50 ₽"
func Amount(value decimal.Decimal, currency models.Currency) string {
	raw := value.StringFixed(2)

	sign := ""
	if strings.HasPrefix(raw, "-") {
		sign = "-"
		raw = raw[1:]
	}
	intPart, fracPart, _ := strings.Cut(raw, ".")

	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = string(currency)
	}
	return sign + groupThousands(intPart) + "," + fracPart + " " + symbol
}

// Percent процент с одним знаком после запятой: "12,5 %"
func Percent(value decimal.Decimal) string {
	return strings.Replace(value.StringFixed(1), ".", ",", 1) + " %"
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func month(t time.Time) string {
	return monthsGenitive[t.Month()-1]
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
