package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	CurrencyRUB Currency = "RUB"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// SupportedCurrencies порядок важен: так же идут колонки amount_* в бд
var SupportedCurrencies = []Currency{CurrencyRUB, CurrencyUSD, CurrencyEUR}

func ParseCurrency(s string) (Currency, error) {
	for _, c := range SupportedCurrencies {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unsupported currency %q", s)
}

// Amount одна и та же сумма сразу в трех валютах.
// Заполняется один раз при вводе расхода (введенная сумма + две сконвертированные) и больше не меняется
type Amount struct {
	RUB decimal.Decimal `json:"rub" db:"amount_rub"`
	USD decimal.Decimal `json:"usd" db:"amount_usd"`
	EUR decimal.Decimal `json:"eur" db:"amount_eur"`
}

func NewAmount(rub, usd, eur decimal.Decimal) Amount {
	return Amount{RUB: rub, USD: usd, EUR: eur}
}

// In возвращает сумму в выбранной валюте, для неизвестной валюты - рубли
func (a Amount) In(currency Currency) decimal.Decimal {
	switch currency {
	case CurrencyUSD:
		return a.USD
	case CurrencyEUR:
		return a.EUR
	default:
		return a.RUB
	}
}
