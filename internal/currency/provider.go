// Package currency конвертирует введенную сумму расхода во все поддерживаемые валюты
package currency

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alligatorO15/expense-analytics/internal/models"
	"github.com/shopspring/decimal"
)

var ErrRateUnavailable = errors.New("currency rate unavailable")

// RateProvider источник курсов. Все курсы к рублю: сколько рублей стоит одна единица валюты
type RateProvider interface {
	GetName() string
	RateToRUB(ctx context.Context, currency models.Currency) (decimal.Decimal, error)
}

// ChainProvider опрашивает провайдеров по очереди, первый успешный ответ побеждает
type ChainProvider struct {
	providers []RateProvider
}

func NewChainProvider(providers ...RateProvider) *ChainProvider {
	return &ChainProvider{providers: providers}
}

func (c *ChainProvider) GetName() string {
	names := make([]string, 0, len(c.providers))
	for _, p := range c.providers {
		names = append(names, p.GetName())
	}
	return strings.Join(names, "+")
}

func (c *ChainProvider) RateToRUB(ctx context.Context, currency models.Currency) (decimal.Decimal, error) {
	var errs []error
	for _, p := range c.providers {
		rate, err := p.RateToRUB(ctx, currency)
		if err == nil {
			return rate, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", p.GetName(), err))
	}
	return decimal.Zero, fmt.Errorf("%w for %s: %w", ErrRateUnavailable, currency, errors.Join(errs...))
}

// FixedRates курсы из конфигурации, запасной вариант когда биржа недоступна
type FixedRates map[models.Currency]decimal.Decimal

func (f FixedRates) GetName() string {
	return "fixed"
}

func (f FixedRates) RateToRUB(_ context.Context, currency models.Currency) (decimal.Decimal, error) {
	if currency == models.CurrencyRUB {
		return decimal.NewFromInt(1), nil
	}
	rate, ok := f[currency]
	if !ok || !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: no fixed rate for %s", ErrRateUnavailable, currency)
	}
	return rate, nil
}

// ParseFixedRates разбирает строку вида "USD:92.5,EUR:99.1"
func ParseFixedRates(s string) (FixedRates, error) {
	rates := FixedRates{}
	if strings.TrimSpace(s) == "" {
		return rates, nil
	}
	for _, pair := range strings.Split(s, ",") {
		code, value, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok {
			return nil, fmt.Errorf("invalid rate %q, expected CODE:VALUE", pair)
		}
		currency, err := models.ParseCurrency(strings.ToUpper(strings.TrimSpace(code)))
		if err != nil {
			return nil, err
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid rate for %s: %w", currency, err)
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("rate for %s must be positive", currency)
		}
		rates[currency] = rate
	}
	return rates, nil
}
