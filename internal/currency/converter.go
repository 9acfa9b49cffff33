package currency

import (
	"context"
	"sync"
	"time"

	"github.com/alligatorO15/expense-analytics/internal/models"
	"github.com/shopspring/decimal"
)

type cachedRate struct {
	rate      decimal.Decimal
	fetchedAt time.Time
}

// Converter считает Amount по введенной сумме. Курсы кешируются на ttl
type Converter struct {
	provider RateProvider
	ttl      time.Duration
	now      func() time.Time

	mu    sync.Mutex
	rates map[models.Currency]cachedRate
}

func NewConverter(provider RateProvider, ttl time.Duration) *Converter {
	return &Converter{
		provider: provider,
		ttl:      ttl,
		now:      time.Now,
		rates:    make(map[models.Currency]cachedRate),
	}
}

// Convert переводит value из валюты from во все поддерживаемые валюты через рубль.
// Введенная сумма сохраняется как есть, остальные округляются до копеек
func (c *Converter) Convert(ctx context.Context, value decimal.Decimal, from models.Currency) (models.Amount, error) {
	fromRate, err := c.rate(ctx, from)
	if err != nil {
		return models.Amount{}, err
	}
	rub := value.Mul(fromRate)

	values := make(map[models.Currency]decimal.Decimal, len(models.SupportedCurrencies))
	for _, to := range models.SupportedCurrencies {
		if to == from {
			values[to] = value
			continue
		}
		toRate, err := c.rate(ctx, to)
		if err != nil {
			return models.Amount{}, err
		}
		values[to] = rub.Div(toRate).Round(2)
	}

	return models.NewAmount(values[models.CurrencyRUB], values[models.CurrencyUSD], values[models.CurrencyEUR]), nil
}

func (c *Converter) rate(ctx context.Context, currency models.Currency) (decimal.Decimal, error) {
	if currency == models.CurrencyRUB {
		return decimal.NewFromInt(1), nil
	}

	c.mu.Lock()
	cached, ok := c.rates[currency]
	c.mu.Unlock()
	if ok && c.now().Sub(cached.fetchedAt) < c.ttl {
		return cached.rate, nil
	}

	rate, err := c.provider.RateToRUB(ctx, currency)
	if err != nil {
		return decimal.Zero, err
	}

	c.mu.Lock()
	c.rates[currency] = cachedRate{rate: rate, fetchedAt: c.now()}
	c.mu.Unlock()
	return rate, nil
}
