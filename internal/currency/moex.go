package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/alligatorO15/expense-analytics/internal/models"
	"github.com/shopspring/decimal"
)

// инструменты валютного рынка MOEX с расчетами завтра
var moexTickers = map[models.Currency]string{
	models.CurrencyUSD: "USD000UTSTOM",
	models.CurrencyEUR: "EUR_RUB__TOM",
}

// MOEXProvider курсы валют с Московской биржи (ISS API)
type MOEXProvider struct {
	baseURL    string
	httpClient *http.Client
}

func NewMOEXProvider(baseURL string) *MOEXProvider {
	if baseURL == "" {
		baseURL = "https://iss.moex.com/iss"
	}

	return &MOEXProvider{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (p *MOEXProvider) GetName() string {
	return "MOEX"
}

// moexResponse нужная часть ответа ISS: таблица marketdata в виде колонок и строк
type moexResponse struct {
	Marketdata struct {
		Columns []string `json:"columns"`
		Data    [][]any  `json:"data"`
	} `json:"marketdata"`
}

func (p *MOEXProvider) RateToRUB(ctx context.Context, currency models.Currency) (decimal.Decimal, error) {
	if currency == models.CurrencyRUB {
		return decimal.NewFromInt(1), nil
	}
	ticker, ok := moexTickers[currency]
	if !ok {
		return decimal.Zero, fmt.Errorf("неподдерживаемая валюта: %s", currency)
	}

	url := fmt.Sprintf("%s/engines/currency/markets/selt/boards/CETS/securities/%s.json?iss.meta=off&iss.only=marketdata", p.baseURL, ticker)

	resp, err := p.makeRequest(ctx, url)
	if err != nil {
		return decimal.Zero, err
	}

	if len(resp.Marketdata.Data) == 0 {
		return decimal.Zero, fmt.Errorf("нет данных по курсу %s/RUB", currency)
	}

	cols := makeColumnIndex(resp.Marketdata.Columns)
	// LAST пустой вне торговой сессии, тогда берем средневзвешенную
	rate := getDecimal(resp.Marketdata.Data[0], cols, "LAST", "WAPRICE", "MARKETPRICE")
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("не удалось получить курс %s/RUB", currency)
	}

	return rate, nil
}

func (p *MOEXProvider) makeRequest(ctx context.Context, url string) (*moexResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ошибка MOEX API: %d", resp.StatusCode)
	}

	var result moexResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

func getDecimal(row []any, cols map[string]int, keys ...string) decimal.Decimal {
	for _, key := range keys {
		if idx, ok := cols[key]; ok && idx < len(row) {
			if v, ok := row[idx].(float64); ok && v > 0 {
				return decimal.NewFromFloat(v)
			}
		}
	}
	return decimal.Zero
}

func makeColumnIndex(columns []string) map[string]int {
	idx := make(map[string]int, len(columns))
	for i, col := range columns {
		idx[col] = i
	}
	return idx
}
