package service

import (
	"log"

	"github.com/alligatorO15/expense-analytics/internal/calendar"
	"github.com/alligatorO15/expense-analytics/internal/config"
	"github.com/alligatorO15/expense-analytics/internal/models"
	"github.com/alligatorO15/expense-analytics/internal/repository"
)

type Services struct {
	Auth      AuthService
	Category  CategoryService
	Expense   ExpenseService
	Analytics AnalyticsService
}

func NewServices(repos *repository.Repositories, converter AmountConverter, presets []models.CategoryPreset, cfg *config.Config, logger *log.Logger) *Services {
	cal := calendar.New(cfg.Location)
	cal.FirstWeekday = cfg.FirstWeekday

	analyticsService := NewAnalyticsService(repos.Expense, AnalyticsOptions{
		Calendar:        cal,
		DefaultCurrency: models.Currency(cfg.DefaultCurrency),
		SessionTTL:      cfg.AnalyticsSessionTTL,
		Logger:          logger,
	})

	return &Services{
		Auth:      NewAuthService(cfg.JWTSecret),
		Category:  NewCategoryService(repos.Category, repos.TxManager, presets, analyticsService),
		Expense:   NewExpenseService(repos.TxManager, repos.Expense, repos.Category, converter, analyticsService), // аналитика перечитывает окна после изменений
		Analytics: analyticsService,
	}
}
