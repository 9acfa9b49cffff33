package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/alligatorO15/expense-analytics/internal/api"
	"github.com/alligatorO15/expense-analytics/internal/config"
	"github.com/alligatorO15/expense-analytics/internal/currency"
	"github.com/alligatorO15/expense-analytics/internal/database"
	"github.com/alligatorO15/expense-analytics/internal/repository"
	"github.com/alligatorO15/expense-analytics/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	// загрузка .env файла
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используются переменные окружения")
	}

	// загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// инициализация базы данных
	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Ошибка подключения к базе данных: %v", err)
	}
	defer db.Close()

	// запуск миграций
	if err := database.RunMigrations(ctx, db); err != nil {
		log.Fatalf("Ошибка выполнения миграций: %v", err)
	}

	presets, err := config.LoadCategoryPresets(cfg.CategoryPresetsFile)
	if err != nil {
		log.Fatalf("Ошибка чтения пресетов категорий: %v", err)
	}

	// инициализация репозиториев
	repos := repository.NewRepositories(db)

	// курсы валют: биржа, затем запасные из конфига
	converter, err := newConverter(cfg)
	if err != nil {
		log.Fatalf("Ошибка настройки курсов валют: %v", err)
	}

	// инициализация сервисов
	services := service.NewServices(repos, converter, presets, cfg, log.Default())
	go services.Analytics.RunJanitor(ctx, time.Minute)

	// инициализация и запуск API сервера
	server := api.NewServer(cfg, services, log.Default())
	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("Ошибка остановки сервера: %v", err)
		}
	}()

	log.Printf("Запуск сервера аналитики расходов на порту %s (зона %s)", cfg.Port, cfg.Location)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
	log.Println("Сервер остановлен")
}

func newConverter(cfg *config.Config) (*currency.Converter, error) {
	var providers []currency.RateProvider
	if cfg.MOEXEnabled {
		providers = append(providers, currency.NewMOEXProvider(cfg.MOEXApiURL))
	}

	fallback, err := currency.ParseFixedRates(cfg.FallbackRates)
	if err != nil {
		return nil, err
	}
	if len(fallback) > 0 {
		providers = append(providers, fallback)
	}

	chain := currency.NewChainProvider(providers...)
	log.Printf("Источники курсов валют: %s", chain.GetName())
	return currency.NewConverter(chain, cfg.RateCacheTTL), nil
}
