package api

import (
	"log"
	"net/http"

	"github.com/alligatorO15/expense-analytics/internal/api/handlers"
	"github.com/alligatorO15/expense-analytics/internal/api/middleware"
	"github.com/alligatorO15/expense-analytics/internal/config"
	"github.com/alligatorO15/expense-analytics/internal/service"
	"github.com/gin-gonic/gin"
)

type Server struct {
	router   *gin.Engine
	config   *config.Config
	services *service.Services
	logger   *log.Logger
}

func NewServer(cfg *config.Config, services *service.Services, logger *log.Logger) *Server {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if logger == nil {
		logger = log.Default()
	}
	router := gin.New()
	router.Use(gin.Recovery())

	server := &Server{
		router:   router,
		config:   cfg,
		services: services,
		logger:   logger,
	}

	server.setupRoutes()

	return server
}

func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Handler нужен для http.Server с graceful shutdown и для тестов
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	//middleware
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.RequestLogger(s.logger))

	// health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api/v1")

	// подготавливаем хэндлеры
	categoryHandler := handlers.NewCategoryHandler(s.services.Category)
	expenseHandler := handlers.NewExpenseHandler(s.services.Expense)
	analyticsHandler := handlers.NewAnalyticsHandler(s.services.Analytics, s.config.Location)

	// все эндпоинты требуют токен
	protected := api.Group("")
	protected.Use(middleware.Auth(s.services.Auth))
	{
		// categories
		categories := protected.Group("/categories")
		{
			categories.POST("", categoryHandler.Create)
			categories.GET("", categoryHandler.List)
			categories.POST("/defaults", categoryHandler.SeedDefaults)
			categories.GET("/:id", categoryHandler.GetByID)
			categories.PUT("/:id", categoryHandler.Update)
			categories.DELETE("/:id", categoryHandler.Delete)
		}

		// expenses
		expenses := protected.Group("/expenses")
		{
			expenses.POST("", expenseHandler.Create)
			expenses.GET("", expenseHandler.List)
			expenses.GET("/:id", expenseHandler.GetByID)
			expenses.PUT("/:id", expenseHandler.Update)
			expenses.DELETE("/:id", expenseHandler.Delete)
		}

		// analytics sessions
		sessions := protected.Group("/analytics/sessions")
		{
			sessions.POST("", analyticsHandler.CreateSession)
			sessions.GET("/:id", analyticsHandler.GetSession)
			sessions.DELETE("/:id", analyticsHandler.DeleteSession)
			sessions.PUT("/:id/period", analyticsHandler.UpdatePeriod)
			sessions.PUT("/:id/selected-index", analyticsHandler.UpdateSelectedIndex)
			sessions.PUT("/:id/categories", analyticsHandler.UpdateCategories)
			sessions.POST("/:id/sort/toggle", analyticsHandler.ToggleSortOrder)
			sessions.POST("/:id/custom-range", analyticsHandler.ApplyCustomRange)
			sessions.DELETE("/:id/custom-range", analyticsHandler.CancelCustomRange)
			sessions.POST("/:id/refresh", analyticsHandler.Refresh)
			sessions.GET("/:id/rows/:row", analyticsHandler.SelectCategory)
			sessions.GET("/:id/chart.png", analyticsHandler.Chart)
			sessions.GET("/:id/export.xlsx", analyticsHandler.Export)
		}
	}
}
