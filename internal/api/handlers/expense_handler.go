package handlers

import (
	"net/http"

	"github.com/alligatorO15/expense-analytics/internal/api/middleware"
	"github.com/alligatorO15/expense-analytics/internal/models"
	"github.com/alligatorO15/expense-analytics/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ExpenseHandler struct {
	expenseService service.ExpenseService
}

func NewExpenseHandler(expenseService service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	var input models.ExpenseCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, err := h.expenseService.Create(c.Request.Context(), middleware.GetUserID(c), &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

func (h *ExpenseHandler) List(c *gin.Context) {
	var filter models.ExpenseFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expenses, err := h.expenseService.GetByFilter(c.Request.Context(), middleware.GetUserID(c), &filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}

	c.JSON(http.StatusOK, expenses)
}

func (h *ExpenseHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expense ID"})
		return
	}

	expense, err := h.expenseService.GetByID(c.Request.Context(), middleware.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// Update расход неизменяемый, поэтому PUT заменяет его целиком с тем же id
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expense ID"})
		return
	}

	var input models.ExpenseCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, err := h.expenseService.Replace(c.Request.Context(), middleware.GetUserID(c), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expense ID"})
		return
	}

	if err := h.expenseService.Delete(c.Request.Context(), middleware.GetUserID(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "expense deleted"})
}
