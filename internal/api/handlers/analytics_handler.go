package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/alligatorO15/expense-analytics/internal/analytics"
	"github.com/alligatorO15/expense-analytics/internal/api/middleware"
	"github.com/alligatorO15/expense-analytics/internal/chart"
	"github.com/alligatorO15/expense-analytics/internal/export"
	"github.com/alligatorO15/expense-analytics/internal/models"
	"github.com/alligatorO15/expense-analytics/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
	location         *time.Location
}

// NewAnalyticsHandler loc - зона, в которой разбираются даты произвольного интервала
func NewAnalyticsHandler(analyticsService service.AnalyticsService, loc *time.Location) *AnalyticsHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &AnalyticsHandler{analyticsService: analyticsService, location: loc}
}

func (h *AnalyticsHandler) CreateSession(c *gin.Context) {
	var input models.AnalyticsSessionCreate
	// пустое тело допустимо, все поля необязательные
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	view, err := h.analyticsService.CreateSession(c.Request.Context(), middleware.GetUserID(c), &input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

func (h *AnalyticsHandler) GetSession(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	view, err := h.analyticsService.GetSession(c.Request.Context(), middleware.GetUserID(c), sessionID)
	h.respond(c, view, err)
}

func (h *AnalyticsHandler) DeleteSession(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	if err := h.analyticsService.DeleteSession(c.Request.Context(), middleware.GetUserID(c), sessionID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "session deleted"})
}

func (h *AnalyticsHandler) UpdatePeriod(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	var input models.PeriodUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.analyticsService.UpdatePeriod(c.Request.Context(), middleware.GetUserID(c), sessionID, input.Period)
	h.respond(c, view, err)
}

func (h *AnalyticsHandler) UpdateSelectedIndex(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	var input models.SelectedIndexUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.analyticsService.UpdateSelectedIndex(c.Request.Context(), middleware.GetUserID(c), sessionID, *input.Index)
	h.respond(c, view, err)
}

func (h *AnalyticsHandler) UpdateCategories(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	var input models.CategoryFilterUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.analyticsService.UpdateCategories(c.Request.Context(), middleware.GetUserID(c), sessionID, input.Names)
	h.respond(c, view, err)
}

func (h *AnalyticsHandler) ToggleSortOrder(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	view, err := h.analyticsService.ToggleSortOrder(c.Request.Context(), middleware.GetUserID(c), sessionID)
	h.respond(c, view, err)
}

func (h *AnalyticsHandler) ApplyCustomRange(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	var input models.CustomRangeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	interval, err := input.Interval(h.location)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.analyticsService.ApplyCustomRange(c.Request.Context(), middleware.GetUserID(c), sessionID, interval)
	h.respond(c, view, err)
}

func (h *AnalyticsHandler) CancelCustomRange(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	view, err := h.analyticsService.CancelCustomRange(c.Request.Context(), middleware.GetUserID(c), sessionID)
	h.respond(c, view, err)
}

func (h *AnalyticsHandler) Refresh(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	view, err := h.analyticsService.Refresh(c.Request.Context(), middleware.GetUserID(c), sessionID)
	h.respond(c, view, err)
}

func (h *AnalyticsHandler) SelectCategory(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}
	row, err := strconv.Atoi(c.Param("row"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid row"})
		return
	}

	detail, err := h.analyticsService.SelectCategory(c.Request.Context(), middleware.GetUserID(c), sessionID, row)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Chart круговая диаграмма ячейки ?index=N, по умолчанию выбранной
func (h *AnalyticsHandler) Chart(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	view, err := h.analyticsService.GetSession(c.Request.Context(), middleware.GetUserID(c), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	cell, ok := cellByQuery(c, view.Snapshot)
	if !ok {
		return
	}

	opts := chart.Options{Labels: c.Query("labels") == "true"}
	if width, err := strconv.Atoi(c.Query("width")); err == nil && width > 0 && width <= 2048 {
		opts.Width = width
	}
	if height, err := strconv.Atoi(c.Query("height")); err == nil && height > 0 && height <= 2048 {
		opts.Height = height
	}

	var buf bytes.Buffer
	if err := chart.RenderPie(&buf, cell.Report, opts); err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (h *AnalyticsHandler) Export(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		return
	}

	view, err := h.analyticsService.GetSession(c.Request.Context(), middleware.GetUserID(c), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, view.Snapshot); err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="expenses-%s.xlsx"`, view.Period))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *AnalyticsHandler) respond(c *gin.Context, view *service.SessionView, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func sessionIDParam(c *gin.Context) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return uuid.Nil, false
	}
	return sessionID, true
}

func cellByQuery(c *gin.Context, snapshot analytics.Snapshot) (analytics.Cell, bool) {
	raw := c.Query("index")
	if raw == "" {
		cell, ok := snapshot.Selected()
		if !ok {
			respondError(c, analytics.ErrEmptyWindow)
		}
		return cell, ok
	}

	index, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return analytics.Cell{}, false
	}
	if index < 0 || index >= len(snapshot.Cells) {
		respondError(c, analytics.ErrIndexOutOfRange)
		return analytics.Cell{}, false
	}
	return snapshot.Cells[index], true
}
