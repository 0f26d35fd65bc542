package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/domain"
	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/metrics"
	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/service"
)

type DashboardHandler struct {
	service *service.DashboardService
}

func NewDashboardHandler(service *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// parseFilters reads the applied selection from the query. Missing params fall back to defaults.
func parseFilters(c *gin.Context) domain.FilterSelection {
	return domain.FilterSelection{
		Region:          domain.Region(strings.TrimSpace(c.Query("region"))),
		TimeRange:       domain.TimeRange(strings.TrimSpace(c.Query("time_range"))),
		ProductCategory: domain.ProductCategory(strings.TrimSpace(c.Query("product_category"))),
		Channel:         domain.Channel(strings.TrimSpace(c.Query("channel"))),
	}.Normalize()
}

func (h *DashboardHandler) GetFilters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"defaults": domain.DefaultFilters(),
		"options":  h.service.Filters(),
	})
}

func (h *DashboardHandler) GetOverview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context(), parseFilters(c))
	if err != nil {
		log.Error().Err(err).Msg("dashboard: overview failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to derive dashboard", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (h *DashboardHandler) GetTab(c *gin.Context) {
	tab := domain.Tab(c.Param("tab"))

	if tab == domain.TabExecutiveSummary {
		h.GetExecutiveSummary(c)
		return
	}

	dashboard, err := h.service.GetTab(c.Request.Context(), tab, parseFilters(c))
	if errors.Is(err, metrics.ErrUnknownTab) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown tab", "details": string(tab)})
		return
	}
	if err != nil {
		log.Error().Err(err).Str("tab", string(tab)).Msg("dashboard: derive failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to derive dashboard", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// InvalidateCache drops every cached tab so the next request re-derives.
func (h *DashboardHandler) InvalidateCache(c *gin.Context) {
	if err := h.service.InvalidateCache(c.Request.Context()); err != nil {
		log.Error().Err(err).Msg("dashboard: cache invalidation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to invalidate cache", "details": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DashboardHandler) GetExecutiveSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ExecutiveSummary())
}

// GetExecutiveAlert serves one carousel alert: ?current=<index>&step=next|previous.
func (h *DashboardHandler) GetExecutiveAlert(c *gin.Context) {
	current := 0
	if raw := c.Query("current"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid current index", "details": err.Error()})
			return
		}
		current = v
	}

	index, alert := h.service.ExecutiveAlert(current, c.Query("step"))
	c.JSON(http.StatusOK, gin.H{
		"index": index,
		"total": len(h.service.ExecutiveSummary().Alerts),
		"alert": alert,
	})
}

func (h *DashboardHandler) GetExecutiveAnswer(c *gin.Context) {
	question := strings.TrimSpace(c.Query("q"))
	if question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"question": question,
		"answer":   h.service.ExecutiveAnswer(question),
	})
}
