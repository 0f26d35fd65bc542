// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/api/handlers"
	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/api/middleware"
	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/service"
)

type Services struct {
	DashboardService *service.DashboardService
	AssistantService *service.AssistantService
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(cors.New(corsConfig(allowedOrigins)))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	if services != nil {
		if services.DashboardService != nil {
			dashboardHandler := handlers.NewDashboardHandler(services.DashboardService)
			apiGroup.GET("/filters", dashboardHandler.GetFilters)

			dashboardGroup := apiGroup.Group("/dashboard")
			{
				dashboardGroup.GET("", dashboardHandler.GetOverview)
				dashboardGroup.GET("/:tab", dashboardHandler.GetTab)
				dashboardGroup.DELETE("/cache", dashboardHandler.InvalidateCache)
			}

			executiveGroup := apiGroup.Group("/executive")
			{
				executiveGroup.GET("/summary", dashboardHandler.GetExecutiveSummary)
				executiveGroup.GET("/answer", dashboardHandler.GetExecutiveAnswer)
				executiveGroup.GET("/alerts", dashboardHandler.GetExecutiveAlert)
			}
		}

		if services.AssistantService != nil {
			assistantHandler := handlers.NewAssistantHandler(services.AssistantService)
			apiGroup.GET("/kpis", assistantHandler.GetKPIs)

			assistantGroup := apiGroup.Group("/assistant")
			{
				assistantGroup.POST("/respond", assistantHandler.Respond)

				conversations := assistantGroup.Group("/conversations")
				{
					conversations.POST("", assistantHandler.StartConversation)
					conversations.GET("/:id", assistantHandler.GetConversation)
					conversations.POST("/:id/messages", assistantHandler.SendMessage)
					conversations.POST("/:id/quick-insights", assistantHandler.SendQuickInsight)
					conversations.DELETE("/:id", assistantHandler.EndConversation)
				}
			}
		}
	}

	return router
}

func corsConfig(allowedOrigins []string) cors.Config {
	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	config := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			config.AllowOrigins = nil
			config.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			config.AllowOrigins = normalizedOrigins
		}
	}
	return config
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
