package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/catalog"
	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/domain"
	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := catalog.NewStore([]domain.KPI{
		{ID: 1, Name: "Revenue Growth", Unit: "%", Section: domain.SectionFinancialHealth, Value: 12.5},
		{ID: 2, Name: "Market Share", Unit: "%", Section: domain.SectionSalesMarketInsights, Value: 36.2},
	})
	assistantSvc := service.NewAssistantService(store, service.AssistantOptions{Delay: 5 * time.Millisecond})
	t.Cleanup(assistantSvc.Shutdown)

	return NewRouter(&Services{
		DashboardService: service.NewDashboardService(nil),
		AssistantService: assistantSvc,
	}, []string{"*"})
}

func do(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestGetFilters(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodGet, "/api/v1/filters", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "All Regions")
	assert.Contains(t, w.Body.String(), "last-30-days")
}

func TestGetTabAppliesQueryFilters(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodGet, "/api/v1/dashboard/demand-supply?region=north&time_range=last-7-days&product_category=milk&channel=online", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var d domain.TabDashboard
	decode(t, w, &d)
	assert.Equal(t, domain.TabDemandSupply, d.Tab)
	assert.InDelta(t, 90.6, d.KPIs["orderFillRate"], 1e-9)
	assert.Len(t, d.Charts["fillRate"], 4)
	assert.Equal(t, domain.Range{Min: 75, Max: 99}, d.Bounds["orderFillRate"])
}

func TestGetTabUnknown(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodGet, "/api/v1/dashboard/finance", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOverview(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var overview domain.DashboardOverview
	decode(t, w, &overview)
	assert.True(t, overview.Filters.IsDefault())
	assert.Len(t, overview.Tabs, 4)
}

func TestInvalidateCache(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodDelete, "/api/v1/dashboard/cache", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestExecutiveEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodGet, "/api/v1/executive/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bangalore Hub")

	w = do(router, http.MethodGet, "/api/v1/dashboard/executive-summary", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/api/v1/executive/answer?q=why", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "The primary causes are")

	w = do(router, http.MethodGet, "/api/v1/executive/answer", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecutiveAlertCarousel(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodGet, "/api/v1/executive/alerts?current=4&step=next", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Index int `json:"index"`
		Total int `json:"total"`
	}
	decode(t, w, &body)
	assert.Equal(t, 0, body.Index)
	assert.Equal(t, 5, body.Total)

	w = do(router, http.MethodGet, "/api/v1/executive/alerts?current=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetKPIs(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodGet, "/api/v1/kpis", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var kpis []domain.KPI
	decode(t, w, &kpis)
	assert.Len(t, kpis, 2)
}

func TestRespond(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/v1/assistant/respond", gin.H{"text": "overselling"})
	require.Equal(t, http.StatusOK, w.Code)

	var reply domain.AssistantReply
	decode(t, w, &reply)
	assert.Equal(t, "Here are the details about the overselling issue:", reply.Content)
	assert.Len(t, reply.Metrics, 3)

	w = do(router, http.MethodPost, "/api/v1/assistant/respond", gin.H{"text": "market share"})
	decode(t, w, &reply)
	assert.Equal(t, []domain.Metric{{Label: "Market Share", Value: "36.2%"}}, reply.Metrics)
}

func TestConversationFlow(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/v1/assistant/conversations", gin.H{
		"context": gin.H{"type": "emergency"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var snap domain.ConversationSnapshot
	decode(t, w, &snap)
	require.Len(t, snap.Messages, 2)
	id := snap.ID

	w = do(router, http.MethodPost, "/api/v1/assistant/conversations/"+id+"/messages", gin.H{"content": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPost, "/api/v1/assistant/conversations/"+id+"/messages", gin.H{"content": "📞 Call for urgent meeting"})
	require.Equal(t, http.StatusAccepted, w.Code)

	require.Eventually(t, func() bool {
		w := do(router, http.MethodGet, "/api/v1/assistant/conversations/"+id, nil)
		var s domain.ConversationSnapshot
		if json.Unmarshal(w.Body.Bytes(), &s) != nil {
			return false
		}
		return !s.Typing && len(s.Messages) == 4
	}, time.Second, 5*time.Millisecond)

	w = do(router, http.MethodGet, "/api/v1/assistant/conversations/"+id, nil)
	decode(t, w, &snap)
	assert.Contains(t, snap.Messages[3].Content, "URGENT MEETING INITIATED")

	w = do(router, http.MethodDelete, "/api/v1/assistant/conversations/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(router, http.MethodGet, "/api/v1/assistant/conversations/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSendQuickInsight(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/v1/assistant/conversations", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var snap domain.ConversationSnapshot
	decode(t, w, &snap)

	w = do(router, http.MethodPost, "/api/v1/assistant/conversations/"+snap.ID+"/quick-insights", gin.H{"label": "📊 Market Analysis"})
	require.Equal(t, http.StatusAccepted, w.Code)
	decode(t, w, &snap)
	require.GreaterOrEqual(t, len(snap.Messages), 2)
	assert.Equal(t, "Show me market share and competitive analysis", snap.Messages[1].Content)

	w = do(router, http.MethodPost, "/api/v1/assistant/conversations/"+snap.ID+"/quick-insights", gin.H{"label": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartConversationWithoutBody(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodPost, "/api/v1/assistant/conversations", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var snap domain.ConversationSnapshot
	decode(t, w, &snap)
	assert.Len(t, snap.Messages, 1)
}

func TestNormalizeAllowedOrigins(t *testing.T) {
	origins, all := normalizeAllowedOrigins([]string{"http://a.example, http://b.example", " "})
	assert.False(t, all)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, origins)

	_, all = normalizeAllowedOrigins([]string{"*"})
	assert.True(t, all)
}
