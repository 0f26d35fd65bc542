package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/assistant"
	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/domain"
	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/service"
)

type AssistantHandler struct {
	service *service.AssistantService
}

func NewAssistantHandler(service *service.AssistantService) *AssistantHandler {
	return &AssistantHandler{service: service}
}

type respondRequest struct {
	Text string `json:"text"`
}

type startConversationRequest struct {
	Context *domain.ConversationContext `json:"context"`
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

type quickInsightRequest struct {
	Label string `json:"label"`
}

func (h *AssistantHandler) GetKPIs(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.KPIs())
}

// Respond answers a single message without a conversation.
func (h *AssistantHandler) Respond(c *gin.Context) {
	var req respondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.service.Respond(req.Text))
}

func (h *AssistantHandler) StartConversation(c *gin.Context) {
	var req startConversationRequest
	// an empty body starts a plain conversation
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
			return
		}
	}
	c.JSON(http.StatusCreated, h.service.StartConversation(req.Context))
}

func (h *AssistantHandler) GetConversation(c *gin.Context) {
	snap, err := h.service.Conversation(c.Param("id"))
	if err != nil {
		h.conversationError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *AssistantHandler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	snap, err := h.service.Send(c.Param("id"), req.Content)
	if err != nil {
		h.conversationError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, snap)
}

// SendQuickInsight submits a follow-up button; the label is expanded to its canned query.
func (h *AssistantHandler) SendQuickInsight(c *gin.Context) {
	var req quickInsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	snap, err := h.service.SendQuickInsight(c.Param("id"), req.Label)
	if err != nil {
		h.conversationError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, snap)
}

func (h *AssistantHandler) EndConversation(c *gin.Context) {
	if err := h.service.EndConversation(c.Param("id")); err != nil {
		h.conversationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AssistantHandler) conversationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrConversationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
	case errors.Is(err, assistant.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "message content is required"})
	case errors.Is(err, assistant.ErrConversationClosed):
		c.JSON(http.StatusGone, gin.H{"error": "conversation is closed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "assistant request failed", "details": err.Error()})
	}
}
