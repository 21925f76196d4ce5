package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sandevgo/memobot/internal/core"
	"github.com/sandevgo/memobot/internal/service/assistant"
	"github.com/sandevgo/memobot/pkg/log"
)

type handler struct {
	assistant      *assistant.Assistant
	generatorReady bool
}

func newHandler(a *assistant.Assistant, generatorReady bool) *handler {
	return &handler{assistant: a, generatorReady: generatorReady}
}

type chatRequest struct {
	Message string `json:"message"`
}

type eventRequest struct {
	Type     string         `json:"type"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata"`
}

func (h *handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "online",
		"apiKeyConfigured": h.generatorReady,
		"serverTime":       time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply, err := h.assistant.Answer(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
			return
		}
		log.FromCtx(c.Request.Context()).Error().Err(err).Msg("answer failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response": reply.Text,
		"mode":     reply.Mode,
	})
}

func (h *handler) ChatHistory(c *gin.Context) {
	history, err := h.assistant.History(c.Request.Context())
	if err != nil {
		log.FromCtx(c.Request.Context()).Error().Err(err).Msg("failed to load history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if history == nil {
		history = []core.Message{}
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}

func (h *handler) RecordEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type and content required"})
		return
	}

	event, err := h.assistant.RecordEvent(c.Request.Context(), req.Type, req.Content, req.Metadata)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type and content required"})
			return
		}
		log.FromCtx(c.Request.Context()).Error().Err(err).Msg("record event failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "event": event})
}

func (h *handler) EventsByType(c *gin.Context) {
	events, err := h.assistant.Events(c.Request.Context(), c.Param("type"))
	if err != nil {
		log.FromCtx(c.Request.Context()).Error().Err(err).Msg("failed to load events")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if events == nil {
		events = []core.Event{}
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}
