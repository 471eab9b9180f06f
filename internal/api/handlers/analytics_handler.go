package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Srijit125/ai-demo/internal/services"
)

type AnalyticsHandler struct {
	svc services.AnalyticsService
}

func NewAnalyticsHandler(svc services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

func (h *AnalyticsHandler) DailyCount(c *gin.Context) {
	counts, err := h.svc.DailyCount()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *AnalyticsHandler) TopChunks(c *gin.Context) {
	pairs, err := h.svc.TopChunks()
	if err != nil {
		writeError(c, err)
		return
	}
	if pairs == nil {
		pairs = []services.PairCount{}
	}
	c.JSON(http.StatusOK, pairs)
}

func (h *AnalyticsHandler) AnswerLength(c *gin.Context) {
	stats, err := h.svc.AnswerLength()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) TopQuestions(c *gin.Context) {
	pairs, err := h.svc.TopQuestions()
	if err != nil {
		writeError(c, err)
		return
	}
	if pairs == nil {
		pairs = []services.PairCount{}
	}
	c.JSON(http.StatusOK, pairs)
}
