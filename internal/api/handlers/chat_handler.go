package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Srijit125/ai-demo/internal/models"
	"github.com/Srijit125/ai-demo/internal/services"
	"github.com/Srijit125/ai-demo/internal/utils"
)

type ChatHandler struct {
	svc services.ChatService
}

func NewChatHandler(svc services.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

type ChatRequest struct {
	Question string   `json:"question" binding:"required"`
	History  []string `json:"history"`
}

type ChatResponse struct {
	Question          string                 `json:"question"`
	Answer            string                 `json:"answer"`
	FollowUpQuestions []string               `json:"follow_up_questions"`
	Reference         []models.PassageRecord `json:"reference"`
}

func (h *ChatHandler) Ask(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ChatHandler.Ask", "invalid request body", err))
		return
	}

	result, err := h.svc.Ask(c.Request.Context(), req.Question, req.History)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ChatResponse{
		Question:          result.Question,
		Answer:            result.Answer,
		FollowUpQuestions: result.FollowUps,
		Reference:         result.Reference,
	})
}
