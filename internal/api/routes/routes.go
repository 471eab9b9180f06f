package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Srijit125/ai-demo/internal/api/handlers"
)

type Deps struct {
	Chat      *handlers.ChatHandler
	Analytics *handlers.AnalyticsHandler
	StaticDir string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/", handlers.BasePage)
	if d.StaticDir != "" {
		r.Static("/static", d.StaticDir)
	}

	api := r.Group("/api")
	api.POST("/chat", d.Chat.Ask)

	analytics := api.Group("/analytics")
	analytics.GET("/daily_count", d.Analytics.DailyCount)
	analytics.GET("/top_chunks", d.Analytics.TopChunks)
	analytics.GET("/answer_length", d.Analytics.AnswerLength)
	analytics.GET("/top_questions", d.Analytics.TopQuestions)
}
