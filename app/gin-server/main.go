package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Srijit125/ai-demo/config"
	"github.com/Srijit125/ai-demo/internal/api/handlers"
	"github.com/Srijit125/ai-demo/internal/api/middleware"
	"github.com/Srijit125/ai-demo/internal/api/routes"
	"github.com/Srijit125/ai-demo/internal/cache"
	"github.com/Srijit125/ai-demo/internal/chatlog"
	"github.com/Srijit125/ai-demo/internal/corpus"
	"github.com/Srijit125/ai-demo/internal/index"
	"github.com/Srijit125/ai-demo/internal/logger"
	"github.com/Srijit125/ai-demo/internal/providers/embedding"
	"github.com/Srijit125/ai-demo/internal/services"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	cfg := config.Load()

	// Load the prebuilt retrieval artifacts. Position i in the index must
	// correspond to corpus record i; a size mismatch is a deployment defect,
	// so refuse to start.
	idx, err := index.LoadSQLite(cfg.IndexPath)
	if err != nil {
		log.Fatalf("index load error: %v", err)
	}
	passages, err := corpus.Load(cfg.CorpusPath)
	if err != nil {
		log.Fatalf("corpus load error: %v", err)
	}
	if idx.Len() != passages.Len() {
		log.Fatalf("index/corpus mismatch: %d vectors vs %d passages", idx.Len(), passages.Len())
	}
	log.WithFields(logrus.Fields{
		"passages":  passages.Len(),
		"dimension": idx.Dim(),
	}).Info("index and corpus loaded")

	var embedder embedding.Provider = embedding.NewHFClient(cfg.EmbedURL, cfg.EmbedAPIKey, cfg.EmbedTimeout)
	if cfg.RedisAddr != "" {
		rdb, err := config.InitRedis(cfg.RedisAddr)
		if err != nil {
			log.Fatalf("Redis init error: %v", err)
		}
		embedder = embedding.NewCached(embedder, cache.NewRedisCache(rdb), cfg.EmbedCacheTTL, log)
		log.Info("embedding cache enabled")
	}

	logStore := chatlog.New(cfg.LogFile, log)
	chatSvc := services.NewChatService(embedder, idx, passages, logStore, cfg.TopK, log)
	analyticsSvc := services.NewAnalyticsService(logStore)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	routes.RegisterRoutes(r, routes.Deps{
		Chat:      handlers.NewChatHandler(chatSvc),
		Analytics: handlers.NewAnalyticsHandler(analyticsSvc),
		StaticDir: cfg.StaticDir,
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
