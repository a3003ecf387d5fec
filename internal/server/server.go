package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/svw-wertheim/spielbericht/internal/config"
	"github.com/svw-wertheim/spielbericht/internal/service"
)

type Server struct {
	Config *config.Config
	DB     *gorm.DB
	Router *gin.Engine
	Logger *zap.Logger
	Server *http.Server

	// Services
	NewsService       *service.NewsService
	GenerationService *service.GenerationService
	LeagueSyncService *service.LeagueSyncService
	StatsService      *service.StatsService
	Scheduler         *service.Scheduler
}

func NewServer(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	// Set gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize database
	db, err := service.NewDatabase(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := service.EnsureDefaultTemplates(db, logger); err != nil {
		return nil, fmt.Errorf("failed to seed templates: %w", err)
	}

	// Initialize services
	newsService := service.NewNewsService(db, logger)
	generationService := service.NewGenerationService(cfg, db, logger, newsService)
	leagueSyncService := service.NewLeagueSyncService(&cfg.LeagueAPI, db, logger, generationService)
	statsService := service.NewStatsService(db, logger)
	scheduler := service.NewScheduler(&cfg.Scheduler, logger, leagueSyncService, generationService)

	// Create router
	router := gin.New()

	// Create server
	srv := &Server{
		Config:            cfg,
		DB:                db,
		Router:            router,
		Logger:            logger,
		NewsService:       newsService,
		GenerationService: generationService,
		LeagueSyncService: leagueSyncService,
		StatsService:      statsService,
		Scheduler:         scheduler,
	}

	// Setup middleware and routes
	srv.setupMiddleware()
	srv.setupRoutes()

	return srv, nil
}

func (s *Server) setupMiddleware() {
	// Recovery middleware
	s.Router.Use(gin.Recovery())

	// Logger middleware
	s.Router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	// CORS middleware
	s.Router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
}

func (s *Server) setupRoutes() {
	// Health check
	s.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	// API routes
	api := s.Router.Group("/api/v1")
	{
		generation := api.Group("/generation")
		{
			generation.POST("/process", s.handleProcessPending)
			generation.POST("/matches/:id", s.handleGenerateForMatch)
			generation.POST("/test", s.handleSmokeTest)
			generation.GET("/log", s.handleGetGenerationLog)
		}

		api.GET("/news", s.handleGetNews)
		api.GET("/stats", s.handleGetStats)
		api.POST("/league/sync", s.handleLeagueSync)
	}
}

func (s *Server) handleProcessPending(c *gin.Context) {
	if err := s.GenerationService.ProcessPending(c.Request.Context()); err != nil {
		s.Logger.Error("Failed to process pending entries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process pending entries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Processing completed"})
}

func (s *Server) handleGenerateForMatch(c *gin.Context) {
	matchID := c.Param("id")

	article, err := s.GenerationService.GenerateForMatch(c.Request.Context(), matchID)
	if err != nil {
		s.Logger.Error("Failed to generate content for match",
			zap.String("match_id", matchID),
			zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

func (s *Server) handleSmokeTest(c *gin.Context) {
	result, err := s.GenerationService.SmokeTest(c.Request.Context())
	if err != nil {
		s.Logger.Error("Smoke test failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Smoke test failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

func (s *Server) handleGetGenerationLog(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	entries, err := s.GenerationService.ListEntries(c.Query("status"), limit)
	if err != nil {
		s.Logger.Error("Failed to get generation log", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get generation log"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (s *Server) handleGetNews(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	articles, err := s.NewsService.ListArticles(c.Query("category"), limit)
	if err != nil {
		s.Logger.Error("Failed to get articles", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get articles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

func (s *Server) handleGetStats(c *gin.Context) {
	summary, err := s.StatsService.GetSummary()
	if err != nil {
		s.Logger.Error("Failed to get stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

func (s *Server) handleLeagueSync(c *gin.Context) {
	if err := s.LeagueSyncService.Sync(); err != nil {
		s.Logger.Error("Failed to sync league data", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sync league data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sync completed successfully"})
}

func (s *Server) Start(ctx context.Context) error {
	// Start scheduler
	if err := s.Scheduler.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)

	s.Server = &http.Server{
		Addr:    addr,
		Handler: s.Router,
	}

	s.Logger.Info("Starting HTTP server", zap.String("addr", addr))

	if s.Config.Server.CertFile != "" && s.Config.Server.KeyFile != "" {
		return s.Server.ListenAndServeTLS(s.Config.Server.CertFile, s.Config.Server.KeyFile)
	}

	return s.Server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	// Stop scheduler first
	s.Scheduler.Stop()

	if s.Server == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	return s.Server.Shutdown(shutdownCtx)
}
