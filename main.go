package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Ollie-C/myvu-movies-sub000/config"
	"github.com/Ollie-C/myvu-movies-sub000/controllers"
	"github.com/Ollie-C/myvu-movies-sub000/data_access"
	"github.com/Ollie-C/myvu-movies-sub000/engine"
	"github.com/Ollie-C/myvu-movies-sub000/middleware"
	"github.com/Ollie-C/myvu-movies-sub000/services"
)

func setupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logger.Warn(".env file not found", zap.Error(err))
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}
	logger.Info("configuration loaded", zap.String("env", cfg.Env))

	// Initialize MongoDB connection
	mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongodb.Close(context.Background())

	// Initialize repositories
	userRepo := data_access.NewUserRepository(mongodb)
	movieRepo := data_access.NewMovieRepository(mongodb)
	sessionRepo := data_access.NewSessionRepository(mongodb)
	itemRepo := data_access.NewRankingItemRepository(mongodb)
	battleRepo := data_access.NewBattleRepository(mongodb)
	engineRepo := data_access.NewEngineRepository(mongodb, itemRepo, battleRepo)

	// Set JWT secret for middleware
	middleware.SetJWTSecret(cfg.JWTSecret)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	sessionService := services.NewSessionService(sessionRepo, itemRepo, movieRepo, logger)
	battleService := services.NewBattleService(
		sessionRepo, itemRepo, battleRepo, movieRepo, engineRepo,
		engine.NewPairingGenerator(nil), logger)
	catalogService := services.NewCatalogService(cfg.MovieAPIKey, cfg.MovieAPIBaseURL, movieRepo, logger)

	// Seed the catalog so fresh installs have movies to rank
	if count, err := catalogService.ImportCSV(context.Background(), cfg.MovieCSVPath); err != nil {
		logger.Warn("catalog import skipped", zap.Error(err))
	} else {
		logger.Info("catalog ready", zap.Int("movies", count))
	}

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	sessionController := controllers.NewSessionController(sessionService)
	battleController := controllers.NewBattleController(battleService)
	catalogController := controllers.NewCatalogController(catalogService)

	// Setup Gin router
	r := gin.Default()
	r.Use(setupCORS())

	// Health check endpoint
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Public routes
	api := r.Group("/api")
	{
		api.POST("/register", authController.Register)
		api.POST("/login", authController.Login)
		api.POST("/logout", authController.Logout)

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/movies", catalogController.GetMovie)
			protected.POST("/movies/hydrate", catalogController.HydrateMovie)

			protected.POST("/sessions", sessionController.CreateSession)
			protected.GET("/sessions", sessionController.ListSessions)
			protected.GET("/sessions/:id", sessionController.GetSession)
			protected.POST("/sessions/:id/pause", sessionController.PauseSession)
			protected.POST("/sessions/:id/resume", sessionController.ResumeSession)
			protected.POST("/sessions/:id/rating", sessionController.RateMovie)
			protected.POST("/sessions/:id/league-snippet", sessionController.LeagueSnippet)
			protected.PUT("/sessions/:id/order", sessionController.Reorder)
			protected.POST("/sessions/:id/tier", sessionController.AssignTier)

			protected.GET("/sessions/:id/battle", battleController.GetBattlePair)
			protected.POST("/sessions/:id/battle", battleController.SubmitBattle)
			protected.POST("/sessions/:id/skip", battleController.SkipPair)
			protected.GET("/sessions/:id/progress", battleController.GetProgress)
			protected.GET("/sessions/:id/leaderboard", battleController.GetLeaderboard)
			protected.GET("/sessions/:id/merged", battleController.GetMergedRankings)
			protected.GET("/sessions/:id/history", battleController.GetHistory)
		}
	}

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
