// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"

	"hopegivers-web/internal/apiclient"
	"hopegivers-web/internal/config"
	"hopegivers-web/internal/db"
	adminHandler "hopegivers-web/internal/handlers/admin"
	authHandler "hopegivers-web/internal/handlers/auth"
	charityHandler "hopegivers-web/internal/handlers/charity"
	dashboardHandler "hopegivers-web/internal/handlers/dashboard"
	donationHandler "hopegivers-web/internal/handlers/donation"
	eventsHandler "hopegivers-web/internal/handlers/events"
	helpHandler "hopegivers-web/internal/handlers/help"
	postHandler "hopegivers-web/internal/handlers/post"
	prefsHandler "hopegivers-web/internal/handlers/prefs"
	"hopegivers-web/internal/middleware"
	"hopegivers-web/internal/pkg/session"
	authUsecase "hopegivers-web/internal/service/auth"
	catalogUsecase "hopegivers-web/internal/service/catalog"
	dashboardUsecase "hopegivers-web/internal/service/dashboard"
	prefsUsecase "hopegivers-web/internal/service/prefs"
	"hopegivers-web/internal/sessionevents"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       s.cfg.RedisDB,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Println("[REDIS] ✅ Connected successfully")

	// ----- Backend API Client -----
	api := apiclient.New(s.cfg.APIBaseURL, s.cfg.APITimeout, logger)

	// ----- Session Manager -----
	sessionManager := session.NewManager(logger)

	// ----- Session Event Hub -----
	hub := sessionevents.NewHub(logger)
	go hub.Run(context.Background())

	// ----- Services (Usecases) -----
	prefsStore := prefsUsecase.NewStore(redisClient)
	authService := authUsecase.NewService(api, sessionManager, prefsStore, hub, logger)
	catalogService := catalogUsecase.NewService(api, redisClient, s.cfg.CharityCacheTTL, logger)
	dashboardService := dashboardUsecase.NewService(api, logger)

	// ----- Handlers -----
	authHandlerInst := authHandler.NewAuthHandler(authService, sessionManager, logger)
	charityHandlerInst := charityHandler.NewCharityHandler(catalogService, api, logger)
	donationHandlerInst := donationHandler.NewDonationHandler(api, logger)
	postHandlerInst := postHandler.NewPostHandler(api, logger)
	helpHandlerInst := helpHandler.NewHelpHandler(api, logger)
	adminHandlerInst := adminHandler.NewAdminHandler(api, logger)
	dashboardHandlerInst := dashboardHandler.NewDashboardHandler(dashboardService, sessionManager, logger)
	prefsHandlerInst := prefsHandler.NewPrefsHandler(prefsStore, logger)
	wsHandlerInst := eventsHandler.NewWSHandler(hub, logger)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(sessionManager)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		AuthHandler:      authHandlerInst,
		CharityHandler:   charityHandlerInst,
		DonationHandler:  donationHandlerInst,
		PostHandler:      postHandlerInst,
		HelpHandler:      helpHandlerInst,
		AdminHandler:     adminHandlerInst,
		DashboardHandler: dashboardHandlerInst,
		PrefsHandler:     prefsHandlerInst,
		WSHandler:        wsHandlerInst,
		AuthMiddleware:   authMiddleware,
	}
	SetupRouter(s.engine, logger, handlers)

	// ----- Start HTTP -----
	log.Printf("🚀 Server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
