package app

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ambjay/unveiled-prod/internal/data/db"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
	"github.com/ambjay/unveiled-prod/internal/webhook"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg, err := LoadConfig(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("load config: %w", err)
	}

	pg, err := db.NewPostgresService(cfg.PostgresDSN, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}
	theDB := pg.DB()

	verifier, err := webhook.NewVerifier(cfg.WebhookSecret)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init webhook verifier: %w", err)
	}

	reposet := wireRepos(theDB, log)
	clientset := wireClients(log, cfg)
	serviceset := wireServices(theDB, log, cfg, reposet, clientset)
	handlerset := wireHandlers(log, serviceset, verifier, pg)
	router := wireRouter(log, cfg, handlerset)

	return &App{
		Log:      log,
		DB:       theDB,
		Router:   router,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
	}, nil
}

func (a *App) Run(addr string) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(addr)
}

// Close drains detached persistence tasks before the process exits.
func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Services.Runner != nil {
		a.Services.Runner.Wait()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
