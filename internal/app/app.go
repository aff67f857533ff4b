// Package app configures and runs the gateway.
package app

import (
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	ginpprof "github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"

	"github.com/rackhd/redfish-gateway/config"
	"github.com/rackhd/redfish-gateway/internal/repository/sqldb"
	"github.com/rackhd/redfish-gateway/pkg/db"
	"github.com/rackhd/redfish-gateway/pkg/httpserver"
	"github.com/rackhd/redfish-gateway/pkg/logger"
	"github.com/rackhd/redfish-gateway/pkg/plugin"
	redfish "github.com/rackhd/redfish-gateway/redfish/pkg"
)

var Version = "DEVELOPMENT"

// Run creates objects via constructors and blocks until a signal or server error.
func Run(cfg *config.Config) {
	log := logger.New(cfg.Level)
	cfg.Version = Version
	log.Info("app - Run - version: %s", cfg.Version)

	logger.SetupStdLog(log)
	logger.SetupGin(log)

	database, err := db.New(cfg.DB.URL, sql.Open, db.MaxPoolSize(cfg.PoolMax), db.EnableForeignKeys(true))
	if err != nil {
		log.Fatal(fmt.Errorf("app - Run - db.New: %w", err))
	}

	defer database.Close()

	if err := sqldb.Migrate(database, cfg.DB.URL); err != nil {
		log.Fatal(fmt.Errorf("app - Run - sqldb.Migrate: %w", err))
	}

	handler := NewRouter(cfg, log)

	plugins := plugin.NewManager(&plugin.Context{
		Config:   cfg,
		Logger:   log,
		Database: database,
		Router:   handler,
	})
	plugins.Register(redfish.NewPlugin())

	if err := plugins.Start(); err != nil {
		log.Fatal(fmt.Errorf("app - Run - plugins.Start: %w", err))
	}

	httpServer := httpserver.New(
		handler,
		httpserver.Port(cfg.Host, cfg.Port),
		httpserver.TLS(cfg.TLS.Enabled, cfg.TLS.CertFile, cfg.TLS.KeyFile),
		httpserver.PFX(cfg.TLS.PFXFile, cfg.TLS.PFXPassword),
		httpserver.Logger(log),
	)

	waitForShutdown(log, httpServer)

	if err := httpServer.Shutdown(); err != nil {
		log.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}

	if err := plugins.Shutdown(); err != nil {
		log.Error(fmt.Errorf("app - Run - plugins.Shutdown: %w", err))
	}
}

// NewRouter returns the gin engine with CORS and, when ENABLE_PPROF=true, pprof.
func NewRouter(cfg *config.Config, log logger.Interface) *gin.Engine {
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := gin.New()
	handler.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowHeaders = cfg.AllowedHeaders
	corsConfig.ExposeHeaders = []string{"Location", "X-Auth-Token", "OData-Version"}

	handler.Use(cors.New(corsConfig))

	if os.Getenv("ENABLE_PPROF") == "true" {
		ginpprof.Register(handler, "debug/pprof")
		log.Info("pprof enabled at /debug/pprof/")
	}

	return handler
}

func waitForShutdown(log logger.Interface, httpServer *httpserver.Server) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: %s", s.String())
	case err := <-httpServer.Notify():
		log.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}
}
