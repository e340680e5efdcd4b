package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github.com/Gejoprajan/TwilioToolBarNode/internal/adapter/provider"
	"github.com/Gejoprajan/TwilioToolBarNode/internal/config"
	"github.com/Gejoprajan/TwilioToolBarNode/internal/service"
	"github.com/Gejoprajan/TwilioToolBarNode/internal/token"
	handler "github.com/Gejoprajan/TwilioToolBarNode/internal/transport/http"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg := config.Load()

	log.Info().Int("port", cfg.Port).Str("base_url", cfg.BaseURL).Msg("starting signaling backend")

	// Initialize provider client
	providerClient := provider.NewClient(provider.DefaultBaseURL, cfg.AccountSID, cfg.AuthToken)

	// Initialize token issuer
	issuer := token.NewIssuer(cfg)

	// Initialize service
	svc := service.New(providerClient, issuer, cfg)

	// Initialize handler
	h := handler.NewHandler(svc)

	// Create Echo server
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Register routes
	h.RegisterRoutes(e)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("server running")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shutdown server gracefully")
	}

	log.Info().Msg("stopped")
}
