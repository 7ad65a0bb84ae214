package main

import (
	"context"
	_ "decision-engine/docs"
	"decision-engine/internal/api"
	"decision-engine/internal/config"
	"decision-engine/internal/domain/decision"
	"decision-engine/internal/domain/identity"
	"decision-engine/internal/event"
	"decision-engine/internal/infrastructure/cache"
	"decision-engine/internal/infrastructure/logging"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/spf13/viper"
)

// @title Loan Decision Engine API
// @version 1.0
// @description Decides the maximum loan amount and period that can be approved for an applicant.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
func main() {
	cfg, logger := initializeApp()

	offerCache, cacheCloser := initializeCache(cfg, logger)
	defer closeResource("redis client", cacheCloser, logger)

	publisher, amqpCloser := initializePublisher(cfg, logger)
	defer closeResource("rabbitmq connection", amqpCloser, logger)

	decisionService := initializeServices(cfg, offerCache, publisher, logger)
	router := api.SetupRouter(decisionService, cfg, logger)

	srv, serverErrors, shutdownChan := startServer(cfg, router, logger)
	handleShutdown(srv, shutdownChan, serverErrors, logger)
}

func initializeApp() (*config.Config, *slog.Logger) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.Logger)
	logger.Info("Application starting...", "config_source", viper.ConfigFileUsed())

	return cfg, logger
}

func initializeCache(cfg *config.Config, logger *slog.Logger) (decision.OfferCache, io.Closer) {
	if !cfg.Cache.Enabled {
		logger.Info("Offer cache disabled")
		return nil, nil
	}

	logger.Info("Connecting to Redis offer cache...", "addr", cfg.Cache.Addr)
	client, err := cache.NewRedisClient(context.Background(), cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
	if err != nil {
		logger.Warn("Redis unavailable, continuing without offer cache", "error", err)
		return nil, nil
	}
	return cache.NewRedisOfferCache(client, cfg.Cache.TTL, logger), client
}

func initializePublisher(cfg *config.Config, logger *slog.Logger) (event.DecisionPublisher, io.Closer) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("Decision events disabled")
		return event.NoopPublisher{}, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Warn("RabbitMQ unavailable, decision events disabled", "error", err)
		return event.NoopPublisher{}, nil
	}

	publisher, err := event.NewRabbitMQEventPublisher(conn, cfg.RabbitMQ.ExchangeName, logger)
	if err != nil {
		logger.Warn("Failed to set up RabbitMQ publisher, decision events disabled", "error", err)
		_ = conn.Close()
		return event.NoopPublisher{}, nil
	}
	return publisher, conn
}

func initializeServices(cfg *config.Config, offerCache decision.OfferCache, publisher event.DecisionPublisher, logger *slog.Logger) decision.DecisionService {
	logger.Info("Initializing application components...")
	validator := identity.NewEstonianValidator(logger, identity.WithAgeLimits(cfg.Identity.MinAge, cfg.Identity.MaxAge))
	engine := decision.NewEngine(validator, nil)
	return decision.NewDecisionService(engine, offerCache, publisher, logger)
}

func closeResource(name string, c io.Closer, logger *slog.Logger) {
	if c == nil {
		return
	}
	logger.Info("Closing resource...", "resource", name)
	if err := c.Close(); err != nil {
		logger.Warn("Failed to close resource", "resource", name, "error", err)
	}
}

func startServer(cfg *config.Config, router http.Handler, logger *slog.Logger) (*http.Server, <-chan error, <-chan os.Signal) {
	logger.Info("Setting up HTTP server...", "port", cfg.Server.Port)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Server listening on port %d", cfg.Server.Port))
		err := srv.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			serverErrors <- err
		} else {
			logger.Info("Server closed gracefully.")
			serverErrors <- nil
		}
	}()
	return srv, serverErrors, shutdownChan
}

func handleShutdown(srv *http.Server, shutdownChan <-chan os.Signal, serverErrors <-chan error, logger *slog.Logger) {
	logger.Info("Shutdown handler started. Waiting for signal or server error...")

	var triggerReason string
	select {
	case sig := <-shutdownChan:
		triggerReason = "signal: " + sig.String()
		logger.Info("Shutdown signal received.", "signal", sig.String())
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server exited unexpectedly before signal", "error", err)
			os.Exit(1)
		}
		triggerReason = "server exited"
		logger.Info("Server goroutine finished before signal.")
	}

	logger.Info("Starting graceful shutdown...", "trigger", triggerReason)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	logger.Info("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", "error", err)
		if err := srv.Close(); err != nil {
			logger.Error("HTTP server forced close failed", "error", err)
		}
	} else {
		logger.Info("HTTP server gracefully stopped.")
	}

	if triggerReason != "server exited" {
		logger.Info("Waiting for server goroutine to confirm exit...")
		select {
		case err := <-serverErrors:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Warn("Server goroutine exited with unexpected error after shutdown", "error", err)
			} else {
				logger.Info("Server goroutine confirmed exit.")
			}
		case <-time.After(5 * time.Second):
			logger.Warn("Timed out waiting for server goroutine confirmation.")
		}
	}

	logger.Info("Application shutdown process complete.")
}
