package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Freeeeeet/sports_reservation_bot/internal/app"
	"github.com/Freeeeeet/sports_reservation_bot/internal/clock"
	"github.com/Freeeeeet/sports_reservation_bot/internal/config"
	"github.com/Freeeeeet/sports_reservation_bot/internal/controller"
	"github.com/Freeeeeet/sports_reservation_bot/internal/repository"
	"github.com/Freeeeeet/sports_reservation_bot/internal/service"
	"github.com/Freeeeeet/sports_reservation_bot/migrations"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Sugar().Infow("Starting sports reservation bot",
		"environment", cfg.Environment,
		"reservation_store", cfg.ReservationStore,
		"time_zone", cfg.TimeZone)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}

	migrator, err := app.NewMigrator(pool, migrations.FS, logger)
	if err != nil {
		return err
	}
	if err := migrator.Run(ctx); err != nil {
		migrator.Close()
		return err
	}
	migrator.Close()

	var store service.ReservationStore
	switch cfg.ReservationStore {
	case config.ReservationStorePostgres:
		store = repository.NewReservationRepository(pool)
	default:
		store = repository.NewMemoryReservationRepository()
	}

	userService := service.NewUserService(repository.NewUserRepository(pool), logger)
	reservationService := service.NewReservationService(store, userService, clock.NewSystem(loc), logger)
	signInService := service.NewSignInService(userService, service.SignInConfig{
		AuthorizeURL: cfg.OAuthAuthorizeURL,
		ClientID:     cfg.OAuthClientID,
		RedirectURI:  cfg.OAuthRedirectURI,
	})

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		return err
	}

	botController := controller.NewBotController(b, reservationService, signInService, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		// Меню команд не критично, бот работает и без него
		logger.Warn("Continuing without commands menu", zap.Error(err))
	}

	if cfg.HealthAddr != "" {
		healthServer := app.NewHealthServer(cfg.HealthAddr, pool, logger)
		go func() {
			logger.Info("Health server listening", zap.String("addr", cfg.HealthAddr))
			if err := healthServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Health server failed", zap.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := healthServer.Shutdown(shutdownCtx); err != nil {
				logger.Error("Health server shutdown failed", zap.Error(err))
			}
		}()
	}

	if err := botController.Start(ctx); err != nil {
		return err
	}

	logger.Info("Bot stopped")
	return nil
}
