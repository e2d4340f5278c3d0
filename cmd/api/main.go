package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/api"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/api/events"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/clients/assistant"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/clients/identity"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/clients/mailer"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/clients/storage"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/repository"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/service"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/pkg/broker"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/pkg/config"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/pkg/job"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/pkg/logger"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/pkg/postgres"
)

const (
	ReadTimeout  = 20 * time.Second
	WriteTimeout = 20 * time.Second
)

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l := logger.New()

	pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.PostgresDSN)
	panicOnErr("up migrations", err)

	userRepo := repository.NewUserRepository(pool)
	tokenRepo := repository.NewRefreshTokenRepository(pool)
	draftRepo := repository.NewDraftRepository(pool)
	registrationRepo := repository.NewRegistrationRepository(pool)
	newsRepo := repository.NewNewsRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	identityClient := identity.NewClient(cfg)
	storageClient := storage.NewClient(cfg)
	assistantClient := assistant.NewClient(cfg)
	mail := mailer.New(cfg)

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.SubmissionTopic)
	defer producer.Close()

	hub := api.NewFeedHub()
	defer hub.Close()

	s := service.NewService(
		cfg,
		userRepo,
		tokenRepo,
		draftRepo,
		registrationRepo,
		newsRepo,
		dashboardRepo,
		identityClient,
		storageClient,
		assistantClient,
		mail,
		producer,
		hub,
	)

	// Kafka consumers
	{
		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, cfg.Kafka.PaymentVerifiedTopic)
		defer consumer.Close()

		eventHandler := events.NewEventHandler(s)

		consumer.Handle(cfg.Kafka.PaymentVerifiedTopic, eventHandler.OnPaymentVerified)
		consumer.Consume(ctx)
	}

	jobs := job.NewService()
	jobs.RegisterJob("delete_expired_tokens", cfg.JobCleanupInterval, s.DeleteExpiredTokens)
	jobs.RegisterJob("delete_stale_drafts", cfg.JobCleanupInterval, s.DeleteStaleDrafts)
	jobs.Start(ctx)

	mw := api.NewMiddleware(s)
	handler := api.NewHandler(s, mw)

	router := api.NewRouter(handler, hub, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTPPort)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	waitSignal(cancel, server)

	jobs.Stop()
	wg.Wait()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
