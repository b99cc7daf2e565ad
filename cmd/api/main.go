package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/adapters/cache"
	natsbroker "github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/adapters/eventbroker/nats"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/adapters/handlers/http/chi"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/adapters/handlers/http/chi/v1/media"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/adapters/identity"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/adapters/queue"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/adapters/realtime/ws"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/adapters/repository/postgres"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/adapters/storage/minio"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/config"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/service/payment"
	"github.com/Bot444cyber/UI-Management-System-v1-sub001/internal/core/service/upload"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			logger.Error("failed to close database", "error", err)
			os.Exit(1)
		}
	}(db)
	logger.Info("db connection established")

	//storage
	minioAdapter, err := minio.NewAdapter(ctx, cfg.Minio, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}

	diskCache, err := cache.NewDisk(cfg.Cache.Dir, logger)
	if err != nil {
		logger.Error("failed to init disk cache", "error", err)
		os.Exit(1)
	}

	//repositories
	listingRepo := postgres.NewSqlListingRepository(db)
	paymentRepo := postgres.NewSqlPaymentRepository(db)

	//realtime
	hub := ws.NewHub(cfg.WS, logger)
	resolver := identity.NewHeaderResolver()
	wsHandler := ws.NewHandler(hub, resolver, cfg.WS, logger)

	//upload pipeline
	uploadWorker := upload.NewWorker(minioAdapter, listingRepo, hub, logger)
	jobQueue := queue.New(cfg.Queue, logger)
	jobQueue.Drain(uploadWorker.Handle, cfg.Queue.Concurrency)

	//payment confirmations
	paymentService := payment.NewPaymentEventService(paymentRepo, hub, logger)
	consumer, err := natsbroker.NewNATSConsumer(cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to init nats consumer", "error", err)
		os.Exit(1)
	}
	if err := consumer.Subscribe(ctx, paymentService); err != nil {
		logger.Error("failed to subscribe to payment confirmations", "error", err)
		os.Exit(1)
	}

	//http
	mediaHandler := media.NewMediaHandlerV1(jobQueue, minioAdapter, diskCache, resolver, cfg.Upload, cfg.Cache, logger)

	router := chi.NewRouter(logger, mediaHandler, wsHandler, cfg.Env.Env)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	if err := consumer.Close(); err != nil {
		logger.Error("failed to close nats consumer", "error", err)
	}

	// let queued uploads finish before the process exits
	if err := jobQueue.Close(shutdownCtx); err != nil {
		logger.Error("failed to drain job queue", "error", err)
	} else {
		logger.Info("job queue drained")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}
