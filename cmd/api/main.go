package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fastlaundry/internal/cartstore"
	"fastlaundry/internal/config"
	"fastlaundry/internal/db"
	"fastlaundry/internal/httpserver"
	"fastlaundry/internal/kvstore"
	"fastlaundry/internal/laundryapi"
	"fastlaundry/internal/realtime"
	bookingsvc "fastlaundry/internal/service/booking"
	"fastlaundry/internal/service/orderstatus"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	kv, cleanup, err := openSessionStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("open session store: %v", err)
	}
	defer cleanup()

	backend := laundryapi.New(cfg.BackendBaseURL, logger)
	dialer := realtime.NewDialer(cfg.BackendWSURL, logger)

	cart := cartstore.New(kv, logger)
	bookings := bookingsvc.New(cart, backend, logger)
	counts := orderstatus.NewService(backend, logger)

	srv := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Cart:     cart,
		Booking:  bookings,
		Counts:   counts,
		Posts:    backend,
		Catalog:  backend,
		Payments: backend,
		NewStatusView: func() httpserver.StatusView {
			return orderstatus.NewViewModel(counts, dialer, logger)
		},
		KV:             kv,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

func openSessionStore(ctx context.Context, cfg config.Config, logger *log.Logger) (kvstore.Store, func(), error) {
	switch cfg.SessionBackend {
	case config.BackendPostgres:
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			return nil, nil, err
		}
		return kvstore.NewPostgres(pool), pool.Close, nil
	case config.BackendRedis:
		return kvstore.NewRedis(cfg.RedisAddr, cfg.RedisPassword), func() {}, nil
	case config.BackendMemory:
		logger.Printf("using in-memory session store; carts do not survive restarts")
		return kvstore.NewMemory(), func() {}, nil
	default:
		return nil, nil, errors.New("unknown SESSION_BACKEND " + cfg.SessionBackend)
	}
}
