package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/techmart/storefront/internal/cart/app"
	"github.com/techmart/storefront/internal/cart/infra/sqlitekv"
	"github.com/techmart/storefront/internal/cart/infra/storage"
	"github.com/techmart/storefront/internal/notify"
	"github.com/techmart/storefront/internal/render"
	"github.com/techmart/storefront/internal/web"
	"github.com/techmart/storefront/pkg/config"
	"github.com/techmart/storefront/pkg/logger"
	"github.com/techmart/storefront/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "storefront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	root := context.Background()
	ctx, cancel := shutdown.WithSignals(root)
	defer cancel()

	kv, closeKV := openStore(cfg, log)
	defer closeKV()

	repo := storage.NewCartRepo(kv, log)
	region := notify.NewRegion(cfg.NotificationTTL)
	svc := app.NewService(repo, web.RequestConfirmer{}, region)

	renderer, err := render.New()
	if err != nil {
		log.Error("renderer init failed", slog.Any("err", err))
		os.Exit(1)
	}

	handlers := web.NewHandlers(svc, renderer, region, log)
	router := web.NewRouter(handlers, log, cfg.CORSOrigins)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", slog.Any("err", err))
	}
	log.Info("bye")
}

// openStore opens the durable cart store, degrading to an in-memory one
// when the file cannot be opened. The repo's seed fallback keeps the cart
// usable either way.
func openStore(cfg config.Config, log *slog.Logger) (storage.KV, func()) {
	if cfg.DBPath == "" {
		log.Warn("no CART_DB_PATH configured, cart state will not survive restarts")
		return storage.NewMemoryKV(), func() {}
	}

	store, err := sqlitekv.Open(cfg.DBPath)
	if err != nil {
		log.Warn("cart store unavailable, falling back to memory", slog.Any("err", err))
		return storage.NewMemoryKV(), func() {}
	}

	return store, func() { store.Close() }
}
