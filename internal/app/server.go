package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/vocab-builder/internal/service/snapshot"
	"github.com/heartmarshall/vocab-builder/internal/service/study"
	"github.com/heartmarshall/vocab-builder/internal/transport/middleware"
	"github.com/heartmarshall/vocab-builder/internal/transport/rest"
)

// Handler builds the HTTP handler. Workspaces opened through /init use
// the server word order.
func (c *Container) Handler(limiter *middleware.RateLimiter) http.Handler {
	cfg := c.Config
	defaults := rest.SessionDefaults{
		Pair: cfg.Study.Pair(),
		Options: study.Options{
			MinCorrect: cfg.Study.MinCorrect,
			MinAgeDays: cfg.Study.MinAgeDays,
			WordOrder:  cfg.Study.ServerWordOrder,
			Part:       cfg.Study.PartFilter,
		},
		Lookup: cfg.Translator.Enabled(),
	}

	return rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(c.Store, BuildVersion(), cfg.Storage.Driver),
		Prefs:  rest.NewPrefsHandler(c.Prefs, c.Workspaces, cfg.Study.Pair(), c.Logger),
		Vocab:  rest.NewVocabHandler(c.Workspaces, c.Study, c.Vocab, c.Impex, c.Prefs, defaults, c.Logger),
	}, cfg.CORS, limiter, cfg.Translator.RateLimitPerMinute, c.Logger)
}

// Serve runs the HTTP server and, when enabled, the snapshot scheduler
// until ctx is cancelled or one of them fails.
func (c *Container) Serve(ctx context.Context) error {
	cfg := c.Config

	limiter := middleware.NewRateLimiter(c.Clock, 5*time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      c.Handler(limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	var sched *snapshot.Scheduler
	if cfg.Backup.Enabled {
		var err error
		if sched, err = snapshot.NewScheduler(c.Logger, c.Snapshots, cfg.Backup.SnapshotInterval); err != nil {
			return err
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		c.Logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		c.Logger.Info("http server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if sched != nil {
		g.Go(func() error { return sched.Run(gctx) })
	}

	return g.Wait()
}
