package commands

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	httpadapter "sudosolve/internal/adapters/http"
	"sudosolve/internal/config"
	"sudosolve/internal/hint"
	"sudosolve/internal/infrastructure/sqlitestore"
	"sudosolve/internal/infrastructure/storage"
	"sudosolve/internal/metrics"
	"sudosolve/internal/ports"
	"sudosolve/internal/solver"
	"sudosolve/internal/usecase"
	"sudosolve/internal/validator"
)

// serve: run the HTTP API until interrupted.
func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

			var store ports.Storage
			switch cfg.Storage.Backend {
			case "sqlite":
				db, err := sqlitestore.Open(cfg.Storage.Path)
				if err != nil {
					return err
				}
				defer func() { _ = db.Close() }()
				store = db
			default:
				store = storage.NewFS(cfg.Storage.Dir)
			}

			uc := usecase.NewService(solver.NewBacktracking(), validator.New(), hint.NewSingles(), store)
			uc.Metrics = metrics.New(prometheus.DefaultRegisterer)

			r := chi.NewRouter()
			r.Use(httpadapter.RequestLogger(logger))
			httpadapter.New(uc).Routes(r)
			r.Method(http.MethodGet, "/metrics", promhttp.Handler())

			srv := &http.Server{
				Addr:              cfg.Addr,
				Handler:           r,
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()
			logger.Info("listening", "addr", cfg.Addr, "storage", cfg.Storage.Backend)

			select {
			case err := <-errCh:
				if err != nil && err != http.ErrServerClosed {
					logger.Error("server error", "err", err)
					return err
				}
			case <-ctx.Done():
				shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutCtx); err != nil {
					return err
				}
				logger.Info("shutdown complete")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
