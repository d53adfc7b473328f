package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/api-sage/bank-account-console/src/internal/adapter/http/controller"
	"github.com/api-sage/bank-account-console/src/internal/adapter/http/router"
	"github.com/api-sage/bank-account-console/src/internal/config"
	"github.com/api-sage/bank-account-console/src/internal/logger"
	"github.com/api-sage/bank-account-console/src/internal/usecase/services"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve a web page that runs scripted console sessions",
		Long: `serve starts an HTTP server (PORT, default 3000). POST /sessions replays a
list of input lines through a fresh console session and returns the transcript.
Each run is stopped after SESSION_TIMEOUT (default 30s).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			closeLog, err := setupLogging(*cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			sessionController := controller.NewSessionController(services.NewSessionService(cfg.SessionTimeout))
			server := &http.Server{
				Addr:              cfg.Addr(),
				Handler:           router.New(sessionController),
				ReadHeaderTimeout: 10 * time.Second,
			}

			cmd.Printf("Server listening on port %s\n", cfg.Port)
			logger.Info("serve starting", logger.Fields{"addr": server.Addr, "sessionTimeout": cfg.SessionTimeout.String()})
			return serve(ctx, server)
		},
	}
}

// serve runs server until ctx is done, then shuts it down.
func serve(ctx context.Context, server *http.Server) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("serve listen failed", err, logger.Fields{"addr": server.Addr})
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("serve shutting down", nil)
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
