package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-specform/components/specforms"
)

func newServeCommand(a *app) *cobra.Command {
	var (
		addr     string
		basePath string
		grace    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve forms over HTTP",
		Long: `Serve forms over HTTP.

  GET  <base>/specs               list record types
  GET  <base>/specs/openapi.json  OpenAPI document for every type
  GET  <base>/specs/<type>        empty form (?renderer=html|text|json|yaml)
  POST <base>/specs/<type>        submit an HTML form post or form text`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mux, pattern, err := a.newServeMux(basePath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, &http.Server{Addr: addr, Handler: mux}, pattern, grace)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8383", "HTTP listen address")
	cmd.Flags().StringVar(&basePath, "base-path", "", "Path prefix for the form routes")
	cmd.Flags().DurationVar(&grace, "grace", 5*time.Second, "Shutdown grace period")
	return cmd
}

func (a *app) newServeMux(basePath string) (*http.ServeMux, string, error) {
	mux := http.NewServeMux()
	pattern, err := specforms.RegisterRoutes(mux, basePath,
		specforms.WithManager(a.manager),
		specforms.WithLogger(a.logger),
	)
	if err != nil {
		return nil, "", err
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux, pattern, nil
}

// serve runs srv until ctx is done, then shuts it down within grace.
func (a *app) serve(ctx context.Context, srv *http.Server, pattern string, grace time.Duration) error {
	a.logger.Info("listening", zap.String("addr", srv.Addr), zap.String("routes", pattern))

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
