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

	"github.com/alexanderramin/praxis/internal/api"
	"github.com/alexanderramin/praxis/internal/logger"
	"github.com/alexanderramin/praxis/internal/web"
)

const (
	shutdownTimeout = 5 * time.Second
	probeTimeout    = 3 * time.Second
)

func newServeCmd(flags *rootFlags, version string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server and browser client",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := appFor(cmd.Context(), flags, version)
			if err != nil {
				return err
			}
			if addr != "" {
				app.Config.Server.Addr = addr
			}
			return runServer(cmd.Context(), app)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, :8080)")
	return cmd
}

func runServer(ctx context.Context, app *App) error {
	handler := api.NewRouter(
		api.NewAPI(app.Profiles, app.Plans, app.Reality, app.Status),
		web.Handler(),
	)

	server := &http.Server{
		Addr:    app.Config.Server.Addr,
		Handler: handler,
	}

	logStartup(ctx, app)

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	case <-ctx.Done():
		logger.Info("shutting down", "reason", ctx.Err())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// logStartup reports where the server listens and whether the provider
// answers, so a dead Ollama shows up in the log before the first plan
// request instead of as a 502 a minute in.
func logStartup(ctx context.Context, app *App) {
	logger.Info("praxis serving",
		"addr", app.Config.Server.Addr,
		"data_dir", app.Config.DataDir,
		"provider", app.Config.LLM.Provider,
		"llm_configured", app.Config.LLM.Configured(),
	)
	if !app.Config.LLM.Configured() {
		logger.Warn("no usable llm provider; plan generation will return errors")
		return
	}

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	if app.LLM.Available(probeCtx) {
		logger.Info("llm provider reachable",
			"provider", app.Config.LLM.Provider, "model", app.Config.LLM.Model)
	} else {
		logger.Warn("llm provider not reachable",
			"provider", app.Config.LLM.Provider, "endpoint", app.Config.LLM.Endpoint)
	}
}
