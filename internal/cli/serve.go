// serve.go implements the "rush-hour serve" command.
//
// The serve command starts the HTTP renderer (see internal/server) and
// blocks until SIGINT or SIGTERM, then shuts the server down gracefully.

package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/edouardmenayde/rush-hour/internal/model"
	"github.com/edouardmenayde/rush-hour/internal/server"
)

// shutdownTimeout bounds the graceful shutdown of the HTTP server.
const shutdownTimeout = 10 * time.Second

// serveFlags holds the flag values for the serve command.
type serveFlags struct {
	addr string // --addr: listen address, overrides server.addr
}

// NewServeCommand creates the "serve" cobra command.
func NewServeCommand() *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve puzzle rendering over HTTP",
		Long: `Start an HTTP server that renders puzzles.

Routes:
  GET  /healthz              liveness probe
  POST /api/render           render the puzzle in the request body (?format=jsonc)
  GET  /api/puzzles/{name}   render <puzzle_dir>/<name>.txt|.jsonc|.json

Examples:
  rush-hour serve
  rush-hour serve --addr :9090`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, flags)
		},
	}

	cmd.Flags().StringVar(&flags.addr, "addr", "", "Listen address (default: server.addr from config)")
	return cmd
}

// runServe listens on the configured address and serves until ctx is done.
func runServe(ctx context.Context, flags *serveFlags) error {
	addr := cfg.Server.Addr
	if flags.addr != "" {
		addr = flags.addr
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return model.WrapCLIError(model.ExitServerError, "failed to listen on "+addr, err)
	}

	return serve(ctx, ln)
}

// serve runs the HTTP server on ln until ctx is cancelled or the server
// fails.
func serve(ctx context.Context, ln net.Listener) error {
	handler := server.New(server.Options{
		PuzzleDir: cfg.PuzzleDir,
		Parse:     cfg.ParseOptions(),
		Render:    cfg.RenderOptions(),
		Logger:    logger,
	})

	httpServer := &http.Server{
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server listening on %s", ln.Addr())
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return model.WrapCLIError(model.ExitServerError, "HTTP server failed", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return model.WrapCLIError(model.ExitServerError, "HTTP server shutdown failed", err)
	}
	logger.Info("Server stopped")
	return nil
}
