package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/tobiasmeyr/staybook/internal/mockapi"
)

// mockOpts holds the command-line flags for the mock command.
type mockOpts struct {
	addr      string
	username  string
	password  string
	failFirst int
}

// newMockCmd creates the mock command, which serves the in-process mock API
// used for development and demos. The server speaks the same wire format as
// the real API, so all other commands work against it with --base-url.
func newMockCmd() *cobra.Command {
	opts := mockOpts{addr: "localhost:8080", username: "demo", password: "demo"}

	cmd := &cobra.Command{
		Use:   "mock",
		Short: "Run a local mock API server",
		Long: `Run a local mock hotel API server with a small fixed dataset.

The server requires basic auth and implements all endpoints the CLI uses.
Use --fail-first to make the first N requests return HTTP 500, which is
handy for exercising retry behavior.

Example:
  staybook mock --addr localhost:8080 &
  STAYBOOK_USERNAME=demo STAYBOOK_PASSWORD=demo \
    staybook lookup countries --base-url http://localhost:8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMock(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.username, "mock-username", opts.username, "basic auth username the server accepts")
	cmd.Flags().StringVar(&opts.password, "mock-password", opts.password, "basic auth password the server accepts")
	cmd.Flags().IntVar(&opts.failFirst, "fail-first", 0, "fail the first N requests with HTTP 500")

	return cmd
}

func runMock(ctx context.Context, opts *mockOpts) error {
	logger := loggerFromContext(ctx)

	api := mockapi.New(opts.username, opts.password)
	if opts.failFirst > 0 {
		api.FailFirst(opts.failFirst)
		logger.Info("failure injection enabled", "fail_first", opts.failFirst)
	}

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", opts.addr)
	if err != nil {
		return err
	}
	printSuccess("Mock API listening on http://%s", opts.addr)
	printDetail("username: %s, password: %s", opts.username, opts.password)
	printDetail("stop with Ctrl-C")

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		logger.Info("server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
