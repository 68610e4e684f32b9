package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"capsection/internal/app"

	"github.com/spf13/cobra"
)

var (
	serveHost  string
	servePort  int
	serveWatch bool
)

// serveCmd starts the HTTP server that renders the section on every request.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the capabilities section over HTTP",
	Long: `Starts an HTTP server exposing the capabilities section:

  GET /                  standalone HTML page
  GET /section           section fragment
  GET /api/capabilities  derived view as JSON
  GET /healthz           health check
  GET /metrics           Prometheus metrics

With --watch (or server.watch in the configuration) the file given with
--config is reloaded on change without restarting the server. The server
shuts down gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApplication(cmd)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.Serve(ctx, app.ServeOptions{
		Host:  serveHost,
		Port:  servePort,
		Watch: serveWatch,
	})
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen host (overrides server.host)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (overrides server.port)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "Reload the --config file when it changes")
}
