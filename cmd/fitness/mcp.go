// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for the logged-in user, optionally with a metrics endpoint.
package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/harperreed/fitness/internal/mcp"
	"github.com/harperreed/fitness/internal/observability"
	"github.com/spf13/cobra"
)

var mcpMetricsAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout and acts on behalf of the user
given by --user. Set FITNESS_PASSWORD in the client configuration since
there is no terminal to prompt on.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "fitness": {
        "command": "fitness",
        "args": ["mcp", "--user", "alice"],
        "env": { "FITNESS_PASSWORD": "..." }
      }
    }
  }

AVAILABLE TOOLS:

  log_workout         Log a workout
  list_workouts       List workouts
  update_workout      Change a workout
  delete_workout      Delete a workout
  log_measurement     Record weight and height
  list_measurements   List measurements with BMI
  delete_measurement  Delete a measurement
  calculate_bmi       BMI and category for a weight and height
  get_dashboard       Totals, latest weight and BMI status
  get_report          Full text report

AVAILABLE RESOURCES:

  fitness://dashboard   Dashboard summary (JSON)
  fitness://report      Text report

METRICS:

  --metrics-addr :9090 serves Prometheus metrics at /metrics.`,
	Args:        cobra.NoArgs,
	Annotations: authRequired,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(svc, sess)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if mcpMetricsAddr != "" {
			stop := serveMetrics(ctx, mcpMetricsAddr)
			defer stop()
		}
		return server.Serve(ctx)
	},
}

// serveMetrics exposes /metrics on addr until the returned func is called.
func serveMetrics(ctx context.Context, addr string) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", observability.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "metrics server failed", "addr", addr, "error", err)
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}
}

func init() {
	mcpCmd.Flags().StringVar(&mcpMetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	rootCmd.AddCommand(mcpCmd)
}
