package main

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jpsantiago/aralplan/internal/config"
	"github.com/jpsantiago/aralplan/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the aralplan server",
	Long: `Start the aralplan HTTP server.

The server holds one lesson plan in memory at a time and serves the web UI,
the generation API, and the export endpoints. Provider API keys come from the
config file; edits to the file are picked up without a restart.

Examples:
  aralplan serve                    # Start on default port 8787
  aralplan serve --port 3000        # Start on custom port
  aralplan serve --host 0.0.0.0     # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Set up logger
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		// Load configuration
		cfgMgr, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}

		// Surface a missing API key at startup rather than on first
		// generation. The server still runs; exports and the UI work
		// without a provider.
		if _, _, err := cfgMgr.Get().ActiveLLMProvider(); err != nil {
			logger.Warn("generation disabled until a provider is configured", "error", err)
		}

		srvCfg := cfgMgr.Get().Server
		host := serveHost
		if host == "" && srvCfg.Host != "" {
			host = srvCfg.Host
		}
		port := servePort
		if port == "" && srvCfg.Port != 0 {
			port = strconv.Itoa(srvCfg.Port)
		}

		// Create server
		srv, err := server.New(server.Config{
			Host:          host,
			Port:          port,
			ConfigManager: cfgMgr,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Pick up config file edits while running
		cfgMgr.WatchConfig()

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (default from config)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (default from config)")

	rootCmd.AddCommand(serveCmd)
}
