package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-search/internal/config"
	"github.com/jonathan/talent-search/internal/logger"
	"github.com/jonathan/talent-search/internal/server"
)

var (
	serveConfigPath string
	servePort       int
	serveLimit      int
	serveJSONLogs   bool
	serveDebug      bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes search, roster and authentication endpoints over the stored candidate roster.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file (flags override file values)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().IntVar(&serveLimit, "default-limit", 0, "Default result limit for search requests that do not set one (default 100)")
	serveCmd.Flags().BoolVar(&serveJSONLogs, "json-logs", false, "Emit JSON log lines instead of console encoding")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Server: config.ServerConfig{
			Port:        servePort,
			DatabaseURL: os.Getenv("DATABASE_URL"),
		},
		Search: config.SearchConfig{DefaultLimit: serveLimit},
	}

	var fileCfg config.Config
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		fileCfg = *loaded
	}
	cfg = cfg.MergeWithDefaults(fileCfg)

	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Server.DatabaseURL == "" {
		return fmt.Errorf("database URL is required: set DATABASE_URL or server.database_url in the config file")
	}

	log, err := logger.New(serveJSONLogs, serveDebug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	srv, err := server.New(server.Config{
		Port:         cfg.Server.Port,
		DatabaseURL:  cfg.Server.DatabaseURL,
		DefaultLimit: cfg.Search.DefaultLimit,
		Logger:       log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
