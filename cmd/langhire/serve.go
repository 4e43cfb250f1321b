package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/langhire/internal/config"
	"github.com/jonathan/langhire/internal/logger"
	"github.com/jonathan/langhire/internal/scoring"
	"github.com/jonathan/langhire/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the analysis HTTP API",
	Long:  "Serve exposes POST /v1/analyze and GET /health. Results are returned to the caller and never stored.",
	RunE:  runServe,
}

var (
	servePort       int
	serveConfigFile string
	serveAPIKey     string
	serveDebug      bool
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVarP(&serveConfigFile, "config", "c", "", "Path to config JSON file")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Static API key required in X-API-Key (empty disables auth)")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()

	if serveConfigFile != "" {
		fileCfg, err := config.Load(serveConfigFile)
		if err != nil {
			return err
		}
		cfg = *fileCfg
	}

	cfg, err := cfg.FromEnv()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if serveAPIKey != "" {
		cfg.APIKey = serveAPIKey
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.LogJSON, serveDebug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	srv := server.New(server.Config{
		Port:   cfg.Port,
		APIKey: cfg.APIKey,
		Thresholds: scoring.Thresholds{
			Hire:       cfg.HireThreshold,
			StrongHire: cfg.StrongHireThreshold,
		},
	}, log)

	return srv.Start()
}
