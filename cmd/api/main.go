package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"horaires.srtgn.tn/internal/appconf"
	"horaires.srtgn.tn/internal/timetable"
)

func main() {
	var cfg appconf.Config
	var timetableCfg timetable.Config
	var apiKeysFlag string
	var envFlag string
	var configPath string
	var reloadHours int

	// Parse command-line flags
	flag.StringVar(&configPath, "config", "", "Path to a JSON configuration file (overrides the other flags)")
	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second per API key for rate limiting")
	flag.StringVar(&timetableCfg.SourceURL, "timetable-source", "./horaires-des-bus-de-la-srtgn.csv", "URL or local path of the normalized timetable CSV")
	flag.StringVar(&timetableCfg.DataPath, "data-path", "./timetable.db", "Path to the SQLite database containing timetable data")
	flag.IntVar(&reloadHours, "reload-hours", 24, "Hours between timetable re-downloads for URL sources")
	flag.Parse()

	// Set verbosity flags
	timetableCfg.Verbose = true
	cfg.Verbose = true

	timetableCfg.ReloadInterval = time.Duration(reloadHours) * time.Hour

	// Parse API keys
	cfg.ApiKeys = ParseAPIKeys(apiKeysFlag)

	// Convert environment flag to enum
	cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
	timetableCfg.Env = cfg.Env

	// A config file replaces the flag-derived settings wholesale
	if configPath != "" {
		jsonCfg, err := appconf.LoadFromFile(configPath)
		if err != nil {
			logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
			logger.Error("failed to load config file", "error", err, "path", configPath)
			os.Exit(1)
		}
		cfg = jsonCfg.ToAppConfig()
		timetableCfg = timetable.Config{
			SourceURL:      jsonCfg.TimetableFeed.Source,
			DataPath:       jsonCfg.DataPath,
			ReloadInterval: time.Duration(jsonCfg.TimetableFeed.ReloadHours) * time.Hour,
			Env:            cfg.Env,
			Verbose:        cfg.Verbose,
		}
	}

	// Build application with dependencies
	coreApp, err := BuildApplication(cfg, timetableCfg)
	if err != nil {
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		logger.Error("failed to build application", "error", err)
		os.Exit(1)
	}

	// Create HTTP server
	srv := CreateServer(coreApp, cfg)

	// Run server with graceful shutdown
	if err := Run(srv, coreApp.TimetableManager, coreApp.Logger); err != nil {
		coreApp.Logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
