package main

import (
	"flag"
	"net/http"
	"os"

	"dlc-analytics/internal/api"
	"dlc-analytics/internal/api/handler"
	"dlc-analytics/internal/config"
	"dlc-analytics/internal/pipeline"
	"dlc-analytics/internal/store"
	"dlc-analytics/internal/synthetic"
	"dlc-analytics/pkg/logging"

	"go.uber.org/zap"
)

// @title DLC Analytics API
// @version 1.0
// @description Digital Life Certificate verification analytics and dashboard API
// @BasePath /api
func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	log, err := logging.New()
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("failed to open database", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	defer st.Close()

	if cfg.SeedPensioners > 0 {
		seeded, err := synthetic.SeedIfEmpty(st, cfg.SeedPensioners, 1)
		if err != nil {
			log.Fatal("failed to seed sample data", zap.Error(err))
		}
		if seeded {
			log.Info("seeded sample pensioner data", zap.Int("rows", cfg.SeedPensioners))
		}
	}

	runner := pipeline.NewRunner(st, log)
	if cfg.ReferenceYear != 0 {
		runner.ReferenceYear = cfg.ReferenceYear
	}
	if cfg.TopPincodes != 0 {
		runner.TopPincodes = cfg.TopPincodes
	}

	r := api.NewRouter(handler.New(st, runner, log, cfg.DataDir))

	log.Info("starting API server", zap.String("addr", cfg.ListenAddr))
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
