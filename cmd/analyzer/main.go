package main

import (
	"flag"
	"fmt"
	"os"

	"dlc-analytics/internal/config"
	"dlc-analytics/internal/pipeline"
	"dlc-analytics/internal/store"
	"dlc-analytics/pkg/logging"

	"github.com/google/uuid"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	dataDir := flag.String("data", "", "directory of CSV exports (overrides config)")
	dbPath := flag.String("db", "", "sqlite database path (overrides config)")
	refYear := flag.Int("year", 0, "reference year for age calculation (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *refYear != 0 {
		cfg.ReferenceYear = *refYear
	}

	log, err := logging.New()
	if err != nil {
		fmt.Printf("❌ Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		fmt.Printf("❌ Failed to open database %s: %v\n", cfg.DBPath, err)
		os.Exit(1)
	}
	defer st.Close()

	runner := pipeline.NewRunner(st, log)
	if cfg.ReferenceYear != 0 {
		runner.ReferenceYear = cfg.ReferenceYear
	}
	if cfg.TopPincodes != 0 {
		runner.TopPincodes = cfg.TopPincodes
	}

	runID := uuid.New().String()
	if err := st.CreateRun(runID, cfg.DataDir); err != nil {
		fmt.Printf("❌ Failed to register run: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("🚀 Starting DLC analysis...")
	doc, err := runner.Run(runID, cfg.DataDir)
	if err != nil {
		fmt.Printf("❌ Analysis failed: %v\n", err)
		os.Exit(1)
	}

	pipeline.PrintReport(doc)
	fmt.Printf("\n✅ Analysis complete. Run ID: %s\n", runID)
}
