package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"StockSignal/internal/di"
	"StockSignal/pkg/config"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	// Load .env if present (API keys)
	_ = godotenv.Load()

	// Load config
	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s catalog=%s", cfg.Environment, cfg.Catalog.Path)

	// Wire DI: Initialize all dependencies
	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	if !cfg.CredentialsAvailable() {
		log.Printf("provider credentials missing, serving mock insights")
	}

	// Run application (blocks until signal)
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
