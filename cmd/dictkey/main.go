package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/TanaroSch/dictation-hotkey/internal/app"
	"github.com/TanaroSch/dictation-hotkey/internal/config"
)

const version = "v0.1.0"

func main() {
	configPath := flag.String("config", "config.json", "path to the config file (.json, .toml, .yaml)")
	flag.Parse()

	log.Printf("Dictation Hotkey %s starting...", version)

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	log.Printf("Using %s config at %s", cfg.Format(), cfg.GetConfigPath())

	application := app.New(cfg, version)

	// Handle any panics during execution
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", r)
			os.Exit(1)
		}
	}()

	application.Run()
}
