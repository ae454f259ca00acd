package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jonakeys/calcurse/internal/cli"
	"github.com/jonakeys/calcurse/internal/config"
	"github.com/jonakeys/calcurse/internal/event"
	"github.com/jonakeys/calcurse/internal/logs"
	"github.com/jonakeys/calcurse/internal/notes"
)

func main() {
	// Parse CLI flags
	dataDirFlag := flag.String("directory", "", "Data directory (default ~/.calcurse)")
	flag.StringVar(dataDirFlag, "D", "", "Data directory (shorthand)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(config.CLIFlags{DataDir: *dataDirFlag})
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		log.Printf("Warning: could not create config file: %v", err)
	}

	// Ensure data directories exist
	if err := cfg.EnsureDirs(); err != nil {
		log.Fatalf("Failed to create directories: %v", err)
	}

	// Reinitialize logger under the data directory
	if err := logs.Initialize(cfg.DataDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}

	// Load the calendar
	store := event.NewStore()
	if err := event.LoadFile(cfg.AptsPath(), store, nil); err != nil {
		log.Fatalf("Failed to load calendar: %v", err)
	}

	app := &cli.App{
		Store:  store,
		Notes:  notes.NewStore(cfg.NotesPath()),
		Config: cfg,
	}
	code := cli.Run(flag.Args(), app)
	logs.Close()
	os.Exit(code)
}
