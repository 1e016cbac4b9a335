package main

import (
	"context"
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-term/utils"
)

const defaultConfigFile = "config.json"

func main() {
	log.SetFlags(0)
	log.SetPrefix("go-gol-term: ")

	configPath := flag.String("config", defaultConfigFile, "path to a JSON configuration file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("using default configuration (%s not found)", *configPath)
		config = utils.DefaultConfig()
	} else if err != nil {
		log.Fatalf("error: %v", err)
	}

	// Ctrl+C ends the run between frames
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer, err := newRenderer(config, os.Stdout)
	if err != nil {
		stop()
		log.Fatalf("error: %v", err)
	}

	stats, err := run(ctx, config, renderer, newRand(config))
	if err != nil {
		stop()
		log.Fatalf("error: %v", err)
	}

	displaySummary(os.Stdout, stats)
}
