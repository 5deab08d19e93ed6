package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"techbook-scraper/config"
	"techbook-scraper/emitter"
	"techbook-scraper/fetcher"
	"techbook-scraper/scraper"
)

func main() {
	// Parse command line arguments
	postURL := flag.String("post", "", "POST the aggregated records to this URL instead of writing a local file")
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	outPath := flag.String("out", "", "Output file path (overrides config; a .csv extension selects CSV output)")
	flag.Parse()

	cfg := loadConfig(*configPath)

	f := fetcher.NewCollyFetcher(
		cfg.Scrape.UserAgent,
		time.Duration(cfg.Scrape.TimeoutSeconds)*time.Second,
		time.Duration(cfg.Scrape.DelaySeconds)*time.Second,
	)

	s := scraper.New(f, scraper.NewSources(cfg))
	books := s.Run()
	log.Printf("Collected %d books\n", len(books))

	sink, path := outputSink(cfg, *outPath)

	if *postURL != "" {
		poster := emitter.NewHTTPPoster(*postURL, time.Duration(cfg.Scrape.TimeoutSeconds)*time.Second)
		if err := poster.Emit(books); err != nil {
			log.Printf("Error: %v\n", err)
			// The collected records survive a failed POST; keep them
			// available on disk before reporting the failure
			if werr := sink.Emit(books); werr != nil {
				log.Printf("Warning: fallback write failed: %v\n", werr)
			} else {
				log.Printf("Wrote collected records to %s\n", path)
			}
			os.Exit(1)
		}
		log.Printf("Posted %d books to %s\n", len(books), *postURL)
		return
	}

	if err := sink.Emit(books); err != nil {
		log.Fatalf("Failed to write output: %v\n", err)
	}
	log.Printf("Wrote %d books to %s\n", len(books), path)
}

// outputSink picks the local destination from the config and the --out
// override; a .csv extension on the override selects CSV output
func outputSink(cfg *config.Config, outPath string) (emitter.Emitter, string) {
	path := cfg.Output.Path
	format := cfg.Output.Format
	if outPath != "" {
		path = outPath
		if strings.EqualFold(filepath.Ext(path), ".csv") {
			format = "csv"
		} else {
			format = "json"
		}
	}

	if format == "csv" {
		return emitter.NewCSVWriter(path), path
	}
	return emitter.NewJSONWriter(path), path
}

// loadConfig loads configuration from file or returns defaults
func loadConfig(configPath string) *config.Config {
	if _, err := os.Stat(configPath); err == nil {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Printf("Warning: Failed to load config file: %v. Using defaults.\n", err)
			return config.DefaultConfig()
		}
		return cfg
	}
	log.Println("Config file not found. Using default configuration.")
	return config.DefaultConfig()
}
