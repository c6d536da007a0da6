package main

import (
	"context"
	"os"

	"volby-scraper/config"
	"volby-scraper/scraper/volby"
	"volby-scraper/services"
	"volby-scraper/storage"
	"volby-scraper/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Election Results Scraper starting ===")
	logger.Info("Config — base: %s | root: %s | output: %s", cfg.BaseURL, cfg.RootPath, cfg.OutputDir)

	writer, err := storage.NewRegionCSVWriter(cfg.OutputDir)
	if err != nil {
		logger.Error("Failed to create CSV writer: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	volbyScraper := volby.New(cfg, logger)

	regions, err := volbyScraper.FetchRegions(ctx)
	if err != nil {
		logger.Error("Region listing failed: %v", err)
		os.Exit(1)
	}
	logger.Info("Found %d regions", len(regions))

	report := services.NewReportService(logger)

	for _, region := range regions {
		result, err := volbyScraper.ScrapeRegion(ctx, region)
		if err != nil {
			logger.Error("Region %q failed: %v", region.Name, err)
			os.Exit(1)
		}

		filename, err := writer.WriteRegion(result)
		if err != nil {
			logger.Error("CSV write for %q failed: %v", region.Name, err)
			os.Exit(1)
		}

		logger.Info("Saved %s", filename)
		report.Add(result, filename)
	}

	report.Print()
}
