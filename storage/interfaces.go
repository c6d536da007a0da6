package storage

import "volby-scraper/models"

// ReportWriter is the interface any region-output backend must satisfy.
// WriteRegion persists one finalized region and returns the name of
// whatever it wrote, for logging.
type ReportWriter interface {
	WriteRegion(result *models.RegionResult) (string, error)
}
