package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"volby-scraper/models"
	"volby-scraper/utils"
)

// fixedHeader holds the five columns every region file starts with; the
// rest of the header is the region's own party universe.
var fixedHeader = []string{"id", "location", "registered voters", "envelopes", "valid votes"}

// RegionCSVWriter writes one CSV file per region into a single output
// directory. Files are named vysledky_<slugified-region-name>.csv.
type RegionCSVWriter struct {
	outputDir string
}

// NewRegionCSVWriter creates the output directory if needed.
func NewRegionCSVWriter(outputDir string) (*RegionCSVWriter, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}
	return &RegionCSVWriter{outputDir: outputDir}, nil
}

// WriteRegion writes the header and all finished rows for one region
// and returns the filename written.
func (w *RegionCSVWriter) WriteRegion(result *models.RegionResult) (string, error) {
	filename := fmt.Sprintf("vysledky_%s.csv", utils.Slugify(result.Region.Name))
	path := filepath.Join(w.outputDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("csv: create file %q: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	header := make([]string, 0, len(fixedHeader)+len(result.Parties))
	header = append(header, fixedHeader...)
	header = append(header, result.Parties...)
	if err := cw.Write(header); err != nil {
		return "", fmt.Errorf("csv: write header: %w", err)
	}

	for _, row := range result.Rows {
		if err := cw.Write(row); err != nil {
			return "", fmt.Errorf("csv: write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("csv: flush %q: %w", path, err)
	}
	return filename, nil
}
