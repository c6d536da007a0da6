package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"volby-scraper/models"
)

func testRegionResult() *models.RegionResult {
	return &models.RegionResult{
		Region:  models.Region{Name: "Ústecký kraj"},
		Parties: []string{"Party A", "Party B"},
		Rows: [][]string{
			{"500011", "Obec 1", "100", "80", "75", "10", "5"},
			{"500012", "Obec 2", "50", "40", "38", "7", "0"},
		},
	}
}

func TestWriteRegion(t *testing.T) {
	dir := t.TempDir()
	writer, err := NewRegionCSVWriter(dir)
	require.NoError(t, err)

	filename, err := writer.WriteRegion(testRegionResult())
	require.NoError(t, err)
	require.Equal(t, "vysledky_ustecky_kraj.csv", filename)

	f, err := os.Open(filepath.Join(dir, filename))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	require.Equal(t, []string{
		"id", "location", "registered voters", "envelopes", "valid votes",
		"Party A", "Party B",
	}, records[0])

	// Every row carries exactly 5 fixed columns plus one per party.
	for _, record := range records {
		require.Len(t, record, 7)
	}
	require.Equal(t, "0", records[2][6])
}

func TestWriteRegionCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "nested")
	writer, err := NewRegionCSVWriter(dir)
	require.NoError(t, err)

	filename, err := writer.WriteRegion(testRegionResult())
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, filename))
	require.NoError(t, err)
}

func TestWriteRegionEmptyRegion(t *testing.T) {
	writer, err := NewRegionCSVWriter(t.TempDir())
	require.NoError(t, err)

	filename, err := writer.WriteRegion(&models.RegionResult{
		Region: models.Region{Name: "Prázdný kraj"},
	})
	require.NoError(t, err)
	require.Equal(t, "vysledky_prazdny_kraj.csv", filename)
}
