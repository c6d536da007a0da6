package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"volby-scraper/models"
	"volby-scraper/utils"
)

func TestReportServiceAdd(t *testing.T) {
	svc := NewReportService(utils.NewLogger())

	svc.Add(&models.RegionResult{
		Region:  models.Region{Name: "Testovací kraj"},
		Parties: []string{"A", "B"},
		Rows: [][]string{
			{"1", "Obec 1", "100", "80", "75", "50", "25"},
			{"2", "Obec 2", "60", "50", "48", "18", "30"},
		},
		Skipped: 1,
	}, "vysledky_testovaci_kraj.csv")

	r := svc.Report()
	require.Len(t, r.Regions, 1)
	require.Equal(t, []string{"vysledky_testovaci_kraj.csv"}, r.FilesWritten)
	require.Equal(t, 2, r.Municipalities)
	require.Equal(t, 1, r.Skipped)
	require.Equal(t, int64(160), r.RegisteredVoters)
	require.Equal(t, int64(130), r.Envelopes)
	require.Equal(t, int64(123), r.ValidVotes)

	stats := r.Regions[0]
	// A: 50+18=68, B: 25+30=55.
	require.Equal(t, "A", stats.TopParty)
	require.Equal(t, int64(68), stats.TopPartyVotes)
}

func TestReportServiceLenientParsing(t *testing.T) {
	svc := NewReportService(utils.NewLogger())

	// Missing summary cells come through as empty strings and count as zero.
	svc.Add(&models.RegionResult{
		Region:  models.Region{Name: "Kraj"},
		Parties: []string{"A"},
		Rows: [][]string{
			{"1", "Obec", "", "", "", "x"},
		},
	}, "vysledky_kraj.csv")

	r := svc.Report()
	require.Equal(t, int64(0), r.RegisteredVoters)
	require.Equal(t, "", r.Regions[0].TopParty)
}

func TestReportServiceMultipleRegions(t *testing.T) {
	svc := NewReportService(utils.NewLogger())

	svc.Add(&models.RegionResult{
		Region:  models.Region{Name: "Kraj 1"},
		Parties: []string{"A"},
		Rows:    [][]string{{"1", "a", "10", "8", "7", "7"}},
	}, "vysledky_kraj_1.csv")
	svc.Add(&models.RegionResult{
		Region:  models.Region{Name: "Kraj 2"},
		Parties: []string{"B"},
		Rows:    [][]string{{"2", "b", "20", "15", "14", "14"}},
	}, "vysledky_kraj_2.csv")

	r := svc.Report()
	require.Len(t, r.Regions, 2)
	require.Equal(t, 2, r.Municipalities)
	require.Equal(t, int64(30), r.RegisteredVoters)
}
