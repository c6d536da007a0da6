package services

import (
	"fmt"
	"strconv"
	"strings"

	"volby-scraper/models"
	"volby-scraper/utils"
)

// ReportService accumulates per-region statistics during the run and
// prints a summary at the end.
type ReportService struct {
	logger *utils.Logger
	report *models.RunReport
}

// NewReportService creates a ReportService with the given logger.
func NewReportService(logger *utils.Logger) *ReportService {
	return &ReportService{
		logger: logger,
		report: &models.RunReport{},
	}
}

// Add folds one written region into the running report.
func (s *ReportService) Add(result *models.RegionResult, filename string) {
	stats := models.RegionStats{
		Name:           result.Region.Name,
		Municipalities: len(result.Rows),
		Skipped:        result.Skipped,
	}

	partyTotals := make([]int64, len(result.Parties))
	for _, row := range result.Rows {
		stats.RegisteredVoters += parseCount(row[2])
		stats.Envelopes += parseCount(row[3])
		stats.ValidVotes += parseCount(row[4])
		for i := range result.Parties {
			partyTotals[i] += parseCount(row[5+i])
		}
	}

	for i, party := range result.Parties {
		if partyTotals[i] > stats.TopPartyVotes {
			stats.TopParty = party
			stats.TopPartyVotes = partyTotals[i]
		}
	}

	s.report.Regions = append(s.report.Regions, stats)
	s.report.FilesWritten = append(s.report.FilesWritten, filename)
	s.report.Municipalities += stats.Municipalities
	s.report.Skipped += stats.Skipped
	s.report.RegisteredVoters += stats.RegisteredVoters
	s.report.Envelopes += stats.Envelopes
	s.report.ValidVotes += stats.ValidVotes
}

// Report returns the accumulated run report.
func (s *ReportService) Report() *models.RunReport {
	return s.report
}

// Print writes the run summary to stdout.
func (s *ReportService) Print() {
	r := s.report
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  ELECTION SCRAPE SUMMARY\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Regions written      : \033[1m%d\033[0m\n", len(r.Regions))
	fmt.Printf("  Municipalities       : \033[1m%d\033[0m\n", r.Municipalities)
	fmt.Printf("  Skipped (fetch fail) : \033[1m%d\033[0m\n", r.Skipped)
	fmt.Printf("  Registered voters    : \033[1m%d\033[0m\n", r.RegisteredVoters)
	fmt.Printf("  Envelopes            : \033[1m%d\033[0m\n", r.Envelopes)
	fmt.Printf("  Valid votes          : \033[1m%d\033[0m\n", r.ValidVotes)
	if r.RegisteredVoters > 0 {
		turnout := 100 * float64(r.Envelopes) / float64(r.RegisteredVoters)
		fmt.Printf("  Turnout              : \033[1m%.2f%%\033[0m\n", turnout)
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Regions\033[0m\n")
	fmt.Printf("  %s\n", thin)
	for _, reg := range r.Regions {
		line := fmt.Sprintf("  %-28s %4d obcí", truncate(reg.Name, 26), reg.Municipalities)
		if reg.Skipped > 0 {
			line += fmt.Sprintf(" (%d skipped)", reg.Skipped)
		}
		if reg.TopParty != "" {
			line += fmt.Sprintf(" — %s (%d)", truncate(reg.TopParty, 30), reg.TopPartyVotes)
		}
		fmt.Println(line)
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

// parseCount reads a numeric cell leniently; anything unparsable
// (including the empty string for a missing cell) counts as zero.
func parseCount(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
