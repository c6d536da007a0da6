package volby

import (
	"sort"

	"volby-scraper/models"
)

// pendingRow holds one municipality's fixed columns plus its raw vote
// mapping, kept until the region's full party universe is known.
type pendingRow struct {
	prefix []string
	votes  map[string]string
}

// regionAccumulator collects the party-name union and the raw rows for
// one region. It is created fresh per region; nothing survives the
// region's processing loop.
type regionAccumulator struct {
	parties map[string]struct{}
	rows    []pendingRow
	skipped int
}

func newRegionAccumulator() *regionAccumulator {
	return &regionAccumulator{parties: make(map[string]struct{})}
}

// add records one scraped municipality.
func (a *regionAccumulator) add(m models.Municipality, result *models.MunicipalityResult) {
	for party := range result.PartyVotes {
		a.parties[party] = struct{}{}
	}

	a.rows = append(a.rows, pendingRow{
		prefix: []string{
			m.ID,
			m.Name,
			result.RegisteredVoters,
			result.Envelopes,
			result.ValidVotes,
		},
		votes: result.PartyVotes,
	})
}

// skip records a municipality that failed to load. It contributes
// neither a row nor any party names.
func (a *regionAccumulator) skip() {
	a.skipped++
}

// finalize computes the sorted party universe and expands every row
// against it. A municipality that did not report a party gets the
// literal "0", so all rows share one column set.
func (a *regionAccumulator) finalize(region models.Region) *models.RegionResult {
	parties := make([]string, 0, len(a.parties))
	for party := range a.parties {
		parties = append(parties, party)
	}
	sort.Strings(parties)

	rows := make([][]string, 0, len(a.rows))
	for _, pending := range a.rows {
		row := make([]string, 0, len(pending.prefix)+len(parties))
		row = append(row, pending.prefix...)
		for _, party := range parties {
			votes, ok := pending.votes[party]
			if !ok {
				votes = "0"
			}
			row = append(row, votes)
		}
		rows = append(rows, row)
	}

	return &models.RegionResult{
		Region:  region,
		Parties: parties,
		Rows:    rows,
		Skipped: a.skipped,
	}
}
