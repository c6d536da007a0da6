package models

// Region is a top-level administrative unit on the results site.
// It exists only for the duration of one traversal pass.
type Region struct {
	Name string
	Href string
}

// Municipality is the lowest-level unit scraped. It belongs to the
// region whose page it was discovered on.
type Municipality struct {
	ID   string
	Name string
	Href string
}

// MunicipalityResult holds the raw counts extracted from one
// municipality page. Values stay strings; the site reports them as
// formatted text and the CSV output keeps them verbatim.
type MunicipalityResult struct {
	RegisteredVoters string
	Envelopes        string
	ValidVotes       string
	PartyVotes       map[string]string
}

// RegionResult is a finalized region: the sorted union of all party
// names seen in the region, and one uniform row per municipality.
// Every row has exactly 5+len(Parties) fields; municipalities that did
// not report a party carry the literal "0".
type RegionResult struct {
	Region  Region
	Parties []string
	Rows    [][]string
	Skipped int
}

// RegionStats are the per-region figures computed for the run summary.
type RegionStats struct {
	Name             string
	Municipalities   int
	Skipped          int
	RegisteredVoters int64
	Envelopes        int64
	ValidVotes       int64
	TopParty         string
	TopPartyVotes    int64
}

// RunReport aggregates the whole run for the end-of-run summary.
type RunReport struct {
	Regions          []RegionStats
	FilesWritten     []string
	Municipalities   int
	Skipped          int
	RegisteredVoters int64
	Envelopes        int64
	ValidVotes       int64
}
