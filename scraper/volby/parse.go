package volby

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"volby-scraper/models"
)

// The results site carries no stable ids, only table-header markers.
// Region rows mark the link cell with headers like "t1sa3" and the name
// cell with "t1sa1 t1sb2"; municipality result tables mark vote cells
// with "t1sa2 t1sb3" or "t2sa2 t2sb3" (split-ballot pages carry two
// result tables, both are read).
var (
	regionLinkHeaders = regexp.MustCompile(`t.+sa3`)
	regionNameHeaders = regexp.MustCompile(`t.+sa1\s+t.+sb2`)
	partyVoteHeaders  = regexp.MustCompile(`t[12]sa2\s+t[12]sb3`)
)

// cellText extracts a cell's text with whitespace normalized: trimmed,
// inner runs collapsed to single spaces, non-breaking spaces included.
func cellText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// numberText extracts a numeric cell's text with all whitespace
// removed. The site renders counts with non-breaking-space thousands
// separators ("1 042"), which have no place in a CSV number.
func numberText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), "")
}

// headersMatch selects cells whose headers attribute matches pattern.
func headersMatch(sel *goquery.Selection, pattern *regexp.Regexp) *goquery.Selection {
	return sel.FilterFunction(func(_ int, td *goquery.Selection) bool {
		return pattern.MatchString(td.AttrOr("headers", ""))
	})
}

// parseRegions extracts (name, href) pairs for all regions from the
// country-level listing page. Name and link are read from sibling cells
// of the same table row, so the two can never misalign.
func parseRegions(doc *goquery.Document) []models.Region {
	var regions []models.Region

	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")

		anchor := headersMatch(cells, regionLinkHeaders).Find("a").First()
		href := anchor.AttrOr("href", "")
		name := cellText(headersMatch(cells, regionNameHeaders).First())
		if href == "" || name == "" {
			return
		}

		regions = append(regions, models.Region{Name: name, Href: href})
	})

	return regions
}

// parseMunicipalities extracts (id, name, href) triples for all
// municipalities on a region page. The numeric code cell holds both the
// id text and the detail link; the display name sits in the same row.
func parseMunicipalities(doc *goquery.Document) []models.Municipality {
	var municipalities []models.Municipality

	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		anchor := row.Find("td.cislo a").First()
		href := anchor.AttrOr("href", "")
		id := cellText(anchor)
		name := cellText(row.Find("td.overflow_name").First())
		if href == "" || id == "" || name == "" {
			return
		}

		municipalities = append(municipalities, models.Municipality{
			ID:   id,
			Name: name,
			Href: href,
		})
	})

	return municipalities
}

// parseResults extracts the summary counts and per-party votes from a
// municipality page. Summary cells may be absent on malformed pages and
// come back as empty strings; party rows missing either the name or the
// vote cell contribute nothing.
func parseResults(doc *goquery.Document) *models.MunicipalityResult {
	result := &models.MunicipalityResult{
		RegisteredVoters: numberText(doc.Find(`td[headers="sa2"]`).First()),
		Envelopes:        numberText(doc.Find(`td[headers="sa3"]`).First()),
		ValidVotes:       numberText(doc.Find(`td[headers="sa6"]`).First()),
		PartyVotes:       make(map[string]string),
	}

	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		party := cellText(row.Find("td.overflow_name").First())
		votes := numberText(headersMatch(row.Find("td"), partyVoteHeaders).First())
		if party == "" || votes == "" {
			return
		}
		result.PartyVotes[party] = votes
	})

	return result
}
