package volby

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"volby-scraper/config"
	"volby-scraper/models"
	"volby-scraper/utils"
)

// Scraper walks the country → region → municipality hierarchy of the
// volby.cz results site. All fetches are sequential; a municipality
// that fails to load is logged and skipped, everything else is fatal.
type Scraper struct {
	cfg    *config.Config
	logger *utils.Logger
	client *resty.Client
}

// New creates a ready-to-use results Scraper.
func New(cfg *config.Config, logger *utils.Logger) *Scraper {
	client := resty.New().
		SetTimeout(time.Duration(cfg.RequestTimeoutMs) * time.Millisecond).
		SetHeader("User-Agent", cfg.UserAgent)

	return &Scraper{
		cfg:    cfg,
		logger: logger,
		client: client,
	}
}

// link builds a full URL from a relative path discovered on a page.
// The site links everything relative to a single base path.
func (s *Scraper) link(path string) string {
	return s.cfg.BaseURL + path
}

// fetchDocument issues one blocking GET and parses the response body.
func (s *Scraper) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	res, err := s.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("volby: get %s: %w", url, err)
	}
	if res.StatusCode() >= 400 {
		return nil, fmt.Errorf("volby: get %s: status %s", url, res.Status())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("volby: parse %s: %w", url, err)
	}
	return doc, nil
}

// FetchRegions loads the country-level listing page and extracts all
// regions in listing order. A failure here is fatal to the run.
func (s *Scraper) FetchRegions(ctx context.Context) ([]models.Region, error) {
	rootURL := s.link(s.cfg.RootPath)
	s.logger.Info("[volby] Fetching region listing: %s", rootURL)

	doc, err := s.fetchDocument(ctx, rootURL)
	if err != nil {
		return nil, err
	}

	regions := parseRegions(doc)
	if len(regions) == 0 {
		return nil, fmt.Errorf("volby: no regions found on %s", rootURL)
	}
	return regions, nil
}

// ScrapeRegion fetches one region's municipality listing, scrapes every
// municipality in listing order and returns the finalized region. A
// single municipality failure skips that municipality only; the region
// page itself failing aborts the region (and the run).
func (s *Scraper) ScrapeRegion(ctx context.Context, region models.Region) (*models.RegionResult, error) {
	doc, err := s.fetchDocument(ctx, s.link(region.Href))
	if err != nil {
		return nil, err
	}

	municipalities := parseMunicipalities(doc)
	s.logger.Info("[volby] Region %q — %d municipalities", region.Name, len(municipalities))

	acc := newRegionAccumulator()
	for _, m := range municipalities {
		url := s.link(m.Href)

		mdoc, err := s.fetchDocument(ctx, url)
		if err != nil {
			s.logger.Error("[volby] Error loading %s: %v", url, err)
			acc.skip()
			continue
		}

		acc.add(m, parseResults(mdoc))
	}

	return acc.finalize(region), nil
}
