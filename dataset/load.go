package dataset

import (
	"context"
	"fmt"

	"github.com/apex/log"

	"press-monitor/models"
)

// Datasets is the decoded input of one dashboard render.
type Datasets struct {
	Releases        []models.PressRelease
	Coverage        []models.CoverageItem
	HasLinkColumn   bool
	Missing         []MissingColumn
	UndatedReleases int
	UndatedCoverage int
}

// Loader fetches and decodes both sheets from a Source.
type Loader struct {
	Source          Source
	ReleaseSheet    string
	CoverageSheet   string
	ReleaseColumns  ReleaseColumns
	CoverageColumns CoverageColumns
}

func NewLoader(source Source, releaseSheet, coverageSheet string) *Loader {
	return &Loader{
		Source:          source,
		ReleaseSheet:    releaseSheet,
		CoverageSheet:   coverageSheet,
		ReleaseColumns:  DefaultReleaseColumns(),
		CoverageColumns: DefaultCoverageColumns(),
	}
}

// Load fails only when a sheet cannot be obtained at all. Missing columns
// and bad dates are reported in the returned Datasets instead.
func (l *Loader) Load(ctx context.Context) (*Datasets, error) {
	releaseTable, err := l.Source.Fetch(ctx, l.ReleaseSheet)
	if err != nil {
		return nil, fmt.Errorf("load releases: %w", err)
	}
	coverageTable, err := l.Source.Fetch(ctx, l.CoverageSheet)
	if err != nil {
		return nil, fmt.Errorf("load coverage: %w", err)
	}

	releases, missingReleases := DecodeReleases(releaseTable, l.ReleaseColumns)
	coverage, hasLink, missingCoverage := DecodeCoverage(coverageTable, l.CoverageColumns)

	data := &Datasets{
		Releases:      releases,
		Coverage:      coverage,
		HasLinkColumn: hasLink,
		Missing:       append(missingReleases, missingCoverage...),
	}
	for _, r := range releases {
		if r.PublishedAt == nil {
			data.UndatedReleases++
		}
	}
	for _, c := range coverage {
		if c.PublishedAt == nil {
			data.UndatedCoverage++
		}
	}

	for _, m := range data.Missing {
		log.WithFields(log.Fields{"dataset": m.Dataset, "field": m.Field}).Warn("missing column")
	}
	return data, nil
}

// Stats reports the cache state of the underlying source, when it keeps one.
func (l *Loader) Stats() map[string]interface{} {
	if c, ok := l.Source.(*Cache); ok {
		return c.Stats()
	}
	return map[string]interface{}{}
}

// Refresh drops cached tables so the next Load goes back to the sources.
func (l *Loader) Refresh() {
	if c, ok := l.Source.(*Cache); ok {
		c.Invalidate()
	}
}
