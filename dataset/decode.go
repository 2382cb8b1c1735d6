package dataset

import (
	"strings"

	"press-monitor/analytics"
	"press-monitor/models"
)

// ReleaseColumns lists accepted header spellings per press release field.
type ReleaseColumns struct {
	Title    []string
	Date     []string
	Speakers []string
}

// CoverageColumns lists accepted header spellings per coverage field.
type CoverageColumns struct {
	Date     []string
	Media    []string
	Link     []string
	Headline []string
	URL      []string
}

func DefaultReleaseColumns() ReleaseColumns {
	return ReleaseColumns{
		Title:    []string{"JUDUL", "Judul Siaran Pers"},
		Date:     []string{"PUBLIKASI", "Tanggal Publikasi", "Tanggal"},
		Speakers: []string{"NARASUMBER"},
	}
}

func DefaultCoverageColumns() CoverageColumns {
	return CoverageColumns{
		Date:     []string{"Tanggal", "Tanggal Berita"},
		Media:    []string{"Sumber Media", "Media"},
		Link:     []string{"Siaran Pers", "Judul Siaran Pers"},
		Headline: []string{"Judul Berita", "Judul"},
		URL:      []string{"Link Berita", "Link", "URL"},
	}
}

// MissingColumn reports an expected column that a table does not have. The
// metrics depending on it fall back to empty values.
type MissingColumn struct {
	Dataset string `json:"dataset"`
	Field   string `json:"field"`
	Tried   string `json:"tried"`
}

func (m MissingColumn) String() string {
	return m.Dataset + ": column " + m.Field + " not found (tried " + m.Tried + ")"
}

type columnSet struct {
	table   *Table
	missing []MissingColumn
}

func (s *columnSet) find(field string, aliases []string) int {
	if idx, ok := s.table.Column(aliases...); ok {
		return idx
	}
	s.missing = append(s.missing, MissingColumn{
		Dataset: s.table.Name,
		Field:   field,
		Tried:   strings.Join(aliases, ", "),
	})
	return -1
}

// DecodeReleases converts sheet rows into press releases. Release IDs are
// 1-based data row numbers. Unparsable dates become nil.
func DecodeReleases(table *Table, cols ReleaseColumns) ([]models.PressRelease, []MissingColumn) {
	set := &columnSet{table: table}
	title := set.find("title", cols.Title)
	date := set.find("date", cols.Date)
	speakers := set.find("speakers", cols.Speakers)

	releases := make([]models.PressRelease, 0, table.Len())
	for row := 0; row < table.Len(); row++ {
		releases = append(releases, models.PressRelease{
			ID:          row + 1,
			Title:       strings.TrimSpace(table.Cell(row, title)),
			PublishedAt: analytics.ParseDate(table.Cell(row, date)),
			Speakers:    table.Cell(row, speakers),
		})
	}
	return releases, set.missing
}

// DecodeCoverage converts sheet rows into coverage items. hasLink reports
// whether the table carries the release linkage column.
func DecodeCoverage(table *Table, cols CoverageColumns) (items []models.CoverageItem, hasLink bool, missing []MissingColumn) {
	set := &columnSet{table: table}
	date := set.find("date", cols.Date)
	media := set.find("media", cols.Media)
	headline := set.find("headline", cols.Headline)
	link, hasLink := table.Column(cols.Link...)
	url := set.find("url", cols.URL)

	items = make([]models.CoverageItem, 0, table.Len())
	for row := 0; row < table.Len(); row++ {
		item := models.CoverageItem{
			ID:          row + 1,
			Headline:    strings.TrimSpace(table.Cell(row, headline)),
			PublishedAt: analytics.ParseDate(table.Cell(row, date)),
			Media:       strings.TrimSpace(table.Cell(row, media)),
			URL:         strings.TrimSpace(table.Cell(row, url)),
		}
		if hasLink {
			item.LinkedRelease = strings.TrimSpace(table.Cell(row, link))
		}
		items = append(items, item)
	}
	return items, hasLink, set.missing
}
