package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"press-monitor/analytics"
)

const (
	sheetReleases   = "Siaran Pers"
	sheetCoverage   = "Pemberitaan"
	sheetAggregates = "Dampak"
	sheetSummary    = "Ringkasan"
	sheetSpeakers   = "Narasumber Mingguan"
)

// WriteWorkbook exports the tables of one pipeline result as an XLSX workbook.
func WriteWorkbook(w io.Writer, result analytics.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetReleases); err != nil {
		return err
	}
	for _, name := range []string{sheetCoverage, sheetAggregates, sheetSummary, sheetSpeakers} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	releases := [][]interface{}{{"ID", "Judul", "Publikasi", "Narasumber"}}
	for _, r := range result.Filtered {
		releases = append(releases, []interface{}{r.ID, r.Title, analytics.FormatDate(r.PublishedAt), r.Speakers})
	}

	coverage := [][]interface{}{{"ID", "Judul Berita", "Tanggal", "Sumber Media", "Siaran Pers", "Link Berita"}}
	for _, c := range result.Matched {
		coverage = append(coverage, []interface{}{c.ID, c.Headline, analytics.FormatDate(c.PublishedAt), c.Media, c.LinkedRelease, c.URL})
	}

	aggregates := [][]interface{}{{"ID", "Siaran Pers", "Tanggal", "Jumlah Berita", "Jumlah Media"}}
	for _, row := range result.Aggregation.PerRelease {
		aggregates = append(aggregates, []interface{}{row.ReleaseID, row.ReleaseTitle, analytics.FormatDate(row.ReleaseDate), row.MatchedCoverageCount, row.UniqueMediaCount})
	}

	s := result.Aggregation.Summary
	summary := [][]interface{}{
		{"Metrik", "Nilai"},
		{"Periode", analytics.FormatDate(&result.Start) + " s/d " + analytics.FormatDate(&result.End)},
		{"Mode pencocokan", result.Mode},
		{"Jendela (hari)", result.WindowDays},
		{"Total siaran pers", s.TotalReleases},
		{"Siaran pers dengan pemberitaan", s.TotalReleasesWithCoverage},
		{"Persentase dengan pemberitaan", fmt.Sprintf("%.1f%%", s.PercentageWithCoverage)},
		{"Rata-rata berita per siaran pers", fmt.Sprintf("%.2f", s.MeanCoveragePerReleaseWithCoverage)},
		{"Rata-rata media per siaran pers", fmt.Sprintf("%.2f", s.MeanUniqueMediaPerReleaseWithCoverage)},
	}
	if s.ReleaseWithMaxCoverage != nil {
		summary = append(summary, []interface{}{"Pemberitaan terbanyak", fmt.Sprintf("%s (%d)", s.ReleaseWithMaxCoverage.ReleaseTitle, s.ReleaseWithMaxCoverage.MatchedCoverageCount)})
	}
	if s.ReleaseWithMaxMediaSpread != nil {
		summary = append(summary, []interface{}{"Sebaran media terluas", fmt.Sprintf("%s (%d)", s.ReleaseWithMaxMediaSpread.ReleaseTitle, s.ReleaseWithMaxMediaSpread.UniqueMediaCount)})
	}

	speakers := [][]interface{}{{"Narasumber", "Minggu Mulai", "Minggu", "Frekuensi"}}
	for _, b := range result.WeeklySpeakers {
		speakers = append(speakers, []interface{}{b.Speaker, b.WeekStart.Format(analytics.DateLayout), b.Label, b.Count})
	}

	for sheet, rows := range map[string][][]interface{}{
		sheetReleases:   releases,
		sheetCoverage:   coverage,
		sheetAggregates: aggregates,
		sheetSummary:    summary,
		sheetSpeakers:   speakers,
	} {
		if err := writeRows(f, sheet, rows); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	if len(rows) > 0 {
		last, err := excelize.ColumnNumberToName(len(rows[0]))
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, "A", last, 20); err != nil {
			return err
		}
	}
	return nil
}
