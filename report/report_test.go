package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"press-monitor/analytics"
	"press-monitor/models"
)

func sampleResult(t *testing.T) analytics.Result {
	t.Helper()
	releases := []models.PressRelease{
		{ID: 1, Title: "Rilis *A*", PublishedAt: analytics.ParseDate("01-01-2024"), Speakers: "Budi, Santoso"},
		{ID: 2, Title: "Rilis B", PublishedAt: analytics.ParseDate("05-01-2024")},
	}
	coverage := []models.CoverageItem{
		{ID: 1, Headline: "Berita 1", Media: "Kompas", PublishedAt: analytics.ParseDate("02-01-2024"), LinkedRelease: "Rilis *A*", URL: "https://kompas.example/1"},
		{ID: 2, Headline: "Berita 2", Media: "Tempo", PublishedAt: analytics.ParseDate("03-01-2024"), LinkedRelease: "Rilis *A*"},
	}
	return analytics.Run(analytics.Input{
		Releases: releases,
		Coverage: coverage,
		Options:  analytics.MatchOptions{WindowDays: 3, Mode: analytics.MatchPrecise},
	}, time.Now())
}

func TestWriteWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, sampleResult(t)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetReleases, sheetCoverage, sheetAggregates, sheetSummary, sheetSpeakers}, f.GetSheetList())

	rows, err := f.GetRows(sheetAggregates)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"1", "Rilis *A*", "2024-01-01", "2", "2"}, rows[1])
	assert.Equal(t, []string{"2", "Rilis B", "2024-01-05", "0", "0"}, rows[2])

	coverage, err := f.GetRows(sheetCoverage)
	require.NoError(t, err)
	assert.Len(t, coverage, 3)

	summary, err := f.GetRows(sheetSummary)
	require.NoError(t, err)
	assert.Equal(t, []string{"Persentase dengan pemberitaan", "50.0%"}, summary[6])
}

func TestNarrative(t *testing.T) {
	text := Narrative(sampleResult(t))

	assert.Contains(t, text, "**1 siaran pers atau 50.0%**")
	assert.Contains(t, text, "dari total **2 siaran pers**")
	assert.Contains(t, text, `*Rilis \*A\**`)
	assert.Contains(t, text, "| Kompas | 1 |")
}

func TestNarrativeEmpty(t *testing.T) {
	empty := analytics.Run(analytics.Input{Options: analytics.MatchOptions{WindowDays: 3}}, time.Now())
	assert.Equal(t, "Tidak ada siaran pers yang sesuai dengan filter.", Narrative(empty))
}

func TestNarrativeHTML(t *testing.T) {
	html, err := NarrativeHTML(sampleResult(t))
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "<h4>Analisis Dasar Pemberitaan</h4>")
	assert.Contains(t, out, "<strong>1 siaran pers atau 50.0%</strong>")
	assert.Contains(t, out, "<table>")
	assert.True(t, strings.Contains(out, "<em>Rilis *A*</em>"))
}
