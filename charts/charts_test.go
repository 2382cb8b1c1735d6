package charts

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"press-monitor/analytics"
	"press-monitor/models"
)

func date(value string) *time.Time {
	d := analytics.ParseDate(value)
	return d
}

func sampleResult() analytics.Result {
	releases := []models.PressRelease{
		{ID: 1, Title: "Rilis A", PublishedAt: date("2024-01-01"), Speakers: "Budi, Santoso; Tono"},
		{ID: 2, Title: strings.Repeat("Rilis dengan judul sangat panjang ", 3), PublishedAt: date("2024-01-08"), Speakers: "Tono"},
	}
	coverage := []models.CoverageItem{
		{ID: 1, Media: "Kompas", PublishedAt: date("2024-01-02"), LinkedRelease: "Rilis A"},
		{ID: 2, Media: "Tempo", PublishedAt: date("2024-01-03"), LinkedRelease: "Rilis A"},
		{ID: 3, Media: "Kompas", PublishedAt: date("2024-01-09")},
	}
	return analytics.Run(analytics.Input{
		Releases: releases,
		Coverage: coverage,
		Options:  analytics.MatchOptions{WindowDays: 3, Mode: analytics.MatchLoose},
	}, time.Now())
}

func TestRenderAllCharts(t *testing.T) {
	result := sampleResult()

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, name, result))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
		})
	}
}

func TestRenderEmptyResult(t *testing.T) {
	empty := analytics.Run(analytics.Input{Options: analytics.MatchOptions{WindowDays: 3}}, time.Now())

	for _, name := range Names() {
		var buf bytes.Buffer
		assert.NoError(t, Render(&buf, name, empty), name)
	}
}

func TestRenderUnknownChart(t *testing.T) {
	err := Render(&bytes.Buffer{}, "sankey", sampleResult())
	assert.True(t, errors.Is(err, ErrUnknownChart))
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "pendek", shorten("pendek"))
	long := shorten(strings.Repeat("x", 60))
	assert.Equal(t, labelLimit, len([]rune(long)))
	assert.True(t, strings.HasSuffix(long, "..."))
}
