package analytics

import (
	"testing"
	"time"

	"press-monitor/models"
)

func day(t *testing.T, value string) *time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return &d
}

func release(id int, title string, date *time.Time) models.PressRelease {
	return models.PressRelease{ID: id, Title: title, PublishedAt: date}
}

func item(id int, media string, date *time.Time, link string) models.CoverageItem {
	return models.CoverageItem{ID: id, Media: media, PublishedAt: date, LinkedRelease: link}
}

func ids(items []models.CoverageItem) []int {
	out := []int{}
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
