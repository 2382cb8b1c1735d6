package analytics

import (
	"time"

	"press-monitor/models"
)

// FilterReleases keeps releases dated within [start, end] (inclusive, by
// calendar day) and, when titles is non-empty, whose title is in titles.
// Releases without a date never pass the date test. Input order is kept.
func FilterReleases(releases []models.PressRelease, start, end time.Time, titles []string) []models.PressRelease {
	start, end = NormalizeDate(start), NormalizeDate(end)

	var allow map[string]struct{}
	if len(titles) > 0 {
		allow = make(map[string]struct{}, len(titles))
		for _, title := range titles {
			allow[title] = struct{}{}
		}
	}

	filtered := []models.PressRelease{}
	for _, release := range releases {
		if release.PublishedAt == nil {
			continue
		}
		day := NormalizeDate(*release.PublishedAt)
		if day.Before(start) || day.After(end) {
			continue
		}
		if allow != nil {
			if _, ok := allow[release.Title]; !ok {
				continue
			}
		}
		filtered = append(filtered, release)
	}
	return filtered
}

// DateBounds returns the earliest and latest release dates. ok is false when
// no release carries a date.
func DateBounds(releases []models.PressRelease) (min, max time.Time, ok bool) {
	for _, release := range releases {
		if release.PublishedAt == nil {
			continue
		}
		day := NormalizeDate(*release.PublishedAt)
		if !ok || day.Before(min) {
			min = day
		}
		if !ok || day.After(max) {
			max = day
		}
		ok = true
	}
	return min, max, ok
}

// TitleOptions lists distinct release titles in first-seen order.
func TitleOptions(releases []models.PressRelease) []string {
	seen := make(map[string]struct{}, len(releases))
	titles := []string{}
	for _, release := range releases {
		if _, ok := seen[release.Title]; ok {
			continue
		}
		seen[release.Title] = struct{}{}
		titles = append(titles, release.Title)
	}
	return titles
}
