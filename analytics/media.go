package analytics

import (
	"sort"
	"strings"
	"time"

	"press-monitor/models"
)

const OthersLabel = "Others"

func countByName(names []string) []models.NamedCount {
	index := make(map[string]int)
	counts := []models.NamedCount{}
	for _, name := range names {
		if i, ok := index[name]; ok {
			counts[i].Count++
			continue
		}
		index[name] = len(counts)
		counts = append(counts, models.NamedCount{Name: name, Count: 1})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

func head[T any](items []T, n int) []T {
	if n < 0 || n >= len(items) {
		return items
	}
	return items[:n]
}

func mediaNames(items []models.CoverageItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		if name := strings.TrimSpace(item.Media); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// TopMedia counts coverage per media source, busiest first, keeping at most n
// entries (all when n < 0).
func TopMedia(items []models.CoverageItem, n int) []models.NamedCount {
	return head(countByName(mediaNames(items)), n)
}

// MediaDistribution is TopMedia with the remainder folded into an Others bucket.
func MediaDistribution(items []models.CoverageItem, n int) []models.NamedCount {
	all := countByName(mediaNames(items))
	if n < 0 || len(all) <= n {
		return all
	}

	share := append([]models.NamedCount{}, all[:n]...)
	others := 0
	for _, count := range all[n:] {
		others += count.Count
	}
	return append(share, models.NamedCount{Name: OthersLabel, Count: others})
}

// DailyTimeline counts coverage per calendar day, oldest first. Undated items
// are left out.
func DailyTimeline(items []models.CoverageItem) []models.DailyCount {
	counts := make(map[time.Time]int)
	for _, item := range items {
		if item.PublishedAt == nil {
			continue
		}
		counts[NormalizeDate(*item.PublishedAt)]++
	}

	timeline := make([]models.DailyCount, 0, len(counts))
	for day, count := range counts {
		timeline = append(timeline, models.DailyCount{Date: day, Count: count})
	}
	sort.Slice(timeline, func(i, j int) bool {
		return timeline[i].Date.Before(timeline[j].Date)
	})
	return timeline
}

// ReleaseFlows counts (release title, media) pairs over the matched coverage,
// limited to the topReleases busiest releases and topMedia busiest media.
func ReleaseFlows(releases []models.PressRelease, matches Matches, topReleases, topMedia int) []models.Flow {
	var titles, media []string
	for _, release := range releases {
		for _, item := range matches[release.ID] {
			name := strings.TrimSpace(item.Media)
			if name == "" {
				continue
			}
			titles = append(titles, release.Title)
			media = append(media, name)
		}
	}

	keepTitle := make(map[string]struct{})
	for _, count := range head(countByName(titles), topReleases) {
		keepTitle[count.Name] = struct{}{}
	}
	keepMedia := make(map[string]struct{})
	for _, count := range head(countByName(media), topMedia) {
		keepMedia[count.Name] = struct{}{}
	}

	type pair struct{ release, media string }
	index := make(map[pair]int)
	flows := []models.Flow{}
	for i := range titles {
		if _, ok := keepTitle[titles[i]]; !ok {
			continue
		}
		if _, ok := keepMedia[media[i]]; !ok {
			continue
		}
		key := pair{titles[i], media[i]}
		if at, ok := index[key]; ok {
			flows[at].Count++
			continue
		}
		index[key] = len(flows)
		flows = append(flows, models.Flow{Release: key.release, Media: key.media, Count: 1})
	}
	sort.SliceStable(flows, func(i, j int) bool {
		return flows[i].Count > flows[j].Count
	})
	return flows
}

// ComputeOverview produces the headline counters of the dashboard.
func ComputeOverview(releases []models.PressRelease, matched []models.CoverageItem, mentions []models.SpeakerMention) models.Overview {
	speakers := make(map[string]struct{})
	for _, mention := range mentions {
		speakers[mention.Name] = struct{}{}
	}
	return models.Overview{
		Releases: len(TitleOptions(releases)),
		Coverage: len(matched),
		Media:    countUniqueMedia(matched),
		Speakers: len(speakers),
	}
}
