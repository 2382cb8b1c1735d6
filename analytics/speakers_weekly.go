package analytics

import (
	"sort"
	"time"

	"press-monitor/models"
)

const weekLabelLayout = "02 Jan 2006"

// WeekStart returns the Monday that opens the calendar week containing d.
func WeekStart(d time.Time) time.Time {
	d = NormalizeDate(d)
	offset := (int(d.Weekday()) + 6) % 7
	return addDays(d, -offset)
}

func WeekLabel(start time.Time) string {
	return start.Format(weekLabelLayout) + " - " + addDays(start, 6).Format(weekLabelLayout)
}

// WeeklySpeakerCounts counts mentions per (speaker, Monday week). Mentions
// without a date are skipped. Output is ordered by week start, then speaker.
func WeeklySpeakerCounts(mentions []models.SpeakerMention) []models.WeeklySpeakerCount {
	type bucketKey struct {
		speaker string
		week    time.Time
	}

	counts := make(map[bucketKey]int)
	for _, mention := range mentions {
		if mention.PublishedAt == nil {
			continue
		}
		counts[bucketKey{speaker: mention.Name, week: WeekStart(*mention.PublishedAt)}]++
	}

	buckets := make([]models.WeeklySpeakerCount, 0, len(counts))
	for key, count := range counts {
		buckets = append(buckets, models.WeeklySpeakerCount{
			Speaker:   key.speaker,
			WeekStart: key.week,
			WeekEnd:   addDays(key.week, 6),
			Label:     WeekLabel(key.week),
			Count:     count,
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if !buckets[i].WeekStart.Equal(buckets[j].WeekStart) {
			return buckets[i].WeekStart.Before(buckets[j].WeekStart)
		}
		return buckets[i].Speaker < buckets[j].Speaker
	})
	return buckets
}

// SpeakerTotals counts all mentions per speaker, most mentioned first. Equal
// counts keep first-appearance order.
func SpeakerTotals(mentions []models.SpeakerMention) []models.NamedCount {
	names := make([]string, 0, len(mentions))
	for _, mention := range mentions {
		names = append(names, mention.Name)
	}
	return countByName(names)
}

// TopSpeakerSeries restricts weekly buckets to the n most mentioned speakers.
func TopSpeakerSeries(weekly []models.WeeklySpeakerCount, totals []models.NamedCount, n int) []models.WeeklySpeakerCount {
	keep := make(map[string]struct{}, n)
	for _, total := range head(totals, n) {
		keep[total.Name] = struct{}{}
	}

	series := []models.WeeklySpeakerCount{}
	for _, bucket := range weekly {
		if _, ok := keep[bucket.Speaker]; ok {
			series = append(series, bucket)
		}
	}
	return series
}
