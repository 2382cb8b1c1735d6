package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"press-monitor/models"
)

type MatchMode int

const (
	// MatchPrecise requires the coverage item to name the release title exactly.
	MatchPrecise MatchMode = iota
	// MatchLoose attributes coverage by date window alone.
	MatchLoose
)

func (m MatchMode) String() string {
	switch m {
	case MatchPrecise:
		return "precise"
	case MatchLoose:
		return "loose"
	default:
		return fmt.Sprintf("MatchMode(%d)", int(m))
	}
}

// ParseMatchMode accepts "precise", "loose" or "auto". For "auto" (or empty)
// it sets auto so the caller picks the mode from the coverage schema.
func ParseMatchMode(value string) (mode MatchMode, auto bool, err error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return MatchPrecise, true, nil
	case "precise":
		return MatchPrecise, false, nil
	case "loose":
		return MatchLoose, false, nil
	default:
		return MatchPrecise, false, fmt.Errorf("unknown match mode %q", value)
	}
}

// DetectMode picks precise matching whenever the coverage dataset carries the
// release linkage column.
func DetectMode(hasLinkColumn bool) MatchMode {
	if hasLinkColumn {
		return MatchPrecise
	}
	return MatchLoose
}

type MatchOptions struct {
	WindowDays int
	Mode       MatchMode
}

// Matches maps a release ID to the coverage attributed to it.
type Matches map[int][]models.CoverageItem

type datedItem struct {
	day  time.Time
	pos  int
	item models.CoverageItem
}

// Match attributes coverage items to releases. An item belongs to a release
// when its date lies in [release date, release date + WindowDays] and, in
// precise mode, its linked release title equals the release title. Releases
// without a date get no entry. Lists are deduplicated per release only.
//
// Release IDs must be unique: Matches is keyed by them. Coverage items are
// deduplicated by ID; items with a zero ID carry no identity and are never
// treated as duplicates of each other.
func Match(releases []models.PressRelease, coverage []models.CoverageItem, opts MatchOptions) Matches {
	index := make([]datedItem, 0, len(coverage))
	for pos, item := range coverage {
		if item.PublishedAt == nil {
			continue
		}
		index = append(index, datedItem{day: NormalizeDate(*item.PublishedAt), pos: pos, item: item})
	}
	sort.SliceStable(index, func(i, j int) bool {
		return index[i].day.Before(index[j].day)
	})

	window := opts.WindowDays
	if window < 0 {
		window = 0
	}

	matches := make(Matches)
	for _, release := range releases {
		if release.PublishedAt == nil {
			continue
		}
		from := NormalizeDate(*release.PublishedAt)
		to := addDays(from, window)

		first := sort.Search(len(index), func(i int) bool {
			return !index[i].day.Before(from)
		})

		seen := make(map[int]struct{})
		hits := []datedItem{}
		for i := first; i < len(index) && !index[i].day.After(to); i++ {
			hit := index[i]
			if opts.Mode == MatchPrecise && hit.item.LinkedRelease != release.Title {
				continue
			}
			if id := hit.item.ID; id != 0 {
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}
			}
			hits = append(hits, hit)
		}
		sort.Slice(hits, func(i, j int) bool {
			return hits[i].pos < hits[j].pos
		})

		matched := make([]models.CoverageItem, len(hits))
		for i, hit := range hits {
			matched[i] = hit.item
		}
		matches[release.ID] = matched
	}
	return matches
}

// MatchedCoverage returns every coverage item attributed to at least one
// release, once, in coverage input order.
func MatchedCoverage(matches Matches, coverage []models.CoverageItem) []models.CoverageItem {
	attributed := make(map[int]struct{})
	for _, items := range matches {
		for _, item := range items {
			attributed[item.ID] = struct{}{}
		}
	}

	matched := []models.CoverageItem{}
	for _, item := range coverage {
		if _, ok := attributed[item.ID]; !ok {
			continue
		}
		matched = append(matched, item)
		delete(attributed, item.ID)
	}
	return matched
}
