package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"press-monitor/analytics"
)

type FilterParams struct {
	Start  *time.Time
	End    *time.Time
	Titles []string
}

func (f FilterParams) Params() analytics.Params {
	return analytics.Params{Start: f.Start, End: f.End, Titles: f.Titles}
}

// parseFilters reads ?start=&end=&title=... from the query string. Dates use
// the canonical yyyy-mm-dd form or any form the date normalizer accepts.
func parseFilters(c *gin.Context) (FilterParams, error) {
	var filters FilterParams

	for _, bound := range []struct {
		key    string
		target **time.Time
	}{
		{"start", &filters.Start},
		{"end", &filters.End},
	} {
		raw := strings.TrimSpace(c.Query(bound.key))
		if raw == "" {
			continue
		}
		d := analytics.ParseDate(raw)
		if d == nil {
			return filters, fmt.Errorf("invalid %s date %q", bound.key, raw)
		}
		*bound.target = d
	}

	if filters.Start != nil && filters.End != nil && filters.Start.After(*filters.End) {
		return filters, fmt.Errorf("start %s is after end %s", analytics.FormatDate(filters.Start), analytics.FormatDate(filters.End))
	}

	for _, title := range c.QueryArray("title") {
		if title = strings.TrimSpace(title); title != "" {
			filters.Titles = append(filters.Titles, title)
		}
	}
	return filters, nil
}

func formatFloat(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}
