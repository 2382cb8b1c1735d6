package analytics

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// DateLayout is the canonical text form of a normalized date.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	"02-01-2006",
	"2-1-2006",
	DateLayout,
	"02/01/2006",
	"2/1/2006",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"02-01-2006 15:04:05",
	"02/01/2006 15:04:05",
	time.RFC3339,
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// Serial day numbers accepted as dates: 1954-10-03 up to 2119-01-10. Smaller
// numbers are more likely years or counts than dates.
const (
	minSerial = 20000
	maxSerial = 80000
)

var indonesianMonths = strings.NewReplacer(
	"Januari", "January",
	"Februari", "February",
	"Maret", "March",
	"Mei", "May",
	"Juni", "June",
	"Juli", "July",
	"Agustus", "August",
	"Oktober", "October",
	"Desember", "December",
	"Agu", "Aug",
	"Okt", "Oct",
	"Des", "Dec",
)

// ParseDate coerces a spreadsheet cell into a calendar date at midnight UTC.
// It returns nil for empty or unparsable input.
func ParseDate(raw string) *time.Time {
	value := strings.Join(strings.Fields(raw), " ")
	if value == "" {
		return nil
	}

	for _, candidate := range []string{value, indonesianMonths.Replace(value)} {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, candidate); err == nil {
				d := NormalizeDate(t)
				return &d
			}
		}
	}

	// Spreadsheet exports sometimes leave dates as serial day numbers.
	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial >= minSerial && serial < maxSerial {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			d := NormalizeDate(t)
			return &d
		}
	}

	return nil
}

// NormalizeDate drops the time of day and location, keeping the calendar date.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func FormatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(DateLayout)
}

func addDays(d time.Time, days int) time.Time {
	return d.AddDate(0, 0, days)
}
