package scraper

import (
	"strconv"
	"strings"
	"time"

	"spacjobs/internal/models"
)

// Upstream renders dates as dd/mm/yyyy.
const upstreamDateLayout = "02/01/2006"

// ParseIntField parses a whole number out of raw field text. Any failure
// means the value is absent, never zero and never an error.
func ParseIntField(s string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &v
}

// ParseFloatField parses a decimal out of raw field text, stripping
// thousands-separator commas first ("1,250.50" → 1250.5). Failure → absent.
func ParseFloatField(s string) *float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseDateField parses an exact dd/mm/yyyy date out of raw field text.
// Any deviation from the layout means absent.
func ParseDateField(s string) *models.Date {
	t, err := time.Parse(upstreamDateLayout, strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	d := models.Date{Time: t}
	return &d
}

// DeriveStatus classifies a posting by its deadline: open while the end
// date has not passed (inclusive of the scrape day itself), closed after,
// unknown when the page gave no parsable end date.
func DeriveStatus(end *models.Date, now time.Time) models.Status {
	if end == nil {
		return models.StatusUnknown
	}
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	scrapeDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if endDay.Before(scrapeDay) {
		return models.StatusClosed
	}
	return models.StatusOpen
}
