package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Status classifies a posting relative to its application deadline.
type Status string

const (
	StatusOpen    Status = "open"
	StatusClosed  Status = "closed"
	StatusUnknown Status = "unknown"
)

const dateLayout = "2006-01-02"

// Date is a calendar day (no time-of-day component) that marshals as
// "YYYY-MM-DD". Optional date fields use *Date so an unparsable upstream
// value serializes as null rather than a zero date.
type Date struct {
	time.Time
}

// NewDate builds a Date from year/month/day, discarding any finer precision.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON renders the date as a quoted "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

// UnmarshalJSON parses a quoted "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %v", s, err)
	}
	d.Time = t
	return nil
}

// JobRecord is one posting scraped from a detail page. Text fields hold the
// empty string when the page lacks the matching element; pointer fields are
// nil (serialized as null) when the raw value was missing or unparsable.
type JobRecord struct {
	JobID           string    `json:"job_id"`
	Title           string    `json:"title"`
	Organization    string    `json:"organization"`
	VacancySpec     string    `json:"vacancy_spec"`
	ExperienceText  string    `json:"experience_text"`
	ExperienceRaw   string    `json:"experience_raw"`
	StartDate       *Date     `json:"start_date"`
	EndDate         *Date     `json:"end_date"`
	Qualification   string    `json:"qualification"`
	Location        string    `json:"location"`
	Gender          string    `json:"gender"`
	Age             string    `json:"age"`
	Vacancies       *int      `json:"vacancies"`
	Salary          *float64  `json:"salary"`
	Requirements    string    `json:"requirements"`
	AnnouncementPDF *string   `json:"announcement_pdf"`
	DescriptionPDF  *string   `json:"description_pdf"`
	DetailURL       string    `json:"detail_url"`
	Status          Status    `json:"status"`
	ScrapedAt       time.Time `json:"scraped_at"`
}

// FeedPayload is the single artifact one scrape pass produces. Jobs appear
// in list-page discovery order and JobCount always equals len(Jobs).
type FeedPayload struct {
	Source    string      `json:"source"`
	ScrapedAt time.Time   `json:"scraped_at"`
	JobCount  int         `json:"job_count"`
	Jobs      []JobRecord `json:"jobs"`
}
