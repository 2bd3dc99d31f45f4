package scraper

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"spacjobs/internal/models"
)

// DetailURL derives a posting's canonical detail-page URL from its id.
func DetailURL(base, jobID string) string {
	return fmt.Sprintf("%s/JobDet.aspx?JobID=%s", strings.TrimRight(base, "/"), jobID)
}

// ParseJobDetail builds one JobRecord from a parsed detail page. Every field
// is extracted via the anchor table and degrades to the empty string or nil
// when its element is missing — a single broken field never fails the page.
func ParseJobDetail(doc *goquery.Document, jobID, base string, anchors AnchorTable, now time.Time) models.JobRecord {
	text := func(f Field) string {
		a, ok := anchors[f]
		if !ok {
			return ""
		}
		if a.Mode == ModeMultiline {
			return MultilineByID(doc, a.ID)
		}
		return TextByID(doc, a.ID)
	}
	link := func(f Field) *string {
		a, ok := anchors[f]
		if !ok {
			return nil
		}
		return LinkByID(doc, a.ID, base)
	}

	endDate := ParseDateField(text(FieldEndDate))
	experience := text(FieldExperience)

	return models.JobRecord{
		JobID:           jobID,
		Title:           text(FieldTitle),
		Organization:    strings.Trim(text(FieldOrganization), " /"),
		VacancySpec:     text(FieldVacancySpec),
		ExperienceText:  experience,
		ExperienceRaw:   experience,
		StartDate:       ParseDateField(text(FieldStartDate)),
		EndDate:         endDate,
		Qualification:   text(FieldQualification),
		Location:        text(FieldLocation),
		Gender:          text(FieldGender),
		Age:             text(FieldAge),
		Vacancies:       ParseIntField(text(FieldVacancies)),
		Salary:          ParseFloatField(text(FieldSalary)),
		Requirements:    text(FieldRequirements),
		AnnouncementPDF: link(FieldAnnouncementPDF),
		DescriptionPDF:  link(FieldDescriptionPDF),
		DetailURL:       DetailURL(base, jobID),
		Status:          DeriveStatus(endDate, now),
		ScrapedAt:       now.UTC().Truncate(time.Second),
	}
}

// ReconcileExperience patches a record with the listing page's experience
// snippet. The three-way rule is deliberate and observable in output:
// a non-empty listing value replaces both experience fields; an id that is
// present but empty makes the detail-page text its own raw echo; an id
// absent from the map leaves the record untouched.
func ReconcileExperience(rec *models.JobRecord, listing map[string]string) {
	snippet, ok := listing[rec.JobID]
	if !ok {
		return
	}
	if snippet != "" {
		rec.ExperienceText = snippet
		rec.ExperienceRaw = snippet
		return
	}
	rec.ExperienceRaw = rec.ExperienceText
}
