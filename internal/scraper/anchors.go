package scraper

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Mode selects how a field's value is pulled out of its page element.
type Mode string

const (
	ModeText      Mode = "text"      // flattened single-line text
	ModeMultiline Mode = "multiline" // text nodes joined by newlines
	ModeLink      Mode = "link"      // first anchor's href, absolutized
)

// Field names one JobRecord attribute sourced from the detail page.
type Field string

const (
	FieldTitle           Field = "title"
	FieldOrganization    Field = "organization"
	FieldVacancySpec     Field = "vacancy_spec"
	FieldExperience      Field = "experience"
	FieldStartDate       Field = "start_date"
	FieldEndDate         Field = "end_date"
	FieldQualification   Field = "qualification"
	FieldLocation        Field = "location"
	FieldGender          Field = "gender"
	FieldAge             Field = "age"
	FieldVacancies       Field = "vacancies"
	FieldSalary          Field = "salary"
	FieldRequirements    Field = "requirements"
	FieldAnnouncementPDF Field = "announcement_pdf"
	FieldDescriptionPDF  Field = "description_pdf"
)

// Anchor ties a field to an element id on the detail page and the mode used
// to extract it. The ids are ASP.NET control ids, so a site-template change
// means editing this table, not the extraction logic.
type Anchor struct {
	ID   string `yaml:"id"`
	Mode Mode   `yaml:"mode"`
}

// AnchorTable maps every detail-page field to its anchor.
type AnchorTable map[Field]Anchor

const idPrefix = "ContentPlaceHolder1_PubJobDetControl1_"

// DefaultAnchors returns the anchor table for the current applyjobs.spac.gov.jo
// detail-page template.
func DefaultAnchors() AnchorTable {
	return AnchorTable{
		FieldTitle:           {ID: idPrefix + "lblJobTitle", Mode: ModeText},
		FieldOrganization:    {ID: idPrefix + "lblChapt", Mode: ModeText},
		FieldVacancySpec:     {ID: idPrefix + "lblVacType", Mode: ModeText},
		FieldExperience:      {ID: idPrefix + "lblMinTechExp", Mode: ModeText},
		FieldStartDate:       {ID: idPrefix + "lblJobPubDate", Mode: ModeText},
		FieldEndDate:         {ID: idPrefix + "lblJobEndDate", Mode: ModeText},
		FieldQualification:   {ID: idPrefix + "lblCertName", Mode: ModeText},
		FieldLocation:        {ID: idPrefix + "lblGoverName", Mode: ModeText},
		FieldGender:          {ID: idPrefix + "lblGender", Mode: ModeText},
		FieldAge:             {ID: idPrefix + "lblAgeDesc", Mode: ModeText},
		FieldVacancies:       {ID: idPrefix + "lblVacNo", Mode: ModeText},
		FieldSalary:          {ID: idPrefix + "lblSal", Mode: ModeText},
		FieldRequirements:    {ID: idPrefix + "lblJobReqDet", Mode: ModeMultiline},
		FieldAnnouncementPDF: {ID: idPrefix + "lblJobTitleURL", Mode: ModeLink},
		FieldDescriptionPDF:  {ID: idPrefix + "lblJobDescURL", Mode: ModeLink},
	}
}

// LoadAnchors returns the default table overlaid with overrides from a YAML
// file of the form:
//
//	anchors:
//	  title:
//	    id: SomeOtherControl_lblJobTitle
//
// An empty path means defaults. Unknown field names and unknown modes are
// errors so template-drift typos surface at startup rather than as silently
// empty fields.
func LoadAnchors(path string) (AnchorTable, error) {
	table := DefaultAnchors()
	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read anchors file: %w", err)
	}

	var file struct {
		Anchors map[string]Anchor `yaml:"anchors"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse anchors file: %w", err)
	}

	for name, override := range file.Anchors {
		field := Field(name)
		anchor, ok := table[field]
		if !ok {
			return nil, fmt.Errorf("unknown anchor field %q in %s", name, path)
		}
		if override.ID != "" {
			anchor.ID = override.ID
		}
		if override.Mode != "" {
			switch override.Mode {
			case ModeText, ModeMultiline, ModeLink:
				anchor.Mode = override.Mode
			default:
				return nil, fmt.Errorf("unknown anchor mode %q for field %q", override.Mode, name)
			}
		}
		table[field] = anchor
	}

	return table, nil
}
