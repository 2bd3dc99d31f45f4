package scraper

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultAnchors_CoversEveryField(t *testing.T) {
	table := DefaultAnchors()
	fields := []Field{
		FieldTitle, FieldOrganization, FieldVacancySpec, FieldExperience,
		FieldStartDate, FieldEndDate, FieldQualification, FieldLocation,
		FieldGender, FieldAge, FieldVacancies, FieldSalary,
		FieldRequirements, FieldAnnouncementPDF, FieldDescriptionPDF,
	}
	if len(table) != len(fields) {
		t.Fatalf("table has %d entries, want %d", len(table), len(fields))
	}
	for _, f := range fields {
		a, ok := table[f]
		if !ok {
			t.Errorf("missing anchor for %q", f)
			continue
		}
		if !strings.HasPrefix(a.ID, idPrefix) {
			t.Errorf("anchor %q id %q lacks the control prefix", f, a.ID)
		}
	}
}

func TestLoadAnchors_EmptyPathIsDefaults(t *testing.T) {
	table, err := LoadAnchors("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table[FieldTitle] != DefaultAnchors()[FieldTitle] {
		t.Fatal("empty path should yield the default table")
	}
}

func TestLoadAnchors_Overlay(t *testing.T) {
	path := writeAnchorsFile(t, `
anchors:
  title:
    id: NewControl_lblJobTitle
  requirements:
    mode: text
`)

	table, err := LoadAnchors(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table[FieldTitle].ID != "NewControl_lblJobTitle" {
		t.Errorf("title id = %q, want override", table[FieldTitle].ID)
	}
	// Mode untouched when only the id is overridden.
	if table[FieldTitle].Mode != ModeText {
		t.Errorf("title mode = %q, want %q", table[FieldTitle].Mode, ModeText)
	}
	if table[FieldRequirements].Mode != ModeText {
		t.Errorf("requirements mode = %q, want override", table[FieldRequirements].Mode)
	}
	// Everything else keeps its default.
	if table[FieldSalary] != DefaultAnchors()[FieldSalary] {
		t.Errorf("salary anchor changed unexpectedly: %+v", table[FieldSalary])
	}
}

func TestLoadAnchors_UnknownField(t *testing.T) {
	path := writeAnchorsFile(t, "anchors:\n  bogus:\n    id: x\n")
	if _, err := LoadAnchors(path); err == nil {
		t.Fatal("expected error for unknown field name")
	}
}

func TestLoadAnchors_UnknownMode(t *testing.T) {
	path := writeAnchorsFile(t, "anchors:\n  title:\n    mode: regex\n")
	if _, err := LoadAnchors(path); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func writeAnchorsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "anchors.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}
