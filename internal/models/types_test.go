package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"spacjobs/internal/models"
)

func TestDateMarshalJSON(t *testing.T) {
	d := models.NewDate(2024, time.June, 5)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"2024-06-05"` {
		t.Fatalf("marshaled date = %s, want \"2024-06-05\"", data)
	}
}

func TestDateUnmarshalJSON(t *testing.T) {
	var d models.Date
	if err := json.Unmarshal([]byte(`"2024-06-05"`), &d); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.June || d.Day() != 5 {
		t.Fatalf("unmarshaled date = %v", d)
	}

	for _, bad := range []string{`"05/06/2024"`, `"2024-6-5"`, `42`} {
		var d models.Date
		if err := json.Unmarshal([]byte(bad), &d); err == nil {
			t.Errorf("unmarshal(%s) should fail", bad)
		}
	}
}

func TestNilDatePointerMarshalsAsNull(t *testing.T) {
	rec := models.JobRecord{JobID: "1", Status: models.StatusUnknown}
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	for _, key := range []string{"start_date", "end_date", "vacancies", "salary", "announcement_pdf", "description_pdf"} {
		raw, ok := m[key]
		if !ok {
			t.Errorf("key %q omitted from record JSON", key)
			continue
		}
		if string(raw) != "null" {
			t.Errorf("key %q = %s, want null", key, raw)
		}
	}
}
