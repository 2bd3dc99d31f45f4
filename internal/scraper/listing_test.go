package scraper

import (
	"reflect"
	"testing"
)

func TestParseJobIDs_OrderAndDedup(t *testing.T) {
	html := `
<table>
  <tr><td><a href="JobDet.aspx?JobID=101">وظيفة ١</a></td></tr>
  <tr><td><a href="JobDet.aspx?JobID=101">وظيفة ١ مكررة</a></td></tr>
  <tr><td><a href="JobDet.aspx?JobID=102">وظيفة ٢</a></td></tr>
</table>`

	got := ParseJobIDs(mustDoc(t, html))
	want := []string{"101", "102"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseJobIDs = %v, want %v", got, want)
	}
}

func TestParseJobIDs_IgnoresNonMatchingLinks(t *testing.T) {
	html := `
<a href="Default.aspx">home</a>
<a href="JobDet.aspx?JobID=abc">bad id</a>
<a href="jobdet.aspx?JobID=7">wrong case</a>
<a href="../JobDet.aspx?JobID=55">relative</a>`

	got := ParseJobIDs(mustDoc(t, html))
	want := []string{"55"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseJobIDs = %v, want %v", got, want)
	}
}

func TestParseJobIDs_Empty(t *testing.T) {
	if got := ParseJobIDs(mustDoc(t, `<p>no jobs today</p>`)); len(got) != 0 {
		t.Fatalf("expected no ids, got %v", got)
	}
}

func TestParseExperienceMap_AfterColon(t *testing.T) {
	html := `
<table>
  <tr><td><a href="JobDet.aspx?JobID=101">وظيفة</a></td></tr>
  <tr><td>خبرة فنية في مجال الوظيفة : خمس سنوات في الشبكات</td></tr>
  <tr><td><a href="JobDet.aspx?JobID=102">وظيفة</a></td></tr>
  <tr><td>خبرة فنية في مجال الوظيفة بدون فاصلة</td></tr>
</table>`

	got := ParseExperienceMap(mustDoc(t, html))
	if got["101"] != "خمس سنوات في الشبكات" {
		t.Errorf("job 101 snippet = %q, want text after colon", got["101"])
	}
	// No colon: the whole cell text is kept.
	if got["102"] != "خبرة فنية في مجال الوظيفة بدون فاصلة" {
		t.Errorf("job 102 snippet = %q, want full cell text", got["102"])
	}
}

func TestParseExperienceMap_StopsAtNextJobRow(t *testing.T) {
	// Job 101's walk must stop at 102's row, so the snippet below 102
	// belongs to 102 only.
	html := `
<table>
  <tr><td><a href="JobDet.aspx?JobID=101">وظيفة</a></td></tr>
  <tr><td>تفاصيل أخرى</td></tr>
  <tr><td><a href="JobDet.aspx?JobID=102">وظيفة</a></td></tr>
  <tr><td>خبرة فنية في مجال الوظيفة : سنتان</td></tr>
</table>`

	got := ParseExperienceMap(mustDoc(t, html))
	if _, ok := got["101"]; ok {
		t.Errorf("job 101 should have no snippet, got %q", got["101"])
	}
	if got["102"] != "سنتان" {
		t.Errorf("job 102 snippet = %q, want %q", got["102"], "سنتان")
	}
}

func TestParseExperienceMap_MissingRowMeansAbsent(t *testing.T) {
	html := `
<table>
  <tr><td><a href="JobDet.aspx?JobID=101">وظيفة</a></td></tr>
  <tr><td>لا علاقة له بالخبرة</td></tr>
</table>`

	got := ParseExperienceMap(mustDoc(t, html))
	if len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
}
