package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// detailPattern matches the one detail-link shape the site uses; the capture
// group is the numeric job id.
var detailPattern = regexp.MustCompile(`JobDet\.aspx\?JobID=(\d+)`)

// experienceMarker labels the listing-page cell that carries the required
// technical experience ("technical experience in the field of the job").
const experienceMarker = "خبرة فنية في مجال الوظيفة"

// ParseJobIDs scans every anchor on the list page for detail links and
// returns the job ids in first-seen document order with repeats dropped.
func ParseJobIDs(doc *goquery.Document) []string {
	seen := make(map[string]bool)
	var ids []string
	doc.Find("a[href]").Each(func(i int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		match := detailPattern.FindStringSubmatch(href)
		if match == nil {
			return
		}
		if id := match[1]; !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	})
	return ids
}

// ParseExperienceMap captures raw experience snippets from the listing rows.
// For each detail link it walks the table rows after the link's own row,
// stopping at the next row that carries another detail link, and takes the
// first cell mentioning the experience marker: the text after the first
// colon if one exists, the whole cell text otherwise. Jobs whose rows never
// mention the marker are simply absent from the map.
func ParseExperienceMap(doc *goquery.Document) map[string]string {
	mapping := make(map[string]string)

	doc.Find("a[href]").Each(func(i int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		match := detailPattern.FindStringSubmatch(href)
		if match == nil {
			return
		}
		jobID := match[1]

		link.Closest("tr").NextAllFiltered("tr").EachWithBreak(func(j int, row *goquery.Selection) bool {
			if rowHasDetailLink(row) {
				return false
			}
			found := false
			row.Find("td").EachWithBreak(func(k int, td *goquery.Selection) bool {
				text := strings.Join(strippedStrings(td), " ")
				if !strings.Contains(text, experienceMarker) {
					return true
				}
				if idx := strings.Index(text, ":"); idx >= 0 {
					mapping[jobID] = strings.TrimSpace(text[idx+1:])
				} else {
					mapping[jobID] = strings.TrimSpace(text)
				}
				found = true
				return false
			})
			return !found
		})
	})

	return mapping
}

func rowHasDetailLink(row *goquery.Selection) bool {
	has := false
	row.Find("a[href]").EachWithBreak(func(i int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		if detailPattern.MatchString(href) {
			has = true
			return false
		}
		return true
	})
	return has
}
