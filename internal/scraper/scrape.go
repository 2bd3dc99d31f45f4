package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/google/uuid"

	"spacjobs/internal/feed"
	"spacjobs/internal/models"
)

// Scraper runs full scrape passes against one site. The HTTP client is the
// shared session for the life of the process; it is injected rather than
// created per request so connections are reused across detail fetches.
type Scraper struct {
	Client   *http.Client
	BaseURL  string
	Anchors  AnchorTable
	Debug    bool
	Progress bool
}

// New creates a Scraper over the given shared HTTP client and site root.
func New(httpClient *http.Client, baseURL string, anchors AnchorTable, debug, progress bool) *Scraper {
	return &Scraper{
		Client:   httpClient,
		BaseURL:  baseURL,
		Anchors:  anchors,
		Debug:    debug,
		Progress: progress,
	}
}

// ListURL returns the list-page URL the pass starts from.
func (s *Scraper) ListURL() string {
	return strings.TrimRight(s.BaseURL, "/") + "/"
}

// Run executes one pass: fetch the list page, extract ids and the
// experience side table, fetch and parse each detail page in discovery
// order, reconcile, and assemble the feed payload. Any fetch failure aborts
// the whole pass — no partial feed is ever produced.
func (s *Scraper) Run(ctx context.Context) (*models.FeedPayload, error) {
	runID := uuid.New().String()

	if s.Debug {
		fmt.Printf("[run %s] fetching list page %s\n", runID, s.ListURL())
	}

	listDoc, err := fetchDocument(ctx, s.Client, s.ListURL(), s.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch list page: %v", err)
	}

	jobIDs := ParseJobIDs(listDoc)
	listExperience := ParseExperienceMap(listDoc)

	if s.Debug {
		fmt.Printf("[run %s] found %d job(s), %d experience snippet(s)\n", runID, len(jobIDs), len(listExperience))
	}

	var bar *pb.ProgressBar
	if s.Progress {
		bar = pb.StartNew(len(jobIDs))
	}

	jobs := make([]models.JobRecord, 0, len(jobIDs))
	for _, jobID := range jobIDs {
		detailDoc, err := fetchDocument(ctx, s.Client, DetailURL(s.BaseURL, jobID), s.Debug)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch job %s: %v", jobID, err)
		}

		rec := ParseJobDetail(detailDoc, jobID, s.BaseURL, s.Anchors, time.Now())
		ReconcileExperience(&rec, listExperience)
		jobs = append(jobs, rec)

		if bar != nil {
			bar.Increment()
		}
		if s.Debug {
			fmt.Printf("[run %s] job %s: %s (%s)\n", runID, jobID, rec.Title, rec.Status)
		}
	}

	if bar != nil {
		bar.Finish()
	}

	payload := feed.BuildPayload(s.ListURL(), jobs, time.Now())
	return payload, nil
}
