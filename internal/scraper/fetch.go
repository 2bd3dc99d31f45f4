package scraper

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"

	"spacjobs/internal/client"
)

// fetchDocument fetches pageURL and parses the body into a goquery document.
// Transport errors, timeouts, and non-200 statuses propagate to the caller.
func fetchDocument(ctx context.Context, httpClient *http.Client, pageURL string, debug bool) (*goquery.Document, error) {
	body, err := client.Fetch(ctx, httpClient, pageURL)
	if err != nil {
		return nil, err
	}

	if debug {
		fmt.Printf("Fetched %s (%d bytes)\n", pageURL, len(body))
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %v", err)
	}

	return doc, nil
}
