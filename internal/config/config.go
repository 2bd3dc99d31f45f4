// Package config loads runtime defaults from the environment. Flags layered
// on top in main override anything set here.
package config

import (
	"fmt"
	"os"
	"strconv"
)

const defaultBaseURL = "https://applyjobs.spac.gov.jo"

// Config holds all runtime configuration for the scraper.
type Config struct {
	BaseURL  string // site root
	Output   string // feed destination path
	Interval int    // seconds between passes; 0 = run once
	Proxy    string // optional proxy URL
	Anchors  string // optional anchor-override YAML path
}

// Load reads environment variables and returns a validated Config.
// Everything is optional; a malformed interval is a hard error.
func Load() (*Config, error) {
	baseURL := os.Getenv("SPACJOBS_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	output := os.Getenv("SPACJOBS_OUTPUT")
	if output == "" {
		output = "data/jobs.json"
	}

	interval := 0
	if s := os.Getenv("SPACJOBS_INTERVAL"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("SPACJOBS_INTERVAL must be a non-negative integer, got %q", s)
		}
		interval = v
	}

	return &Config{
		BaseURL:  baseURL,
		Output:   output,
		Interval: interval,
		Proxy:    os.Getenv("SPACJOBS_PROXY"),
		Anchors:  os.Getenv("SPACJOBS_ANCHORS"),
	}, nil
}
