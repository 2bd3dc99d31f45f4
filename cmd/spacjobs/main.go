package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"spacjobs/internal/client"
	"spacjobs/internal/config"
	"spacjobs/internal/feed"
	"spacjobs/internal/scheduler"
	"spacjobs/internal/scraper"
	"spacjobs/internal/ui"
)

func main() {
	// Optional .env, then environment, then flags on top
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	interval := flag.Int("interval", cfg.Interval, "Seconds between scrapes (0 = run once)")
	output := flag.String("output", cfg.Output, "Where to write the JSON feed")
	baseURL := flag.String("base-url", cfg.BaseURL, "Site root to scrape")
	proxyURL := flag.String("proxy", cfg.Proxy, "Proxy URL to use")
	anchorsPath := flag.String("anchors", cfg.Anchors, "YAML file overriding the detail-page anchor table")
	debug := flag.Bool("debug", false, "Enable debug mode")

	// Banner control flags (two aliases for the same functionality)
	silence := flag.Bool("silence", false, "Silence the banner")
	noBanner := flag.Bool("nobanner", false, "Silence the banner (alias for -silence)")

	flag.Parse()

	quiet := *silence || *noBanner
	ui.PrintBanner(quiet)

	if *interval < 0 {
		log.Fatal("Interval must be a non-negative number of seconds")
	}

	anchors, err := scraper.LoadAnchors(*anchorsPath)
	if err != nil {
		log.Fatalf("Error loading anchors: %v", err)
	}

	// One HTTP session for the life of the process
	httpClient := client.CreateProxyHTTPClient(*proxyURL)
	scr := scraper.New(httpClient, *baseURL, anchors, *debug, !quiet)

	ctx := context.Background()

	pass := func() error {
		payload, err := scr.Run(ctx)
		if err != nil {
			return err
		}
		n, err := feed.Write(payload, *output)
		if err != nil {
			return err
		}
		ui.PrintSummary(payload.JobCount, n, *output, payload.ScrapedAt)
		return nil
	}

	if *interval == 0 {
		if err := pass(); err != nil {
			log.Fatalf("Scrape failed: %v", err)
		}
		return
	}

	sched := scheduler.New(pass, *interval)
	if err := sched.Start(); err != nil {
		log.Fatalf("Error starting scheduler: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	sched.Stop()
}
