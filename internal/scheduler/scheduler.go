// Package scheduler wires up the cron job that repeats scrape passes on a
// fixed interval.
package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler wraps robfig/cron around one pass function. There is no overlap
// protection: a pass slower than the interval is followed immediately by
// the next tick's pass.
type Scheduler struct {
	cron *cron.Cron
	pass func() error
	spec string // cron spec, e.g. "@every 1800s"
}

// New creates a Scheduler that runs pass every seconds seconds.
func New(pass func() error, seconds int) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		pass: pass,
		spec: fmt.Sprintf("@every %ds", seconds),
	}
}

// Start registers the job and starts the scheduler. Also runs one pass
// immediately so the feed is written without waiting for the first tick.
// A failing pass terminates the process: a scrape that cannot complete has
// no partial output worth keeping.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, s.runPass)
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] Cron started — spec: %s", s.spec)

	go s.runPass()

	return nil
}

// Stop halts the scheduler. A pass already underway is not interrupted.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] Cron stopped")
}

func (s *Scheduler) runPass() {
	if err := s.pass(); err != nil {
		log.Fatalf("[scheduler] scrape pass failed: %v", err)
	}
}
