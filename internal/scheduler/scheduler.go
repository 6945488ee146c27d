// Package scheduler owns the durable settlement jobs and the timer-driven
// sweep that executes them. Exactly-once settlement rests on two rules: the
// PENDING→{EXECUTED|FAILED} transition is a conditional update that only one
// sweeper can win, and the transition happens only after settlement finishes,
// so a crash mid-sweep leaves the job PENDING for the next sweep to retry.
// That retry is safe because settlement itself is idempotent.
package scheduler

import (
	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
	"context"
	"errors"
	"fmt"
	"time"
)

// Settler consumes an ended auction's frozen bid set.
type Settler interface {
	Settle(auction models.Auction, bids []models.Bid) error
}

// Sweeper finds due settlement jobs and executes them.
type Sweeper struct {
	auctions  repository.AuctionDB
	jobs      repository.JobDB
	settler   Settler
	batchSize int
	now       func() time.Time
}

// NewSweeper creates a new Sweeper instance. batchSize caps how many due jobs
// one sweep picks up; zero means no cap.
func NewSweeper(auctions repository.AuctionDB, jobs repository.JobDB, settler Settler, batchSize int) *Sweeper {
	return &Sweeper{
		auctions:  auctions,
		jobs:      jobs,
		settler:   settler,
		batchSize: batchSize,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source; tests use it to drive sweeps
// deterministically.
func (s *Sweeper) WithClock(now func() time.Time) *Sweeper {
	s.now = now
	return s
}

// RunSweep executes one sweep: due PENDING jobs, oldest first. Per-job
// failures are recorded on the job and never abort the sweep or sibling jobs.
// It returns the number of jobs it transitioned out of PENDING.
func (s *Sweeper) RunSweep(ctx context.Context) int {
	due, err := s.jobs.DuePendingJobs(s.now(), s.batchSize)
	if err != nil {
		utils.Error("sweep: failed to query due jobs", map[string]any{"error": err.Error()})
		return 0
	}

	processed := 0
	for _, job := range due {
		if ctx.Err() != nil {
			utils.Warn("sweep: cancelled mid-sweep, remaining jobs stay pending", map[string]any{"job_id": job.JobID})
			return processed
		}
		if s.executeJob(job) {
			processed++
		}
	}
	return processed
}

// executeJob settles one due job and performs the conditional status
// transition. It reports whether this sweeper won the transition.
func (s *Sweeper) executeJob(job models.ScheduledJob) bool {
	settleErr := s.settle(job)

	to := models.JobExecuted
	errMsg := ""
	if settleErr != nil {
		to = models.JobFailed
		errMsg = settleErr.Error()
	}

	won, err := s.jobs.TransitionJob(job.JobID, models.JobPending, to, s.now(), errMsg)
	if err != nil {
		utils.Error("sweep: failed to transition job", map[string]any{
			"job_id":     job.JobID,
			"auction_id": job.AuctionID,
			"error":      err.Error(),
		})
		return false
	}
	if !won {
		// another instance settled it first; settlement idempotency makes
		// the duplicate run harmless
		utils.Warn("sweep: lost transition race, job already handled", map[string]any{
			"job_id":     job.JobID,
			"auction_id": job.AuctionID,
		})
		return false
	}

	if settleErr != nil {
		utils.Error("sweep: job failed, awaiting manual reprocessing", map[string]any{
			"job_id":     job.JobID,
			"auction_id": job.AuctionID,
			"error":      settleErr.Error(),
		})
	} else {
		utils.Info("sweep: job executed", map[string]any{
			"job_id":     job.JobID,
			"auction_id": job.AuctionID,
		})
	}
	return true
}

// settle loads the frozen bid set and runs settlement. Bid placement
// enforces the end-time cutoff, so nothing can legally join the bid set once
// the job is due.
func (s *Sweeper) settle(job models.ScheduledJob) error {
	auction, bids, err := s.auctions.GetAuctionWithBids(job.AuctionID)
	if err != nil {
		return fmt.Errorf("read frozen bid set for auction %s: %w", job.AuctionID, err)
	}
	if err := s.settler.Settle(auction, bids); err != nil {
		return fmt.Errorf("settle auction %s: %w", job.AuctionID, err)
	}
	return nil
}

// Reprocess manually retries a FAILED job. FAILED jobs are never retried by
// the sweep itself, so one poison auction cannot block it; an operator calls
// this after fixing the cause.
func (s *Sweeper) Reprocess(jobID string) (models.ScheduledJob, error) {
	job, err := s.jobs.GetJob(jobID)
	if err != nil {
		return models.ScheduledJob{}, fmt.Errorf("reprocess: %w", err)
	}

	rearmed, err := s.jobs.TransitionJob(jobID, models.JobFailed, models.JobPending, time.Time{}, "")
	if err != nil {
		return models.ScheduledJob{}, fmt.Errorf("reprocess job %s: %w", jobID, err)
	}
	if !rearmed {
		return models.ScheduledJob{}, fmt.Errorf("reprocess job %s: %w", jobID, auctionerrors.ErrJobNotFailed)
	}

	job.Status = models.JobPending
	job.Error = ""
	job.ExecutedAt = nil
	s.executeJob(job)
	return s.jobs.GetJob(jobID)
}

// Run drives RunSweep on a fixed tick until ctx is cancelled. Production
// wiring uses the cron runner in main instead; this loop exists for callers
// that want a self-contained scheduler goroutine.
func (s *Sweeper) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if !errors.Is(ctx.Err(), context.Canceled) {
				utils.Warn("sweep loop stopped", map[string]any{"reason": ctx.Err().Error()})
			}
			return
		case <-ticker.C:
			s.RunSweep(ctx)
		}
	}
}
