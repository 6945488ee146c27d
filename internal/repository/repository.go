package repository

import (
	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"fmt"
	"sort"
	"sync"
	"time"
)

// BidDecision runs against a freshly read auction and its full bid set inside
// the placement transaction. It returns the bid to upsert, or the rejection.
// The snapshot passed in is never data read before the transaction began.
type BidDecision func(auction model.Auction, bids []model.Bid) (model.Bid, error)

// AuctionDB defines auction and bid storage for the engine.
type AuctionDB interface {
	CreateAuction(auction model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	GetAuctionWithBids(auctionID string) (model.Auction, []model.Bid, error)
	RescheduleAuction(auctionID string, endTime time.Time) (model.Auction, error)
	DeleteAuction(auctionID string) error
	// PlaceBid re-reads the auction and its bids under the auction's
	// transaction scope, applies decide, and upserts the returned bid keyed
	// by (auction, bidder) before committing. An existing row for the bidder
	// keeps its BidID; amount and timestamp are overwritten.
	PlaceBid(auctionID string, decide BidDecision) (model.Bid, error)
	AuctionsByBidder(bidderID string) ([]model.Auction, error)
	ListAuctions() ([]model.Auction, error)
}

// JobDB defines durable settlement-job storage. Job rows are owned
// exclusively by the scheduler.
type JobDB interface {
	// UpsertJob arms (or re-arms) the single job for an auction, always
	// resetting it to PENDING with a cleared outcome.
	UpsertJob(auctionID string, scheduledAt time.Time) (model.ScheduledJob, error)
	// CancelJob marks a still-pending job CANCELLED; executed jobs are left
	// untouched. Missing jobs are not an error.
	CancelJob(auctionID string) error
	GetJob(jobID string) (model.ScheduledJob, error)
	// DuePendingJobs returns PENDING jobs with scheduledAt <= now, oldest
	// first, capped at limit.
	DuePendingJobs(now time.Time, limit int) ([]model.ScheduledJob, error)
	// TransitionJob atomically moves a job from one status to another,
	// recording executedAt and errMsg. It reports false when the job was no
	// longer in the from status, which is how concurrent sweepers lose the
	// race without double settlement.
	TransitionJob(jobID string, from, to model.JobStatus, executedAt time.Time, errMsg string) (bool, error)
}

// NotificationDB defines outcome storage. Writes supersede any prior row for
// the same (user, auction) pair.
type NotificationDB interface {
	SaveNotification(n model.Notification) (model.Notification, error)
	// NotificationsByUser pages a user's notifications, most recent first.
	NotificationsByUser(userID string, limit, offset int) ([]model.Notification, error)
	DeleteNotificationsByUser(userID string) (int, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB,
// JobDB and NotificationDB. The single mutex serializes bid placements, which
// stands in for the per-auction row locking the Postgres implementation uses.
type MemoryRepo struct {
	mu        sync.RWMutex
	auctions  map[string]model.Auction        // key: auctionID
	bids      map[string][]model.Bid          // key: auctionID
	jobs      map[string]model.ScheduledJob   // key: jobID
	jobByA    map[string]string               // key: auctionID -> jobID
	notifs    map[string][]model.Notification // key: userID
	idGen     func() string
}

// NewMemoryRepo creates a new in-memory repository instance. idGen supplies
// identifiers for rows the repository mints itself (job IDs).
func NewMemoryRepo(idGen func() string) *MemoryRepo {
	return &MemoryRepo{
		auctions: make(map[string]model.Auction),
		bids:     make(map[string][]model.Bid),
		jobs:     make(map[string]model.ScheduledJob),
		jobByA:   make(map[string]string),
		notifs:   make(map[string][]model.Notification),
		idGen:    idGen,
	}
}

// CreateAuction stores a new auction row.
func (r *MemoryRepo) CreateAuction(auction model.Auction) error {
	if auction.AuctionID == "" {
		return fmt.Errorf("create auction: %w - missing auction ID", auctionerrors.ErrInvalidAuction)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[auction.AuctionID] = auction
	return nil
}

// GetAuction returns a single auction row.
func (r *MemoryRepo) GetAuction(auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return a, nil
}

// GetAuctionWithBids returns an auction together with a snapshot of its bids.
func (r *MemoryRepo) GetAuctionWithBids(auctionID string) (model.Auction, []model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, nil, fmt.Errorf("get auction %s with bids: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return a, append([]model.Bid(nil), r.bids[auctionID]...), nil
}

// RescheduleAuction moves an auction's end time.
func (r *MemoryRepo) RescheduleAuction(auctionID string, endTime time.Time) (model.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("reschedule auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	a.EndTime = endTime
	r.auctions[auctionID] = a
	return a, nil
}

// DeleteAuction removes the auction and its bids.
func (r *MemoryRepo) DeleteAuction(auctionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return fmt.Errorf("delete auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	delete(r.auctions, auctionID)
	delete(r.bids, auctionID)
	return nil
}

// PlaceBid implements the transactional read-decide-upsert cycle. Holding the
// write lock across decide guarantees it always sees the price as of commit
// time, so two racing bids can never both validate against stale data.
func (r *MemoryRepo) PlaceBid(auctionID string, decide BidDecision) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return model.Bid{}, fmt.Errorf("place bid on auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}

	bids := r.bids[auctionID]
	bid, err := decide(a, append([]model.Bid(nil), bids...))
	if err != nil {
		return model.Bid{}, err
	}

	for i, existing := range bids {
		if existing.BidderID == bid.BidderID {
			// repeat bid from the same bidder keeps its row identity
			bid.BidID = existing.BidID
			bids[i] = bid
			r.bids[auctionID] = bids
			return bid, nil
		}
	}
	r.bids[auctionID] = append(bids, bid)
	return bid, nil
}

// AuctionsByBidder returns all auctions a user has bid on.
func (r *MemoryRepo) AuctionsByBidder(bidderID string) ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var auctions []model.Auction
	for auctionID, bids := range r.bids {
		for _, b := range bids {
			if b.BidderID == bidderID {
				if a, ok := r.auctions[auctionID]; ok {
					auctions = append(auctions, a)
				}
				break
			}
		}
	}
	if len(auctions) == 0 {
		return nil, fmt.Errorf("get auctions for user %s: %w", bidderID, auctionerrors.ErrUserNoBids)
	}
	sort.Slice(auctions, func(i, j int) bool { return auctions[i].AuctionID < auctions[j].AuctionID })
	return auctions, nil
}

// ListAuctions returns every auction, newest first.
func (r *MemoryRepo) ListAuctions() ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(r.auctions))
	for _, a := range r.auctions {
		auctions = append(auctions, a)
	}
	sort.Slice(auctions, func(i, j int) bool { return auctions[i].CreatedAt.After(auctions[j].CreatedAt) })
	return auctions, nil
}

// UpsertJob arms the settlement job for an auction, resetting any prior
// outcome so a rescheduled auction settles again at its new end time.
func (r *MemoryRepo) UpsertJob(auctionID string, scheduledAt time.Time) (model.ScheduledJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	jobID, ok := r.jobByA[auctionID]
	if !ok {
		jobID = r.idGen()
		r.jobByA[auctionID] = jobID
	}
	job := model.ScheduledJob{
		JobID:       jobID,
		AuctionID:   auctionID,
		ScheduledAt: scheduledAt,
		Status:      model.JobPending,
	}
	r.jobs[jobID] = job
	return job, nil
}

// CancelJob marks a still-pending job for the auction CANCELLED.
func (r *MemoryRepo) CancelJob(auctionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	jobID, ok := r.jobByA[auctionID]
	if !ok {
		return nil
	}
	job, ok := r.jobs[jobID]
	if !ok || job.Status != model.JobPending {
		return nil
	}
	job.Status = model.JobCancelled
	r.jobs[jobID] = job
	return nil
}

// GetJob returns a single job row.
func (r *MemoryRepo) GetJob(jobID string) (model.ScheduledJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[jobID]
	if !ok {
		return model.ScheduledJob{}, fmt.Errorf("get job %s: %w", jobID, auctionerrors.ErrJobNotFound)
	}
	return job, nil
}

// DuePendingJobs returns due PENDING jobs oldest first, bounding starvation.
func (r *MemoryRepo) DuePendingJobs(now time.Time, limit int) ([]model.ScheduledJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var due []model.ScheduledJob
	for _, job := range r.jobs {
		if job.Status == model.JobPending && !job.ScheduledAt.After(now) {
			due = append(due, job)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].ScheduledAt.Before(due[j].ScheduledAt) })
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

// TransitionJob performs the conditional status transition. The check and the
// write happen under one lock acquisition, so only one caller wins the
// from-status race.
func (r *MemoryRepo) TransitionJob(jobID string, from, to model.JobStatus, executedAt time.Time, errMsg string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[jobID]
	if !ok {
		return false, fmt.Errorf("transition job %s: %w", jobID, auctionerrors.ErrJobNotFound)
	}
	if job.Status != from {
		return false, nil
	}
	job.Status = to
	job.Error = errMsg
	if executedAt.IsZero() {
		job.ExecutedAt = nil
	} else {
		at := executedAt
		job.ExecutedAt = &at
	}
	r.jobs[jobID] = job
	return true, nil
}

// SaveNotification creates or replaces the notification for the
// (user, auction) pair. A superseded row keeps its identity; price and
// timestamp are overwritten, which makes settlement re-runs idempotent.
func (r *MemoryRepo) SaveNotification(n model.Notification) (model.Notification, error) {
	if n.UserID == "" || n.AuctionID == "" {
		return model.Notification{}, fmt.Errorf("save notification: %w - missing user or auction ID", auctionerrors.ErrInvalidAuction)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing := r.notifs[n.UserID]
	for i, prior := range existing {
		if prior.AuctionID == n.AuctionID {
			n.NotificationID = prior.NotificationID
			existing[i] = n
			r.notifs[n.UserID] = existing
			return n, nil
		}
	}
	r.notifs[n.UserID] = append(existing, n)
	return n, nil
}

// NotificationsByUser pages a user's notifications, most recent first.
func (r *MemoryRepo) NotificationsByUser(userID string, limit, offset int) ([]model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]model.Notification(nil), r.notifs[userID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	if offset >= len(out) {
		return []model.Notification{}, nil
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// DeleteNotificationsByUser hard-deletes all of a user's notifications.
func (r *MemoryRepo) DeleteNotificationsByUser(userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := len(r.notifs[userID])
	delete(r.notifs, userID)
	return count, nil
}
