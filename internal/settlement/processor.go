// Package settlement computes win/loss outcomes for an ended auction and
// persists them as notifications. Settle is idempotent: every write
// supersedes the prior notification for the same (user, auction) pair, so
// re-running a partially completed settlement converges on the same set.
package settlement

import (
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
	"errors"
	"fmt"
	"sort"
	"time"
)

// Broadcaster pushes a persisted notification to any live sessions for the
// user. The notification store stays the record of truth, so delivery
// failures are logged and swallowed.
type Broadcaster interface {
	Broadcast(userID string, n models.Notification) int
}

// Processor turns an ended auction's frozen bid set into notifications.
type Processor struct {
	notifications repository.NotificationDB
	hub           Broadcaster
	now           func() time.Time
}

// NewProcessor creates a new Processor instance.
func NewProcessor(notifications repository.NotificationDB, hub Broadcaster) *Processor {
	return &Processor{
		notifications: notifications,
		hub:           hub,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source; tests use it to pin the clock.
func (p *Processor) WithClock(now func() time.Time) *Processor {
	p.now = now
	return p
}

// Settle writes the winner's notification (carrying the final price) and a
// loss notification for every other bidder. An empty bid set is a no-op.
//
// Failures are isolated per recipient: one failed write never blocks the
// rest. The returned error aggregates persistence failures only; the caller
// records it on the job as FAILED so an operator can reprocess.
func (p *Processor) Settle(auction models.Auction, bids []models.Bid) error {
	if len(bids) == 0 {
		utils.Info("settlement: no bids, nothing to notify", map[string]any{"auction_id": auction.AuctionID})
		return nil
	}

	ranked := append([]models.Bid(nil), bids...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if !ranked[i].Amount.Equal(ranked[j].Amount) {
			return ranked[i].Amount.GreaterThan(ranked[j].Amount)
		}
		return ranked[i].CreatedAt.Before(ranked[j].CreatedAt)
	})

	winner := ranked[0]
	var failed []error
	for i, bid := range ranked {
		n := models.Notification{
			NotificationID: utils.GenerateID(),
			UserID:         bid.BidderID,
			AuctionID:      auction.AuctionID,
			CreatedAt:      p.now(),
		}
		if i == 0 {
			price := winner.Amount
			n.Price = &price
		}

		saved, err := p.notifications.SaveNotification(n)
		if err != nil {
			failed = append(failed, fmt.Errorf("notify user %s: %w", bid.BidderID, err))
			utils.Error("settlement: failed to persist notification", map[string]any{
				"auction_id": auction.AuctionID,
				"user_id":    bid.BidderID,
				"error":      err.Error(),
			})
			continue
		}

		delivered := p.hub.Broadcast(saved.UserID, saved)
		utils.Info("settlement: notification written", map[string]any{
			"auction_id": auction.AuctionID,
			"user_id":    saved.UserID,
			"won":        saved.Won(),
			"sessions":   delivered,
		})
	}

	if len(failed) > 0 {
		return fmt.Errorf("settlement for auction %s: %w", auction.AuctionID, errors.Join(failed...))
	}
	return nil
}
