package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a participant in the marketplace
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Auction represents a listing with a closing time. Title and description are
// opaque payload; the current price is derived from the bids, never stored.
type Auction struct {
	AuctionID     string          `json:"auction_id"`
	SellerID      string          `json:"seller_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	EndTime       time.Time       `json:"end_time"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Bid represents a user's bid on an auction. At most one Bid exists per
// (auction, bidder) pair; a repeat bid overwrites amount and timestamp.
type Bid struct {
	BidID     string          `json:"bid_id"`
	AuctionID string          `json:"auction_id"`
	BidderID  string          `json:"bidder_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// JobStatus is the lifecycle state of a settlement job.
type JobStatus string

const (
	JobPending   JobStatus = "PENDING"
	JobExecuted  JobStatus = "EXECUTED"
	JobFailed    JobStatus = "FAILED"
	JobCancelled JobStatus = "CANCELLED"
)

// ScheduledJob is the durable record arming settlement for one auction.
// There is exactly one job per auction; rescheduling re-arms it to PENDING.
type ScheduledJob struct {
	JobID       string     `json:"job_id"`
	AuctionID   string     `json:"auction_id"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	Status      JobStatus  `json:"status"`
	ExecutedAt  *time.Time `json:"executed_at,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// Notification is a settlement outcome for one user on one auction.
// Price nil means the user lost; non-nil carries the winning amount.
// At most one live Notification exists per (user, auction) pair.
type Notification struct {
	NotificationID string           `json:"notification_id"`
	UserID         string           `json:"user_id"`
	AuctionID      string           `json:"auction_id"`
	Price          *decimal.Decimal `json:"price"`
	CreatedAt      time.Time        `json:"created_at"`
}

// Won reports whether the notification carries a winning price.
func (n Notification) Won() bool {
	return n.Price != nil
}

// CurrentPrice derives the auction's price: the maximum bid amount,
// or the starting price when no bids exist.
func CurrentPrice(auction Auction, bids []Bid) decimal.Decimal {
	price := auction.StartingPrice
	for _, b := range bids {
		if b.Amount.GreaterThan(price) {
			price = b.Amount
		}
	}
	return price
}

// WinningBid selects the highest bid; ties are broken by the earliest
// timestamp so winner selection is deterministic. ok is false when the
// bid set is empty.
func WinningBid(bids []Bid) (Bid, bool) {
	if len(bids) == 0 {
		return Bid{}, false
	}
	winning := bids[0]
	for _, b := range bids[1:] {
		if b.Amount.GreaterThan(winning.Amount) ||
			(b.Amount.Equal(winning.Amount) && b.CreatedAt.Before(winning.CreatedAt)) {
			winning = b
		}
	}
	return winning, true
}
