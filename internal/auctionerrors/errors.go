package auctionerrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrJobNotFound     = errors.New("scheduled job not found")
	ErrNoBids          = errors.New("no bids found for auction")
	ErrUserNoBids      = errors.New("user has not placed any bids")
)

// business logic errors
var (
	ErrInvalidBid     = errors.New("invalid bid")
	ErrInvalidAuction = errors.New("invalid auction")
	ErrBidTooLow      = errors.New("bid amount too low")
	ErrAuctionEnded   = errors.New("auction has ended")
	ErrSelfBid        = errors.New("seller cannot bid on own auction")
	ErrJobNotFailed   = errors.New("job is not in FAILED state")
)

// ErrConflict marks a lost transactional race. The request is retriable
// against the fresh price.
var ErrConflict = errors.New("conflicting concurrent update")

// BidRejectedError wraps a business rejection together with the authoritative
// current price at decision time, so callers can retry with a valid amount.
type BidRejectedError struct {
	Reason       error
	CurrentPrice decimal.Decimal
}

func (e *BidRejectedError) Error() string {
	return fmt.Sprintf("%v (current price %s)", e.Reason, e.CurrentPrice.StringFixed(2))
}

func (e *BidRejectedError) Unwrap() error {
	return e.Reason
}

// NewBidRejected builds a rejection carrying the current price.
// errors.Is still matches the underlying sentinel.
func NewBidRejected(reason error, currentPrice decimal.Decimal) error {
	return &BidRejectedError{Reason: reason, CurrentPrice: currentPrice}
}
