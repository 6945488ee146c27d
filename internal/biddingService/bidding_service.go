package bidding

import (
	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BiddingService defines the business logic for placing and reading bids.
type BiddingService struct {
	repo         repository.AuctionDB
	minIncrement decimal.Decimal
	now          func() time.Time
}

// NewBiddingService creates a new BiddingService instance. minIncrement is
// the smallest amount a bid must exceed the current price by.
func NewBiddingService(repo repository.AuctionDB, minIncrement decimal.Decimal) *BiddingService {
	return &BiddingService{
		repo:         repo,
		minIncrement: minIncrement,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source; tests use it to pin the clock.
func (s *BiddingService) WithClock(now func() time.Time) *BiddingService {
	s.now = now
	return s
}

// PlaceBid validates and transactionally records a user's bid on an auction.
//
// The pre-check outside the transaction rejects obviously stale requests
// cheaply; the authoritative decision re-reads the auction and its bids
// inside the placement transaction, so under concurrent bidders only bids
// valid against the true price at commit time succeed. Rejections carry the
// fresh current price so the caller can retry.
func (s *BiddingService) PlaceBid(auctionID, bidderID string, amount decimal.Decimal) (models.Bid, error) {
	if err := validateBidInput(auctionID, bidderID, amount); err != nil {
		return models.Bid{}, err
	}

	// fast pre-check against a possibly stale snapshot
	auction, bids, err := s.repo.GetAuctionWithBids(auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to read auction %s: %w", auctionID, err)
	}
	if err := s.admissible(auction, bids, bidderID, amount); err != nil {
		return models.Bid{}, fmt.Errorf("service: %w", err)
	}

	bid, err := s.repo.PlaceBid(auctionID, func(fresh models.Auction, freshBids []models.Bid) (models.Bid, error) {
		if err := s.admissible(fresh, freshBids, bidderID, amount); err != nil {
			return models.Bid{}, err
		}
		return models.Bid{
			BidID:     utils.GenerateID(),
			AuctionID: auctionID,
			BidderID:  bidderID,
			Amount:    amount,
			CreatedAt: s.now(),
		}, nil
	})
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to place bid on auction %s by user %s: %w", auctionID, bidderID, err)
	}

	utils.Info("bid placed", map[string]any{
		"auction_id": auctionID,
		"bidder_id":  bidderID,
		"amount":     amount.StringFixed(2),
	})
	return bid, nil
}

// validateBidInput checks the request shape: non-empty IDs, positive amount,
// at most two decimal places.
func validateBidInput(auctionID, bidderID string, amount decimal.Decimal) error {
	if auctionID == "" || bidderID == "" {
		return fmt.Errorf("service: %w - missing auctionID or bidderID", auctionerrors.ErrInvalidBid)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidBid)
	}
	if !amount.Equal(amount.Round(2)) {
		return fmt.Errorf("service: %w - amount has more than two decimal places", auctionerrors.ErrInvalidBid)
	}
	return nil
}

// admissible applies the business rules against the given auction snapshot.
// Every rejection carries the current price derived from that snapshot.
func (s *BiddingService) admissible(auction models.Auction, bids []models.Bid, bidderID string, amount decimal.Decimal) error {
	price := models.CurrentPrice(auction, bids)

	if bidderID == auction.SellerID {
		return auctionerrors.NewBidRejected(auctionerrors.ErrSelfBid, price)
	}
	if !auction.EndTime.After(s.now()) {
		return auctionerrors.NewBidRejected(auctionerrors.ErrAuctionEnded, price)
	}
	if amount.LessThan(price.Add(s.minIncrement)) {
		return auctionerrors.NewBidRejected(auctionerrors.ErrBidTooLow, price)
	}
	return nil
}

// CurrentPrice returns the auction's derived price: the maximum bid amount,
// or the starting price if no bids exist.
func (s *BiddingService) CurrentPrice(auctionID string) (decimal.Decimal, error) {
	if auctionID == "" {
		return decimal.Decimal{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}
	auction, bids, err := s.repo.GetAuctionWithBids(auctionID)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("service: failed to read auction %s: %w", auctionID, err)
	}
	return models.CurrentPrice(auction, bids), nil
}

// GetBidsForAuction returns all bids for a specific auction.
func (s *BiddingService) GetBidsForAuction(auctionID string) ([]models.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}
	_, bids, err := s.repo.GetAuctionWithBids(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// GetWinningBid returns the highest bid for a specific auction, ties broken
// by the earliest timestamp.
func (s *BiddingService) GetWinningBid(auctionID string) (models.Bid, error) {
	if auctionID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidBid)
	}
	_, bids, err := s.repo.GetAuctionWithBids(auctionID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get winning bid for auction %s: %w", auctionID, err)
	}
	winning, ok := models.WinningBid(bids)
	if !ok {
		return models.Bid{}, fmt.Errorf("service: winning bid for auction %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	return winning, nil
}

// GetAuctionsByUser returns all auctions a user has placed bids on.
func (s *BiddingService) GetAuctionsByUser(userID string) ([]models.Auction, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidBid)
	}
	auctions, err := s.repo.AuctionsByBidder(userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get auctions for user %s: %w", userID, err)
	}
	return auctions, nil
}
