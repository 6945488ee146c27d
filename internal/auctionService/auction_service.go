package auction

import (
	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AuctionService manages auction lifecycle and keeps the settlement job for
// each auction armed against its current end time.
type AuctionService struct {
	repo repository.AuctionDB
	jobs repository.JobDB
	now  func() time.Time
}

// NewAuctionService creates a new AuctionService instance.
func NewAuctionService(repo repository.AuctionDB, jobs repository.JobDB) *AuctionService {
	return &AuctionService{
		repo: repo,
		jobs: jobs,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source; tests use it to pin the clock.
func (s *AuctionService) WithClock(now func() time.Time) *AuctionService {
	s.now = now
	return s
}

// CreateAuction validates and stores a new auction, then arms its settlement
// job at the end time.
func (s *AuctionService) CreateAuction(sellerID, title, description string, startingPrice decimal.Decimal, endTime time.Time) (models.Auction, error) {
	if sellerID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing seller ID", auctionerrors.ErrInvalidAuction)
	}
	if !startingPrice.IsPositive() {
		return models.Auction{}, fmt.Errorf("service: %w - non-positive starting price", auctionerrors.ErrInvalidAuction)
	}
	if !startingPrice.Equal(startingPrice.Round(2)) {
		return models.Auction{}, fmt.Errorf("service: %w - starting price has more than two decimal places", auctionerrors.ErrInvalidAuction)
	}
	if !endTime.After(s.now()) {
		return models.Auction{}, fmt.Errorf("service: %w - end time must be in the future", auctionerrors.ErrInvalidAuction)
	}

	auction := models.Auction{
		AuctionID:     utils.GenerateID(),
		SellerID:      sellerID,
		Title:         title,
		Description:   description,
		StartingPrice: startingPrice,
		EndTime:       endTime,
		CreatedAt:     s.now(),
	}
	if err := s.repo.CreateAuction(auction); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction: %w", err)
	}
	if _, err := s.jobs.UpsertJob(auction.AuctionID, auction.EndTime); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to arm settlement job for auction %s: %w", auction.AuctionID, err)
	}

	utils.Info("auction created", map[string]any{
		"auction_id": auction.AuctionID,
		"seller_id":  sellerID,
		"end_time":   endTime.UTC().Format(time.RFC3339),
	})
	return auction, nil
}

// RescheduleAuction moves an auction's end time and re-arms the settlement
// job to PENDING at the new time. Auctions with existing bids may still be
// edited; a moved end time simply re-opens or shortens the bidding window.
func (s *AuctionService) RescheduleAuction(auctionID string, endTime time.Time) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidAuction)
	}
	if !endTime.After(s.now()) {
		return models.Auction{}, fmt.Errorf("service: %w - end time must be in the future", auctionerrors.ErrInvalidAuction)
	}

	auction, err := s.repo.RescheduleAuction(auctionID, endTime)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to reschedule auction %s: %w", auctionID, err)
	}
	if _, err := s.jobs.UpsertJob(auctionID, endTime); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to re-arm settlement job for auction %s: %w", auctionID, err)
	}

	utils.Info("auction rescheduled", map[string]any{
		"auction_id": auctionID,
		"end_time":   endTime.UTC().Format(time.RFC3339),
	})
	return auction, nil
}

// DeleteAuction cancels the settlement job (if it has not fired yet) and
// removes the auction. Deleting after settlement is plain cleanup and never
// resurrects notifications.
func (s *AuctionService) DeleteAuction(auctionID string) error {
	if auctionID == "" {
		return fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidAuction)
	}

	if err := s.jobs.CancelJob(auctionID); err != nil {
		return fmt.Errorf("service: failed to cancel settlement job for auction %s: %w", auctionID, err)
	}
	if err := s.repo.DeleteAuction(auctionID); err != nil {
		return fmt.Errorf("service: failed to delete auction %s: %w", auctionID, err)
	}

	utils.Info("auction deleted", map[string]any{"auction_id": auctionID})
	return nil
}

// ListAuctions returns every auction, newest first.
func (s *AuctionService) ListAuctions() ([]models.Auction, error) {
	auctions, err := s.repo.ListAuctions()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return auctions, nil
}

// GetAuction returns a single auction.
func (s *AuctionService) GetAuction(auctionID string) (models.Auction, error) {
	if auctionID == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidAuction)
	}
	auction, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return auction, nil
}
