package helpers

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	AuctionID string          `json:"auction_id" binding:"required"`
	BidderID  string          `json:"bidder_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

type CreateAuctionRequest struct {
	SellerID      string          `json:"seller_id" binding:"required"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	StartingPrice decimal.Decimal `json:"starting_price" binding:"required"`
	EndTime       time.Time       `json:"end_time" binding:"required"`
}

type RescheduleAuctionRequest struct {
	EndTime time.Time `json:"end_time" binding:"required"`
}

type BidResponse struct {
	BidID     string          `json:"bid_id"`
	AuctionID string          `json:"auction_id"`
	BidderID  string          `json:"bidder_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt string          `json:"created_at"`
}

type AuctionResponse struct {
	AuctionID     string          `json:"auction_id"`
	SellerID      string          `json:"seller_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	EndTime       string          `json:"end_time"`
	CreatedAt     string          `json:"created_at"`
}

type NotificationResponse struct {
	NotificationID string           `json:"notification_id"`
	AuctionID      string           `json:"auction_id"`
	Won            bool             `json:"won"`
	Price          *decimal.Decimal `json:"price"`
	CreatedAt      string           `json:"created_at"`
}

type JobResponse struct {
	JobID       string `json:"job_id"`
	AuctionID   string `json:"auction_id"`
	ScheduledAt string `json:"scheduled_at"`
	Status      string `json:"status"`
	ExecutedAt  string `json:"executed_at,omitempty"`
	Error       string `json:"error,omitempty"`
}
