package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrJobNotFound):
		return http.StatusNotFound, "job not found"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrInvalidAuction):
		return http.StatusBadRequest, "invalid auction details"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrAuctionEnded):
		return http.StatusConflict, "auction has ended"
	case errors.Is(err, auctionerrors.ErrSelfBid):
		return http.StatusConflict, "seller cannot bid on own auction"
	case errors.Is(err, auctionerrors.ErrConflict):
		return http.StatusConflict, "concurrent update, retry with the current price"
	case errors.Is(err, auctionerrors.ErrJobNotFailed):
		return http.StatusConflict, "job is not in FAILED state"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusOK, "no bids found for auction"
	case errors.Is(err, auctionerrors.ErrUserNoBids):
		return http.StatusOK, "no auctions found for user"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RejectBid sends the rejection response for a failed placement. When the
// error carries the authoritative current price, it is included so the client
// can retry with a valid amount.
func RejectBid(c *gin.Context, err error) {
	status, message := MapErrorToHTTP(err)

	var rejected *auctionerrors.BidRejectedError
	if errors.As(err, &rejected) {
		c.JSON(status, gin.H{
			"status":        status,
			"message":       message,
			"error":         err.Error(),
			"current_price": rejected.CurrentPrice,
		})
		return
	}
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
}

// ToBidResponse converts a bid model into its wire shape.
func ToBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.BidID,
		AuctionID: bid.AuctionID,
		BidderID:  bid.BidderID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToAuctionResponse converts an auction model into its wire shape.
func ToAuctionResponse(a model.Auction) AuctionResponse {
	return AuctionResponse{
		AuctionID:     a.AuctionID,
		SellerID:      a.SellerID,
		Title:         a.Title,
		Description:   a.Description,
		StartingPrice: a.StartingPrice,
		EndTime:       a.EndTime.UTC().Format(time.RFC3339),
		CreatedAt:     a.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToNotificationResponse converts a notification model into its wire shape.
func ToNotificationResponse(n model.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		AuctionID:      n.AuctionID,
		Won:            n.Won(),
		Price:          n.Price,
		CreatedAt:      n.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToJobResponse converts a scheduled job into its wire shape.
func ToJobResponse(job model.ScheduledJob) JobResponse {
	resp := JobResponse{
		JobID:       job.JobID,
		AuctionID:   job.AuctionID,
		ScheduledAt: job.ScheduledAt.UTC().Format(time.RFC3339),
		Status:      string(job.Status),
		Error:       job.Error,
	}
	if job.ExecutedAt != nil {
		resp.ExecutedAt = job.ExecutedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
