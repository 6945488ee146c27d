package postgres

import (
	"time"

	model "auction-engine/internal/models"

	"github.com/shopspring/decimal"
)

// Row types map the domain models onto Postgres tables. They stay private to
// this package; converters keep GORM tags out of the domain.

type auctionRow struct {
	AuctionID     string          `gorm:"column:auction_id;primaryKey;size:64"`
	SellerID      string          `gorm:"column:seller_id;size:64;not null;index"`
	Title         string          `gorm:"column:title;type:text"`
	Description   string          `gorm:"column:description;type:text"`
	StartingPrice decimal.Decimal `gorm:"column:starting_price;type:numeric(20,2);not null"`
	EndTime       time.Time       `gorm:"column:end_time;not null;index"`
	CreatedAt     time.Time       `gorm:"column:created_at;not null"`
}

func (auctionRow) TableName() string { return "auctions" }

type bidRow struct {
	BidID     string          `gorm:"column:bid_id;primaryKey;size:64"`
	AuctionID string          `gorm:"column:auction_id;size:64;not null;uniqueIndex:idx_bids_auction_bidder"`
	BidderID  string          `gorm:"column:bidder_id;size:64;not null;uniqueIndex:idx_bids_auction_bidder"`
	Amount    decimal.Decimal `gorm:"column:amount;type:numeric(20,2);not null"`
	CreatedAt time.Time       `gorm:"column:created_at;not null"`
}

func (bidRow) TableName() string { return "bids" }

type jobRow struct {
	JobID       string     `gorm:"column:job_id;primaryKey;size:64"`
	AuctionID   string     `gorm:"column:auction_id;size:64;not null;uniqueIndex:idx_jobs_auction"`
	ScheduledAt time.Time  `gorm:"column:scheduled_at;not null;index:idx_jobs_due"`
	Status      string     `gorm:"column:status;size:16;not null;index:idx_jobs_due"`
	ExecutedAt  *time.Time `gorm:"column:executed_at"`
	Error       string     `gorm:"column:error;type:text"`
}

func (jobRow) TableName() string { return "scheduled_jobs" }

type notificationRow struct {
	NotificationID string           `gorm:"column:notification_id;primaryKey;size:64"`
	UserID         string           `gorm:"column:user_id;size:64;not null;uniqueIndex:idx_notifications_user_auction;index:idx_notifications_user_recent"`
	AuctionID      string           `gorm:"column:auction_id;size:64;not null;uniqueIndex:idx_notifications_user_auction"`
	Price          *decimal.Decimal `gorm:"column:price;type:numeric(20,2)"`
	CreatedAt      time.Time        `gorm:"column:created_at;not null;index:idx_notifications_user_recent"`
}

func (notificationRow) TableName() string { return "notifications" }

func toAuctionRow(a model.Auction) auctionRow {
	return auctionRow{
		AuctionID:     a.AuctionID,
		SellerID:      a.SellerID,
		Title:         a.Title,
		Description:   a.Description,
		StartingPrice: a.StartingPrice,
		EndTime:       a.EndTime,
		CreatedAt:     a.CreatedAt,
	}
}

func (r auctionRow) toModel() model.Auction {
	return model.Auction{
		AuctionID:     r.AuctionID,
		SellerID:      r.SellerID,
		Title:         r.Title,
		Description:   r.Description,
		StartingPrice: r.StartingPrice,
		EndTime:       r.EndTime,
		CreatedAt:     r.CreatedAt,
	}
}

func toBidRow(b model.Bid) bidRow {
	return bidRow{
		BidID:     b.BidID,
		AuctionID: b.AuctionID,
		BidderID:  b.BidderID,
		Amount:    b.Amount,
		CreatedAt: b.CreatedAt,
	}
}

func (r bidRow) toModel() model.Bid {
	return model.Bid{
		BidID:     r.BidID,
		AuctionID: r.AuctionID,
		BidderID:  r.BidderID,
		Amount:    r.Amount,
		CreatedAt: r.CreatedAt,
	}
}

func toBids(rows []bidRow) []model.Bid {
	bids := make([]model.Bid, 0, len(rows))
	for _, r := range rows {
		bids = append(bids, r.toModel())
	}
	return bids
}

func (r jobRow) toModel() model.ScheduledJob {
	return model.ScheduledJob{
		JobID:       r.JobID,
		AuctionID:   r.AuctionID,
		ScheduledAt: r.ScheduledAt,
		Status:      model.JobStatus(r.Status),
		ExecutedAt:  r.ExecutedAt,
		Error:       r.Error,
	}
}

func toNotificationRow(n model.Notification) notificationRow {
	return notificationRow{
		NotificationID: n.NotificationID,
		UserID:         n.UserID,
		AuctionID:      n.AuctionID,
		Price:          n.Price,
		CreatedAt:      n.CreatedAt,
	}
}

func (r notificationRow) toModel() model.Notification {
	return model.Notification{
		NotificationID: r.NotificationID,
		UserID:         r.UserID,
		AuctionID:      r.AuctionID,
		Price:          r.Price,
		CreatedAt:      r.CreatedAt,
	}
}
