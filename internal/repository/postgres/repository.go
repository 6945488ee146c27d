// Package postgres implements the repository interfaces on GORM/Postgres.
// Bid placement takes a FOR UPDATE lock on the auction row so the validation
// read and the upsert commit as one isolated unit per auction.
package postgres

import (
	"errors"
	"fmt"
	"time"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repo implements repository.AuctionDB, repository.JobDB and
// repository.NotificationDB on a Postgres database.
type Repo struct {
	db    *gorm.DB
	idGen func() string
}

// NewRepo wraps an open GORM handle. idGen supplies identifiers for rows the
// repository mints itself (job IDs).
func NewRepo(db *gorm.DB, idGen func() string) *Repo {
	return &Repo{db: db, idGen: idGen}
}

// Migrate creates or updates the engine's tables.
func (r *Repo) Migrate() error {
	return r.db.AutoMigrate(&auctionRow{}, &bidRow{}, &jobRow{}, &notificationRow{})
}

// translate maps driver-level failures onto the engine's error taxonomy.
// Serialization failures and deadlocks are retriable conflicts.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return fmt.Errorf("%s: %w", op, auctionerrors.ErrConflict)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// CreateAuction stores a new auction row.
func (r *Repo) CreateAuction(auction model.Auction) error {
	row := toAuctionRow(auction)
	if err := r.db.Create(&row).Error; err != nil {
		return translate(fmt.Sprintf("create auction %s", auction.AuctionID), err)
	}
	return nil
}

// GetAuction returns a single auction row.
func (r *Repo) GetAuction(auctionID string) (model.Auction, error) {
	var row auctionRow
	err := r.db.First(&row, "auction_id = ?", auctionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Auction{}, translate(fmt.Sprintf("get auction %s", auctionID), err)
	}
	return row.toModel(), nil
}

// GetAuctionWithBids returns an auction together with its bids.
func (r *Repo) GetAuctionWithBids(auctionID string) (model.Auction, []model.Bid, error) {
	auction, err := r.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, nil, err
	}
	var rows []bidRow
	if err := r.db.Where("auction_id = ?", auctionID).Order("created_at asc").Find(&rows).Error; err != nil {
		return model.Auction{}, nil, translate(fmt.Sprintf("get bids for auction %s", auctionID), err)
	}
	return auction, toBids(rows), nil
}

// RescheduleAuction moves an auction's end time.
func (r *Repo) RescheduleAuction(auctionID string, endTime time.Time) (model.Auction, error) {
	res := r.db.Model(&auctionRow{}).Where("auction_id = ?", auctionID).Update("end_time", endTime)
	if res.Error != nil {
		return model.Auction{}, translate(fmt.Sprintf("reschedule auction %s", auctionID), res.Error)
	}
	if res.RowsAffected == 0 {
		return model.Auction{}, fmt.Errorf("reschedule auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return r.GetAuction(auctionID)
}

// DeleteAuction removes the auction and its bids.
func (r *Repo) DeleteAuction(auctionID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&auctionRow{}, "auction_id = ?", auctionID)
		if res.Error != nil {
			return translate(fmt.Sprintf("delete auction %s", auctionID), res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("delete auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
		}
		if err := tx.Delete(&bidRow{}, "auction_id = ?", auctionID).Error; err != nil {
			return translate(fmt.Sprintf("delete bids for auction %s", auctionID), err)
		}
		return nil
	})
}

// PlaceBid runs the transactional read-decide-upsert cycle. The FOR UPDATE
// lock on the auction row serializes placements per auction, so decide always
// validates against the price as of commit time.
func (r *Repo) PlaceBid(auctionID string, decide repository.BidDecision) (model.Bid, error) {
	var placed model.Bid
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var aRow auctionRow
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&aRow, "auction_id = ?", auctionID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("place bid on auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
		}
		if err != nil {
			return err
		}

		var bRows []bidRow
		if err := tx.Where("auction_id = ?", auctionID).Find(&bRows).Error; err != nil {
			return err
		}

		bid, err := decide(aRow.toModel(), toBids(bRows))
		if err != nil {
			return err
		}

		row := toBidRow(bid)
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "auction_id"}, {Name: "bidder_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "created_at"}),
		}).Create(&row).Error; err != nil {
			return err
		}

		// re-read for the canonical row identity when the upsert replaced an
		// existing bid
		var final bidRow
		if err := tx.First(&final, "auction_id = ? AND bidder_id = ?", auctionID, bid.BidderID).Error; err != nil {
			return err
		}
		placed = final.toModel()
		return nil
	})
	if err != nil {
		if errors.Is(err, auctionerrors.ErrAuctionNotFound) || isRejection(err) {
			return model.Bid{}, err
		}
		return model.Bid{}, translate(fmt.Sprintf("place bid on auction %s", auctionID), err)
	}
	return placed, nil
}

// isRejection reports whether err is a business-rule outcome from the decide
// callback rather than a storage failure.
func isRejection(err error) bool {
	var rejected *auctionerrors.BidRejectedError
	return errors.As(err, &rejected)
}

// AuctionsByBidder returns all auctions a user has bid on.
func (r *Repo) AuctionsByBidder(bidderID string) ([]model.Auction, error) {
	var rows []auctionRow
	err := r.db.
		Where("auction_id IN (?)", r.db.Model(&bidRow{}).Select("auction_id").Where("bidder_id = ?", bidderID)).
		Order("auction_id asc").
		Find(&rows).Error
	if err != nil {
		return nil, translate(fmt.Sprintf("get auctions for user %s", bidderID), err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("get auctions for user %s: %w", bidderID, auctionerrors.ErrUserNoBids)
	}
	auctions := make([]model.Auction, 0, len(rows))
	for _, row := range rows {
		auctions = append(auctions, row.toModel())
	}
	return auctions, nil
}

// ListAuctions returns every auction, newest first.
func (r *Repo) ListAuctions() ([]model.Auction, error) {
	var rows []auctionRow
	if err := r.db.Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, translate("list auctions", err)
	}
	auctions := make([]model.Auction, 0, len(rows))
	for _, row := range rows {
		auctions = append(auctions, row.toModel())
	}
	return auctions, nil
}

// UpsertJob arms the settlement job for an auction, always resetting it to
// PENDING with a cleared outcome.
func (r *Repo) UpsertJob(auctionID string, scheduledAt time.Time) (model.ScheduledJob, error) {
	row := jobRow{
		JobID:       r.idGen(),
		AuctionID:   auctionID,
		ScheduledAt: scheduledAt,
		Status:      string(model.JobPending),
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "auction_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"scheduled_at": scheduledAt,
			"status":       string(model.JobPending),
			"executed_at":  nil,
			"error":        "",
		}),
	}).Create(&row).Error
	if err != nil {
		return model.ScheduledJob{}, translate(fmt.Sprintf("upsert job for auction %s", auctionID), err)
	}

	var final jobRow
	if err := r.db.First(&final, "auction_id = ?", auctionID).Error; err != nil {
		return model.ScheduledJob{}, translate(fmt.Sprintf("upsert job for auction %s", auctionID), err)
	}
	return final.toModel(), nil
}

// CancelJob marks a still-pending job for the auction CANCELLED.
func (r *Repo) CancelJob(auctionID string) error {
	err := r.db.Model(&jobRow{}).
		Where("auction_id = ? AND status = ?", auctionID, string(model.JobPending)).
		Update("status", string(model.JobCancelled)).Error
	if err != nil {
		return translate(fmt.Sprintf("cancel job for auction %s", auctionID), err)
	}
	return nil
}

// GetJob returns a single job row.
func (r *Repo) GetJob(jobID string) (model.ScheduledJob, error) {
	var row jobRow
	err := r.db.First(&row, "job_id = ?", jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ScheduledJob{}, fmt.Errorf("get job %s: %w", jobID, auctionerrors.ErrJobNotFound)
	}
	if err != nil {
		return model.ScheduledJob{}, translate(fmt.Sprintf("get job %s", jobID), err)
	}
	return row.toModel(), nil
}

// DuePendingJobs returns due PENDING jobs oldest first.
func (r *Repo) DuePendingJobs(now time.Time, limit int) ([]model.ScheduledJob, error) {
	q := r.db.
		Where("status = ? AND scheduled_at <= ?", string(model.JobPending), now).
		Order("scheduled_at asc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []jobRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, translate("query due jobs", err)
	}
	jobs := make([]model.ScheduledJob, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, row.toModel())
	}
	return jobs, nil
}

// TransitionJob performs the conditional status transition as a single
// UPDATE ... WHERE status = from, so concurrent sweepers cannot both win.
func (r *Repo) TransitionJob(jobID string, from, to model.JobStatus, executedAt time.Time, errMsg string) (bool, error) {
	updates := map[string]interface{}{
		"status": string(to),
		"error":  errMsg,
	}
	if executedAt.IsZero() {
		updates["executed_at"] = nil
	} else {
		updates["executed_at"] = executedAt
	}
	res := r.db.Model(&jobRow{}).
		Where("job_id = ? AND status = ?", jobID, string(from)).
		Updates(updates)
	if res.Error != nil {
		return false, translate(fmt.Sprintf("transition job %s", jobID), res.Error)
	}
	return res.RowsAffected == 1, nil
}

// SaveNotification creates or replaces the notification for the
// (user, auction) pair. The superseded row keeps its identity; price and
// timestamp are overwritten.
func (r *Repo) SaveNotification(n model.Notification) (model.Notification, error) {
	row := toNotificationRow(n)
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "auction_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"price", "created_at"}),
	}).Create(&row).Error
	if err != nil {
		return model.Notification{}, translate(fmt.Sprintf("save notification for user %s", n.UserID), err)
	}

	var final notificationRow
	if err := r.db.First(&final, "user_id = ? AND auction_id = ?", n.UserID, n.AuctionID).Error; err != nil {
		return model.Notification{}, translate(fmt.Sprintf("save notification for user %s", n.UserID), err)
	}
	return final.toModel(), nil
}

// NotificationsByUser pages a user's notifications, most recent first.
func (r *Repo) NotificationsByUser(userID string, limit, offset int) ([]model.Notification, error) {
	q := r.db.Where("user_id = ?", userID).Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	var rows []notificationRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, translate(fmt.Sprintf("query notifications for user %s", userID), err)
	}
	out := make([]model.Notification, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}

// DeleteNotificationsByUser hard-deletes all of a user's notifications.
func (r *Repo) DeleteNotificationsByUser(userID string) (int, error) {
	res := r.db.Delete(&notificationRow{}, "user_id = ?", userID)
	if res.Error != nil {
		return 0, translate(fmt.Sprintf("delete notifications for user %s", userID), res.Error)
	}
	return int(res.RowsAffected), nil
}
