package notification

import (
	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/models"
	"auction-engine/internal/repository"
	"fmt"
)

// Service serves stored notifications: the catch-up query a reconnecting
// client runs, and the bulk clear. Live delivery happens through the Hub; the
// store is the durable source of truth.
type Service struct {
	repo            repository.NotificationDB
	defaultPageSize int
}

// NewService creates a new Service instance.
func NewService(repo repository.NotificationDB, defaultPageSize int) *Service {
	return &Service{repo: repo, defaultPageSize: defaultPageSize}
}

// Recent returns a page of the user's notifications, most recent first. A
// non-positive limit falls back to the configured page size.
func (s *Service) Recent(userID string, limit, offset int) ([]models.Notification, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidBid)
	}
	if limit <= 0 {
		limit = s.defaultPageSize
	}
	if offset < 0 {
		offset = 0
	}

	out, err := s.repo.NotificationsByUser(userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get notifications for user %s: %w", userID, err)
	}
	return out, nil
}

// ClearAll hard-deletes every notification for the user and returns how many
// were removed.
func (s *Service) ClearAll(userID string) (int, error) {
	if userID == "" {
		return 0, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrInvalidBid)
	}
	count, err := s.repo.DeleteNotificationsByUser(userID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to clear notifications for user %s: %w", userID, err)
	}
	return count, nil
}
