package settlement

import (
	model "auction-engine/internal/models"
	"auction-engine/internal/repository"
	"auction-engine/utils"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var fixedNow = time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// noopHub counts broadcasts without any live sessions.
type noopHub struct {
	calls map[string]int
}

func newNoopHub() *noopHub { return &noopHub{calls: make(map[string]int)} }

func (h *noopHub) Broadcast(userID string, _ model.Notification) int {
	h.calls[userID]++
	return 0
}

func testAuction() model.Auction {
	return model.Auction{
		AuctionID:     "a1",
		SellerID:      "seller1",
		StartingPrice: d("100"),
		EndTime:       fixedNow.Add(-time.Minute),
	}
}

func bid(bidderID string, amount decimal.Decimal, at time.Time) model.Bid {
	return model.Bid{
		BidID:     utils.GenerateID(),
		AuctionID: "a1",
		BidderID:  bidderID,
		Amount:    amount,
		CreatedAt: at,
	}
}

// The highest bidder wins at their bid amount; every other bidder loses
func TestSettle_WinnerAndLosers(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo(utils.GenerateID)
	hub := newNoopHub()
	p := NewProcessor(repo, hub).WithClock(fixedClock)

	bids := []model.Bid{
		bid("user1", d("105"), fixedNow.Add(-3*time.Minute)),
		bid("user2", d("120"), fixedNow.Add(-2*time.Minute)),
		bid("user3", d("115"), fixedNow.Add(-time.Minute)),
	}
	require.NoError(t, p.Settle(testAuction(), bids))

	winner, err := repo.NotificationsByUser("user2", 0, 0)
	require.NoError(t, err)
	require.Len(t, winner, 1)
	require.True(t, winner[0].Won())
	require.True(t, winner[0].Price.Equal(d("120")))

	for _, loser := range []string{"user1", "user3"} {
		out, err := repo.NotificationsByUser(loser, 0, 0)
		require.NoError(t, err)
		require.Len(t, out, 1)
		require.False(t, out[0].Won())
		require.Nil(t, out[0].Price)
	}

	// one push per bidder
	require.Equal(t, 1, hub.calls["user1"])
	require.Equal(t, 1, hub.calls["user2"])
	require.Equal(t, 1, hub.calls["user3"])
}

// An auction with no bids produces no notifications
func TestSettle_NoBids(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo(utils.GenerateID)
	hub := newNoopHub()
	p := NewProcessor(repo, hub).WithClock(fixedClock)

	require.NoError(t, p.Settle(testAuction(), nil))
	require.Empty(t, hub.calls)
}

// Equal amounts: the earlier bid wins
func TestSettle_TieBrokenByTimestamp(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo(utils.GenerateID)
	p := NewProcessor(repo, newNoopHub()).WithClock(fixedClock)

	bids := []model.Bid{
		bid("late", d("120"), fixedNow.Add(-time.Minute)),
		bid("early", d("120"), fixedNow.Add(-2*time.Minute)),
	}
	require.NoError(t, p.Settle(testAuction(), bids))

	earlyOut, err := repo.NotificationsByUser("early", 0, 0)
	require.NoError(t, err)
	require.True(t, earlyOut[0].Won())

	lateOut, err := repo.NotificationsByUser("late", 0, 0)
	require.NoError(t, err)
	require.False(t, lateOut[0].Won())
}

// Re-running a settlement converges on the same notification set instead of
// duplicating rows
func TestSettle_Idempotent(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo(utils.GenerateID)
	p := NewProcessor(repo, newNoopHub()).WithClock(fixedClock)

	bids := []model.Bid{
		bid("user1", d("105"), fixedNow.Add(-2*time.Minute)),
		bid("user2", d("120"), fixedNow.Add(-time.Minute)),
	}
	require.NoError(t, p.Settle(testAuction(), bids))
	require.NoError(t, p.Settle(testAuction(), bids))

	for _, user := range []string{"user1", "user2"} {
		out, err := repo.NotificationsByUser(user, 0, 0)
		require.NoError(t, err)
		require.Len(t, out, 1)
	}
}

// A failed write for one recipient surfaces as an error but never blocks the
// writes for the others
func TestSettle_PartialFailureIsolated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockDB := repository.NewMockNotificationDB(ctrl)
	hub := newNoopHub()

	boom := errors.New("connection reset")
	mockDB.EXPECT().SaveNotification(gomock.Any()).DoAndReturn(
		func(n model.Notification) (model.Notification, error) {
			if n.UserID == "user2" {
				return model.Notification{}, boom
			}
			return n, nil
		}).Times(3)

	p := NewProcessor(mockDB, hub).WithClock(fixedClock)

	bids := []model.Bid{
		bid("user1", d("130"), fixedNow.Add(-3*time.Minute)),
		bid("user2", d("120"), fixedNow.Add(-2*time.Minute)),
		bid("user3", d("110"), fixedNow.Add(-time.Minute)),
	}
	err := p.Settle(testAuction(), bids)
	require.ErrorIs(t, err, boom)

	// the failing recipient never reached the hub; the others did
	require.Equal(t, 1, hub.calls["user1"])
	require.Equal(t, 0, hub.calls["user2"])
	require.Equal(t, 1, hub.calls["user3"])
}

// A winner notification supersedes an earlier loss for the same pair, so a
// resettled auction flips outcomes cleanly
func TestSettle_SupersedesPriorOutcome(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo(utils.GenerateID)
	p := NewProcessor(repo, newNoopHub()).WithClock(fixedClock)

	first := []model.Bid{
		bid("user1", d("105"), fixedNow.Add(-3*time.Minute)),
		bid("user2", d("120"), fixedNow.Add(-2*time.Minute)),
	}
	require.NoError(t, p.Settle(testAuction(), first))

	// user1 outbids after a reschedule reopened the window
	second := []model.Bid{
		bid("user1", d("150"), fixedNow.Add(-time.Minute)),
		bid("user2", d("120"), fixedNow.Add(-2*time.Minute)),
	}
	require.NoError(t, p.Settle(testAuction(), second))

	out, err := repo.NotificationsByUser("user1", 0, 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.True(t, out[0].Won())
	require.True(t, out[0].Price.Equal(d("150")))

	out, err = repo.NotificationsByUser("user2", 0, 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.False(t, out[0].Won())
}
