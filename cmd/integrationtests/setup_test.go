package integrationtests

import (
	auction "auction-engine/internal/auctionService"
	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/notification"
	"auction-engine/internal/repository"
	"auction-engine/internal/scheduler"
	"auction-engine/internal/server"
	"auction-engine/internal/settlement"
	"auction-engine/utils"
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// testClock is a mutable time source shared by every component under test, so
// a test can end an auction by advancing time instead of sleeping.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(start time.Time) *testClock {
	return &testClock{now: start}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// testEnv wires the full engine against the in-memory repository. Sweeps run
// only when the test calls Sweep, which keeps settlement timing deterministic.
type testEnv struct {
	router  *gin.Engine
	sweeper *scheduler.Sweeper
	hub     *notification.Hub
	clock   *testClock
}

func (e *testEnv) Sweep(t *testing.T) int {
	t.Helper()
	return e.sweeper.RunSweep(context.Background())
}

// SetupTestEnv initializes the router with the in-memory repository for
// integration testing.
func SetupTestEnv(start time.Time) *testEnv {
	gin.SetMode(gin.TestMode)

	clock := newTestClock(start)
	repo := repository.NewMemoryRepo(utils.GenerateID)
	hub := notification.NewHub()

	processor := settlement.NewProcessor(repo, hub).WithClock(clock.Now)
	sweeper := scheduler.NewSweeper(repo, repo, processor, 100).WithClock(clock.Now)

	biddingService := bidding.NewBiddingService(repo, decimal.NewFromInt(1)).WithClock(clock.Now)
	auctionService := auction.NewAuctionService(repo, repo).WithClock(clock.Now)
	notificationService := notification.NewService(repo, 50)

	router := server.SetupRouter(biddingService, auctionService, notificationService, sweeper, hub)
	return &testEnv{router: router, sweeper: sweeper, hub: hub, clock: clock}
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the response envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}
