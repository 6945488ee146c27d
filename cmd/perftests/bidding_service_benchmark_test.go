package perftests

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	bidding "auction-engine/internal/biddingService"
	model "auction-engine/internal/models"
	repository "auction-engine/internal/repository"
	"auction-engine/utils"

	"github.com/shopspring/decimal"
)

var benchEnd = time.Now().UTC().Add(24 * time.Hour)

func seedAuction(repo *repository.MemoryRepo, auctionID string) {
	_ = repo.CreateAuction(model.Auction{
		AuctionID:     auctionID,
		SellerID:      "bench_seller",
		Title:         "Benchmark Auction " + auctionID,
		Description:   "Independent benchmark auction",
		StartingPrice: decimal.NewFromInt(50),
		EndTime:       benchEnd,
		CreatedAt:     time.Now().UTC(),
	})
}

// Benchmark 1: PlaceBid - Isolated Auctions (Low Contention - Micro Benchmark)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	repo := repository.NewMemoryRepo(utils.GenerateID)
	svc := bidding.NewBiddingService(repo, decimal.NewFromInt(1))

	for i := 0; i < b.N; i++ {
		seedAuction(repo, fmt.Sprintf("auction_%d", i))
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		bidderID := fmt.Sprintf("user_%d", i)
		auctionID := fmt.Sprintf("auction_%d", i)
		bidAmount := decimal.NewFromInt(int64(51 + rand.Intn(100)))
		if _, err := svc.PlaceBid(auctionID, bidderID, bidAmount); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid - Shared Auction (High Contention - Concurrency Benchmark)

func Benchmark_PlaceBid_ConcurrentSharedAuction(b *testing.B) {
	repo := repository.NewMemoryRepo(utils.GenerateID)
	svc := bidding.NewBiddingService(repo, decimal.NewFromInt(1))

	seedAuction(repo, "shared_auction_1")

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 50

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			bidderID := fmt.Sprintf("user_parallel_%d", rnd.Int())

			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			_, _ = svc.PlaceBid("shared_auction_1", bidderID, decimal.NewFromInt(nextBid))
		}
	})
}

// Benchmark 3: GetWinningBid - Single - Threaded (Low Contention)
func Benchmark_GetWinningBid_SingleThreaded(b *testing.B) {
	repo := repository.NewMemoryRepo(utils.GenerateID)
	svc := bidding.NewBiddingService(repo, decimal.NewFromInt(1))

	for i := 0; i < b.N; i++ {
		auctionID := fmt.Sprintf("auction_%d", i)
		seedAuction(repo, auctionID)

		for j := 0; j < 10; j++ {
			bidderID := fmt.Sprintf("user_%d_%d", i, j)
			bidAmount := decimal.NewFromInt(int64(51 + j*10))
			_, _ = svc.PlaceBid(auctionID, bidderID, bidAmount)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		auctionID := fmt.Sprintf("auction_%d", i)
		if _, err := svc.GetWinningBid(auctionID); err != nil {
			b.Fatalf("failed to get winning bid: %v", err)
		}
	}
}

// Benchmark 4: GetWinningBid - Concurrent (High Contention)
func Benchmark_GetWinningBid_ConcurrentSharedAuction(b *testing.B) {
	repo := repository.NewMemoryRepo(utils.GenerateID)
	svc := bidding.NewBiddingService(repo, decimal.NewFromInt(1))

	seedAuction(repo, "shared_auction_1")

	for j := 0; j < 100; j++ {
		bidderID := fmt.Sprintf("user_%d", j)
		bidAmount := decimal.NewFromInt(int64(51 + j))
		_, _ = svc.PlaceBid("shared_auction_1", bidderID, bidAmount)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var counter int64

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.GetWinningBid("shared_auction_1"); err != nil {
				b.Fatalf("failed to get winning bid: %v", err)
			}
			atomic.AddInt64(&counter, 1)
		}
	})
}

// Benchmark 5: Mixed Workload (Readers + Writers concurrently)
func Benchmark_MixedWorkload_SharedAuction(b *testing.B) {
	repo := repository.NewMemoryRepo(utils.GenerateID)
	svc := bidding.NewBiddingService(repo, decimal.NewFromInt(1))

	seedAuction(repo, "shared_auction_1")

	for j := 0; j < 50; j++ {
		bidderID := fmt.Sprintf("user_seed_%d", j)
		bidAmount := decimal.NewFromInt(int64(51 + j*2))
		_, _ = svc.PlaceBid("shared_auction_1", bidderID, bidAmount)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 150
	var counter int64

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			opType := rnd.Intn(10)
			switch {
			case opType < 3:
				// Writer: Place a new bid
				bidderID := fmt.Sprintf("user_writer_%d", rnd.Int())
				nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
				_, _ = svc.PlaceBid("shared_auction_1", bidderID, decimal.NewFromInt(nextBid))
			default:
				// Reader: Get winning bid
				_, _ = svc.GetWinningBid("shared_auction_1")
			}
			atomic.AddInt64(&counter, 1)
		}
	})
}
