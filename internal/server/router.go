package server

import (
	auction "auction-engine/internal/auctionService"
	bidding "auction-engine/internal/biddingService"
	"auction-engine/internal/notification"
	"auction-engine/internal/scheduler"
	handler "auction-engine/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(
	biddingService *bidding.BiddingService,
	auctionService *auction.AuctionService,
	notificationService *notification.Service,
	sweeper *scheduler.Sweeper,
	hub *notification.Hub,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := handler.NewBiddingHandler(biddingService)
	auctionHandler := handler.NewAuctionHandler(auctionService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	schedulerHandler := handler.NewSchedulerHandler(sweeper)

	bids := router.Group("/bids")
	{
		bids.POST("", biddingHandler.PlaceBidHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.PATCH("/:auction_id", auctionHandler.RescheduleAuctionHandler)
		auctions.DELETE("/:auction_id", auctionHandler.DeleteAuctionHandler)
		auctions.GET("/:auction_id/bids", biddingHandler.GetBidsByAuctionHandler)
		auctions.GET("/:auction_id/price", biddingHandler.GetCurrentPriceHandler)
		auctions.GET("/:auction_id/winning", biddingHandler.GetWinningBidHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/auctions", biddingHandler.GetAuctionsByUserHandler)
		users.GET("/:user_id/notifications", notificationHandler.ListNotificationsHandler)
		users.DELETE("/:user_id/notifications", notificationHandler.ClearNotificationsHandler)
	}

	jobs := router.Group("/jobs")
	{
		jobs.POST("/:job_id/reprocess", schedulerHandler.ReprocessJobHandler)
	}

	router.GET("/ws/users/:user_id/notifications", NotificationStreamHandler(hub, notificationService))

	return router
}
