package server

import (
	"card-auction/internal/notifier"
	handler "card-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(engine handler.AuctionEngineInterface, catalog handler.CatalogServiceInterface, registry *notifier.LiveRegistry) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(engine)
	catalogHandler := handler.NewCatalogHandler(catalog)
	wsHandler := handler.NewWSHandler(registry)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/mine", auctionHandler.MyAuctionsHandler)
		auctions.GET("/winning", auctionHandler.WinningAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.PUT("/:auction_id", auctionHandler.UpdateAuctionHandler)
		auctions.DELETE("/:auction_id", auctionHandler.DeleteAuctionHandler)
		auctions.POST("/:auction_id/bids", auctionHandler.PlaceBidHandler)
		auctions.PUT("/:auction_id/rating", auctionHandler.RateSellerHandler)
	}

	cards := router.Group("/cards")
	{
		cards.POST("", catalogHandler.SubmitCardHandler)
		cards.GET("/mine", catalogHandler.MyCardsHandler)
		cards.PUT("/:card_id", catalogHandler.UpdateCardHandler)
		cards.PUT("/:card_id/validated", catalogHandler.ValidateCardHandler)
		cards.DELETE("/:card_id", catalogHandler.DeleteCardHandler)
	}

	profiles := router.Group("/profiles")
	{
		profiles.POST("", catalogHandler.RegisterProfileHandler)
		profiles.GET("/:username", catalogHandler.GetProfileHandler)
	}

	notifications := router.Group("/notifications")
	{
		notifications.GET("", catalogHandler.MyNotificationsHandler)
		notifications.PUT("/mark-read", catalogHandler.MarkReadHandler)
	}

	router.GET("/ws/:email", wsHandler.ConnectHandler)

	return router
}
