package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-collectibles/internal/api/middleware"
	"github.com/feral-file/ff-collectibles/internal/metrics"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authenticator *middleware.Authenticator) {
	// Health and metrics (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	v1 := router.Group("/api/v1")
	{
		// A full fetch cycle is expensive, so it requires authentication
		v1.GET("/collectibles", middleware.Auth(authenticator), handler.ListCollectibles)

		// Wallet endpoints (public read access)
		v1.GET("/wallets/:wallet/collectibles", handler.GetWalletCollectibles)
		v1.GET("/wallets/:wallet/collections", handler.GetWalletCollections)
		v1.GET("/wallets/:wallet/nfts", handler.GetWalletNFTs)

		// Asset endpoints (public read access)
		v1.GET("/assets/:contract/:token_id", handler.GetAsset)
		v1.GET("/assets/:contract/:token_id/owner", handler.GetAssetOwner)
		v1.GET("/collections/:contract/:token_id", handler.GetCollection)
	}
}
