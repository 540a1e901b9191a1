package routes

import (
	"net/http"

	coreport "github.com/Akachukwuu/earnquiza/internal/domain/port/core"
	"github.com/Akachukwuu/earnquiza/internal/infrastructure/adapter/api/handler"
	"github.com/Akachukwuu/earnquiza/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	depositHandler *handler.DepositHandler,
	userHandler *handler.UserHandler,
	withdrawHandler *handler.WithdrawHandler,
	apiToken string,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Payment verification is called from browser checkout flows, so it
	// carries its own bearer token requirement
	router.POST("/verify-payment", middleware.RequireBearerToken(apiToken), depositHandler.VerifyPayment)

	userRoutes := router.Group("/users")
	{
		// GET /users/:userId
		userRoutes.GET("/:userId", userHandler.GetProfile)

		// POST /users/:userId/claim
		userRoutes.POST("/:userId/claim", userHandler.Claim)

		// POST /users/:userId/withdrawals
		userRoutes.POST("/:userId/withdrawals", withdrawHandler.Request)
	}

	router.GET("/leaderboard", userHandler.Leaderboard)

	adminRoutes := router.Group("/admin", middleware.RequireBearerToken(apiToken))
	{
		// GET /admin/withdrawals
		adminRoutes.GET("/withdrawals", withdrawHandler.AdminList)

		// PATCH /admin/withdrawals/:id
		adminRoutes.PATCH("/withdrawals/:id", withdrawHandler.AdminReview)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Authorization", "Content-Type", "X-Admin-ID", "X-Request-ID"}
	router.Use(cors.New(corsConfig))
}
