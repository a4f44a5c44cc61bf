package server

import (
	"github.com/labstack/echo/v4"

	"example.com/tripstar/backend/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	authHandler *handlers.AuthHandler,
	planHandler *handlers.PlanHandler,
	usageHandler *handlers.UsageHandler,
	itineraryHandler *handlers.ItineraryHandler,
	interestsHandler *handlers.InterestsHandler,
	flightsHandler *handlers.FlightsHandler,
	renderHandler *handlers.RenderHandler,
	exportHandler *handlers.ExportHandler,
	refDataHandler *handlers.RefDataHandler,
	notificationHandler *handlers.NotificationHandler,
	adminHandler *handlers.AdminHandler,
	authMiddleware echo.MiddlewareFunc,
	adminMiddleware echo.MiddlewareFunc,
	authRateLimiter echo.MiddlewareFunc,
	aiRateLimiter echo.MiddlewareFunc,
) {
	e.GET("/health", handlers.Health)

	api := e.Group("/api/v1")

	authGroup := api.Group("/auth", authRateLimiter)
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/refresh", authHandler.Refresh)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/logout", authHandler.Logout)
	authGroup.GET("/check", authHandler.Check)
	authGroup.GET("/me", authHandler.Me, authMiddleware)

	api.GET("/airports", refDataHandler.Airports)
	api.GET("/currencies", refDataHandler.Currencies)

	account := api.Group("", authMiddleware)
	account.POST("/update-plan", planHandler.UpdatePlan)
	account.GET("/get-usage", usageHandler.GetUsage)

	itineraries := api.Group("/itineraries", authMiddleware)
	itineraries.GET("", itineraryHandler.List)
	itineraries.GET("/:id", itineraryHandler.Get)
	itineraries.DELETE("/:id", itineraryHandler.Delete)

	generate := api.Group("", authMiddleware, aiRateLimiter)
	generate.POST("/generate-itinerary", itineraryHandler.Generate)
	generate.POST("/get-ai-interests", interestsHandler.Suggest)

	tools := api.Group("", authMiddleware)
	tools.POST("/search-flights", flightsHandler.Search)
	tools.POST("/render-itinerary", renderHandler.Itinerary)
	tools.POST("/render-flights", renderHandler.Flights)
	tools.POST("/export-pdf", exportHandler.PDF)

	notifications := api.Group("/notifications", authMiddleware)
	notifications.GET("/stream", notificationHandler.Stream)

	admin := api.Group("/admin", authMiddleware, adminMiddleware)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/ai-requests", adminHandler.ListAIRequests)
	admin.GET("/usage", adminHandler.Usage)
}
