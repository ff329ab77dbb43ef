package server

import (
	"github.com/labstack/echo/v4"

	"github.com/hoplog/hoplog/pkg/auth"
)

// RegisterRoutes wires the action endpoints. The admin group carries the
// RequireAdmin gate once; no handler repeats the check.
func RegisterRoutes(e *echo.Echo, authManager *auth.Manager, submission *SubmissionServer, moderationSrv *ModerationServer, catalog *CatalogServer, reviews *ReviewServer) {
	e.Validator = NewValidator()
	e.Use(authManager.Authenticate())

	v1 := e.Group("/v1")

	// public reads
	v1.GET("/beers", catalog.ListApprovedBeers)
	v1.GET("/beers/:id", catalog.GetBeer)
	v1.GET("/beers/:id/reviews", reviews.ListReviews)
	v1.GET("/breweries", catalog.ListApprovedBreweries)
	v1.GET("/styles", catalog.ListApprovedStyles)
	v1.GET("/styles/:slug", catalog.GetStyleBySlug)
	v1.POST("/contacts", submission.SubmitContact)

	// authenticated submissions and reviews
	submissions := v1.Group("/submissions", authManager.RequireUser())
	submissions.POST("/beers", submission.SubmitBeer)
	submissions.POST("/styles", submission.SubmitStyleRequest)

	authed := v1.Group("", authManager.RequireUser())
	authed.POST("/reviews", reviews.CreateReview)
	authed.DELETE("/reviews/:id", reviews.DeleteReview)
	authed.POST("/beers/:id/favorite", reviews.ToggleFavorite)

	// admin console
	admin := v1.Group("/admin", authManager.RequireAdmin())

	admin.GET("/dashboard", moderationSrv.GetQueueCounts)
	admin.GET("/style-requests", moderationSrv.ListStyleRequests)
	admin.GET("/contacts", moderationSrv.ListContacts)
	admin.GET("/contacts/:id", moderationSrv.GetContact)
	admin.GET("/history/:entity/:id", moderationSrv.GetHistory)

	admin.POST("/beers/:id/approve", moderationSrv.ApproveBeer)
	admin.POST("/beers/:id/reject", moderationSrv.RejectBeer)
	admin.PUT("/beers/:id/status", moderationSrv.SetBeerStatus)
	admin.POST("/style-requests/:id/approve", moderationSrv.ApproveStyleRequest)
	admin.POST("/style-requests/:id/reject", moderationSrv.RejectStyleRequest)
	admin.PUT("/contacts/:id/status", moderationSrv.SetContactStatus)

	admin.GET("/beers", catalog.ListBeers)
	admin.GET("/breweries", catalog.ListBreweries)
	admin.GET("/styles", catalog.ListStyles)
	admin.POST("/beers", catalog.CreateBeer)
	admin.PUT("/beers/:id", catalog.UpdateBeer)
	admin.DELETE("/beers/:id", catalog.DeleteBeer)
	admin.POST("/breweries", catalog.CreateBrewery)
	admin.PUT("/breweries/:id", catalog.UpdateBrewery)
	admin.DELETE("/breweries/:id", catalog.DeleteBrewery)
	admin.POST("/styles", catalog.CreateStyle)
	admin.PUT("/styles/:id", catalog.UpdateStyle)
	admin.DELETE("/styles/:id", catalog.DeleteStyle)

	admin.GET("/lookup/beers", catalog.LookupBeers)
	admin.GET("/lookup/breweries", catalog.LookupBreweries)
	admin.POST("/uploads", catalog.PresignUpload)
}
