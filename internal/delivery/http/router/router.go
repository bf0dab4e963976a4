// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"metroshelter/internal/delivery/http/middleware"
	"metroshelter/internal/delivery/http/router/handler"
	"metroshelter/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	PropertyHandler *handler.PropertyHandler
	ReviewHandler   *handler.ReviewHandler
	WishlistHandler *handler.WishlistHandler
	OfferHandler    *handler.OfferHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session token routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/token", r.params.AuthHandler.IssueToken)
		authGroup.POST("/logout", r.params.AuthHandler.Logout)
	}

	// User routes: signup is public, administration is admin-only
	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.params.UserHandler.CreateUser)
		userGroup.GET("", r.params.UserHandler.ListUsers,
			auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
		userGroup.GET("/:email", r.params.UserHandler.GetUser, auth.Authenticate)
		userGroup.DELETE("/:id", r.params.UserHandler.DeleteUser,
			auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
		userGroup.PATCH("/:id/role", r.params.UserHandler.SetRole,
			auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
		userGroup.PATCH("/:id/fraud", r.params.UserHandler.SetFraud,
			auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
	}

	// Property routes: browsing is public, mutation is role-gated
	propertyGroup := e.Group("/properties")
	{
		propertyGroup.GET("", r.params.PropertyHandler.ListProperties)
		propertyGroup.GET("/details/:id", r.params.PropertyHandler.GetProperty)
		propertyGroup.GET("/details/:id/reviews", r.params.ReviewHandler.ListPropertyReviews)
		propertyGroup.GET("/:email", r.params.PropertyHandler.ListOwnProperties,
			auth.Authenticate, auth.RequireRole(entity.RoleAgent))
		propertyGroup.POST("", r.params.PropertyHandler.CreateProperty,
			auth.Authenticate, auth.RequireRole(entity.RoleAgent), auth.RefuseFraudFlagged)
		propertyGroup.PATCH("/details/:id", r.params.PropertyHandler.UpdateProperty,
			auth.Authenticate, auth.RequireRole(entity.RoleAgent))
		propertyGroup.DELETE("/details/:id", r.params.PropertyHandler.DeleteProperty,
			auth.Authenticate, auth.RequireRole(entity.RoleAgent, entity.RoleAdmin))
		propertyGroup.PATCH("/details/:id/status", r.params.PropertyHandler.SetStatus,
			auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
		propertyGroup.PATCH("/details/:id/advertise", r.params.PropertyHandler.SetAdvertise,
			auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
	}

	// Review routes: the feed is public, writing requires a session
	reviewGroup := e.Group("/reviews")
	{
		reviewGroup.GET("", r.params.ReviewHandler.ListReviews)
		reviewGroup.POST("", r.params.ReviewHandler.AddReview, auth.Authenticate)
		reviewGroup.DELETE("/:id", r.params.ReviewHandler.DeleteReview, auth.Authenticate)
	}

	// Wishlist routes, all session-scoped
	wishlistGroup := e.Group("/wishlist", auth.Authenticate)
	{
		wishlistGroup.POST("", r.params.WishlistHandler.SaveEntry)
		wishlistGroup.GET("/:email", r.params.WishlistHandler.ListEntries)
		wishlistGroup.DELETE("/:id", r.params.WishlistHandler.DeleteEntry)
	}

	// Offer routes: buyers manage their own offers, dashboards are role-gated
	offerGroup := e.Group("/offers", auth.Authenticate)
	{
		offerGroup.POST("", r.params.OfferHandler.CreateOffer)
		offerGroup.GET("", r.params.OfferHandler.ListAllOffers,
			auth.RequireRole(entity.RoleAgent, entity.RoleAdmin))
		offerGroup.GET("/:email", r.params.OfferHandler.ListBuyerOffers)
		offerGroup.PATCH("/:id/status", r.params.OfferHandler.SetStatus,
			auth.RequireRole(entity.RoleAgent, entity.RoleAdmin))
		offerGroup.PATCH("/:id/pay", r.params.OfferHandler.Pay)
	}
}
