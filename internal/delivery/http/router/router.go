// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vouch/internal/delivery/http/middleware"
	"vouch/internal/delivery/http/router/handler"
	"vouch/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CompanyHandler    *handler.CompanyHandler
	VideoHandler      *handler.VideoHandler
	ReviewHandler     *handler.ReviewHandler
	SubmissionHandler *handler.SubmissionHandler
	WidgetHandler     *handler.WidgetHandler
	AssistantHandler  *handler.AssistantHandler
	UploadHandler     *handler.UploadHandler
	AuthMiddleware    *middleware.AuthMiddleware
	TenantMiddleware  *middleware.TenantMiddleware
	Metrics           *metrics.Metrics
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
	p := r.params

	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", p.Metrics.Handler())

	// Public pages; /embed/* is the only framing-allowed surface.
	e.GET("/embed/:id", p.WidgetHandler.Embed)
	e.GET("/showcase/:id", p.WidgetHandler.Showcase)

	// Public JSON API
	publicGroup := e.Group("/api/public")
	{
		publicGroup.POST("/reviews", p.SubmissionHandler.SubmitReview)
		publicGroup.GET("/widget/:id", p.WidgetHandler.Projection)
		publicGroup.GET("/companies/:id", p.CompanyHandler.GetPublicCompany)
		publicGroup.POST("/videos/:id/view", p.VideoHandler.RecordView)
	}

	// Onboarding requires a valid token but, by definition, no tenant yet.
	e.POST("/api/onboarding", p.CompanyHandler.Onboard, p.AuthMiddleware.Authenticate)

	// Dashboard routes require authentication and a resolved tenant.
	apiGroup := e.Group("/api")
	apiGroup.Use(p.AuthMiddleware.Authenticate)
	apiGroup.Use(p.TenantMiddleware.RequireTenant)
	{
		apiGroup.GET("/company", p.CompanyHandler.GetCompany)
		apiGroup.PUT("/companies/:id", p.CompanyHandler.UpdateCompany)
		apiGroup.GET("/companies/:id/qrcode", p.CompanyHandler.SubmitQRCode)

		apiGroup.POST("/videos", p.VideoHandler.CreateVideo)
		apiGroup.GET("/videos", p.VideoHandler.ListVideos)
		apiGroup.PATCH("/videos/:id/status", p.VideoHandler.UpdateVideoStatus)
		apiGroup.PATCH("/videos/:id/featured", p.VideoHandler.UpdateVideoFeatured)

		apiGroup.POST("/reviews", p.ReviewHandler.CreateReview)
		apiGroup.GET("/reviews", p.ReviewHandler.ListReviews)
		apiGroup.PATCH("/reviews/:id/status", p.ReviewHandler.UpdateReviewStatus)
		apiGroup.PATCH("/reviews/:id/featured", p.ReviewHandler.UpdateReviewFeatured)
		apiGroup.DELETE("/reviews/:id", p.ReviewHandler.DeleteReview)
		apiGroup.GET("/stats", p.ReviewHandler.Stats)

		apiGroup.POST("/assistant/review", p.AssistantHandler.GenerateReview)
		apiGroup.POST("/uploads", p.UploadHandler.AuthorizeUpload)
	}
}
