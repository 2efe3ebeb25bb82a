// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"chamabook/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MemberHandler      *handler.MemberHandler
	TransactionHandler *handler.TransactionHandler
	LoanHandler        *handler.LoanHandler
	PlanHandler        *handler.PlanHandler
	AdminHandler       *handler.AdminHandler
	SettingsHandler    *handler.SettingsHandler
	FAQHandler         *handler.FAQHandler
	NoteHandler        *handler.NoteHandler
	ActivityHandler    *handler.ActivityHandler
	DashboardHandler   *handler.DashboardHandler
	ReportHandler      *handler.ReportHandler
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
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		api.GET("/members", r.params.MemberHandler.List)
		api.GET("/members/:id", r.params.MemberHandler.Get)
		api.POST("/members", r.params.MemberHandler.Create)
		api.PATCH("/members/:id", r.params.MemberHandler.Update)
		api.DELETE("/members/:id", r.params.MemberHandler.Delete)

		api.GET("/transactions", r.params.TransactionHandler.List)
		api.POST("/transactions", r.params.TransactionHandler.Create)

		api.GET("/loans", r.params.LoanHandler.List)
		api.POST("/loans", r.params.LoanHandler.Create)
		api.PATCH("/loans/:id", r.params.LoanHandler.Update)

		api.GET("/personal-plan", r.params.PlanHandler.Get)
		api.POST("/personal-plan", r.params.PlanHandler.Create)
		api.PATCH("/personal-plan/:id", r.params.PlanHandler.Update)

		api.GET("/admins", r.params.AdminHandler.List)
		api.POST("/admins", r.params.AdminHandler.Create)
		api.PATCH("/admins/:id", r.params.AdminHandler.Update)
		api.DELETE("/admins/:id", r.params.AdminHandler.Delete)

		api.GET("/settings", r.params.SettingsHandler.Get)
		api.POST("/settings", r.params.SettingsHandler.Create)
		api.PATCH("/settings/:id", r.params.SettingsHandler.Update)

		api.GET("/faqs", r.params.FAQHandler.List)
		api.POST("/faqs", r.params.FAQHandler.Create)
		api.PATCH("/faqs/:id", r.params.FAQHandler.Update)
		api.DELETE("/faqs/:id", r.params.FAQHandler.Delete)

		api.GET("/notes", r.params.NoteHandler.Get)
		api.POST("/notes", r.params.NoteHandler.Create)
		api.PATCH("/notes/:id", r.params.NoteHandler.Update)

		api.GET("/activities", r.params.ActivityHandler.List)
		api.GET("/dashboard/stats", r.params.DashboardHandler.Stats)
		api.GET("/reports/export", r.params.ReportHandler.Export)
	}
}
