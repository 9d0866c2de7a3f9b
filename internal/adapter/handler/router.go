package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/meetpilot-team/meetpilot/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg          *config.Config
	meetings     *MeetingHandler
	actionItems  *ActionItemHandler
	aiController *AIController
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetings *MeetingHandler, actionItems *ActionItemHandler, aiController *AIController) *Router {
	return &Router{
		cfg:          cfg,
		meetings:     meetings,
		actionItems:  actionItems,
		aiController: aiController,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupMeetingRoutes(v1)
	rt.setupActionItemRoutes(v1)
	rt.setupAIRoutes(v1)
}

// setupMeetingRoutes configures meeting CRUD routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")
	meetings.GET("", rt.meetings.List)
	meetings.POST("", rt.meetings.Create)
	meetings.GET("/:id", rt.meetings.Get)
	meetings.PUT("/:id", rt.meetings.Update)
	meetings.DELETE("/:id", rt.meetings.Delete)
}

// setupActionItemRoutes configures action item routes
func (rt *Router) setupActionItemRoutes(g *echo.Group) {
	items := g.Group("/action-items")
	items.GET("", rt.actionItems.List)
	items.POST("", rt.actionItems.Create)
	items.PUT("/:id", rt.actionItems.Update)
	items.DELETE("/:id", rt.actionItems.Delete)
}

// setupAIRoutes configures analysis and transcription routes
func (rt *Router) setupAIRoutes(g *echo.Group) {
	g.POST("/summarize", rt.aiController.Summarize)
	g.POST("/transcribe", rt.aiController.Transcribe)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
		"store":       rt.cfg.Store.Backend,
	})
}
