package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/currentlyhq/currently/internal/slackbridge"
)

// SlackRoutes registers the Slack interaction endpoint.
type SlackRoutes struct {
	handler *slackbridge.Handler
}

// NewSlackRoutes constructs Slack routes.
func NewSlackRoutes(handler *slackbridge.Handler) *SlackRoutes {
	return &SlackRoutes{handler: handler}
}

// RegisterRoutes registers the Slack endpoints.
func (s *SlackRoutes) RegisterRoutes(e *echo.Echo) {
	e.POST("/slack/interactions", s.handleInteraction)
	e.GET("/healthz", handleHealth)
}

func (s *SlackRoutes) handleInteraction(c echo.Context) error {
	return s.handler.Handle(c.Response(), c.Request())
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
