package routes

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/currentlyhq/currently/internal/app/ports"
	"github.com/currentlyhq/currently/internal/app/services"
)

// BearerPrefix prefixes the internal API auth token.
const BearerPrefix = "Bearer "

// PinRoutes registers the internal pin persistence endpoints.
type PinRoutes struct {
	pins     *services.PinService
	apiToken string
	log      *slog.Logger
}

// NewPinRoutes constructs pin routes. When apiToken is set, requests must
// carry it as a bearer credential.
func NewPinRoutes(pins *services.PinService, apiToken string, log *slog.Logger) *PinRoutes {
	if log == nil {
		log = slog.Default()
	}
	return &PinRoutes{pins: pins, apiToken: strings.TrimSpace(apiToken), log: log}
}

// RegisterRoutes registers the pin API endpoints.
func (p *PinRoutes) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/pins", p.handleCreatePin)
	api.GET("/projects/:id/pins", p.handleListProjectPins)
}

type pinView struct {
	ID          string `json:"id"`
	ProjectID   int64  `json:"project_id"`
	UserID      int64  `json:"user_id"`
	ChannelID   string `json:"channel_id"`
	ChannelName string `json:"channel_name"`
	MessageTS   string `json:"message_ts"`
	Text        string `json:"text"`
	AuthorID    string `json:"author_id"`
	AuthorName  string `json:"author_name"`
	Permalink   string `json:"permalink"`
	CreatedAt   string `json:"created_at"`
}

func (p *PinRoutes) handleCreatePin(c echo.Context) error {
	if !p.authorized(c) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}

	var req ports.PinRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid pin payload"})
	}

	pin, err := p.pins.CreatePin(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPinRequest):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, services.ErrProjectNotFound), errors.Is(err, services.ErrProjectNotActive):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "project not found or not active"})
		case errors.Is(err, services.ErrNotProjectMember):
			return c.JSON(http.StatusForbidden, map[string]string{"error": "you are not a member of this project"})
		default:
			p.log.ErrorContext(c.Request().Context(), "Failed to create pin", "error", err, "project_id", req.ProjectID)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to save pin"})
		}
	}

	return c.JSON(http.StatusCreated, mapPinView(pin))
}

func (p *PinRoutes) handleListProjectPins(c echo.Context) error {
	if !p.authorized(c) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}

	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || projectID <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid project id"})
	}
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)

	pins, err := p.pins.ListProjectPins(c.Request().Context(), projectID, limit)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "project not found"})
		}
		p.log.ErrorContext(c.Request().Context(), "Failed to list pins", "error", err, "project_id", projectID)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to list pins"})
	}

	views := make([]pinView, 0, len(pins))
	for _, pin := range pins {
		views = append(views, mapPinView(pin))
	}
	return c.JSON(http.StatusOK, views)
}

func (p *PinRoutes) authorized(c echo.Context) bool {
	if p.apiToken == "" {
		return true
	}
	value := strings.TrimSpace(c.Request().Header.Get("Authorization"))
	if !strings.HasPrefix(value, BearerPrefix) {
		return false
	}
	return strings.TrimSpace(strings.TrimPrefix(value, BearerPrefix)) == p.apiToken
}

func mapPinView(pin ports.Pin) pinView {
	return pinView{
		ID:          pin.PublicID,
		ProjectID:   pin.ProjectID,
		UserID:      pin.UserID,
		ChannelID:   pin.ChannelID,
		ChannelName: pin.ChannelName,
		MessageTS:   pin.MessageTS,
		Text:        pin.Text,
		AuthorID:    pin.AuthorID,
		AuthorName:  pin.AuthorName,
		Permalink:   pin.Permalink,
		CreatedAt:   pin.CreatedAt,
	}
}
