package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/daniilsolovey/media-portal/internal/display"
	"github.com/daniilsolovey/media-portal/internal/portal"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

const pingTimeout = 2 * time.Second

// Slider handles GET /api/v1/sliders/:name
// @Summary Get a slider frame
// @Description Loads one slider and returns its first frame. A failing backend yields an empty frame, not an error
// @Tags sliders
// @Produce json
// @Param name path string true "Slider name, e.g. main-news, birthdays, events-gallery"
// @Param locale query string false "Site locale for links (uz, kr)"
// @Success 200 {object} carousel.Frame
// @Failure 400,404 {object} map[string]string
// @Router /api/v1/sliders/{name} [get]
func (h *Handler) Slider(c echo.Context) error {
	var req SliderRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	if req.Locale == "" {
		req.Locale = portal.DefaultLocale
	}
	if !portal.IsLocale(req.Locale) {
		return h.handleError(c, errors.New(req.Locale), http.StatusBadRequest, "unknown locale")
	}

	slot, ok := display.LookupSlot(req.Name)
	if !ok {
		return h.handleError(c, display.ErrSliderNotFound, http.StatusNotFound, "slider not found")
	}

	engine := h.sliders.Build(slot, req.Locale)
	engine.Load(c.Request().Context())

	return c.JSON(http.StatusOK, engine.Frame())
}

// Health handles GET /health
// @Summary Health check
// @Description Reports the service status and whether the backend API answers
// @Tags health
// @Produce json
// @Success 200 {object} rest.Health
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	res := Health{Status: "ok", Backend: "ok"}
	if err := h.api.Ping(ctx); err != nil {
		h.log.Warn("backend ping failed", "error", err)
		res.Backend = "unreachable"
	}

	return c.JSON(http.StatusOK, res)
}

// SwaggerDoc handles GET /swagger/doc.json
func (h *Handler) SwaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "swagger doc not registered")
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(doc))
}
