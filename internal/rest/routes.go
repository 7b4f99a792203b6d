package rest

import (
	"log/slog"
	"net/http"
	"time"

	"filippo.io/csrf/gorilla"
	"github.com/labstack/echo/v4"
)

const (
	apiV1Prefix = "/api/v1"

	sliderPath  = apiV1Prefix + "/sliders/:name"
	healthPath  = "/health"
	swaggerPath = "/swagger/doc.json"
	rpcPath     = "/rpc"
)

// RegisterRoutes registers all routes on e. rpc serves the JSON-RPC
// endpoint.
func (h *Handler) RegisterRoutes(e *echo.Echo, rpc http.Handler) {
	e.Use(h.loggingMiddleware)

	e.GET(healthPath, h.Health)
	e.GET(swaggerPath, h.SwaggerDoc)
	e.GET(sliderPath, h.Slider)
	e.Any(rpcPath, echo.WrapHandler(rpc))

	h.registerAdminRoutes(e)
	h.registerSiteRoutes(e)
}

func (h *Handler) registerSiteRoutes(e *echo.Echo) {
	e.GET("/", h.RootRedirect)
	e.GET("/:locale", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, "/"+c.Param("locale")+"/")
	})
	e.GET("/:locale/", h.Home)
	e.GET("/:locale/news/:slug", h.News)
	e.GET("/:locale/category/:slug", h.Category)
	e.GET("/:locale/display", h.Display)
}

func (h *Handler) registerAdminRoutes(e *echo.Echo) {
	g := e.Group("/admin",
		echo.WrapMiddleware(h.csrfMiddleware()),
		echo.WrapMiddleware(h.sessions.LoadAndSave),
	)

	g.GET("/login", h.LoginForm)
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout)

	auth := g.Group("", h.requireAdmin)
	auth.GET("", h.Dashboard)
	auth.GET("/:entity", h.PanelList)
	auth.POST("/:entity", h.PanelCreate)
	auth.GET("/:entity/new", h.PanelNew)
	auth.GET("/:entity/:id/edit", h.PanelEdit)
	auth.POST("/:entity/:id", h.PanelUpdate)
	auth.GET("/:entity/:id/delete", h.PanelConfirmDelete)
	auth.POST("/:entity/:id/delete", h.PanelDelete)
	auth.POST("/:entity/:id/toggle", h.PanelToggle)
}

// csrfMiddleware rejects cross-origin unsafe requests using Fetch metadata
// headers.
func (h *Handler) csrfMiddleware() func(http.Handler) http.Handler {
	opts := []csrf.Option{
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reason := "unknown"
			if err := csrf.FailureReason(r); err != nil {
				reason = err.Error()
			}
			h.log.Warn("CSRF validation failed",
				"reason", reason,
				"method", r.Method,
				"path", r.URL.Path,
				"origin", r.Header.Get("Origin"),
			)
			http.Error(w, "Forbidden - CSRF validation failed", http.StatusForbidden)
		})),
	}
	if len(h.cfg.TrustedOrigins) > 0 {
		opts = append(opts, csrf.TrustedOrigins(h.cfg.TrustedOrigins))
	}

	return csrf.Protect([]byte(h.cfg.CSRFKey), opts...)
}

func (h *Handler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		level := slog.LevelInfo
		if c.Response().Status >= http.StatusInternalServerError {
			level = slog.LevelError
		}

		h.log.Log(req.Context(), level, "HTTP request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.RealIP(),
		)
		return nil
	}
}
