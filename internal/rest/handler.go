package rest

import (
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/media-portal/internal/admin"
	"github.com/daniilsolovey/media-portal/internal/apiclient"
	"github.com/daniilsolovey/media-portal/internal/display"
	"github.com/daniilsolovey/media-portal/internal/portal"
	"github.com/daniilsolovey/media-portal/internal/session"
	"github.com/labstack/echo/v4"
)

const (
	homeNewsLimit     = 12
	categoryNewsLimit = 30
)

type Config struct {
	CSRFKey        string
	TrustedOrigins []string
	LoginRate      float64
	LoginBurst     int
}

// Handler serves the public site, the kiosk pages and the admin dashboard.
type Handler struct {
	portal   *portal.Manager
	api      *apiclient.Client
	sliders  *display.Sliders
	sessions *session.Store
	panels   []admin.Entry
	limiter  *loginLimiter
	cfg      Config
	log      *slog.Logger
}

func NewHandler(
	manager *portal.Manager,
	api *apiclient.Client,
	sliders *display.Sliders,
	sessions *session.Store,
	panels []admin.Entry,
	cfg Config,
	log *slog.Logger,
) *Handler {
	return &Handler{
		portal:   manager,
		api:      api,
		sliders:  sliders,
		sessions: sessions,
		panels:   panels,
		limiter:  newLoginLimiter(cfg.LoginRate, cfg.LoginBurst),
		cfg:      cfg,
		log:      log,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// render writes a page and logs template failures instead of leaking them
// to the visitor.
func (h *Handler) render(c echo.Context, status int, name string, data any) error {
	if err := c.Render(status, name, data); err != nil {
		h.log.Error("failed to render page", "page", name, "error", err)
		return c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
	return nil
}
