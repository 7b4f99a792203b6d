package rest

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/daniilsolovey/media-portal/internal/carousel"
	"github.com/daniilsolovey/media-portal/internal/display"
	"github.com/daniilsolovey/media-portal/internal/portal"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

// RootRedirect handles GET /
func (h *Handler) RootRedirect(c echo.Context) error {
	locale := portal.NegotiateLocale(c.Request().Header.Get("Accept-Language"))
	return c.Redirect(http.StatusFound, "/"+locale+"/")
}

// locale validates the :locale path parameter.
func (h *Handler) locale(c echo.Context) (string, bool) {
	l := c.Param("locale")
	return l, portal.IsLocale(l)
}

func (h *Handler) newPage(c echo.Context, locale, title string, categories []portal.Category) page {
	return page{
		Title:      title,
		Locale:     locale,
		Locales:    portal.Locales,
		Path:       c.Request().URL.Path,
		Categories: categories,
	}
}

// categories loads the navigation menu. The menu is optional on every page.
func (h *Handler) categories(ctx context.Context) []portal.Category {
	list, err := h.portal.Categories(ctx)
	if err != nil {
		h.log.Error("failed to load categories", "error", err)
		return nil
	}
	return list
}

// Home handles GET /:locale/
// Every block loads concurrently and falls back to its empty state on error.
func (h *Handler) Home(c echo.Context) error {
	locale, ok := h.locale(c)
	if !ok {
		return h.notFound(c)
	}

	ctx := c.Request().Context()
	data := homePage{}

	var g errgroup.Group
	g.Go(func() error {
		data.Categories = h.categories(ctx)
		return nil
	})
	g.Go(func() error {
		news, err := h.portal.LatestNews(ctx, homeNewsLimit)
		if err != nil {
			h.log.Error("failed to load latest news", "error", err)
		}
		data.News = news
		return nil
	})
	g.Go(func() error {
		birthdays, err := h.portal.TodayBirthdays(ctx)
		if err != nil {
			h.log.Error("failed to load birthdays", "error", err)
		}
		data.Birthdays = birthdays
		return nil
	})
	g.Go(func() error {
		data.Sliders = h.layoutFrames(ctx, display.LayoutHome, locale)
		return nil
	})
	_ = g.Wait()

	data.page = h.newPage(c, locale, "Bosh sahifa", data.Categories)
	return h.render(c, http.StatusOK, "home", data)
}

// layoutFrames loads every slider of a layout once and returns their first
// frames. The page cycles the slides itself.
func (h *Handler) layoutFrames(ctx context.Context, name, locale string) []carousel.Frame {
	layout, ok := display.LookupLayout(name)
	if !ok {
		return nil
	}

	engines := h.sliders.BuildLayout(layout, locale)
	frames := make([]carousel.Frame, len(engines))

	var wg sync.WaitGroup
	for i, e := range engines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.Load(ctx)
			frames[i] = e.Frame()
		}()
	}
	wg.Wait()

	return frames
}

// News handles GET /:locale/news/:slug
func (h *Handler) News(c echo.Context) error {
	locale, ok := h.locale(c)
	if !ok {
		return h.notFound(c)
	}

	ctx := c.Request().Context()
	data := newsPage{}

	news, err := h.portal.NewsBySlug(ctx, c.Param("slug"))
	switch {
	case errors.Is(err, portal.ErrNotFound):
		return h.notFound(c)
	case err != nil:
		h.log.Error("failed to load news", "slug", c.Param("slug"), "error", err)
	default:
		data.News = news
	}

	title := "Yangilik"
	if news != nil {
		title = news.Title
	}
	data.page = h.newPage(c, locale, title, h.categories(ctx))
	return h.render(c, http.StatusOK, "news", data)
}

// Category handles GET /:locale/category/:slug
func (h *Handler) Category(c echo.Context) error {
	locale, ok := h.locale(c)
	if !ok {
		return h.notFound(c)
	}

	ctx := c.Request().Context()
	data := categoryPage{}

	category, err := h.portal.CategoryWithNews(ctx, c.Param("slug"), categoryNewsLimit)
	switch {
	case errors.Is(err, portal.ErrNotFound):
		return h.notFound(c)
	case err != nil:
		h.log.Error("failed to load category", "slug", c.Param("slug"), "error", err)
	default:
		data.Category = category
	}

	title := "Kategoriya"
	if category != nil {
		title = category.Title
	}
	data.page = h.newPage(c, locale, title, h.categories(ctx))
	return h.render(c, http.StatusOK, "category", data)
}

// Display handles GET /:locale/display
// The page mounts a board over JSON-RPC and polls its frames.
func (h *Handler) Display(c echo.Context) error {
	locale, ok := h.locale(c)
	if !ok {
		return h.notFound(c)
	}

	layout := c.QueryParam("layout")
	if layout == "" {
		layout = display.LayoutDisplay
	}
	if _, ok := display.LookupLayout(layout); !ok {
		return h.notFound(c)
	}

	data := displayPage{
		page:   h.newPage(c, locale, "Displey", nil),
		Layout: layout,
	}
	return h.render(c, http.StatusOK, "display", data)
}

func (h *Handler) notFound(c echo.Context) error {
	locale := c.Param("locale")
	if !portal.IsLocale(locale) {
		locale = portal.DefaultLocale
	}
	return h.render(c, http.StatusNotFound, "not_found", h.newPage(c, locale, "Topilmadi", nil))
}
