package rest

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/daniilsolovey/media-portal/internal/admin"
	"github.com/daniilsolovey/media-portal/internal/apiclient"
	"github.com/daniilsolovey/media-portal/internal/photo"
	"github.com/daniilsolovey/media-portal/internal/session"
	"github.com/labstack/echo/v4"
)

const (
	loginPath     = "/admin/login"
	dashboardPath = "/admin"

	msgLoginRequired = "Login va parolni kiriting"
	msgTooManyLogins = "Juda ko'p urinish. Birozdan so'ng qayta urinib ko'ring"
	msgBadUpload     = "Fayl yuklanmadi"
	msgReselectFiles = "Tanlangan fayllar saqlanmadi, ularni qayta tanlang"

	// noticeKey holds a note shown above a re-rendered form.
	noticeKey = "panel_notice"
)

func (h *Handler) adminPage(c echo.Context, title, active string) adminPage {
	a, _ := h.sessions.Admin(c.Request().Context())
	return adminPage{
		Title:  title,
		Admin:  a,
		Panels: h.panels,
		Active: active,
	}
}

// requireAdmin sends visitors without a session token to the login page.
func (h *Handler) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if h.sessions.Token(c.Request().Context()) == "" {
			return c.Redirect(http.StatusSeeOther, loginPath)
		}
		return next(c)
	}
}

// LoginForm handles GET /admin/login
func (h *Handler) LoginForm(c echo.Context) error {
	if h.sessions.Token(c.Request().Context()) != "" {
		return c.Redirect(http.StatusSeeOther, dashboardPath)
	}
	return h.render(c, http.StatusOK, "admin_login", loginPage{adminPage: h.adminPage(c, "Kirish", "")})
}

// Login handles POST /admin/login
func (h *Handler) Login(c echo.Context) error {
	data := loginPage{
		adminPage: h.adminPage(c, "Kirish", ""),
		Username:  strings.TrimSpace(c.FormValue("username")),
	}
	password := c.FormValue("password")

	if !h.limiter.Allow(c.RealIP()) {
		h.log.Warn("login rate limited", "ip", c.RealIP())
		data.Error = msgTooManyLogins
		return h.render(c, http.StatusTooManyRequests, "admin_login", data)
	}

	if data.Username == "" || password == "" {
		data.Error = msgLoginRequired
		return h.render(c, http.StatusBadRequest, "admin_login", data)
	}

	ctx := c.Request().Context()
	res, err := h.api.Login(ctx, data.Username, password)
	if err != nil {
		h.log.Warn("login failed", "username", data.Username, "error", err)
		data.Error = err.Error()
		return h.render(c, http.StatusUnauthorized, "admin_login", data)
	}

	a := session.Admin{
		ID:       res.Admin.ID,
		Username: res.Admin.Username,
		Email:    res.Admin.Email,
		Role:     res.Admin.Role,
	}
	if err := h.sessions.Start(ctx, res.Token, a); err != nil {
		h.log.Error("failed to start session", "error", err)
		data.Error = http.StatusText(http.StatusInternalServerError)
		return h.render(c, http.StatusInternalServerError, "admin_login", data)
	}

	h.log.Info("admin signed in", "username", a.Username)
	return c.Redirect(http.StatusSeeOther, dashboardPath)
}

// Logout handles POST /admin/logout
func (h *Handler) Logout(c echo.Context) error {
	if err := h.sessions.Destroy(c.Request().Context()); err != nil {
		h.log.Error("failed to destroy session", "error", err)
	}
	return c.Redirect(http.StatusSeeOther, loginPath)
}

// Dashboard handles GET /admin
// The profile is fetched with the session token so an expired token ends the
// session here rather than on the first write.
func (h *Handler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	data := dashboardPage{adminPage: h.adminPage(c, "Boshqaruv paneli", "")}

	profile, err := h.api.WithToken(h.sessions.Token(ctx)).Profile(ctx)
	switch {
	case errors.Is(err, apiclient.ErrUnauthorized):
		h.log.Info("admin token rejected", "username", data.Admin.Username)
		if err := h.sessions.Destroy(ctx); err != nil {
			h.log.Error("failed to destroy session", "error", err)
		}
		return c.Redirect(http.StatusSeeOther, loginPath)
	case err != nil:
		h.log.Warn("failed to load profile", "error", err)
	default:
		data.Admin = session.Admin{
			ID:       profile.ID,
			Username: profile.Username,
			Email:    profile.Email,
			Role:     profile.Role,
		}
	}

	stats, err := h.portal.Stats(ctx)
	if err != nil {
		h.log.Error("failed to load stats", "error", err)
		data.Error = "Ba'zi ma'lumotlarni yuklab bo'lmadi"
	}
	data.Stats = stats

	return h.render(c, http.StatusOK, "admin_dashboard", data)
}

// openPanel mounts the panel named by the :entity parameter for this
// request. The bool result is false when a response was already written.
func (h *Handler) openPanel(c echo.Context) (admin.Handle, admin.Entry, bool, error) {
	entry, ok := admin.Lookup(h.panels, c.Param("entity"))
	if !ok {
		return nil, entry, false, h.render(c, http.StatusNotFound, "admin_not_found", h.adminPage(c, "Topilmadi", ""))
	}

	panel := entry.Open(h.api, h.sessions, h.log)
	err := panel.Mount(c.Request().Context())
	switch {
	case errors.Is(err, admin.ErrUnauthenticated):
		return nil, entry, false, c.Redirect(http.StatusSeeOther, loginPath)
	case err != nil:
		h.log.Error("failed to mount panel", "panel", entry.Name, "error", err)
	}

	return panel, entry, true, nil
}

func (h *Handler) renderPanel(c echo.Context, status int, panel admin.Handle, entry admin.Entry, override string) error {
	v := panel.View()
	if override != "" {
		v.Error = override
	}
	notice, _ := c.Get(noticeKey).(string)
	return h.render(c, status, "admin_panel", panelPage{
		adminPage: h.adminPage(c, entry.Title, entry.Name),
		View:      v,
		Notice:    notice,
	})
}

// afterError maps a panel error to a response. Validation and backend
// errors keep the form open.
func (h *Handler) afterError(c echo.Context, panel admin.Handle, entry admin.Entry, err error) error {
	var (
		ve     *admin.ValidationError
		apiErr *apiclient.Error
	)

	switch {
	case errors.Is(err, admin.ErrUnauthenticated):
		return c.Redirect(http.StatusSeeOther, loginPath)
	case errors.Is(err, admin.ErrNotFound):
		return h.render(c, http.StatusNotFound, "admin_not_found", h.adminPage(c, "Topilmadi", entry.Name))
	case errors.Is(err, admin.ErrSubmitInFlight):
		return h.renderPanel(c, http.StatusConflict, panel, entry, "")
	case errors.As(err, &ve):
		return h.renderPanel(c, http.StatusUnprocessableEntity, panel, entry, "")
	case errors.As(err, &apiErr):
		return h.renderPanel(c, http.StatusOK, panel, entry, "")
	}

	h.log.Error("admin action failed", "panel", entry.Name, "error", err)
	return h.renderPanel(c, http.StatusOK, panel, entry, err.Error())
}

// PanelList handles GET /admin/:entity
func (h *Handler) PanelList(c echo.Context) error {
	panel, entry, ok, err := h.openPanel(c)
	if !ok {
		return err
	}
	return h.renderPanel(c, http.StatusOK, panel, entry, "")
}

// PanelNew handles GET /admin/:entity/new
func (h *Handler) PanelNew(c echo.Context) error {
	panel, entry, ok, err := h.openPanel(c)
	if !ok {
		return err
	}

	if err := panel.OpenCreate(c.Request().Context()); err != nil {
		return h.afterError(c, panel, entry, err)
	}
	return h.renderPanel(c, http.StatusOK, panel, entry, "")
}

// PanelEdit handles GET /admin/:entity/:id/edit
func (h *Handler) PanelEdit(c echo.Context) error {
	panel, entry, ok, err := h.openPanel(c)
	if !ok {
		return err
	}

	if err := panel.OpenEdit(c.Request().Context(), c.Param("id")); err != nil {
		return h.afterError(c, panel, entry, err)
	}
	return h.renderPanel(c, http.StatusOK, panel, entry, "")
}

// PanelCreate handles POST /admin/:entity
func (h *Handler) PanelCreate(c echo.Context) error {
	return h.submit(c, "")
}

// PanelUpdate handles POST /admin/:entity/:id
func (h *Handler) PanelUpdate(c echo.Context) error {
	return h.submit(c, c.Param("id"))
}

func (h *Handler) submit(c echo.Context, id string) error {
	panel, entry, ok, err := h.openPanel(c)
	if !ok {
		return err
	}

	ctx := c.Request().Context()
	if id == "" {
		err = panel.OpenCreate(ctx)
	} else {
		err = panel.OpenEdit(ctx, id)
	}
	if err != nil {
		return h.afterError(c, panel, entry, err)
	}

	in, err := readInput(c)
	panel.Bind(in)
	if err != nil {
		h.log.Warn("rejected upload", "panel", entry.Name, "error", err)
		return h.renderPanel(c, http.StatusUnprocessableEntity, panel, entry, fmt.Sprintf("%s: %v", msgBadUpload, err))
	}

	if err := panel.Submit(ctx); err != nil {
		// uploads are not kept between requests
		if len(in.Files) > 0 {
			c.Set(noticeKey, msgReselectFiles)
		}
		return h.afterError(c, panel, entry, err)
	}

	return c.Redirect(http.StatusSeeOther, dashboardPath+"/"+entry.Name)
}

// PanelConfirmDelete handles GET /admin/:entity/:id/delete
func (h *Handler) PanelConfirmDelete(c echo.Context) error {
	panel, entry, ok, err := h.openPanel(c)
	if !ok {
		return err
	}

	row, found := panel.Row(c.Param("id"))
	if !found {
		return h.afterError(c, panel, entry, admin.ErrNotFound)
	}

	return h.render(c, http.StatusOK, "admin_delete", deletePage{
		adminPage: h.adminPage(c, entry.Title, entry.Name),
		View:      panel.View(),
		Row:       row,
	})
}

// PanelDelete handles POST /admin/:entity/:id/delete
// Nothing is deleted unless the confirmation form was submitted with
// confirm=yes.
func (h *Handler) PanelDelete(c echo.Context) error {
	panel, entry, ok, err := h.openPanel(c)
	if !ok {
		return err
	}

	confirm := func(string) bool { return c.FormValue("confirm") == "yes" }
	if err := panel.Delete(c.Request().Context(), c.Param("id"), confirm); err != nil {
		return h.afterError(c, panel, entry, err)
	}

	return c.Redirect(http.StatusSeeOther, dashboardPath+"/"+entry.Name)
}

// PanelToggle handles POST /admin/:entity/:id/toggle
func (h *Handler) PanelToggle(c echo.Context) error {
	panel, entry, ok, err := h.openPanel(c)
	if !ok {
		return err
	}

	if err := panel.ToggleActive(c.Request().Context(), c.Param("id")); err != nil {
		return h.afterError(c, panel, entry, err)
	}

	return c.Redirect(http.StatusSeeOther, dashboardPath+"/"+entry.Name)
}

// readInput collects form values and reads uploaded images into memory.
// Values are returned even when a file is rejected.
func readInput(c echo.Context) (admin.Input, error) {
	in := admin.Input{Values: url.Values{}, Files: map[string][]apiclient.File{}}

	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		values, err := c.FormParams()
		if err != nil {
			return in, err
		}
		in.Values = values
		return in, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return in, err
	}
	in.Values = url.Values(form.Value)

	for field, headers := range form.File {
		for _, fh := range headers {
			if fh.Filename == "" && fh.Size == 0 {
				continue
			}
			f, err := photo.Read(fh)
			if err != nil {
				return in, fmt.Errorf("%s: %w", fh.Filename, err)
			}
			f.Field = field
			in.Files[field] = append(in.Files[field], f)
		}
	}

	return in, nil
}
