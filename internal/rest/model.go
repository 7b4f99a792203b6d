package rest

import (
	"github.com/daniilsolovey/media-portal/internal/admin"
	"github.com/daniilsolovey/media-portal/internal/carousel"
	"github.com/daniilsolovey/media-portal/internal/portal"
	"github.com/daniilsolovey/media-portal/internal/session"
)

type Health struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}

type SliderRequest struct {
	Name   string `param:"name"`
	Locale string `query:"locale"`
}

// page carries what the shared layout needs on every public page.
type page struct {
	Title      string
	Locale     string
	Locales    []string
	Path       string
	Categories []portal.Category
}

type homePage struct {
	page
	News      []portal.News
	Birthdays []portal.Employee
	Sliders   []carousel.Frame
}

type newsPage struct {
	page
	News *portal.News
}

type categoryPage struct {
	page
	Category *portal.CategoryNews
}

type displayPage struct {
	page
	Layout string
}

type adminPage struct {
	Title  string
	Admin  session.Admin
	Panels []admin.Entry
	Active string
}

type loginPage struct {
	adminPage
	Username string
	Error    string
}

type dashboardPage struct {
	adminPage
	Stats portal.Stats
	Error string
}

type panelPage struct {
	adminPage
	View   admin.View
	Notice string
}

type deletePage struct {
	adminPage
	View admin.View
	Row  admin.Row
}
