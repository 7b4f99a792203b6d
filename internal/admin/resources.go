package admin

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/daniilsolovey/media-portal/internal/apiclient"
	"github.com/daniilsolovey/media-portal/internal/portal"
	"github.com/daniilsolovey/media-portal/internal/session"
)

const (
	NewsPageSize = 50
	newsPrompt   = "Bu yangilikni o'chirishni xohlaysizmi?"
)

// Entry registers one admin panel under its URL name.
type Entry struct {
	Name  string
	Title string
	Open  func(api *apiclient.Client, s session.Session, log *slog.Logger) Handle
}

func status(active bool) string {
	if active {
		return "Faol"
	}
	return "Nofaol"
}

func flag(field string, value bool) *apiclient.Payload {
	return apiclient.JSONPayload(map[string]any{field: value})
}

func formFlag(field string, value bool) *apiclient.Payload {
	return apiclient.FormPayload().Set(field, strconv.FormatBool(value))
}

func NewsConfig() Config[apiclient.News, *NewsForm] {
	return Config[apiclient.News, *NewsForm]{
		Name:         "news",
		Title:        "Yangiliklar",
		PageSize:     NewsPageSize,
		DeletePrompt: newsPrompt,
		Columns:      []string{"Sarlavha", "Kategoriya", "Holat", "Sana"},
		Row: func(n apiclient.News, resolve func(string) string) Row {
			news := portal.NewNews(n, resolve)
			category := ""
			if len(news.Categories) > 0 {
				category = news.Categories[0].Title
			}
			state := "Qoralama"
			if n.IsPublished {
				state = "Nashr qilingan"
			}
			return Row{
				ImageURL: news.ImageURL,
				Cells:    []string{n.Title, category, state, portal.LongDate(n.CreatedAt)},
				Active:   n.IsPublished,
			}
		},
		Resource: func(api *apiclient.Client) Resource[apiclient.News] { return api.News() },
		NewForm:  NewNewsForm,
		Toggle: func(n apiclient.News) *apiclient.Payload {
			return flag("isPublished", !n.IsPublished)
		},
	}
}

func CategoryConfig(pageSize int) Config[apiclient.Category, *CategoryForm] {
	return Config[apiclient.Category, *CategoryForm]{
		Name:              "categories",
		Title:             "Kategoriyalar",
		PageSize:          pageSize,
		ReloadAfterDelete: true,
		Columns:           []string{"Nomi", "Slug", "Yangiliklar", "Holat"},
		Row: func(c apiclient.Category, _ func(string) string) Row {
			return Row{
				Cells:  []string{c.Name, c.Slug, strconv.Itoa(c.NewsCount), status(c.IsActive)},
				Active: c.IsActive,
			}
		},
		Resource: func(api *apiclient.Client) Resource[apiclient.Category] { return api.Categories() },
		NewForm:  NewCategoryForm,
		Toggle: func(c apiclient.Category) *apiclient.Payload {
			return flag("isActive", !c.IsActive)
		},
	}
}

func EmployeeConfig(pageSize int) Config[apiclient.Employee, *EmployeeForm] {
	return Config[apiclient.Employee, *EmployeeForm]{
		Name:              "employees",
		Title:             "Xodimlar",
		PageSize:          pageSize,
		ReloadAfterDelete: true,
		Columns:           []string{"F.I.Sh", "Lavozim", "Tug'ilgan sana", "Holat"},
		Row: func(e apiclient.Employee, resolve func(string) string) Row {
			emp := portal.NewEmployee(e, resolve)
			return Row{
				ImageURL: emp.PhotoURL,
				Cells:    []string{emp.FullName(), e.Position, portal.LongDate(e.BirthDate), status(e.IsActive)},
				Active:   e.IsActive,
			}
		},
		Resource: func(api *apiclient.Client) Resource[apiclient.Employee] { return api.Employees() },
		NewForm:  NewEmployeeForm,
		Toggle: func(e apiclient.Employee) *apiclient.Payload {
			return formFlag("isActive", !e.IsActive)
		},
	}
}

func HonoraryEmployeeConfig(pageSize int) Config[apiclient.HonoraryEmployee, *HonoraryEmployeeForm] {
	return Config[apiclient.HonoraryEmployee, *HonoraryEmployeeForm]{
		Name:              "honorary-employees",
		Title:             "Faxriy xodimlar",
		PageSize:          pageSize,
		ReloadAfterDelete: true,
		Columns:           []string{"F.I.Sh", "Lavozim", "Ish davri", "Holat"},
		Row: func(e apiclient.HonoraryEmployee, resolve func(string) string) Row {
			emp := portal.NewHonoraryEmployee(e, resolve)
			return Row{
				ImageURL: emp.PhotoURL,
				Cells:    []string{emp.FullName(), e.Position, emp.WorkPeriodLabel(), status(e.IsActive)},
				Active:   e.IsActive,
			}
		},
		Resource: func(api *apiclient.Client) Resource[apiclient.HonoraryEmployee] { return api.HonoraryEmployees() },
		NewForm:  NewHonoraryEmployeeForm,
		Toggle: func(e apiclient.HonoraryEmployee) *apiclient.Payload {
			return formFlag("isActive", !e.IsActive)
		},
	}
}

func EventConfig(pageSize int) Config[apiclient.Event, *EventForm] {
	return Config[apiclient.Event, *EventForm]{
		Name:              "events",
		Title:             "Tadbirlar",
		PageSize:          pageSize,
		ReloadAfterDelete: true,
		Columns:           []string{"Sarlavha", "Sana", "Rasmlar", "Holat"},
		Row: func(e apiclient.Event, resolve func(string) string) Row {
			row := Row{
				Cells:  []string{e.Title, portal.LongDate(e.EventDate), strconv.Itoa(len(e.Photos)), status(e.IsActive)},
				Active: e.IsActive,
			}
			if len(e.Photos) > 0 {
				row.ImageURL = resolve(e.Photos[0])
			}
			return row
		},
		Resource: func(api *apiclient.Client) Resource[apiclient.Event] { return api.Events() },
		NewForm:  NewEventForm,
		Toggle: func(e apiclient.Event) *apiclient.Payload {
			return formFlag("isActive", !e.IsActive)
		},
	}
}

func AnnouncementConfig(pageSize int, now func() time.Time) Config[apiclient.Announcement, *AnnouncementForm] {
	if now == nil {
		now = time.Now
	}

	return Config[apiclient.Announcement, *AnnouncementForm]{
		Name:              "announcements",
		Title:             "E'lonlar",
		PageSize:          pageSize,
		ReloadAfterDelete: true,
		Columns:           []string{"Sarlavha", "Muddati", "Holat"},
		Row: func(a apiclient.Announcement, _ func(string) string) Row {
			ann := portal.NewAnnouncement(a)
			expires := "Muddatsiz"
			if a.ExpiresAt != nil {
				expires = portal.LongDate(*a.ExpiresAt)
			}
			state := status(a.IsActive)
			if ann.IsExpired(now()) {
				state = "Muddati o'tgan"
			}
			return Row{
				Cells:  []string{a.Title, expires, state},
				Active: a.IsActive,
			}
		},
		Resource: func(api *apiclient.Client) Resource[apiclient.Announcement] { return api.Announcements() },
		NewForm:  NewAnnouncementForm,
		Toggle: func(a apiclient.Announcement) *apiclient.Payload {
			return flag("isActive", !a.IsActive)
		},
	}
}

func open[T Record, F Form[T]](cfg Config[T, F]) func(*apiclient.Client, session.Session, *slog.Logger) Handle {
	return func(api *apiclient.Client, s session.Session, log *slog.Logger) Handle {
		return New(cfg, api, s, log)
	}
}

// Panels lists every admin panel in navigation order.
func Panels(pageSize int) []Entry {
	news := NewsConfig()
	categories := CategoryConfig(pageSize)
	employees := EmployeeConfig(pageSize)
	honorary := HonoraryEmployeeConfig(pageSize)
	events := EventConfig(pageSize)
	announcements := AnnouncementConfig(pageSize, nil)

	return []Entry{
		{Name: news.Name, Title: news.Title, Open: open(news)},
		{Name: categories.Name, Title: categories.Title, Open: open(categories)},
		{Name: employees.Name, Title: employees.Title, Open: open(employees)},
		{Name: honorary.Name, Title: honorary.Title, Open: open(honorary)},
		{Name: events.Name, Title: events.Title, Open: open(events)},
		{Name: announcements.Name, Title: announcements.Title, Open: open(announcements)},
	}
}

func Lookup(entries []Entry, name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
