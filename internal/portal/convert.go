package portal

import (
	"html/template"

	"github.com/daniilsolovey/media-portal/internal/apiclient"
	"github.com/microcosm-cc/bluemonday"
)

var htmlSanitizer = bluemonday.UGCPolicy()

// URLResolver turns backend media paths into absolute URLs.
type URLResolver func(string) string

func identity(s string) string { return s }

func NewNews(n apiclient.News, resolve URLResolver) News {
	if resolve == nil {
		resolve = identity
	}

	image := resolve(n.Image)
	if image == "" {
		image = PlaceholderImage
	}

	news := News{
		ID:          n.ID,
		Title:       n.Title,
		Slug:        n.Slug,
		Summary:     n.Summary,
		BodyHTML:    template.HTML(htmlSanitizer.Sanitize(n.Content)),
		ImageURL:    image,
		CreatedAt:   n.CreatedAt,
		IsPublished: n.IsPublished,
	}

	switch {
	case len(n.Categories) > 0:
		news.Categories = Map(n.Categories, func(c apiclient.CategoryRef) CategoryRef {
			return CategoryRef{ID: c.ID, Title: c.Name}
		})
	case n.Category != nil:
		news.Categories = []CategoryRef{{ID: n.Category.Slug, Title: n.Category.Name}}
	}

	return news
}

func NewCategory(c apiclient.Category) Category {
	return Category{
		ID:        c.ID,
		Slug:      c.Slug,
		Title:     c.Name,
		ItemCount: c.NewsCount,
		IsActive:  c.IsActive,
	}
}

func NewEmployee(e apiclient.Employee, resolve URLResolver) Employee {
	if resolve == nil {
		resolve = identity
	}
	return Employee{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		PhotoURL:  photoOrPlaceholder(resolve(e.Photo)),
		BirthDate: e.BirthDate,
		Position:  e.Position,
		IsActive:  e.IsActive,
	}
}

func NewHonoraryEmployee(e apiclient.HonoraryEmployee, resolve URLResolver) HonoraryEmployee {
	if resolve == nil {
		resolve = identity
	}
	return HonoraryEmployee{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		PhotoURL:   photoOrPlaceholder(resolve(e.Photo)),
		Position:   e.Position,
		StartDate:  e.StartDate,
		EndDate:    e.EndDate,
		WorkPeriod: e.WorkPeriod,
		IsActive:   e.IsActive,
	}
}

func NewEvent(e apiclient.Event, resolve URLResolver) Event {
	if resolve == nil {
		resolve = identity
	}
	return Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		PhotoURLs:   Map(e.Photos, func(p string) string { return resolve(p) }),
		EventDate:   e.EventDate,
		IsActive:    e.IsActive,
	}
}

func NewAnnouncement(a apiclient.Announcement) Announcement {
	return Announcement{
		ID:        a.ID,
		Title:     a.Title,
		Body:      a.Content,
		CreatedAt: a.CreatedAt,
		ExpiresAt: a.ExpiresAt,
		IsActive:  a.IsActive,
	}
}

func photoOrPlaceholder(url string) string {
	if url == "" {
		return PlaceholderPhoto
	}
	return url
}
