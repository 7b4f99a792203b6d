package display

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/daniilsolovey/media-portal/internal/carousel"
	"github.com/daniilsolovey/media-portal/internal/portal"
)

// Source is the read API the sliders pull from.
type Source interface {
	LatestNews(ctx context.Context, limit int) ([]portal.News, error)
	TodayBirthdays(ctx context.Context) ([]portal.Employee, error)
	HonoraryEmployees(ctx context.Context) ([]portal.HonoraryEmployee, error)
	EventPhotos(ctx context.Context, maxEvents, maxPhotos int) ([]portal.EventPhoto, error)
	Announcements(ctx context.Context) ([]portal.Announcement, error)
}

var _ Source = (*portal.Manager)(nil)

type Kind string

const (
	MainNews      Kind = "main-news"
	MiniNews      Kind = "mini-news"
	Birthdays     Kind = "birthdays"
	FormerLeaders Kind = "former-leaders"
	Events        Kind = "events"
	Announcements Kind = "announcements"
)

const (
	mainNewsLimit  = 10
	miniNewsLimit  = 8
	eventsLimit    = 10
	eventPhotoMax  = 3
	birthdayBadge  = "Tug'ilgan kuningiz bilan!"
	photoCountForm = "%d ta rasm"
)

// Slot places one slider kind into a layout.
type Slot struct {
	Name             string
	Kind             Kind
	Title            string
	Area             string
	Delay            time.Duration
	StopOnMouseEnter bool
}

func (s Slot) name() string {
	if s.Name != "" {
		return s.Name
	}
	return string(s.Kind)
}

type Layout struct {
	Name  string
	Slots []Slot
}

const (
	LayoutDisplay = "display"
	LayoutCompact = "compact"
	LayoutHome    = "home"
)

var layouts = map[string]Layout{
	LayoutDisplay: {
		Name: LayoutDisplay,
		Slots: []Slot{
			{Kind: FormerLeaders, Title: "Sobiq rahbarlar", Area: "top-left", Delay: 5 * time.Second},
			{Kind: MainNews, Title: "Yangiliklar", Area: "center", Delay: 6 * time.Second},
			{Kind: Birthdays, Title: "Bugungi tug'ilgan kunlar", Area: "top-right", Delay: 4 * time.Second},
			{Kind: Events, Title: "Tadbirlar", Area: "bottom-left", Delay: 4 * time.Second},
			{Kind: Announcements, Title: "E'lonlar", Area: "bottom-right", Delay: 5 * time.Second},
		},
	},
	LayoutCompact: {
		Name: LayoutCompact,
		Slots: []Slot{
			{Kind: FormerLeaders, Title: "Sobiq rahbarlar", Area: "top-left", Delay: 4 * time.Second},
			{Kind: MainNews, Title: "Yangiliklar", Area: "center", Delay: 5 * time.Second},
			{Kind: MiniNews, Title: "So'nggi yangiliklar", Area: "top-right", Delay: 4500 * time.Millisecond},
			{Kind: Birthdays, Title: "Bugungi tug'ilgan kunlar", Area: "bottom-left", Delay: 3500 * time.Millisecond},
			{Kind: Events, Title: "Tadbirlar", Area: "bottom-right", Delay: 3 * time.Second},
		},
	},
	LayoutHome: {
		Name: LayoutHome,
		Slots: []Slot{
			{Name: "honorary-employees", Kind: FormerLeaders, Title: "Faxriy xodimlar", Delay: 4 * time.Second, StopOnMouseEnter: true},
			{Name: "events-gallery", Kind: Events, Title: "Tadbirlar", Delay: 3500 * time.Millisecond, StopOnMouseEnter: true},
		},
	},
}

func LookupLayout(name string) (Layout, bool) {
	l, ok := layouts[name]
	return l, ok
}

// LookupSlot finds a slider by name across all layouts, preferring the full
// display layout.
func LookupSlot(name string) (Slot, bool) {
	for _, layout := range []string{LayoutDisplay, LayoutCompact, LayoutHome} {
		for _, s := range layouts[layout].Slots {
			if s.name() == name {
				return s, true
			}
		}
	}
	return Slot{}, false
}

// Sliders builds carousel engines for slots.
type Sliders struct {
	source Source
	log    *slog.Logger
}

func NewSliders(source Source, log *slog.Logger) *Sliders {
	return &Sliders{source: source, log: log}
}

func (s *Sliders) Build(slot Slot, locale string) carousel.Engine {
	opts := carousel.Options{
		Name:              slot.name(),
		Delay:             slot.Delay,
		StopOnInteraction: false,
		StopOnMouseEnter:  slot.StopOnMouseEnter,
	}

	switch slot.Kind {
	case MainNews, MiniNews:
		limit := mainNewsLimit
		if slot.Kind == MiniNews {
			limit = miniNewsLimit
		}
		opts.Limit = limit
		return carousel.New(opts, func(ctx context.Context) ([]portal.News, error) {
			return s.source.LatestNews(ctx, limit)
		}, newsSlide(locale), s.log)

	case Birthdays:
		return carousel.New(opts, s.source.TodayBirthdays, birthdaySlide, s.log)

	case FormerLeaders:
		return carousel.New(opts, s.source.HonoraryEmployees, leaderSlide, s.log)

	case Events:
		return carousel.New(opts, func(ctx context.Context) ([]portal.EventPhoto, error) {
			return s.source.EventPhotos(ctx, eventsLimit, eventPhotoMax)
		}, eventSlide, s.log)

	case Announcements:
		return carousel.New(opts, s.source.Announcements, announcementSlide, s.log)
	}

	return carousel.New(opts, func(context.Context) ([]struct{}, error) {
		return nil, fmt.Errorf("unknown slider kind %q", slot.Kind)
	}, func(struct{}) carousel.Slide { return carousel.Slide{} }, s.log)
}

// BuildLayout builds every slider of a layout in slot order.
func (s *Sliders) BuildLayout(layout Layout, locale string) []carousel.Engine {
	engines := make([]carousel.Engine, len(layout.Slots))
	for i, slot := range layout.Slots {
		engines[i] = s.Build(slot, locale)
	}
	return engines
}

func newsSlide(locale string) carousel.Template[portal.News] {
	return func(n portal.News) carousel.Slide {
		slug := n.Slug
		if slug == "" {
			slug = n.ID
		}
		return carousel.Slide{
			ID:       n.ID,
			ImageURL: n.ImageURL,
			Title:    n.Title,
			Label:    portal.DayMonth(n.CreatedAt),
			Caption:  n.Summary,
			Link:     "/" + locale + "/news/" + slug,
		}
	}
}

func birthdaySlide(e portal.Employee) carousel.Slide {
	return carousel.Slide{
		ID:       e.ID,
		ImageURL: e.PhotoURL,
		Title:    e.FullName(),
		Label:    portal.DayMonth(e.BirthDate),
		Caption:  e.Position,
		Badge:    birthdayBadge,
	}
}

func leaderSlide(e portal.HonoraryEmployee) carousel.Slide {
	return carousel.Slide{
		ID:       e.ID,
		ImageURL: e.PhotoURL,
		Title:    e.FullName(),
		Label:    e.WorkPeriodLabel(),
		Caption:  e.Position,
	}
}

func eventSlide(p portal.EventPhoto) carousel.Slide {
	return carousel.Slide{
		ImageURL: p.PhotoURL,
		Title:    p.Title,
		Label:    portal.DayMonth(p.EventDate),
		Badge:    fmt.Sprintf(photoCountForm, p.PhotoCount),
	}
}

func announcementSlide(a portal.Announcement) carousel.Slide {
	return carousel.Slide{
		ID:      a.ID,
		Title:   a.Title,
		Label:   portal.DayMonth(a.CreatedAt),
		Caption: a.Body,
	}
}
