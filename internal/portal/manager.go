package portal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/daniilsolovey/media-portal/internal/apiclient"
	"golang.org/x/sync/errgroup"
)

const defaultListLimit = 100

var ErrNotFound = errors.New("not found")

// Manager is the read side of the portal: it fetches backend records and
// converts them into view-ready values.
type Manager struct {
	api *apiclient.Client
	now func() time.Time
}

func NewManager(api *apiclient.Client) *Manager {
	return &Manager{
		api: api,
		now: time.Now,
	}
}

func (m *Manager) resolve(p string) string {
	return m.api.ResolveURL(p)
}

func ptr[T any](v T) *T { return &v }

// LatestNews returns published news, newest first as ordered by the backend.
func (m *Manager) LatestNews(ctx context.Context, limit int) ([]News, error) {
	list, _, err := m.api.News().List(ctx, apiclient.ListParams{
		Page:      1,
		Limit:     limit,
		Published: ptr(true),
	})
	if err != nil {
		return nil, fmt.Errorf("api get news: %w", err)
	}

	return Map(list, func(n apiclient.News) News { return NewNews(n, m.resolve) }), nil
}

func (m *Manager) NewsByID(ctx context.Context, id string) (*News, error) {
	n, err := m.api.News().Get(ctx, id)
	if errors.Is(err, apiclient.ErrNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("api get news by id: %w", err)
	}

	news := NewNews(*n, m.resolve)
	return &news, nil
}

// NewsBySlug looks the slug up among the latest news, falling back to a
// lookup by id for links that carry the record id instead.
func (m *Manager) NewsBySlug(ctx context.Context, slug string) (*News, error) {
	list, _, err := m.api.News().List(ctx, apiclient.ListParams{Page: 1, Limit: defaultListLimit})
	if err != nil {
		return nil, fmt.Errorf("api get news: %w", err)
	}

	for _, n := range list {
		if n.Slug == slug || n.ID == slug {
			news := NewNews(n, m.resolve)
			return &news, nil
		}
	}

	return m.NewsByID(ctx, slug)
}

func (m *Manager) Categories(ctx context.Context) ([]Category, error) {
	list, _, err := m.api.Categories().List(ctx, apiclient.ListParams{Active: ptr(true)})
	if err != nil {
		return nil, fmt.Errorf("api get categories: %w", err)
	}

	return Map(list, NewCategory), nil
}

// CategoryWithNews resolves a category by slug and attaches its news.
func (m *Manager) CategoryWithNews(ctx context.Context, slug string, limit int) (*CategoryNews, error) {
	categories, err := m.Categories(ctx)
	if err != nil {
		return nil, err
	}

	index := IndexBy(categories, func(c Category) string { return c.Slug })
	category, ok := index[slug]
	if !ok {
		return nil, ErrNotFound
	}

	list, err := m.api.NewsByCategory(ctx, category.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("api get news by category: %w", err)
	}

	return &CategoryNews{
		Category: category,
		News:     Map(list, func(n apiclient.News) News { return NewNews(n, m.resolve) }),
	}, nil
}

func (m *Manager) Employees(ctx context.Context) ([]Employee, error) {
	list, _, err := m.api.Employees().List(ctx, apiclient.ListParams{Page: 1, Limit: defaultListLimit})
	if err != nil {
		return nil, fmt.Errorf("api get employees: %w", err)
	}

	return Map(list, func(e apiclient.Employee) Employee { return NewEmployee(e, m.resolve) }), nil
}

// TodayBirthdays asks the backend for today's birthdays. Backends without
// the dedicated endpoint answer 404, in which case the full employee list
// is filtered locally by month and day.
func (m *Manager) TodayBirthdays(ctx context.Context) ([]Employee, error) {
	list, err := m.api.TodayBirthdays(ctx)
	if errors.Is(err, apiclient.ErrNotFound) {
		all, err := m.Employees(ctx)
		if err != nil {
			return nil, err
		}
		return Birthdays(all, m.now()), nil
	} else if err != nil {
		return nil, fmt.Errorf("api get today birthdays: %w", err)
	}

	return Map(list, func(e apiclient.Employee) Employee { return NewEmployee(e, m.resolve) }), nil
}

func (m *Manager) HonoraryEmployees(ctx context.Context) ([]HonoraryEmployee, error) {
	list, _, err := m.api.HonoraryEmployees().List(ctx, apiclient.ListParams{Page: 1, Limit: defaultListLimit})
	if err != nil {
		return nil, fmt.Errorf("api get honorary employees: %w", err)
	}

	return Map(list, func(e apiclient.HonoraryEmployee) HonoraryEmployee {
		return NewHonoraryEmployee(e, m.resolve)
	}), nil
}

func (m *Manager) Events(ctx context.Context, limit int) ([]Event, error) {
	list, _, err := m.api.Events().List(ctx, apiclient.ListParams{Page: 1, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("api get events: %w", err)
	}

	return Map(list, func(e apiclient.Event) Event { return NewEvent(e, m.resolve) }), nil
}

// EventPhotos flattens recent events into a photo list, see EventPhotos.
func (m *Manager) EventPhotos(ctx context.Context, maxEvents, maxPhotos int) ([]EventPhoto, error) {
	events, err := m.Events(ctx, maxEvents)
	if err != nil {
		return nil, err
	}

	return EventPhotos(events, maxEvents, maxPhotos), nil
}

// Announcements returns active announcements that have not expired yet.
func (m *Manager) Announcements(ctx context.Context) ([]Announcement, error) {
	list, _, err := m.api.Announcements().List(ctx, apiclient.ListParams{Page: 1, Limit: defaultListLimit, Active: ptr(true)})
	if err != nil {
		return nil, fmt.Errorf("api get announcements: %w", err)
	}

	now := m.now()
	return Filter(Map(list, NewAnnouncement), func(a Announcement) bool {
		return !a.IsExpired(now)
	}), nil
}

// Stats counts every collection concurrently. Counts that fail stay zero and
// the first error is returned alongside the partial result.
func (m *Manager) Stats(ctx context.Context) (Stats, error) {
	var stats Stats

	g, ctx := errgroup.WithContext(ctx)
	count := func(dst *int, name string, fn func(context.Context) (int, error)) {
		g.Go(func() error {
			n, err := fn(ctx)
			if err != nil {
				return fmt.Errorf("api count %s: %w", name, err)
			}
			*dst = n
			return nil
		})
	}

	count(&stats.News, "news", m.api.News().Count)
	count(&stats.Categories, "categories", m.api.Categories().Count)
	count(&stats.Employees, "employees", m.api.Employees().Count)
	count(&stats.HonoraryEmployees, "honorary employees", m.api.HonoraryEmployees().Count)
	count(&stats.Events, "events", m.api.Events().Count)
	count(&stats.Announcements, "announcements", m.api.Announcements().Count)

	err := g.Wait()
	return stats, err
}
