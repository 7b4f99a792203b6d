package display

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/daniilsolovey/media-portal/internal/carousel"
	"github.com/daniilsolovey/media-portal/internal/portal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type sourceStub struct {
	latestNewsFunc        func(ctx context.Context, limit int) ([]portal.News, error)
	todayBirthdaysFunc    func(ctx context.Context) ([]portal.Employee, error)
	honoraryEmployeesFunc func(ctx context.Context) ([]portal.HonoraryEmployee, error)
	eventPhotosFunc       func(ctx context.Context, maxEvents, maxPhotos int) ([]portal.EventPhoto, error)
	announcementsFunc     func(ctx context.Context) ([]portal.Announcement, error)
}

func (s *sourceStub) LatestNews(ctx context.Context, limit int) ([]portal.News, error) {
	if s.latestNewsFunc != nil {
		return s.latestNewsFunc(ctx, limit)
	}
	return nil, nil
}

func (s *sourceStub) TodayBirthdays(ctx context.Context) ([]portal.Employee, error) {
	if s.todayBirthdaysFunc != nil {
		return s.todayBirthdaysFunc(ctx)
	}
	return nil, nil
}

func (s *sourceStub) HonoraryEmployees(ctx context.Context) ([]portal.HonoraryEmployee, error) {
	if s.honoraryEmployeesFunc != nil {
		return s.honoraryEmployeesFunc(ctx)
	}
	return nil, nil
}

func (s *sourceStub) EventPhotos(ctx context.Context, maxEvents, maxPhotos int) ([]portal.EventPhoto, error) {
	if s.eventPhotosFunc != nil {
		return s.eventPhotosFunc(ctx, maxEvents, maxPhotos)
	}
	return nil, nil
}

func (s *sourceStub) Announcements(ctx context.Context) ([]portal.Announcement, error) {
	if s.announcementsFunc != nil {
		return s.announcementsFunc(ctx)
	}
	return nil, nil
}

func fullSource() *sourceStub {
	return &sourceStub{
		latestNewsFunc: func(_ context.Context, limit int) ([]portal.News, error) {
			news := make([]portal.News, 12)
			for i := range news {
				news[i] = portal.News{ID: "n", Title: "News", Slug: "slug", CreatedAt: time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)}
			}
			return news[:limit], nil
		},
		todayBirthdaysFunc: func(context.Context) ([]portal.Employee, error) {
			return []portal.Employee{{ID: "e1", FirstName: "Ali", LastName: "Valiyev", Position: "Muhandis"}}, nil
		},
		honoraryEmployeesFunc: func(context.Context) ([]portal.HonoraryEmployee, error) {
			return []portal.HonoraryEmployee{{
				ID: "h1", FirstName: "Karim", LastName: "Karimov",
				StartDate: time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC),
			}}, nil
		},
		eventPhotosFunc: func(_ context.Context, maxEvents, maxPhotos int) ([]portal.EventPhoto, error) {
			return []portal.EventPhoto{{PhotoURL: "p1", Title: "Bayram", PhotoCount: 5}}, nil
		},
		announcementsFunc: func(context.Context) ([]portal.Announcement, error) {
			return nil, errors.New("backend down")
		},
	}
}

func loadSlot(t *testing.T, src Source, name string) carousel.Frame {
	t.Helper()
	slot, ok := LookupSlot(name)
	require.True(t, ok, name)
	engine := NewSliders(src, noOpLogger()).Build(slot, "uz")
	engine.Load(context.Background())
	return engine.Frame()
}

func TestSliders_Build(t *testing.T) {
	src := fullSource()

	t.Run("main news", func(t *testing.T) {
		f := loadSlot(t, src, "main-news")
		assert.Equal(t, "populated", f.State)
		assert.Len(t, f.Slides, 10)
		assert.EqualValues(t, 6000, f.DelayMS)
		assert.Equal(t, "/uz/news/slug", f.Slides[0].Link)
		assert.Equal(t, "20-may", f.Slides[0].Label)
	})

	t.Run("mini news", func(t *testing.T) {
		f := loadSlot(t, src, "mini-news")
		assert.Len(t, f.Slides, 8)
	})

	t.Run("birthdays", func(t *testing.T) {
		f := loadSlot(t, src, "birthdays")
		require.Len(t, f.Slides, 1)
		assert.Equal(t, "Ali Valiyev", f.Slides[0].Title)
		assert.Equal(t, "Muhandis", f.Slides[0].Caption)
	})

	t.Run("former leaders", func(t *testing.T) {
		f := loadSlot(t, src, "former-leaders")
		require.Len(t, f.Slides, 1)
		assert.Equal(t, "2010 - 2015", f.Slides[0].Label)
	})

	t.Run("events gallery", func(t *testing.T) {
		f := loadSlot(t, src, "events-gallery")
		require.Len(t, f.Slides, 1)
		assert.Equal(t, "5 ta rasm", f.Slides[0].Badge)
		assert.EqualValues(t, 3500, f.DelayMS)
	})

	t.Run("failing source renders empty", func(t *testing.T) {
		f := loadSlot(t, src, "announcements")
		assert.Equal(t, "empty", f.State)
		assert.Empty(t, f.Slides)
	})

	t.Run("unknown kind", func(t *testing.T) {
		engine := NewSliders(src, noOpLogger()).Build(Slot{Kind: "weather"}, "uz")
		assert.Equal(t, carousel.Empty, engine.Load(context.Background()))
	})
}

func TestLayouts(t *testing.T) {
	l, ok := LookupLayout(LayoutDisplay)
	require.True(t, ok)

	names := make([]string, len(l.Slots))
	for i, s := range l.Slots {
		names[i] = s.name()
	}
	assert.Equal(t, []string{"former-leaders", "main-news", "birthdays", "events", "announcements"}, names)

	_, ok = LookupLayout("weather")
	assert.False(t, ok)
	_, ok = LookupSlot("weather")
	assert.False(t, ok)
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry(NewSliders(fullSource(), noOpLogger()), Config{BoardTTL: time.Minute}, noOpLogger())
	defer reg.Stop()

	_, err := reg.Mount("weather", "uz")
	assert.ErrorIs(t, err, ErrLayoutNotFound)

	b, err := reg.Mount(LayoutDisplay, "uz")
	require.NoError(t, err)
	require.NotEmpty(t, b.ID)
	assert.Equal(t, 1, reg.Len())

	assert.Eventually(t, func() bool {
		frames, err := reg.Frames(b.ID)
		return err == nil && frames[1].State == "populated"
	}, time.Second, 5*time.Millisecond)

	f, err := reg.Interact(b.ID, "main-news", ActionNext)
	require.NoError(t, err)
	assert.Equal(t, "main-news", f.Name)

	_, err = reg.Interact(b.ID, "weather", ActionNext)
	assert.ErrorIs(t, err, ErrSliderNotFound)
	_, err = reg.Interact(b.ID, "main-news", "swipe")
	assert.ErrorIs(t, err, ErrUnknownAction)

	require.NoError(t, reg.Unmount(b.ID))
	assert.ErrorIs(t, reg.Unmount(b.ID), ErrBoardNotFound)
	_, err = reg.Frames(b.ID)
	assert.ErrorIs(t, err, ErrBoardNotFound)
}

func TestRegistry_UnmountCancelsFetch(t *testing.T) {
	started := make(chan struct{}, 8)
	cancelled := make(chan struct{}, 8)
	block := func(ctx context.Context) {
		started <- struct{}{}
		<-ctx.Done()
		cancelled <- struct{}{}
	}

	src := &sourceStub{
		latestNewsFunc: func(ctx context.Context, _ int) ([]portal.News, error) {
			block(ctx)
			return nil, ctx.Err()
		},
	}

	reg := NewRegistry(NewSliders(src, noOpLogger()), Config{}, noOpLogger())
	b, err := reg.Mount(LayoutDisplay, "kr")
	require.NoError(t, err)

	<-started
	require.NoError(t, reg.Unmount(b.ID))

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("fetch was not cancelled")
	}
}

func TestRegistry_Reap(t *testing.T) {
	now := time.Date(2024, time.May, 20, 12, 0, 0, 0, time.UTC)
	reg := NewRegistry(NewSliders(&sourceStub{}, noOpLogger()), Config{BoardTTL: time.Minute, MaxBoards: 2}, noOpLogger())
	reg.now = func() time.Time { return now }
	defer reg.Stop()

	stale, err := reg.Mount(LayoutCompact, "uz")
	require.NoError(t, err)
	fresh, err := reg.Mount(LayoutCompact, "uz")
	require.NoError(t, err)

	_, err = reg.Mount(LayoutCompact, "uz")
	assert.ErrorIs(t, err, ErrTooManyBoards)

	now = now.Add(50 * time.Second)
	_, err = reg.Frames(fresh.ID)
	require.NoError(t, err)

	now = now.Add(30 * time.Second)
	assert.Equal(t, 1, reg.Reap())

	_, err = reg.Frames(stale.ID)
	assert.ErrorIs(t, err, ErrBoardNotFound)
	_, err = reg.Frames(fresh.ID)
	assert.NoError(t, err)
}

func TestRegistry_StartStop(t *testing.T) {
	reg := NewRegistry(NewSliders(&sourceStub{}, noOpLogger()), Config{ReapSchedule: "@every 1h"}, noOpLogger())
	require.NoError(t, reg.Start())
	_, err := reg.Mount(LayoutHome, "uz")
	require.NoError(t, err)
	reg.Stop()
	assert.Zero(t, reg.Len())

	bad := NewRegistry(NewSliders(&sourceStub{}, noOpLogger()), Config{ReapSchedule: "not a schedule"}, noOpLogger())
	assert.Error(t, bad.Start())
}
