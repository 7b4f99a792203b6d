package carousel

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

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

type item struct {
	id    string
	title string
}

func itemSlide(i item) Slide {
	return Slide{ID: i.id, Title: i.title}
}

func items(n int) []item {
	list := make([]item, n)
	for i := range list {
		list[i] = item{id: strconv.Itoa(i), title: "item " + strconv.Itoa(i)}
	}
	return list
}

func static(list []item, err error) FetchFunc[item] {
	return func(context.Context) ([]item, error) {
		return list, err
	}
}

func TestSlider_Load(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		fetch  FetchFunc[item]
		opts   Options
		want   State
		slides int
	}{
		{name: "empty list", fetch: static(nil, nil), want: Empty},
		{name: "rejected fetch", fetch: static(items(3), errors.New("connection refused")), want: Empty},
		{name: "populated", fetch: static(items(3), nil), want: Populated, slides: 3},
		{name: "limit truncates", fetch: static(items(12), nil), opts: Options{Limit: 10}, want: Populated, slides: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.opts, tt.fetch, itemSlide, noOpLogger())
			assert.Equal(t, Loading, s.State())

			assert.Equal(t, tt.want, s.Load(ctx))
			f := s.Frame()
			assert.Equal(t, tt.want.String(), f.State)
			assert.Len(t, f.Slides, tt.slides)
		})
	}
}

func TestSlider_LoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := New(Options{}, func(context.Context) ([]item, error) {
		cancel()
		return items(2), nil
	}, itemSlide, noOpLogger())

	assert.Equal(t, Loading, s.Load(ctx))
	assert.Empty(t, s.Frame().Slides)
}

func TestSlider_Advance(t *testing.T) {
	t.Run("wraps after n advances", func(t *testing.T) {
		for _, n := range []int{1, 2, 5, 10} {
			s := New(Options{}, static(items(n), nil), itemSlide, noOpLogger())
			require.Equal(t, Populated, s.Load(context.Background()))

			var idx int
			for range n {
				idx = s.Advance()
			}
			assert.Equal(t, 0, idx, "n=%d", n)
		}
	})

	t.Run("page size", func(t *testing.T) {
		s := New(Options{PageSize: 3}, static(items(7), nil), itemSlide, noOpLogger())
		require.Equal(t, Populated, s.Load(context.Background()))

		f := s.Frame()
		assert.Equal(t, 3, f.Pages)
		assert.Len(t, f.Visible, 3)

		s.Advance()
		s.Advance()
		f = s.Frame()
		assert.Equal(t, 2, f.Index)
		require.Len(t, f.Visible, 1)
		assert.Equal(t, "6", f.Visible[0].ID)

		assert.Equal(t, 0, s.Advance())
	})

	t.Run("empty slider stays on zero", func(t *testing.T) {
		s := New(Options{}, static(nil, nil), itemSlide, noOpLogger())
		s.Load(context.Background())
		assert.Equal(t, 0, s.Advance())
		assert.Empty(t, s.Frame().Visible)
	})
}

func TestSlider_Autoplay(t *testing.T) {
	s := New(Options{Name: "news", Delay: 5 * time.Millisecond}, static(items(3), nil), itemSlide, noOpLogger())
	s.Mount(context.Background())
	s.Mount(context.Background())
	defer s.Close()

	assert.Eventually(t, func() bool {
		return s.Frame().Index > 0
	}, time.Second, time.Millisecond)

	f := s.Frame()
	assert.True(t, f.Autoplay)
	assert.EqualValues(t, 5, f.DelayMS)
}

func TestSlider_Interaction(t *testing.T) {
	t.Run("keeps playing by default", func(t *testing.T) {
		s := New(Options{Delay: time.Hour}, static(items(2), nil), itemSlide, noOpLogger())
		s.Interact()
		s.Load(context.Background())
		assert.True(t, s.Frame().Autoplay)
	})

	t.Run("stops on interaction", func(t *testing.T) {
		s := New(Options{Delay: time.Hour, StopOnInteraction: true}, static(items(2), nil), itemSlide, noOpLogger())
		s.Load(context.Background())
		s.Interact()
		assert.False(t, s.Frame().Autoplay)
		s.tick()
		assert.Equal(t, 0, s.Frame().Index)
	})

	t.Run("pauses while pointer is inside", func(t *testing.T) {
		s := New(Options{Delay: time.Hour, StopOnMouseEnter: true}, static(items(2), nil), itemSlide, noOpLogger())
		s.Load(context.Background())

		s.PointerEnter()
		s.tick()
		assert.Equal(t, 0, s.Frame().Index)
		assert.False(t, s.Frame().Autoplay)

		s.PointerLeave()
		s.tick()
		assert.Equal(t, 1, s.Frame().Index)
	})

	t.Run("pointer ignored without option", func(t *testing.T) {
		s := New(Options{Delay: time.Hour}, static(items(2), nil), itemSlide, noOpLogger())
		s.Load(context.Background())
		s.PointerEnter()
		s.tick()
		assert.Equal(t, 1, s.Frame().Index)
	})
}

func TestSlider_CloseAbortsFetch(t *testing.T) {
	var aborted atomic.Bool
	started := make(chan struct{})

	s := New(Options{Delay: time.Millisecond}, func(ctx context.Context) ([]item, error) {
		close(started)
		<-ctx.Done()
		aborted.Store(true)
		return items(4), nil
	}, itemSlide, noOpLogger())

	s.Mount(context.Background())
	<-started
	s.Close()

	assert.True(t, aborted.Load())
	assert.Equal(t, Loading, s.State())

	// closing twice is a no-op
	s.Close()
}

func TestSlider_ParentCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := New(Options{Delay: time.Millisecond}, static(items(2), nil), itemSlide, noOpLogger())
	s.Mount(ctx)

	assert.Eventually(t, func() bool { return s.State() == Populated }, time.Second, time.Millisecond)
	cancel()
	s.Close()
}

func TestSlider_Remount(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})

	s := New(Options{Delay: time.Hour, StopOnInteraction: true}, func(ctx context.Context) ([]item, error) {
		if calls.Add(1) == 1 {
			return items(3), nil
		}
		select {
		case <-release:
			return items(2), nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}, itemSlide, noOpLogger())

	s.Mount(context.Background())
	require.Eventually(t, func() bool { return s.State() == Populated }, time.Second, time.Millisecond)
	s.Advance()
	s.Interact()
	s.Close()

	s.Mount(context.Background())
	f := s.Frame()
	assert.Equal(t, Loading.String(), f.State)
	assert.Empty(t, f.Slides)
	assert.Equal(t, 0, f.Index)
	assert.True(t, f.Autoplay)

	close(release)
	require.Eventually(t, func() bool { return s.State() == Populated }, time.Second, time.Millisecond)
	assert.Len(t, s.Frame().Slides, 2)
	s.Close()
}
