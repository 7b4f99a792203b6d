package carousel

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type State int

const (
	Loading State = iota
	Empty
	Populated
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Empty:
		return "empty"
	case Populated:
		return "populated"
	default:
		return "unknown"
	}
}

// FetchFunc loads the records shown by a slider. It must honour ctx.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Template renders one record as a slide.
type Template[T any] func(T) Slide

type Slide struct {
	ID       string `json:"id,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
	Title    string `json:"title"`
	Label    string `json:"label,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Link     string `json:"link,omitempty"`
	Badge    string `json:"badge,omitempty"`
}

type Options struct {
	Name              string
	Delay             time.Duration
	PageSize          int
	Limit             int
	StopOnInteraction bool
	StopOnMouseEnter  bool
}

// Frame is a snapshot of a slider, independent of its record type.
type Frame struct {
	Name     string  `json:"name"`
	State    string  `json:"state"`
	Index    int     `json:"index"`
	Pages    int     `json:"pages"`
	DelayMS  int64   `json:"delayMs"`
	Autoplay bool    `json:"autoplay"`
	Visible  []Slide `json:"visible"`
	Slides   []Slide `json:"slides"`
}

// Engine is the record-independent surface of a Slider.
type Engine interface {
	Name() string
	Load(ctx context.Context) State
	Mount(ctx context.Context)
	Close()
	Advance() int
	Interact()
	PointerEnter()
	PointerLeave()
	Frame() Frame
}

// Slider fetches a list once and pages through its slides. After Mount the
// slider owns an autoplay goroutine that lives until Close or until the
// mount context is cancelled.
type Slider[T any] struct {
	opts  Options
	fetch FetchFunc[T]
	tmpl  Template[T]
	log   *slog.Logger

	mu      sync.Mutex
	state   State
	slides  []Slide
	index   int
	stopped bool
	paused  bool

	cancel context.CancelFunc
	done   chan struct{}
}

var _ Engine = (*Slider[struct{}])(nil)

func New[T any](opts Options, fetch FetchFunc[T], tmpl Template[T], log *slog.Logger) *Slider[T] {
	if opts.PageSize <= 0 {
		opts.PageSize = 1
	}
	if log == nil {
		log = slog.Default()
	}

	return &Slider[T]{
		opts:  opts,
		fetch: fetch,
		tmpl:  tmpl,
		log:   log.With("slider", opts.Name),
	}
}

func (s *Slider[T]) Name() string {
	return s.opts.Name
}

// Load performs one fetch. A failed fetch is logged and leaves the slider
// Empty. Results that arrive after ctx is done are dropped.
func (s *Slider[T]) Load(ctx context.Context) State {
	items, err := s.fetch(ctx)
	if ctx.Err() != nil {
		s.log.Debug("discarding slider load", "err", ctx.Err())
		return s.State()
	}

	if err != nil {
		s.log.Warn("slider fetch failed", "err", err)
		items = nil
	}

	if s.opts.Limit > 0 && len(items) > s.opts.Limit {
		items = items[:s.opts.Limit]
	}

	slides := make([]Slide, len(items))
	for i := range items {
		slides[i] = s.tmpl(items[i])
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.slides = slides
	s.index = 0
	if len(slides) == 0 {
		s.state = Empty
	} else {
		s.state = Populated
	}

	return s.state
}

// Mount loads the slider in the background and starts autoplay. A remount
// after Close starts over from Loading. Calling Mount on a mounted slider
// does nothing.
func (s *Slider[T]) Mount(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return
	}

	s.state = Loading
	s.slides = nil
	s.index = 0
	s.stopped = false
	s.paused = false

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx, s.done)
}

func (s *Slider[T]) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	if s.Load(ctx) != Populated || s.opts.Delay <= 0 {
		return
	}

	ticker := time.NewTicker(s.opts.Delay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Slider[T]) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || s.paused {
		return
	}
	s.advance()
}

// Close cancels the slider lifetime, aborting an in-flight fetch, and waits
// for the autoplay goroutine to exit.
func (s *Slider[T]) Close() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (s *Slider[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Advance moves one page forward, wrapping to the first page after the last.
func (s *Slider[T]) Advance() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.advance()
}

func (s *Slider[T]) advance() int {
	pages := s.pages()
	if pages == 0 {
		return 0
	}
	s.index = (s.index + 1) % pages
	return s.index
}

func (s *Slider[T]) pages() int {
	return (len(s.slides) + s.opts.PageSize - 1) / s.opts.PageSize
}

// Interact records a pointer interaction. Autoplay stops for good when the
// slider is configured to stop on interaction.
func (s *Slider[T]) Interact() {
	if !s.opts.StopOnInteraction {
		return
	}
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
}

func (s *Slider[T]) PointerEnter() {
	if !s.opts.StopOnMouseEnter {
		return
	}
	s.mu.Lock()
	s.paused = true
	s.mu.Unlock()
}

func (s *Slider[T]) PointerLeave() {
	s.mu.Lock()
	s.paused = false
	s.mu.Unlock()
}

func (s *Slider[T]) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := Frame{
		Name:     s.opts.Name,
		State:    s.state.String(),
		Index:    s.index,
		Pages:    s.pages(),
		DelayMS:  s.opts.Delay.Milliseconds(),
		Autoplay: s.opts.Delay > 0 && !s.stopped && !s.paused,
		Slides:   append([]Slide(nil), s.slides...),
	}

	if f.Pages > 0 {
		start := s.index * s.opts.PageSize
		end := min(start+s.opts.PageSize, len(s.slides))
		f.Visible = append([]Slide(nil), s.slides[start:end]...)
	}

	return f
}
