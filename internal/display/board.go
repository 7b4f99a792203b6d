package display

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/daniilsolovey/media-portal/internal/carousel"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

var (
	ErrBoardNotFound  = errors.New("board not found")
	ErrLayoutNotFound = errors.New("layout not found")
	ErrSliderNotFound = errors.New("slider not found")
	ErrUnknownAction  = errors.New("unknown action")
	ErrTooManyBoards  = errors.New("too many boards mounted")
)

type Action string

const (
	ActionInteract Action = "interact"
	ActionEnter    Action = "enter"
	ActionLeave    Action = "leave"
	ActionNext     Action = "next"
)

type Config struct {
	BoardTTL     time.Duration
	ReapSchedule string
	MaxBoards    int
}

func (c Config) withDefaults() Config {
	if c.BoardTTL <= 0 {
		c.BoardTTL = 2 * time.Minute
	}
	if c.ReapSchedule == "" {
		c.ReapSchedule = "@every 1m"
	}
	if c.MaxBoards <= 0 {
		c.MaxBoards = 64
	}
	return c
}

// Board is one mounted kiosk screen. Its sliders run until the board is
// unmounted.
type Board struct {
	ID     string
	Layout string
	Locale string

	sliders []carousel.Engine
	cancel  context.CancelFunc

	mu       sync.Mutex
	lastSeen time.Time
}

func (b *Board) touch(now time.Time) {
	b.mu.Lock()
	b.lastSeen = now
	b.mu.Unlock()
}

func (b *Board) seen() time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastSeen
}

func (b *Board) Frames() []carousel.Frame {
	frames := make([]carousel.Frame, len(b.sliders))
	for i, s := range b.sliders {
		frames[i] = s.Frame()
	}
	return frames
}

func (b *Board) slider(name string) (carousel.Engine, bool) {
	for _, s := range b.sliders {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

func (b *Board) close() {
	b.cancel()
	for _, s := range b.sliders {
		s.Close()
	}
}

// Registry owns the mounted boards. Boards that stop polling are unmounted
// by a cron job.
type Registry struct {
	sliders *Sliders
	cfg     Config
	log     *slog.Logger
	now     func() time.Time
	cron    *cron.Cron

	mu     sync.Mutex
	boards map[string]*Board
}

func NewRegistry(sliders *Sliders, cfg Config, log *slog.Logger) *Registry {
	return &Registry{
		sliders: sliders,
		cfg:     cfg.withDefaults(),
		log:     log,
		now:     time.Now,
		boards:  make(map[string]*Board),
	}
}

// Start schedules the stale board reaper.
func (r *Registry) Start() error {
	r.cron = cron.New()
	if _, err := r.cron.AddFunc(r.cfg.ReapSchedule, func() {
		if n := r.Reap(); n > 0 {
			r.log.Info("reaped stale boards", "count", n)
		}
	}); err != nil {
		return err
	}

	r.cron.Start()
	return nil
}

// Stop halts the reaper and unmounts every board.
func (r *Registry) Stop() {
	if r.cron != nil {
		<-r.cron.Stop().Done()
	}

	r.mu.Lock()
	boards := r.boards
	r.boards = make(map[string]*Board)
	r.mu.Unlock()

	for _, b := range boards {
		b.close()
	}
}

// Mount starts a board with the sliders of the layout. The board lifetime
// is independent of the calling request.
func (r *Registry) Mount(layoutName, locale string) (*Board, error) {
	layout, ok := LookupLayout(layoutName)
	if !ok {
		return nil, ErrLayoutNotFound
	}

	r.mu.Lock()
	if len(r.boards) >= r.cfg.MaxBoards {
		r.mu.Unlock()
		return nil, ErrTooManyBoards
	}

	ctx, cancel := context.WithCancel(context.Background())
	b := &Board{
		ID:       uuid.NewString(),
		Layout:   layout.Name,
		Locale:   locale,
		sliders:  r.sliders.BuildLayout(layout, locale),
		cancel:   cancel,
		lastSeen: r.now(),
	}
	r.boards[b.ID] = b
	r.mu.Unlock()

	for _, s := range b.sliders {
		s.Mount(ctx)
	}

	r.log.Info("board mounted", "board", b.ID, "layout", b.Layout, "locale", locale)
	return b, nil
}

func (r *Registry) board(id string) (*Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.boards[id]
	if !ok {
		return nil, ErrBoardNotFound
	}
	return b, nil
}

// Frames returns the current frame of every slider on the board and marks
// the board as alive.
func (r *Registry) Frames(id string) ([]carousel.Frame, error) {
	b, err := r.board(id)
	if err != nil {
		return nil, err
	}

	b.touch(r.now())
	return b.Frames(), nil
}

func (r *Registry) Interact(id, sliderName string, action Action) (carousel.Frame, error) {
	b, err := r.board(id)
	if err != nil {
		return carousel.Frame{}, err
	}
	b.touch(r.now())

	s, ok := b.slider(sliderName)
	if !ok {
		return carousel.Frame{}, ErrSliderNotFound
	}

	switch action {
	case ActionInteract:
		s.Interact()
	case ActionEnter:
		s.PointerEnter()
	case ActionLeave:
		s.PointerLeave()
	case ActionNext:
		s.Advance()
	default:
		return carousel.Frame{}, ErrUnknownAction
	}

	return s.Frame(), nil
}

// Unmount stops the board's sliders and aborts their in-flight fetches.
func (r *Registry) Unmount(id string) error {
	r.mu.Lock()
	b, ok := r.boards[id]
	delete(r.boards, id)
	r.mu.Unlock()

	if !ok {
		return ErrBoardNotFound
	}

	b.close()
	r.log.Info("board unmounted", "board", id)
	return nil
}

// Reap unmounts boards that have not been polled within the TTL.
func (r *Registry) Reap() int {
	deadline := r.now().Add(-r.cfg.BoardTTL)

	r.mu.Lock()
	var stale []*Board
	for id, b := range r.boards {
		if b.seen().Before(deadline) {
			stale = append(stale, b)
			delete(r.boards, id)
		}
	}
	r.mu.Unlock()

	for _, b := range stale {
		b.close()
	}
	return len(stale)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.boards)
}
