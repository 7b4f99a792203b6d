package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/daniilsolovey/media-portal/internal/apiclient"
	"github.com/daniilsolovey/media-portal/internal/session"
)

const (
	DefaultPageSize = 100
	DefaultPrompt   = "Rostdan ham o'chirmoqchimisiz?"
)

type State int

const (
	Unauthenticated State = iota
	Loading
	Listed
	Creating
	Editing
	Submitting
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Loading:
		return "loading"
	case Listed:
		return "listed"
	case Creating:
		return "creating"
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	default:
		return "unknown"
	}
}

type Record interface {
	RecordID() string
}

// Resource is the backend collection a panel manages.
type Resource[T any] interface {
	List(ctx context.Context, params apiclient.ListParams) ([]T, *apiclient.Pagination, error)
	Create(ctx context.Context, p *apiclient.Payload) (*T, error)
	Update(ctx context.Context, id string, p *apiclient.Payload) (*T, error)
	Delete(ctx context.Context, id string) error
}

// Confirmer asks the operator to confirm a destructive action.
type Confirmer func(prompt string) bool

type Config[T Record, F Form[T]] struct {
	Name              string
	Title             string
	PageSize          int
	DeletePrompt      string
	ReloadAfterDelete bool
	Columns           []string

	Row      func(T, func(string) string) Row
	Resource func(*apiclient.Client) Resource[T]
	NewForm  func() F
	// Toggle builds the partial update flipping the record's active flag.
	// Panels without it cannot toggle.
	Toggle func(T) *apiclient.Payload
}

// Panel drives one admin list with its create/edit modal. A panel lives for
// a single request and reads its credentials from the injected session.
type Panel[T Record, F Form[T]] struct {
	cfg     Config[T, F]
	api     *apiclient.Client
	session session.Session
	log     *slog.Logger

	res Resource[T]

	mu         sync.Mutex
	state      State
	items      []T
	pagination *apiclient.Pagination
	form       F
	hasForm    bool
	editID     string
	err        error
	listErr    error
}

func New[T Record, F Form[T]](cfg Config[T, F], api *apiclient.Client, s session.Session, log *slog.Logger) *Panel[T, F] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.DeletePrompt == "" {
		cfg.DeletePrompt = DefaultPrompt
	}
	if log == nil {
		log = slog.Default()
	}

	return &Panel[T, F]{
		cfg:     cfg,
		api:     api,
		session: s,
		log:     log.With("panel", cfg.Name),
		state:   Unauthenticated,
	}
}

// Mount checks the session and loads the list. Without a token the panel
// stays Unauthenticated and no request is made.
func (p *Panel[T, F]) Mount(ctx context.Context) error {
	token := p.session.Token(ctx)
	if token == "" {
		p.mu.Lock()
		p.state = Unauthenticated
		p.mu.Unlock()
		return ErrUnauthenticated
	}

	p.api = p.api.WithToken(token)
	p.res = p.cfg.Resource(p.api)

	return p.Reload(ctx)
}

// Reload replaces the in-memory list with the first page from the backend.
// A failed reload keeps the previous list.
func (p *Panel[T, F]) Reload(ctx context.Context) error {
	if p.res == nil {
		return ErrUnauthenticated
	}

	p.mu.Lock()
	prev := p.state
	p.state = Loading
	p.mu.Unlock()

	items, pagination, err := p.res.List(ctx, apiclient.ListParams{Page: 1, Limit: p.cfg.PageSize})

	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil {
		if errors.Is(err, apiclient.ErrUnauthorized) {
			return p.expire(ctx)
		}
		p.log.Error("failed to load list", "err", err)
		p.listErr = err
		if prev == Creating || prev == Editing {
			p.state = prev
		} else {
			p.state = Listed
		}
		return fmt.Errorf("list %s: %w", p.cfg.Name, err)
	}

	p.items = items
	p.pagination = pagination
	p.listErr = nil
	if prev == Creating || prev == Editing {
		p.state = prev
	} else {
		p.state = Listed
	}
	return nil
}

// expire drops the session after the backend rejected the token. Callers
// hold p.mu.
func (p *Panel[T, F]) expire(ctx context.Context) error {
	if err := p.session.Destroy(ctx); err != nil {
		p.log.Error("failed to destroy session", "err", err)
	}
	p.state = Unauthenticated
	p.hasForm = false
	return ErrUnauthenticated
}

func (p *Panel[T, F]) prepare(ctx context.Context, form F) {
	pr, ok := any(form).(Preparer)
	if !ok {
		return
	}
	if err := pr.Prepare(ctx, p.api); err != nil {
		p.log.Warn("failed to prepare form", "err", err)
	}
}

// OpenCreate opens an empty form.
func (p *Panel[T, F]) OpenCreate(ctx context.Context) error {
	if err := p.ready(); err != nil {
		return err
	}

	form := p.cfg.NewForm()
	p.prepare(ctx, form)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.form, p.hasForm = form, true
	p.editID = ""
	p.err = nil
	p.state = Creating
	return nil
}

// OpenEdit opens a form filled from the in-memory record with the given id.
func (p *Panel[T, F]) OpenEdit(ctx context.Context, id string) error {
	if err := p.ready(); err != nil {
		return err
	}

	item, ok := p.find(id)
	if !ok {
		return ErrNotFound
	}

	form := p.cfg.NewForm()
	form.Fill(item)
	p.prepare(ctx, form)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.form, p.hasForm = form, true
	p.editID = id
	p.err = nil
	p.state = Editing
	return nil
}

// Bind applies submitted input to the open form.
func (p *Panel[T, F]) Bind(in Input) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.hasForm {
		p.form.Bind(in)
	}
}

// Form returns the open form.
func (p *Panel[T, F]) Form() (F, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form, p.hasForm
}

// Submit validates the open form and sends it as one create or update
// request. On success the form is reset and the list reloaded; on failure
// the form stays open with its input and the error.
func (p *Panel[T, F]) Submit(ctx context.Context) error {
	p.mu.Lock()

	switch p.state {
	case Submitting:
		p.mu.Unlock()
		return ErrSubmitInFlight
	case Creating, Editing:
	default:
		p.mu.Unlock()
		return ErrNoForm
	}

	mode := Create
	if p.state == Editing {
		mode = Update
	}

	form, id, prev := p.form, p.editID, p.state

	if err := form.Validate(mode); err != nil {
		p.err = err
		p.mu.Unlock()
		return err
	}

	p.state = Submitting
	p.err = nil
	p.mu.Unlock()

	err := p.send(ctx, form, mode, id)

	p.mu.Lock()
	if err != nil {
		if errors.Is(err, apiclient.ErrUnauthorized) {
			err = p.expire(ctx)
			p.mu.Unlock()
			return err
		}
		p.err = err
		p.state = prev
		p.mu.Unlock()
		return err
	}

	var zero F
	p.form, p.hasForm = zero, false
	p.editID = ""
	p.state = Loading
	p.mu.Unlock()

	p.log.Info("record saved", "id", id, "created", mode == Create)

	if err := p.Reload(ctx); err != nil && !errors.Is(err, ErrUnauthenticated) {
		p.log.Warn("reload after submit failed", "err", err)
	}
	return nil
}

func (p *Panel[T, F]) send(ctx context.Context, form F, mode Mode, id string) error {
	if up, ok := any(form).(Uploader); ok {
		if err := up.Upload(ctx, p.api); err != nil {
			return err
		}
	}

	payload := form.Payload(mode)
	if mode == Create {
		_, err := p.res.Create(ctx, payload)
		return err
	}

	_, err := p.res.Update(ctx, id, payload)
	return err
}

// Delete removes the record after confirmation. A nil confirm counts as
// declined. The record leaves the in-memory list as soon as the backend
// accepts the delete.
func (p *Panel[T, F]) Delete(ctx context.Context, id string, confirm Confirmer) error {
	if err := p.ready(); err != nil {
		return err
	}

	if confirm == nil || !confirm(p.cfg.DeletePrompt) {
		return nil
	}

	if err := p.res.Delete(ctx, id); err != nil {
		p.mu.Lock()
		defer p.mu.Unlock()
		if errors.Is(err, apiclient.ErrUnauthorized) {
			return p.expire(ctx)
		}
		p.err = err
		return err
	}

	p.mu.Lock()
	for i := range p.items {
		if p.items[i].RecordID() == id {
			p.items = append(p.items[:i:i], p.items[i+1:]...)
			break
		}
	}
	p.mu.Unlock()

	p.log.Info("record deleted", "id", id)

	if p.cfg.ReloadAfterDelete {
		if err := p.Reload(ctx); err != nil && !errors.Is(err, ErrUnauthenticated) {
			p.log.Warn("reload after delete failed", "err", err)
		}
	}
	return nil
}

// ToggleActive flips the record's active flag with a partial update and
// reloads the list.
func (p *Panel[T, F]) ToggleActive(ctx context.Context, id string) error {
	if err := p.ready(); err != nil {
		return err
	}
	if p.cfg.Toggle == nil {
		return fmt.Errorf("%s: toggle not supported", p.cfg.Name)
	}

	item, ok := p.find(id)
	if !ok {
		return ErrNotFound
	}

	if _, err := p.res.Update(ctx, id, p.cfg.Toggle(item)); err != nil {
		p.mu.Lock()
		defer p.mu.Unlock()
		if errors.Is(err, apiclient.ErrUnauthorized) {
			return p.expire(ctx)
		}
		p.err = err
		return err
	}

	return p.Reload(ctx)
}

func (p *Panel[T, F]) ready() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Unauthenticated || p.res == nil {
		return ErrUnauthenticated
	}
	return nil
}

func (p *Panel[T, F]) find(id string) (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, item := range p.items {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (p *Panel[T, F]) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Panel[T, F]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]T(nil), p.items...)
}

// Err is the last mutation error shown inline in the panel.
func (p *Panel[T, F]) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}
