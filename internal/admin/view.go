package admin

import (
	"context"
	"errors"
	"strings"
)

// Row is one table row of an admin list.
type Row struct {
	ID       string
	ImageURL string
	Cells    []string
	Active   bool
}

// View is a render-ready snapshot of a panel.
type View struct {
	Name         string
	Title        string
	State        string
	Columns      []string
	Rows         []Row
	Total        int
	CanToggle    bool
	DeletePrompt string

	FormOpen    bool
	EditID      string
	Form        []Field
	Error       string
	FieldErrors map[string]string
	ListError   string
}

// Handle is the record-independent surface of a Panel used by HTTP handlers.
type Handle interface {
	Mount(ctx context.Context) error
	Reload(ctx context.Context) error
	OpenCreate(ctx context.Context) error
	OpenEdit(ctx context.Context, id string) error
	Bind(in Input)
	Submit(ctx context.Context) error
	Delete(ctx context.Context, id string, confirm Confirmer) error
	ToggleActive(ctx context.Context, id string) error
	State() State
	Row(id string) (Row, bool)
	View() View
}

func (p *Panel[T, F]) rows() []Row {
	rows := make([]Row, len(p.items))
	for i, item := range p.items {
		if p.cfg.Row != nil {
			rows[i] = p.cfg.Row(item, p.api.ResolveURL)
		}
		rows[i].ID = item.RecordID()
	}
	return rows
}

func (p *Panel[T, F]) Row(id string) (Row, bool) {
	item, ok := p.find(id)
	if !ok {
		return Row{}, false
	}

	row := Row{ID: id}
	if p.cfg.Row != nil {
		row = p.cfg.Row(item, p.api.ResolveURL)
		row.ID = id
	}
	return row, true
}

func (p *Panel[T, F]) View() View {
	p.mu.Lock()
	defer p.mu.Unlock()

	v := View{
		Name:         p.cfg.Name,
		Title:        p.cfg.Title,
		State:        p.state.String(),
		Columns:      p.cfg.Columns,
		Rows:         p.rows(),
		Total:        len(p.items),
		CanToggle:    p.cfg.Toggle != nil,
		DeletePrompt: p.cfg.DeletePrompt,
		EditID:       p.editID,
	}

	if p.pagination != nil && p.pagination.TotalItems > v.Total {
		v.Total = p.pagination.TotalItems
	}

	if p.hasForm {
		mode := Create
		if p.editID != "" {
			mode = Update
		}
		v.FormOpen = true
		v.Form = p.form.Fields(mode)
		for i := range v.Form {
			for j, src := range v.Form[i].Previews {
				if !strings.HasPrefix(src, "data:") {
					v.Form[i].Previews[j] = p.api.ResolveURL(src)
				}
			}
		}
	}

	if p.err != nil {
		v.Error = p.err.Error()
		var ve *ValidationError
		if errors.As(p.err, &ve) {
			v.FieldErrors = ve.Fields
		}
	}

	if p.listErr != nil {
		v.ListError = p.listErr.Error()
	}

	return v
}
