package admin

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/daniilsolovey/media-portal/internal/apiclient"
)

type Mode int

const (
	Create Mode = iota
	Update
)

// Form is the editable state of one record. Forms never talk to the backend
// directly; the panel turns them into a single request.
type Form[T any] interface {
	Fill(T)
	Bind(Input)
	Validate(Mode) error
	Payload(Mode) *apiclient.Payload
	Fields(Mode) []Field
}

// Preparer is implemented by forms that need lookup data, such as the
// category list of a news form.
type Preparer interface {
	Prepare(ctx context.Context, api *apiclient.Client) error
}

// Uploader is implemented by forms whose files are stored before the record
// itself is written.
type Uploader interface {
	Upload(ctx context.Context, api *apiclient.Client) error
}

// Input is submitted form data with uploaded files already read into memory.
type Input struct {
	Values url.Values
	Files  map[string][]apiclient.File
}

func (in Input) Get(key string) string {
	return strings.TrimSpace(in.Values.Get(key))
}

// Raw returns the value without trimming, for rich text bodies.
func (in Input) Raw(key string) string {
	return in.Values.Get(key)
}

func (in Input) Bool(key string) bool {
	switch in.Values.Get(key) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

func (in Input) File(key string) *apiclient.File {
	files := in.Files[key]
	if len(files) == 0 {
		return nil
	}
	f := files[0]
	return &f
}

func (in Input) FileList(key string) []apiclient.File {
	return in.Files[key]
}

type FieldKind string

const (
	KindText     FieldKind = "text"
	KindTextarea FieldKind = "textarea"
	KindDate     FieldKind = "date"
	KindSelect   FieldKind = "select"
	KindCheckbox FieldKind = "checkbox"
	KindFile     FieldKind = "file"
	KindFiles    FieldKind = "files"
	KindHidden   FieldKind = "hidden"
)

type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Field describes one form control for rendering.
type Field struct {
	Name     string
	Label    string
	Kind     FieldKind
	Value    string
	Checked  bool
	Required bool
	Options  []Option
	Previews []string
	Hint     string
}

func dateOnly(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(time.DateOnly, s)
	return t, err == nil
}
