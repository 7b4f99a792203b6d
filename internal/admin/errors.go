package admin

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnauthenticated = errors.New("admin session required")
	ErrSubmitInFlight  = errors.New("submit already in progress")
	ErrNotFound        = errors.New("record not found")
	ErrNoForm          = errors.New("no form is open")
)

const (
	msgRequiredAll    = "Iltimos, barcha maydonlarni to'ldiring"
	msgPhotoRequired  = "Rasm majburiy"
	msgPhotosRequired = "Kamida bitta rasm majburiy"
	msgRequired       = "Majburiy maydon"
	msgBadDate        = "Sana noto'g'ri"
	msgDateOrder      = "Tugash sanasi boshlanish sanasidan oldin bo'lmasligi kerak"
)

// ValidationError is returned by Submit when the form fails local checks.
// No request is sent in that case.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "invalid fields: " + strings.Join(names, ", ")
}

// validation collects field errors while a form checks its input.
type validation struct {
	fields map[string]string
}

func (v *validation) add(field, msg string) {
	if v.fields == nil {
		v.fields = make(map[string]string)
	}
	if _, ok := v.fields[field]; !ok {
		v.fields[field] = msg
	}
}

func (v *validation) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, msgRequired)
	}
}

func (v *validation) err(message string) error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Message: message, Fields: v.fields}
}
