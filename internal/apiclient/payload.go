package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"sort"
)

// File is one uploaded file carried in a multipart payload.
type File struct {
	Field       string
	Name        string
	ContentType string
	Data        []byte
}

// Payload is the body of a mutating request. A payload with JSON set is sent as
// application/json, anything else as multipart/form-data.
type Payload struct {
	JSON   any
	Fields url.Values
	Files  []File
}

func JSONPayload(v any) *Payload {
	return &Payload{JSON: v}
}

func FormPayload() *Payload {
	return &Payload{Fields: url.Values{}}
}

// Set adds a form field, skipping empty values so that optional fields left
// blank are omitted instead of cleared.
func (p *Payload) Set(key, value string) *Payload {
	if value == "" {
		return p
	}
	if p.Fields == nil {
		p.Fields = url.Values{}
	}
	p.Fields.Set(key, value)
	return p
}

func (p *Payload) Attach(files ...File) *Payload {
	p.Files = append(p.Files, files...)
	return p
}

func (p *Payload) encode() (io.Reader, string, error) {
	if p == nil {
		return nil, "", nil
	}

	if p.JSON != nil {
		b, err := json.Marshal(p.JSON)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(b), "application/json", nil
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(p.Fields))
	for k := range p.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		for _, v := range p.Fields[k] {
			if err := mw.WriteField(k, v); err != nil {
				return nil, "", fmt.Errorf("write field %s: %w", k, err)
			}
		}
	}

	for _, f := range p.Files {
		ct := f.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.Field, f.Name))
		h.Set("Content-Type", ct)

		part, err := mw.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("create part %s: %w", f.Field, err)
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, "", fmt.Errorf("write part %s: %w", f.Field, err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", err
	}

	return &buf, mw.FormDataContentType(), nil
}
