package photo

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/daniilsolovey/media-portal/internal/apiclient"
	"github.com/disintegration/imaging"
)

const (
	MaxSize = 10 << 20

	previewWidth   = 320
	previewHeight  = 320
	previewQuality = 80
)

var (
	ErrNotImage = errors.New("file is not an image")
	ErrTooLarge = errors.New("file is too large")
)

// Read loads an uploaded form file into memory so it can be sent to the
// backend and previewed.
func Read(fh *multipart.FileHeader) (apiclient.File, error) {
	if fh.Size > MaxSize {
		return apiclient.File{}, ErrTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return apiclient.File{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxSize+1))
	if err != nil {
		return apiclient.File{}, fmt.Errorf("read upload: %w", err)
	}
	if len(data) > MaxSize {
		return apiclient.File{}, ErrTooLarge
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return apiclient.File{}, ErrNotImage
	}

	return apiclient.File{
		Name:        fh.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}

// Preview scales the image down to a thumbnail and returns it as a JPEG
// data URL that can be placed directly into an img src.
func Preview(data []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	thumb := imaging.Fit(img, previewWidth, previewHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(previewQuality)); err != nil {
		return "", fmt.Errorf("encode preview: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Previews builds previews for all files, skipping the ones that cannot be
// decoded.
func Previews(files []apiclient.File) []string {
	result := make([]string, 0, len(files))
	for _, f := range files {
		if p, err := Preview(f.Data); err == nil {
			result = append(result, p)
		}
	}
	return result
}
