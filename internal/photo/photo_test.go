package photo

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/daniilsolovey/media-portal/internal/apiclient"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		for y := range h {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func fileHeader(t *testing.T, name string, data []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("photo", name)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(MaxSize))
	return req.MultipartForm.File["photo"][0]
}

func TestPreview(t *testing.T) {
	url, err := Preview(pngBytes(t, 800, 400))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "data:image/jpeg;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/jpeg;base64,"))
	require.NoError(t, err)
	img, err := imaging.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
	assert.Equal(t, 160, img.Bounds().Dy())

	_, err = Preview([]byte("not an image"))
	assert.Error(t, err)
}

func TestPreviews(t *testing.T) {
	files := []apiclient.File{
		{Data: pngBytes(t, 10, 10)},
		{Data: []byte("broken")},
	}
	assert.Len(t, Previews(files), 1)
}

func TestRead(t *testing.T) {
	f, err := Read(fileHeader(t, "a.png", pngBytes(t, 4, 4)))
	require.NoError(t, err)
	assert.Equal(t, "a.png", f.Name)
	assert.Equal(t, "image/png", f.ContentType)
	assert.NotEmpty(t, f.Data)

	_, err = Read(fileHeader(t, "a.txt", []byte("hello world")))
	assert.ErrorIs(t, err, ErrNotImage)
}
