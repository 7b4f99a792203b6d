package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/daniilsolovey/media-portal/internal/display"
	"github.com/daniilsolovey/media-portal/internal/portal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmkteam/zenrpc/v2"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type newsSource struct{}

func (newsSource) LatestNews(_ context.Context, limit int) ([]portal.News, error) {
	news := make([]portal.News, limit)
	for i := range news {
		news[i] = portal.News{ID: "n1", Title: "Yangilik", Slug: "yangilik"}
	}
	return news, nil
}

func (newsSource) TodayBirthdays(context.Context) ([]portal.Employee, error) { return nil, nil }

func (newsSource) HonoraryEmployees(context.Context) ([]portal.HonoraryEmployee, error) {
	return nil, nil
}

func (newsSource) EventPhotos(context.Context, int, int) ([]portal.EventPhoto, error) {
	return nil, nil
}

func (newsSource) Announcements(context.Context) ([]portal.Announcement, error) { return nil, nil }

func newRegistry(t *testing.T) *display.Registry {
	t.Helper()
	reg := display.NewRegistry(display.NewSliders(newsSource{}, noOpLogger()), display.Config{}, noOpLogger())
	t.Cleanup(reg.Stop)
	return reg
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func call(t *testing.T, h http.Handler, method string, params any) rpcResponse {
	t.Helper()

	body, err := json.Marshal(map[string]any{"jsonrpc": "2.0", "id": 1, "method": method, "params": params})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/rpc", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestDisplayService_OverHTTP(t *testing.T) {
	srv := New(noOpLogger(), newRegistry(t))

	resp := call(t, srv, "display.mount", map[string]any{"layout": "compact"})
	require.Nil(t, resp.Error)

	var board Board
	require.NoError(t, json.Unmarshal(resp.Result, &board))
	require.NotEmpty(t, board.BoardID)
	assert.Equal(t, "compact", board.Layout)
	assert.Equal(t, "uz", board.Locale)
	require.Len(t, board.Frames, 5)
	assert.Equal(t, "main-news", board.Frames[1].Name)

	assert.Eventually(t, func() bool {
		resp := call(t, srv, "display.frames", []any{board.BoardID})
		var frames []Frame
		if resp.Error != nil || json.Unmarshal(resp.Result, &frames) != nil {
			return false
		}
		return frames[1].State == "populated" && len(frames[1].Slides) == 10
	}, time.Second, 10*time.Millisecond)

	resp = call(t, srv, "display.interact", map[string]any{"boardId": board.BoardID, "slider": "mini-news", "action": "next"})
	require.Nil(t, resp.Error)
	var frame Frame
	require.NoError(t, json.Unmarshal(resp.Result, &frame))
	assert.Equal(t, "mini-news", frame.Name)

	resp = call(t, srv, "display.unmount", map[string]any{"boardId": board.BoardID})
	require.Nil(t, resp.Error)
	assert.JSONEq(t, "true", string(resp.Result))

	resp = call(t, srv, "display.frames", map[string]any{"boardId": board.BoardID})
	require.NotNil(t, resp.Error)
	assert.Equal(t, 404, resp.Error.Code)
}

func TestDisplayService_Errors(t *testing.T) {
	s := NewDisplayService(newRegistry(t))
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
		code int
	}{
		{
			name: "unknown layout",
			call: func() error { _, err := s.Mount(ctx, "weather", "uz"); return err },
			code: 400,
		},
		{
			name: "unknown locale",
			call: func() error { _, err := s.Mount(ctx, "display", "en"); return err },
			code: 400,
		},
		{
			name: "unknown board",
			call: func() error { _, err := s.Frames(ctx, "missing"); return err },
			code: 404,
		},
		{
			name: "unknown board on unmount",
			call: func() error { _, err := s.Unmount(ctx, "missing"); return err },
			code: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			var rpcErr *zenrpc.Error
			require.ErrorAs(t, err, &rpcErr)
			assert.Equal(t, tt.code, rpcErr.Code)
		})
	}

	t.Run("unknown action", func(t *testing.T) {
		b, err := s.Mount(ctx, "home", "kr")
		require.NoError(t, err)

		_, err = s.Interact(ctx, b.BoardID, "events-gallery", "swipe")
		var rpcErr *zenrpc.Error
		require.ErrorAs(t, err, &rpcErr)
		assert.Equal(t, 400, rpcErr.Code)

		_, err = s.Interact(ctx, b.BoardID, "birthdays", "next")
		require.ErrorAs(t, err, &rpcErr)
		assert.Equal(t, 404, rpcErr.Code)
	})
}
