package portal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/daniilsolovey/media-portal/internal/apiclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, mux *http.ServeMux) *Manager {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return NewManager(apiclient.New(apiclient.Config{BaseURL: srv.URL + "/api", Timeout: time.Second}))
}

func reply(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func ok(data any) map[string]any {
	return map[string]any{"success": true, "data": data}
}

func TestManager_LatestNews(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/news", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("published"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		reply(w, http.StatusOK, ok([]map[string]any{
			{"_id": "n1", "title": "First", "slug": "first", "image": "/uploads/1.jpg"},
			{"_id": "n2", "title": "Second", "slug": "second", "image": "https://cdn/2.jpg"},
		}))
	})
	m := newTestManager(t, mux)

	list, err := m.LatestNews(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Contains(t, list[0].ImageURL, "/uploads/1.jpg")
	assert.True(t, len(list[0].ImageURL) > len("/uploads/1.jpg"))
	assert.Equal(t, "https://cdn/2.jpg", list[1].ImageURL)
}

func TestManager_NewsBySlug(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/news", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, ok([]map[string]any{
			{"_id": "n1", "title": "First", "slug": "first"},
		}))
	})
	mux.HandleFunc("/api/news/n7", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, ok(map[string]any{"_id": "n7", "title": "Seventh", "slug": "seventh"}))
	})
	mux.HandleFunc("/api/news/missing", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusNotFound, map[string]any{"success": false, "error": "News not found"})
	})
	m := newTestManager(t, mux)
	ctx := context.Background()

	n, err := m.NewsBySlug(ctx, "first")
	require.NoError(t, err)
	assert.Equal(t, "n1", n.ID)

	n, err = m.NewsBySlug(ctx, "n7")
	require.NoError(t, err)
	assert.Equal(t, "Seventh", n.Title)

	_, err = m.NewsBySlug(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManager_CategoryWithNews(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("active"))
		reply(w, http.StatusOK, ok([]map[string]any{
			{"_id": "c1", "name": "Sport", "slug": "sport", "isActive": true, "newsCount": 4},
		}))
	})
	mux.HandleFunc("/api/news/category/c1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		reply(w, http.StatusOK, ok([]map[string]any{{"_id": "n1", "title": "Match"}}))
	})
	m := newTestManager(t, mux)
	ctx := context.Background()

	cn, err := m.CategoryWithNews(ctx, "sport", 20)
	require.NoError(t, err)
	assert.Equal(t, "Sport", cn.Title)
	assert.Equal(t, 4, cn.ItemCount)
	require.Len(t, cn.News, 1)
	assert.Equal(t, "Match", cn.News[0].Title)

	_, err = m.CategoryWithNews(ctx, "culture", 20)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManager_TodayBirthdays(t *testing.T) {
	ctx := context.Background()

	t.Run("Endpoint", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/employees/today-birthdays", func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusOK, ok([]map[string]any{{"_id": "e1", "firstName": "Ali", "birthDate": "1990-05-20T00:00:00.000Z"}}))
		})
		m := newTestManager(t, mux)

		list, err := m.TodayBirthdays(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Ali", list[0].FullName())
		assert.Equal(t, PlaceholderPhoto, list[0].PhotoURL)
	})

	t.Run("FallbackFiltersLocally", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/employees/today-birthdays", func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusNotFound, map[string]any{"success": false, "error": "Route not found"})
		})
		mux.HandleFunc("/api/employees", func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusOK, ok([]map[string]any{
				{"_id": "e1", "birthDate": "1990-05-20T00:00:00.000Z"},
				{"_id": "e2", "birthDate": "1991-05-21T00:00:00.000Z"},
			}))
		})
		m := newTestManager(t, mux)
		m.now = func() time.Time { return time.Date(2024, time.May, 20, 9, 0, 0, 0, time.UTC) }

		list, err := m.TodayBirthdays(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "e1", list[0].ID)
	})

	t.Run("Failure", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/employees/today-birthdays", func(w http.ResponseWriter, r *http.Request) {
			reply(w, http.StatusInternalServerError, map[string]any{"success": false, "error": "boom"})
		})
		m := newTestManager(t, mux)

		_, err := m.TodayBirthdays(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})
}

func TestManager_Announcements(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/announcements", func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, ok([]map[string]any{
			{"_id": "a1", "title": "Open", "isActive": true},
			{"_id": "a2", "title": "Old", "isActive": true, "expiresAt": "2024-01-01T00:00:00.000Z"},
			{"_id": "a3", "title": "Later", "isActive": true, "expiresAt": "2030-01-01T00:00:00.000Z"},
		}))
	})
	m := newTestManager(t, mux)
	m.now = func() time.Time { return time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC) }

	list, err := m.Announcements(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a1", list[0].ID)
	assert.Equal(t, "a3", list[1].ID)
}

func TestManager_Stats(t *testing.T) {
	counts := map[string]int{
		"/api/news":               12,
		"/api/categories":         3,
		"/api/employees":          40,
		"/api/honorary-employees": 5,
		"/api/events":             7,
		"/api/announcements":      2,
	}

	mux := http.NewServeMux()
	for path, n := range counts {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			reply(w, http.StatusOK, map[string]any{
				"success":    true,
				"data":       []any{},
				"pagination": map[string]any{"currentPage": 1, "totalItems": n},
			})
		})
	}
	m := newTestManager(t, mux)

	stats, err := m.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{News: 12, Categories: 3, Employees: 40, HonoraryEmployees: 5, Events: 7, Announcements: 2}, stats)
}
