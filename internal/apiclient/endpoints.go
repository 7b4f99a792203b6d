package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// TodayBirthdays returns employees whose birthday (month and day) is today,
// as computed by the backend.
func (c *Client) TodayBirthdays(ctx context.Context) ([]Employee, error) {
	env, err := call[[]Employee](ctx, c, http.MethodGet, "/employees/today-birthdays", nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) NewsByCategory(ctx context.Context, categoryID string, limit int) ([]News, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	path := withQuery("/news/category/"+url.PathEscape(categoryID), q)
	env, err := call[[]News](ctx, c, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// UploadImage stores one image through the backend and returns its absolute URL.
func (c *Client) UploadImage(ctx context.Context, f File) (string, error) {
	f.Field = "image"
	env, err := call[Upload](ctx, c, http.MethodPost, "/news/upload", FormPayload().Attach(f))
	if err != nil {
		return "", err
	}
	if env.Data.URL == "" {
		return "", fmt.Errorf("upload image: empty url in response")
	}
	return c.ResolveURL(env.Data.URL), nil
}

func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}

	env, err := call[LoginResult](ctx, c, http.MethodPost, "/admin/login", JSONPayload(body))
	if err != nil {
		return nil, err
	}
	if env.Data.Token == "" {
		return nil, &Error{Status: http.StatusUnauthorized, Message: "login returned no token"}
	}
	return &env.Data, nil
}

func (c *Client) Profile(ctx context.Context) (*Admin, error) {
	if c.token == "" {
		return nil, &Error{Status: http.StatusUnauthorized, Message: "Not authenticated"}
	}

	env, err := call[Admin](ctx, c, http.MethodGet, "/admin/profile", nil)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}
