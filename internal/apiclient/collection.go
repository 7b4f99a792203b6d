package apiclient

import (
	"context"
	"net/http"
	"net/url"
)

// Collection is one backend collection endpoint (/news, /employees, ...)
// with the list/get/create/update/delete operations they all share.
type Collection[T any] struct {
	client *Client
	path   string
}

func NewCollection[T any](c *Client, path string) Collection[T] {
	return Collection[T]{client: c, path: path}
}

func (c *Client) News() Collection[News] {
	return NewCollection[News](c, "/news")
}

func (c *Client) Categories() Collection[Category] {
	return NewCollection[Category](c, "/categories")
}

func (c *Client) Employees() Collection[Employee] {
	return NewCollection[Employee](c, "/employees")
}

func (c *Client) HonoraryEmployees() Collection[HonoraryEmployee] {
	return NewCollection[HonoraryEmployee](c, "/honorary-employees")
}

func (c *Client) Events() Collection[Event] {
	return NewCollection[Event](c, "/events")
}

func (c *Client) Announcements() Collection[Announcement] {
	return NewCollection[Announcement](c, "/announcements")
}

func (col Collection[T]) Path() string {
	return col.path
}

// List returns one page of the collection. Pagination is nil when the backend
// does not paginate the endpoint.
func (col Collection[T]) List(ctx context.Context, params ListParams) ([]T, *Pagination, error) {
	env, err := call[[]T](ctx, col.client, http.MethodGet, withQuery(col.path, params.values()), nil)
	if err != nil {
		return nil, nil, err
	}

	pagination := env.Pagination
	if pagination == nil && env.Total != nil {
		pagination = &Pagination{TotalItems: *env.Total}
	}

	return env.Data, pagination, nil
}

func (col Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	env, err := call[T](ctx, col.client, http.MethodGet, col.path+"/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (col Collection[T]) Create(ctx context.Context, p *Payload) (*T, error) {
	env, err := call[T](ctx, col.client, http.MethodPost, col.path, p)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (col Collection[T]) Update(ctx context.Context, id string, p *Payload) (*T, error) {
	env, err := call[T](ctx, col.client, http.MethodPut, col.path+"/"+url.PathEscape(id), p)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

func (col Collection[T]) Delete(ctx context.Context, id string) error {
	_, err := call[any](ctx, col.client, http.MethodDelete, col.path+"/"+url.PathEscape(id), nil)
	return err
}

// Count asks for a single-item page and reads the total from pagination.
func (col Collection[T]) Count(ctx context.Context) (int, error) {
	items, pagination, err := col.List(ctx, ListParams{Limit: 1})
	if err != nil {
		return 0, err
	}
	if pagination != nil {
		return pagination.TotalItems, nil
	}
	return len(items), nil
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
