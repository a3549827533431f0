package remote

import (
	"context"
	"net/http"
	"net/url"
)

// resource implements the generic CRUD endpoints of one rental API collection
// ("/lojas/", "/lojas/{id}", ...).
type resource[T any] struct {
	client *Client
	path   string
}

func newResource[T any](c *Client, path string) resource[T] {
	return resource[T]{client: c, path: path}
}

func (r resource[T]) item(id string) string {
	return r.path + url.PathEscape(id)
}

func (r resource[T]) list(ctx context.Context, path string) ([]T, error) {
	var items []T
	if _, err := r.client.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (r resource[T]) List(ctx context.Context) ([]T, error) {
	return r.list(ctx, r.path)
}

func (r resource[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var item T
	if _, err := r.client.do(ctx, http.MethodGet, r.item(id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create posts item and returns the stored record, or item itself when the API answers
// without a body.
func (r resource[T]) Create(ctx context.Context, item *T) (*T, error) {
	var created T
	decoded, err := r.client.do(ctx, http.MethodPost, r.path, item, &created)
	if err != nil {
		return nil, err
	}
	if !decoded {
		return item, nil
	}
	return &created, nil
}

func (r resource[T]) Update(ctx context.Context, id string, item *T) (*T, error) {
	var updated T
	decoded, err := r.client.do(ctx, http.MethodPut, r.item(id), item, &updated)
	if err != nil {
		return nil, err
	}
	if !decoded {
		return item, nil
	}
	return &updated, nil
}

func (r resource[T]) Delete(ctx context.Context, id string) error {
	_, err := r.client.do(ctx, http.MethodDelete, r.item(id), nil, nil)
	return err
}
