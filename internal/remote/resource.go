package remote

import (
	"context"
	"fmt"
	"net/http"
)

// Resource is the typed view of one collection, e.g. /api/proveedores.
type Resource[T any] struct {
	client *Client
	name   string
}

// NewResource binds a collection name to the client.
func NewResource[T any](client *Client, name string) *Resource[T] {
	return &Resource[T]{client: client, name: name}
}

// Name returns the collection name used in the URL.
func (r *Resource[T]) Name() string { return r.name }

// List fetches the full collection.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.client.do(ctx, "list", r.name, http.MethodGet, 0, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Create posts a new record. The payload never carries the id.
func (r *Resource[T]) Create(ctx context.Context, payload any) (T, error) {
	var created T
	err := r.client.do(ctx, "create", r.name, http.MethodPost, 0, payload, &created)
	return created, err
}

// Update replaces the record identified by id.
func (r *Resource[T]) Update(ctx context.Context, id int64, payload any) (T, error) {
	var updated T
	if id <= 0 {
		return updated, fmt.Errorf("remote: update %s: invalid id %d", r.name, id)
	}
	err := r.client.do(ctx, "update", r.name, http.MethodPut, id, payload, &updated)
	return updated, err
}

// Delete removes the record identified by id. The response body is ignored.
func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("remote: delete %s: invalid id %d", r.name, id)
	}
	return r.client.do(ctx, "delete", r.name, http.MethodDelete, id, nil, nil)
}
