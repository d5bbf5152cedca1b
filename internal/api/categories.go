package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/eventdesk/admin-ui/internal/domain/model"
)

// ListCategories returns a page of categories with pagination meta.
func (c *Client) ListCategories(ctx context.Context, opts model.ListOptions) ([]model.Category, *model.ListMeta, error) {
	var items []model.Category
	meta, err := c.get(ctx, "/categories", listQuery(opts), &items)
	if err != nil {
		return nil, nil, err
	}
	return items, meta, nil
}

// CreateCategory creates a category. The request body is wrapped under the
// singular resource key per the API contract.
func (c *Client) CreateCategory(ctx context.Context, req model.CreateCategoryRequest) (*model.Category, error) {
	var out model.Category
	body := map[string]any{"category": req}
	if err := c.mutate(ctx, http.MethodPost, "/categories", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCategory updates a category by server-assigned ID.
func (c *Client) UpdateCategory(ctx context.Context, id string, req model.UpdateCategoryRequest) (*model.Category, error) {
	var out model.Category
	body := map[string]any{"category": req}
	if err := c.mutate(ctx, http.MethodPut, "/categories/"+url.PathEscape(id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCategory deletes a category by server-assigned ID.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, "/categories/"+url.PathEscape(id), nil, nil)
}
