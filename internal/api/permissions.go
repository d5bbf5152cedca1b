package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/eventdesk/admin-ui/internal/domain/model"
)

// ListPermissions returns a page of permissions with pagination meta.
func (c *Client) ListPermissions(ctx context.Context, opts model.ListOptions) ([]model.Permission, *model.ListMeta, error) {
	var items []model.Permission
	meta, err := c.get(ctx, "/permissions", listQuery(opts), &items)
	if err != nil {
		return nil, nil, err
	}
	return items, meta, nil
}

// CreatePermission creates a permission.
func (c *Client) CreatePermission(ctx context.Context, req model.CreatePermissionRequest) (*model.Permission, error) {
	var out model.Permission
	body := map[string]any{"permission": req}
	if err := c.mutate(ctx, http.MethodPost, "/permissions", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePermission updates a permission by server-assigned ID.
func (c *Client) UpdatePermission(ctx context.Context, id string, req model.UpdatePermissionRequest) (*model.Permission, error) {
	var out model.Permission
	body := map[string]any{"permission": req}
	if err := c.mutate(ctx, http.MethodPut, "/permissions/"+url.PathEscape(id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePermission deletes a permission by server-assigned ID.
func (c *Client) DeletePermission(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, "/permissions/"+url.PathEscape(id), nil, nil)
}
