package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/eventdesk/admin-ui/internal/domain/model"
)

// ListRoles returns a page of roles with pagination meta.
func (c *Client) ListRoles(ctx context.Context, opts model.ListOptions) ([]model.Role, *model.ListMeta, error) {
	var items []model.Role
	meta, err := c.get(ctx, "/roles", listQuery(opts), &items)
	if err != nil {
		return nil, nil, err
	}
	return items, meta, nil
}

// CreateRole creates a role.
func (c *Client) CreateRole(ctx context.Context, req model.CreateRoleRequest) (*model.Role, error) {
	var out model.Role
	body := map[string]any{"role": req}
	if err := c.mutate(ctx, http.MethodPost, "/roles", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRole updates a role by server-assigned ID.
func (c *Client) UpdateRole(ctx context.Context, id string, req model.UpdateRoleRequest) (*model.Role, error) {
	var out model.Role
	body := map[string]any{"role": req}
	if err := c.mutate(ctx, http.MethodPut, "/roles/"+url.PathEscape(id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRole deletes a role by server-assigned ID.
func (c *Client) DeleteRole(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, "/roles/"+url.PathEscape(id), nil, nil)
}
