package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/eventdesk/admin-ui/internal/domain/model"
)

// ListEventTypes returns a page of event types with pagination meta.
func (c *Client) ListEventTypes(ctx context.Context, opts model.ListOptions) ([]model.EventType, *model.ListMeta, error) {
	var items []model.EventType
	meta, err := c.get(ctx, "/event_types", listQuery(opts), &items)
	if err != nil {
		return nil, nil, err
	}
	return items, meta, nil
}

// CreateEventType creates an event type.
func (c *Client) CreateEventType(ctx context.Context, req model.CreateEventTypeRequest) (*model.EventType, error) {
	var out model.EventType
	body := map[string]any{"event_type": req}
	if err := c.mutate(ctx, http.MethodPost, "/event_types", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEventType updates an event type by server-assigned ID.
func (c *Client) UpdateEventType(ctx context.Context, id string, req model.UpdateEventTypeRequest) (*model.EventType, error) {
	var out model.EventType
	body := map[string]any{"event_type": req}
	if err := c.mutate(ctx, http.MethodPut, "/event_types/"+url.PathEscape(id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEventType deletes an event type by server-assigned ID.
func (c *Client) DeleteEventType(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, "/event_types/"+url.PathEscape(id), nil, nil)
}
