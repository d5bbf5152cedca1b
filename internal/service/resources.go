package service

import (
	"context"
	"log/slog"

	"github.com/eventdesk/admin-ui/internal/api"
	"github.com/eventdesk/admin-ui/internal/domain/model"
)

// CategoryService runs the optimistic protocol for categories.
type CategoryService = ResourceService[model.Category, model.CreateCategoryRequest, model.UpdateCategoryRequest]

// EventTypeService runs the optimistic protocol for event types.
type EventTypeService = ResourceService[model.EventType, model.CreateEventTypeRequest, model.UpdateEventTypeRequest]

// RoleService runs the optimistic protocol for roles.
type RoleService = ResourceService[model.Role, model.CreateRoleRequest, model.UpdateRoleRequest]

// PermissionService runs the optimistic protocol for permissions.
type PermissionService = ResourceService[model.Permission, model.CreatePermissionRequest, model.UpdatePermissionRequest]

type categoryAPI struct{ c *api.Client }

func (a categoryAPI) List(ctx context.Context, opts model.ListOptions) ([]model.Category, *model.ListMeta, error) {
	return a.c.ListCategories(ctx, opts)
}
func (a categoryAPI) Create(ctx context.Context, req model.CreateCategoryRequest) (*model.Category, error) {
	return a.c.CreateCategory(ctx, req)
}
func (a categoryAPI) Update(ctx context.Context, id string, req model.UpdateCategoryRequest) (*model.Category, error) {
	return a.c.UpdateCategory(ctx, id, req)
}
func (a categoryAPI) Delete(ctx context.Context, id string) error {
	return a.c.DeleteCategory(ctx, id)
}

type eventTypeAPI struct{ c *api.Client }

func (a eventTypeAPI) List(ctx context.Context, opts model.ListOptions) ([]model.EventType, *model.ListMeta, error) {
	return a.c.ListEventTypes(ctx, opts)
}
func (a eventTypeAPI) Create(ctx context.Context, req model.CreateEventTypeRequest) (*model.EventType, error) {
	return a.c.CreateEventType(ctx, req)
}
func (a eventTypeAPI) Update(ctx context.Context, id string, req model.UpdateEventTypeRequest) (*model.EventType, error) {
	return a.c.UpdateEventType(ctx, id, req)
}
func (a eventTypeAPI) Delete(ctx context.Context, id string) error {
	return a.c.DeleteEventType(ctx, id)
}

type roleAPI struct{ c *api.Client }

func (a roleAPI) List(ctx context.Context, opts model.ListOptions) ([]model.Role, *model.ListMeta, error) {
	return a.c.ListRoles(ctx, opts)
}
func (a roleAPI) Create(ctx context.Context, req model.CreateRoleRequest) (*model.Role, error) {
	return a.c.CreateRole(ctx, req)
}
func (a roleAPI) Update(ctx context.Context, id string, req model.UpdateRoleRequest) (*model.Role, error) {
	return a.c.UpdateRole(ctx, id, req)
}
func (a roleAPI) Delete(ctx context.Context, id string) error {
	return a.c.DeleteRole(ctx, id)
}

type permissionAPI struct{ c *api.Client }

func (a permissionAPI) List(ctx context.Context, opts model.ListOptions) ([]model.Permission, *model.ListMeta, error) {
	return a.c.ListPermissions(ctx, opts)
}
func (a permissionAPI) Create(ctx context.Context, req model.CreatePermissionRequest) (*model.Permission, error) {
	return a.c.CreatePermission(ctx, req)
}
func (a permissionAPI) Update(ctx context.Context, id string, req model.UpdatePermissionRequest) (*model.Permission, error) {
	return a.c.UpdatePermission(ctx, id, req)
}
func (a permissionAPI) Delete(ctx context.Context, id string) error {
	return a.c.DeletePermission(ctx, id)
}

// NewCategoryService constructs the category service on the shared client.
func NewCategoryService(client *api.Client, notifier Notifier, logger *slog.Logger) *CategoryService {
	return NewResourceService(ResourceServiceOptions[model.Category, model.CreateCategoryRequest, model.UpdateCategoryRequest]{
		Name:        "category",
		API:         categoryAPI{c: client},
		NewPending:  model.NewPendingCategory,
		ApplyUpdate: model.UpdateCategoryRequest.ApplyTo,
		Notifier:    notifier,
		Logger:      logger,
	})
}

// NewEventTypeService constructs the event type service on the shared client.
func NewEventTypeService(client *api.Client, notifier Notifier, logger *slog.Logger) *EventTypeService {
	return NewResourceService(ResourceServiceOptions[model.EventType, model.CreateEventTypeRequest, model.UpdateEventTypeRequest]{
		Name:        "event type",
		API:         eventTypeAPI{c: client},
		NewPending:  model.NewPendingEventType,
		ApplyUpdate: model.UpdateEventTypeRequest.ApplyTo,
		Notifier:    notifier,
		Logger:      logger,
	})
}

// NewRoleService constructs the role service on the shared client.
func NewRoleService(client *api.Client, notifier Notifier, logger *slog.Logger) *RoleService {
	return NewResourceService(ResourceServiceOptions[model.Role, model.CreateRoleRequest, model.UpdateRoleRequest]{
		Name:        "role",
		API:         roleAPI{c: client},
		NewPending:  model.NewPendingRole,
		ApplyUpdate: model.UpdateRoleRequest.ApplyTo,
		Notifier:    notifier,
		Logger:      logger,
	})
}

// NewPermissionService constructs the permission service on the shared client.
func NewPermissionService(client *api.Client, notifier Notifier, logger *slog.Logger) *PermissionService {
	return NewResourceService(ResourceServiceOptions[model.Permission, model.CreatePermissionRequest, model.UpdatePermissionRequest]{
		Name:        "permission",
		API:         permissionAPI{c: client},
		NewPending:  model.NewPendingPermission,
		ApplyUpdate: model.UpdatePermissionRequest.ApplyTo,
		Notifier:    notifier,
		Logger:      logger,
	})
}
