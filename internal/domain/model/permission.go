package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxPermissionNameLen = 100

// Permission is a resource/action pair that can be attached to roles.
type Permission struct {
	ID          EntityRef `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Resource    string    `json:"resource"`
	Action      string    `json:"action"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EntityRef returns the entity's identifier ref.
func (p Permission) EntityRef() EntityRef { return p.ID }

// CreatePermissionRequest represents parameters to create a Permission.
type CreatePermissionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Resource    string `json:"resource"`
	Action      string `json:"action"`
}

// UpdatePermissionRequest represents parameters to update a Permission.
type UpdatePermissionRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Resource    *string `json:"resource,omitempty"`
	Action      *string `json:"action,omitempty"`
}

// Validate validates CreatePermissionRequest.
func (r *CreatePermissionRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxPermissionNameLen {
		return errors.New("name cannot exceed 100 characters")
	}
	if strings.TrimSpace(r.Resource) == "" {
		return errors.New("resource is required")
	}
	if strings.TrimSpace(r.Action) == "" {
		return errors.New("action is required")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdatePermissionRequest.
func (r *UpdatePermissionRequest) HasUpdates() bool {
	return r.Name != nil || r.Description != nil || r.Resource != nil || r.Action != nil
}

// Validate validates UpdatePermissionRequest.
func (r *UpdatePermissionRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil {
		n := strings.TrimSpace(*r.Name)
		if n == "" {
			return errors.New("name cannot be empty")
		}
		if utf8.RuneCountInString(n) > maxPermissionNameLen {
			return errors.New("name cannot exceed 100 characters")
		}
	}
	if r.Resource != nil && strings.TrimSpace(*r.Resource) == "" {
		return errors.New("resource cannot be empty")
	}
	if r.Action != nil && strings.TrimSpace(*r.Action) == "" {
		return errors.New("action cannot be empty")
	}
	return nil
}

// NewPendingPermission fabricates a local placeholder entity from create input.
func NewPendingPermission(req CreatePermissionRequest, now time.Time) Permission {
	return Permission{
		ID:          NewPendingRef(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Resource:    req.Resource,
		Action:      req.Action,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ApplyTo returns a copy of the permission with the edited fields applied.
func (r UpdatePermissionRequest) ApplyTo(p Permission, now time.Time) Permission {
	if r.Name != nil {
		p.Name = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Resource != nil {
		p.Resource = *r.Resource
	}
	if r.Action != nil {
		p.Action = *r.Action
	}
	p.UpdatedAt = now
	return p
}
