package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxRoleNameLen = 100

// Role is a named authorization role managed through the admin console.
type Role struct {
	ID          EntityRef `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EntityRef returns the entity's identifier ref.
func (r Role) EntityRef() EntityRef { return r.ID }

// CreateRoleRequest represents parameters to create a Role.
type CreateRoleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateRoleRequest represents parameters to update a Role.
type UpdateRoleRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Validate validates CreateRoleRequest.
func (r *CreateRoleRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxRoleNameLen {
		return errors.New("name cannot exceed 100 characters")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateRoleRequest.
func (r *UpdateRoleRequest) HasUpdates() bool {
	return r.Name != nil || r.Description != nil
}

// Validate validates UpdateRoleRequest.
func (r *UpdateRoleRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil {
		n := strings.TrimSpace(*r.Name)
		if n == "" {
			return errors.New("name cannot be empty")
		}
		if utf8.RuneCountInString(n) > maxRoleNameLen {
			return errors.New("name cannot exceed 100 characters")
		}
	}
	return nil
}

// NewPendingRole fabricates a local placeholder entity from create input.
func NewPendingRole(req CreateRoleRequest, now time.Time) Role {
	return Role{
		ID:          NewPendingRef(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ApplyTo returns a copy of the role with the edited fields applied.
func (r UpdateRoleRequest) ApplyTo(role Role, now time.Time) Role {
	if r.Name != nil {
		role.Name = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		role.Description = *r.Description
	}
	role.UpdatedAt = now
	return role
}
