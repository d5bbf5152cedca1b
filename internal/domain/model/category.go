package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxCategoryNameLen = 255

// Category groups event types for navigation and reporting.
type Category struct {
	ID          EntityRef `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EntityRef returns the entity's identifier ref.
func (c Category) EntityRef() EntityRef { return c.ID }

// CreateCategoryRequest represents parameters to create a Category.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateCategoryRequest represents parameters to update a Category.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Validate validates CreateCategoryRequest.
func (r *CreateCategoryRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxCategoryNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateCategoryRequest.
func (r *UpdateCategoryRequest) HasUpdates() bool {
	return r.Name != nil || r.Description != nil
}

// Validate validates UpdateCategoryRequest.
func (r *UpdateCategoryRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil {
		n := strings.TrimSpace(*r.Name)
		if n == "" {
			return errors.New("name cannot be empty")
		}
		if utf8.RuneCountInString(n) > maxCategoryNameLen {
			return errors.New("name cannot exceed 255 characters")
		}
	}
	return nil
}

// NewPendingCategory fabricates a local placeholder entity from create input.
// Timestamps are synthesized; the server-confirmed entity replaces them.
func NewPendingCategory(req CreateCategoryRequest, now time.Time) Category {
	return Category{
		ID:          NewPendingRef(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ApplyTo returns a copy of the category with the edited fields applied.
func (r UpdateCategoryRequest) ApplyTo(c Category, now time.Time) Category {
	if r.Name != nil {
		c.Name = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		c.Description = *r.Description
	}
	c.UpdatedAt = now
	return c
}
