package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxEventTypeNameLen = 255

// EventType describes a kind of event the platform tracks. Each event type
// belongs to a category.
type EventType struct {
	ID          EntityRef `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CategoryID  string    `json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EntityRef returns the entity's identifier ref.
func (e EventType) EntityRef() EntityRef { return e.ID }

// CreateEventTypeRequest represents parameters to create an EventType.
type CreateEventTypeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CategoryID  string `json:"category_id"`
}

// UpdateEventTypeRequest represents parameters to update an EventType.
type UpdateEventTypeRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	CategoryID  *string `json:"category_id,omitempty"`
}

// Validate validates CreateEventTypeRequest.
func (r *CreateEventTypeRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxEventTypeNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	if strings.TrimSpace(r.CategoryID) == "" {
		return errors.New("category_id is required")
	}
	if ParseRef(r.CategoryID).IsPending() {
		return errors.New("category_id must reference a persisted category")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateEventTypeRequest.
func (r *UpdateEventTypeRequest) HasUpdates() bool {
	return r.Name != nil || r.Description != nil || r.CategoryID != nil
}

// Validate validates UpdateEventTypeRequest.
func (r *UpdateEventTypeRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil {
		n := strings.TrimSpace(*r.Name)
		if n == "" {
			return errors.New("name cannot be empty")
		}
		if utf8.RuneCountInString(n) > maxEventTypeNameLen {
			return errors.New("name cannot exceed 255 characters")
		}
	}
	if r.CategoryID != nil && strings.TrimSpace(*r.CategoryID) == "" {
		return errors.New("category_id cannot be empty")
	}
	return nil
}

// NewPendingEventType fabricates a local placeholder entity from create input.
func NewPendingEventType(req CreateEventTypeRequest, now time.Time) EventType {
	return EventType{
		ID:          NewPendingRef(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		CategoryID:  req.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ApplyTo returns a copy of the event type with the edited fields applied.
func (r UpdateEventTypeRequest) ApplyTo(e EventType, now time.Time) EventType {
	if r.Name != nil {
		e.Name = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		e.Description = *r.Description
	}
	if r.CategoryID != nil {
		e.CategoryID = *r.CategoryID
	}
	e.UpdatedAt = now
	return e
}
