package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ValidationKind tags which shape validation errors arrived in. The remote
// API returns either a field→messages map or a flat message list; the shape
// is resolved exactly once here, never re-sniffed downstream.
type ValidationKind string

const (
	// KindFieldErrors means errors are keyed by field name.
	KindFieldErrors ValidationKind = "field_errors"
	// KindMessages means errors are a flat list of messages.
	KindMessages ValidationKind = "messages"
)

// ValidationErrors is the tagged union of the two error shapes.
type ValidationErrors struct {
	Kind     ValidationKind
	Fields   map[string][]string
	Messages []string
}

// Flatten returns all messages as a single list regardless of kind, with
// field errors rendered as "field: message" in field order.
func (v *ValidationErrors) Flatten() []string {
	if v == nil {
		return nil
	}
	if v.Kind == KindMessages {
		return v.Messages
	}
	fields := make([]string, 0, len(v.Fields))
	for f := range v.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var out []string
	for _, f := range fields {
		for _, msg := range v.Fields[f] {
			out = append(out, f+": "+msg)
		}
	}
	return out
}

// Error is a remote API failure normalized at the client boundary into
// {message, status, validation}.
type Error struct {
	// Status is the HTTP status code, or 0 for transport failures.
	Status int
	// Message is the API-provided or synthesized failure message.
	Message string
	// Validation carries field or message errors for 4xx responses, if any.
	Validation *ValidationErrors
	// Cause is the transport error for Status == 0.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("api request failed: %v", e.Cause)
	}
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// Unwrap returns the transport cause, if any.
func (e *Error) Unwrap() error { return e.Cause }

// IsAuthFailure reports whether the error indicates a rejected session.
func (e *Error) IsAuthFailure() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// AsError extracts an *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// parseValidationErrors resolves the duck-typed errors payload into the
// tagged union. Unknown shapes degrade to a single flattened message.
func parseValidationErrors(raw json.RawMessage) *ValidationErrors {
	if len(raw) == 0 {
		return nil
	}

	var fields map[string][]string
	if err := json.Unmarshal(raw, &fields); err == nil && len(fields) > 0 {
		return &ValidationErrors{Kind: KindFieldErrors, Fields: fields}
	}

	var messages []string
	if err := json.Unmarshal(raw, &messages); err == nil && len(messages) > 0 {
		return &ValidationErrors{Kind: KindMessages, Messages: messages}
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		return &ValidationErrors{Kind: KindMessages, Messages: []string{single}}
	}

	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	return &ValidationErrors{Kind: KindMessages, Messages: []string{trimmed}}
}
