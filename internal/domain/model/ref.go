// Package model contains the domain entities of the admin console.
package model

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// pendingPrefix marks locally fabricated identifiers on the wire. The remote
// API never issues identifiers with this prefix.
const pendingPrefix = "temp-"

// EntityRef identifies an entity as either persisted (server-assigned ID) or
// pending (locally generated placeholder awaiting server confirmation).
// Mutations against a pending ref must never reach the remote API.
type EntityRef struct {
	value   string
	pending bool
}

// PersistedRef wraps a server-assigned identifier.
func PersistedRef(id string) EntityRef {
	return EntityRef{value: id}
}

// NewPendingRef generates a fresh local placeholder identifier.
func NewPendingRef() EntityRef {
	return EntityRef{value: pendingPrefix + uuid.NewString(), pending: true}
}

// ParseRef classifies a raw identifier. Identifiers carrying the local
// placeholder prefix are treated as pending; everything else as persisted.
func ParseRef(id string) EntityRef {
	if strings.HasPrefix(id, pendingPrefix) {
		return EntityRef{value: id, pending: true}
	}
	return EntityRef{value: id}
}

// IsPending reports whether the ref is a local placeholder.
func (r EntityRef) IsPending() bool { return r.pending }

// IsZero reports whether the ref is unset.
func (r EntityRef) IsZero() bool { return r.value == "" }

// String returns the raw identifier value.
func (r EntityRef) String() string { return r.value }

// Equal compares two refs by identifier value.
func (r EntityRef) Equal(other EntityRef) bool { return r.value == other.value }

// MarshalJSON encodes the ref as its raw identifier string.
func (r EntityRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.value)
}

// UnmarshalJSON decodes an identifier string and classifies it.
func (r *EntityRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	*r = ParseRef(id)
	return nil
}
