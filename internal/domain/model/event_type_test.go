package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEventTypeRequest_Validate(t *testing.T) {
	valid := CreateEventTypeRequest{Name: "deploy", CategoryID: "7"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		req  CreateEventTypeRequest
		want string
	}{
		{name: "blank name", req: CreateEventTypeRequest{Name: "  ", CategoryID: "7"}, want: "name is required"},
		{name: "name too long", req: CreateEventTypeRequest{Name: strings.Repeat("x", 256), CategoryID: "7"}, want: "255"},
		{name: "missing category", req: CreateEventTypeRequest{Name: "deploy"}, want: "category_id is required"},
		{name: "pending category", req: CreateEventTypeRequest{Name: "deploy", CategoryID: "temp-abc"}, want: "persisted category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestUpdateEventTypeRequest_Validate(t *testing.T) {
	var empty UpdateEventTypeRequest
	require.Error(t, empty.Validate())

	name := "deploy"
	req := UpdateEventTypeRequest{Name: &name}
	require.NoError(t, req.Validate())

	blank := " "
	req = UpdateEventTypeRequest{Name: &blank}
	require.Error(t, req.Validate())
}

func TestApplyTo_OnlyTouchesSetFields(t *testing.T) {
	base := EventType{
		ID:          PersistedRef("1"),
		Name:        "deploy",
		Description: "ship it",
		CategoryID:  "7",
		UpdatedAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	name := "release"
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	got := UpdateEventTypeRequest{Name: &name}.ApplyTo(base, now)
	assert.Equal(t, "release", got.Name)
	assert.Equal(t, "ship it", got.Description)
	assert.Equal(t, "7", got.CategoryID)
	assert.Equal(t, now, got.UpdatedAt)
	assert.Equal(t, "deploy", base.Name)
}
