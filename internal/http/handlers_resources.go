package httpx

import (
	"net/http"

	"github.com/eventdesk/admin-ui/internal/domain/model"
	"github.com/eventdesk/admin-ui/internal/optimistic"
	"github.com/eventdesk/admin-ui/internal/service"
)

// ResourceHandlers serves the JSON CRUD surface for one resource on top of
// its optimistic service.
type ResourceHandlers[T optimistic.Entity, C any, U any] struct {
	Svc *service.ResourceService[T, C, U]
}

type listResponse[T any] struct {
	Status string          `json:"status"`
	Data   []T             `json:"data"`
	Meta   *model.ListMeta `json:"meta,omitempty"`
}

type itemResponse[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
}

// List fetches a page from the remote API and returns it with pagination
// meta.
func (h *ResourceHandlers[T, C, U]) List(w http.ResponseWriter, r *http.Request) {
	opts := parseListOptions(r)
	items, meta, err := h.Svc.Fetch(r.Context(), opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, listResponse[T]{Status: "success", Data: items, Meta: meta})
}

// Create creates an entity through the optimistic protocol and returns the
// server-confirmed entity.
func (h *ResourceHandlers[T, C, U]) Create(w http.ResponseWriter, r *http.Request) {
	var req C
	if !DecodeJSON(w, r, &req) {
		return
	}
	created, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, itemResponse[T]{Status: "success", Data: *created})
}

// Update updates the entity addressed by the id path value.
func (h *ResourceHandlers[T, C, U]) Update(w http.ResponseWriter, r *http.Request) {
	ref := model.ParseRef(r.PathValue("id"))
	var req U
	if !DecodeJSON(w, r, &req) {
		return
	}
	updated, err := h.Svc.Update(r.Context(), ref, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, itemResponse[T]{Status: "success", Data: *updated})
}

// Delete deletes the entity addressed by the id path value.
func (h *ResourceHandlers[T, C, U]) Delete(w http.ResponseWriter, r *http.Request) {
	ref := model.ParseRef(r.PathValue("id"))
	if err := h.Svc.Delete(r.Context(), ref); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// registerResourceRoutes wires a resource's CRUD handlers under /api/<base>.
func registerResourceRoutes[T optimistic.Entity, C any, U any](mux *http.ServeMux, base string, h *ResourceHandlers[T, C, U]) {
	mux.HandleFunc("GET /api/"+base, h.List)
	mux.HandleFunc("POST /api/"+base, h.Create)
	mux.HandleFunc("PUT /api/"+base+"/{id}", h.Update)
	mux.HandleFunc("DELETE /api/"+base+"/{id}", h.Delete)
}
