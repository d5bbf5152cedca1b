// Package service implements the operation protocol between the remote API
// and the local optimistic caches: mutations are applied to the cache first,
// then confirmed or rolled back when the server answers.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/eventdesk/admin-ui/internal/domain/model"
	apperrors "github.com/eventdesk/admin-ui/internal/errors"
	"github.com/eventdesk/admin-ui/internal/optimistic"
)

// ResourceAPI is the remote CRUD surface for one resource.
type ResourceAPI[T optimistic.Entity, C any, U any] interface {
	List(ctx context.Context, opts model.ListOptions) ([]T, *model.ListMeta, error)
	Create(ctx context.Context, req C) (*T, error)
	Update(ctx context.Context, id string, req U) (*T, error)
	Delete(ctx context.Context, id string) error
}

// ResourceService runs the optimistic mutation protocol for one resource.
// Create inserts a pending placeholder that the confirmed entity replaces in
// place; update and delete snapshot the cache and restore it on failure.
type ResourceService[T optimistic.Entity, C any, U any] struct {
	name        string
	api         ResourceAPI[T, C, U]
	store       *optimistic.Store[T]
	newPending  func(C, time.Time) T
	applyUpdate func(U, T, time.Time) T
	notifier    Notifier
	logger      *slog.Logger
	now         func() time.Time
}

// ResourceServiceOptions contains dependencies for a ResourceService.
type ResourceServiceOptions[T optimistic.Entity, C any, U any] struct {
	// Name is the resource name used in logs and notifications.
	Name string
	// API is the remote CRUD surface.
	API ResourceAPI[T, C, U]
	// NewPending fabricates a local placeholder from create input.
	NewPending func(C, time.Time) T
	// ApplyUpdate returns a copy of an entity with edits applied.
	ApplyUpdate func(U, T, time.Time) T
	// Notifier receives outcome messages. Defaults to a log-backed sink.
	Notifier Notifier
	// Logger for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
}

// NewResourceService constructs a ResourceService with its own empty cache.
func NewResourceService[T optimistic.Entity, C any, U any](opts ResourceServiceOptions[T, C, U]) *ResourceService[T, C, U] {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = logNotifier{logger: logger}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &ResourceService[T, C, U]{
		name:        opts.Name,
		api:         opts.API,
		store:       optimistic.NewStore[T](),
		newPending:  opts.NewPending,
		applyUpdate: opts.ApplyUpdate,
		notifier:    notifier,
		logger:      logger.With(slog.String("resource", opts.Name)),
		now:         now,
	}
}

// Items returns a copy of the cached item list.
func (s *ResourceService[T, C, U]) Items() []T { return s.store.Items() }

// Meta returns the pagination meta from the last fetch.
func (s *ResourceService[T, C, U]) Meta() model.ListMeta { return s.store.Meta() }

// IsLoading reports whether a fetch is in progress.
func (s *ResourceService[T, C, U]) IsLoading() bool { return s.store.IsLoading() }

// Err returns the last fetch error, if any.
func (s *ResourceService[T, C, U]) Err() error { return s.store.Err() }

// Store exposes the underlying cache, for handlers that read it directly.
func (s *ResourceService[T, C, U]) Store() *optimistic.Store[T] { return s.store }

// Fetch loads a page from the remote API and replaces the cache contents.
// A canceled request leaves the cache untouched.
func (s *ResourceService[T, C, U]) Fetch(ctx context.Context, opts model.ListOptions) ([]T, *model.ListMeta, error) {
	opts = opts.Normalize()
	s.store.SetLoading(true)
	items, meta, err := s.api.List(ctx, opts)
	if err != nil {
		s.store.SetError(err)
		s.logger.Error("fetch failed", slog.Any("error", err))
		return nil, nil, err
	}
	if cerr := ctx.Err(); cerr != nil {
		s.store.SetLoading(false)
		return nil, nil, apperrors.Wrap(cerr, apperrors.ErrCodeCanceled, "fetch canceled")
	}
	var m model.ListMeta
	if meta != nil {
		m = *meta
	}
	s.store.SetItems(items, m)
	return items, meta, nil
}

// Create inserts a pending placeholder at the head of the cache, then asks
// the server to create the entity. On success the confirmed entity replaces
// the placeholder in place; on failure or cancellation the placeholder is
// removed.
func (s *ResourceService[T, C, U]) Create(ctx context.Context, req C) (*T, error) {
	if err := validate(&req); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	local := s.newPending(req, s.now())
	ref := local.EntityRef()
	if err := s.store.Acquire(ref); err != nil {
		return nil, err
	}
	defer s.store.Release(ref)
	s.store.Insert(local)

	created, err := s.api.Create(ctx, req)
	if err != nil {
		s.store.Remove(ref)
		s.notifier.Error(fmt.Sprintf("failed to create %s", s.name))
		s.logger.Error("create failed", slog.String("ref", ref.String()), slog.Any("error", err))
		return nil, err
	}
	if cerr := ctx.Err(); cerr != nil {
		s.store.Remove(ref)
		return nil, apperrors.Wrap(cerr, apperrors.ErrCodeCanceled, "create canceled")
	}
	s.store.Replace(ref, *created)
	s.notifier.Success(fmt.Sprintf("%s created", s.name))
	return created, nil
}

// Update applies the edits to the cached entity immediately, then asks the
// server to persist them. On failure or cancellation the exact pre-edit
// snapshot is restored. Updates against pending entities are rejected; they
// have no server-assigned identifier to address.
func (s *ResourceService[T, C, U]) Update(ctx context.Context, ref model.EntityRef, req U) (*T, error) {
	if ref.IsPending() {
		return nil, optimistic.ErrPendingEntity
	}
	if err := validate(&req); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	snapshot, ok := s.store.Get(ref)
	if !ok {
		return nil, optimistic.ErrNotFound
	}
	if err := s.store.Acquire(ref); err != nil {
		return nil, err
	}
	defer s.store.Release(ref)
	s.store.Replace(ref, s.applyUpdate(req, snapshot, s.now()))

	updated, err := s.api.Update(ctx, ref.String(), req)
	if err != nil {
		s.store.Replace(ref, snapshot)
		s.notifier.Error(fmt.Sprintf("failed to update %s", s.name))
		s.logger.Error("update failed", slog.String("ref", ref.String()), slog.Any("error", err))
		return nil, err
	}
	if cerr := ctx.Err(); cerr != nil {
		s.store.Replace(ref, snapshot)
		return nil, apperrors.Wrap(cerr, apperrors.ErrCodeCanceled, "update canceled")
	}
	s.store.Replace(ref, *updated)
	s.notifier.Success(fmt.Sprintf("%s updated", s.name))
	return updated, nil
}

// Delete removes the cached entity immediately, then asks the server to
// delete it. On failure the entity is re-inserted near its former position.
// Deletes against pending entities are rejected.
func (s *ResourceService[T, C, U]) Delete(ctx context.Context, ref model.EntityRef) error {
	if ref.IsPending() {
		return optimistic.ErrPendingEntity
	}
	if err := s.store.Acquire(ref); err != nil {
		return err
	}
	defer s.store.Release(ref)
	removed, idx, ok := s.store.Remove(ref)
	if !ok {
		return optimistic.ErrNotFound
	}

	if err := s.api.Delete(ctx, ref.String()); err != nil {
		s.store.ReinsertAt(removed, idx)
		s.notifier.Error(fmt.Sprintf("failed to delete %s", s.name))
		s.logger.Error("delete failed", slog.String("ref", ref.String()), slog.Any("error", err))
		return err
	}
	s.notifier.Success(fmt.Sprintf("%s deleted", s.name))
	return nil
}

// validate runs the request's own validation when it declares one.
func validate(req any) error {
	if v, ok := req.(interface{ Validate() error }); ok {
		return v.Validate()
	}
	return nil
}
