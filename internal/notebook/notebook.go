// Package notebook implements the note-taking operations on top of a
// key-value Storage. Each collection lives under a fixed key as one JSON
// array and every change rewrites the whole array.
package notebook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xaenox/memo-notes/internal/storage"
)

// Storage keys, kept compatible with blobs written by the mobile app.
const (
	KeyNotes      = "notes"
	KeyChecklists = "checklists"
	KeyCategories = "categories"
	KeyFavorites  = "favorites"
	KeyTrash      = "trashedNotes"
	KeyIconColor  = "iconColor"
)

type Notebook struct {
	// mu serialises read-modify-write cycles across all collections.
	mu     sync.Mutex
	store  storage.Storage
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

type Option func(*Notebook)

func WithLogger(logger *zap.Logger) Option {
	return func(n *Notebook) {
		if logger != nil {
			n.logger = logger
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(n *Notebook) { n.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(n *Notebook) { n.newID = newID }
}

func New(store storage.Storage, opts ...Option) *Notebook {
	n := &Notebook{
		store:  store,
		logger: zap.NewNop(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func load[T any](ctx context.Context, n *Notebook, key string) ([]T, error) {
	data, err := n.store.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		n.logger.Error("Failed to load collection", zap.Error(err), zap.String("key", key))
		return nil, fmt.Errorf("load %s: %w", key, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		n.logger.Error("Failed to decode collection", zap.Error(err), zap.String("key", key))
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func save[T any](ctx context.Context, n *Notebook, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := n.store.Set(ctx, key, data); err != nil {
		n.logger.Error("Failed to save collection",
			zap.Error(err),
			zap.String("key", key),
			zap.Int("items", len(items)))
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func without[T any](items []T, drop func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !drop(item) {
			out = append(out, item)
		}
	}
	return out
}
