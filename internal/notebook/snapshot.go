package notebook

import (
	"context"

	"github.com/xaenox/memo-notes/internal/models"
)

// Snapshot is every collection of a notebook read under one lock.
type Snapshot struct {
	Notes      []models.Note        `json:"notes" yaml:"notes"`
	Checklists []models.Checklist   `json:"checklists" yaml:"checklists"`
	Categories []models.Category    `json:"categories" yaml:"categories"`
	Favorites  []string             `json:"favorites" yaml:"favorites"`
	Trash      []models.TrashedNote `json:"trashedNotes" yaml:"trashedNotes"`
	IconColor  string               `json:"iconColor" yaml:"iconColor"`
}

func (n *Notebook) Snapshot(ctx context.Context) (Snapshot, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	var (
		snap Snapshot
		err  error
	)
	if snap.Notes, err = load[models.Note](ctx, n, KeyNotes); err != nil {
		return Snapshot{}, err
	}
	if snap.Checklists, err = load[models.Checklist](ctx, n, KeyChecklists); err != nil {
		return Snapshot{}, err
	}
	if snap.Categories, err = load[models.Category](ctx, n, KeyCategories); err != nil {
		return Snapshot{}, err
	}
	if snap.Favorites, err = load[string](ctx, n, KeyFavorites); err != nil {
		return Snapshot{}, err
	}
	if snap.Trash, err = load[models.TrashedNote](ctx, n, KeyTrash); err != nil {
		return Snapshot{}, err
	}
	if snap.IconColor, err = n.IconColor(ctx); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
