package notebook

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/xaenox/memo-notes/internal/models"
)

// MoveToTrash takes a note out of the main collection and keeps it in the
// trash with the deletion time.
func (n *Notebook) MoveToTrash(ctx context.Context, noteID string) (models.TrashedNote, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	notes, err := load[models.Note](ctx, n, KeyNotes)
	if err != nil {
		return models.TrashedNote{}, err
	}
	i := slices.IndexFunc(notes, func(note models.Note) bool { return note.ID == noteID })
	if i < 0 {
		return models.TrashedNote{}, fmt.Errorf("note %q: %w", noteID, ErrNotFound)
	}

	trash, err := load[models.TrashedNote](ctx, n, KeyTrash)
	if err != nil {
		return models.TrashedNote{}, err
	}
	trashed := models.TrashedNote{Note: notes[i], DeletedAt: n.now()}

	// Trash is written first so an interrupted move leaves a duplicate, not a lost note.
	if err := save(ctx, n, KeyTrash, append(trash, trashed)); err != nil {
		return models.TrashedNote{}, err
	}
	if err := save(ctx, n, KeyNotes, slices.Delete(notes, i, i+1)); err != nil {
		return models.TrashedNote{}, err
	}
	if err := n.dropFavorite(ctx, noteID); err != nil {
		return models.TrashedNote{}, err
	}

	n.logger.Debug("Note moved to trash", zap.String("note_id", noteID))
	return trashed, nil
}

func (n *Notebook) TrashedNotes(ctx context.Context) ([]models.TrashedNote, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return load[models.TrashedNote](ctx, n, KeyTrash)
}

// RestoreFromTrash puts a trashed note back into the main collection.
func (n *Notebook) RestoreFromTrash(ctx context.Context, noteID string) (models.Note, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	trash, err := load[models.TrashedNote](ctx, n, KeyTrash)
	if err != nil {
		return models.Note{}, err
	}
	i := slices.IndexFunc(trash, func(t models.TrashedNote) bool { return t.ID == noteID })
	if i < 0 {
		return models.Note{}, fmt.Errorf("trashed note %q: %w", noteID, ErrNotFound)
	}

	notes, err := load[models.Note](ctx, n, KeyNotes)
	if err != nil {
		return models.Note{}, err
	}
	if slices.ContainsFunc(notes, func(note models.Note) bool { return note.ID == noteID }) {
		return models.Note{}, fmt.Errorf("note %q: %w", noteID, ErrConflict)
	}

	restored := trash[i].Note
	if err := save(ctx, n, KeyNotes, append(notes, restored)); err != nil {
		return models.Note{}, err
	}
	if err := save(ctx, n, KeyTrash, slices.Delete(trash, i, i+1)); err != nil {
		return models.Note{}, err
	}
	if restored.Starred {
		if err := n.appendFavorite(ctx, noteID); err != nil {
			return models.Note{}, err
		}
	}
	return restored, nil
}

func (n *Notebook) DeletePermanently(ctx context.Context, noteID string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	trash, err := load[models.TrashedNote](ctx, n, KeyTrash)
	if err != nil {
		return err
	}
	remaining := without(trash, func(t models.TrashedNote) bool { return t.ID == noteID })
	if len(remaining) == len(trash) {
		return fmt.Errorf("trashed note %q: %w", noteID, ErrNotFound)
	}
	return save(ctx, n, KeyTrash, remaining)
}

func (n *Notebook) EmptyTrash(ctx context.Context) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	return save(ctx, n, KeyTrash, []models.TrashedNote{})
}

// PurgeTrash permanently deletes entries trashed more than olderThan ago
// and reports how many were removed.
func (n *Notebook) PurgeTrash(ctx context.Context, olderThan time.Duration) (int, error) {
	if olderThan < 0 {
		return 0, fmt.Errorf("purge older than %s: %w", olderThan, ErrNegativeAge)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	trash, err := load[models.TrashedNote](ctx, n, KeyTrash)
	if err != nil {
		return 0, err
	}
	cutoff := n.now().Add(-olderThan)
	remaining := without(trash, func(t models.TrashedNote) bool { return t.DeletedAt.Before(cutoff) })
	purged := len(trash) - len(remaining)
	if purged == 0 {
		return 0, nil
	}
	if err := save(ctx, n, KeyTrash, remaining); err != nil {
		return 0, err
	}
	n.logger.Info("Trash purged", zap.Int("purged", purged), zap.Duration("older_than", olderThan))
	return purged, nil
}
