package notebook

import (
	"context"
	"slices"

	"github.com/xaenox/memo-notes/internal/models"
)

// AddFavorite stars the note and records it in the favorites set. Adding
// an id twice is a no-op.
func (n *Notebook) AddFavorite(ctx context.Context, noteID string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, err := n.modifyNote(ctx, noteID, func(note *models.Note) { note.Starred = true }); err != nil {
		return err
	}
	return n.appendFavorite(ctx, noteID)
}

// RemoveFavorite drops noteID from the set and unstars the note if it is
// still live. Unknown ids are ignored.
func (n *Notebook) RemoveFavorite(ctx context.Context, noteID string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	notes, err := load[models.Note](ctx, n, KeyNotes)
	if err != nil {
		return err
	}
	if i := slices.IndexFunc(notes, func(note models.Note) bool { return note.ID == noteID }); i >= 0 && notes[i].Starred {
		notes[i].Starred = false
		if err := save(ctx, n, KeyNotes, notes); err != nil {
			return err
		}
	}
	return n.dropFavorite(ctx, noteID)
}

func (n *Notebook) IsFavorite(ctx context.Context, noteID string) (bool, error) {
	ids, err := n.Favorites(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, noteID), nil
}

// Favorites returns the favorite note ids in the order they were added.
func (n *Notebook) Favorites(ctx context.Context) ([]string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return load[string](ctx, n, KeyFavorites)
}

// FavoriteNotes resolves the favorites set to notes, skipping ids that no
// longer point to a live note.
func (n *Notebook) FavoriteNotes(ctx context.Context) ([]models.Note, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	ids, err := load[string](ctx, n, KeyFavorites)
	if err != nil {
		return nil, err
	}
	notes, err := load[models.Note](ctx, n, KeyNotes)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Note, len(notes))
	for _, note := range notes {
		byID[note.ID] = note
	}
	favorites := make([]models.Note, 0, len(ids))
	for _, id := range ids {
		if note, ok := byID[id]; ok {
			favorites = append(favorites, note)
		}
	}
	return favorites, nil
}

func (n *Notebook) appendFavorite(ctx context.Context, noteID string) error {
	ids, err := load[string](ctx, n, KeyFavorites)
	if err != nil {
		return err
	}
	if slices.Contains(ids, noteID) {
		return nil
	}
	return save(ctx, n, KeyFavorites, append(ids, noteID))
}

func (n *Notebook) dropFavorite(ctx context.Context, noteID string) error {
	ids, err := load[string](ctx, n, KeyFavorites)
	if err != nil {
		return err
	}
	remaining := without(ids, func(id string) bool { return id == noteID })
	if len(remaining) == len(ids) {
		return nil
	}
	return save(ctx, n, KeyFavorites, remaining)
}
