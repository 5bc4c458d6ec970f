package notebook

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xaenox/memo-notes/internal/models"
	"github.com/xaenox/memo-notes/internal/storage"
)

// IconColor returns the saved icon colour, or the default when none is set.
func (n *Notebook) IconColor(ctx context.Context) (string, error) {
	data, err := n.store.Get(ctx, KeyIconColor)
	if errors.Is(err, storage.ErrNotFound) {
		return models.DefaultIconColor, nil
	}
	if err != nil {
		return "", fmt.Errorf("load %s: %w", KeyIconColor, err)
	}
	color := strings.TrimSpace(string(data))
	if color == "" {
		return models.DefaultIconColor, nil
	}
	return color, nil
}

// SetIconColor stores color as a raw string, not JSON.
func (n *Notebook) SetIconColor(ctx context.Context, color string) (string, error) {
	color = strings.ToUpper(strings.TrimSpace(color))
	if !models.ValidColor(color) {
		return "", fmt.Errorf("%q: %w", color, ErrInvalidColor)
	}
	if err := n.store.Set(ctx, KeyIconColor, []byte(color)); err != nil {
		return "", fmt.Errorf("save %s: %w", KeyIconColor, err)
	}
	return color, nil
}

func (n *Notebook) Palette() []string {
	return models.Palette()
}
