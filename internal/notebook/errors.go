package notebook

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrEmptyTitle   = errors.New("title is required")
	ErrEmptyContent = errors.New("content is required")
	ErrEmptyName    = errors.New("name is required")
	ErrEmptyText    = errors.New("item text is required")
	ErrInvalidColor = errors.New("color must be in #RRGGBB form")
	ErrNegativeAge  = errors.New("age must not be negative")
)

// IsValidation reports whether err was caused by bad user input.
func IsValidation(err error) bool {
	for _, target := range []error{ErrEmptyTitle, ErrEmptyContent, ErrEmptyName, ErrEmptyText, ErrInvalidColor, ErrNegativeAge} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
