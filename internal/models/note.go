package models

import (
	"time"
)

// Note represents a user-authored title/content record.
type Note struct {
	ID         string     `json:"id" yaml:"id"`
	Title      string     `json:"title" yaml:"title"`
	Content    string     `json:"content" yaml:"content"`
	Starred    bool       `json:"starred" yaml:"starred"`
	CategoryID string     `json:"categoryId,omitempty" yaml:"categoryId,omitempty"`
	CreatedAt  time.Time  `json:"createdAt" yaml:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// TrashedNote is a note moved out of the main collection, waiting for
// restore or permanent deletion.
type TrashedNote struct {
	Note      `yaml:",inline"`
	DeletedAt time.Time `json:"deletedAt" yaml:"deletedAt"`
}

// Category is a user-defined label that notes and checklists point to by id.
type Category struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}
