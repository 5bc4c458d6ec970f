package models

import "time"

type ChecklistItem struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	IsChecked bool   `json:"isChecked" yaml:"isChecked"`
}

type Checklist struct {
	ID         string          `json:"id" yaml:"id"`
	Title      string          `json:"title" yaml:"title"`
	Items      []ChecklistItem `json:"items" yaml:"items"`
	CategoryID string          `json:"categoryId,omitempty" yaml:"categoryId,omitempty"`
	CreatedAt  time.Time       `json:"createdAt" yaml:"createdAt"`
	Starred    bool            `json:"starred,omitempty" yaml:"starred,omitempty"`
}

// Progress returns the number of checked items and the total.
func (c Checklist) Progress() (done, total int) {
	for _, item := range c.Items {
		if item.IsChecked {
			done++
		}
	}
	return done, len(c.Items)
}
