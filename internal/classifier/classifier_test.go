package classifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleClassifierSuggestCategory(t *testing.T) {
	c := NewSimpleClassifier(1)
	ctx := context.Background()
	categories := []string{"Work", "Shopping", "Road Trips"}

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"hashtag wins", "remember this #shopping", "Shopping"},
		{"multi-word hashtag", "pack the tent #road_trips", "Road Trips"},
		{"category name in text", "Work: send the invoice", "Work"},
		{"keywords", "project meeting moved, deadline friday", "Work"},
		{"keyword for other category", "buy milk at the store", "Shopping"},
		{"nothing matches", "the sky is blue", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.SuggestCategory(ctx, tt.content, categories))
		})
	}
}

func TestSimpleClassifierNoCategories(t *testing.T) {
	c := NewSimpleClassifier(1)
	assert.Empty(t, c.SuggestCategory(context.Background(), "#work", nil))
}

func TestSimpleClassifierMinScore(t *testing.T) {
	c := NewSimpleClassifier(3)
	ctx := context.Background()
	categories := []string{"Work"}

	assert.Empty(t, c.SuggestCategory(ctx, "project report", categories))
	assert.Equal(t, "Work", c.SuggestCategory(ctx, "#work", categories))
}
