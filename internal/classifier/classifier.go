package classifier

import (
	"context"
	"strings"
	"unicode"
)

// Classifier picks the best matching category name for a piece of text.
// It returns "" when none of the candidates fit.
type Classifier interface {
	SuggestCategory(ctx context.Context, content string, categories []string) string
}

type SimpleClassifier struct {
	minScore int
}

func NewSimpleClassifier(minScore int) *SimpleClassifier {
	if minScore < 1 {
		minScore = 1
	}
	return &SimpleClassifier{minScore: minScore}
}

// Keywords that hint at common category names.
var categoryKeywords = map[string][]string{
	"work":      {"project", "meeting", "deadline", "task", "report"},
	"personal":  {"family", "friend", "home", "birthday", "holiday"},
	"shopping":  {"buy", "purchase", "store", "shop", "price", "groceries"},
	"education": {"study", "learn", "course", "book", "homework"},
	"travel":    {"trip", "flight", "hotel", "vacation", "booking"},
	"ideas":     {"idea", "maybe", "someday", "brainstorm"},
}

// Simple implementation that scores hashtags, category names and keywords
func (c *SimpleClassifier) SuggestCategory(_ context.Context, content string, categories []string) string {
	if len(categories) == 0 {
		return ""
	}

	words := strings.FieldsFunc(strings.ToLower(content), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '#' && r != '_'
	})
	hashtags := make(map[string]struct{})
	plain := make(map[string]struct{})
	for _, word := range words {
		if strings.HasPrefix(word, "#") {
			if tag := strings.TrimLeft(word, "#"); tag != "" {
				hashtags[tag] = struct{}{}
			}
			continue
		}
		plain[word] = struct{}{}
	}

	best, bestScore := "", 0
	for _, category := range categories {
		name := strings.ToLower(strings.TrimSpace(category))
		if name == "" {
			continue
		}
		score := 0
		if _, ok := hashtags[strings.ReplaceAll(name, " ", "_")]; ok {
			score += 3
		}
		if _, ok := plain[name]; ok {
			score += 2
		}
		for _, keyword := range categoryKeywords[name] {
			if _, ok := plain[keyword]; ok {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = category, score
		}
	}

	if bestScore < c.minScore {
		return ""
	}
	return best
}
