package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fakeOpenAI(t *testing.T, reply string, status int) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		if assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) && assert.Len(t, req.Messages, 1) {
			assert.Equal(t, "gpt-test", req.Model)
			assert.Contains(t, req.Messages[0].Content, `"Work", "Home"`)
		}

		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		body, _ := json.Marshal(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "gpt-test",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": reply},
			}},
		})
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestGPTClassifierSuggestCategory(t *testing.T) {
	srv, calls := fakeOpenAI(t, `{"category": "work"}`, http.StatusOK)
	c := NewGPTClassifier("test-key", srv.URL+"/v1", "gpt-test", 50, 0, nil)

	got := c.SuggestCategory(context.Background(), "quarterly planning", []string{"Work", "Home"})
	assert.Equal(t, "Work", got, "answer is mapped back to the stored spelling")
	assert.Equal(t, 1, *calls)
}

func TestGPTClassifierEmptyAnswer(t *testing.T) {
	srv, _ := fakeOpenAI(t, `{"category": ""}`, http.StatusOK)
	c := NewGPTClassifier("test-key", srv.URL+"/v1", "gpt-test", 50, 0, nil)

	assert.Empty(t, c.SuggestCategory(context.Background(), "project", []string{"Work", "Home"}))
}

func TestGPTClassifierFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		reply  string
		status int
	}{
		{"api error", "", http.StatusInternalServerError},
		{"not json", "Work, definitely", http.StatusOK},
		{"unknown category", `{"category": "Finance"}`, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := fakeOpenAI(t, tt.reply, tt.status)
			c := NewGPTClassifier("test-key", srv.URL+"/v1", "gpt-test", 50, 0, nil)

			got := c.SuggestCategory(context.Background(), "project meeting", []string{"Work", "Home"})
			assert.Equal(t, "Work", got)
		})
	}
}

func TestGPTClassifierSkipsCallWithoutCategories(t *testing.T) {
	srv, calls := fakeOpenAI(t, `{"category": "Work"}`, http.StatusOK)
	c := NewGPTClassifier("test-key", srv.URL+"/v1", "gpt-test", 50, 0, nil)

	assert.Empty(t, c.SuggestCategory(context.Background(), "anything", nil))
	assert.Zero(t, *calls)
}
