package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

type GPTResponse struct {
	Category string `json:"category"`
}

type GPTClassifier struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	fallback    Classifier
	logger      *zap.Logger
}

// NewGPTClassifier builds a classifier backed by the chat completion API.
// An empty baseURL targets api.openai.com.
func NewGPTClassifier(apiKey, baseURL, model string, maxTokens int, temperature float64, logger *zap.Logger) *GPTClassifier {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GPTClassifier{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		fallback:    NewSimpleClassifier(1),
		logger:      logger,
	}
}

func (c *GPTClassifier) SuggestCategory(ctx context.Context, content string, categories []string) string {
	if len(categories) == 0 {
		return ""
	}

	prompt := fmt.Sprintf(`Pick the single category that best fits the note below.
Allowed categories: %s
If none of them fits, use an empty string.

Return the response as a JSON object with this structure:
{
    "category": "one_of_the_allowed_categories"
}

Note: %s`, quoteAll(categories), content)

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   c.maxTokens,
			Temperature: float32(c.temperature),
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		},
	)
	if err != nil {
		c.logger.Error("Failed to get GPT response", zap.Error(err))
		return c.fallback.SuggestCategory(ctx, content, categories)
	}
	if len(resp.Choices) == 0 {
		c.logger.Warn("GPT response has no choices")
		return c.fallback.SuggestCategory(ctx, content, categories)
	}

	var gptResponse GPTResponse
	response := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(response), &gptResponse); err != nil {
		c.logger.Error("Failed to parse GPT response",
			zap.Error(err),
			zap.String("response", response))
		return c.fallback.SuggestCategory(ctx, content, categories)
	}

	suggested := strings.TrimSpace(gptResponse.Category)
	if suggested == "" {
		return ""
	}
	for _, category := range categories {
		if strings.EqualFold(category, suggested) {
			return category
		}
	}

	c.logger.Warn("GPT suggested an unknown category", zap.String("category", suggested))
	return c.fallback.SuggestCategory(ctx, content, categories)
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}
