package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

const (
	defaultModel = "gpt-3.5-turbo"

	extractSystemPrompt = "You are a helpful assistant that extracts place names from user input. " +
		"Return only the place name, nothing else. If no place is mentioned, return 'NONE'."

	unknownPlaceSystemPrompt = "You are a helpful tourism assistant. When a place doesn't exist, " +
		"respond naturally and politely saying you don't know this place exists."
)

type OpenAIClient struct {
	client openai.Client
	model  string
	logger *slog.Logger
}

func NewOpenAIClient(apiKey, model string, logger *slog.Logger) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	return &OpenAIClient{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		logger: logger.With("component", "openai-client"),
	}, nil
}

func (c *OpenAIClient) ExtractPlace(ctx context.Context, text string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(extractSystemPrompt),
			openai.UserMessage(fmt.Sprintf("Extract the place name from: %s", text)),
		},
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(50),
	})
	if err != nil {
		c.logger.Error("place extraction failed", "error", err)
		return "", fmt.Errorf("failed to extract place name: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}

	placeName := strings.TrimSpace(resp.Choices[0].Message.Content)
	if placeName == "" || strings.EqualFold(placeName, "NONE") {
		c.logger.Debug("no place name found in text")
		return "", nil
	}

	c.logger.Debug("extracted place name", "place", placeName)
	return placeName, nil
}

func (c *OpenAIClient) UnknownPlaceReply(ctx context.Context, placeName string) (string, error) {
	prompt := fmt.Sprintf(`The user asked about a place called %q, but this place doesn't exist in the database.
Respond naturally and politely that you don't know this place exists.
Keep it brief and friendly, similar to: "I don't know this place exists."
Do not suggest alternatives or ask questions, just state that you don't know this place exists.

Your response:`, placeName)

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(unknownPlaceSystemPrompt),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(50),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
