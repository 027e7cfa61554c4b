package services

import (
	"context"
	"fmt"
	"strings"

	"neurolearn/config"
)

// ChatCompleter sends one [system, user] message pair to a generative model
// and returns the raw text of its reply. Implementations own transport,
// retries, and auth; callers only see the request/response contract.
type ChatCompleter interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// ImageCreator renders a single image from a prompt and returns its URL.
type ImageCreator interface {
	CreateImage(ctx context.Context, prompt string) (string, error)
}

// NewChatCompleter builds the text-generation collaborator selected by
// configuration. OpenAI is the default provider.
func NewChatCompleter(ctx context.Context, cfg *config.Config) (ChatCompleter, error) {
	provider := strings.ToLower(cfg.LLM.Provider)
	switch provider {
	case "", "openai":
		return NewOpenAIClient(cfg.Openai.ApiKey, cfg.Openai.Model, cfg.Openai.ImageModel)
	case "gemini":
		return NewGeminiClient(ctx, cfg.Gemini.ApiKey, cfg.Gemini.Model)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", provider)
	}
}

func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
