package services

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultOpenAIModel = openai.GPT4Turbo
	defaultImageModel  = openai.CreateImageModelDallE3
	chatTemperature    = 0.7
)

// OpenAIClient implements ChatCompleter and ImageCreator against the
// OpenAI API.
type OpenAIClient struct {
	client     *openai.Client
	model      string
	imageModel string
}

// NewOpenAIClient creates an OpenAI collaborator client.
func NewOpenAIClient(apiKey, model, imageModel string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("openai API key is required")
	}
	if model == "" {
		model = defaultOpenAIModel
	}
	if imageModel == "" {
		imageModel = defaultImageModel
	}
	return &OpenAIClient{
		client:     openai.NewClient(apiKey),
		model:      model,
		imageModel: imageModel,
	}, nil
}

// Complete sends the prompt pair in strict-JSON output mode.
func (c *OpenAIClient) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: chatTemperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

// CreateImage requests a single DALL-E 3 render and returns its URL.
func (c *OpenAIClient) CreateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Model:          c.imageModel,
		Prompt:         prompt,
		Size:           openai.CreateImageSize1024x1024,
		Quality:        openai.CreateImageQualityStandard,
		N:              1,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return "", fmt.Errorf("image generation failed: %w", err)
	}
	if len(resp.Data) == 0 {
		return "", errors.New("no images in generation response")
	}
	return resp.Data[0].URL, nil
}
