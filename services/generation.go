package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"neurolearn/models"
)

// GenerationService orchestrates lesson generation: prompt composition, the
// collaborator call, contract validation, and fallback substitution. Callers
// always get a fully-populated response; failures never propagate past it.
type GenerationService struct {
	chat   ChatCompleter
	images ImageCreator
}

// NewGenerationService wires the orchestrator to its collaborator clients.
// Either client may be nil; the corresponding operation then always takes
// its failure path.
func NewGenerationService(chat ChatCompleter, images ImageCreator) *GenerationService {
	return &GenerationService{chat: chat, images: images}
}

// GenerateContent produces a neuro-adapted lesson for the request. On any
// failure the error is logged and a deterministic fallback payload is
// returned, so downstream rendering layers never see partial lesson data.
func (s *GenerationService) GenerateContent(ctx context.Context, req models.GenerationRequest) models.GenerationResponse {
	resp, err := s.generate(ctx, req)
	if err != nil {
		log.Printf("Error generating content: %v", err)
		return fallbackResponse(req.Topic)
	}
	return resp
}

func (s *GenerationService) generate(ctx context.Context, req models.GenerationRequest) (models.GenerationResponse, error) {
	if s.chat == nil {
		return models.GenerationResponse{}, errors.New("generation client not initialized")
	}

	system, user := ComposePrompt(req)

	raw, err := s.chat.Complete(ctx, system, user)
	if err != nil {
		return models.GenerationResponse{}, fmt.Errorf("generation request failed: %w", err)
	}

	cleaned := cleanModelOutput(raw)
	if err := validateGeneration([]byte(cleaned)); err != nil {
		return models.GenerationResponse{}, fmt.Errorf("invalid generation payload: %w", err)
	}

	var out models.GenerationResponse
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return models.GenerationResponse{}, fmt.Errorf("decode generation payload: %w", err)
	}
	if out.Questions == nil {
		out.Questions = []models.Question{}
	}
	return out, nil
}

const fallbackSummary = "Generation failed."

// IsFallback reports whether resp is the sentinel payload substituted on
// generation failure.
func IsFallback(resp models.GenerationResponse) bool {
	return resp.Summary == fallbackSummary && resp.VisualPrompt == "Error"
}

func fallbackResponse(topic string) models.GenerationResponse {
	return models.GenerationResponse{
		LessonContent: fmt.Sprintf("Could not generate content for %s. Please try again.", topic),
		Summary:       fallbackSummary,
		Questions:     []models.Question{},
		VisualPrompt:  "Error",
		AudioPrompt:   "Error",
	}
}

// GenerateImage renders a visual for the prompt and returns its URL. An
// empty string is the failure signal; callers must not render it as an
// image source.
func (s *GenerationService) GenerateImage(ctx context.Context, prompt string) string {
	if s.images == nil {
		log.Printf("Error generating image: image client not initialized")
		return ""
	}
	url, err := s.images.CreateImage(ctx, prompt)
	if err != nil {
		log.Printf("Error generating image: %v", err)
		return ""
	}
	return url
}
