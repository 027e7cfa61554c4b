package services

import (
	"context"
	"errors"
	"testing"

	"neurolearn/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChat struct {
	reply      string
	err        error
	lastSystem string
	lastUser   string
	calls      int
}

func (f *fakeChat) Complete(_ context.Context, system, user string) (string, error) {
	f.calls++
	f.lastSystem = system
	f.lastUser = user
	return f.reply, f.err
}

type fakeImage struct {
	url string
	err error
}

func (f *fakeImage) CreateImage(_ context.Context, _ string) (string, error) {
	return f.url, f.err
}

const validLessonJSON = `{
	"lesson_content": "# Photosynthesis\nPlants turn light into food.",
	"summary": "Plants make food from sunlight. Chlorophyll does the work.",
	"questions": [
		{
			"questionText": "What do plants need for photosynthesis?",
			"options": ["Sunlight", "Sand", "Salt", "Smoke"],
			"correctAnswer": 0
		}
	],
	"visual_prompt": "A labeled diagram of a leaf capturing sunlight.",
	"audio_prompt": "A calm narration explaining how plants make food."
}`

func assertFallback(t *testing.T, resp models.GenerationResponse, topic string) {
	t.Helper()
	assert.Equal(t, "Could not generate content for "+topic+". Please try again.", resp.LessonContent)
	assert.Equal(t, "Generation failed.", resp.Summary)
	require.NotNil(t, resp.Questions)
	assert.Empty(t, resp.Questions)
	assert.Equal(t, "Error", resp.VisualPrompt)
	assert.Equal(t, "Error", resp.AudioPrompt)
}

func TestGenerateContentSuccess(t *testing.T) {
	chat := &fakeChat{reply: validLessonJSON}
	svc := NewGenerationService(chat, nil)

	req := models.GenerationRequest{
		Topic:        "Photosynthesis",
		NeuroType:    models.NeuroADHD,
		SupportLevel: models.HighSupport,
	}
	resp := svc.GenerateContent(context.Background(), req)

	assert.False(t, IsFallback(resp))
	assert.Contains(t, resp.LessonContent, "Photosynthesis")
	require.Len(t, resp.Questions, 1)
	assert.Equal(t, 0, resp.Questions[0].CorrectAnswer)
	assert.Len(t, resp.Questions[0].Options, 4)

	// The composed prompts reach the collaborator.
	assert.Contains(t, chat.lastSystem, "ADHD students")
	assert.Contains(t, chat.lastUser, "Photosynthesis")
	assert.Equal(t, 1, chat.calls)
}

func TestGenerateContentStripsCodeFences(t *testing.T) {
	chat := &fakeChat{reply: "```json\n" + validLessonJSON + "\n```"}
	svc := NewGenerationService(chat, nil)

	resp := svc.GenerateContent(context.Background(), models.GenerationRequest{Topic: "Photosynthesis"})
	assert.False(t, IsFallback(resp))
}

func TestGenerateContentTransportError(t *testing.T) {
	chat := &fakeChat{err: errors.New("connection refused")}
	svc := NewGenerationService(chat, nil)

	resp := svc.GenerateContent(context.Background(), models.GenerationRequest{Topic: "Fractions"})
	assertFallback(t, resp, "Fractions")
}

func TestGenerateContentTimeoutIsOrdinaryFailure(t *testing.T) {
	chat := &fakeChat{err: context.DeadlineExceeded}
	svc := NewGenerationService(chat, nil)

	resp := svc.GenerateContent(context.Background(), models.GenerationRequest{Topic: "Fractions"})
	assertFallback(t, resp, "Fractions")
}

func TestGenerateContentMalformedJSON(t *testing.T) {
	chat := &fakeChat{reply: "here is your lesson: it depends"}
	svc := NewGenerationService(chat, nil)

	resp := svc.GenerateContent(context.Background(), models.GenerationRequest{Topic: "Gravity"})
	assertFallback(t, resp, "Gravity")
}

func TestGenerateContentMissingField(t *testing.T) {
	chat := &fakeChat{reply: `{"lesson_content": "x", "summary": "y", "visual_prompt": "v", "audio_prompt": "a"}`}
	svc := NewGenerationService(chat, nil)

	resp := svc.GenerateContent(context.Background(), models.GenerationRequest{Topic: "Gravity"})
	assertFallback(t, resp, "Gravity")
}

func TestGenerateContentWrongOptionCount(t *testing.T) {
	chat := &fakeChat{reply: `{
		"lesson_content": "x", "summary": "y",
		"questions": [{"questionText": "q", "options": ["A", "B", "C"], "correctAnswer": 0}],
		"visual_prompt": "v", "audio_prompt": "a"
	}`}
	svc := NewGenerationService(chat, nil)

	resp := svc.GenerateContent(context.Background(), models.GenerationRequest{Topic: "Gravity"})
	assertFallback(t, resp, "Gravity")
}

func TestGenerateContentOutOfRangeAnswerIndex(t *testing.T) {
	chat := &fakeChat{reply: `{
		"lesson_content": "x", "summary": "y",
		"questions": [{"questionText": "q", "options": ["A", "B", "C", "D"], "correctAnswer": 7}],
		"visual_prompt": "v", "audio_prompt": "a"
	}`}
	svc := NewGenerationService(chat, nil)

	resp := svc.GenerateContent(context.Background(), models.GenerationRequest{Topic: "Gravity"})
	assertFallback(t, resp, "Gravity")
}

func TestGenerateContentEmptyQuestionsAllowed(t *testing.T) {
	chat := &fakeChat{reply: `{
		"lesson_content": "x", "summary": "y", "questions": [],
		"visual_prompt": "v", "audio_prompt": "a"
	}`}
	svc := NewGenerationService(chat, nil)

	resp := svc.GenerateContent(context.Background(), models.GenerationRequest{Topic: "Gravity"})
	assert.False(t, IsFallback(resp))
	require.NotNil(t, resp.Questions)
	assert.Empty(t, resp.Questions)
}

func TestGenerateContentNilClient(t *testing.T) {
	svc := NewGenerationService(nil, nil)

	resp := svc.GenerateContent(context.Background(), models.GenerationRequest{Topic: "Gravity"})
	assertFallback(t, resp, "Gravity")
}

func TestGenerateImage(t *testing.T) {
	svc := NewGenerationService(nil, &fakeImage{url: "https://img.example/lesson.png"})
	assert.Equal(t, "https://img.example/lesson.png", svc.GenerateImage(context.Background(), "a leaf"))

	svc = NewGenerationService(nil, &fakeImage{err: errors.New("quota exceeded")})
	assert.Equal(t, "", svc.GenerateImage(context.Background(), "a leaf"))

	svc = NewGenerationService(nil, nil)
	assert.Equal(t, "", svc.GenerateImage(context.Background(), "a leaf"))
}
