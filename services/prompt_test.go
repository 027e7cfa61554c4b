package services

import (
	"strings"
	"testing"

	"neurolearn/models"
)

func TestComposePromptSelectsNeuroTemplate(t *testing.T) {
	req := models.GenerationRequest{
		Topic:        "Photosynthesis",
		NeuroType:    models.NeuroDyslexic,
		SupportLevel: models.MediumSupport,
	}
	system, _ := ComposePrompt(req)

	if !strings.Contains(system, "dyslexic students") {
		t.Errorf("expected dyslexic template in system prompt, got %q", system)
	}
	if !strings.Contains(system, "balanced explanation") {
		t.Errorf("expected medium support clause in system prompt, got %q", system)
	}
}

func TestComposePromptUnknownNeuroTypeFallsBack(t *testing.T) {
	req := models.GenerationRequest{
		Topic:        "Fractions",
		NeuroType:    models.NeuroType("unknown_value"),
		SupportLevel: models.MediumSupport,
	}
	system, _ := ComposePrompt(req)

	if !strings.Contains(system, "expert educator") {
		t.Errorf("expected general template fallback, got %q", system)
	}
}

func TestComposePromptSupportClauses(t *testing.T) {
	tests := []struct {
		level models.SupportLevel
		want  string
	}{
		{models.HighSupport, "real-world analogy"},
		{models.MediumSupport, "extra examples"},
		{models.LowSupport, "challenge ideas"},
		{models.SupportLevel("BOGUS"), "challenge ideas"}, // unrecognized falls back to low
	}
	for _, tt := range tests {
		system, _ := ComposePrompt(models.GenerationRequest{Topic: "Gravity", SupportLevel: tt.level})
		if !strings.Contains(system, tt.want) {
			t.Errorf("support level %q: expected clause containing %q, got %q", tt.level, tt.want, system)
		}
	}
}

func TestComposePromptInterestClause(t *testing.T) {
	withInterests := models.GenerationRequest{
		Topic:     "Algebra",
		Interests: []string{"football", "video games"},
	}
	_, user := ComposePrompt(withInterests)
	if !strings.Contains(user, "football, video games") {
		t.Errorf("expected comma-joined interests in user prompt, got %q", user)
	}

	without := models.GenerationRequest{Topic: "Algebra"}
	_, user = ComposePrompt(without)
	if strings.Contains(user, "relate concepts to these interests") {
		t.Errorf("interest clause must be omitted entirely when interests are empty, got %q", user)
	}
}

func TestComposePromptOutputContract(t *testing.T) {
	_, user := ComposePrompt(models.GenerationRequest{Topic: "The Water Cycle"})

	if !strings.Contains(user, "The Water Cycle") {
		t.Errorf("expected topic in user prompt")
	}
	for _, field := range []string{"lesson_content", "summary", "questions", "questionText", "options", "correctAnswer", "visual_prompt", "audio_prompt"} {
		if !strings.Contains(user, field) {
			t.Errorf("user prompt missing output contract field %q", field)
		}
	}
}
