package models

// NeuroType is a learner-profile category driving stylistic adaptation
// of generated content.
type NeuroType string

const (
	NeuroGeneral  NeuroType = "general"
	NeuroDyslexic NeuroType = "dyslexic"
	NeuroADHD     NeuroType = "adhd"
	NeuroASD      NeuroType = "asd"
)

// GenerationRequest asks for a neuro-adapted lesson on a topic.
type GenerationRequest struct {
	Topic        string       `json:"topic" binding:"required"`
	NeuroType    NeuroType    `json:"neuro_type"`
	SupportLevel SupportLevel `json:"support_level"`
	Interests    []string     `json:"interests"`
}

// Question is a single multiple-choice item inside generated content.
type Question struct {
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// GenerationResponse is the fully-populated lesson payload. Every field is
// always set; on generation failure each field carries a deterministic
// placeholder instead of being left empty.
type GenerationResponse struct {
	LessonContent string     `json:"lesson_content"`
	Summary       string     `json:"summary"`
	Questions     []Question `json:"questions"`
	VisualPrompt  string     `json:"visual_prompt"`
	AudioPrompt   string     `json:"audio_prompt"`
}
