package services

import (
	"fmt"
	"strings"

	"neurolearn/models"
)

// systemPrompts maps each neuro-type to its base instruction. Adding a new
// neuro-type is a data change here, not a control-flow change.
var systemPrompts = map[models.NeuroType]string{
	models.NeuroGeneral:  "You are an expert educator creating engaging, clear, and structured content.",
	models.NeuroDyslexic: "You are an expert in inclusive education for dyslexic students. Use simple sans-serif-friendly structure, avoid dense blocks of text, use high-frequency words, and bold key terms. Focus on clarity and readability.",
	models.NeuroADHD:     "You are an expert in engaged learning for ADHD students. Break content into small, gamified 'micro-chunks'. Use exciting analogies, bullet points, and an enthusiastic tone to maintain focus. Avoid long paragraphs.",
	models.NeuroASD:      "You are an expert in education for autistic students. Use clear, literal language. Avoid idioms, metaphors, or ambiguity. Stick to facts, logical flow, and structured step-by-step explanations.",
}

// supportClauses maps each support level to the adaptation instruction
// appended after the base prompt. Unrecognized levels get the low-support
// clause.
var supportClauses = map[models.SupportLevel]string{
	models.HighSupport:   "The student is struggling. Use extremely simple language. Explain every concept with a real-world analogy. Avoid technical jargon completely.",
	models.MediumSupport: "Provide a balanced explanation. Include extra examples for difficult concepts.",
	models.LowSupport:    "The student is advanced. Be concise and include challenge ideas.",
}

const lessonOutputContract = `Format the output as a valid JSON object with the following structure:
{
    "lesson_content": "The main markdown content of the lesson...",
    "summary": "A 2-sentence summary of the key takeaways.",
    "questions": [
        {
            "questionText": "Question 1?",
            "options": ["A", "B", "C", "D"],
            "correctAnswer": 0
        }
    ],
    "visual_prompt": "A detailed description for an image generator (DALL-E) to explain this concept visually.",
    "audio_prompt": "A text script for a narrator to read, summarizing the lesson in a calming voice."
}`

// ComposePrompt builds the system and user instructions for a lesson
// generation request. Unknown neuro-types fall back to the general template.
func ComposePrompt(req models.GenerationRequest) (system string, user string) {
	base, ok := systemPrompts[req.NeuroType]
	if !ok {
		base = systemPrompts[models.NeuroGeneral]
	}

	clause, ok := supportClauses[req.SupportLevel]
	if !ok {
		clause = supportClauses[models.LowSupport]
	}
	system = base + "\n\n" + clause

	var b strings.Builder
	fmt.Fprintf(&b, "Create a comprehensive lesson on the topic: '%s'.\n", req.Topic)
	if len(req.Interests) > 0 {
		fmt.Fprintf(&b, "If possible, relate concepts to these interests: %s.\n", strings.Join(req.Interests, ", "))
	}
	b.WriteString("\n")
	b.WriteString(lessonOutputContract)

	return system, b.String()
}
