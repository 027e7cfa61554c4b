package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User defines a user account
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email        string             `bson:"email" json:"email"`
	DisplayName  string             `bson:"displayName" json:"displayName"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// StudentProfile stores a learner's neuro-type and support preferences.
// The generation route falls back to these when the request omits them.
type StudentProfile struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID          string             `bson:"userId" json:"userId"`
	AgeGroup        string             `bson:"ageGroup" json:"ageGroup"`
	EducationLevel  string             `bson:"educationLevel" json:"educationLevel"`
	LearningComfort string             `bson:"learningComfort" json:"learningComfort"`
	NeuroType       NeuroType          `bson:"neuroType" json:"neuroType"`
	SupportLevel    SupportLevel       `bson:"supportLevel" json:"supportLevel"`
	Interests       []string           `bson:"interests" json:"interests"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Learning event types accepted by the events endpoint.
const (
	EventQuizAttempt = "quiz_attempt"
	EventLessonView  = "lesson_view"
	EventHintRequest = "hint_request"
	EventModeSwitch  = "mode_switch"
	EventEarlyExit   = "early_exit"
)

// LearningEvent is one telemetry record from a learning session.
type LearningEvent struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	StudentID        string             `bson:"studentId" json:"studentId"`
	TopicID          string             `bson:"topicId,omitempty" json:"topicId,omitempty"`
	EventType        string             `bson:"eventType" json:"eventType" binding:"required"`
	Score            float64            `bson:"score" json:"score"`
	TotalQuestions   int                `bson:"totalQuestions" json:"totalQuestions"`
	TimeSpentSeconds float64            `bson:"timeSpentSeconds" json:"timeSpentSeconds"`
	HintsUsed        int                `bson:"hintsUsed" json:"hintsUsed"`
	ContentMode      string             `bson:"contentMode" json:"contentMode"`
	AttemptNumber    int                `bson:"attemptNumber" json:"attemptNumber"`
	Completed        bool               `bson:"completed" json:"completed"`
	Timestamp        time.Time          `bson:"timestamp" json:"timestamp"`
}

// GeneratedContent archives one successful lesson generation. Write-only
// history for review dashboards; never read back in place of generating.
type GeneratedContent struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	StudentID     string             `bson:"studentId" json:"studentId"`
	Topic         string             `bson:"topic" json:"topic"`
	NeuroType     NeuroType          `bson:"neuroType" json:"neuroType"`
	SupportLevel  SupportLevel       `bson:"supportLevel" json:"supportLevel"`
	LessonContent string             `bson:"lessonContent" json:"lessonContent"`
	Summary       string             `bson:"summary" json:"summary"`
	Questions     []Question         `bson:"questions" json:"questions"`
	VisualPrompt  string             `bson:"visualPrompt" json:"visualPrompt"`
	AudioPrompt   string             `bson:"audioPrompt" json:"audioPrompt"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// StudentInsights combines the three predictor outputs for one student,
// computed from their stored learning events.
type StudentInsights struct {
	StudentID     string             `json:"studentId"`
	SupportLevel  SupportLevel       `json:"supportLevel"`
	PreferredMode PreferredMode      `json:"preferredMode"`
	Struggle      StruggleAssessment `json:"struggle"`
	EventCount    int                `json:"eventCount"`
}
