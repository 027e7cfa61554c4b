package models

// SupportLevel is the three-tier scaffold intensity assigned to a learner.
type SupportLevel string

const (
	LowSupport    SupportLevel = "LOW_SUPPORT"
	MediumSupport SupportLevel = "MEDIUM_SUPPORT"
	HighSupport   SupportLevel = "HIGH_SUPPORT"
)

// PreferredMode is the content modality a learner responds to best.
type PreferredMode string

const (
	ModeText   PreferredMode = "TEXT"
	ModeAudio  PreferredMode = "AUDIO"
	ModeVisual PreferredMode = "VISUAL"
	ModeMixed  PreferredMode = "MIXED"
)

// LearnerFeatures aggregates a student's performance metrics for support prediction.
type LearnerFeatures struct {
	AvgScore           float64 `json:"avg_score"`
	AvgTimePerQuestion float64 `json:"avg_time_per_question"`
	HintUsageRate      float64 `json:"hint_usage_rate"`
	RetryCount         int     `json:"retry_count"`
	CompletionRate     float64 `json:"completion_rate"`
	DropoutRate        float64 `json:"dropout_rate"`
}

// ModeFeatures holds per-modality score and engagement-time pairs.
// All fields are optional and default to zero.
type ModeFeatures struct {
	ScoreAfterText   float64 `json:"score_after_text"`
	ScoreAfterAudio  float64 `json:"score_after_audio"`
	ScoreAfterVisual float64 `json:"score_after_visual"`
	TimeSpentText    float64 `json:"time_spent_text"`
	TimeSpentAudio   float64 `json:"time_spent_audio"`
	TimeSpentVisual  float64 `json:"time_spent_visual"`
}

// StruggleFeatures describes a student's most recent activity on a topic.
type StruggleFeatures struct {
	RecentScore  float64 `json:"recent_score"`
	TimeSpent    float64 `json:"time_spent"`
	BaselineTime float64 `json:"baseline_time"`
	HintsUsed    int     `json:"hints_used"`
	Attempts     int     `json:"attempts"`
}

// StruggleAssessment is the struggle detector's verdict.
type StruggleAssessment struct {
	StruggleRisk bool    `json:"struggle_risk"`
	RiskFactor   float64 `json:"risk_factor"`
}
