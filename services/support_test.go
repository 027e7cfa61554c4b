package services

import (
	"testing"

	"neurolearn/models"
)

func TestClassifySupport(t *testing.T) {
	tests := []struct {
		name     string
		features models.LearnerFeatures
		want     models.SupportLevel
	}{
		{
			name:     "low score forces high support",
			features: models.LearnerFeatures{AvgScore: 45, HintUsageRate: 0.0, RetryCount: 0, CompletionRate: 1.0},
			want:     models.HighSupport,
		},
		{
			name:     "low score wins even with perfect completion",
			features: models.LearnerFeatures{AvgScore: 49.9, CompletionRate: 1.0, DropoutRate: 0},
			want:     models.HighSupport,
		},
		{
			name:     "heavy hint usage forces high support",
			features: models.LearnerFeatures{AvgScore: 95, HintUsageRate: 0.6},
			want:     models.HighSupport,
		},
		{
			name:     "excessive retries force high support",
			features: models.LearnerFeatures{AvgScore: 95, RetryCount: 4},
			want:     models.HighSupport,
		},
		{
			name:     "mid score band lands on medium",
			features: models.LearnerFeatures{AvgScore: 70, HintUsageRate: 0.1},
			want:     models.MediumSupport,
		},
		{
			name:     "moderate hint usage escalates to medium despite high score",
			features: models.LearnerFeatures{AvgScore: 90, HintUsageRate: 0.3},
			want:     models.MediumSupport,
		},
		{
			name:     "mastery clears both thresholds",
			features: models.LearnerFeatures{AvgScore: 85, HintUsageRate: 0.1, RetryCount: 0},
			want:     models.LowSupport,
		},
		{
			name:     "boundary score 50 is not high support",
			features: models.LearnerFeatures{AvgScore: 50, HintUsageRate: 0.0},
			want:     models.MediumSupport,
		},
		{
			name:     "boundary score 80 is low support",
			features: models.LearnerFeatures{AvgScore: 80, HintUsageRate: 0.0},
			want:     models.LowSupport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifySupport(tt.features)
			if got != tt.want {
				t.Errorf("ClassifySupport() = %v, want %v", got, tt.want)
			}
			// Pure function: a second call must agree.
			if again := ClassifySupport(tt.features); again != got {
				t.Errorf("ClassifySupport() not deterministic: %v then %v", got, again)
			}
		})
	}
}
