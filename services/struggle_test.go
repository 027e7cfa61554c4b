package services

import (
	"testing"

	"neurolearn/models"
)

func TestAssessStruggle(t *testing.T) {
	tests := []struct {
		name       string
		features   models.StruggleFeatures
		wantRisk   bool
		wantFactor float64
	}{
		{
			name: "all signals fire and factor clamps at one",
			features: models.StruggleFeatures{
				RecentScore: 30, TimeSpent: 20, BaselineTime: 10, HintsUsed: 3, Attempts: 3,
			},
			wantRisk:   true,
			wantFactor: 1.0,
		},
		{
			name: "healthy learner",
			features: models.StruggleFeatures{
				RecentScore: 90, TimeSpent: 5, BaselineTime: 10, HintsUsed: 0, Attempts: 1,
			},
			wantRisk:   false,
			wantFactor: 0.0,
		},
		{
			name: "low score alone stays below threshold",
			features: models.StruggleFeatures{
				RecentScore: 30, TimeSpent: 5, BaselineTime: 10, HintsUsed: 0, Attempts: 1,
			},
			wantRisk:   false,
			wantFactor: 0.4,
		},
		{
			name: "time spike plus hints hits the threshold exactly",
			features: models.StruggleFeatures{
				RecentScore: 80, TimeSpent: 16, BaselineTime: 10, HintsUsed: 3, Attempts: 1,
			},
			wantRisk:   true,
			wantFactor: 0.5,
		},
		{
			name: "zero baseline never counts as a time spike",
			features: models.StruggleFeatures{
				RecentScore: 80, TimeSpent: 500, BaselineTime: 0, HintsUsed: 0, Attempts: 1,
			},
			wantRisk:   false,
			wantFactor: 0.0,
		},
		{
			name: "retries and low score",
			features: models.StruggleFeatures{
				RecentScore: 35, TimeSpent: 10, BaselineTime: 10, HintsUsed: 0, Attempts: 3,
			},
			wantRisk:   true,
			wantFactor: 0.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AssessStruggle(tt.features)
			if got.StruggleRisk != tt.wantRisk {
				t.Errorf("StruggleRisk = %v, want %v", got.StruggleRisk, tt.wantRisk)
			}
			if diff := got.RiskFactor - tt.wantFactor; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("RiskFactor = %v, want %v", got.RiskFactor, tt.wantFactor)
			}
		})
	}
}

func TestAssessStruggleWithCustomWeights(t *testing.T) {
	w := DefaultStruggleWeights()
	w.LowScoreWeight = 0.6
	w.RiskThreshold = 0.6

	got := AssessStruggleWith(models.StruggleFeatures{RecentScore: 10, Attempts: 1}, w)
	if !got.StruggleRisk {
		t.Errorf("expected struggling with boosted low-score weight")
	}
	if got.RiskFactor != 0.6 {
		t.Errorf("RiskFactor = %v, want 0.6", got.RiskFactor)
	}
}
