package services

import "neurolearn/models"

// StruggleWeights holds the additive risk contributions and trigger
// thresholds of the struggle detector. The defaults are the calibrated
// production values; they are grouped here so deployments can tune them
// without touching the detector itself.
type StruggleWeights struct {
	LowScoreCutoff  float64
	LowScoreWeight  float64
	TimeSpikeFactor float64
	TimeSpikeWeight float64
	HintCutoff      int
	HintWeight      float64
	AttemptCutoff   int
	AttemptWeight   float64
	RiskThreshold   float64
}

// DefaultStruggleWeights returns the standard detector calibration.
func DefaultStruggleWeights() StruggleWeights {
	return StruggleWeights{
		LowScoreCutoff:  40,
		LowScoreWeight:  0.4,
		TimeSpikeFactor: 1.5,
		TimeSpikeWeight: 0.3,
		HintCutoff:      2,
		HintWeight:      0.2,
		AttemptCutoff:   2,
		AttemptWeight:   0.3,
		RiskThreshold:   0.5,
	}
}

// AssessStruggle accumulates independent risk signals into a struggle verdict
// using the default weights.
func AssessStruggle(f models.StruggleFeatures) models.StruggleAssessment {
	return AssessStruggleWith(f, DefaultStruggleWeights())
}

// AssessStruggleWith runs the detector with explicit weights. The struggling
// flag is decided on the raw accumulated risk before clamping, so a learner
// tripping several signals at once still registers even though the reported
// factor caps at 1.0.
func AssessStruggleWith(f models.StruggleFeatures, w StruggleWeights) models.StruggleAssessment {
	risk := 0.0

	if f.RecentScore < w.LowScoreCutoff {
		risk += w.LowScoreWeight
	}
	if f.BaselineTime > 0 && f.TimeSpent > f.BaselineTime*w.TimeSpikeFactor {
		risk += w.TimeSpikeWeight
	}
	if f.HintsUsed > w.HintCutoff {
		risk += w.HintWeight
	}
	if f.Attempts > w.AttemptCutoff {
		risk += w.AttemptWeight
	}

	factor := risk
	if factor > 1.0 {
		factor = 1.0
	}

	return models.StruggleAssessment{
		StruggleRisk: risk >= w.RiskThreshold,
		RiskFactor:   factor,
	}
}
