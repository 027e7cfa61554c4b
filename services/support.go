package services

import "neurolearn/models"

// Score and hint-rate thresholds for the support classifier. Heuristic
// placeholders until enough telemetry is collected to train a real model.
const (
	highSupportScore    = 50.0
	highSupportHintRate = 0.5
	highSupportRetries  = 3
	lowSupportScore     = 80.0
	lowSupportHintRate  = 0.2
)

// ClassifySupport maps performance features to a support tier. Rules are
// checked in priority order: any single strong difficulty signal escalates
// straight to high support, moderate signals land on medium, and low support
// requires clearing both the score and hint thresholds.
func ClassifySupport(f models.LearnerFeatures) models.SupportLevel {
	if f.AvgScore < highSupportScore || f.HintUsageRate > highSupportHintRate || f.RetryCount > highSupportRetries {
		return models.HighSupport
	}
	if f.AvgScore < lowSupportScore || f.HintUsageRate > lowSupportHintRate {
		return models.MediumSupport
	}
	return models.LowSupport
}
