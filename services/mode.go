package services

import "neurolearn/models"

// mixedSpreadThreshold is the minimum gap between the best and worst
// effectiveness score needed to declare a single winning modality.
const mixedSpreadThreshold = 10.0

// ClassifyMode picks the learner's preferred content modality from
// per-modality score/time pairs. Each modality gets an engagement-weighted
// effectiveness score: score * (1 + time/100), so longer engagement amplifies
// a given score. When every score is zero there is no signal, and when the
// scores are too close to discriminate, the answer is MIXED.
//
// Ties on the maximum resolve in the fixed order text, audio, visual.
func ClassifyMode(f models.ModeFeatures) models.PreferredMode {
	type candidate struct {
		mode  models.PreferredMode
		score float64
	}

	candidates := []candidate{
		{models.ModeText, f.ScoreAfterText * (1 + f.TimeSpentText/100)},
		{models.ModeAudio, f.ScoreAfterAudio * (1 + f.TimeSpentAudio/100)},
		{models.ModeVisual, f.ScoreAfterVisual * (1 + f.TimeSpentVisual/100)},
	}

	best := candidates[0]
	min := candidates[0].score
	for _, c := range candidates[1:] {
		if c.score > best.score {
			best = c
		}
		if c.score < min {
			min = c.score
		}
	}

	if best.score == 0 {
		return models.ModeMixed
	}
	if best.score-min < mixedSpreadThreshold {
		return models.ModeMixed
	}
	return best.mode
}
