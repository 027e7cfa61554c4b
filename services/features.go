package services

import "neurolearn/models"

// Feature extraction turns a student's raw learning events into the vectors
// the predictors consume. Events must be in chronological order; the db
// layer queries them sorted by timestamp ascending.

// BuildLearnerFeatures aggregates performance metrics across all events.
func BuildLearnerFeatures(events []models.LearningEvent) models.LearnerFeatures {
	var (
		attempts       int
		completed      int
		retries        int
		scoreSum       float64
		timeSum        float64
		questionsTotal int
		hintsTotal     int
		lessonViews    int
		earlyExits     int
	)

	for _, e := range events {
		switch e.EventType {
		case models.EventQuizAttempt:
			attempts++
			scoreSum += e.Score
			timeSum += e.TimeSpentSeconds
			questionsTotal += e.TotalQuestions
			hintsTotal += e.HintsUsed
			if e.Completed {
				completed++
			}
			if e.AttemptNumber > 1 {
				retries++
			}
		case models.EventHintRequest:
			hintsTotal++
		case models.EventLessonView:
			lessonViews++
		case models.EventEarlyExit:
			earlyExits++
		}
	}

	var f models.LearnerFeatures
	if attempts > 0 {
		f.AvgScore = scoreSum / float64(attempts)
		f.CompletionRate = float64(completed) / float64(attempts)
	}
	if questionsTotal > 0 {
		f.AvgTimePerQuestion = timeSum / float64(questionsTotal)
		f.HintUsageRate = float64(hintsTotal) / float64(questionsTotal)
		if f.HintUsageRate > 1 {
			f.HintUsageRate = 1
		}
	}
	if lessonViews > 0 {
		f.DropoutRate = float64(earlyExits) / float64(lessonViews)
	}
	f.RetryCount = retries
	return f
}

// BuildModeFeatures splits scores and engagement time by content modality.
// Scores come from quiz attempts; engagement time accumulates across every
// event tagged with the modality.
func BuildModeFeatures(events []models.LearningEvent) models.ModeFeatures {
	type agg struct {
		scoreSum float64
		attempts int
		time     float64
	}
	byMode := map[string]*agg{
		"text":   {},
		"audio":  {},
		"visual": {},
	}

	for _, e := range events {
		a, ok := byMode[e.ContentMode]
		if !ok {
			continue
		}
		a.time += e.TimeSpentSeconds
		if e.EventType == models.EventQuizAttempt {
			a.scoreSum += e.Score
			a.attempts++
		}
	}

	avg := func(a *agg) float64 {
		if a.attempts == 0 {
			return 0
		}
		return a.scoreSum / float64(a.attempts)
	}

	return models.ModeFeatures{
		ScoreAfterText:   avg(byMode["text"]),
		ScoreAfterAudio:  avg(byMode["audio"]),
		ScoreAfterVisual: avg(byMode["visual"]),
		TimeSpentText:    byMode["text"].time,
		TimeSpentAudio:   byMode["audio"].time,
		TimeSpentVisual:  byMode["visual"].time,
	}
}

// BuildStruggleFeatures looks at the latest quiz attempt against the
// student's own baseline pace from earlier attempts.
func BuildStruggleFeatures(events []models.LearningEvent) models.StruggleFeatures {
	var quizzes []models.LearningEvent
	for _, e := range events {
		if e.EventType == models.EventQuizAttempt {
			quizzes = append(quizzes, e)
		}
	}
	if len(quizzes) == 0 {
		return models.StruggleFeatures{}
	}

	latest := quizzes[len(quizzes)-1]

	var baseline float64
	if len(quizzes) > 1 {
		var sum float64
		for _, q := range quizzes[:len(quizzes)-1] {
			sum += q.TimeSpentSeconds
		}
		baseline = sum / float64(len(quizzes)-1)
	}

	return models.StruggleFeatures{
		RecentScore:  latest.Score,
		TimeSpent:    latest.TimeSpentSeconds,
		BaselineTime: baseline,
		HintsUsed:    latest.HintsUsed,
		Attempts:     latest.AttemptNumber,
	}
}
