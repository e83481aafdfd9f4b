// Package spacing holds the pure review-interval rules for flashcard
// scheduling: mastery moves up or down with the review outcome and the
// next due date stretches with mastery.
package spacing

import "time"

// ReviewIntervals maps a mastery level to the days until the next
// review after a correct answer. Levels past the last entry reuse it.
var ReviewIntervals = [...]int{1, 3, 7, 14, 30}

const (
	MinMastery = 0
	MaxMastery = 5

	// FailureIntervalDays is the retry interval after a wrong answer,
	// applied regardless of mastery.
	FailureIntervalDays = 1
)

// Outcome is the scheduling result of a single graded review.
type Outcome struct {
	MasteryLevel int
	IntervalDays int
}

// Next returns the post-review mastery level and review interval.
// Mastery never leaves [MinMastery, MaxMastery].
func Next(masteryLevel int, correct bool) Outcome {
	if !correct {
		level := masteryLevel - 1
		if level < MinMastery {
			level = MinMastery
		}
		return Outcome{MasteryLevel: level, IntervalDays: FailureIntervalDays}
	}

	level := masteryLevel + 1
	if level > MaxMastery {
		level = MaxMastery
	}

	idx := level
	if idx >= len(ReviewIntervals) {
		idx = len(ReviewIntervals) - 1
	}
	return Outcome{MasteryLevel: level, IntervalDays: ReviewIntervals[idx]}
}

// NextReviewAt returns the due timestamp for an outcome produced at now.
// The result is always strictly after now.
func (o Outcome) NextReviewAt(now time.Time) time.Time {
	return now.AddDate(0, 0, o.IntervalDays)
}
