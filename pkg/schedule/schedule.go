// Package schedule implements the spaced-repetition review rule.
//
// The rule is deliberately simple: every observation increments the seen
// count and pushes the next review out by one day per lifetime observation.
// There is no ease factor and no penalty for reviewing early - an early
// observation still widens the interval.
package schedule

import "time"

// ReviewInterval is the unit by which the review window widens per observation.
const ReviewInterval = 24 * time.Hour

// Next computes the review schedule after one more observation.
// timesSeen is the count before this observation; pass 0 for a word that has
// never been seen. The returned count is always timesSeen+1 and the returned
// due time is exactly (timesSeen+1) * 24h after now.
func Next(timesSeen int, now time.Time) (int, time.Time) {
	n := timesSeen + 1
	return n, now.Add(time.Duration(n) * ReviewInterval)
}
