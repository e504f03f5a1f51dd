package sampling

import (
	"time"

	"github.com/aditya-h-09/asana-rl-seed-data/internal/models"
)

// completionRateRanges holds the base completion-rate range per project
// type. Types not listed fall back to defaultCompletionRange.
var completionRateRanges = map[models.ProjectType][2]float64{
	models.ProjectTypeSprint:     {0.70, 0.85},
	models.ProjectTypeOngoing:    {0.40, 0.50},
	models.ProjectTypeCampaign:   {0.65, 0.75},
	models.ProjectTypeOperations: {0.55, 0.65},
}

var defaultCompletionRange = [2]float64{0.50, 0.60}

// DueDate returns a due date relative to createdAt, or nil for the 10% of
// tasks that carry none. The offset is drawn from a four-bucket
// distribution; 15% of dated tasks are overdue by 1-30 days. Weekend due
// dates are pushed to the next weekday 85% of the time.
func (s *Sampler) DueDate(createdAt time.Time) *time.Time {
	if s.Chance(0.10) {
		return nil
	}

	var days int
	switch draw := s.Float64(); {
	case draw < 0.25: // within 1 week
		days = s.IntBetween(1, 7)
	case draw < 0.65: // within 1 month
		days = s.IntBetween(8, 30)
	case draw < 0.85: // 1-3 months out
		days = s.IntBetween(31, 90)
	default: // overdue
		days = -s.IntBetween(1, 30)
	}

	due := createdAt.AddDate(0, 0, days)

	if s.Chance(0.85) {
		for isWeekend(due) {
			due = due.AddDate(0, 0, 1)
		}
	}

	return &due
}

// CompletionRate returns the adjusted probability that a task of the given
// age, in a project of the given type, is completed: a uniform draw within
// the type's base range plus an age boost of up to +0.20 (saturating at 90
// days old).
func (s *Sampler) CompletionRate(projectType models.ProjectType, ageDays float64) float64 {
	rateRange, ok := completionRateRanges[projectType]
	if !ok {
		rateRange = defaultCompletionRange
	}
	base := rateRange[0] + s.Float64()*(rateRange[1]-rateRange[0])

	ageFactor := ageDays / 90
	if ageFactor > 1 {
		ageFactor = 1
	}
	return base + ageFactor*0.2
}

// CompletionStatus decides whether a task created at createdAt is
// completed and, if so, when. Days-to-complete follows a log-normal
// distribution (location 1.5, scale 0.8) clamped to [1, 14]; a completion
// time past now is replaced by a uniform offset within the elapsed window.
func (s *Sampler) CompletionStatus(createdAt time.Time, projectType models.ProjectType, now time.Time) (bool, *time.Time) {
	ageDays := now.Sub(createdAt).Hours() / 24
	if !s.Chance(s.CompletionRate(projectType, ageDays)) {
		return false, nil
	}

	daysToComplete := int(s.LogNormal(1.5, 0.8))
	if daysToComplete < 1 {
		daysToComplete = 1
	} else if daysToComplete > 14 {
		daysToComplete = 14
	}

	completedAt := createdAt.AddDate(0, 0, daysToComplete)

	if completedAt.After(now) {
		elapsedDays := int(now.Sub(createdAt).Hours() / 24)
		if elapsedDays <= 0 {
			completedAt = createdAt
		} else {
			completedAt = createdAt.AddDate(0, 0, s.IntBetween(1, elapsedDays))
		}
	}

	return true, &completedAt
}
