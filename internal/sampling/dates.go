package sampling

import "time"

// DateOptions control how DateBetween picks a day inside its range.
type DateOptions struct {
	// WeightToStart skews the draw toward the start of the range with an
	// exponential distribution (mean = range/3), simulating records that
	// are mostly already in flight.
	WeightToStart bool
	// AvoidWeekends gives an 85% chance of pushing a weekend result
	// forward to the next weekday.
	AvoidWeekends bool
}

// DateBetween returns a random date in [start, end] at midnight.
func (s *Sampler) DateBetween(start, end time.Time, opts DateOptions) time.Time {
	daysDiff := int(end.Sub(start).Hours() / 24)
	if daysDiff < 0 {
		daysDiff = 0
	}

	var randomDays int
	if opts.WeightToStart {
		randomDays = int(s.Exponential(float64(daysDiff) / 3))
		if randomDays > daysDiff {
			randomDays = daysDiff
		}
	} else {
		randomDays = s.IntBetween(0, daysDiff)
	}

	result := start.AddDate(0, 0, randomDays)

	if opts.AvoidWeekends && s.Chance(0.85) {
		for isWeekend(result) {
			result = result.AddDate(0, 0, 1)
			if result.After(end) {
				result = start.AddDate(0, 0, s.IntBetween(0, daysDiff))
			}
		}
	}

	return result
}

// DatetimeBetween returns a random timestamp in [start, end]. When
// businessHours is set there is an 80% chance the hour falls in [9, 18].
func (s *Sampler) DatetimeBetween(start, end time.Time, businessHours bool) time.Time {
	date := s.DateBetween(start, end, DateOptions{})

	var hour int
	if businessHours && s.Chance(0.8) {
		hour = s.IntBetween(9, 18)
	} else {
		hour = s.IntBetween(0, 23)
	}

	return time.Date(date.Year(), date.Month(), date.Day(),
		hour, s.IntBetween(0, 59), s.IntBetween(0, 59), 0, date.Location())
}

func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}
