package datagen

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// Range is a closed interval of float64 values. Both bounds are attainable:
// a degenerate range [x, x] always draws x.
type Range struct {
	Min float64
	Max float64
}

// Validate returns an error when the bounds are inverted.
func (r Range) Validate() error {
	if r.Min > r.Max {
		return errors.Errorf("invalid range: min %v > max %v", r.Min, r.Max)
	}
	return nil
}

// Draw returns a uniform value in [Min, Max].
func (r Range) Draw(rnd *rand.Rand) float64 {
	return r.Min + rnd.Float64()*(r.Max-r.Min)
}

// Clamp forces v into [Min, Max].
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// IntRange is a closed interval of integers.
type IntRange struct {
	Min int
	Max int
}

// Validate returns an error when the bounds are inverted.
func (r IntRange) Validate() error {
	if r.Min > r.Max {
		return errors.Errorf("invalid range: min %d > max %d", r.Min, r.Max)
	}
	return nil
}

// Draw returns a uniform integer in [Min, Max].
func (r IntRange) Draw(rnd *rand.Rand) int {
	return r.Min + rnd.Intn(r.Max-r.Min+1)
}

// DateRange is a closed interval of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Validate returns an error when Start is after End.
func (d DateRange) Validate() error {
	if d.Start.After(d.End) {
		return errors.Errorf("invalid date range: start %s after end %s",
			d.Start.Format("2006-01-02"), d.End.Format("2006-01-02"))
	}
	return nil
}

// Draw returns a uniform day in [Start, End] at midnight of Start's
// location.
func (d DateRange) Draw(rnd *rand.Rand) time.Time {
	days := int(d.End.Sub(d.Start).Hours() / 24)
	return d.Start.AddDate(0, 0, rnd.Intn(days+1))
}

// LookbackWindow returns the date range covering the given number of years
// up to now, for fields like acquisition and hire dates.
func LookbackWindow(now time.Time, years int) DateRange {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return DateRange{Start: day.AddDate(-years, 0, 0), End: day}
}
