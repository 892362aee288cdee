package booking

import (
	"errors"
	"strings"
	"time"
)

const MinPlateLength = 3

// AllowedDurations is the fixed set of bookable durations, in hours.
var AllowedDurations = []float64{1, 2, 4, 6}

// TimeRange is the booked window. End always equals Start plus DurationHours.
type TimeRange struct {
	start         time.Time
	end           time.Time
	durationHours float64
}

func NewTimeRange(start time.Time, durationHours float64) (TimeRange, error) {
	if durationHours <= 0 {
		return TimeRange{}, errors.New("duration must be positive")
	}
	return TimeRange{
		start:         start,
		end:           start.Add(time.Duration(durationHours * float64(time.Hour))),
		durationHours: durationHours,
	}, nil
}

// ReconstructTimeRange rebuilds a range from stored values without re-deriving
// the end; stored state is trusted as written.
func ReconstructTimeRange(start, end time.Time, durationHours float64) TimeRange {
	return TimeRange{start: start, end: end, durationHours: durationHours}
}

func (t TimeRange) Start() time.Time       { return t.start }
func (t TimeRange) End() time.Time         { return t.end }
func (t TimeRange) DurationHours() float64 { return t.durationHours }

func (t TimeRange) HasElapsed(now time.Time) bool {
	return now.After(t.end)
}

func (t TimeRange) Remaining(now time.Time) time.Duration {
	if t.HasElapsed(now) {
		return 0
	}
	return t.end.Sub(now)
}

type Plate struct {
	value string
}

func NewPlate(value string) (Plate, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) < MinPlateLength {
		return Plate{}, ErrPlateTooShort
	}
	return Plate{value: trimmed}, nil
}

func (p Plate) String() string {
	return p.value
}

type Duration struct {
	hours float64
}

func NewDuration(hours float64) (Duration, error) {
	for _, allowed := range AllowedDurations {
		if hours == allowed {
			return Duration{hours: hours}, nil
		}
	}
	return Duration{}, ErrInvalidDuration
}

func (d Duration) Hours() float64 {
	return d.hours
}
