package model

import "time"

// Interval is a half-open time window [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start time.Time, hours int) Interval {
	return Interval{
		Start: start,
		End:   start.Add(time.Duration(hours) * time.Hour),
	}
}

// Overlaps reports whether the windows share any instant. Touching windows do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}
