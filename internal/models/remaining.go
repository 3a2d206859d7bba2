package models

// TimeRemaining is the decomposed countdown shown by the render layer.
type TimeRemaining struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// IsZero reports whether the countdown has fully elapsed.
func (r TimeRemaining) IsZero() bool {
	return r == TimeRemaining{}
}

// Breakdown decomposes a whole-second delta into days, hours, minutes and
// seconds by floor division. Zero or negative deltas collapse to the zero
// quadruple.
func Breakdown(deltaSec int64) TimeRemaining {
	if deltaSec <= 0 {
		return TimeRemaining{}
	}
	return TimeRemaining{
		Days:    int(deltaSec / 86400),
		Hours:   int(deltaSec % 86400 / 3600),
		Minutes: int(deltaSec % 3600 / 60),
		Seconds: int(deltaSec % 60),
	}
}
