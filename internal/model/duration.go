package model

import "fmt"

// Duration is a cooking time broken into display parts. Derived, never
// mutated after construction; Seconds is always within [0,59] and
// TotalSeconds == Minutes*60 + Seconds.
type Duration struct {
	Minutes      int    `json:"minutes"`
	Seconds      int    `json:"seconds"`
	TotalSeconds int    `json:"total_seconds"`
	Formatted    string `json:"formatted"`
}

// DurationFromSeconds builds a Duration from a whole number of seconds.
func DurationFromSeconds(total int) Duration {
	if total < 0 {
		total = 0
	}
	m := total / 60
	s := total % 60
	return Duration{
		Minutes:      m,
		Seconds:      s,
		TotalSeconds: total,
		Formatted:    FormatTime(m, s),
	}
}

// FormatTime renders minutes and seconds the way the converter displays
// them: "2m 51s", or just "30s" when there is no whole minute.
func FormatTime(minutes, seconds int) string {
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
