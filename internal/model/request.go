package model

// Wattage and time bounds accepted by the converter.
// Units:
// - wattages: watts
// - minutes: [0,60], seconds: [0,59]
// A request must encode a positive duration (minutes and seconds not both zero).
const (
	MinWattage = 100
	MaxWattage = 2000

	MaxMinutes = 60
	MaxSeconds = 59
)

// Field names used in validation errors. These match the snake_case keys of
// the tool-call surface so every caller can key messages the same way.
const (
	FieldOriginalWattage = "original_wattage"
	FieldTargetWattage   = "target_wattage"
	FieldOriginalMinutes = "original_minutes"
	FieldOriginalSeconds = "original_seconds"

	// FieldOriginalTime covers the minutes+seconds pair for the
	// zero-duration case, which has no single offending input.
	FieldOriginalTime = "original_time"
)

// ConversionRequest is the input to a conversion: the recipe's wattage and
// cooking time, and the wattage to convert to.
type ConversionRequest struct {
	OriginalWattage int
	TargetWattage   int
	OriginalMinutes int
	OriginalSeconds int
}

// TotalSeconds returns the requested cooking time in seconds.
func (r ConversionRequest) TotalSeconds() int {
	return r.OriginalMinutes*60 + r.OriginalSeconds
}

// Validate checks ranges and the positive-duration invariant. It does not
// mutate the request. Checks run in a fixed order (original wattage, target
// wattage, minutes, seconds, zero duration) and report the first failure.
func (r ConversionRequest) Validate() *ValidationError {
	if r.OriginalWattage < MinWattage || r.OriginalWattage > MaxWattage {
		return newValidationError(KindOutOfRange, FieldOriginalWattage,
			"Original wattage must be between 100 and 2000 watts")
	}
	if r.TargetWattage < MinWattage || r.TargetWattage > MaxWattage {
		return newValidationError(KindOutOfRange, FieldTargetWattage,
			"Target wattage must be between 100 and 2000 watts")
	}
	if r.OriginalMinutes < 0 || r.OriginalMinutes > MaxMinutes {
		return newValidationError(KindInvalidTime, FieldOriginalMinutes,
			"Minutes must be between 0 and 60")
	}
	if r.OriginalSeconds < 0 || r.OriginalSeconds > MaxSeconds {
		return newValidationError(KindInvalidTime, FieldOriginalSeconds,
			"Seconds must be between 0 and 59")
	}
	if r.TotalSeconds() == 0 {
		return newValidationError(KindInvalidTime, FieldOriginalTime,
			"Cooking time must be greater than 0 seconds")
	}
	return nil
}
