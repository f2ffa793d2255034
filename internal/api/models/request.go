package models

// ConvertRequest represents the request body for a single conversion.
// Numeric fields are pointers so an absent field can be told apart from
// a legitimate zero.
type ConvertRequest struct {
	OriginalWattage *int `json:"original_wattage"` // watts of the microwave the recipe was written for
	TargetWattage   *int `json:"target_wattage"`   // watts of the microwave being used
	OriginalMinutes *int `json:"original_minutes"`
	OriginalSeconds *int `json:"original_seconds,omitempty"` // default: 0
}

// BatchConvertRequest represents a request to convert one recipe time
// against several target wattages at once.
type BatchConvertRequest struct {
	OriginalWattage *int  `json:"original_wattage"`
	OriginalMinutes *int  `json:"original_minutes"`
	OriginalSeconds *int  `json:"original_seconds,omitempty"`
	TargetWattages  []int `json:"target_wattages"`
}
