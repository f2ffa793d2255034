package models

import "microwave-converter/internal/model"

// ConvertResponse represents a successful conversion
type ConvertResponse struct {
	ConvertedTime       model.Duration            `json:"converted_time"`
	OriginalTime        model.Duration            `json:"original_time"`
	Wattages            model.Wattages            `json:"wattages"`
	PowerRecommendation model.PowerRecommendation `json:"power_recommendation"`
	Explanation         string                    `json:"explanation"`
}

// BatchComparison contains one target wattage's outcome within a batch
type BatchComparison struct {
	TargetWattage       int                       `json:"target_wattage"`
	ConvertedTime       model.Duration            `json:"converted_time"`
	Wattages            model.Wattages            `json:"wattages"`
	PowerRecommendation model.PowerRecommendation `json:"power_recommendation"`
}

// BatchConvertResponse represents the response to a batch conversion
type BatchConvertResponse struct {
	OriginalTime model.Duration    `json:"original_time"`
	Comparisons  []BatchComparison `json:"comparisons"`
	Count        int               `json:"count"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
