package model

// Wattages pairs the two wattages of a conversion with their ratio.
// Ratio is rounded to 2 decimal places and is for display only; the
// conversion arithmetic always divides the unrounded wattages.
type Wattages struct {
	Original int     `json:"original"`
	Target   int     `json:"target"`
	Ratio    float64 `json:"ratio"`
}

// PowerRecommendation advises what power level to run the target microwave
// at, derived purely from the wattage ratio.
type PowerRecommendation struct {
	PowerLevel string `json:"power_level"`
	Reason     string `json:"reason"`
}
