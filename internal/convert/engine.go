package convert

import (
	"fmt"
	"math"

	"microwave-converter/internal/model"
)

// Thresholds on the original/target wattage ratio that switch the
// power-level advice.
const (
	RatioMuchMorePowerful = 1.5
	RatioLessPowerful     = 0.7
)

const (
	PowerLevelReduced = "70-80%"
	PowerLevelFull    = "100%"
)

const (
	ReasonMuchMorePowerful = "Recipe microwave is much more powerful. Consider using a lower power level."
	ReasonLessPowerful     = "Recipe microwave is less powerful. Use full power and monitor closely."
	ReasonSimilar          = "Wattages are similar. Use normal power."
)

const explanationFormat = "Cook for %s instead of %s when using a %dW microwave instead of %dW"

type Engine struct{}

func New() *Engine { return &Engine{} }

// Result is everything a caller needs to present one conversion.
type Result struct {
	OriginalTime   model.Duration
	ConvertedTime  model.Duration
	Wattages       model.Wattages
	Recommendation model.PowerRecommendation
	Explanation    string
}

// Validate reports the first constraint the request breaks, if any.
func (e *Engine) Validate(req model.ConversionRequest) error {
	if verr := req.Validate(); verr != nil {
		return verr
	}
	return nil
}

// Convert scales the cooking time so the target microwave delivers the
// same energy as the recipe's, then derives power-level advice from the
// wattage ratio.
func (e *Engine) Convert(req model.ConversionRequest) (*Result, error) {
	if verr := req.Validate(); verr != nil {
		return nil, verr
	}

	origTotal := req.TotalSeconds()
	scaled := float64(origTotal) * float64(req.OriginalWattage) / float64(req.TargetWattage)
	newTotal := int(math.Round(scaled))

	ratio := float64(req.OriginalWattage) / float64(req.TargetWattage)

	origTime := model.DurationFromSeconds(origTotal)
	newTime := model.DurationFromSeconds(newTotal)

	return &Result{
		OriginalTime:  origTime,
		ConvertedTime: newTime,
		Wattages: model.Wattages{
			Original: req.OriginalWattage,
			Target:   req.TargetWattage,
			Ratio:    roundRatio(ratio),
		},
		Recommendation: e.RecommendPowerLevel(ratio),
		Explanation: fmt.Sprintf(explanationFormat,
			newTime.Formatted, origTime.Formatted, req.TargetWattage, req.OriginalWattage),
	}, nil
}

// RecommendPowerLevel maps the original/target wattage ratio to the power
// setting to use on the target microwave. This is the only place the
// advisory thresholds live; every surface derives its advice from here.
func (e *Engine) RecommendPowerLevel(ratio float64) model.PowerRecommendation {
	switch {
	case ratio > RatioMuchMorePowerful:
		return model.PowerRecommendation{PowerLevel: PowerLevelReduced, Reason: ReasonMuchMorePowerful}
	case ratio < RatioLessPowerful:
		return model.PowerRecommendation{PowerLevel: PowerLevelFull, Reason: ReasonLessPowerful}
	default:
		return model.PowerRecommendation{PowerLevel: PowerLevelFull, Reason: ReasonSimilar}
	}
}

func roundRatio(r float64) float64 {
	return math.Round(r*100) / 100
}
