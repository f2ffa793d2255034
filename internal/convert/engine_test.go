package convert

import (
	"errors"
	"fmt"
	"testing"

	"microwave-converter/internal/model"
)

func TestConvert_Scenarios(t *testing.T) {
	e := New()

	cases := []struct {
		name          string
		req           model.ConversionRequest
		wantTotal     int
		wantFormatted string
		wantRatio     float64
		wantLevel     string
		wantReason    string
	}{
		{
			name:          "1000W to 700W",
			req:           model.ConversionRequest{OriginalWattage: 1000, TargetWattage: 700, OriginalMinutes: 2, OriginalSeconds: 0},
			wantTotal:     171,
			wantFormatted: "2m 51s",
			wantRatio:     1.43,
			wantLevel:     PowerLevelFull,
			wantReason:    ReasonSimilar,
		},
		{
			name:          "1000W to 600W",
			req:           model.ConversionRequest{OriginalWattage: 1000, TargetWattage: 600, OriginalMinutes: 1, OriginalSeconds: 0},
			wantTotal:     100,
			wantFormatted: "1m 40s",
			wantRatio:     1.67,
			wantLevel:     PowerLevelReduced,
			wantReason:    ReasonMuchMorePowerful,
		},
		{
			name:          "800W to 1200W",
			req:           model.ConversionRequest{OriginalWattage: 800, TargetWattage: 1200, OriginalMinutes: 3, OriginalSeconds: 30},
			wantTotal:     140,
			wantFormatted: "2m 20s",
			wantRatio:     0.67,
			wantLevel:     PowerLevelFull,
			wantReason:    ReasonLessPowerful,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := e.Convert(tc.req)
			if err != nil {
				t.Fatalf("Convert: %v", err)
			}
			if res.ConvertedTime.TotalSeconds != tc.wantTotal {
				t.Errorf("total seconds = %d, want %d", res.ConvertedTime.TotalSeconds, tc.wantTotal)
			}
			if res.ConvertedTime.Formatted != tc.wantFormatted {
				t.Errorf("formatted = %q, want %q", res.ConvertedTime.Formatted, tc.wantFormatted)
			}
			if res.Wattages.Ratio != tc.wantRatio {
				t.Errorf("ratio = %v, want %v", res.Wattages.Ratio, tc.wantRatio)
			}
			if res.Recommendation.PowerLevel != tc.wantLevel {
				t.Errorf("power level = %q, want %q", res.Recommendation.PowerLevel, tc.wantLevel)
			}
			if res.Recommendation.Reason != tc.wantReason {
				t.Errorf("reason = %q, want %q", res.Recommendation.Reason, tc.wantReason)
			}
			if res.Wattages.Original != tc.req.OriginalWattage || res.Wattages.Target != tc.req.TargetWattage {
				t.Errorf("wattages echoed wrong: %+v", res.Wattages)
			}
		})
	}
}

func TestConvert_RoundsHalfUp(t *testing.T) {
	// 90s at 1000W scaled to 800W is exactly 112.5s.
	e := New()
	res, err := e.Convert(model.ConversionRequest{
		OriginalWattage: 1000, TargetWattage: 800,
		OriginalMinutes: 1, OriginalSeconds: 30,
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if res.ConvertedTime.TotalSeconds != 113 {
		t.Fatalf("total seconds = %d, want 113", res.ConvertedTime.TotalSeconds)
	}
}

func TestConvert_Explanation(t *testing.T) {
	e := New()
	res, err := e.Convert(model.ConversionRequest{
		OriginalWattage: 1000, TargetWattage: 700,
		OriginalMinutes: 2, OriginalSeconds: 0,
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	want := "Cook for 2m 51s instead of 2m 0s when using a 700W microwave instead of 1000W"
	if res.Explanation != want {
		t.Errorf("explanation = %q, want %q", res.Explanation, want)
	}
}

func TestConvert_SameWattageIsIdentity(t *testing.T) {
	e := New()
	res, err := e.Convert(model.ConversionRequest{
		OriginalWattage: 900, TargetWattage: 900,
		OriginalMinutes: 4, OriginalSeconds: 15,
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if res.ConvertedTime != res.OriginalTime {
		t.Errorf("converted %+v != original %+v", res.ConvertedTime, res.OriginalTime)
	}
	if res.ConvertedTime.TotalSeconds != 255 {
		t.Errorf("total seconds = %d, want 255", res.ConvertedTime.TotalSeconds)
	}
	if res.Wattages.Ratio != 1.0 {
		t.Errorf("ratio = %v, want 1.0", res.Wattages.Ratio)
	}
	if res.Recommendation.Reason != ReasonSimilar {
		t.Errorf("reason = %q, want %q", res.Recommendation.Reason, ReasonSimilar)
	}
}

func TestConvert_Deterministic(t *testing.T) {
	e := New()
	req := model.ConversionRequest{
		OriginalWattage: 1100, TargetWattage: 700,
		OriginalMinutes: 7, OriginalSeconds: 45,
	}
	first, err := e.Convert(req)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	second, err := e.Convert(req)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if *first != *second {
		t.Errorf("results differ:\n%+v\n%+v", first, second)
	}
}

func TestConvert_TimeDecreasesWithTargetWattage(t *testing.T) {
	// Fixed recipe, rising target wattage: converted time must keep falling.
	e := New()
	prev := -1
	for w := model.MinWattage; w <= model.MaxWattage; w += 100 {
		res, err := e.Convert(model.ConversionRequest{
			OriginalWattage: 1000, TargetWattage: w,
			OriginalMinutes: 10, OriginalSeconds: 0,
		})
		if err != nil {
			t.Fatalf("target %dW: %v", w, err)
		}
		if prev >= 0 && res.ConvertedTime.TotalSeconds >= prev {
			t.Fatalf("target %dW: total %ds did not decrease from %ds",
				w, res.ConvertedTime.TotalSeconds, prev)
		}
		prev = res.ConvertedTime.TotalSeconds
	}
}

func TestConvert_BoundaryWattages(t *testing.T) {
	e := New()

	res, err := e.Convert(model.ConversionRequest{
		OriginalWattage: 100, TargetWattage: 2000,
		OriginalMinutes: 1, OriginalSeconds: 0,
	})
	if err != nil {
		t.Fatalf("100W to 2000W: %v", err)
	}
	if res.ConvertedTime.TotalSeconds != 3 {
		t.Errorf("100W to 2000W: total = %d, want 3", res.ConvertedTime.TotalSeconds)
	}

	res, err = e.Convert(model.ConversionRequest{
		OriginalWattage: 2000, TargetWattage: 100,
		OriginalMinutes: 1, OriginalSeconds: 0,
	})
	if err != nil {
		t.Fatalf("2000W to 100W: %v", err)
	}
	if res.ConvertedTime.TotalSeconds != 1200 {
		t.Errorf("2000W to 100W: total = %d, want 1200", res.ConvertedTime.TotalSeconds)
	}
	if res.ConvertedTime.Formatted != "20m 0s" {
		t.Errorf("2000W to 100W: formatted = %q, want %q", res.ConvertedTime.Formatted, "20m 0s")
	}
}

func TestConvert_InvalidRequest(t *testing.T) {
	e := New()
	_, err := e.Convert(model.ConversionRequest{
		OriginalWattage: 50, TargetWattage: 700,
		OriginalMinutes: 2, OriginalSeconds: 0,
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *model.ValidationError", err)
	}
	if verr.Kind != model.KindOutOfRange || verr.Field != model.FieldOriginalWattage {
		t.Fatalf("got %q on %q, want OUT_OF_RANGE on original_wattage", verr.Kind, verr.Field)
	}
}

func TestValidate(t *testing.T) {
	e := New()
	ok := model.ConversionRequest{OriginalWattage: 1000, TargetWattage: 700, OriginalMinutes: 2}
	if err := e.Validate(ok); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	bad := model.ConversionRequest{OriginalWattage: 1000, TargetWattage: 700}
	if err := e.Validate(bad); err == nil {
		t.Fatal("zero-duration request accepted")
	}
}

func TestRecommendPowerLevel(t *testing.T) {
	e := New()
	cases := []struct {
		ratio      float64
		wantLevel  string
		wantReason string
	}{
		{1.51, PowerLevelReduced, ReasonMuchMorePowerful},
		{2.0, PowerLevelReduced, ReasonMuchMorePowerful},
		{1.5, PowerLevelFull, ReasonSimilar},
		{1.49, PowerLevelFull, ReasonSimilar},
		{1.0, PowerLevelFull, ReasonSimilar},
		{0.71, PowerLevelFull, ReasonSimilar},
		{0.7, PowerLevelFull, ReasonSimilar},
		{0.69, PowerLevelFull, ReasonLessPowerful},
		{0.5, PowerLevelFull, ReasonLessPowerful},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("ratio %v", tc.ratio), func(t *testing.T) {
			rec := e.RecommendPowerLevel(tc.ratio)
			if rec.PowerLevel != tc.wantLevel {
				t.Errorf("power level = %q, want %q", rec.PowerLevel, tc.wantLevel)
			}
			if rec.Reason != tc.wantReason {
				t.Errorf("reason = %q, want %q", rec.Reason, tc.wantReason)
			}
		})
	}
}

func TestRecommendPowerLevel_ThresholdsFromWattages(t *testing.T) {
	// Ratios that land exactly on a threshold stay in the similar band.
	e := New()

	res, err := e.Convert(model.ConversionRequest{
		OriginalWattage: 1500, TargetWattage: 1000,
		OriginalMinutes: 2, OriginalSeconds: 0,
	})
	if err != nil {
		t.Fatalf("1500W to 1000W: %v", err)
	}
	if res.Recommendation.Reason != ReasonSimilar {
		t.Errorf("ratio 1.5: reason = %q, want %q", res.Recommendation.Reason, ReasonSimilar)
	}

	res, err = e.Convert(model.ConversionRequest{
		OriginalWattage: 700, TargetWattage: 1000,
		OriginalMinutes: 2, OriginalSeconds: 0,
	})
	if err != nil {
		t.Fatalf("700W to 1000W: %v", err)
	}
	if res.Recommendation.Reason != ReasonSimilar {
		t.Errorf("ratio 0.7: reason = %q, want %q", res.Recommendation.Reason, ReasonSimilar)
	}
}
