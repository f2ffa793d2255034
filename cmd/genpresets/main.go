package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"microwave-converter/internal/catalog"
	"microwave-converter/internal/model"
)

func main() {
	var (
		outputPath  = flag.String("output", "examples/presets/default.yaml", "Output YAML path")
		wattMin     = flag.Int("wattage-min", 600, "Lowest quick-select wattage")
		wattMax     = flag.Int("wattage-max", 1200, "Highest quick-select wattage")
		wattStep    = flag.Int("wattage-step", 100, "Step between quick-select wattages")
		durationStr = flag.String("durations", "", "Comma-separated durations in seconds (default: built-ins)")
	)
	flag.Parse()

	watts, err := wattageRange(*wattMin, *wattMax, *wattStep)
	if err != nil {
		log.Fatalf("Invalid wattage range: %v", err)
	}

	durations := catalog.Default().Durations
	if *durationStr != "" {
		durations, err = parseDurations(*durationStr)
		if err != nil {
			log.Fatalf("Invalid durations: %v", err)
		}
	}

	p := &catalog.Presets{Wattages: watts, Durations: durations}
	if err := catalog.Save(*outputPath, p); err != nil {
		log.Fatalf("Failed to save presets: %v", err)
	}

	fmt.Printf("Saved %d wattages and %d durations to %s\n",
		len(p.Wattages), len(p.Durations), *outputPath)
}

func wattageRange(min, max, step int) ([]int, error) {
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %d", step)
	}
	if min > max {
		return nil, fmt.Errorf("min %d is above max %d", min, max)
	}
	watts := make([]int, 0, (max-min)/step+1)
	for w := min; w <= max; w += step {
		watts = append(watts, w)
	}
	return watts, nil
}

func parseDurations(s string) ([]model.Duration, error) {
	parts := strings.Split(s, ",")
	out := make([]model.Duration, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		secs, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q", p)
		}
		out = append(out, model.DurationFromSeconds(secs))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no durations in %q", s)
	}
	return out, nil
}
