package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"microwave-converter/internal/model"

	"gopkg.in/yaml.v3"
)

// Longest duration a preset may offer, matching the request limits.
const maxPresetSeconds = model.MaxMinutes*60 + model.MaxSeconds

// Presets are the quick-select values offered by the form and the
// catalog endpoints.
type Presets struct {
	Wattages  []int
	Durations []model.Duration
}

// Default returns the built-in presets: common household microwave
// wattages and the cooking times recipes usually call for.
func Default() *Presets {
	watts := make([]int, 0, 7)
	for w := 600; w <= 1200; w += 100 {
		watts = append(watts, w)
	}
	secs := []int{30, 60, 90, 120, 180, 300, 600}
	durations := make([]model.Duration, 0, len(secs))
	for _, s := range secs {
		durations = append(durations, model.DurationFromSeconds(s))
	}
	return &Presets{Wattages: watts, Durations: durations}
}

type fileWrapper struct {
	Presets presetsFile `yaml:"presets"`
}

type presetsFile struct {
	Wattages        []int `yaml:"wattages"`
	DurationSeconds []int `yaml:"duration_seconds"`
}

// Load reads presets from a YAML file (e.g. examples/presets/*.yaml).
func Load(path string) (*Presets, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}
	var w fileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("failed to parse presets file: %w", err)
	}
	p := &Presets{Wattages: w.Presets.Wattages}
	for _, s := range w.Presets.DurationSeconds {
		p.Durations = append(p.Durations, model.DurationFromSeconds(s))
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Presets) Validate() error {
	if p == nil {
		return errors.New("presets is nil")
	}
	if len(p.Wattages) == 0 {
		return errors.New("presets: no wattages")
	}
	if len(p.Durations) == 0 {
		return errors.New("presets: no durations")
	}
	for _, w := range p.Wattages {
		if w < model.MinWattage || w > model.MaxWattage {
			return fmt.Errorf("presets: wattage %d outside %d-%d", w, model.MinWattage, model.MaxWattage)
		}
	}
	for _, d := range p.Durations {
		if d.TotalSeconds < 1 || d.TotalSeconds > maxPresetSeconds {
			return fmt.Errorf("presets: duration %ds outside 1-%d", d.TotalSeconds, maxPresetSeconds)
		}
	}
	return nil
}

// Save writes presets as YAML, creating parent directories as needed.
func Save(path string, p *Presets) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	w := fileWrapper{Presets: presetsFile{Wattages: p.Wattages}}
	for _, d := range p.Durations {
		w.Presets.DurationSeconds = append(w.Presets.DurationSeconds, d.TotalSeconds)
	}
	raw, err := yaml.Marshal(&w)
	if err != nil {
		return fmt.Errorf("failed to marshal presets: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write presets file: %w", err)
	}
	return nil
}
