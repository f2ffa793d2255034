package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	p := Default()
	if err := p.Validate(); err != nil {
		t.Fatalf("default presets invalid: %v", err)
	}

	wantWatts := []int{600, 700, 800, 900, 1000, 1100, 1200}
	if len(p.Wattages) != len(wantWatts) {
		t.Fatalf("wattage count = %d, want %d", len(p.Wattages), len(wantWatts))
	}
	for i, w := range wantWatts {
		if p.Wattages[i] != w {
			t.Errorf("wattage[%d] = %d, want %d", i, p.Wattages[i], w)
		}
	}

	wantSecs := []int{30, 60, 90, 120, 180, 300, 600}
	if len(p.Durations) != len(wantSecs) {
		t.Fatalf("duration count = %d, want %d", len(p.Durations), len(wantSecs))
	}
	for i, s := range wantSecs {
		if p.Durations[i].TotalSeconds != s {
			t.Errorf("duration[%d] = %ds, want %ds", i, p.Durations[i].TotalSeconds, s)
		}
	}
	if p.Durations[2].Formatted != "1m 30s" {
		t.Errorf("90s formatted = %q, want %q", p.Durations[2].Formatted, "1m 30s")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "presets.yaml")
	if err := Save(path, Default()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(p.Wattages) != 7 || len(p.Durations) != 7 {
		t.Fatalf("round trip lost entries: %d wattages, %d durations", len(p.Wattages), len(p.Durations))
	}
	if p.Wattages[0] != 600 || p.Durations[6].TotalSeconds != 600 {
		t.Errorf("round trip changed values: %+v", p)
	}
}

func TestLoad_RejectsOutOfRange(t *testing.T) {
	dir := t.TempDir()

	badWattage := filepath.Join(dir, "watt.yaml")
	body := "presets:\n  wattages: [50]\n  duration_seconds: [60]\n"
	if err := os.WriteFile(badWattage, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(badWattage); err == nil {
		t.Error("expected error for wattage below 100")
	}

	badDuration := filepath.Join(dir, "dur.yaml")
	body = "presets:\n  wattages: [800]\n  duration_seconds: [0]\n"
	if err := os.WriteFile(badDuration, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(badDuration); err == nil {
		t.Error("expected error for zero duration")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
