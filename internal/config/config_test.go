package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultRacerConfig() {
		t.Errorf("embedded defaults differ from hardcoded:\n got %+v\nwant %+v", cfg, DefaultRacerConfig())
	}
}

func TestLoadCustomPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "racer.yaml")
	data := []byte("descent:\n  speed: 1.25\ngenerator:\n  max_addend: 20\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Descent.Speed != 1.25 || cfg.Generator.MaxAddend != 20 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Timing.AnswerDelayMs != 4000 || cfg.Descent.Threshold != 80 {
		t.Errorf("unspecified keys lost their defaults: %+v", cfg)
	}
}

func TestLoadUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".racer", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("timing:\n  answer_delay_ms: 1500\n")
	if err := os.WriteFile(filepath.Join(dir, FileName), data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Timing.AnswerDelayMs != 1500 {
		t.Errorf("answer delay = %d, want 1500", cfg.Timing.AnswerDelayMs)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config did not fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("descent: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed custom config did not fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("descent:\n  speed: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); !errors.Is(err, ErrDescentSpeed) {
		t.Errorf("Load(invalid) = %v, want ErrDescentSpeed", err)
	}

	for _, body := range []string{"descent:\n  speed: .nan\n", "descent:\n  threshold: .inf\n"} {
		path := filepath.Join(dir, "nonfinite.yaml")
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); !errors.Is(err, ErrNotFinite) {
			t.Errorf("Load(%q) = %v, want ErrNotFinite", body, err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*RacerConfig)
		want   error
	}{
		{"default", func(*RacerConfig) {}, nil},
		{"zero speed", func(c *RacerConfig) { c.Descent.Speed = 0 }, ErrDescentSpeed},
		{"threshold below start", func(c *RacerConfig) { c.Descent.Threshold = -30 }, ErrDescentRange},
		{"negative hold", func(c *RacerConfig) { c.Timing.CorrectHoldMs = -1 }, ErrNegativeDelay},
		{"zero addend", func(c *RacerConfig) { c.Generator.MinAddend = 0 }, ErrAddendRange},
		{"inverted addends", func(c *RacerConfig) { c.Generator.MinAddend = 8; c.Generator.MaxAddend = 2 }, ErrAddendRange},
		{"loud", func(c *RacerConfig) { c.Audio.MasterVolume = 1.5 }, ErrVolume},
		{"nan speed", func(c *RacerConfig) { c.Descent.Speed = math.NaN() }, ErrNotFinite},
		{"infinite speed", func(c *RacerConfig) { c.Descent.Speed = math.Inf(1) }, ErrNotFinite},
		{"infinite threshold", func(c *RacerConfig) { c.Descent.Threshold = math.Inf(1) }, ErrNotFinite},
		{"nan start", func(c *RacerConfig) { c.Descent.Start = math.NaN() }, ErrNotFinite},
		{"negative infinite start", func(c *RacerConfig) { c.Descent.Start = math.Inf(-1) }, ErrNotFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRacerConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParamsConversion(t *testing.T) {
	p := DefaultRacerConfig().Params(60)

	if p.AnswerDelayTicks != 240 || p.CorrectHoldTicks != 18 || p.IncorrectHoldTicks != 30 {
		t.Errorf("tick conversion: %+v", p)
	}
	if p.DescentSpeed != 0.5 || p.DescentStart != -20 || p.ArrivalThreshold != 80 {
		t.Errorf("descent: %+v", p)
	}
	if p.MinAddend != 1 || p.MaxAddend != 10 {
		t.Errorf("addends: %+v", p)
	}
}

func TestDefaultYAMLIsCopy(t *testing.T) {
	a := DefaultYAML()
	if len(a) == 0 {
		t.Fatal("embedded YAML is empty")
	}
	a[0] = 'X'
	if DefaultYAML()[0] == 'X' {
		t.Error("DefaultYAML exposes the embedded buffer")
	}
}
