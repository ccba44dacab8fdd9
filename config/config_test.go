package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "sustain.toml"))
	if err != nil {
		t.Fatalf("load with no file: %v", err)
	}
	if cfg.Engine.BlockFrames != 64 || cfg.Host.SampleRate != 44100 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.KafkaEnabled() {
		t.Fatal("kafka must be off by default")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sustain.toml")
	body := `
[engine]
block_frames = 128
reclaim_interval = "25ms"

[host]
sample_rate = 192000

[kafka]
brokers = ["localhost:9092"]
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Engine.BlockFrames != 128 {
		t.Fatalf("override lost: %d", cfg.Engine.BlockFrames)
	}
	if cfg.Engine.ReclaimInterval != 25*time.Millisecond {
		t.Fatalf("duration not parsed: %v", cfg.Engine.ReclaimInterval)
	}
	if cfg.Host.SampleRate != 192000 {
		t.Fatalf("sample rate lost: %d", cfg.Host.SampleRate)
	}
	// Untouched sections keep their defaults.
	if cfg.API.Listen != ":50051" {
		t.Fatalf("default listen lost: %q", cfg.API.Listen)
	}
	if !cfg.KafkaEnabled() {
		t.Fatal("kafka should be enabled with brokers set")
	}
}

func TestValidationNamesTheField(t *testing.T) {
	cases := []struct {
		mutate func(*Config)
		want   string
	}{
		{func(c *Config) { c.Engine.BlockFrames = 1 }, "block_frames"},
		{func(c *Config) { c.Engine.ShutdownPolicy = "explode" }, "shutdown_policy"},
		{func(c *Config) { c.Engine.CaptureInterval = 0 }, "capture_interval"},
		{func(c *Config) { c.Host.SampleRate = 0 }, "sample_rate"},
		{func(c *Config) { c.Journal.Dir = "" }, "journal.dir"},
	}
	for _, tc := range cases {
		cfg := Default()
		tc.mutate(&cfg)
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Errorf("expected error naming %s, got %v", tc.want, err)
		}
	}
}
