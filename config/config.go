// Package config handles sustain.toml daemon configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Engine  Engine  `toml:"engine"`
	Host    Host    `toml:"host"`
	Journal Journal `toml:"journal"`
	Outbox  Outbox  `toml:"outbox"`
	Kafka   Kafka   `toml:"kafka"`
	History History `toml:"history"`
	API     API     `toml:"api"`
}

type Engine struct {
	BlockFrames      int           `toml:"block_frames"`
	ChannelCapacity  int           `toml:"channel_capacity"`
	RegistryCapacity int           `toml:"registry_capacity"`
	ReclaimInterval  time.Duration `toml:"reclaim_interval"`
	ShutdownPolicy   string        `toml:"shutdown_policy"` // "release" or "leak"
	CaptureDir       string        `toml:"capture_dir"`
	CaptureInterval  time.Duration `toml:"capture_interval"`
}

type Host struct {
	SampleRate   int `toml:"sample_rate"`
	BufferFrames int `toml:"buffer_frames"`
}

type Journal struct {
	Dir         string `toml:"dir"`
	SegmentSize int64  `toml:"segment_size"`
}

type Outbox struct {
	Dir string `toml:"dir"`
}

type Kafka struct {
	Brokers           []string      `toml:"brokers"`
	Topic             string        `toml:"topic"`
	TelemetryTopic    string        `toml:"telemetry_topic"`
	TelemetryInterval time.Duration `toml:"telemetry_interval"`
	BatchTimeout      time.Duration `toml:"batch_timeout"`
}

type History struct {
	Path string `toml:"path"`
}

type API struct {
	Listen string `toml:"listen"`
}

// Default returns the configuration a bare daemon runs with.
func Default() Config {
	return Config{
		Engine: Engine{
			BlockFrames:      64,
			ChannelCapacity:  16,
			RegistryCapacity: 4096,
			ReclaimInterval:  50 * time.Millisecond,
			ShutdownPolicy:   "release",
			CaptureDir:       "./captures",
			CaptureInterval:  time.Minute,
		},
		Host: Host{
			SampleRate:   44100,
			BufferFrames: 64,
		},
		Journal: Journal{
			Dir:         "./journal",
			SegmentSize: 2 * 1024 * 1024,
		},
		Outbox: Outbox{
			Dir: "./outbox",
		},
		Kafka: Kafka{
			Topic:             "sustain.publishes",
			TelemetryTopic:    "sustain.telemetry",
			TelemetryInterval: 5 * time.Second,
			BatchTimeout:      10 * time.Millisecond,
		},
		History: History{
			Path: "./history.db",
		},
		API: API{
			Listen: ":50051",
		},
	}
}

// Load reads path over the defaults. A missing file is not an error;
// the defaults stand.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, cfg.Validate()
		}
		return cfg, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse error in %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate names the first offending field.
func (c Config) Validate() error {
	if c.Engine.BlockFrames < 2 {
		return fmt.Errorf("config: engine.block_frames must be >= 2, got %d", c.Engine.BlockFrames)
	}
	if c.Engine.ChannelCapacity < 0 {
		return fmt.Errorf("config: engine.channel_capacity must be >= 0, got %d", c.Engine.ChannelCapacity)
	}
	if c.Engine.RegistryCapacity < 1 {
		return fmt.Errorf("config: engine.registry_capacity must be >= 1, got %d", c.Engine.RegistryCapacity)
	}
	if p := c.Engine.ShutdownPolicy; p != "release" && p != "leak" {
		return fmt.Errorf("config: engine.shutdown_policy must be \"release\" or \"leak\", got %q", p)
	}
	if c.Engine.CaptureDir != "" && c.Engine.CaptureInterval <= 0 {
		return fmt.Errorf("config: engine.capture_interval must be > 0, got %s", c.Engine.CaptureInterval)
	}
	if c.Host.SampleRate <= 0 {
		return fmt.Errorf("config: host.sample_rate must be > 0, got %d", c.Host.SampleRate)
	}
	if c.Host.BufferFrames <= 0 {
		return fmt.Errorf("config: host.buffer_frames must be > 0, got %d", c.Host.BufferFrames)
	}
	if c.Journal.Dir == "" {
		return fmt.Errorf("config: journal.dir must be set")
	}
	if c.API.Listen == "" {
		return fmt.Errorf("config: api.listen must be set")
	}
	return nil
}

// KafkaEnabled reports whether broker addresses were configured; with
// none, the broadcaster and telemetry jobs stay off.
func (c Config) KafkaEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}
