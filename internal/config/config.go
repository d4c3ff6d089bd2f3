package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Audio       AudioConfig       `yaml:"audio"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Performance PerformanceConfig `yaml:"performance"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type PathsConfig struct {
	Video       string `yaml:"video"`
	Transcribed string `yaml:"transcribed"`
	Segments    string `yaml:"segments"`
}

type AudioConfig struct {
	Format          string `yaml:"format"`
	Bitrate         string `yaml:"bitrate"`
	SegmentDuration int    `yaml:"segment_duration"`
}

type GeminiConfig struct {
	APIKey         string `yaml:"api_key"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type PerformanceConfig struct {
	VideoWorkers         int `yaml:"video_workers"`
	TranscriptionWorkers int `yaml:"transcription_workers"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a YAML config file, applies environment overrides for the
// Gemini credentials and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// applyEnv lets GEMINI_API_KEY and GEMINI_MODEL override the config file,
// matching the .env convention of earlier versions of this tool.
func (c *Config) applyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		c.Gemini.Model = v
	}
}

func (c *Config) Validate() error {
	if c.Paths.Video == "" {
		return fmt.Errorf("paths.video is required")
	}
	if c.Paths.Transcribed == "" {
		return fmt.Errorf("paths.transcribed is required")
	}

	if c.Audio.Format == "" {
		c.Audio.Format = "mp3"
	}
	if c.Audio.Bitrate == "" {
		c.Audio.Bitrate = "192k"
	}
	if c.Audio.SegmentDuration == 0 {
		c.Audio.SegmentDuration = 600
	}
	if c.Audio.SegmentDuration < 1 {
		return fmt.Errorf("audio.segment_duration must be positive")
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.TimeoutSeconds == 0 {
		c.Gemini.TimeoutSeconds = 300
	}

	if c.Performance.VideoWorkers == 0 {
		c.Performance.VideoWorkers = runtime.NumCPU()
	}
	if c.Performance.TranscriptionWorkers == 0 {
		c.Performance.TranscriptionWorkers = 10
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
