package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Paths: PathsConfig{
					Video:       "video",
					Transcribed: "transcribed_text",
				},
			},
			wantErr: false,
		},
		{
			name: "missing video dir",
			config: Config{
				Paths: PathsConfig{
					Transcribed: "transcribed_text",
				},
			},
			wantErr: true,
		},
		{
			name: "missing transcribed dir",
			config: Config{
				Paths: PathsConfig{
					Video: "video",
				},
			},
			wantErr: true,
		},
		{
			name: "negative segment duration",
			config: Config{
				Paths: PathsConfig{
					Video:       "video",
					Transcribed: "transcribed_text",
				},
				Audio: AudioConfig{SegmentDuration: -5},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Paths: PathsConfig{
			Video:       "video",
			Transcribed: "transcribed_text",
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Audio.Format != "mp3" {
		t.Errorf("Format = %v, want mp3", cfg.Audio.Format)
	}
	if cfg.Audio.Bitrate != "192k" {
		t.Errorf("Bitrate = %v, want 192k", cfg.Audio.Bitrate)
	}
	if cfg.Audio.SegmentDuration != 600 {
		t.Errorf("SegmentDuration = %v, want 600", cfg.Audio.SegmentDuration)
	}
	if cfg.Performance.TranscriptionWorkers != 10 {
		t.Errorf("TranscriptionWorkers = %v, want 10", cfg.Performance.TranscriptionWorkers)
	}
	if cfg.Performance.VideoWorkers < 1 {
		t.Errorf("VideoWorkers = %v, want >= 1", cfg.Performance.VideoWorkers)
	}
	if cfg.Gemini.TimeoutSeconds != 300 {
		t.Errorf("TimeoutSeconds = %v, want 300", cfg.Gemini.TimeoutSeconds)
	}
}

func TestLoad(t *testing.T) {
	content := `
paths:
  video: "data/video"
  transcribed: "data/transcribed_text"

audio:
  format: "aac"
  bitrate: "128k"
  segment_duration: 300

performance:
  video_workers: 2
  transcription_workers: 4

logging:
  level: "debug"
`

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.Video != "data/video" {
		t.Errorf("Video = %v, want data/video", cfg.Paths.Video)
	}
	if cfg.Audio.Format != "aac" {
		t.Errorf("Format = %v, want aac", cfg.Audio.Format)
	}
	if cfg.Audio.SegmentDuration != 300 {
		t.Errorf("SegmentDuration = %v, want 300", cfg.Audio.SegmentDuration)
	}
	if cfg.Performance.TranscriptionWorkers != 4 {
		t.Errorf("TranscriptionWorkers = %v, want 4", cfg.Performance.TranscriptionWorkers)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	content := `
paths:
  video: "data/video"
  transcribed: "data/transcribed_text"

gemini:
  api_key: "file-key"
  model: "file-model"
`

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("GEMINI_MODEL", "env-model")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Gemini.APIKey != "env-key" {
		t.Errorf("APIKey = %v, want env-key", cfg.Gemini.APIKey)
	}
	if cfg.Gemini.Model != "env-model" {
		t.Errorf("Model = %v, want env-model", cfg.Gemini.Model)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
