package logger

import (
	"context"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want level
	}{
		{"debug", levelDebug},
		{"info", levelInfo},
		{"warn", levelWarn},
		{"warning", levelWarn},
		{"error", levelError},
		{"ERROR", levelError},
		{"bogus", levelInfo},
		{"", levelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLevel(tt.in); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	log := New("info")

	// These should not panic
	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")

	// Test with formatting
	log.Info(ctx, "formatted message: %s %d", "test", 123)
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  string
		logLevel  level
		shouldLog bool
	}{
		{"debug logs at debug level", "debug", levelDebug, true},
		{"info logs at debug level", "debug", levelInfo, true},
		{"debug filtered at info level", "info", levelDebug, false},
		{"info logs at info level", "info", levelInfo, true},
		{"error always logs", "debug", levelError, true},
		{"warn filtered at error level", "error", levelWarn, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.minLevel).(*implLogger)
			if got := tt.logLevel >= l.min; got != tt.shouldLog {
				t.Errorf("level %v with min %q: got %v, want %v", tt.logLevel, tt.minLevel, got, tt.shouldLog)
			}
		})
	}
}
