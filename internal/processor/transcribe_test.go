package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"
	"time"
)

var reSegmentIndex = regexp.MustCompile(`_(\d+)\.`)

// fakeTranscriber turns segment bytes into a predictable transcript. It can
// delay low-index segments so completion order inverts submission order, and
// fail selected segment indexes.
type fakeTranscriber struct {
	failAll     bool
	failIndexes map[int]bool
	invertOrder bool
	total       int
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if f.failAll {
		return "", errors.New("model unavailable")
	}

	idx := 0
	if m := reSegmentIndex.FindStringSubmatch(string(audio)); m != nil {
		idx, _ = strconv.Atoi(m[1])
	}

	if f.failIndexes[idx] {
		return "", errors.New("transport error")
	}

	if f.invertOrder {
		// Segment 1 finishes last, the final segment finishes first.
		time.Sleep(time.Duration(f.total-idx+1) * 10 * time.Millisecond)
	}

	return fmt.Sprintf("transcript of segment %d", idx), nil
}

func makeSegments(t *testing.T, n int) []segment {
	t.Helper()
	dir := t.TempDir()

	var segments []segment
	for i := 1; i <= n; i++ {
		name := fmt.Sprintf("lecture_audio_%03d.mp3", i)
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(name), 0644); err != nil {
			t.Fatal(err)
		}
		segments = append(segments, segment{index: i, path: path})
	}
	return segments
}

func TestTranscribeSegmentsOrderIndependentOfCompletion(t *testing.T) {
	cfg := testConfig(t, 600)
	tr := &fakeTranscriber{invertOrder: true, total: 4}
	p := newTestProcessor(cfg, &fakeFFmpeg{}, tr)

	segments := makeSegments(t, 4)
	fragments := p.transcribeSegments(context.Background(), segments)

	if len(fragments) != 4 {
		t.Fatalf("got %d fragments, want 4", len(fragments))
	}
	for i, frag := range fragments {
		want := fmt.Sprintf("transcript of segment %d", i+1)
		if frag != want {
			t.Errorf("fragment %d = %q, want %q", i, frag, want)
		}
	}
}

func TestTranscribeSegmentsDropsFailures(t *testing.T) {
	cfg := testConfig(t, 600)
	tr := &fakeTranscriber{failIndexes: map[int]bool{2: true}}
	p := newTestProcessor(cfg, &fakeFFmpeg{}, tr)

	segments := makeSegments(t, 3)
	fragments := p.transcribeSegments(context.Background(), segments)

	if fragments[0] == "" || fragments[2] == "" {
		t.Errorf("healthy segments should survive: %q", fragments)
	}
	if fragments[1] != "" {
		t.Errorf("failed segment should be dropped, got %q", fragments[1])
	}
}

func TestTranscribeSegmentsMissingFile(t *testing.T) {
	cfg := testConfig(t, 600)
	p := newTestProcessor(cfg, &fakeFFmpeg{}, &fakeTranscriber{})

	segments := []segment{{index: 1, path: filepath.Join(t.TempDir(), "gone.mp3")}}
	fragments := p.transcribeSegments(context.Background(), segments)

	if fragments[0] != "" {
		t.Errorf("unreadable segment should be dropped, got %q", fragments[0])
	}
}

func TestMimeTypeFor(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"lecture_audio_001.mp3", "audio/mp3"},
		{"segment.WAV", "audio/wav"},
		{"/tmp/x/clip.ogg", "audio/ogg"},
	}

	for _, tt := range tests {
		if got := mimeTypeFor(tt.path); got != tt.want {
			t.Errorf("mimeTypeFor(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
