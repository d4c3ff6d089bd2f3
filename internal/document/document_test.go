package document

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	doc := FromMarkdown("# Title\n\n**bold** and *italic*\n- item\n> quote")
	path := filepath.Join(t.TempDir(), "doc.json")

	if err := doc.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !reflect.DeepEqual(loaded, doc) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", loaded, doc)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load() should fail for missing file")
	}
}

func TestAppend(t *testing.T) {
	a := FromMarkdown("# One")
	b := FromMarkdown("# Two\ntext")

	a.Append(b)

	if len(a.Blocks) != 3 {
		t.Fatalf("got %d blocks, want 3", len(a.Blocks))
	}
	if a.Blocks[1].Kind != KindHeading || blockText(a.Blocks[1]) != "Two" {
		t.Errorf("appended blocks out of order: %+v", a.Blocks)
	}
}

func TestPlaceholder(t *testing.T) {
	doc := Placeholder("transcription failed for video.mp4")

	if len(doc.Blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(doc.Blocks))
	}
	if doc.Blocks[0].Kind != KindParagraph {
		t.Errorf("kind = %v, want paragraph", doc.Blocks[0].Kind)
	}
	if blockText(doc.Blocks[0]) != "transcription failed for video.mp4" {
		t.Errorf("text = %q", blockText(doc.Blocks[0]))
	}
}
