package document

import (
	"encoding/json"
	"fmt"
	"os"
)

// Kind identifies the block element types supported by the transcript format.
type Kind string

const (
	KindHeading   Kind = "heading"
	KindParagraph Kind = "paragraph"
	KindBullet    Kind = "bullet"
	KindNumbered  Kind = "numbered"
	KindQuote     Kind = "quote"
	KindBlank     Kind = "blank"
)

// Run is a span of text with inline styling.
type Run struct {
	Text   string `json:"text"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
}

// Block is one block element of a document. Level is only meaningful for
// headings (1-9).
type Block struct {
	Kind  Kind  `json:"kind"`
	Level int   `json:"level,omitempty"`
	Runs  []Run `json:"runs,omitempty"`
}

// Document is an ordered sequence of block elements. It is the intermediate
// representation between raw transcript text and the final .docx output.
type Document struct {
	Blocks []Block `json:"blocks"`
}

// Append folds all blocks of other onto the end of d, preserving order.
func (d *Document) Append(other *Document) {
	d.Blocks = append(d.Blocks, other.Blocks...)
}

// Save writes the document as a JSON snapshot. Intermediate per-segment
// documents use this format inside the job workspace.
func (d *Document) Save(path string) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// Load reads a JSON snapshot written by Save.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &d, nil
}

// Placeholder builds a single-paragraph document used when no transcription
// is available for a video.
func Placeholder(text string) *Document {
	return &Document{
		Blocks: []Block{
			{Kind: KindParagraph, Runs: []Run{{Text: text}}},
		},
	}
}
