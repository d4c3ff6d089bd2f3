package document

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// WriteDocx renders the document to a .docx file, creating the destination
// directory if needed.
func WriteDocx(d *Document, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("new docx: %w", err)
	}

	for _, block := range d.Blocks {
		switch block.Kind {
		case KindHeading:
			if _, err := doc.AddHeading(blockText(block), uint(block.Level)); err != nil {
				return fmt.Errorf("add heading: %w", err)
			}

		case KindBullet:
			p := doc.AddParagraph("")
			p.Style("List Bullet")
			addRuns(p, block.Runs)

		case KindNumbered:
			p := doc.AddParagraph("")
			p.Style("List Number")
			addRuns(p, block.Runs)

		case KindQuote:
			p := doc.AddParagraph("")
			p.Style("Quote")
			addRuns(p, block.Runs)

		case KindBlank:
			doc.AddParagraph("")

		default:
			p := doc.AddParagraph("")
			p.Justification("both")
			addRuns(p, block.Runs)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save docx: %w", err)
	}

	return nil
}

func addRuns(p *docx.Paragraph, runs []Run) {
	for _, r := range runs {
		run := p.AddText(r.Text).Font(fontName).Size(fontSize).Color("000000")
		if r.Bold {
			run.Bold(true)
		}
		if r.Italic {
			run.Italic(true)
		}
	}
}

func blockText(b Block) string {
	var s string
	for _, r := range b.Runs {
		s += r.Text
	}
	return s
}
