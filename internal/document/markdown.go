package document

import (
	"regexp"
	"strings"
)

const maxHeadingLevel = 9

var reNumbered = regexp.MustCompile(`^\d+\.\s`)

// FromMarkdown converts a transcript text blob into a Document. Each line is
// classified independently, first match wins: heading, bullet item, numbered
// item, quote, blank, plain paragraph. Inline bold/italic markers are lexed
// into styled runs for everything except headings.
func FromMarkdown(text string) *Document {
	doc := &Document{}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case strings.HasPrefix(line, "#"):
			level := 0
			for level < len(line) && line[level] == '#' {
				level++
			}
			if level > maxHeadingLevel {
				level = maxHeadingLevel
			}
			heading := strings.TrimSpace(strings.TrimLeft(line, "#"))
			doc.Blocks = append(doc.Blocks, Block{
				Kind:  KindHeading,
				Level: level,
				Runs:  []Run{{Text: heading}},
			})

		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
			doc.Blocks = append(doc.Blocks, Block{
				Kind: KindBullet,
				Runs: lexInline(strings.TrimSpace(line[2:])),
			})

		case reNumbered.MatchString(line):
			body := strings.TrimSpace(reNumbered.ReplaceAllString(line, ""))
			doc.Blocks = append(doc.Blocks, Block{
				Kind: KindNumbered,
				Runs: lexInline(body),
			})

		case strings.HasPrefix(line, "> "):
			doc.Blocks = append(doc.Blocks, Block{
				Kind: KindQuote,
				Runs: lexInline(strings.TrimSpace(line[2:])),
			})

		case line == "":
			doc.Blocks = append(doc.Blocks, Block{Kind: KindBlank})

		default:
			doc.Blocks = append(doc.Blocks, Block{
				Kind: KindParagraph,
				Runs: lexInline(line),
			})
		}
	}

	return doc
}

// lexInline scans a line left to right and splits it into plain, bold and
// italic runs. Double markers (** or __) are tried before single ones, so
// bold wins where the two would overlap. A marker without a closing partner
// is kept as literal text.
func lexInline(text string) []Run {
	var runs []Run
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			runs = append(runs, Run{Text: plain.String()})
			plain.Reset()
		}
	}

	i := 0
	for i < len(text) {
		c := text[i]
		if c != '*' && c != '_' {
			plain.WriteByte(c)
			i++
			continue
		}

		marker := string(c)
		double := i+1 < len(text) && text[i+1] == c

		if double {
			if end := strings.Index(text[i+2:], marker+marker); end >= 0 {
				flush()
				if inner := text[i+2 : i+2+end]; inner != "" {
					runs = append(runs, Run{Text: inner, Bold: true})
				}
				i += end + 4
				continue
			}
		}

		if end := strings.Index(text[i+1:], marker); end >= 0 {
			flush()
			if inner := text[i+1 : i+1+end]; inner != "" {
				runs = append(runs, Run{Text: inner, Italic: true})
			}
			i += end + 2
			continue
		}

		// unmatched marker, treat as literal
		plain.WriteByte(c)
		i++
	}

	flush()
	return runs
}
