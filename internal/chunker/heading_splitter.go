package chunker

import (
	"bufio"
	"io"
	"log"
	"strings"
	"unicode"

	"github.com/remedia-ai/remedia/internal/domain"
)

// HeadingSplitter segments free-text materia medica sources. A remedy entry
// begins at a heading line written entirely in capitals (e.g. "BELLADONNA");
// a parenthesized line immediately after the heading carries alternative
// names. Everything up to the next heading is the entry body. Entries with
// an empty body are skipped and logged.
type HeadingSplitter struct {
	cfg Config
}

func NewHeadingSplitter(cfg Config) *HeadingSplitter {
	if cfg.PreviewMaxChars <= 0 {
		cfg = DefaultConfig()
	}
	return &HeadingSplitter{cfg: cfg}
}

func (s *HeadingSplitter) Split(r io.Reader) ([]domain.RemedyChunk, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var chunks []domain.RemedyChunk
	var name, altNames string
	var body []string
	ordinal := 0

	flush := func() {
		if name == "" {
			return
		}
		text := strings.TrimSpace(strings.Join(body, "\n"))
		if text == "" {
			log.Printf("chunker: skipping entry %q (empty body)", name)
		} else {
			chunks = append(chunks, domain.RemedyChunk{
				ID:               chunkID(ordinal),
				RemedyName:       name,
				AlternativeNames: altNames,
				FullText:         text,
				Preview:          domain.MakePreview(text, s.cfg.PreviewMaxChars),
			})
		}
		ordinal++
		name, altNames = "", ""
		body = body[:0]
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")
		trimmed := strings.TrimSpace(line)

		if isHeading(trimmed) {
			flush()
			name = canonicalName(trimmed)
			continue
		}

		if name != "" && altNames == "" && len(body) == 0 && isAltNamesLine(trimmed) {
			altNames = strings.TrimSpace(strings.Trim(trimmed, "()"))
			continue
		}

		if name != "" {
			// Blank lines before the first content line are not body
			if len(body) == 0 && trimmed == "" {
				continue
			}
			body = append(body, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()

	return chunks, nil
}

// isHeading reports whether a line is a remedy heading: non-empty, every
// letter uppercase, and at least two letters total (rules out page numbers
// and stray punctuation).
func isHeading(line string) bool {
	if line == "" {
		return false
	}
	letters := 0
	for _, r := range line {
		if unicode.IsLetter(r) {
			if !unicode.IsUpper(r) {
				return false
			}
			letters++
			continue
		}
		if !unicode.IsSpace(r) && !strings.ContainsRune(".-'", r) {
			return false
		}
	}
	return letters >= 2
}

func isAltNamesLine(line string) bool {
	return strings.HasPrefix(line, "(") && strings.HasSuffix(line, ")")
}

// canonicalName converts an ALL-CAPS heading to title case.
func canonicalName(heading string) string {
	words := strings.Fields(strings.ToLower(heading))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
