package chunker

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/remedia-ai/remedia/internal/domain"
)

// jsonChunkRecord mirrors one entry of the structured chunks file.
type jsonChunkRecord struct {
	RemedyName       string `json:"remedy_name"`
	AlternativeNames string `json:"alternative_names"`
	Text             string `json:"text"`
}

// JSONSplitter reads a structured chunks file: a JSON array with one record
// per remedy. Records missing a name or text are skipped and logged.
type JSONSplitter struct {
	cfg Config
}

func NewJSONSplitter(cfg Config) *JSONSplitter {
	if cfg.PreviewMaxChars <= 0 {
		cfg = DefaultConfig()
	}
	return &JSONSplitter{cfg: cfg}
}

func (s *JSONSplitter) Split(r io.Reader) ([]domain.RemedyChunk, error) {
	var records []jsonChunkRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode chunks file: %w", err)
	}

	chunks := make([]domain.RemedyChunk, 0, len(records))
	for i, rec := range records {
		name := strings.TrimSpace(rec.RemedyName)
		text := strings.TrimSpace(rec.Text)
		if name == "" || text == "" {
			log.Printf("chunker: skipping malformed record %d (missing name or text)", i)
			continue
		}

		chunks = append(chunks, domain.RemedyChunk{
			ID:               chunkID(i),
			RemedyName:       name,
			AlternativeNames: strings.TrimSpace(rec.AlternativeNames),
			FullText:         text,
			Preview:          domain.MakePreview(text, s.cfg.PreviewMaxChars),
		})
	}

	return chunks, nil
}
