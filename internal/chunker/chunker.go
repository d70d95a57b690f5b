// Package chunker segments raw remedy reference text into RemedyChunk
// records. The boundary rule is pluggable: structured chunk files and
// free-text materia medica sources use different splitters.
package chunker

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/remedia-ai/remedia/internal/domain"
)

// Splitter segments a source document into ordered remedy chunks.
// Splitting the same bytes twice must yield identical records, ids
// included, so that re-ingestion is repeatable.
type Splitter interface {
	Split(r io.Reader) ([]domain.RemedyChunk, error)
}

// Config controls chunk record shaping shared by all splitters.
type Config struct {
	PreviewMaxChars int
}

// DefaultConfig provides sane defaults for chunking.
func DefaultConfig() Config {
	return Config{PreviewMaxChars: domain.DefaultPreviewChars}
}

// ForSource picks a splitter by source filename. JSON files are treated as
// structured chunk files; anything else as free-text materia medica.
func ForSource(path string, cfg Config) Splitter {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return NewJSONSplitter(cfg)
	}
	return NewHeadingSplitter(cfg)
}

// chunkID derives the stable id for the chunk at the given source ordinal.
func chunkID(ordinal int) string {
	return fmt.Sprintf("chunk_%d", ordinal)
}
