package domain

import (
	"strings"
	"time"
)

// DefaultPreviewChars bounds the display preview stored with each chunk.
const DefaultPreviewChars = 300

// RemedyChunk is a single remedy entry extracted from the source corpus.
// It is the unit of ingestion and retrieval and is immutable once produced.
type RemedyChunk struct {
	ID               string
	RemedyName       string
	AlternativeNames string
	FullText         string
	Preview          string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate checks that the chunk is complete enough to ingest.
func (c *RemedyChunk) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return ErrMissingChunkID
	}
	if strings.TrimSpace(c.FullText) == "" {
		return ErrEmptyChunkText
	}
	return nil
}

// MakePreview truncates text to at most maxChars characters, appending an
// ellipsis when the text was cut. Whitespace runs are collapsed so previews
// render as a single line.
func MakePreview(text string, maxChars int) string {
	if maxChars <= 0 {
		maxChars = DefaultPreviewChars
	}
	clean := strings.Join(strings.Fields(text), " ")
	runes := []rune(clean)
	if len(runes) <= maxChars {
		return clean
	}
	return string(runes[:maxChars]) + "..."
}

// SearchResult is one retrieval hit, shaped per query and never persisted.
type SearchResult struct {
	ID               string
	RemedyName       string
	AlternativeNames string
	TextPreview      string
	FullText         string
	Similarity       float32
}

// IngestFailure records why a single chunk could not be ingested.
type IngestFailure struct {
	ID         string
	RemedyName string
	Reason     string
}

// IngestReport summarizes an ingestion run. Individual chunk failures do
// not abort the batch; they are collected here instead.
type IngestReport struct {
	Succeeded int
	Failed    []IngestFailure
}

// Ok reports whether every chunk in the run was ingested.
func (r *IngestReport) Ok() bool {
	return len(r.Failed) == 0
}
