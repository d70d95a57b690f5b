package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/remedia-ai/remedia/internal/domain"
	"github.com/remedia-ai/remedia/internal/telemetry"
)

// DefaultSummaryTimeout bounds the summarizer call so a slow model cannot
// stall the whole request before falling back.
const DefaultSummaryTimeout = 8 * time.Second

// Summarizer produces a short answer from retrieved text. It may be nil or
// unreachable; callers must degrade to plain search results.
type Summarizer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// AnswerOutput is the two-stage pipeline result. SummaryPresent makes the
// fallback visible in the type: retrieval succeeded either way, and the
// summary is attached only when the summarizer answered in time.
type AnswerOutput struct {
	Results        []*domain.SearchResult
	ElapsedMS      float64
	Summary        string
	SummaryPresent bool
}

// AnswerService composes retrieval with best-effort summarization.
type AnswerService struct {
	search     *SearchService
	summarizer Summarizer
	timeout    time.Duration
}

func NewAnswerService(search *SearchService, summarizer Summarizer, timeout time.Duration) *AnswerService {
	if timeout <= 0 {
		timeout = DefaultSummaryTimeout
	}
	return &AnswerService{
		search:     search,
		summarizer: summarizer,
		timeout:    timeout,
	}
}

// Answer retrieves matching remedies and then attempts a summary. A failed
// or missing summarizer never fails the request once retrieval succeeded.
func (s *AnswerService) Answer(ctx context.Context, input SearchInput) (*AnswerOutput, error) {
	ctx, span := telemetry.StartSpan(ctx, "AnswerService.Answer", telemetry.SpanAttributes{
		Query:     input.Query,
		Operation: "answer",
	})
	defer span.End()

	searchOut, err := s.search.Search(ctx, input)
	if err != nil {
		return nil, err
	}

	out := &AnswerOutput{
		Results:   searchOut.Results,
		ElapsedMS: searchOut.ElapsedMS,
	}

	if s.summarizer == nil || len(out.Results) == 0 {
		return out, nil
	}

	summaryCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	summary, err := s.summarizer.Complete(summaryCtx, buildAnswerPrompt(input.Query, out.Results))
	if err != nil {
		log.Printf("answer: %v", domain.NewDomainErrorWithCause(domain.ErrCodeSummaryUnavailable, "summarization failed, returning plain results", err))
		return out, nil
	}
	if summary == "" {
		return out, nil
	}

	out.Summary = summary
	out.SummaryPresent = true
	return out, nil
}

// buildAnswerPrompt assembles the retrieved context and the user's question
// into a single instruction block.
func buildAnswerPrompt(query string, results []*domain.SearchResult) string {
	var b strings.Builder

	b.WriteString("You are a helpful Homeopathy Assistant. Use ONLY the context below.\n\n")
	b.WriteString("Task:\n")
	b.WriteString("1) Summarize the top matching remedies in 3-5 short bullet points.\n")
	b.WriteString("2) Then give a concise final answer to the user's question.\n\n")
	b.WriteString("Requirements:\n")
	b.WriteString("- Cite remedy names you used.\n")
	b.WriteString("- If the answer is not in the context, say so.\n\n")
	b.WriteString("Context:\n")

	for i, r := range results {
		fmt.Fprintf(&b, "Remedy %d: %s\n", i+1, r.RemedyName)
		if r.TextPreview != "" {
			b.WriteString(r.TextPreview)
			b.WriteString("\n")
		}
		if r.FullText != "" {
			fmt.Fprintf(&b, "Full Text Snippet: %s\n", snippet(r.FullText, 500))
		}
		b.WriteString("---\n")
	}

	fmt.Fprintf(&b, "\nUser Question: %s\n", query)
	return b.String()
}

func snippet(text string, maxChars int) string {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}
	return string(runes[:maxChars]) + "..."
}
