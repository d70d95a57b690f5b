package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/remedia-ai/remedia/internal/api"
	"github.com/remedia-ai/remedia/internal/domain"
	"github.com/remedia-ai/remedia/internal/service"
)

type SearchService interface {
	Search(ctx context.Context, input service.SearchInput) (*service.SearchOutput, error)
}

type AnswerService interface {
	Answer(ctx context.Context, input service.SearchInput) (*service.AnswerOutput, error)
}

// SearchHandler serves semantic search and chat over the remedy index.
type SearchHandler struct {
	search SearchService
	answer AnswerService
}

func NewSearchHandler(search SearchService, answer AnswerService) *SearchHandler {
	return &SearchHandler{search: search, answer: answer}
}

type QueryRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k,omitempty"`
}

type RemedyResultResponse struct {
	ID               string  `json:"id"`
	RemedyName       string  `json:"remedy_name"`
	AlternativeNames string  `json:"alternative_names"`
	Similarity       float32 `json:"similarity"`
	TextPreview      string  `json:"text_preview"`
	FullText         string  `json:"full_text,omitempty"`
}

type SearchResponse struct {
	Results      []*RemedyResultResponse `json:"results"`
	TotalResults int                     `json:"total_results"`
	QueryTimeMS  float64                 `json:"query_time_ms"`
}

type ChatResponse struct {
	Results      []*RemedyResultResponse `json:"results"`
	TotalResults int                     `json:"total_results"`
	QueryTimeMS  float64                 `json:"query_time_ms"`
	Summary      string                  `json:"summary,omitempty"`
}

// Search handles POST /api/search.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeQueryRequest(w, r)
	if !ok {
		return
	}

	output, err := h.search.Search(r.Context(), input)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	results := toResultResponses(output.Results)
	api.JSON(w, http.StatusOK, SearchResponse{
		Results:      results,
		TotalResults: len(results),
		QueryTimeMS:  output.ElapsedMS,
	})
}

// Chat handles POST /api/chat: search plus a best-effort summary. The
// summary field is absent when the summarizer was unavailable.
func (h *SearchHandler) Chat(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeQueryRequest(w, r)
	if !ok {
		return
	}

	output, err := h.answer.Answer(r.Context(), input)
	if err != nil {
		api.HandleError(w, err)
		return
	}

	results := toResultResponses(output.Results)
	resp := ChatResponse{
		Results:      results,
		TotalResults: len(results),
		QueryTimeMS:  output.ElapsedMS,
	}
	if output.SummaryPresent {
		resp.Summary = output.Summary
	}

	api.JSON(w, http.StatusOK, resp)
}

func decodeQueryRequest(w http.ResponseWriter, r *http.Request) (service.SearchInput, bool) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return service.SearchInput{}, false
	}

	input := service.SearchInput{Query: req.Query, TopK: req.TopK}
	if err := service.ValidateInput(&input); err != nil {
		api.HandleError(w, err)
		return service.SearchInput{}, false
	}

	return input, true
}

func toResultResponses(results []*domain.SearchResult) []*RemedyResultResponse {
	responses := make([]*RemedyResultResponse, len(results))
	for i, result := range results {
		responses[i] = &RemedyResultResponse{
			ID:               result.ID,
			RemedyName:       result.RemedyName,
			AlternativeNames: result.AlternativeNames,
			Similarity:       result.Similarity,
			TextPreview:      result.TextPreview,
			FullText:         result.FullText,
		}
	}
	return responses
}
