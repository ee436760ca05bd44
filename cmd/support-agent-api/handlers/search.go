package handlers

import (
	"encoding/json"
	"net/http"

	"supportagent/internal/catalog"
	"supportagent/internal/observability"
)

// SearchHandler serves catalog lookups by category path.
type SearchHandler struct {
	logger *observability.Logger
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(logger *observability.Logger) *SearchHandler {
	return &SearchHandler{logger: logger}
}

// SearchRequestDTO is the search request body.
type SearchRequestDTO struct {
	FullPath string `json:"full_path"`
}

// SearchResponseDTO is the search response body.
type SearchResponseDTO struct {
	Products  []catalog.Entry `json:"products"`
	Query     string          `json:"query"`
	SearchURL string          `json:"search_url"`
}

// Search handles POST /api/v1/search.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequestDTO
	if r.Body != nil {
		// A malformed body is treated the same as a missing parameter.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	if req.FullPath == "" {
		writeError(w, http.StatusBadRequest, errMissingFullPath)
		return
	}

	query := catalog.NormalizeCategoryPath(req.FullPath)
	result := catalog.Search(query)

	h.logger.Debug().
		Str("full_path", req.FullPath).
		Str("query", query).
		Int("products", len(result.Entries)).
		Msg("Catalog search")

	writeJSON(w, http.StatusOK, SearchResponseDTO{
		Products:  result.Entries,
		Query:     result.Query,
		SearchURL: result.SearchURL,
	})
}
