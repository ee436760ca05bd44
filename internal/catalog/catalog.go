// Package catalog provides category path normalization and keyword-based
// lookup over the curated ABB Library product table.
package catalog

import (
	"strings"
)

const (
	// libraryBaseURL is the ABB Library search endpoint the reference URL
	// points at.
	libraryBaseURL = "https://library.abb.com"

	// pathDelimiter separates segments of a category path.
	pathDelimiter = " > "

	// maxResults caps how many entries a single search returns.
	maxResults = 10
)

// genericRoots are category segments carrying no search value. They are
// dropped during normalization.
var genericRoots = map[string]struct{}{
	"ABB Products":   {},
	"All Categories": {},
	"Products":       {},
}

// Entry is a single curated product document.
type Entry struct {
	Title       string `json:"title"`
	DownloadURL string `json:"download_url"`
}

// Result holds the outcome of a catalog search.
type Result struct {
	Entries   []Entry
	Query     string
	SearchURL string
}

// group binds a lowercase keyword to its entries. Declaration order matters:
// matching walks groups in order and the first occurrence of a title wins.
type group struct {
	keyword string
	entries []Entry
}

// NormalizeCategoryPath turns a hierarchical category path into a flat search
// query. Generic root segments are removed and the remaining segments are
// joined by single spaces, preserving order.
//
// Example: "ABB Products > HPR > Rectifier > MCR" -> "HPR Rectifier MCR".
func NormalizeCategoryPath(fullPath string) string {
	parts := strings.Split(fullPath, pathDelimiter)

	filtered := make([]string, 0, len(parts))
	for _, p := range parts {
		if _, generic := genericRoots[p]; generic {
			continue
		}
		filtered = append(filtered, p)
	}

	return strings.Join(filtered, " ")
}

// Search scans the product table for keywords contained in the query and
// returns matching entries, deduplicated by title and capped at maxResults.
// Keyword matching is case-insensitive; title deduplication is not.
func Search(query string) Result {
	queryLower := strings.ToLower(query)

	var entries []Entry
	seen := make(map[string]struct{})

	for _, g := range productTable {
		if !strings.Contains(queryLower, g.keyword) {
			continue
		}
		for _, e := range g.entries {
			if _, dup := seen[e.Title]; dup {
				continue
			}
			seen[e.Title] = struct{}{}
			entries = append(entries, e)
		}
	}

	if len(entries) > maxResults {
		entries = entries[:maxResults]
	}
	if entries == nil {
		entries = []Entry{}
	}

	return Result{
		Entries:   entries,
		Query:     query,
		SearchURL: searchURL(query),
	}
}

// searchURL builds the ABB Library search URL for a normalized query.
func searchURL(query string) string {
	return libraryBaseURL + "/r?cid=pscat&lang=en&q=" + strings.ReplaceAll(query, " ", "%20")
}
