// Package library exposes the wisdom library over HTTP: personalized book
// recommendations plus catalogue browsing. Everything is rule-based and
// total, so the handlers always answer 200 once the request decodes.
package library

import (
	"encoding/json"
	"net/http"

	corelibrary "finwise/pkg/core/library"
	"finwise/pkg/core/profile"
)

// Handler serves the library endpoints. It holds no state; the catalogue and
// the scoring rules are pure.
type Handler struct{}

// NewHandler creates a new library handler.
func NewHandler() *Handler {
	return &Handler{}
}

func setCORS(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

// LibraryRequest is the inbound payload for personalized recommendations.
type LibraryRequest struct {
	Profile         profile.Profile `json:"profile"`
	PreferredGenres []string        `json:"preferred_genres,omitempty"`
}

// HandleLibrary returns the personalized top-10 shelf plus the popular shelf
// and the available catalogue filters.
func (h *Handler) HandleLibrary(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req LibraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Profile == nil {
		req.Profile = profile.Profile{}
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"recommendations": corelibrary.Recommendations(req.Profile, req.PreferredGenres),
		"popular":         corelibrary.FallbackRecommendations(),
		"filters":         corelibrary.CatalogueFilters(),
	})
}

// HandleBooks browses the catalogue with optional search and filter query
// parameters, and lists similar books when a title is given.
func (h *Handler) HandleBooks(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	if title := q.Get("similar_to"); title != "" {
		similar := corelibrary.SimilarBooks(title)
		if similar == nil {
			http.Error(w, "Book not found", http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"books": similar})
		return
	}

	books := corelibrary.Search(q.Get("search"), q.Get("genre"), q.Get("difficulty"), q.Get("investment_level"))
	if books == nil {
		books = []corelibrary.Book{}
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"books":   books,
		"filters": corelibrary.CatalogueFilters(),
	})
}
