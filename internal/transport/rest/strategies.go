package rest

import (
	"net/http"

	"github.com/heartmarshall/visaletter-backend/internal/strategy"
)

type strategyCatalog interface {
	Catalog() []strategy.CatalogEntry
}

// StrategyHandler serves the letter catalogue.
type StrategyHandler struct {
	catalog strategyCatalog
}

// NewStrategyHandler creates a StrategyHandler.
func NewStrategyHandler(catalog strategyCatalog) *StrategyHandler {
	return &StrategyHandler{catalog: catalog}
}

type wordRangeResponse struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type catalogEntryResponse struct {
	Country      string             `json:"country"`
	CountryName  string             `json:"countryName"`
	LetterType   string             `json:"letterType"`
	Availability string             `json:"availability"`
	Title        string             `json:"title,omitempty"`
	WordRange    *wordRangeResponse `json:"wordRange,omitempty"`
}

// List handles GET /api/strategies.
func (h *StrategyHandler) List(w http.ResponseWriter, r *http.Request) {
	entries := h.catalog.Catalog()
	resp := make([]catalogEntryResponse, 0, len(entries))
	for _, e := range entries {
		item := catalogEntryResponse{
			Country:      string(e.Country),
			CountryName:  e.Country.DisplayName(),
			LetterType:   string(e.LetterType),
			Availability: string(e.Availability),
			Title:        e.Document,
		}
		if e.WordRange != nil {
			item.WordRange = &wordRangeResponse{Min: e.WordRange.Min, Max: e.WordRange.Max}
		}
		resp = append(resp, item)
	}
	writeJSON(w, http.StatusOK, map[string]any{"strategies": resp})
}
