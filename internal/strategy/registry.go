package strategy

import (
	"fmt"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
)

// Availability of a (country, letter type) pair.
type Availability string

const (
	Available  Availability = "available"
	ComingSoon Availability = "coming_soon"
)

// CatalogEntry describes one pair for display.
type CatalogEntry struct {
	Country      domain.Country
	LetterType   domain.LetterType
	Availability Availability
	Document     string
	WordRange    *domain.WordRange
}

// Registry dispatches (country, letter type) to a strategy.
type Registry struct {
	strategies map[Key]Strategy
}

// NewRegistry builds a registry from the given strategies. Any valid pair
// without a strategy is treated as planned (ErrNotImplemented).
func NewRegistry(strategies ...Strategy) *Registry {
	m := make(map[Key]Strategy, len(strategies))
	for _, s := range strategies {
		m[s.Key()] = s
	}
	return &Registry{strategies: m}
}

// DefaultRegistry returns the registry with every built strategy.
func DefaultRegistry() *Registry {
	return NewRegistry(
		australiaExplanation,
		australiaFinancial,
		canadaExplanation,
		ukExplanation,
	)
}

// Resolve returns the strategy for the pair.
func (r *Registry) Resolve(country domain.Country, letterType domain.LetterType) (Strategy, error) {
	key := Key{Country: country, LetterType: letterType}
	if s, ok := r.strategies[key]; ok {
		return s, nil
	}
	if !country.IsValid() || !letterType.IsValid() {
		return nil, fmt.Errorf("%s: %w", key, domain.ErrUnsupportedCombination)
	}
	return nil, fmt.Errorf("%s: %w", key, domain.ErrNotImplemented)
}

// Catalog lists every valid pair in display order.
func (r *Registry) Catalog() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(domain.AllCountries)*len(domain.AllLetterTypes))
	for _, c := range domain.AllCountries {
		for _, lt := range domain.AllLetterTypes {
			e := CatalogEntry{Country: c, LetterType: lt, Availability: ComingSoon}
			if s, ok := r.strategies[Key{c, lt}]; ok {
				wr := s.WordCountRange()
				e.Availability = Available
				e.WordRange = &wr
				if v, ok := s.(variant); ok {
					e.Document = v.document
				}
			}
			entries = append(entries, e)
		}
	}
	return entries
}
