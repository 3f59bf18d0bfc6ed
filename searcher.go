package voicesearch

import "context"

// Searcher finds the records of a dataset whose selected field matches a spoken phrase.
type Searcher interface {
	// Search returns the matching records for query compared against field, best match first.
	// An empty slice is a valid "not found" outcome.
	Search(ctx context.Context, query string, field Field) ([]Record, error)
}

// SearcherFunc is a function type that implements the Searcher interface.
// This allows using a function as a Searcher, similar to http.HandlerFunc.
type SearcherFunc func(context.Context, string, Field) ([]Record, error)

// Search implements the Searcher interface for SearcherFunc.
func (f SearcherFunc) Search(ctx context.Context, query string, field Field) ([]Record, error) {
	return f(ctx, query, field)
}
