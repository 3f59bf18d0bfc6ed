// Package pagination splits ranked results into the page spoken now and a
// cursor holding the rest for the next conversational turn.
package pagination

import (
	"github.com/letmevibethatforyou/voicesearch"
)

// Cursor is the stored remainder of a paginated search, carried in session
// attributes between turns.
type Cursor struct {
	// Domain names the dataset the records came from, used to render them again.
	Domain string `json:"domain"`
	// Label is the spoken query the results were found for.
	Label string `json:"label"`
	// Total is the number of results the search produced.
	Total int `json:"total"`
	// Remaining holds the results after the first page, bounded by the domain cap.
	Remaining []voicesearch.Record `json:"remaining"`
}

// Query identifies the search a cursor belongs to.
type Query struct {
	Domain string
	Label  string
}

// Paginate returns the first pageSize results and, when more results exist, a
// cursor holding results[pageSize:limit]. pageSize below 1 is treated as 1 and
// limit below pageSize as pageSize.
func Paginate(results []voicesearch.Record, pageSize, limit int, q Query) ([]voicesearch.Record, *Cursor) {
	if pageSize < 1 {
		pageSize = 1
	}
	if limit < pageSize {
		limit = pageSize
	}

	if len(results) <= pageSize {
		return results, nil
	}

	end := min(limit, len(results))
	remaining := make([]voicesearch.Record, 0, end-pageSize)
	for _, r := range results[pageSize:end] {
		remaining = append(remaining, r.Clone())
	}

	return results[:pageSize], &Cursor{
		Domain:    q.Domain,
		Label:     q.Label,
		Total:     len(results),
		Remaining: remaining,
	}
}
