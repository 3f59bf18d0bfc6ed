// Package ranked implements the prefix-weighted record search used by every intent.
//
// A record is a candidate only when each query word occurs somewhere in the
// selected field. Candidates are weighted by whole-word and prefix hits plus a
// bonus for phrases of the same length; when any candidate is a strong match
// the strong matches are returned by descending weight, otherwise all
// candidates are returned in dataset order.
package ranked

import (
	"context"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/letmevibethatforyou/voicesearch"
)

const (
	// WordWeight is added for each query word that matches a field token as a whole word.
	WordWeight = 10
	// PrefixWeight is added for each query word that starts a field token.
	PrefixWeight = 10
	// LengthBonus is added when the field has exactly as many tokens as the query has words.
	LengthBonus = 10
	// StrongWeight is the lowest weight of the strong-match tier.
	StrongWeight = 10
)

// Match is a record that passed the all-words gate together with its weight.
type Match struct {
	Record voicesearch.Record
	Weight int
}

// Rank scores records against query on field and returns the matches in result order.
// It returns voicesearch.ErrEmptyQuery when query has no words.
func Rank(records []voicesearch.Record, query string, field voicesearch.Field) ([]Match, error) {
	words := tokenize(query)
	if len(words) == 0 {
		return nil, voicesearch.ErrEmptyQuery
	}

	candidates := make([]Match, 0)
	for _, rec := range records {
		weight, ok := score(rec.Get(field), words)
		if !ok {
			continue
		}
		candidates = append(candidates, Match{Record: rec, Weight: weight})
	}

	strong := make([]Match, 0, len(candidates))
	for _, m := range candidates {
		if m.Weight >= StrongWeight {
			strong = append(strong, m)
		}
	}
	if len(strong) == 0 {
		return candidates, nil
	}

	sort.SliceStable(strong, func(i, j int) bool {
		return strong[i].Weight > strong[j].Weight
	})
	return strong, nil
}

// Search is Rank without the weights.
func Search(records []voicesearch.Record, query string, field voicesearch.Field) ([]voicesearch.Record, error) {
	matches, err := Rank(records, query, field)
	if err != nil {
		return nil, err
	}
	out := make([]voicesearch.Record, len(matches))
	for i, m := range matches {
		out[i] = m.Record
	}
	return out, nil
}

// score applies the all-words gate to text and weights it. ok is false when
// some word does not occur in text.
func score(text string, words []string) (weight int, ok bool) {
	normalized := normalizeText(text)
	for _, w := range words {
		if !strings.Contains(normalized, w) {
			return 0, false
		}
	}

	tokens := strings.Fields(normalized)
	for _, w := range words {
		if hasWordToken(tokens, w) {
			weight += WordWeight
		}
		if hasPrefixToken(tokens, w) {
			weight += PrefixWeight
		}
	}
	if len(tokens) == len(words) {
		weight += LengthBonus
	}
	return weight, true
}

// Searcher implements the voicesearch.Searcher interface over a fixed dataset.
// The dataset is copied on construction and never mutated, so a Searcher is
// safe to share between invocations.
type Searcher struct {
	records []voicesearch.Record
}

// New creates a searcher over a copy of records.
func New(records []voicesearch.Record) *Searcher {
	copied := make([]voicesearch.Record, len(records))
	for i, r := range records {
		copied[i] = r.Clone()
	}
	return &Searcher{records: copied}
}

// Len returns the number of records in the dataset.
func (s *Searcher) Len() int {
	return len(s.records)
}

// Search implements the voicesearch.Searcher interface.
func (s *Searcher) Search(ctx context.Context, query string, field voicesearch.Field) ([]voicesearch.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "search canceled")
	}
	return Search(s.records, query, field)
}
