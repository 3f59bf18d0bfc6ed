package skill

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/letmevibethatforyou/voicesearch"
	"github.com/letmevibethatforyou/voicesearch/alexa"
	"github.com/letmevibethatforyou/voicesearch/pagination"
)

const moreReprompt = "You can say more information or stop."

// SearchPrompts holds the texts a search intent speaks. Every template except
// Missing and MissingReprompt takes the spoken query as its single %s.
type SearchPrompts struct {
	Missing         string
	MissingReprompt string
	CardTitle       string
	NotFound        string
	More            string
	MoreCard        string
}

// SearchIntent searches one field of a domain with the value of one slot.
type SearchIntent struct {
	Domain  *Domain
	Slot    string
	Field   voicesearch.Field
	Prompts SearchPrompts
}

// Handle implements the Handler interface.
func (h SearchIntent) Handle(ctx context.Context, turn Turn) (Outcome, error) {
	query, ok := turn.Slots[h.Slot]
	if !ok {
		return h.missing(), nil
	}

	results, err := h.Domain.Searcher.Search(ctx, query, h.Field)
	if errors.Is(err, voicesearch.ErrEmptyQuery) {
		return h.missing(), nil
	}
	if err != nil {
		return Outcome{}, errors.Wrapf(err, "failed to search %s", h.Domain.Name)
	}

	slog.InfoContext(ctx, "Search completed",
		"domain", h.Domain.Name,
		"slot", h.Slot,
		"query", query,
		"result_count", len(results),
	)

	card := &alexa.CardContent{Title: fmt.Sprintf(h.Prompts.CardTitle, query)}

	if len(results) == 0 {
		speech := fmt.Sprintf(h.Prompts.NotFound, query)
		card.Content = speech
		return Outcome{Reply: alexa.Reply{Speech: speech, EndSession: true, Card: card}}, nil
	}

	first, cursor := pagination.Paginate(results, h.Domain.PageSize, h.Domain.Cap, pagination.Query{
		Domain: h.Domain.Name,
		Label:  query,
	})

	speech := h.Domain.speakAll(first)
	card.Content = h.Domain.describeAll(first)

	if cursor == nil {
		return Outcome{Reply: alexa.Reply{Speech: speech, EndSession: true, Card: card}}, nil
	}

	speech += fmt.Sprintf(h.Prompts.More, query)
	card.Content += fmt.Sprintf(h.Prompts.MoreCard, query)

	return Outcome{
		Reply: alexa.Reply{
			Speech:   speech,
			Reprompt: moreReprompt,
			Card:     card,
		},
		Cursor: cursor,
	}, nil
}

func (h SearchIntent) missing() Outcome {
	return Outcome{Reply: alexa.Reply{
		Speech:   h.Prompts.Missing,
		Reprompt: h.Prompts.MissingReprompt,
	}}
}
