package skill

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/letmevibethatforyou/voicesearch/alexa"
	"github.com/letmevibethatforyou/voicesearch/pagination"
)

// WrongInvocation is spoken when more results are requested without a prior search.
const WrongInvocation = "Wrong invocation of this intent. "

// ResumeIntent speaks every record stored in the session cursor and ends the session.
type ResumeIntent struct {
	Domains map[string]*Domain
}

// Handle implements the Handler interface.
func (h ResumeIntent) Handle(ctx context.Context, turn Turn) (Outcome, error) {
	return Outcome{Reply: h.Resume(ctx, turn.Cursor)}, nil
}

// Resume renders the stored remainder of a search. Without a cursor it returns
// the fixed WrongInvocation reply.
func (h ResumeIntent) Resume(ctx context.Context, cursor *pagination.Cursor) alexa.Reply {
	if cursor == nil {
		return alexa.Reply{Speech: WrongInvocation, EndSession: true}
	}

	d, ok := h.Domains[cursor.Domain]
	if !ok {
		slog.WarnContext(ctx, "Cursor references an unknown domain", "domain", cursor.Domain)
		return alexa.Reply{Speech: WrongInvocation, EndSession: true}
	}

	summary := fmt.Sprintf("Your search resulted in %d results. ", cursor.Total)

	speech := summary
	if len(cursor.Remaining) > 0 {
		speech += "Here are your other results. " + d.speakAll(cursor.Remaining)
	}

	var content strings.Builder
	content.WriteString(summary + "\n")
	for _, r := range cursor.Remaining {
		fmt.Fprintf(&content, "'%s'\n", r.Get(0))
	}

	return alexa.Reply{
		Speech:     speech,
		EndSession: true,
		Card: &alexa.CardContent{
			Title:   fmt.Sprintf("Other %s found: %s", d.Noun, cursor.Label),
			Content: content.String(),
		},
	}
}
