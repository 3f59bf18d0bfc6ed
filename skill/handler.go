package skill

import (
	"context"

	"github.com/letmevibethatforyou/voicesearch/alexa"
	"github.com/letmevibethatforyou/voicesearch/pagination"
)

// Turn is what an intent handler sees of a request.
type Turn struct {
	RequestID string
	SessionID string
	Intent    IntentName
	// Slots holds the non-blank slot values by slot name.
	Slots map[string]string
	// Cursor is the pagination state carried from the previous turn, if any.
	Cursor *pagination.Cursor
}

// Outcome is a handler's reply plus the cursor to carry into the next turn.
// A nil Cursor clears any stored cursor.
type Outcome struct {
	Reply  alexa.Reply
	Cursor *pagination.Cursor
}

// Handler handles one intent.
type Handler interface {
	Handle(ctx context.Context, turn Turn) (Outcome, error)
}

// HandlerFunc is a function type that implements the Handler interface.
type HandlerFunc func(context.Context, Turn) (Outcome, error)

// Handle implements the Handler interface for HandlerFunc.
func (f HandlerFunc) Handle(ctx context.Context, turn Turn) (Outcome, error) {
	return f(ctx, turn)
}
