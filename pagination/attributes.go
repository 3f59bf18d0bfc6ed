package pagination

import (
	"encoding/json"
	"maps"

	"github.com/cockroachdb/errors"
)

// AttributeKey is the session attribute the cursor is stored under.
const AttributeKey = "searchCursor"

// ErrMalformedCursor is returned when the session holds a cursor that cannot be decoded.
var ErrMalformedCursor = errors.New("pagination: malformed cursor")

// Load decodes the cursor from session attributes. A missing cursor yields nil, nil.
func Load(attrs map[string]any) (*Cursor, error) {
	raw, ok := attrs[AttributeKey]
	if !ok || raw == nil {
		return nil, nil
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedCursor, "failed to encode session cursor: %v", err)
	}

	var c Cursor
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrapf(ErrMalformedCursor, "failed to decode session cursor: %v", err)
	}

	if c.Domain == "" {
		return nil, errors.Wrap(ErrMalformedCursor, "cursor has no domain")
	}
	if c.Total < len(c.Remaining) {
		return nil, errors.Wrapf(ErrMalformedCursor, "cursor total %d is below %d remaining records", c.Total, len(c.Remaining))
	}

	return &c, nil
}

// Store returns a copy of attrs with the cursor set, or removed when c is nil.
// attrs itself is never modified.
func Store(attrs map[string]any, c *Cursor) map[string]any {
	out := make(map[string]any, len(attrs)+1)
	maps.Copy(out, attrs)

	if c == nil {
		delete(out, AttributeKey)
		return out
	}

	out[AttributeKey] = c
	return out
}
