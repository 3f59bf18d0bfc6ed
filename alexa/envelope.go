// Package alexa holds the webhook envelope exchanged with the voice platform
// and the Reply value handlers return.
package alexa

import "strings"

// RequestEnvelope is the JSON document the platform sends for each turn.
type RequestEnvelope struct {
	Version string  `json:"version"`
	Session Session `json:"session"`
	Request Request `json:"request"`
}

// Session carries the conversation identity and its opaque attributes.
type Session struct {
	New         bool           `json:"new"`
	SessionID   string         `json:"sessionId"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	User        User           `json:"user"`
	Application Application    `json:"application"`
}

// User identifies the account talking to the skill.
type User struct {
	UserID string `json:"userId"`
}

// Application identifies the skill a request was addressed to.
type Application struct {
	ApplicationID string `json:"applicationId"`
}

// RequestType represents the kind of request in an envelope.
type RequestType string

const (
	RequestTypeLaunch       RequestType = "LaunchRequest"
	RequestTypeIntent       RequestType = "IntentRequest"
	RequestTypeSessionEnded RequestType = "SessionEndedRequest"
)

// Request is the turn itself.
type Request struct {
	Type      RequestType `json:"type"`
	RequestID string      `json:"requestId"`
	Timestamp string      `json:"timestamp,omitempty"`
	Locale    string      `json:"locale,omitempty"`
	// Reason is set on SessionEndedRequest.
	Reason string `json:"reason,omitempty"`
	Intent Intent `json:"intent"`
}

// Intent is a recognized user request with its slots.
type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

// Slot is one named value extracted from speech.
type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// SlotValues returns the slots that carry a non-blank value, keyed by slot name.
func (i Intent) SlotValues() map[string]string {
	values := make(map[string]string, len(i.Slots))
	for key, slot := range i.Slots {
		v := strings.TrimSpace(slot.Value)
		if v == "" {
			continue
		}
		values[key] = v
	}
	return values
}
