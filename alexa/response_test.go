package alexa

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/letmevibethatforyou/voicesearch"
)

func TestReply_Validate(t *testing.T) {
	tests := map[string]struct {
		reply   Reply
		wantErr bool
	}{
		"ending_without_reprompt": {
			reply: Reply{Speech: "Good Bye. ", EndSession: true},
		},
		"open_with_reprompt": {
			reply: Reply{Speech: "Welcome.", Reprompt: "For example.", EndSession: false},
		},
		"empty_speech": {
			reply:   Reply{Speech: "  ", EndSession: true},
			wantErr: true,
		},
		"open_without_reprompt": {
			reply:   Reply{Speech: "Welcome."},
			wantErr: true,
		},
		"card_without_title": {
			reply:   Reply{Speech: "x", EndSession: true, Card: &CardContent{Content: "y"}},
			wantErr: true,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := tc.reply.Validate()
			if tc.wantErr {
				if !errors.Is(err, voicesearch.ErrInvalidReply) {
					t.Errorf("Expected ErrInvalidReply, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestReply_Envelope(t *testing.T) {
	attrs := map[string]any{"key": "value"}

	t.Run("EndedSession", func(t *testing.T) {
		env, err := Reply{
			Speech:     "Villa Italia is located at 39 University Road & serves <italian> food.",
			EndSession: true,
			Card:       &CardContent{Title: "Restaurant results for: villa italia", Content: "'Villa Italia'"},
		}.Envelope(attrs)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if env.Version != "1.0" {
			t.Errorf("Expected version 1.0, got %q", env.Version)
		}
		speech := env.Response.OutputSpeech
		if speech.Type != SpeechTypeSSML {
			t.Errorf("Expected SSML speech, got %q", speech.Type)
		}
		expected := "<speak>Villa Italia is located at 39 University Road &amp; serves &lt;italian&gt; food.</speak>"
		if speech.SSML != expected {
			t.Errorf("Expected %q, got %q", expected, speech.SSML)
		}
		if !env.Response.ShouldEndSession {
			t.Error("Expected session to end")
		}
		if env.Response.Reprompt != nil {
			t.Error("Expected no reprompt on an ended session")
		}
		if env.SessionAttributes != nil {
			t.Error("Expected no session attributes on an ended session")
		}
		card := env.Response.Card
		if card == nil || card.Type != CardTypeSimple || card.Content != "'Villa Italia'" || card.Text != "" {
			t.Errorf("Unexpected card %+v", card)
		}
	})

	t.Run("OpenSession", func(t *testing.T) {
		env, err := Reply{Speech: "Welcome.", Reprompt: "For example, say italian."}.Envelope(attrs)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if env.Response.ShouldEndSession {
			t.Error("Expected session to stay open")
		}
		if env.Response.Reprompt == nil || env.Response.Reprompt.OutputSpeech.SSML != "<speak>For example, say italian.</speak>" {
			t.Errorf("Unexpected reprompt %+v", env.Response.Reprompt)
		}
		if env.SessionAttributes["key"] != "value" {
			t.Errorf("Expected attributes to be returned, got %v", env.SessionAttributes)
		}
	})

	t.Run("PlainText", func(t *testing.T) {
		env, err := Reply{Speech: "Good Bye. ", PlainText: true, EndSession: true}.Envelope(nil)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if env.Response.OutputSpeech.Type != SpeechTypePlainText || env.Response.OutputSpeech.Text != "Good Bye. " {
			t.Errorf("Unexpected speech %+v", env.Response.OutputSpeech)
		}
	})

	t.Run("StandardCard", func(t *testing.T) {
		env, err := Reply{
			Speech:     "x",
			EndSession: true,
			Card:       &CardContent{Title: "t", Content: "c", ImageURL: "https://example.com/a.png"},
		}.Envelope(nil)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		card := env.Response.Card
		if card.Type != CardTypeStandard || card.Text != "c" || card.Content != "" {
			t.Errorf("Unexpected card %+v", card)
		}
		if card.Image == nil || card.Image.SmallImageURL != "https://example.com/a.png" || card.Image.LargeImageURL != "https://example.com/a.png" {
			t.Errorf("Unexpected image %+v", card.Image)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		if _, err := (Reply{}).Envelope(nil); !errors.Is(err, voicesearch.ErrInvalidReply) {
			t.Errorf("Expected ErrInvalidReply, got %v", err)
		}
	})

	t.Run("JSONShape", func(t *testing.T) {
		env, err := Reply{Speech: "Good Bye. ", EndSession: true}.Envelope(nil)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		data, err := json.Marshal(env)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		s := string(data)
		for _, want := range []string{`"version":"1.0"`, `"shouldEndSession":true`, `"type":"SSML"`, `Good Bye. `} {
			if !strings.Contains(s, want) {
				t.Errorf("Expected %s in %s", want, s)
			}
		}
		for _, unwanted := range []string{"reprompt", "card", "sessionAttributes"} {
			if strings.Contains(s, unwanted) {
				t.Errorf("Did not expect %s in %s", unwanted, s)
			}
		}
	})
}

func TestEmpty(t *testing.T) {
	env := Empty()
	if env.Version != Version || env.Response.OutputSpeech != nil || !env.Response.ShouldEndSession {
		t.Errorf("Unexpected empty envelope %+v", env)
	}
}
