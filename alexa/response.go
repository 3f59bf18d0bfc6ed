package alexa

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/letmevibethatforyou/voicesearch"
)

// Version is the response schema version.
const Version = "1.0"

// ResponseEnvelope is the JSON document returned to the platform.
type ResponseEnvelope struct {
	Version           string         `json:"version"`
	SessionAttributes map[string]any `json:"sessionAttributes,omitempty"`
	Response          ResponseBody   `json:"response"`
}

// ResponseBody holds what the device says and shows.
type ResponseBody struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

// SpeechType represents the encoding of an OutputSpeech.
type SpeechType string

const (
	SpeechTypeSSML      SpeechType = "SSML"
	SpeechTypePlainText SpeechType = "PlainText"
)

// OutputSpeech is spoken text, either SSML or plain.
type OutputSpeech struct {
	Type SpeechType `json:"type"`
	Text string     `json:"text,omitempty"`
	SSML string     `json:"ssml,omitempty"`
}

// Reprompt is spoken when the user does not answer an open session.
type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

// CardType represents the layout of a Card.
type CardType string

const (
	CardTypeSimple   CardType = "Simple"
	CardTypeStandard CardType = "Standard"
)

// Card is the visual companion to speech. Simple cards use Content, Standard
// cards use Text and Image.
type Card struct {
	Type    CardType `json:"type"`
	Title   string   `json:"title"`
	Content string   `json:"content,omitempty"`
	Text    string   `json:"text,omitempty"`
	Image   *Image   `json:"image,omitempty"`
}

// Image references the pictures shown on a Standard card.
type Image struct {
	SmallImageURL string `json:"smallImageUrl"`
	LargeImageURL string `json:"largeImageUrl"`
}

// CardContent describes a card in a Reply.
type CardContent struct {
	Title    string
	Content  string
	ImageURL string
}

// Reply is the complete outcome of a turn, assembled once by a handler.
type Reply struct {
	Speech     string
	Reprompt   string
	PlainText  bool
	EndSession bool
	Card       *CardContent
}

// Validate checks that the reply can be rendered.
func (r Reply) Validate() error {
	if strings.TrimSpace(r.Speech) == "" {
		return errors.Wrap(voicesearch.ErrInvalidReply, "speech is empty")
	}
	if !r.EndSession && strings.TrimSpace(r.Reprompt) == "" {
		return errors.Wrap(voicesearch.ErrInvalidReply, "an open session needs a reprompt")
	}
	if r.Card != nil && strings.TrimSpace(r.Card.Title) == "" {
		return errors.Wrap(voicesearch.ErrInvalidReply, "card has no title")
	}
	return nil
}

// Envelope validates the reply and renders it. Session attributes are only
// returned while the session stays open.
func (r Reply) Envelope(attrs map[string]any) (ResponseEnvelope, error) {
	if err := r.Validate(); err != nil {
		return ResponseEnvelope{}, err
	}

	speech := r.speech(r.Speech)
	body := ResponseBody{
		OutputSpeech:     &speech,
		ShouldEndSession: r.EndSession,
	}

	if !r.EndSession {
		body.Reprompt = &Reprompt{OutputSpeech: r.speech(r.Reprompt)}
	}

	if r.Card != nil {
		body.Card = renderCard(*r.Card)
	}

	env := ResponseEnvelope{
		Version:  Version,
		Response: body,
	}
	if !r.EndSession && len(attrs) > 0 {
		env.SessionAttributes = attrs
	}
	return env, nil
}

// Empty is the response to requests that expect no speech, such as SessionEndedRequest.
func Empty() ResponseEnvelope {
	return ResponseEnvelope{
		Version:  Version,
		Response: ResponseBody{ShouldEndSession: true},
	}
}

var ssmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func (r Reply) speech(text string) OutputSpeech {
	if r.PlainText {
		return OutputSpeech{Type: SpeechTypePlainText, Text: text}
	}
	return OutputSpeech{Type: SpeechTypeSSML, SSML: "<speak>" + ssmlEscaper.Replace(text) + "</speak>"}
}

func renderCard(c CardContent) *Card {
	if c.ImageURL == "" {
		return &Card{Type: CardTypeSimple, Title: c.Title, Content: c.Content}
	}
	return &Card{
		Type:  CardTypeStandard,
		Title: c.Title,
		Text:  c.Content,
		Image: &Image{SmallImageURL: c.ImageURL, LargeImageURL: c.ImageURL},
	}
}
