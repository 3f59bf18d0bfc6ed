// Package skill dispatches voice platform requests to intent handlers and
// turns their outcomes into response envelopes.
package skill

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/letmevibethatforyou/voicesearch"
	"github.com/letmevibethatforyou/voicesearch/alexa"
	"github.com/letmevibethatforyou/voicesearch/internal/appid"
	"github.com/letmevibethatforyou/voicesearch/pagination"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// SessionHook runs when a session starts or ends.
type SessionHook func(ctx context.Context, env alexa.RequestEnvelope)

// Skill handles one request envelope per call.
type Skill struct {
	table          Table
	verifier       *appid.Verifier
	sessionStarted SessionHook
	sessionEnded   SessionHook
	tracer         trace.Tracer
}

// Option configures a Skill.
type Option func(*Skill)

// WithVerifier rejects requests whose application id the verifier does not accept.
func WithVerifier(v *appid.Verifier) Option {
	return func(s *Skill) {
		s.verifier = v
	}
}

// WithSessionStarted sets the hook run before dispatching the first request of a session.
func WithSessionStarted(h SessionHook) Option {
	return func(s *Skill) {
		s.sessionStarted = h
	}
}

// WithSessionEnded sets the hook run for SessionEndedRequest.
func WithSessionEnded(h SessionHook) Option {
	return func(s *Skill) {
		s.sessionEnded = h
	}
}

// New creates a Skill dispatching intents through table.
func New(table Table, opts ...Option) *Skill {
	s := &Skill{
		table: table,
		sessionStarted: func(ctx context.Context, env alexa.RequestEnvelope) {
			slog.DebugContext(ctx, "Session started", "request_id", env.Request.RequestID, "session_id", env.Session.SessionID)
		},
		sessionEnded: func(ctx context.Context, env alexa.RequestEnvelope) {
			slog.DebugContext(ctx, "Session ended", "request_id", env.Request.RequestID, "session_id", env.Session.SessionID, "reason", env.Request.Reason)
		},
		tracer: otel.Tracer("voicesearch-skill"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle processes one turn. Every recoverable condition produces a spoken
// response; a returned error means the turn is aborted and nothing is spoken.
func (s *Skill) Handle(ctx context.Context, env alexa.RequestEnvelope) (resp alexa.ResponseEnvelope, err error) {
	ctx, span := s.tracer.Start(ctx, "skill.handle",
		trace.WithAttributes(
			attribute.String("alexa.request_type", string(env.Request.Type)),
			attribute.String("alexa.intent_name", env.Request.Intent.Name),
		),
	)
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			resp = alexa.ResponseEnvelope{}
			err = errors.Newf("panic handling request %s: %v", env.Request.RequestID, r)
		}
		if err != nil {
			slog.ErrorContext(ctx, "Failed to handle request", "request_id", env.Request.RequestID, "error", err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "request failed")
		}
	}()

	slog.InfoContext(ctx, "Handling request",
		"request_id", env.Request.RequestID,
		"session_id", env.Session.SessionID,
		"request_type", env.Request.Type,
		"intent", env.Request.Intent.Name,
	)
	logEnvelope(ctx, "Incoming request", env)

	if s.verifier != nil {
		ok, verr := s.verifier.Verify(env.Session.Application.ApplicationID)
		if verr != nil {
			return alexa.ResponseEnvelope{}, errors.Wrap(verr, "failed to verify application id")
		}
		if !ok {
			return alexa.ResponseEnvelope{}, errors.Wrapf(voicesearch.ErrInvalidApplication, "application %q", env.Session.Application.ApplicationID)
		}
	}

	if env.Session.New {
		s.sessionStarted(ctx, env)
	}

	switch env.Request.Type {
	case alexa.RequestTypeLaunch:
		resp, err = s.render(env, Outcome{Reply: launchReply()})
	case alexa.RequestTypeIntent:
		resp, err = s.dispatch(ctx, env)
	case alexa.RequestTypeSessionEnded:
		s.sessionEnded(ctx, env)
		resp = alexa.Empty()
	default:
		return alexa.ResponseEnvelope{}, errors.Wrapf(voicesearch.ErrUnsupportedRequest, "request type %q", env.Request.Type)
	}
	if err != nil {
		return alexa.ResponseEnvelope{}, err
	}

	logEnvelope(ctx, "Final response", resp)
	span.SetStatus(codes.Ok, "request handled")
	return resp, nil
}

func (s *Skill) dispatch(ctx context.Context, env alexa.RequestEnvelope) (alexa.ResponseEnvelope, error) {
	name := IntentName(env.Request.Intent.Name)

	handler, ok := s.table.Lookup(name)
	if !ok {
		slog.WarnContext(ctx, "Unknown intent", "intent", name)
		return s.render(env, Outcome{Reply: unknownIntentReply()})
	}

	cursor, err := pagination.Load(env.Session.Attributes)
	if err != nil {
		slog.WarnContext(ctx, "Ignoring unreadable session cursor", "error", err)
		cursor = nil
	}

	outcome, err := handler.Handle(ctx, Turn{
		RequestID: env.Request.RequestID,
		SessionID: env.Session.SessionID,
		Intent:    name,
		Slots:     env.Request.Intent.SlotValues(),
		Cursor:    cursor,
	})
	if err != nil {
		return alexa.ResponseEnvelope{}, errors.Wrapf(err, "intent %s failed", name)
	}

	return s.render(env, outcome)
}

func (s *Skill) render(env alexa.RequestEnvelope, outcome Outcome) (alexa.ResponseEnvelope, error) {
	attrs := pagination.Store(env.Session.Attributes, outcome.Cursor)
	resp, err := outcome.Reply.Envelope(attrs)
	if err != nil {
		return alexa.ResponseEnvelope{}, errors.Wrap(err, "failed to render reply")
	}
	return resp, nil
}

func logEnvelope(ctx context.Context, msg string, v any) {
	if !slog.Default().Enabled(ctx, slog.LevelDebug) {
		return
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		slog.DebugContext(ctx, msg, "error", err)
		return
	}
	slog.DebugContext(ctx, msg, "envelope", string(data))
}
