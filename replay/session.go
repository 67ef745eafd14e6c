package replay

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// Handler processes a received envelope. Return nil to send no reply.
type Handler func(env Envelope) (*Envelope, error)

// Session replays one recorded stream through registered handlers and writes
// their replies to an output stream.
type Session struct {
	r        io.Reader
	w        io.Writer
	handlers map[string]Handler
	frames   int
}

// NewSession reads frames from r. Replies go to w; a nil w discards them.
func NewSession(r io.Reader, w io.Writer, handlers map[string]Handler) *Session {
	if handlers == nil {
		handlers = make(map[string]Handler)
	}
	if w == nil {
		w = io.Discard
	}
	return &Session{r: r, w: w, handlers: handlers}
}

// RegisterHandler routes frames of msgType to handler, replacing any
// previous handler.
func (s *Session) RegisterHandler(msgType string, handler Handler) {
	s.handlers[msgType] = handler
}

// Frames counts the envelopes read so far.
func (s *Session) Frames() int { return s.frames }

// ReadLoop blocks until the stream ends, ctx is cancelled, or a frame cannot
// be read or a reply cannot be written. A clean end of stream returns nil.
// Handler errors are logged and the frame skipped.
func (s *Session) ReadLoop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		env, err := ReadEnvelope(s.r)
		if errors.Is(err, io.EOF) {
			slog.Info("replay stream ended", "frames", s.frames)
			return nil
		}
		if err != nil {
			return err
		}
		s.frames++

		handler, ok := s.handlers[env.Type]
		if !ok {
			slog.Warn("no handler for message type", "type", env.Type)
			continue
		}

		resp, err := handler(env)
		if err != nil {
			slog.Error("handler error", "type", env.Type, "error", err)
			continue
		}

		if resp != nil {
			if err := WriteEnvelope(s.w, *resp); err != nil {
				slog.Error("failed to send response", "type", resp.Type, "error", err)
				return err
			}
			slog.Debug("sent response", "type", resp.Type)
		}
	}
}
