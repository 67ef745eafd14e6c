// Package eeg is the per-tick debug sink. Behaviors append log lines and
// drawables while they execute; the owner flushes them to slog once the tick
// is resolved. An EEG is never shared across ticks.
package eeg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nstehr/kickoff/model"
)

// Color names a visualizer color.
type Color string

const (
	Green  Color = "green"
	Yellow Color = "yellow"
	Red    Color = "red"
	Blue   Color = "blue"
	Orange Color = "orange"
)

// ForTeam returns the team's display color.
func ForTeam(t model.Team) Color {
	if t == model.Blue {
		return Blue
	}
	return Orange
}

// Drawable is a debug primitive for an external visualizer.
type Drawable struct {
	Kind  string     `json:"kind"` // print|ghost_ball|line
	Text  string     `json:"text,omitempty"`
	Color Color      `json:"color"`
	Loc   model.Vec3 `json:"loc"`
	To    model.Vec3 `json:"to"`
}

func Print(text string, c Color) Drawable {
	return Drawable{Kind: "print", Text: text, Color: c}
}

func GhostBall(loc model.Vec3, c Color) Drawable {
	return Drawable{Kind: "ghost_ball", Loc: loc, Color: c}
}

func Line(from, to model.Vec3, c Color) Drawable {
	return Drawable{Kind: "line", Loc: from, To: to, Color: c}
}

// Entry is one log line.
type Entry struct {
	Source  string
	Message string
	Attrs   []any
}

func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s", e.Source, e.Message)
}

// EEG collects the debug output of one tick.
type EEG struct {
	tick      int
	log       []Entry
	drawables []Drawable
}

// New returns an empty sink for tick.
func New(tick int) *EEG {
	return &EEG{tick: tick}
}

// Log records a line. attrs are slog-style key/value pairs.
func (e *EEG) Log(source, msg string, attrs ...any) {
	if e == nil {
		return
	}
	e.log = append(e.log, Entry{Source: source, Message: msg, Attrs: attrs})
}

func (e *EEG) Draw(d Drawable) {
	if e == nil {
		return
	}
	e.drawables = append(e.drawables, d)
}

func (e *EEG) Entries() []Entry      { return e.log }
func (e *EEG) Drawables() []Drawable { return e.drawables }

// Contains reports whether any log line from source has message msg.
func (e *EEG) Contains(source, msg string) bool {
	for _, l := range e.log {
		if l.Source == source && l.Message == msg {
			return true
		}
	}
	return false
}

// Flush writes the collected log lines to logger at debug level.
func (e *EEG) Flush(ctx context.Context, logger *slog.Logger) {
	if e == nil || logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	for _, l := range e.log {
		args := append([]any{"tick", e.tick, "source", l.Source}, l.Attrs...)
		logger.DebugContext(ctx, l.Message, args...)
	}
	if len(e.drawables) > 0 {
		logger.DebugContext(ctx, "drawables", "tick", e.tick, "count", len(e.drawables))
	}
}
