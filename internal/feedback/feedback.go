// Package feedback defines the tone and speech collaborator the game reacts through.
package feedback

import (
	"log/slog"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_sink.go github.com/KirkDiggler/eidetic/internal/feedback Sink

// Tone identifies a sound. Values 1–9 are the per-digit confirmation tones.
type Tone int

const (
	// ToneMistake is the long buzz played on a wrong tap
	ToneMistake Tone = 0

	// ToneVictory is the long chime played when a round is won
	ToneVictory Tone = 10
)

// Sink plays tones and speaks text. Implementations must not block the caller
// for long and have no way to report failure.
type Sink interface {
	// PlayTone plays a short or long tone
	PlayTone(kind Tone, long bool)

	// PlayErrorTone plays the short error blip used for rejected first taps
	PlayErrorTone()

	// Say speaks text
	Say(text string)
}

type gate struct {
	sink    Sink
	enabled func() bool
	ready   func() bool
	logger  *slog.Logger
}

// Gate wraps sink so that every call is dropped while enabled reports false,
// and speech is dropped until ready reports true. A nil ready is always ready.
// Panics raised by sink are recovered and logged.
func Gate(sink Sink, enabled, ready func() bool, logger *slog.Logger) Sink {
	if logger == nil {
		logger = slog.Default()
	}
	if enabled == nil {
		enabled = func() bool { return true }
	}
	if ready == nil {
		ready = func() bool { return true }
	}
	return &gate{
		sink:    sink,
		enabled: enabled,
		ready:   ready,
		logger:  logger,
	}
}

func (g *gate) recover(op string) {
	if r := recover(); r != nil {
		g.logger.Warn("feedback sink failed", "op", op, "panic", r)
	}
}

func (g *gate) PlayTone(kind Tone, long bool) {
	if g.sink == nil || !g.enabled() {
		return
	}
	defer g.recover("tone")
	g.sink.PlayTone(kind, long)
}

func (g *gate) PlayErrorTone() {
	if g.sink == nil || !g.enabled() {
		return
	}
	defer g.recover("error_tone")
	g.sink.PlayErrorTone()
}

func (g *gate) Say(text string) {
	if g.sink == nil || !g.enabled() || !g.ready() {
		return
	}
	defer g.recover("say")
	g.sink.Say(text)
}

// Nop discards everything
type Nop struct{}

func (Nop) PlayTone(Tone, bool) {}
func (Nop) PlayErrorTone()      {}
func (Nop) Say(string)          {}
