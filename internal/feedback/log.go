package feedback

import (
	"log/slog"
)

// LogSink records cues as debug log lines; useful headless and in development
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a sink writing to logger
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger.With("component", "feedback")}
}

func (s *LogSink) PlayTone(kind Tone, long bool) {
	s.logger.Debug("tone", "kind", int(kind), "long", long)
}

func (s *LogSink) PlayErrorTone() {
	s.logger.Debug("error tone")
}

func (s *LogSink) Say(text string) {
	s.logger.Info("say", "text", text)
}

// Recorder keeps every cue in memory. Front ends use it to turn a tap's
// feedback into something they can render along with the response.
type Recorder struct {
	Cues []Cue
}

// Cue is one recorded feedback call
type Cue struct {
	Tone   Tone
	Long   bool
	Error  bool
	Speech string
}

func (r *Recorder) PlayTone(kind Tone, long bool) {
	r.Cues = append(r.Cues, Cue{Tone: kind, Long: long})
}

func (r *Recorder) PlayErrorTone() {
	r.Cues = append(r.Cues, Cue{Error: true})
}

func (r *Recorder) Say(text string) {
	r.Cues = append(r.Cues, Cue{Speech: text})
}
