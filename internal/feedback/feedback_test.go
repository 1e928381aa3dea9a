package feedback_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/eidetic/internal/feedback"
	"github.com/KirkDiggler/eidetic/internal/feedback/mocks"
)

type GateTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockSink *mocks.MockSink
	logs     *bytes.Buffer
	logger   *slog.Logger
	enabled  bool
	ready    bool
	gate     feedback.Sink
}

func (s *GateTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSink = mocks.NewMockSink(s.mockCtrl)
	s.logs = &bytes.Buffer{}
	s.logger = slog.New(slog.NewTextHandler(s.logs, nil))
	s.enabled = true
	s.ready = true
	s.gate = feedback.Gate(s.mockSink,
		func() bool { return s.enabled },
		func() bool { return s.ready },
		s.logger)
}

func (s *GateTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGateSuite(t *testing.T) {
	suite.Run(t, new(GateTestSuite))
}

func (s *GateTestSuite) TestForwardsWhenEnabled() {
	s.mockSink.EXPECT().PlayTone(feedback.Tone(3), false)
	s.mockSink.EXPECT().PlayErrorTone()
	s.mockSink.EXPECT().Say("hello")

	s.gate.PlayTone(3, false)
	s.gate.PlayErrorTone()
	s.gate.Say("hello")
}

func (s *GateTestSuite) TestDropsEverythingWhenDisabled() {
	s.enabled = false

	// no expectations: any call on the mock fails the test
	s.gate.PlayTone(feedback.ToneVictory, true)
	s.gate.PlayErrorTone()
	s.gate.Say("hello")
}

func (s *GateTestSuite) TestDropsSpeechUntilReady() {
	s.ready = false
	s.mockSink.EXPECT().PlayTone(feedback.ToneMistake, true)

	s.gate.PlayTone(feedback.ToneMistake, true)
	s.gate.Say("not yet")

	s.ready = true
	s.mockSink.EXPECT().Say("now")
	s.gate.Say("now")
}

func (s *GateTestSuite) TestRecoversPanics() {
	s.mockSink.EXPECT().Say("boom").Do(func(string) { panic("device gone") })

	s.NotPanics(func() { s.gate.Say("boom") })
	s.Contains(s.logs.String(), "feedback sink failed")
	s.Contains(s.logs.String(), "device gone")
}

func TestGateNilSink(t *testing.T) {
	g := feedback.Gate(nil, nil, nil, nil)

	assert.NotPanics(t, func() {
		g.PlayTone(1, false)
		g.PlayErrorTone()
		g.Say("x")
	})
}

func TestRecorder(t *testing.T) {
	r := &feedback.Recorder{}

	r.PlayTone(2, false)
	r.PlayErrorTone()
	r.Say("hi")

	assert.Equal(t, []feedback.Cue{
		{Tone: 2},
		{Error: true},
		{Speech: "hi"},
	}, r.Cues)
}

func TestLogSink(t *testing.T) {
	buf := &bytes.Buffer{}
	sink := feedback.NewLogSink(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	sink.PlayTone(feedback.ToneVictory, true)
	sink.Say("You took 4 seconds.")

	assert.Contains(t, buf.String(), "kind=10")
	assert.Contains(t, buf.String(), "long=true")
	assert.Contains(t, buf.String(), `text="You took 4 seconds."`)
}
