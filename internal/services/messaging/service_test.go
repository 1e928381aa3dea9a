package messaging

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/eidetic/internal/models"
	randomMocks "github.com/KirkDiggler/eidetic/internal/random/mocks"
	"github.com/KirkDiggler/eidetic/internal/round"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRandom *randomMocks.MockSource
	svc        Service
	ctx        context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRandom = randomMocks.NewMockSource(s.mockCtrl)
	s.mockRandom.EXPECT().Float64().Return(0.0).AnyTimes()
	s.ctx = context.Background()

	svc, err := NewService(&Config{Random: s.mockRandom})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *MessagingServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestTapMessage() {
	testCases := []struct {
		name     string
		input    *GetTapMessageInput
		expected string
	}{
		{
			name:     "wrong first tap",
			input:    &GetTapMessageInput{Outcome: round.OutcomeRejectedPreStart},
			expected: "Please start with 1",
		},
		{
			name:     "forgiven with a star left",
			input:    &GetTapMessageInput{Outcome: round.OutcomeForgiven, StarsRemaining: 1},
			expected: "Oops! Stars left: ⭐",
		},
		{
			name:     "forgiven with the last star",
			input:    &GetTapMessageInput{Outcome: round.OutcomeForgiven, StarsRemaining: 0},
			expected: "Careful! That was your last star.",
		},
		{
			name:     "accepted",
			input:    &GetTapMessageInput{Outcome: round.OutcomeAccepted},
			expected: "",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.svc.GetTapMessage(s.ctx, tc.input)
			s.Require().NoError(err)
			s.Equal(tc.expected, out.Message)
		})
	}
}

func (s *MessagingServiceTestSuite) TestRoundResultWin() {
	// Act
	out, err := s.svc.GetRoundResultMessage(s.ctx, &GetRoundResultMessageInput{
		Summary: &models.RoundSummary{
			Won:               true,
			ElapsedSeconds:    7,
			PreviousRecord:    9,
			HadPreviousRecord: true,
			NewRecord:         true,
			Streak:            3,
		},
	})

	// Assert
	s.Require().NoError(err)
	s.Equal("🤩 You win!\n🙌 Streak: 3", out.Title)
	s.Equal("New record! You took 7 seconds, beating your previous best of 9 seconds.", out.Message)
}

func (s *MessagingServiceTestSuite) TestRoundResultWinWithoutRecord() {
	out, err := s.svc.GetRoundResultMessage(s.ctx, &GetRoundResultMessageInput{
		Summary: &models.RoundSummary{
			Won:               true,
			ElapsedSeconds:    12,
			PreviousRecord:    9,
			HadPreviousRecord: true,
			Streak:            1,
		},
	})

	s.Require().NoError(err)
	s.Equal("You took 12 seconds. Your record is 9 seconds.", out.Message)
}

func (s *MessagingServiceTestSuite) TestRoundResultLoss() {
	out, err := s.svc.GetRoundResultMessage(s.ctx, &GetRoundResultMessageInput{
		Summary: &models.RoundSummary{Won: false},
	})

	s.Require().NoError(err)
	s.Equal("😖 Game over!", out.Title)
	s.Equal("Memory slipped. Shake it off and go again.", out.Message)
}

func (s *MessagingServiceTestSuite) TestRoundResultNilSummary() {
	_, err := s.svc.GetRoundResultMessage(s.ctx, &GetRoundResultMessageInput{})
	s.ErrorIs(err, ErrNilSummary)
}

func (s *MessagingServiceTestSuite) TestStatsNothingToDisplay() {
	out, err := s.svc.GetStatsMessage(s.ctx, &GetStatsMessageInput{})

	s.Require().NoError(err)
	s.True(out.Empty)
	s.Contains(out.Message, "Nothing to display")
}

func (s *MessagingServiceTestSuite) TestStatsWinRate() {
	out, err := s.svc.GetStatsMessage(s.ctx, &GetStatsMessageInput{
		Stats:          models.Stats{TotalGames: 3, TotalWins: 2},
		FastestTime:    6,
		HasFastestTime: true,
		Streak:         2,
	})

	s.Require().NoError(err)
	s.False(out.Empty)
	s.Contains(out.Message, "Total games: 3")
	s.Contains(out.Message, "Total wins: 2")
	s.Contains(out.Message, "Win rate: 66.67 %")
	s.Contains(out.Message, "Current streak: 2")
	s.Contains(out.Message, "Fastest time: 6 seconds")
}

func (s *MessagingServiceTestSuite) TestReadAloudText() {
	testCases := []struct {
		name     string
		summary  *models.RoundSummary
		expected string
	}{
		{
			name:     "plain",
			summary:  &models.RoundSummary{Won: true, ElapsedSeconds: 12, Streak: 2},
			expected: "You took 12 seconds.",
		},
		{
			name:     "new record and five streak at five seconds",
			summary:  &models.RoundSummary{Won: true, ElapsedSeconds: 5, Streak: 5, NewRecord: true},
			expected: "You took 5 seconds. That's a new record! Five in a row! So fast!",
		},
		{
			name:     "super fast",
			summary:  &models.RoundSummary{Won: true, ElapsedSeconds: 3, Streak: 10},
			expected: "You took 3 seconds. Ten wins in a row, incredible! Super fast!",
		},
		{
			name:     "streak between milestones",
			summary:  &models.RoundSummary{Won: true, ElapsedSeconds: 8, Streak: 24},
			expected: "You took 8 seconds.",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.svc.GetReadAloudText(s.ctx, &GetReadAloudTextInput{Summary: tc.summary})
			s.Require().NoError(err)
			s.Equal(tc.expected, out.Text)
		})
	}
}

func (s *MessagingServiceTestSuite) TestReadAloudRejectsLoss() {
	_, err := s.svc.GetReadAloudText(s.ctx, &GetReadAloudTextInput{
		Summary: &models.RoundSummary{Won: false},
	})
	s.ErrorIs(err, ErrNoResultToRead)
}

func (s *MessagingServiceTestSuite) TestModeMessage() {
	out, err := s.svc.GetModeMessage(s.ctx, &GetModeMessageInput{Mode: ModeDifficulty, On: true})
	s.Require().NoError(err)
	s.Equal("HARD MODE", out.Message)

	out, err = s.svc.GetModeMessage(s.ctx, &GetModeMessageInput{Mode: ModeDifficulty})
	s.Require().NoError(err)
	s.Equal("EASY MODE", out.Message)
}

func (s *MessagingServiceTestSuite) TestErrorMessage() {
	out, err := s.svc.GetErrorMessage(s.ctx, &GetErrorMessageInput{
		Err: fmt.Errorf("tap: %w", round.ErrRoundOver),
	})
	s.Require().NoError(err)
	s.Equal("Round over", out.Title)

	out, err = s.svc.GetErrorMessage(s.ctx, &GetErrorMessageInput{
		Err: fmt.Errorf("redis down"),
	})
	s.Require().NoError(err)
	s.Equal("Something went wrong", out.Title)
}
