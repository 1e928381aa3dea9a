package messaging

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/KirkDiggler/eidetic/internal/random"
	"github.com/KirkDiggler/eidetic/internal/round"
)

// Speech bonus thresholds
const (
	soFastSeconds = 5
)

var (
	// ErrNilSummary is returned when a round message is requested without a summary
	ErrNilSummary = errors.New("round summary cannot be nil")

	// ErrNoResultToRead is returned when read-aloud is requested for a lost round
	ErrNoResultToRead = errors.New("only a won round can be read aloud")
)

var streakMilestones = map[int]string{
	5:  "Five in a row!",
	10: "Ten wins in a row, incredible!",
	25: "Twenty five in a row. You are a legend!",
}

// service implements the Service interface
type service struct {
	rand    random.Source
	printer *message.Printer
}

// NewService creates a new messaging service
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	src := cfg.Random
	if src == nil {
		src = random.New(&random.Config{})
	}

	locale := cfg.Locale
	if locale == language.Und {
		locale = language.English
	}

	return &service{
		rand:    src,
		printer: message.NewPrinter(locale),
	}, nil
}

func (s *service) pick(messages []string) string {
	i := int(s.rand.Float64() * float64(len(messages)))
	if i >= len(messages) {
		i = len(messages) - 1
	}
	return messages[i]
}

// GetTapMessage returns the prompt shown after a tap, if any
func (s *service) GetTapMessage(ctx context.Context, input *GetTapMessageInput) (*GetTapMessageOutput, error) {
	switch input.Outcome {
	case round.OutcomeRejectedPreStart:
		return &GetTapMessageOutput{Message: "Please start with 1"}, nil
	case round.OutcomeForgiven:
		stars := strings.Repeat("⭐", input.StarsRemaining)
		if input.StarsRemaining == 0 {
			return &GetTapMessageOutput{Message: "Careful! That was your last star."}, nil
		}
		return &GetTapMessageOutput{
			Message: s.printer.Sprintf("Oops! Stars left: %s", stars),
		}, nil
	default:
		return &GetTapMessageOutput{}, nil
	}
}

// GetRoundResultMessage returns the title and body of the end-of-round modal
func (s *service) GetRoundResultMessage(ctx context.Context, input *GetRoundResultMessageInput) (*GetRoundResultMessageOutput, error) {
	if input == nil || input.Summary == nil {
		return nil, ErrNilSummary
	}
	sum := input.Summary

	if !sum.Won {
		return &GetRoundResultMessageOutput{
			Title: "😖 Game over!",
			Message: s.pick([]string{
				"Memory slipped. Shake it off and go again.",
				"So close. The numbers were right there.",
				"That one got away. Try another round?",
			}),
		}, nil
	}

	title := s.printer.Sprintf("🤩 You win!\n🙌 Streak: %d", sum.Streak)

	var body string
	switch {
	case sum.NewRecord && sum.HadPreviousRecord:
		body = s.printer.Sprintf("New record! You took %d seconds, beating your previous best of %d seconds.",
			sum.ElapsedSeconds, sum.PreviousRecord)
	case sum.NewRecord:
		body = s.printer.Sprintf("You took %d seconds. That is your first record!", sum.ElapsedSeconds)
	default:
		body = s.printer.Sprintf("You took %d seconds. Your record is %d seconds.",
			sum.ElapsedSeconds, sum.PreviousRecord)
	}

	return &GetRoundResultMessageOutput{
		Title:   title,
		Message: body,
	}, nil
}

// GetStatsMessage returns the statistics dialog text
func (s *service) GetStatsMessage(ctx context.Context, input *GetStatsMessageInput) (*GetStatsMessageOutput, error) {
	if !input.Stats.HasGames() {
		return &GetStatsMessageOutput{
			Title:   "Stats",
			Message: "Nothing to display yet. Finish a round first!",
			Empty:   true,
		}, nil
	}

	var b strings.Builder
	b.WriteString(s.printer.Sprintf("Total games: %d\n", input.Stats.TotalGames))
	b.WriteString(s.printer.Sprintf("Total wins: %d\n", input.Stats.TotalWins))
	b.WriteString(s.printer.Sprintf("Win rate: %.2f %%\n", input.Stats.WinRate()))
	b.WriteString(s.printer.Sprintf("Current streak: %d", input.Streak))
	if input.HasFastestTime {
		b.WriteString(s.printer.Sprintf("\nFastest time: %d seconds", input.FastestTime))
	}

	return &GetStatsMessageOutput{
		Title:   "Stats",
		Message: b.String(),
	}, nil
}

// GetReadAloudText returns what is spoken when the result is read aloud
func (s *service) GetReadAloudText(ctx context.Context, input *GetReadAloudTextInput) (*GetReadAloudTextOutput, error) {
	if input == nil || input.Summary == nil {
		return nil, ErrNilSummary
	}
	sum := input.Summary
	if !sum.Won {
		return nil, ErrNoResultToRead
	}

	parts := []string{s.printer.Sprintf("You took %d seconds.", sum.ElapsedSeconds)}

	if sum.NewRecord {
		parts = append(parts, "That's a new record!")
	}
	if phrase, ok := streakMilestones[sum.Streak]; ok {
		parts = append(parts, phrase)
	}
	switch {
	case sum.ElapsedSeconds == soFastSeconds:
		parts = append(parts, "So fast!")
	case sum.ElapsedSeconds < soFastSeconds:
		parts = append(parts, "Super fast!")
	}

	return &GetReadAloudTextOutput{
		Text: strings.Join(parts, " "),
	}, nil
}

// GetModeMessage returns the notice shown after toggling difficulty or sound
func (s *service) GetModeMessage(ctx context.Context, input *GetModeMessageInput) (*GetModeMessageOutput, error) {
	switch input.Mode {
	case ModeDifficulty:
		if input.On {
			return &GetModeMessageOutput{Message: "HARD MODE"}, nil
		}
		return &GetModeMessageOutput{Message: "EASY MODE"}, nil
	case ModeSound:
		if input.On {
			return &GetModeMessageOutput{Message: "🔊 Sounds on"}, nil
		}
		return &GetModeMessageOutput{Message: "🔇 Sounds off"}, nil
	default:
		return &GetModeMessageOutput{}, nil
	}
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	switch {
	case input == nil || input.Err == nil:
		return &GetErrorMessageOutput{}, nil
	case errors.Is(input.Err, round.ErrRoundOver):
		return &GetErrorMessageOutput{
			Title:   "Round over",
			Message: "This round has finished. Start a new one to keep playing.",
		}, nil
	case errors.Is(input.Err, round.ErrInvalidValue):
		return &GetErrorMessageOutput{
			Title:   "Not on the board",
			Message: "Only the numbers 1 to 9 are on the board.",
		}, nil
	default:
		return &GetErrorMessageOutput{
			Title:   "Something went wrong",
			Message: "Please try again in a moment.",
		}, nil
	}
}
