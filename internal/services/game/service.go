package game

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/eidetic/internal/board"
	"github.com/KirkDiggler/eidetic/internal/common/clock"
	"github.com/KirkDiggler/eidetic/internal/common/uuid"
	"github.com/KirkDiggler/eidetic/internal/feedback"
	"github.com/KirkDiggler/eidetic/internal/models"
	"github.com/KirkDiggler/eidetic/internal/numerals"
	"github.com/KirkDiggler/eidetic/internal/random"
	profileRepo "github.com/KirkDiggler/eidetic/internal/repositories/profile"
	"github.com/KirkDiggler/eidetic/internal/round"
	"github.com/KirkDiggler/eidetic/internal/sequence"
	"github.com/KirkDiggler/eidetic/internal/services/messaging"
)

// service implements the Service interface
type service struct {
	profileRepo   profileRepo.Repository
	messaging     messaging.Service
	random        random.Source
	clock         clock.Clock
	uuidGenerator uuid.Generator
	feedback      feedback.Sink
	speechReady   func() bool
	logger        *slog.Logger
	maxPasses     int

	mu       sync.Mutex
	sessions map[string]*session
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.ProfileRepo == nil {
		return nil, ErrNilProfileRepo
	}
	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	sink := cfg.Feedback
	if sink == nil {
		sink = feedback.Nop{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ready := cfg.SpeechReady
	if ready == nil {
		ready = func() bool { return true }
	}
	maxPasses := cfg.MaxPlacementPasses
	if maxPasses <= 0 {
		maxPasses = board.DefaultMaxPasses
	}

	return &service{
		profileRepo:   cfg.ProfileRepo,
		messaging:     cfg.Messaging,
		random:        cfg.Random,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		feedback:      sink,
		speechReady:   ready,
		logger:        logger.With("component", "game"),
		maxPasses:     maxPasses,
		sessions:      make(map[string]*session),
	}, nil
}

// GetBoard returns the current round, dealing one if the profile has none
func (s *service) GetBoard(ctx context.Context, input *GetBoardInput) (*GetBoardOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	sess, err := s.lockSession(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	if sess.round == nil {
		if err := s.deal(ctx, sess); err != nil {
			return nil, err
		}
	}

	return &GetBoardOutput{Board: sess.view()}, nil
}

// StartRound deals a fresh round, replacing the current one
func (s *service) StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	sess, err := s.lockSession(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	if err := s.deal(ctx, sess); err != nil {
		return nil, err
	}

	return &StartRoundOutput{Board: sess.view()}, nil
}

// deal shuffles a new sequence onto a new board and resets the star allowance
func (s *service) deal(ctx context.Context, sess *session) error {
	seq := sequence.Generate(s.random)
	b, err := board.Place(seq, s.random, board.WithMaxPasses(s.maxPasses))
	if err != nil {
		return fmt.Errorf("failed to place board: %w", err)
	}

	if err := sess.store.ResetStars(ctx); err != nil {
		s.logStoreError(sess, "reset stars", err)
	}

	r, err := round.New(s.uuidGenerator.NewID(), b, sess.store.StarsAvailable(), s.clock.Now())
	if err != nil {
		return fmt.Errorf("failed to start round: %w", err)
	}

	sess.round = r
	sess.summary = nil

	s.logger.Debug("round dealt",
		"profile_id", sess.store.ID(),
		"round_id", r.ID(),
		"stars", r.StarsAvailable())

	return nil
}

// Tap applies a tap on a board value
func (s *service) Tap(ctx context.Context, input *TapInput) (*TapOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	sess, err := s.lockSession(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	r := sess.round
	if r == nil {
		return nil, ErrNoActiveRound
	}
	if input.RoundID != "" && input.RoundID != r.ID() {
		return nil, ErrStaleRound
	}

	result, err := r.Tap(input.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to tap %d: %w", input.Value, err)
	}

	sink := s.sinkFor(sess, input.Feedback)
	output := &TapOutput{Result: result}

	switch result.Outcome {
	case round.OutcomeAccepted:
		sink.PlayTone(feedback.Tone(result.Value), false)
		if result.Completed {
			sink.PlayTone(feedback.ToneVictory, true)
			output.Summary = s.finish(ctx, sess, true)
		}

	case round.OutcomeRejectedPreStart:
		sink.PlayErrorTone()

	case round.OutcomeForgiven:
		sink.PlayTone(feedback.ToneMistake, true)
		if err := sess.store.DecrementStarsAvailable(ctx); err != nil {
			s.logStoreError(sess, "decrement stars", err)
		}

	case round.OutcomeFatal:
		sink.PlayTone(feedback.ToneMistake, true)
		output.Summary = s.finish(ctx, sess, false)
	}

	prompt, err := s.messaging.GetTapMessage(ctx, &messaging.GetTapMessageInput{
		Outcome:        result.Outcome,
		StarsRemaining: result.StarsRemaining,
	})
	if err != nil {
		return nil, err
	}
	output.Prompt = prompt.Message

	if output.Summary != nil {
		msg, err := s.messaging.GetRoundResultMessage(ctx, &messaging.GetRoundResultMessageInput{
			Summary: output.Summary,
		})
		if err != nil {
			return nil, err
		}
		output.ResultTitle = msg.Title
		output.ResultMessage = msg.Message
	}

	output.Board = sess.view()
	return output, nil
}

// finish applies a terminal round to the player record
func (s *service) finish(ctx context.Context, sess *session, won bool) *models.RoundSummary {
	now := s.clock.Now()
	st := sess.store

	summary := &models.RoundSummary{
		RoundID:    sess.round.ID(),
		Won:        won,
		FinishedAt: now,
	}
	summary.PreviousRecord, summary.HadPreviousRecord = st.FastestTime()

	if won {
		summary.ElapsedSeconds = sess.round.ElapsedSeconds(now)

		if err := st.IncrementStreak(ctx); err != nil {
			s.logStoreError(sess, "increment streak", err)
		}
		newRecord, err := st.UpdateFastestTime(ctx, summary.ElapsedSeconds)
		if err != nil {
			s.logStoreError(sess, "update fastest time", err)
		}
		summary.NewRecord = newRecord
	} else {
		if err := st.ResetStreak(ctx); err != nil {
			s.logStoreError(sess, "reset streak", err)
		}
		if err := st.ResetStars(ctx); err != nil {
			s.logStoreError(sess, "reset stars", err)
		}
	}

	if err := st.UpdateStats(ctx, won); err != nil {
		s.logStoreError(sess, "update stats", err)
	}

	summary.Streak = st.Streak()
	sess.summary = summary

	s.logger.Info("round finished",
		"profile_id", st.ID(),
		"round_id", summary.RoundID,
		"won", won,
		"elapsed_seconds", summary.ElapsedSeconds,
		"new_record", summary.NewRecord,
		"streak", summary.Streak)

	return summary
}

// Reload clears streak and stars and deals a fresh round
func (s *service) Reload(ctx context.Context, input *ReloadInput) (*ReloadOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	sess, err := s.lockSession(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	if err := s.reload(ctx, sess); err != nil {
		return nil, err
	}

	return &ReloadOutput{Board: sess.view()}, nil
}

func (s *service) reload(ctx context.Context, sess *session) error {
	if err := sess.store.ResetStreak(ctx); err != nil {
		s.logStoreError(sess, "reset streak", err)
	}
	// deal resets the stars
	return s.deal(ctx, sess)
}

// ToggleDifficulty flips hard mode and reloads
func (s *service) ToggleDifficulty(ctx context.Context, input *ToggleDifficultyInput) (*ToggleDifficultyOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	sess, err := s.lockSession(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	if err := sess.store.ToggleDifficulty(ctx); err != nil {
		s.logStoreError(sess, "toggle difficulty", err)
	}
	if err := s.reload(ctx, sess); err != nil {
		return nil, err
	}

	hard := sess.store.HardModeOn()
	msg, err := s.messaging.GetModeMessage(ctx, &messaging.GetModeMessageInput{
		Mode: messaging.ModeDifficulty,
		On:   hard,
	})
	if err != nil {
		return nil, err
	}

	return &ToggleDifficultyOutput{
		HardMode: hard,
		Message:  msg.Message,
		Board:    sess.view(),
	}, nil
}

// ToggleSounds flips the sound setting
func (s *service) ToggleSounds(ctx context.Context, input *ToggleSoundsInput) (*ToggleSoundsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	sess, err := s.lockSession(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	if err := sess.store.ToggleSounds(ctx); err != nil {
		s.logStoreError(sess, "toggle sounds", err)
	}

	on := sess.store.SoundsOn()
	msg, err := s.messaging.GetModeMessage(ctx, &messaging.GetModeMessageInput{
		Mode: messaging.ModeSound,
		On:   on,
	})
	if err != nil {
		return nil, err
	}

	return &ToggleSoundsOutput{
		SoundsOn: on,
		Message:  msg.Message,
	}, nil
}

// ChangeLanguage stores the numeral script, relabelling the board if the round has not started
func (s *service) ChangeLanguage(ctx context.Context, input *ChangeLanguageInput) (*ChangeLanguageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if !numerals.Known(input.LanguageID) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLanguage, input.LanguageID)
	}

	sess, err := s.lockSession(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	if err := sess.store.SetLanguage(ctx, input.LanguageID); err != nil {
		s.logStoreError(sess, "set language", err)
	}

	output := &ChangeLanguageOutput{}
	if sess.round != nil {
		// labels are already hidden or cleared once the round started
		output.Relabeled = sess.round.Status().IsNotStarted()
		output.Board = sess.view()
	}

	return output, nil
}

// GetStats returns aggregate statistics
func (s *service) GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	sess, err := s.lockSession(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	st := sess.store
	fastest, hasFastest := st.FastestTime()
	output := &GetStatsOutput{
		Stats:          st.Stats(),
		FastestTime:    fastest,
		HasFastestTime: hasFastest,
		Streak:         st.Streak(),
	}

	msg, err := s.messaging.GetStatsMessage(ctx, &messaging.GetStatsMessageInput{
		Stats:          output.Stats,
		FastestTime:    fastest,
		HasFastestTime: hasFastest,
		Streak:         output.Streak,
	})
	if err != nil {
		return nil, err
	}
	output.Empty = msg.Empty
	output.Title = msg.Title
	output.Message = msg.Message

	return output, nil
}

// ReadResultAloud speaks the result of the last won round
func (s *service) ReadResultAloud(ctx context.Context, input *ReadResultAloudInput) (*ReadResultAloudOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	sess, err := s.lockSession(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	sum := sess.summary
	if sum == nil || !sum.Won {
		return nil, ErrNoResult
	}
	if input.RoundID != "" && input.RoundID != sum.RoundID {
		return nil, ErrStaleRound
	}

	text, err := s.messaging.GetReadAloudText(ctx, &messaging.GetReadAloudTextInput{
		Summary: sum,
	})
	if err != nil {
		return nil, err
	}

	output := &ReadResultAloudOutput{
		Text:   text.Text,
		Spoken: sess.store.SoundsOn() && s.speechReady(),
	}
	s.sinkFor(sess, input.Feedback).Say(text.Text)

	return output, nil
}

// Quit drops the profile's current round
func (s *service) Quit(ctx context.Context, input *QuitInput) (*QuitOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	sess, err := s.lockSession(ctx, input.ProfileID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	sess.round = nil
	sess.summary = nil

	return &QuitOutput{}, nil
}

// sinkFor gates the tap's sink, or the default one, on the profile's sound setting
func (s *service) sinkFor(sess *session, override feedback.Sink) feedback.Sink {
	sink := override
	if sink == nil {
		sink = s.feedback
	}
	return feedback.Gate(sink, sess.store.SoundsOn, s.speechReady, s.logger)
}

func (s *service) logStoreError(sess *session, op string, err error) {
	s.logger.Error("profile store update failed",
		"profile_id", sess.store.ID(),
		"op", op,
		"error", err)
}
