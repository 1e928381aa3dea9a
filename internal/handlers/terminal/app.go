// Package terminal is the single-profile tcell front end.
package terminal

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/KirkDiggler/eidetic/internal/feedback"
	"github.com/KirkDiggler/eidetic/internal/models"
	"github.com/KirkDiggler/eidetic/internal/numerals"
	"github.com/KirkDiggler/eidetic/internal/services/game"
)

// Config holds configuration for the terminal app
type Config struct {
	// Screen to draw on; a terminal screen is opened when nil
	Screen tcell.Screen

	GameService game.Service
	ProfileID   string
	Logger      *slog.Logger
}

// App runs one local profile in the terminal
type App struct {
	screen    tcell.Screen
	game      game.Service
	profileID string
	logger    *slog.Logger

	board  *game.BoardView
	result *game.TapOutput
	status string
	speech string
	info   []string
}

// New creates a terminal app
func New(cfg *Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if cfg.ProfileID == "" {
		return nil, errors.New("profile ID cannot be empty")
	}

	screen := cfg.Screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, err
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &App{
		screen:    screen,
		game:      cfg.GameService,
		profileID: cfg.ProfileID,
		logger:    logger.With("component", "terminal"),
	}, nil
}

// Run draws the board and handles input until the player quits or ctx is done
func (a *App) Run(ctx context.Context) error {
	if err := a.screen.Init(); err != nil {
		return err
	}
	defer a.screen.Fini()

	a.screen.EnableMouse()
	a.screen.SetStyle(tcell.StyleDefault)

	if err := a.load(ctx); err != nil {
		return err
	}

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-stop:
		}
	}()

	for {
		a.draw()

		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok && ctx.Err() != nil {
			return nil
		}
		if a.handleEvent(ctx, ev) {
			return nil
		}
	}
}

// load fetches the current board
func (a *App) load(ctx context.Context) error {
	out, err := a.game.GetBoard(ctx, &game.GetBoardInput{ProfileID: a.profileID})
	if err != nil {
		return err
	}
	a.board = out.Board
	return nil
}

// handleEvent applies one input event and reports whether to quit
func (a *App) handleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		return a.handleKey(ctx, ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return false
		}
		if slot, ok := hitTest(ev.Position()); ok && a.board != nil {
			if sv, ok := a.board.At(slot); ok && !sv.Cleared {
				a.tap(ctx, sv.Value)
			}
		}
	}
	return false
}

func (a *App) handleKey(ctx context.Context, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	r := ev.Rune()
	switch {
	case r >= '1' && r <= '9':
		a.tapIndex(ctx, int(r-'1'))
	case r == 'r':
		a.reload(ctx)
	case r == 'l':
		a.cycleLanguage(ctx)
	case r == 's':
		a.stats(ctx)
	case r == 'm':
		a.toggleSound(ctx)
	case r == 'd':
		a.toggleDifficulty(ctx)
	case r == 'p':
		if a.result != nil {
			a.replay(ctx)
		}
	case r == 'a':
		if a.result != nil && a.result.Summary.Won {
			a.readAloud(ctx)
		}
	case r == 'q':
		if _, err := a.game.Quit(ctx, &game.QuitInput{ProfileID: a.profileID}); err != nil {
			a.logger.Warn("quit failed", "error", err)
		}
		return true
	}
	return false
}

// tapIndex taps the k-th occupied slot in reading order
func (a *App) tapIndex(ctx context.Context, k int) {
	if a.board == nil || k < 0 || k >= len(a.board.Slots) {
		return
	}
	sv := a.board.Slots[k]
	if sv.Cleared {
		return
	}
	a.tap(ctx, sv.Value)
}

func (a *App) tap(ctx context.Context, value int) {
	if a.result != nil {
		return
	}

	a.info = nil
	out, err := a.game.Tap(ctx, &game.TapInput{
		ProfileID: a.profileID,
		RoundID:   a.board.RoundID,
		Value:     value,
		Feedback:  &screenSink{app: a},
	})
	if err != nil {
		a.fail("tap", err)
		return
	}

	a.board = out.Board
	a.status = out.Prompt
	if out.Summary != nil {
		a.result = out
	}
}

func (a *App) reload(ctx context.Context) {
	out, err := a.game.Reload(ctx, &game.ReloadInput{ProfileID: a.profileID})
	if err != nil {
		a.fail("reload", err)
		return
	}
	a.newBoard(out.Board, "Reloaded. Streak cleared.")
}

func (a *App) replay(ctx context.Context) {
	out, err := a.game.StartRound(ctx, &game.StartRoundInput{ProfileID: a.profileID})
	if err != nil {
		a.fail("replay", err)
		return
	}
	a.newBoard(out.Board, "")
}

func (a *App) toggleDifficulty(ctx context.Context) {
	out, err := a.game.ToggleDifficulty(ctx, &game.ToggleDifficultyInput{ProfileID: a.profileID})
	if err != nil {
		a.fail("toggle difficulty", err)
		return
	}
	a.newBoard(out.Board, out.Message)
}

func (a *App) newBoard(board *game.BoardView, status string) {
	a.board = board
	a.result = nil
	a.info = nil
	a.speech = ""
	a.status = status
}

func (a *App) toggleSound(ctx context.Context) {
	out, err := a.game.ToggleSounds(ctx, &game.ToggleSoundsInput{ProfileID: a.profileID})
	if err != nil {
		a.fail("toggle sound", err)
		return
	}
	if a.board != nil {
		a.board.SoundsOn = out.SoundsOn
	}
	a.status = out.Message
}

func (a *App) cycleLanguage(ctx context.Context) {
	current := numerals.English
	if a.board != nil {
		current = a.board.LanguageID
	}
	next := numerals.Next(current)

	out, err := a.game.ChangeLanguage(ctx, &game.ChangeLanguageInput{
		ProfileID:  a.profileID,
		LanguageID: next,
	})
	if err != nil {
		a.fail("change language", err)
		return
	}
	if out.Board != nil {
		a.board = out.Board
	}

	sys, _ := numerals.Lookup(next)
	a.status = "Numerals: " + sys.Name + " (" + sys.NativeName() + ")"
	if !out.Relabeled {
		a.status += ", from the next round"
	}
}

func (a *App) stats(ctx context.Context) {
	out, err := a.game.GetStats(ctx, &game.GetStatsInput{ProfileID: a.profileID})
	if err != nil {
		a.fail("stats", err)
		return
	}
	a.info = append([]string{out.Title}, splitLines(out.Message)...)
}

func (a *App) readAloud(ctx context.Context) {
	out, err := a.game.ReadResultAloud(ctx, &game.ReadResultAloudInput{
		ProfileID: a.profileID,
		RoundID:   a.result.Summary.RoundID,
		Feedback:  &screenSink{app: a},
	})
	if err != nil {
		a.fail("read aloud", err)
		return
	}
	if !out.Spoken {
		a.status = "Sounds are off."
	}
}

func (a *App) fail(op string, err error) {
	a.logger.Warn("action failed", "op", op, "error", err)
	a.status = err.Error()
}

// screenSink beeps for tones and shows speech on the speech line
type screenSink struct {
	app *App
}

func (s *screenSink) PlayTone(kind feedback.Tone, long bool) {
	s.beep()
}

func (s *screenSink) PlayErrorTone() {
	s.beep()
}

func (s *screenSink) Say(text string) {
	s.app.speech = "🗣 " + text
}

func (s *screenSink) beep() {
	if err := s.app.screen.Beep(); err != nil {
		s.app.logger.Debug("beep failed", "error", err)
	}
}

// slotOrigin returns the top-left corner of a slot's box
func slotOrigin(slot models.Slot) (int, int) {
	return gridX + slot.Col*cellW, gridY + slot.Row*cellH
}

// hitTest maps a screen position to the slot drawn there
func hitTest(x, y int) (models.Slot, bool) {
	if x < gridX || y < gridY {
		return models.Slot{}, false
	}
	slot := models.Slot{Row: (y - gridY) / cellH, Col: (x - gridX) / cellW}
	if !slot.InBounds(models.BoardRows, models.BoardCols) {
		return models.Slot{}, false
	}
	return slot, true
}
