package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/KirkDiggler/eidetic/internal/models"
	"github.com/KirkDiggler/eidetic/internal/numerals"
	"github.com/KirkDiggler/eidetic/internal/round"
	"github.com/KirkDiggler/eidetic/internal/services/profile"
)

// session is everything the service holds for one profile
type session struct {
	mu      sync.Mutex
	store   *profile.Store
	round   *round.Round
	summary *models.RoundSummary
}

// lockSession returns the profile's session locked, loading the profile on first use.
// The caller must unlock it.
func (s *service) lockSession(ctx context.Context, profileID string) (*session, error) {
	if profileID == "" {
		return nil, ErrEmptyProfileID
	}

	s.mu.Lock()
	sess, ok := s.sessions[profileID]
	if !ok {
		sess = &session{}
		s.sessions[profileID] = sess
	}
	s.mu.Unlock()

	sess.mu.Lock()
	if sess.store == nil {
		store, err := profile.Load(ctx, &profile.Config{
			Repository: s.profileRepo,
			ProfileID:  profileID,
		})
		if err != nil {
			sess.mu.Unlock()
			return nil, fmt.Errorf("failed to open session: %w", err)
		}
		sess.store = store
	}

	return sess, nil
}

// view renders the session's round for a front end
func (sess *session) view() *BoardView {
	r := sess.round
	st := sess.store
	lang := st.Language()

	b := r.Board()
	v := &BoardView{
		RoundID:        r.ID(),
		Rows:           b.Rows,
		Cols:           b.Cols,
		Slots:          make([]SlotView, 0, len(b.Placements)),
		Status:         r.Status(),
		Expected:       r.Expected(),
		StarsAvailable: r.StarsAvailable(),
		HardMode:       st.HardModeOn(),
		SoundsOn:       st.SoundsOn(),
		LanguageID:     lang,
		Streak:         st.Streak(),
	}

	for _, p := range b.RowMajor() {
		sv := SlotView{
			Slot:  p.Slot,
			Value: p.Value,
		}
		switch {
		case r.IsCleared(p.Value):
			sv.Cleared = true
		case r.LabelsHidden():
			sv.Hidden = true
			sv.Label = HiddenLabel
		default:
			sv.Label = numerals.Glyph(lang, p.Value)
		}
		v.Slots = append(v.Slots, sv)
	}

	return v
}
