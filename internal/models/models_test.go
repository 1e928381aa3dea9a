package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProfileDefaults(t *testing.T) {
	p := NewProfile("p1")

	assert.Equal(t, "p1", p.ID)
	assert.True(t, p.SoundsEnabled)
	assert.False(t, p.HardModeEnabled)
	assert.Equal(t, 0, p.LanguageID)
	assert.Equal(t, EasyModeStars, p.StarsAvailable)
	assert.False(t, p.HasFastestTime)
}

func TestBaseStars(t *testing.T) {
	p := NewProfile("p1")
	assert.Equal(t, EasyModeStars, p.BaseStars())

	p.HardModeEnabled = true
	assert.Equal(t, HardModeStars, p.BaseStars())
}

func TestWinRate(t *testing.T) {
	assert.Equal(t, 0.0, Stats{}.WinRate())
	assert.False(t, Stats{}.HasGames())
	assert.Equal(t, 50.0, Stats{TotalGames: 4, TotalWins: 2}.WinRate())
}

func TestBoardLookups(t *testing.T) {
	b := &Board{
		Rows: BoardRows,
		Cols: BoardCols,
		Placements: []Placement{
			{Slot: Slot{Row: 4, Col: 1}, Value: 1},
			{Slot: Slot{Row: 0, Col: 2}, Value: 2},
		},
	}

	assert.Equal(t, 1, b.ValueAt(Slot{Row: 4, Col: 1}))
	assert.Equal(t, 0, b.ValueAt(Slot{}))

	slot, ok := b.SlotOf(2)
	assert.True(t, ok)
	assert.Equal(t, Slot{Row: 0, Col: 2}, slot)
	_, ok = b.SlotOf(9)
	assert.False(t, ok)

	assert.Equal(t, []Placement{
		{Slot: Slot{Row: 0, Col: 2}, Value: 2},
		{Slot: Slot{Row: 4, Col: 1}, Value: 1},
	}, b.RowMajor())
}

func TestRoundStatus(t *testing.T) {
	assert.True(t, RoundStatusNotStarted.IsNotStarted())
	assert.True(t, RoundStatusInProgress.IsInProgress())
	assert.False(t, RoundStatusInProgress.IsOver())
	assert.True(t, RoundStatusWon.IsOver())
	assert.True(t, RoundStatusLost.IsOver())
}
