package models

// Profile is the persisted player record. One profile exists per player; the
// terminal client uses a single local profile, the Discord bot one per user.
type Profile struct {
	// ID identifies the profile (Discord user ID or a local profile name)
	ID string

	// FastestTimeSeconds is the best winning time. Only meaningful when HasFastestTime is set.
	FastestTimeSeconds int

	// HasFastestTime reports whether any round has been won yet
	HasFastestTime bool

	// CurrentStreak counts consecutive wins without a loss or reload
	CurrentStreak int

	// StarsAvailable is the number of mistakes that will still be forgiven this round
	StarsAvailable int

	// TotalGames counts every finished round, won or lost
	TotalGames int

	// TotalWins counts won rounds
	TotalWins int

	// SoundsEnabled gates tones and speech
	SoundsEnabled bool

	// HardModeEnabled removes mistake tolerance
	HardModeEnabled bool

	// LanguageID selects the numeral system used for labels
	LanguageID int
}

const (
	// EasyModeStars is the per-round mistake allowance in easy mode
	EasyModeStars = 2

	// HardModeStars is the per-round mistake allowance in hard mode
	HardModeStars = 0
)

// NewProfile returns a profile with first-launch defaults.
func NewProfile(id string) *Profile {
	return &Profile{
		ID:             id,
		StarsAvailable: EasyModeStars,
		SoundsEnabled:  true,
	}
}

// BaseStars returns the mistake allowance a round starts with for the profile's difficulty.
func (p *Profile) BaseStars() int {
	if p.HardModeEnabled {
		return HardModeStars
	}
	return EasyModeStars
}

// Stats is the read-only aggregate view shown by the stats menu
type Stats struct {
	TotalGames int
	TotalWins  int
}

// HasGames reports whether there is anything to display.
func (s Stats) HasGames() bool {
	return s.TotalGames > 0
}

// WinRate returns 100 × wins / games, or 0 when no games were played.
func (s Stats) WinRate() float64 {
	if s.TotalGames == 0 {
		return 0
	}
	return 100.0 * float64(s.TotalWins) / float64(s.TotalGames)
}
