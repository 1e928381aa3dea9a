package profile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/eidetic/internal/models"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	repo *sqliteRepository
	ctx  context.Context
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	repo, err := NewSQLite(s.ctx, &SQLiteConfig{Path: ":memory:"})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *SQLiteRepositoryTestSuite) TearDownTest() {
	s.repo.Close()
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func (s *SQLiteRepositoryTestSuite) TestSaveAndGetProfile() {
	profile := &models.Profile{
		ID:                 "local",
		FastestTimeSeconds: 4,
		HasFastestTime:     true,
		CurrentStreak:      2,
		StarsAvailable:     2,
		TotalGames:         12,
		TotalWins:          9,
		SoundsEnabled:      true,
		HardModeEnabled:    false,
		LanguageID:         5,
	}

	s.Require().NoError(s.repo.SaveProfile(s.ctx, &SaveProfileInput{Profile: profile}))

	retrieved, err := s.repo.GetProfile(s.ctx, &GetProfileInput{ProfileID: "local"})
	s.Require().NoError(err)
	s.Equal(profile, retrieved)
}

func (s *SQLiteRepositoryTestSuite) TestSaveProfile_Upserts() {
	profile := models.NewProfile("local")
	s.Require().NoError(s.repo.SaveProfile(s.ctx, &SaveProfileInput{Profile: profile}))

	profile.HardModeEnabled = true
	profile.StarsAvailable = 0
	s.Require().NoError(s.repo.SaveProfile(s.ctx, &SaveProfileInput{Profile: profile}))

	retrieved, err := s.repo.GetProfile(s.ctx, &GetProfileInput{ProfileID: "local"})
	s.Require().NoError(err)
	s.True(retrieved.HardModeEnabled)
	s.Equal(0, retrieved.StarsAvailable)
}

func (s *SQLiteRepositoryTestSuite) TestGetNonExistentProfile() {
	_, err := s.repo.GetProfile(s.ctx, &GetProfileInput{ProfileID: "nobody"})

	s.ErrorIs(err, ErrProfileNotFound)
}

func (s *SQLiteRepositoryTestSuite) TestDeleteProfile() {
	s.Require().NoError(s.repo.SaveProfile(s.ctx, &SaveProfileInput{Profile: models.NewProfile("local")}))
	s.Require().NoError(s.repo.DeleteProfile(s.ctx, &DeleteProfileInput{ProfileID: "local"}))

	_, err := s.repo.GetProfile(s.ctx, &GetProfileInput{ProfileID: "local"})
	s.ErrorIs(err, ErrProfileNotFound)
}

func TestNewSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "eidetic.db")

	repo, err := NewSQLite(ctx, &SQLiteConfig{Path: path})
	require.NoError(t, err)

	profile := models.NewProfile("local")
	profile.CurrentStreak = 5
	require.NoError(t, repo.SaveProfile(ctx, &SaveProfileInput{Profile: profile}))
	require.NoError(t, repo.Close())

	reopened, err := NewSQLite(ctx, &SQLiteConfig{Path: path})
	require.NoError(t, err)
	defer reopened.Close()

	retrieved, err := reopened.GetProfile(ctx, &GetProfileInput{ProfileID: "local"})
	require.NoError(t, err)
	require.Equal(t, 5, retrieved.CurrentStreak)
}

func TestNewSQLite_Validation(t *testing.T) {
	_, err := NewSQLite(context.Background(), nil)
	require.Error(t, err)

	_, err = NewSQLite(context.Background(), &SQLiteConfig{})
	require.Error(t, err)
}
