package directory

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/activitydirectory/internal/domain"
)

func TestSeededDirectoryContents(t *testing.T) {
	repo := NewInMemoryRepository()

	activities, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 3)

	chess := activities["Chess Club"]
	require.Equal(t, "Chess Club", chess.Name)
	require.Equal(t, 12, chess.MaxParticipants)
	require.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)
}

func TestListReturnsIsolatedCopies(t *testing.T) {
	repo := NewInMemoryRepository()

	first, err := repo.List(context.Background())
	require.NoError(t, err)
	first["Chess Club"].Participants[0] = "tampered@mergington.edu"
	delete(first, "Gym Class")

	second, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 3)
	require.Equal(t, "michael@mergington.edu", second["Chess Club"].Participants[0])
}

func TestAddParticipantAppendsInOrder(t *testing.T) {
	repo := NewInMemoryRepository()

	activity, err := repo.AddParticipant(context.Background(), "Chess Club", "newstudent@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, []string{
		"michael@mergington.edu",
		"daniel@mergington.edu",
		"newstudent@mergington.edu",
	}, activity.Participants)
}

func TestAddParticipantRejectsDuplicate(t *testing.T) {
	repo := NewInMemoryRepository()

	_, err := repo.AddParticipant(context.Background(), "Chess Club", "michael@mergington.edu")
	require.ErrorIs(t, err, domain.ErrAlreadySignedUp)

	activity, err := repo.Get(context.Background(), "Chess Club")
	require.NoError(t, err)
	require.Len(t, activity.Participants, 2)
}

func TestAddParticipantUnknownActivity(t *testing.T) {
	repo := NewInMemoryRepository()

	_, err := repo.AddParticipant(context.Background(), "Nonexistent Club", "student@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestRemoveParticipantPreservesOrder(t *testing.T) {
	repo := NewInMemoryRepositoryFrom(map[string]domain.Activity{
		"Debate Team": {
			Description:     "Weekly debates",
			Schedule:        "Wednesdays",
			MaxParticipants: 10,
			Participants:    []string{"a@mergington.edu", "b@mergington.edu", "c@mergington.edu"},
		},
	})

	activity, err := repo.RemoveParticipant(context.Background(), "Debate Team", "b@mergington.edu")
	require.NoError(t, err)
	require.Equal(t, []string{"a@mergington.edu", "c@mergington.edu"}, activity.Participants)
}

func TestRemoveParticipantErrors(t *testing.T) {
	repo := NewInMemoryRepository()

	_, err := repo.RemoveParticipant(context.Background(), "Chess Club", "nonexistent@mergington.edu")
	require.ErrorIs(t, err, domain.ErrParticipantNotFound)

	_, err = repo.RemoveParticipant(context.Background(), "Nonexistent Club", "michael@mergington.edu")
	require.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestAddThenRemoveRestoresRoster(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	before, err := repo.Get(ctx, "Programming Class")
	require.NoError(t, err)

	_, err = repo.AddParticipant(ctx, "Programming Class", "workflow@mergington.edu")
	require.NoError(t, err)
	_, err = repo.RemoveParticipant(ctx, "Programming Class", "workflow@mergington.edu")
	require.NoError(t, err)

	after, err := repo.Get(ctx, "Programming Class")
	require.NoError(t, err)
	require.Equal(t, before.Participants, after.Participants)
}

func TestGetUnknownActivityReturnsNil(t *testing.T) {
	repo := NewInMemoryRepository()

	activity, err := repo.Get(context.Background(), "Nonexistent Club")
	require.NoError(t, err)
	require.Nil(t, activity)
}

func TestLoadSeedFile(t *testing.T) {
	seed := map[string]seedRecord{
		"Art Club": {
			Description:     "Painting and drawing",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"amelia@mergington.edu"},
		},
	}
	raw, err := json.Marshal(seed)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "activities.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	loaded, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.Equal(t, "Art Club", loaded["Art Club"].Name)
	require.Equal(t, []string{"amelia@mergington.edu"}, loaded["Art Club"].Participants)
}

func TestLoadSeedFileRejectsBadCapacity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activities.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Art Club": {"max_participants": 0}}`), 0o600))

	_, err := LoadSeedFile(path)
	require.Error(t, err)
}

func TestLoadSeedFileMissing(t *testing.T) {
	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}
