package leveling

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"level-bot/model"
	"level-bot/utils/database"
)

func newRankedEngine(t *testing.T, awards map[string]int) (*Engine, *database.SettingsStore) {
	t.Helper()
	db, err := database.Init(filepath.Join(t.TempDir(), "levels.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	settings := database.NewSettingsStore(db)
	engine := NewEngine(database.NewLevelStore(db), settings, model.LevelingConfig{
		Curve: model.CurveConfig{Shape: ShapeExponential, Multiplier: 1.75, MaxLevel: 50},
	})

	now := time.Now()
	for userID, xp := range awards {
		// One deterministic award per member.
		cfg := fixedAwardConfig(xp, 0)
		engine.Reload(cfg)
		engine.AwardActivity(model.ActivityEvent{
			UserID: userID, GuildID: "g1", Type: model.ActivityMessage, Timestamp: now,
		})
	}
	return engine, settings
}

func setExcludedRole(t *testing.T, settings *database.SettingsStore, roleID string) {
	t.Helper()
	row, err := settings.Get("g1")
	require.NoError(t, err)
	row.ExcludedRole = roleID
	require.NoError(t, settings.Set(row))
}

func TestLeaderboardPartitionAndTruncation(t *testing.T) {
	engine, settings := newRankedEngine(t, map[string]int{
		"king": 900, "u1": 800, "u2": 700, "u3": 600, "u4": 500,
	})
	setExcludedRole(t, settings, "king-role")

	oracle := func(userID, roleID string) (bool, error) {
		return userID == "king" && roleID == "king-role", nil
	}

	board, err := engine.Leaderboard("g1", 3, oracle)
	require.NoError(t, err)

	require.Len(t, board.Excluded, 1)
	assert.Equal(t, "king", board.Excluded[0].UserID)

	require.Len(t, board.Regular, 3)
	assert.Equal(t, []string{"u1", "u2", "u3"}, entryIDs(board.Regular))
	for _, e := range board.Regular {
		assert.NotEqual(t, "king", e.UserID, "excluded members never appear in the regular partition")
	}

	assertDescendingXP(t, board.Excluded)
	assertDescendingXP(t, board.Regular)
}

func TestLeaderboardOracleFailureSkipsMember(t *testing.T) {
	engine, settings := newRankedEngine(t, map[string]int{
		"u1": 900, "broken": 800, "u2": 700,
	})
	setExcludedRole(t, settings, "king-role")

	oracle := func(userID, roleID string) (bool, error) {
		if userID == "broken" {
			return false, errors.New("member left")
		}
		return false, nil
	}

	board, err := engine.Leaderboard("g1", 10, oracle)
	require.NoError(t, err)
	assert.Empty(t, board.Excluded)
	assert.Equal(t, []string{"u1", "u2"}, entryIDs(board.Regular))
}

func TestLeaderboardNoExcludedRoleSkipsOracle(t *testing.T) {
	engine, _ := newRankedEngine(t, map[string]int{"u1": 500})

	oracle := func(userID, roleID string) (bool, error) {
		t.Fatal("oracle must not be consulted when no excluded role is configured")
		return false, nil
	}

	board, err := engine.Leaderboard("g1", 10, oracle)
	require.NoError(t, err)
	assert.Empty(t, board.Excluded)
	assert.Equal(t, []string{"u1"}, entryIDs(board.Regular))
}

func TestLeaderboardRanksAreSequentialPerPartition(t *testing.T) {
	engine, settings := newRankedEngine(t, map[string]int{
		"king": 900, "u1": 800, "u2": 700,
	})
	setExcludedRole(t, settings, "king-role")

	oracle := func(userID, roleID string) (bool, error) {
		return userID == "king", nil
	}

	board, err := engine.Leaderboard("g1", 10, oracle)
	require.NoError(t, err)
	for idx, e := range board.Excluded {
		assert.Equal(t, idx+1, e.Rank)
	}
	for idx, e := range board.Regular {
		assert.Equal(t, idx+1, e.Rank)
	}
}

func entryIDs(entries []model.LeaderboardEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.UserID)
	}
	return ids
}

func assertDescendingXP(t *testing.T, entries []model.LeaderboardEntry) {
	t.Helper()
	for n := 1; n < len(entries); n++ {
		assert.GreaterOrEqual(t, entries[n-1].TotalXP, entries[n].TotalXP)
	}
}
