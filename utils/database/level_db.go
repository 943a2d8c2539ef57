package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"level-bot/model"
)

// Init opens the leveling database and ensures all necessary tables exist.
func Init(dbPath string) (*sqlx.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	userLevelsSchema := `CREATE TABLE IF NOT EXISTS user_levels (
	          user_id TEXT NOT NULL,
	          guild_id TEXT NOT NULL,
	          total_xp INTEGER NOT NULL DEFAULT 0,
	          level INTEGER NOT NULL DEFAULT 0,
	          messages INTEGER NOT NULL DEFAULT 0,
	          reactions INTEGER NOT NULL DEFAULT 0,
	          voice_time INTEGER NOT NULL DEFAULT 0,
	          PRIMARY KEY(user_id, guild_id)
	      );`
	if _, err := db.Exec(userLevelsSchema); err != nil {
		return nil, fmt.Errorf("failed to create user_levels table: %w", err)
	}

	guildSettingsSchema := `CREATE TABLE IF NOT EXISTS guild_settings (
	          guild_id TEXT NOT NULL PRIMARY KEY,
	          excluded_role TEXT NOT NULL DEFAULT '',
	          levelup_channel TEXT NOT NULL DEFAULT '',
	          xp_multiplier REAL NOT NULL DEFAULT 1.0
	      );`
	if _, err := db.Exec(guildSettingsSchema); err != nil {
		return nil, fmt.Errorf("failed to create guild_settings table: %w", err)
	}

	return db, nil
}

// UpdateResult reports the level transition produced by a single XP gain.
type UpdateResult struct {
	OldLevel int
	NewLevel int
	TotalXP  int64
}

// LevelStore owns all reads and writes of user_levels rows.
type LevelStore struct {
	db *sqlx.DB
}

func NewLevelStore(db *sqlx.DB) *LevelStore {
	return &LevelStore{db: db}
}

// AddXP applies a single award to the (user, guild) aggregate. The XP and
// counter increments happen server-side in one additive upsert, so gains from
// concurrent awards are never dropped, and the stored level only moves up
// (max(level, ?)), which keeps level == levelFor(total_xp) after every commit.
// Both statements run in one transaction: an award either fully commits or
// leaves the prior row untouched.
func (s *LevelStore) AddXP(guildID, userID string, xpGain int64, activity model.ActivityType, voiceSeconds int64, levelFor func(int64) int) (UpdateResult, error) {
	var messages, reactions int64
	switch activity {
	case model.ActivityMessage:
		messages = 1
	case model.ActivityReaction:
		reactions = 1
	case model.ActivityVoice:
		// voiceSeconds carries the increment
	default:
		return UpdateResult{}, fmt.Errorf("unknown activity type %q", activity)
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return UpdateResult{}, fmt.Errorf("failed to begin level update: %w", err)
	}

	upsert := `INSERT INTO user_levels (user_id, guild_id, total_xp, level, messages, reactions, voice_time)
			  VALUES (?, ?, ?, 0, ?, ?, ?)
			  ON CONFLICT(user_id, guild_id) DO UPDATE SET
			      total_xp = total_xp + excluded.total_xp,
			      messages = messages + excluded.messages,
			      reactions = reactions + excluded.reactions,
			      voice_time = voice_time + excluded.voice_time
			  RETURNING total_xp`
	var totalXP int64
	if err := tx.Get(&totalXP, upsert, userID, guildID, xpGain, messages, reactions, voiceSeconds); err != nil {
		tx.Rollback()
		return UpdateResult{}, fmt.Errorf("failed to upsert user level for %s/%s: %w", guildID, userID, err)
	}

	newLevel := levelFor(totalXP)
	if _, err := tx.Exec(`UPDATE user_levels SET level = max(level, ?) WHERE user_id = ? AND guild_id = ?`,
		newLevel, userID, guildID); err != nil {
		tx.Rollback()
		return UpdateResult{}, fmt.Errorf("failed to update level for %s/%s: %w", guildID, userID, err)
	}

	if err := tx.Commit(); err != nil {
		return UpdateResult{}, fmt.Errorf("failed to commit level update: %w", err)
	}

	return UpdateResult{
		OldLevel: levelFor(totalXP - xpGain),
		NewLevel: newLevel,
		TotalXP:  totalXP,
	}, nil
}

// GetUserLevel retrieves the aggregate for a member, or nil when the member
// has never been awarded XP in the guild.
func (s *LevelStore) GetUserLevel(guildID, userID string) (*model.UserLevel, error) {
	var row model.UserLevel
	err := s.db.Get(&row, `SELECT * FROM user_levels WHERE guild_id = ? AND user_id = ?`, guildID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user level for %s/%s: %w", guildID, userID, err)
	}
	return &row, nil
}

// GetTopUsers retrieves up to fetchLimit aggregates for a guild ordered by
// total XP descending, ties broken by user id ascending.
func (s *LevelStore) GetTopUsers(guildID string, fetchLimit int) ([]model.UserLevel, error) {
	var rows []model.UserLevel
	err := s.db.Select(&rows, `SELECT * FROM user_levels WHERE guild_id = ? ORDER BY total_xp DESC, user_id ASC LIMIT ?`,
		guildID, fetchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top users for guild %s: %w", guildID, err)
	}
	return rows, nil
}

// GetTrackedUserCount returns the number of distinct members with a level row.
func (s *LevelStore) GetTrackedUserCount() (int, error) {
	var count int
	if err := s.db.Get(&count, `SELECT COUNT(DISTINCT user_id) FROM user_levels`); err != nil {
		return 0, fmt.Errorf("failed to count tracked users: %w", err)
	}
	return count, nil
}
