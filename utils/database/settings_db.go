package database

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"

	"level-bot/model"
)

// DefaultXPMultiplier is applied to guilds that have never been configured.
const DefaultXPMultiplier = 1.0

// SettingsStore owns guild_settings rows plus a small read cache. Settings
// are read on every award (multiplier) and leaderboard (excluded role), so
// hits skip the database; writes and guild eviction invalidate the entry.
type SettingsStore struct {
	db    *sqlx.DB
	mu    sync.Mutex
	cache map[string]model.GuildSettings
}

func NewSettingsStore(db *sqlx.DB) *SettingsStore {
	return &SettingsStore{db: db, cache: make(map[string]model.GuildSettings)}
}

// Get returns the settings for a guild, creating the default row when the
// guild is seen for the first time.
func (s *SettingsStore) Get(guildID string) (model.GuildSettings, error) {
	s.mu.Lock()
	if cached, ok := s.cache[guildID]; ok {
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	var row model.GuildSettings
	err := s.db.Get(&row, `SELECT * FROM guild_settings WHERE guild_id = ?`, guildID)
	if errors.Is(err, sql.ErrNoRows) {
		row = model.GuildSettings{GuildID: guildID, XPMultiplier: DefaultXPMultiplier}
		if _, err := s.db.NamedExec(`INSERT OR IGNORE INTO guild_settings (guild_id, excluded_role, levelup_channel, xp_multiplier)
				VALUES (:guild_id, :excluded_role, :levelup_channel, :xp_multiplier)`, row); err != nil {
			return model.GuildSettings{}, fmt.Errorf("failed to create default settings for guild %s: %w", guildID, err)
		}
	} else if err != nil {
		return model.GuildSettings{}, fmt.Errorf("failed to get settings for guild %s: %w", guildID, err)
	}

	s.mu.Lock()
	s.cache[guildID] = row
	s.mu.Unlock()
	return row, nil
}

// Set upserts the settings row and refreshes the cache entry.
func (s *SettingsStore) Set(settings model.GuildSettings) error {
	if settings.XPMultiplier <= 0 {
		settings.XPMultiplier = DefaultXPMultiplier
	}
	_, err := s.db.NamedExec(`INSERT INTO guild_settings (guild_id, excluded_role, levelup_channel, xp_multiplier)
			VALUES (:guild_id, :excluded_role, :levelup_channel, :xp_multiplier)
			ON CONFLICT(guild_id) DO UPDATE SET
			    excluded_role = excluded.excluded_role,
			    levelup_channel = excluded.levelup_channel,
			    xp_multiplier = excluded.xp_multiplier`, settings)
	if err != nil {
		return fmt.Errorf("failed to set settings for guild %s: %w", settings.GuildID, err)
	}

	s.mu.Lock()
	s.cache[settings.GuildID] = settings
	s.mu.Unlock()
	return nil
}

// Evict drops the cache entry for a guild the bot no longer serves. The
// persisted row is retained.
func (s *SettingsStore) Evict(guildID string) {
	s.mu.Lock()
	delete(s.cache, guildID)
	s.mu.Unlock()
}
