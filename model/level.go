package model

import "time"

// ActivityType classifies a tracked guild activity.
type ActivityType string

const (
	ActivityMessage  ActivityType = "message"
	ActivityReaction ActivityType = "reaction"
	ActivityVoice    ActivityType = "voice"
)

// ActivityEvent is a single already-validated activity signal. Magnitude is
// the elapsed voice seconds for voice events and unused otherwise.
type ActivityEvent struct {
	UserID    string
	GuildID   string
	Type      ActivityType
	Timestamp time.Time
	Magnitude int64
}

// UserLevel is the persistent per-member aggregate, keyed by (user, guild).
// Level is always derived from TotalXP via the curve, never set independently.
type UserLevel struct {
	UserID    string `db:"user_id"`
	GuildID   string `db:"guild_id"`
	TotalXP   int64  `db:"total_xp"`
	Level     int    `db:"level"`
	Messages  int64  `db:"messages"`
	Reactions int64  `db:"reactions"`
	VoiceTime int64  `db:"voice_time"` // seconds
}

// GuildSettings holds the per-guild leveling settings row.
type GuildSettings struct {
	GuildID        string  `db:"guild_id"`
	ExcludedRole   string  `db:"excluded_role"`   // "king" role exempt from ranked competition, empty when unset
	LevelUpChannel string  `db:"levelup_channel"` // empty disables announcements
	XPMultiplier   float64 `db:"xp_multiplier"`
}

// LevelUpEvent reports a level transition after an award. When a single award
// crosses several levels only the final pair is reported.
type LevelUpEvent struct {
	GuildID  string
	UserID   string
	OldLevel int
	NewLevel int
	TotalXP  int64
}

// LeaderboardEntry is one ranked row.
type LeaderboardEntry struct {
	Rank    int
	UserID  string
	TotalXP int64
	Level   int
}

// Leaderboard partitions a guild's ranking into the excluded ("king") cohort
// and the regular competition.
type Leaderboard struct {
	Excluded []LeaderboardEntry
	Regular  []LeaderboardEntry
}
