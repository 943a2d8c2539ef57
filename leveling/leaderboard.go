package leveling

import (
	"fmt"
	"log"

	"level-bot/model"
)

// RoleOracle reports whether a member holds a role. Lookups may fail per
// member (left the guild, API error); the ranker skips those members.
type RoleOracle func(userID, roleID string) (bool, error)

// leaderboardFetchLimit caps how many aggregates one ranking reads.
const leaderboardFetchLimit = 25

// Leaderboard builds the ranked, partitioned view of a guild: members holding
// the configured excluded ("king") role are listed apart from the regular
// competition. Both partitions keep the store's descending-XP order (ties by
// user id ascending); only Regular is truncated to limit, the excluded cohort
// is always shown in full.
func (e *Engine) Leaderboard(guildID string, limit int, oracle RoleOracle) (*model.Leaderboard, error) {
	rows, err := e.store.GetTopUsers(guildID, leaderboardFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leaderboard rows: %w", err)
	}

	settings, err := e.settings.Get(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to read guild settings: %w", err)
	}

	board := &model.Leaderboard{}
	for _, row := range rows {
		entry := model.LeaderboardEntry{
			UserID:  row.UserID,
			TotalXP: row.TotalXP,
			Level:   row.Level,
		}

		excluded := false
		if settings.ExcludedRole != "" {
			excluded, err = oracle(row.UserID, settings.ExcludedRole)
			if err != nil {
				// Partial-failure tolerant: one unresolvable member must not
				// abort the whole ranking.
				log.Printf("Skipping %s in guild %s leaderboard, role lookup failed: %v", row.UserID, guildID, err)
				continue
			}
		}

		if excluded {
			entry.Rank = len(board.Excluded) + 1
			board.Excluded = append(board.Excluded, entry)
		} else if len(board.Regular) < limit {
			entry.Rank = len(board.Regular) + 1
			board.Regular = append(board.Regular, entry)
		}
	}

	return board, nil
}
