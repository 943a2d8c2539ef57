package leveling

import (
	"sync"
	"time"

	"level-bot/model"
)

type cooldownKey struct {
	GuildID string
	UserID  string
	Type    model.ActivityType
}

// CooldownGate tracks the last award time per (guild, user, activity) and
// decides award eligibility. State is in-memory only: it resets on restart
// and is not shared across instances (single-instance deployment).
type CooldownGate struct {
	mu   sync.Mutex
	last map[cooldownKey]time.Time
}

func NewCooldownGate() *CooldownGate {
	return &CooldownGate{last: make(map[cooldownKey]time.Time)}
}

// TryAcquire reports whether an award is allowed and, if so, records now as
// the new last-award time. A denied call leaves the recorded time untouched,
// and concurrent callers for the same key see exactly one winner.
func (g *CooldownGate) TryAcquire(guildID, userID string, activity model.ActivityType, now time.Time, cooldown time.Duration) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := cooldownKey{GuildID: guildID, UserID: userID, Type: activity}
	if lastAward, ok := g.last[key]; ok && now.Sub(lastAward) < cooldown {
		return false
	}
	g.last[key] = now
	return true
}

// Prune drops entries older than maxAge. Called periodically by the scheduler
// so the map does not grow with every member ever seen.
func (g *CooldownGate) Prune(maxAge time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for key, t := range g.last {
		if time.Since(t) > maxAge {
			delete(g.last, key)
		}
	}
}

// Reset clears all cooldown state. Used on shutdown and in tests.
func (g *CooldownGate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.last = make(map[cooldownKey]time.Time)
}
