package leveling

import (
	"sync"
	"time"

	"level-bot/model"
)

type voiceKey struct {
	GuildID string
	UserID  string
}

// VoiceTracker records ongoing voice sessions and converts each one into a
// single lump voice award at disconnect. Sessions are process-local and lost
// on restart, like the cooldown state.
type VoiceTracker struct {
	engine *Engine

	mu       sync.Mutex
	sessions map[voiceKey]time.Time
}

func NewVoiceTracker(engine *Engine) *VoiceTracker {
	return &VoiceTracker{
		engine:   engine,
		sessions: make(map[voiceKey]time.Time),
	}
}

// Connect marks the start of a voice session. Re-connecting (channel switch)
// keeps the original start time.
func (t *VoiceTracker) Connect(guildID, userID string, now time.Time) {
	key := voiceKey{GuildID: guildID, UserID: userID}
	t.mu.Lock()
	if _, ok := t.sessions[key]; !ok {
		t.sessions[key] = now
	}
	t.mu.Unlock()
}

// Disconnect ends a voice session and awards the elapsed time in one lump.
// Unknown sessions (bot restarted mid-call) are ignored.
func (t *VoiceTracker) Disconnect(guildID, userID string, now time.Time) {
	key := voiceKey{GuildID: guildID, UserID: userID}
	t.mu.Lock()
	start, ok := t.sessions[key]
	delete(t.sessions, key)
	t.mu.Unlock()
	if !ok {
		return
	}

	elapsed := int64(now.Sub(start).Seconds())
	if elapsed <= 0 {
		return
	}
	t.engine.AwardActivity(model.ActivityEvent{
		UserID:    userID,
		GuildID:   guildID,
		Type:      model.ActivityVoice,
		Timestamp: now,
		Magnitude: elapsed,
	})
}

// ActiveSessions returns the number of voice sessions currently tracked.
func (t *VoiceTracker) ActiveSessions() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sessions)
}

// Reset drops all tracked sessions without awarding them.
func (t *VoiceTracker) Reset() {
	t.mu.Lock()
	t.sessions = make(map[voiceKey]time.Time)
	t.mu.Unlock()
}
