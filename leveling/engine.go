package leveling

import (
	"log"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"level-bot/model"
	"level-bot/utils/database"
)

// Engine is the XP award pipeline: cooldown gate, uniform XP draw, multiplier,
// persistent aggregate update and level-up notification. All mutable state
// (cooldowns, listeners, config snapshot) is owned by the instance; Close
// clears it.
type Engine struct {
	store     *database.LevelStore
	settings  *database.SettingsStore
	cooldowns *CooldownGate

	cfg atomic.Value // model.LevelingConfig

	mu        sync.Mutex
	listeners []func(model.LevelUpEvent)
}

func NewEngine(store *database.LevelStore, settings *database.SettingsStore, cfg model.LevelingConfig) *Engine {
	e := &Engine{
		store:     store,
		settings:  settings,
		cooldowns: NewCooldownGate(),
	}
	e.cfg.Store(cfg)
	return e
}

// Reload atomically swaps the leveling config snapshot. In-flight awards keep
// the snapshot they started with.
func (e *Engine) Reload(cfg model.LevelingConfig) {
	e.cfg.Store(cfg)
}

func (e *Engine) config() model.LevelingConfig {
	return e.cfg.Load().(model.LevelingConfig)
}

// Curve returns the curve of the current config snapshot.
func (e *Engine) Curve() Curve {
	return NewCurve(e.config().Curve)
}

// Cooldowns exposes the gate for the scheduler's periodic prune.
func (e *Engine) Cooldowns() *CooldownGate {
	return e.cooldowns
}

// OnLevelUp registers a listener invoked after every award whose level
// strictly increased. Listeners run on the awarding goroutine.
func (e *Engine) OnLevelUp(fn func(model.LevelUpEvent)) {
	e.mu.Lock()
	e.listeners = append(e.listeners, fn)
	e.mu.Unlock()
}

// AwardActivity runs one activity event through the award pipeline. Denied
// cooldowns and persistence failures are absorbed here: the event is simply
// not awarded and the member has to trigger another qualifying one.
func (e *Engine) AwardActivity(event model.ActivityEvent) {
	cfg := e.config()

	var bounds model.XPRange
	switch event.Type {
	case model.ActivityMessage:
		bounds = cfg.MessageXP
	case model.ActivityReaction:
		bounds = cfg.ReactionXP
	case model.ActivityVoice:
		bounds = cfg.VoiceXP
	default:
		log.Printf("Dropping activity event with unknown type %q", event.Type)
		return
	}

	cooldown := time.Duration(bounds.CooldownMs) * time.Millisecond
	if !e.cooldowns.TryAcquire(event.GuildID, event.UserID, event.Type, event.Timestamp, cooldown) {
		return
	}

	rawXP := randRange(bounds.Min, bounds.Max)
	var voiceSeconds int64
	if event.Type == model.ActivityVoice {
		// A single per-minute draw scaled by the whole elapsed minutes, not
		// one draw per minute. Sub-minute sessions award nothing.
		minutes := event.Magnitude / 60
		if minutes <= 0 {
			return
		}
		rawXP *= int(minutes)
		voiceSeconds = event.Magnitude
	}

	multiplier := database.DefaultXPMultiplier
	settings, err := e.settings.Get(event.GuildID)
	if err != nil {
		log.Printf("Error reading settings for guild %s, using default multiplier: %v", event.GuildID, err)
	} else {
		multiplier = settings.XPMultiplier
	}
	xpGain := int64(math.Round(float64(rawXP) * multiplier))
	if xpGain <= 0 {
		return
	}

	curve := NewCurve(cfg.Curve)
	result, err := e.store.AddXP(event.GuildID, event.UserID, xpGain, event.Type, voiceSeconds, curve.LevelForXP)
	if err != nil {
		log.Printf("Error awarding %d XP to %s in guild %s: %v", xpGain, event.UserID, event.GuildID, err)
		return
	}

	if result.NewLevel > result.OldLevel {
		e.notifyLevelUp(model.LevelUpEvent{
			GuildID:  event.GuildID,
			UserID:   event.UserID,
			OldLevel: result.OldLevel,
			NewLevel: result.NewLevel,
			TotalXP:  result.TotalXP,
		})
	}
}

// GetStats returns the persisted aggregate for a member, or nil when absent.
func (e *Engine) GetStats(guildID, userID string) (*model.UserLevel, error) {
	return e.store.GetUserLevel(guildID, userID)
}

func (e *Engine) notifyLevelUp(event model.LevelUpEvent) {
	e.mu.Lock()
	listeners := make([]func(model.LevelUpEvent), len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.Unlock()

	for _, fn := range listeners {
		fn(event)
	}
}

// Close clears the engine's process-local state.
func (e *Engine) Close() {
	e.cooldowns.Reset()
	e.mu.Lock()
	e.listeners = nil
	e.mu.Unlock()
}

// randRange draws uniformly from the inclusive integer range [min, max].
func randRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + rand.Intn(max-min+1)
}
