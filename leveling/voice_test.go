package leveling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoiceLumpAwardAtDisconnect(t *testing.T) {
	engine, _ := newTestEngine(t, fixedAwardConfig(10, 0))
	tracker := NewVoiceTracker(engine)

	start := time.Now()
	tracker.Connect("g1", "u1", start)
	assert.Equal(t, 1, tracker.ActiveSessions())

	tracker.Disconnect("g1", "u1", start.Add(3*time.Minute))
	assert.Equal(t, 0, tracker.ActiveSessions())

	stats, err := engine.GetStats("g1", "u1")
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, int64(30), stats.TotalXP, "3 whole minutes at a fixed 10 XP draw")
	assert.Equal(t, int64(180), stats.VoiceTime)
}

func TestVoiceReconnectKeepsSessionStart(t *testing.T) {
	engine, _ := newTestEngine(t, fixedAwardConfig(10, 0))
	tracker := NewVoiceTracker(engine)

	start := time.Now()
	tracker.Connect("g1", "u1", start)
	// Channel switch re-emits a connect; the original start must win.
	tracker.Connect("g1", "u1", start.Add(time.Minute))
	tracker.Disconnect("g1", "u1", start.Add(2*time.Minute))

	stats, err := engine.GetStats("g1", "u1")
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, int64(20), stats.TotalXP)
}

func TestVoiceUnknownDisconnectIgnored(t *testing.T) {
	engine, _ := newTestEngine(t, fixedAwardConfig(10, 0))
	tracker := NewVoiceTracker(engine)

	tracker.Disconnect("g1", "u1", time.Now())

	stats, err := engine.GetStats("g1", "u1")
	require.NoError(t, err)
	assert.Nil(t, stats)
}

func TestVoiceResetDropsSessions(t *testing.T) {
	engine, _ := newTestEngine(t, fixedAwardConfig(10, 0))
	tracker := NewVoiceTracker(engine)

	tracker.Connect("g1", "u1", time.Now())
	tracker.Reset()
	assert.Equal(t, 0, tracker.ActiveSessions())

	tracker.Disconnect("g1", "u1", time.Now().Add(time.Hour))
	stats, err := engine.GetStats("g1", "u1")
	require.NoError(t, err)
	assert.Nil(t, stats, "sessions dropped by Reset are not awarded")
}
