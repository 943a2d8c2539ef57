package model

// XPRange bounds a single uniform XP draw and its award cooldown.
type XPRange struct {
	Min        int `mapstructure:"min"`
	Max        int `mapstructure:"max"`
	CooldownMs int `mapstructure:"cooldown_ms"`
}

// CurveConfig parameterizes the level curve.
type CurveConfig struct {
	Shape      string  `mapstructure:"shape"`
	Multiplier float64 `mapstructure:"multiplier"`
	MaxLevel   int     `mapstructure:"max_level"`
}

// LevelingConfig is the leveling settings snapshot loaded from
// data/leveling.yaml. Award handlers read it through the Bot's config value;
// reload-config swaps the whole snapshot, so a running award never observes
// a half-updated set of ranges.
type LevelingConfig struct {
	MessageXP  XPRange     `mapstructure:"message_xp"`
	ReactionXP XPRange     `mapstructure:"reaction_xp"`
	VoiceXP    XPRange     `mapstructure:"voice_xp"`
	Curve      CurveConfig `mapstructure:"curve"`
}

// Config stores the application configuration.
type Config struct {
	BotToken         string
	AppID            string
	LogChannelID     string
	DeveloperUserIDs []string
	AdminRoleIDs     []string
	DBPath           string
	Leveling         LevelingConfig
}
