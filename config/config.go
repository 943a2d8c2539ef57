package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"level-bot/model"
)

// Load loads the configuration from environment variables and the leveling
// settings file.
func Load() (*model.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		log.Fatal("Error: BOT_TOKEN environment variable not set")
	}

	appID := os.Getenv("APP_ID")
	if appID == "" {
		log.Fatal("Error: APP_ID environment variable not set")
	}

	logChannelID := os.Getenv("LOG_CHANNEL_ID")
	if logChannelID == "" {
		log.Println("Warning: LOG_CHANNEL_ID not set, channel logging will be disabled")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "data/levels.db"
	}

	cfg := &model.Config{
		BotToken:         token,
		AppID:            appID,
		LogChannelID:     logChannelID,
		DeveloperUserIDs: splitIDs(os.Getenv("DEVELOPER_USER_IDS")),
		AdminRoleIDs:     splitIDs(os.Getenv("ADMIN_ROLE_IDS")),
		DBPath:           dbPath,
	}

	leveling, err := loadLeveling()
	if err != nil {
		return nil, err
	}
	cfg.Leveling = leveling

	return cfg, nil
}

// loadLeveling reads data/leveling.yaml, falling back to the documented
// defaults for anything the file omits (or when the file is missing).
func loadLeveling() (model.LevelingConfig, error) {
	v := viper.New()
	v.SetConfigName("leveling")
	v.SetConfigType("yaml")
	v.AddConfigPath("data")

	v.SetDefault("message_xp.min", 15)
	v.SetDefault("message_xp.max", 25)
	v.SetDefault("message_xp.cooldown_ms", 60000)
	v.SetDefault("reaction_xp.min", 5)
	v.SetDefault("reaction_xp.max", 10)
	v.SetDefault("reaction_xp.cooldown_ms", 30000)
	v.SetDefault("voice_xp.min", 10)
	v.SetDefault("voice_xp.max", 20)
	v.SetDefault("voice_xp.cooldown_ms", 0)
	v.SetDefault("curve.shape", "exponential")
	v.SetDefault("curve.multiplier", 1.75)
	v.SetDefault("curve.max_level", 50)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return model.LevelingConfig{}, fmt.Errorf("failed to read leveling config: %w", err)
		}
		log.Println("Warning: data/leveling.yaml not found, using default leveling settings")
	}

	var cfg model.LevelingConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return model.LevelingConfig{}, fmt.Errorf("failed to unmarshal leveling config: %w", err)
	}
	return cfg, nil
}

func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
