package bot

import (
	"log"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"

	"level-bot/config"
	"level-bot/leveling"
	"level-bot/model"
	"level-bot/utils/database"
)

type Bot struct {
	Session            *discordgo.Session
	RegisteredCommands []*discordgo.ApplicationCommand
	CommandHandlers    map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)
	DB                 *sqlx.DB
	Engine             *leveling.Engine
	Voice              *leveling.VoiceTracker
	Settings           *database.SettingsStore
	config             atomic.Value // *model.Config
	scheduler          *Scheduler
}

func New(cfg *model.Config, db *sqlx.DB) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsGuildVoiceStates
	dg.StateEnabled = true

	settings := database.NewSettingsStore(db)
	engine := leveling.NewEngine(database.NewLevelStore(db), settings, cfg.Leveling)

	b := &Bot{
		Session:  dg,
		DB:       db,
		Engine:   engine,
		Voice:    leveling.NewVoiceTracker(engine),
		Settings: settings,
	}
	b.config.Store(cfg)
	b.scheduler = NewScheduler(b)
	return b, nil
}

func (b *Bot) GetConfig() *model.Config {
	return b.config.Load().(*model.Config)
}

func (b *Bot) GetSession() *discordgo.Session {
	return b.Session
}

func (b *Bot) GetDB() *sqlx.DB {
	return b.DB
}

// ReloadConfig re-reads the environment and leveling file and atomically
// swaps the snapshot. Awards running during the swap keep the old snapshot.
func (b *Bot) ReloadConfig() error {
	log.Println("Reloading configuration...")
	newCfg, err := config.Load()
	if err != nil {
		log.Printf("Error reloading config: %v", err)
		return err
	}

	b.config.Store(newCfg)
	b.Engine.Reload(newCfg.Leveling)
	log.Println("Configuration reloaded successfully.")
	return nil
}

func (b *Bot) Close() {
	log.Println("Gracefully shutting down.")
	b.scheduler.Stop()
	b.Voice.Reset()
	b.Engine.Close()
	b.Session.Close()
}
