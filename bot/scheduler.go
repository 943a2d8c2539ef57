package bot

import (
	"log"
	"sync"
	"time"
)

const cooldownMaxAge = 1 * time.Hour

// Scheduler manages the bot's background tasks.
type Scheduler struct {
	bot            *Bot
	done           chan struct{}
	wg             sync.WaitGroup
	cooldownTicker *time.Ticker
}

func NewScheduler(bot *Bot) *Scheduler {
	return &Scheduler{
		bot:  bot,
		done: make(chan struct{}),
	}
}

// Start begins all scheduled tasks.
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.startScheduledTasks()
}

// Stop terminates all scheduled tasks gracefully.
func (s *Scheduler) Stop() {
	log.Println("Stopping scheduler...")
	close(s.done)
	s.wg.Wait()
	log.Println("Scheduler stopped.")
}

func (s *Scheduler) startScheduledTasks() {
	defer s.wg.Done()
	s.cooldownTicker = time.NewTicker(1 * time.Hour)
	defer s.cooldownTicker.Stop()

	for {
		select {
		case <-s.cooldownTicker.C:
			log.Println("Pruning stale XP cooldowns...")
			s.bot.Engine.Cooldowns().Prune(cooldownMaxAge)
		case <-s.done:
			return
		}
	}
}
