package discord

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"

	"ravensbot/internal/application"
	"ravensbot/internal/config"
	"ravensbot/internal/domain/entities"
	"ravensbot/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
	loc     *time.Location
}

// NewBot creates a Bot and wires the use cases: schedule, roster, room slots
// and the menu interpreter all feed the handler.
func NewBot(cfg *config.Config, members []entities.Member, translator output.T, loc *time.Location) *Bot {
	clock := application.RealClock{}
	schedule := application.NewScheduleService(clock, loc, cfg.PracticeDays, cfg.CutoffHour)
	roster := application.NewRosterService(members)
	rooms := application.NewRoomConfig(cfg.GeneralChannel, cfg.CommandChannel, cfg.CaptainsChannel)
	interpreter := application.NewInterpreter(schedule, rooms, translator, cfg.Locale)

	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		log.Fatal("❌ Failed to create the Discord session:", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentMessageContent

	handler := NewHandler(interpreter, schedule, roster, rooms, translator, cfg, clock, loc)

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: handler,
		loc:     loc,
	}
	bot.setupHandlers()
	return bot
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("✅ Logged in as %s", r.User.Username)
	})
	b.session.AddHandler(b.handler.HandleMessageCreate)
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("opening the session: %w", err)
	}
	defer b.session.Close()

	scheduler, err := b.handler.NewScheduler(b.session, b.loc)
	if err != nil {
		return err
	}
	scheduler.Start()
	defer scheduler.Stop()

	fmt.Println("🤖 Bot online! Press CTRL+C to quit.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
