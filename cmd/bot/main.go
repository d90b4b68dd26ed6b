package main

import (
	"log"
	"os"

	"ravensbot/internal/adapters/discord"
	"ravensbot/internal/config"
	"ravensbot/internal/infrastructure/i18n"
	"ravensbot/internal/infrastructure/roster"
	"ravensbot/pkg/tz"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	loc, err := tz.Load(cfg.Timezone)
	if err != nil {
		log.Fatalf("❌ Timezone error: %v", err)
	}

	members, err := roster.NewSource(cfg.RosterPath, loc).Load()
	if err != nil {
		log.Fatalf("❌ Roster error: %v", err)
	}
	log.Printf("📋 Roster loaded: %d members", len(members))

	translator := i18n.NewTranslator(cfg.Locale)

	bot := discord.NewBot(cfg, members, translator, loc)
	if err := bot.Start(); err != nil {
		log.Printf("❌ Bot startup error: %v", err)
		os.Exit(1)
	}
}
