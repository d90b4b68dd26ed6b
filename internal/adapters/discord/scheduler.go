package discord

import (
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
)

// NewScheduler registers the two daily triggers on a cron runner pinned to
// the configured location. The returned cron is not started.
func (h *Handler) NewScheduler(s *discordgo.Session, loc *time.Location) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc(h.config.ReminderCron, func() { h.SendPracticeReminder(s) }); err != nil {
		return nil, fmt.Errorf("scheduling practice reminder (%q): %w", h.config.ReminderCron, err)
	}
	if _, err := c.AddFunc(h.config.GreetingCron, func() { h.SendBirthdayGreetings(s) }); err != nil {
		return nil, fmt.Errorf("scheduling birthday greetings (%q): %w", h.config.GreetingCron, err)
	}
	return c, nil
}

// SendPracticeReminder posts the reminder when tomorrow is an uncancelled
// practice day. Every failure is logged and dropped; the next trigger is
// never affected.
func (h *Handler) SendPracticeReminder(s *discordgo.Session) {
	occ, due := h.schedule.ReminderDue()
	if !due {
		return
	}
	channel, err := h.resolveTargetChannel(s)
	if err != nil {
		log.Printf("⚠️ practice reminder for %s: %v", occ.Key, err)
		return
	}
	if _, err := s.ChannelMessageSend(channel.ID, h.t("practice_reminder", nil)); err != nil {
		log.Printf("❌ practice reminder for %s: send failed: %v", occ.Key, err)
	}
}

// SendBirthdayGreetings posts one greeting per member whose birthday is
// today. Sends are independent: a failed send is logged and the rest still go
// out.
func (h *Handler) SendBirthdayGreetings(s *discordgo.Session) {
	today := h.clock.Now().In(h.loc)
	matches := h.roster.MatchesOn(today)
	if len(matches) == 0 {
		return
	}
	channel, err := h.resolveTargetChannel(s)
	if err != nil {
		log.Printf("⚠️ birthday greetings: %v", err)
		return
	}
	for _, member := range matches {
		msg := h.t("birthday_greeting", map[string]any{"Name": member.Name})
		if _, err := s.ChannelMessageSend(channel.ID, msg); err != nil {
			log.Printf("❌ birthday greeting for %s: send failed: %v", member.Name, err)
		}
	}
}
