package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// HandleMessageCreate feeds inbound messages from watched channels to the
// interpreter and posts its reply, if any. Bot authors and channels outside
// the watched set produce no side effects at all.
func (h *Handler) HandleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	channel, err := h.channel(s, m.ChannelID)
	if err != nil {
		log.Printf("⚠️ message: channel %s lookup failed: %v", m.ChannelID, err)
		return
	}
	if channel.Type != discordgo.ChannelTypeGuildText || !h.isWatched(channel.Name) {
		return
	}

	reply, ok := h.interpreter.Handle(m.ChannelID, m.Author.ID, m.Content)
	if !ok {
		return
	}
	if _, err := s.ChannelMessageSendReply(m.ChannelID, reply, m.Reference()); err != nil {
		log.Printf("❌ message: reply in #%s failed: %v", channel.Name, err)
	}
}

func (h *Handler) isWatched(channelName string) bool {
	return channelName == h.rooms.Commands() || channelName == h.rooms.Captains()
}

func (h *Handler) channel(s *discordgo.Session, channelID string) (*discordgo.Channel, error) {
	if ch, err := s.State.Channel(channelID); err == nil {
		return ch, nil
	}
	return s.Channel(channelID)
}
