package discord

import (
	"github.com/bwmarrin/discordgo"

	"ravensbot/internal/domain"
)

// resolveGuild finds the configured guild by exact name among the guilds the
// session is connected to. First match wins if names collide.
func (h *Handler) resolveGuild(s *discordgo.Session) (*discordgo.Guild, error) {
	name := h.config.GuildName
	if h.config.Testing {
		name = h.config.TestGuildName
	}
	for _, g := range s.State.Guilds {
		if g.Name == name {
			return g, nil
		}
	}
	return nil, domain.ErrGuildNotFound
}

// resolveTargetChannel resolves the channel scheduled messages go to. In
// testing mode that is the command channel looked up by bare name; otherwise
// it is the general channel nested under the configured category.
func (h *Handler) resolveTargetChannel(s *discordgo.Session) (*discordgo.Channel, error) {
	guild, err := h.resolveGuild(s)
	if err != nil {
		return nil, err
	}
	channels, err := h.guildChannels(s, guild)
	if err != nil {
		return nil, err
	}

	if h.config.Testing {
		return findTextChannel(channels, h.rooms.Commands(), "")
	}

	var categoryID string
	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildCategory && ch.Name == h.config.CategoryName {
			categoryID = ch.ID
			break
		}
	}
	if categoryID == "" {
		return nil, domain.ErrChannelNotFound
	}
	return findTextChannel(channels, h.rooms.General(), categoryID)
}

// guildChannels prefers the state cache and falls back to the API when the
// cache has not been populated yet.
func (h *Handler) guildChannels(s *discordgo.Session, guild *discordgo.Guild) ([]*discordgo.Channel, error) {
	if len(guild.Channels) > 0 {
		return guild.Channels, nil
	}
	channels, err := s.GuildChannels(guild.ID)
	if err != nil {
		return nil, err
	}
	return channels, nil
}

func findTextChannel(channels []*discordgo.Channel, name, parentID string) (*discordgo.Channel, error) {
	for _, ch := range channels {
		if ch.Type != discordgo.ChannelTypeGuildText || ch.Name != name {
			continue
		}
		if parentID != "" && ch.ParentID != parentID {
			continue
		}
		return ch, nil
	}
	return nil, domain.ErrChannelNotFound
}
