package bot

import (
	"github.com/bwmarrin/discordgo"
)

// Messenger is the slice of the Discord session the bot logic sends
// through. Kept narrow so flows can be tested without a gateway.
type Messenger interface {
	DMChannel(userID string) (string, error)
	SendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
	SendComplex(channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error)
	EditComponents(channelID, messageID string, components []discordgo.MessageComponent) error
}

type DiscordMessenger struct {
	session *discordgo.Session
}

func NewDiscordMessenger(session *discordgo.Session) Messenger {
	return &DiscordMessenger{session: session}
}

func (m *DiscordMessenger) DMChannel(userID string) (string, error) {
	channel, err := m.session.UserChannelCreate(userID)
	if err != nil {
		return "", err
	}
	return channel.ID, nil
}

func (m *DiscordMessenger) SendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	return m.session.ChannelMessageSendEmbed(channelID, embed)
}

func (m *DiscordMessenger) SendComplex(channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
	return m.session.ChannelMessageSendComplex(channelID, msg)
}

func (m *DiscordMessenger) EditComponents(channelID, messageID string, components []discordgo.MessageComponent) error {
	_, err := m.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    channelID,
		ID:         messageID,
		Components: &components,
	})
	return err
}
