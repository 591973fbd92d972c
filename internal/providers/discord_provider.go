package providers

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/structures"
)

// NewDiscordProvider builds the gateway session. The caller owns opening
// and closing it.
func NewDiscordProvider(conf *structures.Config) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + conf.Discord.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	return session, nil
}
