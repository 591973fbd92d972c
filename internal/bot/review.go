package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/providers"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/structures"
)

const (
	actionPass = "pass"
	actionFail = "fail"

	customIDSeparator = "_"
)

func decisionCustomID(action, userID string) string {
	return action + customIDSeparator + userID
}

// parseDecisionCustomID splits a component custom ID of the form
// "<action>_<applicantId>". ok is false for any other shape, which the
// caller treats as a no-op.
func parseDecisionCustomID(customID string) (action, userID string, ok bool) {
	parts := strings.SplitN(customID, customIDSeparator, 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", "", false
	}
	if parts[0] != actionPass && parts[0] != actionFail {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// decisionRow builds the Pass/Fail buttons. The applicant ID rides in
// the custom IDs so the decision handler needs no lookup table.
func decisionRow(userID string, disabled bool) discordgo.ActionsRow {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Pass",
				Style:    discordgo.SuccessButton,
				CustomID: decisionCustomID(actionPass, userID),
				Disabled: disabled,
			},
			discordgo.Button{
				Label:    "Fail",
				Style:    discordgo.DangerButton,
				CustomID: decisionCustomID(actionFail, userID),
				Disabled: disabled,
			},
		},
	}
}

type ReviewDispatcher struct {
	config    *structures.Config
	logger    providers.Logger
	messenger Messenger
}

func NewReviewDispatcher(config *structures.Config, logger providers.Logger, messenger Messenger) *ReviewDispatcher {
	return &ReviewDispatcher{
		config:    config,
		logger:    logger,
		messenger: messenger,
	}
}

// Dispatch posts the completed application to the review channel with
// the decision buttons attached.
func (d *ReviewDispatcher) Dispatch(user *discordgo.User, answers []string) error {
	fields := make([]*discordgo.MessageEmbedField, 0, len(answers))
	for i, answer := range answers {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("Q%d", i+1),
			Value: answer,
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       "New Application Submitted",
		Color:       colorApplication,
		Description: fmt.Sprintf("Applicant: **%s** (%s)", user.String(), user.ID),
		Fields:      fields,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	content := ""
	if d.config.Discord.ReviewPingRoleID != "" {
		content = fmt.Sprintf("<@&%s>", d.config.Discord.ReviewPingRoleID)
	}

	_, err := d.messenger.SendComplex(d.config.Discord.ReviewChannelID, &discordgo.MessageSend{
		Content:    content,
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{decisionRow(user.ID, false)},
	})
	if err != nil {
		return err
	}

	d.logger.Infof(providers.TypeBot, "Application of %s sent to review", user.ID)
	return nil
}
