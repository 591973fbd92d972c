package bot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/providers"
)

// DecisionResult carries what the interaction layer still has to do
// after a decision was delivered to the applicant: acknowledge the
// reviewer and disable the buttons on the review message.
type DecisionResult struct {
	Ack         *discordgo.MessageEmbed
	DisabledRow discordgo.MessageComponent
}

// DecisionHandler is stateless: everything it needs is parsed out of
// the component custom ID.
type DecisionHandler struct {
	logger    providers.Logger
	metrics   providers.MetricsProviderInterface
	messenger Messenger
}

func NewDecisionHandler(logger providers.Logger, metrics providers.MetricsProviderInterface, messenger Messenger) *DecisionHandler {
	return &DecisionHandler{
		logger:    logger,
		metrics:   metrics,
		messenger: messenger,
	}
}

// Handle resolves a decision button press. Custom IDs that are not
// decision controls return ok=false and are ignored by the caller.
func (h *DecisionHandler) Handle(customID string) (*DecisionResult, bool) {
	action, userID, ok := parseDecisionCustomID(customID)
	if !ok {
		return nil, false
	}
	passed := action == actionPass

	channelID, err := h.messenger.DMChannel(userID)
	if err != nil {
		h.logger.Warnf(providers.TypeBot, "Cannot open DM with applicant %s: %s", userID, err)
		return nil, false
	}
	if _, err := h.messenger.SendEmbed(channelID, resultEmbed(passed)); err != nil {
		h.logger.Warnf(providers.TypeBot, "Cannot deliver result to applicant %s: %s", userID, err)
		return nil, false
	}

	h.metrics.IncDecisions(action)
	h.logger.Infof(providers.TypeBot, "Applicant %s marked as %s", userID, action)

	ack := &discordgo.MessageEmbed{Description: "Applicant passed.", Color: colorPass}
	if !passed {
		ack = &discordgo.MessageEmbed{Description: "Applicant failed.", Color: colorFail}
	}

	return &DecisionResult{
		Ack:         ack,
		DisabledRow: decisionRow(userID, true),
	}, true
}
