package bot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/applications/interfaces"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/providers"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/services"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/structures"
)

const applyCommandName = "apply"

type InteractionController struct {
	config    *structures.Config
	logger    providers.Logger
	metrics   providers.MetricsProviderInterface
	scheduler interfaces.SchedulerInterface
	service   services.ApplicationServiceInterface
	runner    *InterviewRunner
	decisions *DecisionHandler
	collector *Collector
	messenger Messenger
}

func NewInteractionController(config *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface, scheduler interfaces.SchedulerInterface, service services.ApplicationServiceInterface, runner *InterviewRunner, decisions *DecisionHandler, collector *Collector, messenger Messenger) *InteractionController {
	return &InteractionController{
		config:    config,
		logger:    logger,
		metrics:   metrics,
		scheduler: scheduler,
		service:   service,
		runner:    runner,
		decisions: decisions,
		collector: collector,
		messenger: messenger,
	}
}

// RegisterHandlers attaches the gateway handlers. Must run before the
// session is opened.
func (ic *InteractionController) RegisterHandlers(session *discordgo.Session) {
	session.AddHandler(ic.HandleInteraction)
	session.AddHandler(ic.collector.HandleMessage)
}

// RegisterCommands overwrites the guild command set with the single
// apply command.
func (ic *InteractionController) RegisterCommands(session *discordgo.Session) error {
	_, err := session.ApplicationCommandBulkOverwrite(ic.config.Discord.ClientID, ic.config.Discord.GuildID, []*discordgo.ApplicationCommand{
		{
			Name:        applyCommandName,
			Description: "Start a Customer Support application",
		},
	})
	return err
}

func (ic *InteractionController) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		ic.handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		ic.handleComponent(s, i)
	}
}

func (ic *InteractionController) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.ApplicationCommandData().Name != applyCommandName {
		return
	}
	// Guild-only command; no member means a DM invocation.
	if i.Member == nil || i.Member.User == nil {
		return
	}

	user := i.Member.User
	isAdmin := i.Member.Permissions&discordgo.PermissionAdministrator != 0

	verdict := ic.service.Eligibility(user.ID, isAdmin, ic.scheduler.Open())
	if verdict == services.VerdictEligible && !ic.service.BeginInterview(user.ID) {
		verdict = services.VerdictInProgress
	}
	ic.metrics.IncCommands(verdict.String())

	switch verdict {
	case services.VerdictClosed:
		ic.respondEphemeral(s, i, applicationEmbed(closedNotice))
	case services.VerdictAlreadyApplied:
		ic.respondEphemeral(s, i, applicationEmbed(alreadyAppliedNotice))
	case services.VerdictInProgress:
		ic.respondEphemeral(s, i, applicationEmbed(interviewInProgressNotice))
	default:
		ic.respondEphemeral(s, i, applicationEmbed(welcomeNotice))
		ic.metrics.IncInterviewsStarted()
		ic.logger.Infof(providers.TypeBot, "Interview started for %s (admin=%t)", user.ID, isAdmin)
		go ic.runner.Run(user, isAdmin)
	}
}

func (ic *InteractionController) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()

	result, ok := ic.decisions.Handle(data.CustomID)
	if !ok {
		ic.logger.Debugf(providers.TypeBot, "Ignoring component %q", data.CustomID)
		return
	}

	ic.respondEphemeral(s, i, result.Ack)

	if i.Message != nil {
		err := ic.messenger.EditComponents(i.ChannelID, i.Message.ID, []discordgo.MessageComponent{result.DisabledRow})
		if err != nil {
			ic.logger.Warnf(providers.TypeBot, "Cannot disable decision buttons: %s", err)
		}
	}
}

func (ic *InteractionController) respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		ic.logger.Warnf(providers.TypeBot, "Cannot respond to interaction: %s", err)
	}
}
