package bot

import (
	"errors"

	"github.com/bwmarrin/discordgo"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/providers"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/services"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/structures"
)

// InterviewRunner drives one applicant through the question list over
// direct messages. Any delivery failure or timeout aborts the whole
// flow without recording a partial application.
type InterviewRunner struct {
	config    *structures.Config
	logger    providers.Logger
	metrics   providers.MetricsProviderInterface
	messenger Messenger
	awaiter   Awaiter
	service   services.ApplicationServiceInterface
	review    *ReviewDispatcher
}

func NewInterviewRunner(config *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface, messenger Messenger, awaiter Awaiter, service services.ApplicationServiceInterface, review *ReviewDispatcher) *InterviewRunner {
	return &InterviewRunner{
		config:    config,
		logger:    logger,
		metrics:   metrics,
		messenger: messenger,
		awaiter:   awaiter,
		service:   service,
		review:    review,
	}
}

// Run executes the interview. The caller must have reserved the
// interview slot via BeginInterview; Run releases it on return.
func (r *InterviewRunner) Run(user *discordgo.User, isAdmin bool) {
	defer r.service.EndInterview(user.ID)

	channelID, err := r.messenger.DMChannel(user.ID)
	if err != nil {
		r.abort(user.ID, "dm_closed", err)
		return
	}

	if _, err := r.messenger.SendEmbed(channelID, applicationEmbed(welcomeNotice)); err != nil {
		r.abort(user.ID, "dm_closed", err)
		return
	}

	questions := r.config.Interview.Questions
	answers := make([]string, 0, len(questions))
	for i, question := range questions {
		if _, err := r.messenger.SendEmbed(channelID, questionEmbed(i+1, question)); err != nil {
			r.abort(user.ID, "send_failed", err)
			return
		}

		answer, err := r.awaiter.Await(channelID, user.ID, r.config.Interview.AnswerTimeout)
		if err != nil {
			if errors.Is(err, ErrAwaitTimeout) {
				r.abort(user.ID, "timeout", err)
			} else {
				r.abort(user.ID, "await_failed", err)
			}
			return
		}
		answers = append(answers, answer)
	}

	if _, err := r.messenger.SendEmbed(channelID, submittedEmbed()); err != nil {
		r.abort(user.ID, "send_failed", err)
		return
	}

	if err := r.service.RecordApplication(user.ID, isAdmin); err != nil {
		r.logger.Errorf(providers.TypeBot, "Error recording application for %s: %s", user.ID, err)
	}
	r.metrics.IncInterviewsSubmitted()

	if err := r.review.Dispatch(user, answers); err != nil {
		r.logger.Errorf(providers.TypeBot, "Error sending application of %s to review: %s", user.ID, err)
	}
}

func (r *InterviewRunner) abort(userID, reason string, err error) {
	r.metrics.IncInterviewsAborted(reason)
	r.logger.Warnf(providers.TypeBot, "Interview with %s aborted (%s): %s", userID, reason, err)
}
