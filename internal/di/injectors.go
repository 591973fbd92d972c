//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/applications"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/bot"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/controllers"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/providers"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/services"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewDiscordProvider,

		applications.NewFileManager,
		applications.NewScheduler,
		services.NewApplicationService,

		bot.NewDiscordMessenger,
		bot.NewCollector,
		bot.NewReviewDispatcher,
		bot.NewInterviewRunner,
		bot.NewDecisionHandler,
		bot.NewInteractionController,

		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,

		wire.Bind(new(providers.AppliedCounter), new(services.ApplicationServiceInterface)),
		wire.Bind(new(applications.WindowResetter), new(services.ApplicationServiceInterface)),
		wire.Bind(new(bot.Awaiter), new(*bot.Collector)),
	)

	return nil, nil
}
