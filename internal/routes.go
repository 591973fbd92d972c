package internal

import (
	"net/http"

	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/controllers"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/providers"
)

func InitRoutes(healthController *controllers.HealthController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/", http.HandlerFunc(healthController.Alive))
	return routers
}
