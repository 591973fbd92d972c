package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/applications/interfaces"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/bot"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/controllers"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/providers"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/services"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/structures"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	WebServer *http.Server
}

func NewApp(interactions *bot.InteractionController, healthController *controllers.HealthController, scheduler interfaces.SchedulerInterface, service services.ApplicationServiceInterface, session *discordgo.Session, conf *structures.Config, logger providers.Logger, router providers.RouterProviderInterface, metrics providers.MetricsProviderInterface) (*App, error) {
	// Inner mux: liveness routes for the uptime monitor
	apiMux := http.NewServeMux()
	for _, route := range router.GetRoutes() {
		apiMux.Handle(route.Url, route.Handler)
	}

	instrumentedAPI := providers.MetricsMiddleware(metrics, apiMux)

	// Outer mux: infrastructure + instrumented routes
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthController.Health)
	if conf.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.Handle("/", instrumentedAPI)

	logger.Infof(providers.TypeApp, "Starting %s", conf.AppName)

	// A malformed store is fatal; there is no recovery policy for it.
	if err := service.Restore(); err != nil {
		return nil, fmt.Errorf("restore store: %w", err)
	}

	interactions.RegisterHandlers(session)
	if err := session.Open(); err != nil {
		return nil, fmt.Errorf("open discord session: %w", err)
	}
	if err := interactions.RegisterCommands(session); err != nil {
		session.Close()
		return nil, fmt.Errorf("register commands: %w", err)
	}
	logger.Infof(providers.TypeApp, "Commands registered")

	app := &App{
		WebServer: &http.Server{
			Addr:         conf.WebServer.Host + ":" + strconv.Itoa(conf.WebServer.Port),
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	scheduler.Init()

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof(providers.TypeApp, "Listening HTTP clients on %s:%d", conf.WebServer.Host, conf.WebServer.Port)
		if err := app.WebServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		logger.Infof(providers.TypeApp, "Shutdown signal received")
	case err := <-serverErr:
		session.Close()
		return nil, fmt.Errorf("server error: %w", err)
	}

	scheduler.Stop()
	if err := session.Close(); err != nil {
		logger.Errorf(providers.TypeApp, "Error closing discord session: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.WebServer.Shutdown(ctx); err != nil {
		return nil, err
	}
	if err := service.Persist(); err != nil {
		return nil, err
	}
	logger.Infof(providers.TypeApp, "gracefully stopped")
	return app, nil
}
