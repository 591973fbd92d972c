package controllers

import (
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/applications/interfaces"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/services"
)

type HealthController struct {
	service   services.ApplicationServiceInterface
	scheduler interfaces.SchedulerInterface
	startTime time.Time
}

type healthResponse struct {
	Status           string     `json:"status"`
	Uptime           string     `json:"uptime"`
	UptimeSeconds    float64    `json:"uptime_seconds"`
	Applied          int        `json:"applied"`
	ApplicationsOpen bool       `json:"applications_open"`
	LastReset        *time.Time `json:"last_reset"`
}

// Alive serves the uptime monitor at the root path.
func (hc *HealthController) Alive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Bot is alive!"))
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:           "ok",
		Uptime:           formatDuration(uptime),
		UptimeSeconds:    uptime.Seconds(),
		Applied:          hc.service.AppliedCount(),
		ApplicationsOpen: hc.scheduler.Open(),
		LastReset:        hc.service.LastReset(),
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(service services.ApplicationServiceInterface, scheduler interfaces.SchedulerInterface) *HealthController {
	return &HealthController{
		service:   service,
		scheduler: scheduler,
		startTime: time.Now(),
	}
}
