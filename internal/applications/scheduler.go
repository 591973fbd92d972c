package applications

import (
	"sync"
	"time"

	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/applications/interfaces"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/providers"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/structures"
	"github.com/roylee0704/gron"
)

// The window opens Sunday 00:00 and closes Monday 23:00 in the
// configured fixed offset. No DST adjustment, matching the announced
// "Sunday 12:00 AM EST to Monday 11:59 PM EST" schedule.
const (
	closeDayHour = 23
)

// WindowResetter clears the applied list for a window that opened at
// the given instant. Implemented by the application service.
type WindowResetter interface {
	ResetWindow(openedAt time.Time) (bool, error)
}

type Scheduler struct {
	config   *structures.Config
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
	resetter WindowResetter
	cron     *gron.Cron
	loc      *time.Location

	mu   sync.Mutex
	open bool
}

func NewScheduler(config *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface, resetter WindowResetter) interfaces.SchedulerInterface {
	return &Scheduler{
		config:   config,
		logger:   logger,
		metrics:  metrics,
		resetter: resetter,
		loc:      time.FixedZone("window", config.Schedule.UTCOffsetHours*3600),
	}
}

func (s *Scheduler) Init() {
	s.Evaluate(time.Now())

	s.cron = gron.New()
	s.cron.AddFunc(gron.Every(s.config.Schedule.TickInterval), func() {
		s.Evaluate(time.Now())
	})
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Open() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Evaluate recomputes the gate from the wall clock. State is derived,
// not accumulated, so a restart mid-window recovers on the first call.
func (s *Scheduler) Evaluate(now time.Time) {
	local := now.In(s.loc)
	open := windowOpen(local)

	s.mu.Lock()
	was := s.open
	s.open = open
	s.mu.Unlock()

	s.metrics.SetApplicationsOpen(open)
	if open != was {
		if open {
			s.logger.Infof(providers.TypeSchedule, "Applications opened")
		} else {
			s.logger.Infof(providers.TypeSchedule, "Applications closed")
		}
	}

	if !open {
		return
	}

	cleared, err := s.resetter.ResetWindow(windowOpenedAt(local).UTC())
	if err != nil {
		s.logger.Errorf(providers.TypeSchedule, "Error while resetting applied list: %s", err)
		return
	}
	if cleared {
		s.logger.Infof(providers.TypeSchedule, "Applied list reset for the new window")
	}
}

func windowOpen(t time.Time) bool {
	switch t.Weekday() {
	case time.Sunday:
		return true
	case time.Monday:
		return t.Hour() < closeDayHour
	default:
		return false
	}
}

// windowOpenedAt returns the Sunday 00:00 that started the window
// containing t. Only meaningful while windowOpen(t) is true.
func windowOpenedAt(t time.Time) time.Time {
	days := int(t.Weekday() - time.Sunday)
	y, m, d := t.AddDate(0, 0, -days).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
