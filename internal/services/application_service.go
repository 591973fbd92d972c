package services

import (
	"sync"
	"time"

	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/applications"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/models"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/providers"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/structures"
)

type Verdict int

const (
	VerdictEligible Verdict = iota
	VerdictClosed
	VerdictAlreadyApplied
	VerdictInProgress
)

func (v Verdict) String() string {
	switch v {
	case VerdictClosed:
		return "closed"
	case VerdictAlreadyApplied:
		return "already_applied"
	case VerdictInProgress:
		return "in_progress"
	default:
		return "eligible"
	}
}

// CheckEligibility decides whether a user may start an interview.
// Administrators bypass both the window and the one-per-window limit.
func CheckEligibility(open, isAdmin, applied bool) Verdict {
	if !open && !isAdmin {
		return VerdictClosed
	}
	if !isAdmin && applied {
		return VerdictAlreadyApplied
	}
	return VerdictEligible
}

type ApplicationServiceInterface interface {
	Restore() error
	Persist() error
	Eligibility(userID string, isAdmin, open bool) Verdict
	BeginInterview(userID string) bool
	EndInterview(userID string)
	RecordApplication(userID string, isAdmin bool) error
	ResetWindow(openedAt time.Time) (bool, error)
	AppliedCount() int
	LastReset() *time.Time
}

// ApplicationService owns the store. Every mutation happens under one
// mutex and is written through to disk before the mutex is released,
// so concurrent interview completions cannot lose an append.
type ApplicationService struct {
	config      *structures.Config
	logger      providers.Logger
	fileManager *applications.FileManager

	mu       sync.Mutex
	store    *models.ApplicationStore
	inFlight map[string]struct{}
}

func NewApplicationService(config *structures.Config, fileManager *applications.FileManager, logger providers.Logger) ApplicationServiceInterface {
	return &ApplicationService{
		config:      config,
		logger:      logger,
		fileManager: fileManager,
		store:       models.NewApplicationStore(),
		inFlight:    make(map[string]struct{}),
	}
}

func (as *ApplicationService) Restore() error {
	store, err := as.fileManager.Load(as.config.Persistence.FilePath)
	if err != nil {
		return err
	}

	as.mu.Lock()
	as.store = store
	as.mu.Unlock()
	return nil
}

func (as *ApplicationService) Persist() error {
	as.mu.Lock()
	defer as.mu.Unlock()
	return as.fileManager.Save(as.config.Persistence.FilePath, as.store)
}

func (as *ApplicationService) Eligibility(userID string, isAdmin, open bool) Verdict {
	as.mu.Lock()
	defer as.mu.Unlock()
	return CheckEligibility(open, isAdmin, as.store.Contains(userID))
}

// BeginInterview marks userID as having an interview in flight.
// Returns false when one is already running for that user.
func (as *ApplicationService) BeginInterview(userID string) bool {
	as.mu.Lock()
	defer as.mu.Unlock()
	if _, ok := as.inFlight[userID]; ok {
		return false
	}
	as.inFlight[userID] = struct{}{}
	return true
}

func (as *ApplicationService) EndInterview(userID string) {
	as.mu.Lock()
	defer as.mu.Unlock()
	delete(as.inFlight, userID)
}

// RecordApplication adds a completed applicant to the applied list and
// persists. Administrators are never recorded.
func (as *ApplicationService) RecordApplication(userID string, isAdmin bool) error {
	if isAdmin {
		return nil
	}

	as.mu.Lock()
	defer as.mu.Unlock()
	if !as.store.Add(userID) {
		return nil
	}
	return as.fileManager.Save(as.config.Persistence.FilePath, as.store)
}

// ResetWindow clears the applied list for the window that opened at
// openedAt, at most once per window. The open instant is stamped into
// lastReset so repeated ticks inside the opening hour and restarts
// mid-window do not clear again.
func (as *ApplicationService) ResetWindow(openedAt time.Time) (bool, error) {
	as.mu.Lock()
	defer as.mu.Unlock()

	if as.store.LastReset != nil && !as.store.LastReset.Before(openedAt) {
		return false, nil
	}

	as.store.Clear()
	reset := openedAt
	as.store.LastReset = &reset
	if err := as.fileManager.Save(as.config.Persistence.FilePath, as.store); err != nil {
		return false, err
	}
	return true, nil
}

func (as *ApplicationService) AppliedCount() int {
	as.mu.Lock()
	defer as.mu.Unlock()
	return len(as.store.Applied)
}

func (as *ApplicationService) LastReset() *time.Time {
	as.mu.Lock()
	defer as.mu.Unlock()
	return as.store.LastReset
}
