package bot

import (
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/liltimkeepitabuck50/Cs-application-bot/internal/services"
)

type sentEmbed struct {
	channelID string
	embed     *discordgo.MessageEmbed
}

type sentComplex struct {
	channelID string
	msg       *discordgo.MessageSend
}

type editCall struct {
	channelID  string
	messageID  string
	components []discordgo.MessageComponent
}

type mockMessenger struct {
	mu      sync.Mutex
	dmErr   error
	sendErr error
	embeds  []sentEmbed
	complex []sentComplex
	edits   []editCall
}

func (m *mockMessenger) DMChannel(userID string) (string, error) {
	if m.dmErr != nil {
		return "", m.dmErr
	}
	return "dm-" + userID, nil
}

func (m *mockMessenger) SendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	if m.sendErr != nil {
		return nil, m.sendErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.embeds = append(m.embeds, sentEmbed{channelID: channelID, embed: embed})
	return &discordgo.Message{ID: "msg"}, nil
}

func (m *mockMessenger) SendComplex(channelID string, msg *discordgo.MessageSend) (*discordgo.Message, error) {
	if m.sendErr != nil {
		return nil, m.sendErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.complex = append(m.complex, sentComplex{channelID: channelID, msg: msg})
	return &discordgo.Message{ID: "msg"}, nil
}

func (m *mockMessenger) EditComponents(channelID, messageID string, components []discordgo.MessageComponent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.edits = append(m.edits, editCall{channelID: channelID, messageID: messageID, components: components})
	return nil
}

// mockAppService implements services.ApplicationServiceInterface.
type mockAppService struct {
	mu        sync.Mutex
	recorded  []string
	ended     []string
	lastReset *time.Time
}

func (m *mockAppService) Restore() error { return nil }
func (m *mockAppService) Persist() error { return nil }

func (m *mockAppService) Eligibility(_ string, _, _ bool) services.Verdict {
	return services.VerdictEligible
}

func (m *mockAppService) BeginInterview(_ string) bool { return true }

func (m *mockAppService) EndInterview(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ended = append(m.ended, userID)
}

func (m *mockAppService) RecordApplication(userID string, isAdmin bool) error {
	if isAdmin {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recorded = append(m.recorded, userID)
	return nil
}

func (m *mockAppService) ResetWindow(_ time.Time) (bool, error) { return false, nil }
func (m *mockAppService) AppliedCount() int                     { return len(m.recorded) }
func (m *mockAppService) LastReset() *time.Time                 { return m.lastReset }

// scriptedAwaiter returns canned answers in order, or an error at a
// chosen step.
type scriptedAwaiter struct {
	answers []string
	errAt   int
	err     error
	i       int
}

func (a *scriptedAwaiter) Await(_, _ string, _ time.Duration) (string, error) {
	step := a.i
	a.i++
	if a.err != nil && step == a.errAt {
		return "", a.err
	}
	return a.answers[step], nil
}
