package bot

import (
	"errors"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

var ErrAwaitTimeout = errors.New("timed out waiting for a reply")

// Awaiter blocks for the next DM reply from a user in a channel.
type Awaiter interface {
	Await(channelID, userID string, timeout time.Duration) (string, error)
}

// Collector routes inbound direct messages to interviews waiting on
// them. One waiter per (channel, user); interviews are deduplicated
// upstream so a key is never contended.
type Collector struct {
	mu      sync.Mutex
	waiters map[string]chan string
}

func NewCollector() *Collector {
	return &Collector{waiters: make(map[string]chan string)}
}

func waiterKey(channelID, userID string) string {
	return channelID + ":" + userID
}

// HandleMessage is registered as a MessageCreate handler on the
// session. Guild messages and bot authors are ignored.
func (c *Collector) HandleMessage(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID != "" {
		return
	}

	c.mu.Lock()
	waiter, ok := c.waiters[waiterKey(m.ChannelID, m.Author.ID)]
	c.mu.Unlock()
	if !ok {
		return
	}

	select {
	case waiter <- m.Content:
	default:
	}
}

func (c *Collector) Await(channelID, userID string, timeout time.Duration) (string, error) {
	key := waiterKey(channelID, userID)
	waiter := make(chan string, 1)

	c.mu.Lock()
	c.waiters[key] = waiter
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.waiters, key)
		c.mu.Unlock()
	}()

	select {
	case content := <-waiter:
		return content, nil
	case <-time.After(timeout):
		return "", ErrAwaitTimeout
	}
}
