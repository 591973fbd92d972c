package bot

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dmMessage(channelID, userID, content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			ChannelID: channelID,
			Content:   content,
			Author:    &discordgo.User{ID: userID},
		},
	}
}

func TestCollector_DeliversReply(t *testing.T) {
	c := NewCollector()

	done := make(chan struct{})
	var content string
	var err error
	go func() {
		content, err = c.Await("ch1", "u1", time.Second)
		close(done)
	}()

	// Give Await a moment to register its waiter
	require.Eventually(t, func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		return len(c.waiters) == 1
	}, time.Second, 5*time.Millisecond)

	c.HandleMessage(nil, dmMessage("ch1", "u1", "my answer"))

	<-done
	require.NoError(t, err)
	assert.Equal(t, "my answer", content)
}

func TestCollector_Timeout(t *testing.T) {
	c := NewCollector()

	_, err := c.Await("ch1", "u1", 10*time.Millisecond)
	assert.ErrorIs(t, err, ErrAwaitTimeout)

	// Waiter must have been cleaned up
	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Empty(t, c.waiters)
}

func TestCollector_IgnoresGuildMessages(t *testing.T) {
	c := NewCollector()

	go func() {
		time.Sleep(20 * time.Millisecond)
		m := dmMessage("ch1", "u1", "guild chatter")
		m.GuildID = "guild1"
		c.HandleMessage(nil, m)
	}()

	_, err := c.Await("ch1", "u1", 60*time.Millisecond)
	assert.ErrorIs(t, err, ErrAwaitTimeout)
}

func TestCollector_IgnoresBots(t *testing.T) {
	c := NewCollector()

	go func() {
		time.Sleep(20 * time.Millisecond)
		m := dmMessage("ch1", "u1", "beep")
		m.Author.Bot = true
		c.HandleMessage(nil, m)
	}()

	_, err := c.Await("ch1", "u1", 60*time.Millisecond)
	assert.ErrorIs(t, err, ErrAwaitTimeout)
}

func TestCollector_IgnoresOtherUsers(t *testing.T) {
	c := NewCollector()

	go func() {
		time.Sleep(20 * time.Millisecond)
		c.HandleMessage(nil, dmMessage("ch1", "someone-else", "not mine"))
	}()

	_, err := c.Await("ch1", "u1", 60*time.Millisecond)
	assert.ErrorIs(t, err, ErrAwaitTimeout)
}

func TestCollector_UnsolicitedMessageIsDropped(t *testing.T) {
	c := NewCollector()
	// No waiter registered; must not panic or leak
	c.HandleMessage(nil, dmMessage("ch1", "u1", "hello?"))
}
