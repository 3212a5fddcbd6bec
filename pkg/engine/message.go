package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Message is a human-readable event waiting to be displayed
type Message struct {
	UUID     string    `json:"uuid"`
	PlayerID string    `json:"playerId"`
	Text     string    `json:"text"`
	Time     time.Time `json:"time"`
}

func (e *Engine) enqueueMessage(playerID, text string) {
	e.messages.Push(Message{
		UUID:     uuid.New().String(),
		PlayerID: playerID,
		Text:     text,
		Time:     e.clock.Now(),
	})
}

// SendMessage queues a chat message from the player
func (e *Engine) SendMessage(playerID, text string) error {
	p, err := e.lookup(playerID)
	if err != nil {
		return err
	}

	e.enqueueMessage(p.ID, fmt.Sprintf("%s: %s", p, text))
	return nil
}

// DequeueMessage removes and returns the oldest message text
// An empty string is returned when there are no messages
func (e *Engine) DequeueMessage() string {
	msg, _ := e.messages.Pop()
	return msg.Text
}

// NextMessage removes and returns the oldest message
// The second return value is false when there are no messages
func (e *Engine) NextMessage() (Message, bool) {
	return e.messages.Pop()
}

// PendingMessageCount returns the number of messages waiting to be displayed
func (e *Engine) PendingMessageCount() int {
	return e.messages.Len()
}
