package queue

import (
	"encoding/json"
	"time"
)

// CommandMessage carries one inbound chat command from the webhook handler
// to the worker. The raw text travels as-is; classification happens on the
// consuming side.
type CommandMessage struct {
	Channel    string    `json:"channel"`
	UserID     string    `json:"user_id"`
	Text       string    `json:"text"`
	ReceivedAt time.Time `json:"received_at"`
}

func NewCommandMessage(channel, userID, text string) *CommandMessage {
	return &CommandMessage{
		Channel:    channel,
		UserID:     userID,
		Text:       text,
		ReceivedAt: time.Now(),
	}
}

func (m *CommandMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func CommandMessageFromJSON(data []byte) (*CommandMessage, error) {
	var msg CommandMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
