// Package slack adapts the chat platform: request signature verification,
// event decoding, sender resolution and replies.
package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"ledgerbot/internal/core"

	slackapi "github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

// Replier posts a reply back to the channel a command came from.
type Replier interface {
	Reply(ctx context.Context, channel, text string) error
}

// Client wraps the Slack Web API client for posting replies.
type Client struct {
	api *slackapi.Client
}

func NewClient(botToken string) *Client {
	return &Client{api: slackapi.New(botToken)}
}

func (c *Client) Reply(ctx context.Context, channel, text string) error {
	_, _, err := c.api.PostMessageContext(ctx, channel, slackapi.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("post message to %s: %w", channel, err)
	}
	return nil
}

// UserMap resolves Slack user IDs to household members. IDs outside the map
// resolve to PersonUnknown; classification still proceeds and only the
// self-log shorthand fails for such senders.
type UserMap struct {
	Jacob string
	Naomi string
}

func (m UserMap) Resolve(userID string) core.Person {
	switch {
	case userID != "" && userID == m.Jacob:
		return core.PersonJacob
	case userID != "" && userID == m.Naomi:
		return core.PersonNaomi
	}
	return core.PersonUnknown
}

// VerifyRequest checks the Slack signing-secret signature over the raw body.
func VerifyRequest(header http.Header, body []byte, signingSecret string) error {
	sv, err := slackapi.NewSecretsVerifier(header, signingSecret)
	if err != nil {
		return fmt.Errorf("build verifier: %w", err)
	}
	if _, err := sv.Write(body); err != nil {
		return fmt.Errorf("write body to verifier: %w", err)
	}
	if err := sv.Ensure(); err != nil {
		return fmt.Errorf("signature mismatch: %w", err)
	}
	return nil
}

// Inbound is the decoded form of one events-API delivery.
type Inbound struct {
	// Challenge is non-empty for url_verification handshakes; nothing else
	// is set in that case.
	Challenge string

	// Message is set for user-authored channel messages.
	Message *InboundMessage
}

// InboundMessage carries the fields the bot needs from a message event.
type InboundMessage struct {
	Channel string
	UserID  string
	Text    string
}

// ParseInbound decodes an events-API payload. Bot-authored and edited
// messages come back as a nil Message so callers can ignore them without
// special cases.
func ParseInbound(body []byte) (Inbound, error) {
	ev, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		return Inbound{}, fmt.Errorf("parse event: %w", err)
	}

	switch ev.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			return Inbound{}, fmt.Errorf("decode challenge: %w", err)
		}
		return Inbound{Challenge: challenge.Challenge}, nil

	case slackevents.CallbackEvent:
		msg, ok := ev.InnerEvent.Data.(*slackevents.MessageEvent)
		if !ok {
			return Inbound{}, nil
		}
		if msg.BotID != "" || msg.SubType != "" {
			return Inbound{}, nil
		}
		return Inbound{Message: &InboundMessage{
			Channel: msg.Channel,
			UserID:  msg.User,
			Text:    msg.Text,
		}}, nil
	}

	return Inbound{}, nil
}
