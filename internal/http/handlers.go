package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"ledgerbot/internal/queue"
	"ledgerbot/internal/slack"
)

const maxEventBody = 1 << 20 // Slack event payloads are small; 1MB is generous

// handleSlackEvents is the single webhook entry point: verify the signature,
// decode the event, then either enqueue the command or handle it inline and
// reply through the Web API.
func (s *Server) handleSlackEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxEventBody))
	if err != nil {
		slog.WarnContext(ctx, "Failed to read event body", "error", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if err := slack.VerifyRequest(r.Header, body, s.signingSecret); err != nil {
		slog.WarnContext(ctx, "Rejected unsigned event", "error", err)
		http.Error(w, "invalid request signature", http.StatusForbidden)
		return
	}

	inbound, err := slack.ParseInbound(body)
	if err != nil {
		slog.WarnContext(ctx, "Undecodable event payload", "error", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if inbound.Challenge != "" {
		w.Header().Set("Content-Type", "text/plain")
		io.WriteString(w, inbound.Challenge)
		return
	}

	if msg := inbound.Message; msg != nil {
		if s.publisher != nil {
			cmd := queue.NewCommandMessage(msg.Channel, msg.UserID, msg.Text)
			if err := s.publisher.PublishCommand(ctx, cmd); err != nil {
				slog.ErrorContext(ctx, "Failed to enqueue command",
					"error", err,
					"channel", msg.Channel,
					"user_id", msg.UserID)
				// Fall back to inline handling rather than dropping the command.
				s.processInline(w, r, msg)
				return
			}
		} else {
			s.processInline(w, r, msg)
			return
		}
	}

	writeOK(w)
}

func (s *Server) processInline(w http.ResponseWriter, r *http.Request, msg *slack.InboundMessage) {
	ctx := r.Context()
	sender := s.users.Resolve(msg.UserID)
	reply := s.service.HandleCommand(ctx, msg.Text, sender)
	if err := s.replier.Reply(ctx, msg.Channel, reply); err != nil {
		slog.ErrorContext(ctx, "Failed to post reply",
			"error", err,
			"channel", msg.Channel)
	}
	writeOK(w)
}

func writeOK(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
