package slack

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"testing"
	"time"

	"ledgerbot/internal/core"
)

func TestUserMapResolve(t *testing.T) {
	m := UserMap{Jacob: "U111", Naomi: "U222"}
	cases := []struct {
		userID string
		want   core.Person
	}{
		{"U111", core.PersonJacob},
		{"U222", core.PersonNaomi},
		{"U999", core.PersonUnknown},
		{"", core.PersonUnknown},
	}
	for _, tc := range cases {
		if got := m.Resolve(tc.userID); got != tc.want {
			t.Fatalf("Resolve(%q) = %q, want %q", tc.userID, got, tc.want)
		}
	}
}

func TestUserMapEmptyMappingNeverMatchesEmptyID(t *testing.T) {
	var m UserMap
	if got := m.Resolve(""); got != core.PersonUnknown {
		t.Fatalf("empty mapping resolved %q", got)
	}
}

func signedHeaders(t *testing.T, secret string, body []byte) http.Header {
	t.Helper()
	ts := fmt.Sprintf("%d", time.Now().Unix())
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "v0:%s:%s", ts, body)
	h := http.Header{}
	h.Set("X-Slack-Request-Timestamp", ts)
	h.Set("X-Slack-Signature", "v0="+hex.EncodeToString(mac.Sum(nil)))
	return h
}

func TestVerifyRequest(t *testing.T) {
	secret := "test-signing-secret"
	body := []byte(`{"type":"event_callback"}`)

	if err := VerifyRequest(signedHeaders(t, secret, body), body, secret); err != nil {
		t.Fatalf("valid signature rejected: %v", err)
	}
	if err := VerifyRequest(signedHeaders(t, "other-secret", body), body, secret); err == nil {
		t.Fatal("forged signature accepted")
	}
	if err := VerifyRequest(signedHeaders(t, secret, body), []byte("tampered"), secret); err == nil {
		t.Fatal("tampered body accepted")
	}
}

func TestParseInboundChallenge(t *testing.T) {
	body := []byte(`{"type":"url_verification","challenge":"abc123"}`)
	in, err := ParseInbound(body)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if in.Challenge != "abc123" || in.Message != nil {
		t.Fatalf("unexpected inbound: %+v", in)
	}
}

func TestParseInboundMessage(t *testing.T) {
	body := []byte(`{
		"type": "event_callback",
		"event": {
			"type": "message",
			"user": "U111",
			"text": "jacob 2.8M salary",
			"channel": "C123"
		}
	}`)
	in, err := ParseInbound(body)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if in.Message == nil {
		t.Fatal("expected a message")
	}
	if in.Message.UserID != "U111" || in.Message.Channel != "C123" || in.Message.Text != "jacob 2.8M salary" {
		t.Fatalf("unexpected message: %+v", in.Message)
	}
}

func TestParseInboundIgnoresBotMessages(t *testing.T) {
	body := []byte(`{
		"type": "event_callback",
		"event": {
			"type": "message",
			"bot_id": "B42",
			"text": "✅ Logged",
			"channel": "C123"
		}
	}`)
	in, err := ParseInbound(body)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if in.Message != nil {
		t.Fatalf("bot message should be ignored: %+v", in.Message)
	}
}
