package whatsapp

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/estatedesk/estatedesk/internal/application/intake"
)

// SignatureHeader carries the HMAC-SHA256 of the raw body, keyed by the app secret.
const SignatureHeader = "X-Hub-Signature-256"

type webhookPayload struct {
	Object string `json:"object"`
	Entry  []struct {
		Changes []struct {
			Field string `json:"field"`
			Value struct {
				Messages []webhookMessage `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

type webhookMessage struct {
	ID   string `json:"id"`
	From string `json:"from"`
	Type string `json:"type"`
	Text struct {
		Body string `json:"body"`
	} `json:"text"`
	Image struct {
		ID       string `json:"id"`
		MimeType string `json:"mime_type"`
		Caption  string `json:"caption"`
	} `json:"image"`
	Document struct {
		ID       string `json:"id"`
		MimeType string `json:"mime_type"`
		Caption  string `json:"caption"`
	} `json:"document"`
}

// VerifySignature checks the webhook signature header against body. Without
// an app secret nothing can be verified and every body is refused.
func VerifySignature(appSecret string, body []byte, header string) bool {
	if appSecret == "" {
		return false
	}
	sig, ok := strings.CutPrefix(header, "sha256=")
	if !ok {
		return false
	}
	got, err := hex.DecodeString(sig)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}

// ParseWebhook extracts the inbound messages from a webhook body. Status
// callbacks and unsupported message types are skipped.
func ParseWebhook(body []byte) ([]intake.InboundMessage, error) {
	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("invalid webhook payload: %w", err)
	}

	var out []intake.InboundMessage
	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			for _, m := range change.Value.Messages {
				msg := intake.InboundMessage{ID: m.ID, From: m.From}
				switch m.Type {
				case "text":
					msg.Type = intake.MessageTypeText
					msg.Text = m.Text.Body
				case "image":
					msg.Type = intake.MessageTypeImage
					msg.MediaID = m.Image.ID
					msg.MimeType = m.Image.MimeType
					msg.Text = m.Image.Caption
				case "document":
					msg.Type = intake.MessageTypeImage
					msg.MediaID = m.Document.ID
					msg.MimeType = m.Document.MimeType
					msg.Text = m.Document.Caption
				default:
					continue
				}
				out = append(out, msg)
			}
		}
	}
	return out, nil
}
