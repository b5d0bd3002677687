package whatsapp

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatedesk/estatedesk/internal/application/intake"
)

const samplePayload = `{
  "object": "whatsapp_business_account",
  "entry": [{
    "changes": [{
      "field": "messages",
      "value": {
        "messages": [
          {"id": "wamid.1", "from": "254700000001", "type": "text", "text": {"body": "1"}},
          {"id": "wamid.2", "from": "254700000001", "type": "image", "image": {"id": "m-9", "mime_type": "image/png"}},
          {"id": "wamid.3", "from": "254700000001", "type": "sticker"}
        ]
      }
    }]
  }]
}`

func TestParseWebhook(t *testing.T) {
	msgs, err := ParseWebhook([]byte(samplePayload))
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	assert.Equal(t, intake.InboundMessage{ID: "wamid.1", From: "254700000001", Type: intake.MessageTypeText, Text: "1"}, msgs[0])
	assert.Equal(t, intake.MessageTypeImage, msgs[1].Type)
	assert.Equal(t, "m-9", msgs[1].MediaID)
	assert.Equal(t, "image/png", msgs[1].MimeType)
}

func TestParseWebhook_StatusCallbackHasNoMessages(t *testing.T) {
	msgs, err := ParseWebhook([]byte(`{"entry":[{"changes":[{"value":{"statuses":[{"id":"x"}]}}]}]}`))
	require.NoError(t, err)
	assert.Empty(t, msgs)

	_, err = ParseWebhook([]byte(`not json`))
	assert.Error(t, err)
}

func TestVerifySignature(t *testing.T) {
	body := []byte(samplePayload)
	mac := hmac.New(sha256.New, []byte("app-secret"))
	mac.Write(body)
	valid := "sha256=" + hex.EncodeToString(mac.Sum(nil))

	assert.True(t, VerifySignature("app-secret", body, valid))
	assert.False(t, VerifySignature("other", body, valid))
	assert.False(t, VerifySignature("app-secret", body, "deadbeef"))
	assert.False(t, VerifySignature("app-secret", body, "sha256=zz"))
	assert.False(t, VerifySignature("", body, ""))

	unkeyed := hmac.New(sha256.New, nil)
	unkeyed.Write(body)
	assert.False(t, VerifySignature("", body, "sha256="+hex.EncodeToString(unkeyed.Sum(nil))),
		"a missing secret must not accept bodies signed with an empty key")
}
