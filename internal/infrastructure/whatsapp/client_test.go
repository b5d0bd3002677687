package whatsapp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "github.com/estatedesk/estatedesk/internal/shared/config"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

func newTestClient(baseURL string) *Client {
	return NewClient(sharedConfig.WhatsAppConfig{
		APIBaseURL:    baseURL,
		PhoneNumberID: "555",
		AccessToken:   "secret-token",
		Templates:     sharedConfig.WhatsAppTemplates{Language: "en_US"},
	}, logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestClient_SendText(t *testing.T) {
	var got outboundMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/555/messages", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.1"}]}`))
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).SendText(context.Background(), "254700000001", "Ticket #5 created")
	require.NoError(t, err)
	assert.Equal(t, "text", got.Type)
	assert.Equal(t, "254700000001", got.To)
	assert.Equal(t, "Ticket #5 created", got.Text.Body)
	assert.False(t, got.Text.PreviewURL)
}

func TestClient_SendTemplate(t *testing.T) {
	var got outboundMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).SendTemplate(context.Background(), "2547", "status_update", []string{"Jane", "#5", "Resolved"})
	require.NoError(t, err)
	require.NotNil(t, got.Template)
	assert.Equal(t, "status_update", got.Template.Name)
	assert.Equal(t, "en_US", got.Template.Language["code"])
	require.Len(t, got.Template.Components, 1)
	assert.Len(t, got.Template.Components[0].Parameters, 3)
	assert.Equal(t, "#5", got.Template.Components[0].Parameters[1].Text)
}

func TestClient_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Re-engagement message","code":131047}}`))
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).SendText(context.Background(), "2547", "hi")
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus)
	assert.True(t, IsOutsideServiceWindow(err))
}

func TestClient_NotConfigured(t *testing.T) {
	c := NewClient(sharedConfig.WhatsAppConfig{}, logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil))))
	assert.ErrorIs(t, c.SendText(context.Background(), "1", "x"), ErrNotConfigured)
	_, _, err := c.FetchMedia(context.Background(), "m1")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClient_FetchMedia(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/media-1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"url":       srv.URL + "/download/media-1",
			"mime_type": "image/jpeg",
		})
	})
	mux.HandleFunc("/download/media-1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte{0xff, 0xd8, 0xff})
	})

	data, contentType, err := newTestClient(srv.URL).FetchMedia(context.Background(), "media-1")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xd8, 0xff}, data)
	assert.Equal(t, "image/jpeg", contentType)
}
