// Package whatsapp is the WhatsApp Cloud API gateway: outbound text and
// template messages, inbound media download and webhook payload parsing.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sharedConfig "github.com/estatedesk/estatedesk/internal/shared/config"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

const (
	defaultBaseURL = "https://graph.facebook.com/v19.0"
	defaultTimeout = 15 * time.Second
	maxMediaBytes  = 16 << 20
)

// Client sends messages through the Cloud API.
type Client struct {
	config     sharedConfig.WhatsAppConfig
	httpClient *http.Client
	baseURL    string
	logger     logger.Interface
}

func NewClient(config sharedConfig.WhatsAppConfig, log logger.Interface) *Client {
	timeout := defaultTimeout
	if config.TimeoutSeconds > 0 {
		timeout = time.Duration(config.TimeoutSeconds) * time.Second
	}
	baseURL := strings.TrimRight(config.APIBaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     log,
	}
}

// Configured reports whether outbound calls can be made.
func (c *Client) Configured() bool {
	return c.config.AccessToken != "" && c.config.PhoneNumberID != ""
}

type textBody struct {
	Body       string `json:"body"`
	PreviewURL bool   `json:"preview_url"`
}

type templateParam struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type templateComponent struct {
	Type       string          `json:"type"`
	Parameters []templateParam `json:"parameters"`
}

type templateBody struct {
	Name       string              `json:"name"`
	Language   map[string]string   `json:"language"`
	Components []templateComponent `json:"components,omitempty"`
}

type outboundMessage struct {
	MessagingProduct string        `json:"messaging_product"`
	RecipientType    string        `json:"recipient_type"`
	To               string        `json:"to"`
	Type             string        `json:"type"`
	Text             *textBody     `json:"text,omitempty"`
	Template         *templateBody `json:"template,omitempty"`
}

type apiErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// SendText sends a free text message. Links in the body get a preview.
func (c *Client) SendText(ctx context.Context, to, message string) error {
	return c.send(ctx, outboundMessage{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
		Text:             &textBody{Body: message, PreviewURL: strings.Contains(message, "http")},
	})
}

// SendTemplate sends a pre-approved template with positional body parameters.
func (c *Client) SendTemplate(ctx context.Context, to, templateName string, params []string) error {
	tpl := &templateBody{
		Name:     templateName,
		Language: map[string]string{"code": c.language()},
	}
	if len(params) > 0 {
		comp := templateComponent{Type: "body"}
		for _, p := range params {
			comp.Parameters = append(comp.Parameters, templateParam{Type: "text", Text: p})
		}
		tpl.Components = []templateComponent{comp}
	}
	return c.send(ctx, outboundMessage{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "template",
		Template:         tpl,
	})
}

func (c *Client) language() string {
	if c.config.Templates.Language != "" {
		return c.config.Templates.Language
	}
	return "en"
}

func (c *Client) send(ctx context.Context, msg outboundMessage) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	jsonBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.config.PhoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	c.logger.Debugw("whatsapp message sent", "to", msg.To, "type", msg.Type)
	return nil
}

// FetchMedia resolves an inbound media id to its download URL and fetches the bytes.
func (c *Client) FetchMedia(ctx context.Context, mediaID string) ([]byte, string, error) {
	if !c.Configured() {
		return nil, "", ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", c.baseURL, mediaID), nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, "", err
	}
	var meta struct {
		URL      string `json:"url"`
		MimeType string `json:"mime_type"`
	}
	err = json.NewDecoder(resp.Body).Decode(&meta)
	resp.Body.Close()
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode media metadata: %w", err)
	}
	if meta.URL == "" {
		return nil, "", fmt.Errorf("media %s has no download url", mediaID)
	}

	req, err = http.NewRequestWithContext(ctx, http.MethodGet, meta.URL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	resp, err = c.do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxMediaBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read media: %w", err)
	}
	if len(data) > maxMediaBytes {
		return nil, "", fmt.Errorf("media %s exceeds %d bytes", mediaID, maxMediaBytes)
	}

	contentType := meta.MimeType
	if contentType == "" {
		contentType = resp.Header.Get("Content-Type")
	}
	return data, contentType, nil
}

// do authorises the request and turns non-2xx responses into *APIError.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+c.config.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()

	apiErr := &APIError{HTTPStatus: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	var body apiErrorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error.Message != "" {
		apiErr.Code = body.Error.Code
		apiErr.Message = body.Error.Message
	}
	return nil, apiErr
}
