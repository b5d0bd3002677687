package notification

import (
	"context"
	"sync"

	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type sentMessage struct {
	To       string
	Text     string
	Template string
	Params   []string
}

type mockGateway struct {
	mu               sync.Mutex
	SendTextFunc     func(ctx context.Context, to, message string) error
	SendTemplateFunc func(ctx context.Context, to, name string, params []string) error
	sent             []sentMessage
}

func (m *mockGateway) SendText(ctx context.Context, to, message string) error {
	m.mu.Lock()
	m.sent = append(m.sent, sentMessage{To: to, Text: message})
	m.mu.Unlock()
	if m.SendTextFunc != nil {
		return m.SendTextFunc(ctx, to, message)
	}
	return nil
}

func (m *mockGateway) SendTemplate(ctx context.Context, to, name string, params []string) error {
	m.mu.Lock()
	m.sent = append(m.sent, sentMessage{To: to, Template: name, Params: params})
	m.mu.Unlock()
	if m.SendTemplateFunc != nil {
		return m.SendTemplateFunc(ctx, to, name, params)
	}
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any)            {}
func (noopLogger) Info(string, ...any)             {}
func (noopLogger) Warn(string, ...any)             {}
func (noopLogger) Error(string, ...any)            {}
func (l noopLogger) With(...any) logger.Interface  { return l }
func (l noopLogger) Named(string) logger.Interface { return l }
func (noopLogger) Debugw(string, ...any)           {}
func (noopLogger) Infow(string, ...any)            {}
func (noopLogger) Warnw(string, ...any)            {}
func (noopLogger) Errorw(string, ...any)           {}
