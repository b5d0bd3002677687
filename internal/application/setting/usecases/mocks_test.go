package usecases

import (
	"context"

	"github.com/estatedesk/estatedesk/internal/domain/setting"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type mockSettingRepo struct {
	settings     map[string]*setting.SystemSetting
	GetByKeyFunc func(ctx context.Context, category, key string) (*setting.SystemSetting, error)
	reads        int
	upserts      int
}

func newMockSettingRepo() *mockSettingRepo {
	return &mockSettingRepo{settings: map[string]*setting.SystemSetting{}}
}

func (m *mockSettingRepo) GetByKey(ctx context.Context, category, key string) (*setting.SystemSetting, error) {
	m.reads++
	if m.GetByKeyFunc != nil {
		return m.GetByKeyFunc(ctx, category, key)
	}
	s, ok := m.settings[category+"."+key]
	if !ok {
		return nil, setting.ErrSettingNotFound
	}
	return s, nil
}

func (m *mockSettingRepo) GetByCategory(ctx context.Context, category string) ([]*setting.SystemSetting, error) {
	var out []*setting.SystemSetting
	for _, s := range m.settings {
		if s.Category() == category {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSettingRepo) Upsert(ctx context.Context, s *setting.SystemSetting) error {
	m.upserts++
	m.settings[s.Category()+"."+s.Key()] = s
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
