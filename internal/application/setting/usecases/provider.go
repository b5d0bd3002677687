package usecases

import (
	"context"
	stderrors "errors"
	"strings"
	"sync"

	"github.com/estatedesk/estatedesk/internal/domain/setting"
	"github.com/estatedesk/estatedesk/internal/shared/constants"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

// Provider resolves settings database first with the config file as
// fallback. Values are cached until a change notification arrives.
type Provider struct {
	settingRepo     setting.Repository
	fallbackBaseURL string
	logger          logger.Interface

	mu        sync.RWMutex
	baseURL   string
	baseValid bool
}

func NewProvider(settingRepo setting.Repository, fallbackBaseURL string, logger logger.Interface) *Provider {
	return &Provider{
		settingRepo:     settingRepo,
		fallbackBaseURL: normalizeBaseURL(fallbackBaseURL),
		logger:          logger,
	}
}

// PublicBaseURL returns the base for shared job card links, or "" when link
// sharing is disabled.
func (p *Provider) PublicBaseURL(ctx context.Context) string {
	p.mu.RLock()
	if p.baseValid {
		v := p.baseURL
		p.mu.RUnlock()
		return v
	}
	p.mu.RUnlock()

	value := p.fallbackBaseURL
	s, err := p.settingRepo.GetByKey(ctx, constants.SettingCategoryJobCard, constants.SettingKeyPublicBaseURL)
	switch {
	case err == nil && s.HasValue():
		value = normalizeBaseURL(s.Value())
	case err != nil && !stderrors.Is(err, setting.ErrSettingNotFound):
		// not cached, the next call retries the database
		p.logger.Warnw("failed to read public base URL setting, using config fallback", "error", err)
		return p.fallbackBaseURL
	}

	p.mu.Lock()
	p.baseURL = value
	p.baseValid = true
	p.mu.Unlock()
	return value
}

// OnSettingChange drops cached values of the changed category.
func (p *Provider) OnSettingChange(ctx context.Context, category string, changes map[string]string) error {
	if category != constants.SettingCategoryJobCard {
		return nil
	}
	if _, ok := changes[constants.SettingKeyPublicBaseURL]; !ok {
		return nil
	}
	p.mu.Lock()
	p.baseValid = false
	p.mu.Unlock()
	p.logger.Infow("public base URL setting changed")
	return nil
}

func normalizeBaseURL(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), "/")
}
