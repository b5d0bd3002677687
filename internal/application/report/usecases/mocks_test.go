package usecases

import (
	"context"
	"time"

	"github.com/estatedesk/estatedesk/internal/domain/admin"
	"github.com/estatedesk/estatedesk/internal/domain/property"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type fakeStats struct {
	created    int64
	resolved   []ResolvedSpan
	byStatus   []KeyCount
	overdue    int64
	byCategory []KeyCount
	byProperty []IDCount
	byAdmin    []IDCount
	err        error

	gotFrom, gotTo time.Time
	gotNow         time.Time
}

func (f *fakeStats) CountCreated(ctx context.Context, from, to time.Time) (int64, error) {
	f.gotFrom, f.gotTo = from, to
	return f.created, f.err
}

func (f *fakeStats) ListResolved(ctx context.Context, from, to time.Time) ([]ResolvedSpan, error) {
	return f.resolved, nil
}

func (f *fakeStats) CountByStatus(ctx context.Context) ([]KeyCount, error) {
	return f.byStatus, nil
}

func (f *fakeStats) CountOverdue(ctx context.Context, now time.Time) (int64, error) {
	f.gotNow = now
	return f.overdue, nil
}

func (f *fakeStats) CountCreatedByCategory(ctx context.Context, from, to time.Time) ([]KeyCount, error) {
	return f.byCategory, nil
}

func (f *fakeStats) CountCreatedByProperty(ctx context.Context, from, to time.Time) ([]IDCount, error) {
	return f.byProperty, nil
}

func (f *fakeStats) CountCreatedByAdmin(ctx context.Context, from, to time.Time) ([]IDCount, error) {
	return f.byAdmin, nil
}

type fakeCosts struct {
	rows []PropertyCosts
}

func (f *fakeCosts) CostsByProperty(ctx context.Context, from, to time.Time) ([]PropertyCosts, error) {
	return f.rows, nil
}

// propertyLister only answers List.
type propertyLister struct {
	property.Repository
	props []*property.Property
}

func (p propertyLister) List(ctx context.Context) ([]*property.Property, error) {
	return p.props, nil
}

// adminLookup only answers GetByIDs.
type adminLookup struct {
	admin.Repository
	admins []*admin.Admin
}

func (a adminLookup) GetByIDs(ctx context.Context, ids []uint) ([]*admin.Admin, error) {
	return a.admins, nil
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
