package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	reportUsecases "github.com/estatedesk/estatedesk/internal/application/report/usecases"
	jobcardvo "github.com/estatedesk/estatedesk/internal/domain/jobcard/valueobjects"
	vo "github.com/estatedesk/estatedesk/internal/domain/ticket/valueobjects"
	"github.com/estatedesk/estatedesk/internal/infrastructure/persistence/models"
	"github.com/estatedesk/estatedesk/internal/shared/biztime"
	"github.com/estatedesk/estatedesk/internal/shared/db"
)

// ReportRepository runs the aggregate queries behind the KPI reports.
// Averages are left to the caller so the SQL stays portable across MySQL
// and SQLite.
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) tickets(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{})
}

func (r *ReportRepository) CountCreated(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	if err := r.tickets(ctx).
		Where("created_at >= ? AND created_at < ?", from.UTC(), to.UTC()).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count created tickets: %w", err)
	}
	return n, nil
}

func (r *ReportRepository) ListResolved(ctx context.Context, from, to time.Time) ([]reportUsecases.ResolvedSpan, error) {
	var rows []struct {
		CreatedAt  time.Time
		ResolvedAt time.Time
	}
	if err := r.tickets(ctx).
		Select("created_at, resolved_at").
		Where("resolved_at IS NOT NULL AND resolved_at >= ? AND resolved_at < ?", from.UTC(), to.UTC()).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list resolved tickets: %w", err)
	}
	spans := make([]reportUsecases.ResolvedSpan, 0, len(rows))
	for _, row := range rows {
		spans = append(spans, reportUsecases.ResolvedSpan{
			CreatedAt:  biztime.In(row.CreatedAt),
			ResolvedAt: biztime.In(row.ResolvedAt),
		})
	}
	return spans, nil
}

func (r *ReportRepository) CountByStatus(ctx context.Context) ([]reportUsecases.KeyCount, error) {
	var rows []reportUsecases.KeyCount
	if err := r.tickets(ctx).
		Select("status AS `key`, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}
	return rows, nil
}

func (r *ReportRepository) CountOverdue(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	if err := r.tickets(ctx).
		Where("due_date IS NOT NULL AND due_date < ? AND status <> ?", now.UTC(), vo.StatusResolved.String()).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count overdue tickets: %w", err)
	}
	return n, nil
}

func (r *ReportRepository) CountCreatedByCategory(ctx context.Context, from, to time.Time) ([]reportUsecases.KeyCount, error) {
	var rows []reportUsecases.KeyCount
	if err := r.tickets(ctx).
		Select("category AS `key`, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", from.UTC(), to.UTC()).
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by category: %w", err)
	}
	return rows, nil
}

func (r *ReportRepository) CountCreatedByProperty(ctx context.Context, from, to time.Time) ([]reportUsecases.IDCount, error) {
	return r.countByColumn(ctx, "property_id", from, to)
}

func (r *ReportRepository) CountCreatedByAdmin(ctx context.Context, from, to time.Time) ([]reportUsecases.IDCount, error) {
	return r.countByColumn(ctx, "assigned_admin_id", from, to)
}

// column is one of the fixed names above, never caller input.
func (r *ReportRepository) countByColumn(ctx context.Context, column string, from, to time.Time) ([]reportUsecases.IDCount, error) {
	var rows []reportUsecases.IDCount
	if err := r.tickets(ctx).
		Select(column+" AS id, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", from.UTC(), to.UTC()).
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by %s: %w", column, err)
	}
	return rows, nil
}

func (r *ReportRepository) CostsByProperty(ctx context.Context, from, to time.Time) ([]reportUsecases.PropertyCosts, error) {
	var rows []reportUsecases.PropertyCosts
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.JobCardModel{}).
		Select("property_id, COUNT(*) AS job_cards, " +
			"COALESCE(SUM(estimated_cost), 0) AS estimated_cost, " +
			"COALESCE(SUM(actual_cost), 0) AS actual_cost").
		Where("created_at >= ? AND created_at < ?", from.UTC(), to.UTC()).
		Where("status <> ?", jobcardvo.StatusCancelled.String()).
		Group("property_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to sum job card costs: %w", err)
	}
	return rows, nil
}

var (
	_ reportUsecases.TicketStatsReader = (*ReportRepository)(nil)
	_ reportUsecases.JobCardCostReader = (*ReportRepository)(nil)
)
