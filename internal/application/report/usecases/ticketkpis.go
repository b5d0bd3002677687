package usecases

import (
	"context"
	"math"
	"sort"
	"strconv"

	"github.com/estatedesk/estatedesk/internal/application/report/dto"
	"github.com/estatedesk/estatedesk/internal/domain/admin"
	"github.com/estatedesk/estatedesk/internal/domain/property"
	vo "github.com/estatedesk/estatedesk/internal/domain/ticket/valueobjects"
	"github.com/estatedesk/estatedesk/internal/shared/biztime"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

const unassignedLabel = "Unassigned"

type TicketKPIsUseCase struct {
	stats        TicketStatsReader
	propertyRepo property.Repository
	adminRepo    admin.Repository
	logger       logger.Interface
}

func NewTicketKPIsUseCase(
	stats TicketStatsReader,
	propertyRepo property.Repository,
	adminRepo admin.Repository,
	logger logger.Interface,
) *TicketKPIsUseCase {
	return &TicketKPIsUseCase{
		stats:        stats,
		propertyRepo: propertyRepo,
		adminRepo:    adminRepo,
		logger:       logger,
	}
}

func (uc *TicketKPIsUseCase) Execute(ctx context.Context, q WindowQuery) (*dto.TicketKPIsDTO, error) {
	w, err := q.resolve()
	if err != nil {
		return nil, err
	}
	uc.logger.Infow("computing ticket kpis", "from", w.fromLabel, "to", w.toLabel)

	out := &dto.TicketKPIsDTO{From: w.fromLabel, To: w.toLabel}

	if out.Opened, err = uc.stats.CountCreated(ctx, w.start, w.end); err != nil {
		return nil, passOrInternal(uc.logger, "failed to count opened tickets", err)
	}

	spans, err := uc.stats.ListResolved(ctx, w.start, w.end)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to list resolved tickets", err)
	}
	out.Resolved = int64(len(spans))
	out.AvgResolutionHours = averageHours(spans)

	byStatus, err := uc.stats.CountByStatus(ctx)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to count tickets by status", err)
	}
	for _, kc := range byStatus {
		switch vo.TicketStatus(kc.Key) {
		case vo.StatusOpen:
			out.CurrentlyOpen = kc.Count
		case vo.StatusInProgress:
			out.CurrentlyInProg = kc.Count
		}
	}

	if out.Overdue, err = uc.stats.CountOverdue(ctx, biztime.Now()); err != nil {
		return nil, passOrInternal(uc.logger, "failed to count overdue tickets", err)
	}

	byCategory, err := uc.stats.CountCreatedByCategory(ctx, w.start, w.end)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to group tickets by category", err)
	}
	out.ByCategory = categoryBreakdown(byCategory)

	byProperty, err := uc.stats.CountCreatedByProperty(ctx, w.start, w.end)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to group tickets by property", err)
	}
	out.ByProperty = uc.propertyBreakdown(ctx, byProperty)

	byAdmin, err := uc.stats.CountCreatedByAdmin(ctx, w.start, w.end)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to group tickets by admin", err)
	}
	out.ByAdmin = uc.adminBreakdown(ctx, byAdmin)

	return out, nil
}

// averageHours is rounded to one decimal; zero when nothing was resolved.
func averageHours(spans []ResolvedSpan) float64 {
	if len(spans) == 0 {
		return 0
	}
	var total float64
	for _, s := range spans {
		d := s.ResolvedAt.Sub(s.CreatedAt)
		if d < 0 {
			d = 0
		}
		total += d.Hours()
	}
	return math.Round(total/float64(len(spans))*10) / 10
}

// categoryBreakdown lists every category in menu order, including empty ones.
func categoryBreakdown(rows []KeyCount) []*dto.BreakdownDTO {
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Key] += r.Count
	}
	out := make([]*dto.BreakdownDTO, 0, len(vo.AllCategories()))
	for _, c := range vo.AllCategories() {
		out = append(out, &dto.BreakdownDTO{Label: c.String(), Count: counts[c.String()]})
	}
	return out
}

func (uc *TicketKPIsUseCase) propertyBreakdown(ctx context.Context, rows []IDCount) []*dto.BreakdownDTO {
	names := map[uint]string{}
	props, err := uc.propertyRepo.List(ctx)
	if err != nil {
		uc.logger.Warnw("failed to load property names for report", "error", err)
	}
	for _, p := range props {
		names[p.ID()] = p.Name()
	}
	return labelled(rows, names)
}

func (uc *TicketKPIsUseCase) adminBreakdown(ctx context.Context, rows []IDCount) []*dto.BreakdownDTO {
	var ids []uint
	for _, r := range rows {
		if r.ID != nil {
			ids = append(ids, *r.ID)
		}
	}
	names := map[uint]string{}
	if len(ids) > 0 {
		admins, err := uc.adminRepo.GetByIDs(ctx, ids)
		if err != nil {
			uc.logger.Warnw("failed to load admin names for report", "error", err)
		}
		for _, a := range admins {
			names[a.ID()] = a.Name()
		}
	}
	return labelled(rows, names)
}

// labelled sorts by count descending, then label, so report output is stable.
func labelled(rows []IDCount, names map[uint]string) []*dto.BreakdownDTO {
	out := make([]*dto.BreakdownDTO, 0, len(rows))
	for _, r := range rows {
		b := &dto.BreakdownDTO{ID: r.ID, Count: r.Count, Label: unassignedLabel}
		if r.ID != nil {
			b.Label = names[*r.ID]
			if b.Label == "" {
				b.Label = "#" + strconv.FormatUint(uint64(*r.ID), 10)
			}
		}
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}
