package usecases

import (
	"context"

	"github.com/estatedesk/estatedesk/internal/application/report/dto"
	"github.com/estatedesk/estatedesk/internal/domain/property"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type JobCardCostsUseCase struct {
	costs        JobCardCostReader
	propertyRepo property.Repository
	logger       logger.Interface
}

func NewJobCardCostsUseCase(costs JobCardCostReader, propertyRepo property.Repository, logger logger.Interface) *JobCardCostsUseCase {
	return &JobCardCostsUseCase{costs: costs, propertyRepo: propertyRepo, logger: logger}
}

// Execute totals estimated and actual cost of job cards created in the window.
func (uc *JobCardCostsUseCase) Execute(ctx context.Context, q WindowQuery) (*dto.JobCardCostsDTO, error) {
	w, err := q.resolve()
	if err != nil {
		return nil, err
	}

	rows, err := uc.costs.CostsByProperty(ctx, w.start, w.end)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to aggregate job card costs", err)
	}

	names := map[uint]string{}
	props, err := uc.propertyRepo.List(ctx)
	if err != nil {
		uc.logger.Warnw("failed to load property names for report", "error", err)
	}
	for _, p := range props {
		names[p.ID()] = p.Name()
	}

	out := &dto.JobCardCostsDTO{From: w.fromLabel, To: w.toLabel, Properties: make([]*dto.PropertyCostDTO, 0, len(rows))}
	for _, r := range rows {
		name := unassignedLabel
		if r.PropertyID != nil {
			name = names[*r.PropertyID]
		}
		out.Properties = append(out.Properties, &dto.PropertyCostDTO{
			PropertyID:    r.PropertyID,
			PropertyName:  name,
			JobCards:      r.JobCards,
			EstimatedCost: r.EstimatedCost,
			ActualCost:    r.ActualCost,
			Variance:      r.ActualCost - r.EstimatedCost,
		})
		out.TotalEstimated += r.EstimatedCost
		out.TotalActual += r.ActualCost
	}
	return out, nil
}
