package dto

// BreakdownDTO is one bucket of a grouped count. ID is set for property and
// admin buckets; Label is empty when the bucket is unassigned.
type BreakdownDTO struct {
	ID    *uint  `json:"id,omitempty"`
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type TicketKPIsDTO struct {
	From               string          `json:"from"`
	To                 string          `json:"to"`
	Opened             int64           `json:"opened"`
	Resolved           int64           `json:"resolved"`
	CurrentlyOpen      int64           `json:"currently_open"`
	CurrentlyInProg    int64           `json:"currently_in_progress"`
	AvgResolutionHours float64         `json:"avg_resolution_hours"`
	Overdue            int64           `json:"overdue"`
	ByCategory         []*BreakdownDTO `json:"by_category"`
	ByProperty         []*BreakdownDTO `json:"by_property"`
	ByAdmin            []*BreakdownDTO `json:"by_admin"`
}

// PropertyCostDTO amounts are in minor currency units.
type PropertyCostDTO struct {
	PropertyID    *uint  `json:"property_id,omitempty"`
	PropertyName  string `json:"property_name"`
	JobCards      int64  `json:"job_cards"`
	EstimatedCost int64  `json:"estimated_cost"`
	ActualCost    int64  `json:"actual_cost"`
	Variance      int64  `json:"variance"`
}

type JobCardCostsDTO struct {
	From           string             `json:"from"`
	To             string             `json:"to"`
	Properties     []*PropertyCostDTO `json:"properties"`
	TotalEstimated int64              `json:"total_estimated"`
	TotalActual    int64              `json:"total_actual"`
}
