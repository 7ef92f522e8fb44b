package models

import (
	"github.com/shopspring/decimal"
)

// Task represents a renovation task row. PhaseOrder is denormalized from
// the static phase table at write time so list queries can sort without a
// join.
type Task struct {
	TaskID        string          `db:"task_id"`
	ProjectID     string          `db:"project_id"`
	Phase         string          `db:"phase"`
	PhaseOrder    int             `db:"phase_order"`
	Title         string          `db:"title"`
	Description   string          `db:"description"`
	Room          string          `db:"room"`
	Status        string          `db:"status"`
	StartDate     string          `db:"start_date"`
	EndDate       string          `db:"end_date"`
	Vendor        string          `db:"vendor"`
	EstimatedCost decimal.Decimal `db:"estimated_cost"`
	ActualCost    decimal.Decimal `db:"actual_cost"`
	DependsOn     []byte          `db:"depends_on"` // JSONB array of task IDs
	Notes         string          `db:"notes"`
	AuditFields
}
