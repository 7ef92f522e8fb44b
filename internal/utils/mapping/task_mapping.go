package mapping

import (
	"encoding/json"

	"github.com/variohq/reno_backend/internal/core/domain"
	"github.com/variohq/reno_backend/internal/models"
)

// ToModelTask converts a domain Task to a model Task
func ToModelTask(d domain.Task) (models.Task, error) {
	dependsOn, err := json.Marshal(d.DependsOn)
	if err != nil {
		return models.Task{}, err
	}
	return models.Task{
		TaskID:        d.TaskID,
		ProjectID:     d.ProjectID,
		Phase:         d.Phase,
		PhaseOrder:    d.PhaseOrder,
		Title:         d.Title,
		Description:   d.Description,
		Room:          d.Room,
		Status:        string(d.Status),
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		Vendor:        d.Vendor,
		EstimatedCost: d.EstimatedCost,
		ActualCost:    d.ActualCost,
		DependsOn:     dependsOn,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainTask converts a model Task to a domain Task
func ToDomainTask(m models.Task) domain.Task {
	var dependsOn []string
	if len(m.DependsOn) > 0 {
		_ = json.Unmarshal(m.DependsOn, &dependsOn)
	}
	return domain.Task{
		TaskID:        m.TaskID,
		ProjectID:     m.ProjectID,
		Phase:         m.Phase,
		PhaseOrder:    m.PhaseOrder,
		Title:         m.Title,
		Description:   m.Description,
		Room:          m.Room,
		Status:        domain.TaskStatus(m.Status),
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		Vendor:        m.Vendor,
		EstimatedCost: m.EstimatedCost,
		ActualCost:    m.ActualCost,
		DependsOn:     dependsOn,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTaskSlice converts a slice of model Tasks to domain Tasks
func ToDomainTaskSlice(ms []models.Task) []domain.Task {
	ds := make([]domain.Task, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTask(m)
	}
	return ds
}
