package insights

import "github.com/variohq/reno_backend/internal/core/domain"

// SummarizePhases folds a task snapshot into the derived state of the phase
// pipeline. The fold is order-sensitive and must see tasks in a single
// stable order (source order as received) on every recompute:
//
//  1. any In Progress task pins the phase to In Progress;
//  2. a phase with no tasks defaults to Not Started;
//  3. a provisional Completed is downgraded by any task whose status differs;
//  4. otherwise the first task seen seeds the status and ties keep it.
//
// Tasks whose phase is not in the supplied phase table are excluded from
// both the status fold and the cost rollup.
func SummarizePhases(tasks []domain.Task, phases []domain.PhaseConfig) domain.PhaseSummary {
	nameByOrder := make(map[int]string, len(phases))
	validPhase := make(map[string]bool, len(phases))
	for _, p := range phases {
		nameByOrder[p.Order] = p.Name
		validPhase[p.Name] = true
	}

	folded := make(map[string]domain.TaskStatus, len(phases))
	costs := make(map[string]domain.PhaseCost)
	for _, t := range tasks {
		if !validPhase[t.Phase] {
			continue
		}

		prev, seeded := folded[t.Phase]
		switch {
		case !seeded:
			folded[t.Phase] = t.Status
		case prev == domain.TaskInProgress:
			// pinned
		case t.Status == domain.TaskInProgress:
			folded[t.Phase] = t.Status
		case prev == domain.TaskCompleted && t.Status != domain.TaskCompleted:
			folded[t.Phase] = t.Status
		}

		cost := costs[t.Phase]
		cost.Estimated = cost.Estimated.Add(t.EstimatedCost)
		cost.Actual = cost.Actual.Add(t.ActualCost)
		costs[t.Phase] = cost
	}

	summary := domain.PhaseSummary{
		Statuses: make(map[string]domain.TaskStatus, len(phases)),
		Blocked:  make(map[string]bool, len(phases)),
		Costs:    costs,
	}

	for _, p := range phases {
		status, ok := folded[p.Name]
		if !ok {
			status = domain.TaskNotStarted
		}
		summary.Statuses[p.Name] = status
		if status == domain.TaskCompleted {
			summary.CompletedCount++
		}
	}

	for _, p := range phases {
		summary.Blocked[p.Name] = summary.Statuses[p.Name] == domain.TaskNotStarted &&
			!dependenciesSatisfied(p, nameByOrder, summary.Statuses)
	}

	// Current phase: the first In Progress phase in pipeline order, else the
	// first phase not yet Completed, else none.
	for _, p := range phases {
		if summary.Statuses[p.Name] == domain.TaskInProgress {
			summary.CurrentPhase = p.Name
			break
		}
	}
	if summary.CurrentPhase == "" {
		for _, p := range phases {
			if summary.Statuses[p.Name] != domain.TaskCompleted {
				summary.CurrentPhase = p.Name
				break
			}
		}
	}

	return summary
}

func dependenciesSatisfied(p domain.PhaseConfig, nameByOrder map[int]string, statuses map[string]domain.TaskStatus) bool {
	for _, dep := range p.DependsOn {
		name, ok := nameByOrder[dep]
		if !ok {
			continue
		}
		if s := statuses[name]; s != domain.TaskCompleted && s != domain.TaskSkipped {
			return false
		}
	}
	return true
}
