package insights_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variohq/reno_backend/internal/core/domain"
	"github.com/variohq/reno_backend/internal/utils/insights"
)

func TestSummarizePhases_InProgressPins(t *testing.T) {
	tasks := []domain.Task{
		{Phase: "Kitchen", Status: domain.TaskInProgress},
		{Phase: "Kitchen", Status: domain.TaskCompleted},
	}

	summary := insights.SummarizePhases(tasks, domain.TaskPhases)

	assert.Equal(t, domain.TaskInProgress, summary.Statuses["Kitchen"])

	// Scan order must not matter for the pin.
	reversed := []domain.Task{tasks[1], tasks[0]}
	summary = insights.SummarizePhases(reversed, domain.TaskPhases)
	assert.Equal(t, domain.TaskInProgress, summary.Statuses["Kitchen"])
}

func TestSummarizePhases_CompletedDowngrade(t *testing.T) {
	tasks := []domain.Task{
		{Phase: "Painting", Status: domain.TaskCompleted},
		{Phase: "Painting", Status: domain.TaskOnHold},
	}

	summary := insights.SummarizePhases(tasks, domain.TaskPhases)

	assert.Equal(t, domain.TaskOnHold, summary.Statuses["Painting"],
		"a phase is only Completed when no task disagrees")
}

func TestSummarizePhases_Defaults(t *testing.T) {
	summary := insights.SummarizePhases(nil, domain.TaskPhases)

	require.Len(t, summary.Statuses, len(domain.TaskPhases))
	for name, status := range summary.Statuses {
		assert.Equal(t, domain.TaskNotStarted, status, "phase %s", name)
	}
	assert.Equal(t, 0, summary.CompletedCount)
	assert.Equal(t, "Civil/Masonry", summary.CurrentPhase)
	assert.False(t, summary.Blocked["Civil/Masonry"], "the root phase has no dependencies")
	assert.True(t, summary.Blocked["Electrical"], "Electrical waits on Civil/Masonry")
}

func TestSummarizePhases_UnknownPhaseExcluded(t *testing.T) {
	tasks := []domain.Task{
		{Phase: "Landscaping", Status: domain.TaskInProgress, ActualCost: inr(90000)},
		{Phase: "Flooring", Status: domain.TaskCompleted, ActualCost: inr(10000)},
	}

	summary := insights.SummarizePhases(tasks, domain.TaskPhases)

	_, ok := summary.Statuses["Landscaping"]
	assert.False(t, ok)
	_, ok = summary.Costs["Landscaping"]
	assert.False(t, ok)
	assert.True(t, summary.Costs["Flooring"].Actual.Equal(inr(10000)))
}

func TestSummarizePhases_BlockedAndProgress(t *testing.T) {
	tasks := []domain.Task{
		{Phase: "Civil/Masonry", Status: domain.TaskCompleted},
		{Phase: "Electrical", Status: domain.TaskCompleted},
		{Phase: "Plumbing", Status: domain.TaskSkipped},
		{Phase: "HVAC", Status: domain.TaskInProgress},
	}

	summary := insights.SummarizePhases(tasks, domain.TaskPhases)

	assert.Equal(t, "HVAC", summary.CurrentPhase)
	assert.Equal(t, 2, summary.CompletedCount, "Skipped does not count as Completed")
	assert.False(t, summary.Blocked["Flooring"], "Flooring needs Civil/Masonry and Plumbing; Skipped satisfies")
	assert.True(t, summary.Blocked["False Ceiling"], "False Ceiling waits on HVAC which is still running")
}

func TestSummarizePhases_AllCompleted(t *testing.T) {
	tasks := make([]domain.Task, 0, len(domain.TaskPhases))
	for _, p := range domain.TaskPhases {
		tasks = append(tasks, domain.Task{Phase: p.Name, Status: domain.TaskCompleted})
	}

	summary := insights.SummarizePhases(tasks, domain.TaskPhases)

	assert.Equal(t, len(domain.TaskPhases), summary.CompletedCount)
	assert.Empty(t, summary.CurrentPhase)
}

func TestSummarizePhases_Deterministic(t *testing.T) {
	tasks := []domain.Task{
		{Phase: "Civil/Masonry", Status: domain.TaskCompleted},
		{Phase: "Electrical", Status: domain.TaskInProgress},
		{Phase: "Electrical", Status: domain.TaskCompleted},
		{Phase: "Plumbing", Status: domain.TaskOnHold},
		{Phase: "Flooring", Status: domain.TaskNotStarted},
	}

	first := insights.SummarizePhases(tasks, domain.TaskPhases)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, insights.SummarizePhases(tasks, domain.TaskPhases))
	}
}
