package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Nazary21/Teammatic/internal/core/domain"
	"github.com/Nazary21/Teammatic/internal/store"
)

func filterFixture() []domain.Task {
	desc := "monthly status report for the team"
	report := makeTask("t1", "Write report")
	report.Status = domain.TaskStatusInProgress
	report.Priority = domain.TaskPriorityHigh
	report.Description = &desc

	milk := makeTask("t2", "Buy milk")
	milk.Priority = domain.TaskPriorityLow

	review := makeTask("t3", "Review REPORT draft")
	review.Status = domain.TaskStatusDone

	return []domain.Task{report, milk, review}
}

func TestFilterTasks_MatchAllReturnsFullListInOrder(t *testing.T) {
	tasks := filterFixture()

	got := store.FilterTasks(tasks, store.TaskFilter{})

	require.Len(t, got, 3)
	require.Equal(t, "t1", got[0].ID)
	require.Equal(t, "t2", got[1].ID)
	require.Equal(t, "t3", got[2].ID)
}

func TestFilterTasks_QueryMatchesTitleCaseInsensitively(t *testing.T) {
	got := store.FilterTasks(filterFixture(), store.TaskFilter{Query: "report"})

	require.Len(t, got, 2)
	require.Equal(t, "t1", got[0].ID)
	require.Equal(t, "t3", got[1].ID)
}

func TestFilterTasks_QueryMatchesDescription(t *testing.T) {
	got := store.FilterTasks(filterFixture(), store.TaskFilter{Query: "MONTHLY"})

	require.Len(t, got, 1)
	require.Equal(t, "t1", got[0].ID)
}

func TestFilterTasks_StatusFilter(t *testing.T) {
	got := store.FilterTasks(filterFixture(), store.TaskFilter{Status: domain.TaskStatusDone})

	require.Len(t, got, 1)
	require.Equal(t, "t3", got[0].ID)
}

func TestFilterTasks_PriorityFilter(t *testing.T) {
	got := store.FilterTasks(filterFixture(), store.TaskFilter{Priority: domain.TaskPriorityLow})

	require.Len(t, got, 1)
	require.Equal(t, "t2", got[0].ID)
}

func TestFilterTasks_CombinedFilters(t *testing.T) {
	got := store.FilterTasks(filterFixture(), store.TaskFilter{
		Status:   domain.TaskStatusInProgress,
		Priority: domain.TaskPriorityHigh,
		Query:    "report",
	})

	require.Len(t, got, 1)
	require.Equal(t, "t1", got[0].ID)
}

func TestFilterTasks_NoMatchReturnsEmpty(t *testing.T) {
	got := store.FilterTasks(filterFixture(), store.TaskFilter{Query: "does not exist"})
	require.Empty(t, got)
}

func TestFilterTasks_DoesNotMutateInput(t *testing.T) {
	tasks := filterFixture()
	_ = store.FilterTasks(tasks, store.TaskFilter{Query: "report"})

	require.Len(t, tasks, 3)
	require.Equal(t, "t1", tasks[0].ID)
	require.Equal(t, "t2", tasks[1].ID)
	require.Equal(t, "t3", tasks[2].ID)
}
