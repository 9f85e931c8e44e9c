package client_test

import (
	"context"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Nazary21/Teammatic/internal/adapter/http/handlers"
	"github.com/Nazary21/Teammatic/internal/adapter/http/middleware"
	"github.com/Nazary21/Teammatic/internal/client"
	"github.com/Nazary21/Teammatic/internal/core/domain"
	"github.com/Nazary21/Teammatic/internal/core/ports"
	"github.com/Nazary21/Teammatic/pkg/translator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "../../pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})
	os.Exit(m.Run())
}

// recordingTaskService captures what the transport delivered to the service
// layer so tests can assert on the decoded partial update, not just the
// response.
type recordingTaskService struct {
	task        domain.Task
	updateID    string
	updateInput *domain.UpdateTaskInput
}

var _ ports.TaskService = (*recordingTaskService)(nil)

func (s *recordingTaskService) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	return s.task, nil
}

func (s *recordingTaskService) GetByID(ctx context.Context, id string) (domain.Task, error) {
	return s.task, nil
}

func (s *recordingTaskService) List(ctx context.Context) ([]domain.Task, error) {
	return []domain.Task{s.task}, nil
}

func (s *recordingTaskService) Update(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	s.updateID = id
	s.updateInput = &input

	updated := s.task
	if input.Title != nil {
		updated.Title = *input.Title
	}
	if input.Status != nil {
		updated.Status = *input.Status
	}
	if input.DescriptionSet {
		updated.Description = input.Description
	}
	if input.DueDateSet {
		updated.DueDate = input.DueDate
	}
	return updated, nil
}

func (s *recordingTaskService) Delete(ctx context.Context, id string) error {
	return nil
}

// newTaskBackend serves the real update handler, so requests cross the same
// binding and validation path as in production.
func newTaskBackend(service ports.TaskService) *httptest.Server {
	router := gin.New()
	handler := handlers.NewTaskHandler(service)
	api := router.Group("/api", middleware.LanguageMiddleware())
	api.PATCH("/tasks/:id", handler.UpdateTask)
	return httptest.NewServer(router)
}

func TestClient_UpdateTask_StatusOnlyLeavesOtherFieldsAlone(t *testing.T) {
	now := time.Date(2026, 2, 13, 10, 20, 30, 0, time.UTC)
	description := "quarterly numbers"
	service := &recordingTaskService{task: domain.Task{
		ID:          "t1",
		Title:       "Write report",
		Description: &description,
		Status:      domain.TaskStatusTodo,
		Priority:    domain.TaskPriorityHigh,
		CreatedAt:   now,
		UpdatedAt:   now,
	}}
	server := newTaskBackend(service)
	defer server.Close()

	c := client.New(server.URL)
	status := domain.TaskStatusDone
	task, err := c.UpdateTask(context.Background(), "t1", domain.UpdateTaskInput{Status: &status})

	require.NoError(t, err)
	require.Equal(t, "t1", service.updateID)
	require.NotNil(t, service.updateInput)
	require.NotNil(t, service.updateInput.Status)
	require.Equal(t, domain.TaskStatusDone, *service.updateInput.Status)

	// Fields the caller never supplied must not travel at all.
	require.Nil(t, service.updateInput.Title)
	require.Nil(t, service.updateInput.Priority)
	require.False(t, service.updateInput.DescriptionSet)
	require.False(t, service.updateInput.DueDateSet)
	require.False(t, service.updateInput.MetadataSet)

	require.Equal(t, domain.TaskStatusDone, task.Status)
	require.NotNil(t, task.Description)
	require.Equal(t, description, *task.Description)
}

func TestClient_UpdateTask_ExplicitClearTravelsAsNull(t *testing.T) {
	now := time.Date(2026, 2, 13, 10, 20, 30, 0, time.UTC)
	description := "quarterly numbers"
	dueDate := time.Date(2026, 9, 15, 12, 30, 0, 0, time.UTC)
	service := &recordingTaskService{task: domain.Task{
		ID:          "t1",
		Title:       "Write report",
		Description: &description,
		Status:      domain.TaskStatusTodo,
		Priority:    domain.TaskPriorityHigh,
		DueDate:     &dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}}
	server := newTaskBackend(service)
	defer server.Close()

	c := client.New(server.URL)
	task, err := c.UpdateTask(context.Background(), "t1", domain.UpdateTaskInput{
		DescriptionSet: true,
		DueDateSet:     true,
	})

	require.NoError(t, err)
	require.NotNil(t, service.updateInput)
	require.True(t, service.updateInput.DescriptionSet)
	require.Nil(t, service.updateInput.Description)
	require.True(t, service.updateInput.DueDateSet)
	require.Nil(t, service.updateInput.DueDate)

	require.Nil(t, task.Description)
	require.Nil(t, task.DueDate)
}

func TestClient_UpdateTask_TitleAndDueDateRoundTrip(t *testing.T) {
	now := time.Date(2026, 2, 13, 10, 20, 30, 0, time.UTC)
	service := &recordingTaskService{task: domain.Task{
		ID:        "t1",
		Title:     "Write report",
		Status:    domain.TaskStatusTodo,
		Priority:  domain.TaskPriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}}
	server := newTaskBackend(service)
	defer server.Close()

	c := client.New(server.URL)
	title := "Write the final report"
	dueDate := time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.UTC)
	task, err := c.UpdateTask(context.Background(), "t1", domain.UpdateTaskInput{
		Title:      &title,
		DueDate:    &dueDate,
		DueDateSet: true,
	})

	require.NoError(t, err)
	require.NotNil(t, service.updateInput.Title)
	require.Equal(t, title, *service.updateInput.Title)
	require.NotNil(t, service.updateInput.DueDate)
	require.True(t, service.updateInput.DueDate.Equal(dueDate))

	require.Equal(t, title, task.Title)
	require.NotNil(t, task.DueDate)
	require.True(t, task.DueDate.Equal(dueDate))
}
