package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Nazary21/Teammatic/internal/adapter/http/dto"
	"github.com/Nazary21/Teammatic/internal/adapter/http/handlers"
	"github.com/Nazary21/Teammatic/internal/adapter/http/middleware"
	"github.com/Nazary21/Teammatic/internal/core/domain"
	"github.com/Nazary21/Teammatic/pkg/apierrors"
	"github.com/Nazary21/Teammatic/pkg/translator"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) GetByID(ctx context.Context, id string) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) List(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) Update(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTaskRouter(serviceMock *taskServiceMock) *gin.Engine {
	handler := handlers.NewTaskHandler(serviceMock)
	router := gin.New()
	group := router.Group("/api", middleware.LanguageMiddleware())
	group.GET("/tasks", handler.ListTasks)
	group.POST("/tasks", handler.CreateTask)
	group.GET("/tasks/:id", handler.GetTask)
	group.PATCH("/tasks/:id", handler.UpdateTask)
	group.DELETE("/tasks/:id", handler.DeleteTask)
	return router
}

func TestTaskHandler_ListTasks_Success(t *testing.T) {
	description := "ship the sync layer"
	dueDate := time.Date(2026, 2, 20, 8, 0, 0, 123456789, time.UTC)
	createdAt := time.Date(2026, 2, 13, 10, 20, 30, 0, time.UTC)
	updatedAt := time.Date(2026, 2, 13, 11, 20, 30, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("List", mock.Anything).Return(
		[]domain.Task{
			{
				ID:          "4f1c0b2e-0000-0000-0000-000000000001",
				Title:       "Build tracker API",
				Description: &description,
				Status:      domain.TaskStatusInProgress,
				Priority:    domain.TaskPriorityHigh,
				DueDate:     &dueDate,
				CreatedAt:   createdAt,
				UpdatedAt:   updatedAt,
				Metadata:    domain.Metadata{"points": float64(5)},
			},
		},
		nil,
	).Once()

	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)

	require.Equal(t, "4f1c0b2e-0000-0000-0000-000000000001", got[0].ID)
	require.Equal(t, "Build tracker API", got[0].Title)
	require.Equal(t, "ship the sync layer", *got[0].Description)
	require.Equal(t, "IN_PROGRESS", got[0].Status)
	require.Equal(t, "HIGH", got[0].Priority)
	require.Equal(t, "2026-02-20T08:00:00.123456789Z", *got[0].DueDate)
	require.Equal(t, "2026-02-13T10:20:30Z", got[0].CreatedAt)
	require.Equal(t, "2026-02-13T11:20:30Z", got[0].UpdatedAt)
	require.Equal(t, float64(5), got[0].Metadata["points"])
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_Error(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("List", mock.Anything).Return(nil, errors.New("db is down")).Once()

	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusInternalServerError, got.ErrDetails.Code)
	require.Equal(t, "Failed to fetch tasks", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_Success(t *testing.T) {
	createdAt := time.Date(2026, 2, 13, 10, 20, 30, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("Create", mock.Anything, mock.MatchedBy(func(input domain.CreateTaskInput) bool {
		return input.Title == "Write report" &&
			input.Status == domain.TaskStatusTodo &&
			input.Priority == domain.TaskPriorityMedium
	})).Return(
		domain.Task{
			ID:        "4f1c0b2e-0000-0000-0000-000000000002",
			Title:     "Write report",
			Status:    domain.TaskStatusTodo,
			Priority:  domain.TaskPriorityMedium,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
		nil,
	).Once()

	router := newTaskRouter(serviceMock)

	body := `{"title":"Write report"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Write report", got.Title)
	require.Equal(t, "TODO", got.Status)
	require.Equal(t, got.CreatedAt, got.UpdatedAt)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_BlankTitleRejectedWithFieldDetail(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(serviceMock)

	body := `{"title":"   "}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid task data", got.ErrDetails.Message)
	require.Contains(t, got.ErrDetails.Details, "title")
	serviceMock.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTaskHandler_CreateTask_InvalidStatusEnum(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(serviceMock)

	body := `{"title":"Write report","status":"SOMEDAY"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Contains(t, got.ErrDetails.Details, "status")
	serviceMock.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTaskHandler_GetTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("GetByID", mock.Anything, "missing").Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/missing", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_Success(t *testing.T) {
	updatedAt := time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("Update", mock.Anything, "t1", mock.MatchedBy(func(input domain.UpdateTaskInput) bool {
		return input.Status != nil && *input.Status == domain.TaskStatusDone
	})).Return(
		domain.Task{
			ID:        "t1",
			Title:     "Write report",
			Status:    domain.TaskStatusDone,
			Priority:  domain.TaskPriorityMedium,
			CreatedAt: updatedAt.Add(-time.Hour),
			UpdatedAt: updatedAt,
		},
		nil,
	).Once()

	router := newTaskRouter(serviceMock)

	body := `{"status":"DONE"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/t1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "DONE", got.Status)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Update", mock.Anything, "missing", mock.Anything).Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	router := newTaskRouter(serviceMock)

	body := `{"status":"DONE"}`
	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/missing", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_EmptyBodyRejected(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/t1", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_DeleteTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Delete", mock.Anything, "t1").Return(nil).Once()

	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/t1", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.DeleteConfirmation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "task deleted", got.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Delete", mock.Anything, "missing").Return(domain.ErrTaskNotFound).Once()

	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/missing", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_TranslatedErrorMessage(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Delete", mock.Anything, "missing").Return(domain.ErrTaskNotFound).Once()

	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/missing", nil)
	req.Header.Set("Accept-Language", translator.LanguageFr)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Tâche introuvable", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}
