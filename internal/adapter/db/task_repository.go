package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Nazary21/Teammatic/internal/core/domain"
	"github.com/Nazary21/Teammatic/internal/core/ports"
)

const listTasksQuery = `
SELECT id, title, description, status, priority, due_date, metadata, created_at, updated_at
FROM tasks
ORDER BY updated_at DESC;
`

const getTaskQuery = `
SELECT id, title, description, status, priority, due_date, metadata, created_at, updated_at
FROM tasks
WHERE id = ?;
`

const insertTaskQuery = `
INSERT INTO tasks (id, title, description, status, priority, due_date, metadata, created_at, updated_at)
VALUES (:id, :title, :description, :status, :priority, :due_date, :metadata, :created_at, :updated_at);
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	Priority    string         `db:"priority"`
	DueDate     sql.NullTime   `db:"due_date"`
	Metadata    sql.NullString `db:"metadata"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	metadata, err := encodeMetadata(input.Metadata)
	if err != nil {
		return domain.Task{}, err
	}

	now := storageNow()
	row := taskRow{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Status:    string(input.Status),
		Priority:  string(input.Priority),
		Metadata:  metadata,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Description != nil {
		row.Description = sql.NullString{String: *input.Description, Valid: true}
	}
	if input.DueDate != nil {
		row.DueDate = sql.NullTime{Time: input.DueDate.UTC().Truncate(time.Microsecond), Valid: true}
	}

	if _, err := r.db.NamedExecContext(ctx, insertTaskQuery, row); err != nil {
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row)
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row)
}

func (r *TaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksQuery); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := mapTaskRowToDomainTask(row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error) {
	// Existence check first: MySQL reports zero affected rows for no-op
	// updates, so RowsAffected cannot distinguish "absent" from "unchanged".
	if _, err := r.GetByID(ctx, id); err != nil {
		return domain.Task{}, err
	}

	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)

	if input.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *input.Title)
	}
	if input.DescriptionSet {
		sets = append(sets, "description = ?")
		args = append(args, nullableString(input.Description))
	}
	if input.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*input.Status))
	}
	if input.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, string(*input.Priority))
	}
	if input.DueDateSet {
		sets = append(sets, "due_date = ?")
		args = append(args, nullableTime(input.DueDate))
	}
	if input.MetadataSet {
		metadata, err := encodeMetadata(input.Metadata)
		if err != nil {
			return domain.Task{}, err
		}
		sets = append(sets, "metadata = ?")
		args = append(args, metadata)
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, storageNow())
	args = append(args, id)

	query := "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Task{}, err
	}

	return r.GetByID(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func mapTaskRowToDomainTask(row taskRow) (domain.Task, error) {
	metadata, err := decodeMetadata(row.Metadata)
	if err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:        row.ID,
		Title:     row.Title,
		Status:    domain.TaskStatus(row.Status),
		Priority:  domain.TaskPriority(row.Priority),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		Metadata:  metadata,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	return task, nil
}

// encodeMetadata and decodeMetadata are the single conversion point between
// the structured in-memory mapping and its JSON text form at rest.
func encodeMetadata(m domain.Metadata) (sql.NullString, error) {
	if m == nil {
		return sql.NullString{}, nil
	}
	encoded, err := json.Marshal(m)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(encoded), Valid: true}, nil
}

func decodeMetadata(value sql.NullString) (domain.Metadata, error) {
	if !value.Valid || value.String == "" {
		return nil, nil
	}
	var m domain.Metadata
	if err := json.Unmarshal([]byte(value.String), &m); err != nil {
		return nil, err
	}
	return m, nil
}

func nullableString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func nullableTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: value.UTC().Truncate(time.Microsecond), Valid: true}
}

// storageNow returns the current time at the precision the DATETIME(6)
// columns can hold, so values read back compare equal to values written.
func storageNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
