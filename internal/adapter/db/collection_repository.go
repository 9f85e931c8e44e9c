package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Nazary21/Teammatic/internal/core/domain"
	"github.com/Nazary21/Teammatic/internal/core/ports"
)

const listCollectionsByProjectQuery = `
SELECT id, name, description, project_id, position, created_at, updated_at
FROM collections
WHERE project_id = ?
ORDER BY position;
`

type CollectionRepository struct {
	db *sqlx.DB
}

type collectionRow struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	ProjectID   string         `db:"project_id"`
	Position    int            `db:"position"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.CollectionRepository = (*CollectionRepository)(nil)

func NewCollectionRepository(db *sqlx.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

func (r *CollectionRepository) Create(ctx context.Context, input domain.CreateCollectionInput) (domain.Collection, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Collection{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var projectID string
	if err := tx.GetContext(ctx, &projectID, "SELECT id FROM projects WHERE id = ?", input.ProjectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Collection{}, domain.ErrProjectNotFound
		}
		return domain.Collection{}, err
	}

	// New collections go to the end of the project's ordering.
	var position int
	if err := tx.GetContext(ctx, &position,
		"SELECT COALESCE(MAX(position) + 1, 0) FROM collections WHERE project_id = ?", input.ProjectID); err != nil {
		return domain.Collection{}, err
	}

	now := storageNow()
	row := collectionRow{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: nullableString(input.Description),
		ProjectID:   input.ProjectID,
		Position:    position,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	const query = `
INSERT INTO collections (id, name, description, project_id, position, created_at, updated_at)
VALUES (:id, :name, :description, :project_id, :position, :created_at, :updated_at);
`
	if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
		return domain.Collection{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Collection{}, err
	}

	return mapCollectionRowToDomainCollection(row), nil
}

func (r *CollectionRepository) ListByProject(ctx context.Context, projectID string) ([]domain.Collection, error) {
	var rows []collectionRow
	if err := r.db.SelectContext(ctx, &rows, listCollectionsByProjectQuery, projectID); err != nil {
		return nil, err
	}

	collections := make([]domain.Collection, 0, len(rows))
	for _, row := range rows {
		collections = append(collections, mapCollectionRowToDomainCollection(row))
	}

	return collections, nil
}

func (r *CollectionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM collections WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCollectionNotFound
	}

	return nil
}

func mapCollectionRowToDomainCollection(row collectionRow) domain.Collection {
	collection := domain.Collection{
		ID:        row.ID,
		Name:      row.Name,
		ProjectID: row.ProjectID,
		Position:  row.Position,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		collection.Description = &value
	}

	return collection
}
