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

const listProjectsQuery = `
SELECT id, name, description, created_at, updated_at
FROM projects
ORDER BY created_at;
`

const getProjectQuery = `
SELECT id, name, description, created_at, updated_at
FROM projects
WHERE id = ?;
`

const listAllCollectionsQuery = `
SELECT id, name, description, project_id, position, created_at, updated_at
FROM collections
ORDER BY project_id, position;
`

type ProjectRepository struct {
	db *sqlx.DB
}

type projectRow struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error) {
	now := storageNow()
	row := projectRow{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: nullableString(input.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	const query = `
INSERT INTO projects (id, name, description, created_at, updated_at)
VALUES (:id, :name, :description, :created_at, :updated_at);
`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return domain.Project{}, err
	}

	return mapProjectRowToDomainProject(row), nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (domain.Project, error) {
	var row projectRow
	if err := r.db.GetContext(ctx, &row, getProjectQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, domain.ErrProjectNotFound
		}
		return domain.Project{}, err
	}
	return mapProjectRowToDomainProject(row), nil
}

func (r *ProjectRepository) List(ctx context.Context, withCollections bool) ([]domain.Project, error) {
	var rows []projectRow
	if err := r.db.SelectContext(ctx, &rows, listProjectsQuery); err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, mapProjectRowToDomainProject(row))
	}

	if !withCollections {
		return projects, nil
	}

	var collectionRows []collectionRow
	if err := r.db.SelectContext(ctx, &collectionRows, listAllCollectionsQuery); err != nil {
		return nil, err
	}

	byProject := make(map[string][]domain.Collection, len(projects))
	for _, row := range collectionRows {
		byProject[row.ProjectID] = append(byProject[row.ProjectID], mapCollectionRowToDomainCollection(row))
	}
	for i := range projects {
		collections := byProject[projects[i].ID]
		if collections == nil {
			collections = []domain.Collection{}
		}
		projects[i].Collections = collections
	}

	return projects, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	// Owned collections go with the project via ON DELETE CASCADE.
	res, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrProjectNotFound
	}

	return nil
}

func mapProjectRowToDomainProject(row projectRow) domain.Project {
	project := domain.Project{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		project.Description = &value
	}

	return project
}
