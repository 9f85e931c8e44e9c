package domain

import "time"

type Project struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	// Collections is nil until explicitly loaded.
	Collections []Collection
}

// Collection belongs to exactly one Project. It keeps only the owning
// project's id, not the project itself. Position is an explicit order value
// for stable display within the project.
type Collection struct {
	ID          string
	Name        string
	Description *string
	ProjectID   string
	Position    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateProjectInput struct {
	Name        string
	Description *string
}

type CreateCollectionInput struct {
	Name        string
	Description *string
	ProjectID   string
}
