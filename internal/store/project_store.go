package store

import (
	"context"
	"sync"

	"github.com/Nazary21/Teammatic/internal/core/domain"
)

const (
	msgFetchProjectsFailed    = "failed to fetch projects"
	msgCreateProjectFailed    = "failed to create project"
	msgDeleteProjectFailed    = "failed to delete project"
	msgCreateCollectionFailed = "failed to create collection"
	msgDeleteCollectionFailed = "failed to delete collection"
)

// ProjectAPI is the slice of the transport client the project store depends
// on.
type ProjectAPI interface {
	ListProjects(ctx context.Context, withCollections bool) ([]domain.Project, error)
	CreateProject(ctx context.Context, input domain.CreateProjectInput) (domain.Project, error)
	DeleteProject(ctx context.Context, id string) error
	CreateCollection(ctx context.Context, input domain.CreateCollectionInput) (domain.Collection, error)
	DeleteCollection(ctx context.Context, id string) error
}

// ProjectStore holds the client-resident project state, including each
// project's collections once loaded.
type ProjectStore struct {
	api ProjectAPI

	mu                  sync.Mutex
	projects            []domain.Project
	selectedProjectID   string
	projectModalOpen    bool
	collectionModalOpen bool
	loading             bool
	lastErr             string

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

func NewProjectStore(api ProjectAPI) *ProjectStore {
	return &ProjectStore{api: api, subs: make(map[int]func())}
}

func (s *ProjectStore) Subscribe(fn func()) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *ProjectStore) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Projects returns a snapshot of the current list in its stored order. Each
// project's collections slice is copied too, so callers cannot reach back
// into store state through a returned project.
func (s *ProjectStore) Projects() []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Project, len(s.projects))
	copy(out, s.projects)
	for i := range out {
		if out[i].Collections != nil {
			collections := make([]domain.Collection, len(out[i].Collections))
			copy(collections, out[i].Collections)
			out[i].Collections = collections
		}
	}
	return out
}

func (s *ProjectStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *ProjectStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *ProjectStore) SelectedProjectID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedProjectID
}

func (s *ProjectStore) ProjectModalOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projectModalOpen
}

func (s *ProjectStore) CollectionModalOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collectionModalOpen
}

// SelectProject marks a project as selected. An id that is not in the list,
// or the empty string, clears the selection.
func (s *ProjectStore) SelectProject(id string) {
	s.mu.Lock()
	s.selectedProjectID = ""
	for _, project := range s.projects {
		if project.ID == id {
			s.selectedProjectID = id
			break
		}
	}
	s.mu.Unlock()
	s.notify()
}

func (s *ProjectStore) SetProjectModalOpen(open bool) {
	s.mu.Lock()
	s.projectModalOpen = open
	s.mu.Unlock()
	s.notify()
}

func (s *ProjectStore) SetCollectionModalOpen(open bool) {
	s.mu.Lock()
	s.collectionModalOpen = open
	s.mu.Unlock()
	s.notify()
}

// Fetch reloads projects with their collections. Failures are swallowed into
// the error field.
func (s *ProjectStore) Fetch(ctx context.Context) {
	s.begin()

	projects, err := s.api.ListProjects(ctx, true)

	s.mu.Lock()
	if err != nil {
		s.lastErr = msgFetchProjectsFailed
	} else {
		s.projects = projects
		if s.selectedProjectID != "" && !containsProject(projects, s.selectedProjectID) {
			s.selectedProjectID = ""
		}
	}
	s.loading = false
	s.mu.Unlock()
	s.notify()
}

func (s *ProjectStore) CreateProject(ctx context.Context, input domain.CreateProjectInput) error {
	s.begin()

	project, err := s.api.CreateProject(ctx, input)

	s.mu.Lock()
	if err != nil {
		s.lastErr = msgCreateProjectFailed
	} else if !containsProject(s.projects, project.ID) {
		s.projects = append(s.projects, project)
	}
	s.loading = false
	s.mu.Unlock()
	s.notify()
	return err
}

// DeleteProject removes the project and clears the selection when it pointed
// at the deleted project. The backend cascade-deletes owned collections.
func (s *ProjectStore) DeleteProject(ctx context.Context, id string) error {
	s.begin()

	err := s.api.DeleteProject(ctx, id)

	s.mu.Lock()
	if err != nil {
		s.lastErr = msgDeleteProjectFailed
	} else {
		out := make([]domain.Project, 0, len(s.projects))
		for _, project := range s.projects {
			if project.ID != id {
				out = append(out, project)
			}
		}
		s.projects = out
		if s.selectedProjectID == id {
			s.selectedProjectID = ""
		}
	}
	s.loading = false
	s.mu.Unlock()
	s.notify()
	return err
}

// CreateCollection appends the created collection to its owning project's
// loaded collections.
func (s *ProjectStore) CreateCollection(ctx context.Context, input domain.CreateCollectionInput) error {
	s.begin()

	collection, err := s.api.CreateCollection(ctx, input)

	s.mu.Lock()
	if err != nil {
		s.lastErr = msgCreateCollectionFailed
	} else {
		for i := range s.projects {
			if s.projects[i].ID == collection.ProjectID {
				s.projects[i].Collections = append(s.projects[i].Collections, collection)
				break
			}
		}
	}
	s.loading = false
	s.mu.Unlock()
	s.notify()
	return err
}

func (s *ProjectStore) DeleteCollection(ctx context.Context, id string) error {
	s.begin()

	err := s.api.DeleteCollection(ctx, id)

	s.mu.Lock()
	if err != nil {
		s.lastErr = msgDeleteCollectionFailed
	} else {
		for i := range s.projects {
			if s.projects[i].Collections == nil {
				continue
			}
			kept := make([]domain.Collection, 0, len(s.projects[i].Collections))
			for _, collection := range s.projects[i].Collections {
				if collection.ID != id {
					kept = append(kept, collection)
				}
			}
			s.projects[i].Collections = kept
		}
	}
	s.loading = false
	s.mu.Unlock()
	s.notify()
	return err
}

func (s *ProjectStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
	s.notify()
}

func containsProject(projects []domain.Project, id string) bool {
	for _, project := range projects {
		if project.ID == id {
			return true
		}
	}
	return false
}
