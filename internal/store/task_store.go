package store

import (
	"context"
	"sync"

	"github.com/Nazary21/Teammatic/internal/core/domain"
)

// Per-action user-facing failure messages. These are fixed: the underlying
// fault is returned to the caller, the store only records the summary.
const (
	msgFetchTasksFailed = "failed to fetch tasks"
	msgCreateTaskFailed = "failed to create task"
	msgUpdateTaskFailed = "failed to update task"
	msgDeleteTaskFailed = "failed to delete task"
)

// TaskAPI is the slice of the transport client the task store depends on.
type TaskAPI interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id string, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// TaskStore holds the client-resident task state. It is the single source of
// truth the presentation layer reads; all mutation goes through its action
// methods. Reads return snapshots, so callers never share the internal slice.
type TaskStore struct {
	api TaskAPI

	mu         sync.Mutex
	tasks      []domain.Task
	selectedID string
	modalOpen  bool
	loading    bool
	lastErr    string

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

func NewTaskStore(api TaskAPI) *TaskStore {
	return &TaskStore{api: api, subs: make(map[int]func())}
}

// Subscribe registers fn to run after every state change. The returned
// function removes the subscription.
func (s *TaskStore) Subscribe(fn func()) (unsubscribe func()) {
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

func (s *TaskStore) notify() {
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

// Tasks returns a snapshot of the current list in its stored order. Metadata
// maps are cloned so callers cannot reach back into store state.
func (s *TaskStore) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	for i := range out {
		out[i].Metadata = out[i].Metadata.Clone()
	}
	return out
}

func (s *TaskStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *TaskStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *TaskStore) ModalOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modalOpen
}

// Selected returns the currently selected task, if any.
func (s *TaskStore) Selected() (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedID == "" {
		return domain.Task{}, false
	}
	for _, task := range s.tasks {
		if task.ID == s.selectedID {
			task.Metadata = task.Metadata.Clone()
			return task, true
		}
	}
	return domain.Task{}, false
}

// Select marks the task with the given id as selected. Selecting an id that
// is not in the list, or the empty string, clears the selection.
func (s *TaskStore) Select(id string) {
	s.mu.Lock()
	s.selectedID = ""
	for _, task := range s.tasks {
		if task.ID == id {
			s.selectedID = id
			break
		}
	}
	s.mu.Unlock()
	s.notify()
}

func (s *TaskStore) SetModalOpen(open bool) {
	s.mu.Lock()
	s.modalOpen = open
	s.mu.Unlock()
	s.notify()
}

// Fetch reloads the list from the backend. Failures are swallowed into the
// error field so the presentation layer can show a passive retry affordance.
func (s *TaskStore) Fetch(ctx context.Context) {
	s.begin()

	tasks, err := s.api.ListTasks(ctx)

	s.mu.Lock()
	if err != nil {
		s.lastErr = msgFetchTasksFailed
	} else {
		s.tasks = tasks
		if s.selectedID != "" && !containsTask(tasks, s.selectedID) {
			s.selectedID = ""
		}
	}
	s.loading = false
	s.mu.Unlock()
	s.notify()
}

// Create adds a task through the backend and appends it to the list. The
// error is returned so the triggering UI action can surface inline feedback.
func (s *TaskStore) Create(ctx context.Context, input domain.CreateTaskInput) error {
	s.begin()

	task, err := s.api.CreateTask(ctx, input)

	s.mu.Lock()
	if err != nil {
		s.lastErr = msgCreateTaskFailed
	} else if containsTask(s.tasks, task.ID) {
		s.tasks = replaceTask(s.tasks, task)
	} else {
		s.tasks = append(s.tasks, task)
	}
	s.loading = false
	s.mu.Unlock()
	s.notify()
	return err
}

// Update replaces the entity with the target id in place; every other slot
// keeps its position.
func (s *TaskStore) Update(ctx context.Context, id string, input domain.UpdateTaskInput) error {
	s.begin()

	task, err := s.api.UpdateTask(ctx, id, input)

	s.mu.Lock()
	if err != nil {
		s.lastErr = msgUpdateTaskFailed
	} else {
		s.tasks = replaceTask(s.tasks, task)
	}
	s.loading = false
	s.mu.Unlock()
	s.notify()
	return err
}

// Delete removes the entity with the target id and clears the selection when
// it pointed at the deleted task.
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	s.begin()

	err := s.api.DeleteTask(ctx, id)

	s.mu.Lock()
	if err != nil {
		s.lastErr = msgDeleteTaskFailed
	} else {
		s.tasks = removeTask(s.tasks, id)
		if s.selectedID == id {
			s.selectedID = ""
		}
	}
	s.loading = false
	s.mu.Unlock()
	s.notify()
	return err
}

func (s *TaskStore) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
	s.notify()
}

func containsTask(tasks []domain.Task, id string) bool {
	for _, task := range tasks {
		if task.ID == id {
			return true
		}
	}
	return false
}

func replaceTask(tasks []domain.Task, updated domain.Task) []domain.Task {
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)
	for i, task := range out {
		if task.ID == updated.ID {
			out[i] = updated
		}
	}
	return out
}

func removeTask(tasks []domain.Task, id string) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.ID != id {
			out = append(out, task)
		}
	}
	return out
}
