// Package kernel registers pipeline tasks and starts each one as a goroutine.
//
// Goroutines carry no scheduling priority. Priorities are recorded, reported
// and used for start order only; tasks must synchronise exclusively through
// queues so that correctness never depends on which task runs first.
package kernel

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ghalamif/AegisRT/internal/ports"
)

// Priority is a fixed task priority; larger runs first.
type Priority uint8

const IdlePriority Priority = 0

var (
	ErrSchedulerStarted = errors.New("scheduler already started")
	ErrDuplicateTask    = errors.New("duplicate task name")
	ErrTaskExited       = errors.New("task returned from its loop")
)

// TaskFunc is a task body. It is expected to loop forever.
type TaskFunc func()

type TaskInfo struct {
	Name     string
	Priority Priority
}

type task struct {
	TaskInfo
	entry TaskFunc
}

type Scheduler struct {
	mu      sync.Mutex
	tasks   []task
	started bool
	obs     ports.Observability
}

func NewScheduler(obs ports.Observability) *Scheduler {
	return &Scheduler{obs: obs}
}

// CreateTask adds a task to the table. Tasks can only be created before Start.
func (s *Scheduler) CreateTask(name string, prio Priority, entry TaskFunc) error {
	if entry == nil {
		return fmt.Errorf("task %q: nil entry", name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return fmt.Errorf("create task %q: %w", name, ErrSchedulerStarted)
	}
	for _, t := range s.tasks {
		if t.Name == name {
			return fmt.Errorf("create task %q: %w", name, ErrDuplicateTask)
		}
	}
	s.tasks = append(s.tasks, task{TaskInfo: TaskInfo{Name: name, Priority: prio}, entry: entry})
	return nil
}

// Start launches every task, highest priority first, and returns immediately.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return ErrSchedulerStarted
	}
	s.started = true

	sort.SliceStable(s.tasks, func(i, j int) bool {
		return s.tasks[i].Priority > s.tasks[j].Priority
	})

	for _, t := range s.tasks {
		s.obs.LogInfo("task_started",
			ports.Field{Key: "task", Value: t.Name},
			ports.Field{Key: "priority", Value: t.Priority})
		go s.run(t)
	}
	return nil
}

// Tasks lists the task table; after Start it is in start order.
func (s *Scheduler) Tasks() []TaskInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]TaskInfo, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.TaskInfo
	}
	return out
}

func (s *Scheduler) run(t task) {
	t.entry()
	s.obs.LogError("task_exited", ErrTaskExited, ports.Field{Key: "task", Value: t.Name})
}
