package system

import (
	"time"

	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/domain/entity"
)

// TaskID identifies a scheduled task
type TaskID uint64

type task struct {
	id    TaskID
	owner entity.EntityID
	at    time.Time
	fn    func()
}

// Scheduler runs fire-once delayed callbacks on the game tick.
// Tasks are owned by an entity so they can be cancelled with it.
type Scheduler struct {
	nextID TaskID
	tasks  []task
	closed bool
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn to run on the first Run at or after at.
// Returns 0 if the scheduler has been closed.
func (s *Scheduler) After(owner entity.EntityID, at time.Time, fn func()) TaskID {
	if s.closed {
		return 0
	}
	s.nextID++
	s.tasks = append(s.tasks, task{id: s.nextID, owner: owner, at: at, fn: fn})
	return s.nextID
}

// Cancel removes a pending task
func (s *Scheduler) Cancel(id TaskID) bool {
	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// CancelOwner removes every pending task of an owner
func (s *Scheduler) CancelOwner(owner entity.EntityID) int {
	n := 0
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.owner == owner {
			n++
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	return n
}

// CancelAll drops every pending task
func (s *Scheduler) CancelAll() {
	s.tasks = nil
}

// Close cancels everything and rejects further scheduling
func (s *Scheduler) Close() {
	s.CancelAll()
	s.closed = true
}

// Run fires due tasks in scheduling order and returns how many ran.
// Tasks scheduled by a callback wait for the next Run.
func (s *Scheduler) Run(now time.Time) int {
	if len(s.tasks) == 0 {
		return 0
	}

	var due []task
	kept := make([]task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if now.Before(t.at) {
			kept = append(kept, t)
		} else {
			due = append(due, t)
		}
	}
	s.tasks = kept

	for _, t := range due {
		t.fn()
	}
	return len(due)
}

// Pending returns the number of scheduled tasks
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}
