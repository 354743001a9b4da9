package system

import "github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/domain/entity"

// Roster is the active list of hostile actors.
// Defeated actors stay in the list until Prune removes them.
type Roster struct {
	actors []*entity.Actor
}

// NewRoster creates an empty roster
func NewRoster() *Roster {
	return &Roster{actors: make([]*entity.Actor, 0, 16)}
}

// Add appends actors to the roster
func (r *Roster) Add(actors ...*entity.Actor) {
	r.actors = append(r.actors, actors...)
}

// Active returns the current list. The slice is shared with the roster and
// is rewritten in place by Prune and Reset; callers must not hold it across
// either call.
func (r *Roster) Active() []*entity.Actor {
	return r.actors
}

// Prune drops defeated actors and returns them
func (r *Roster) Prune() []*entity.Actor {
	var removed []*entity.Actor
	kept := r.actors[:0]
	for _, a := range r.actors {
		if a.IsDefeated() {
			removed = append(removed, a)
			continue
		}
		kept = append(kept, a)
	}
	// Clear the tail so pruned actors can be collected
	for i := len(kept); i < len(r.actors); i++ {
		r.actors[i] = nil
	}
	r.actors = kept
	return removed
}

// Len returns the number of actors in the roster
func (r *Roster) Len() int {
	return len(r.actors)
}

// Reset empties the roster
func (r *Roster) Reset() {
	for i := range r.actors {
		r.actors[i] = nil
	}
	r.actors = r.actors[:0]
}
