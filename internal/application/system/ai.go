package system

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/domain/entity"
)

// arriveEpsilon is the per-axis gap under which a chaser stops stepping
const arriveEpsilon = 1.0

// ChaseAI moves hostile actors toward a target and attacks it
type ChaseAI struct {
	movement  *MovementSystem
	encounter *Encounter
	log       *logrus.Entry
}

// NewChaseAI creates a new chase AI. Swings go through the encounter so
// they show the attack pose like the player's.
func NewChaseAI(movement *MovementSystem, encounter *Encounter, log *logrus.Entry) *ChaseAI {
	return &ChaseAI{
		movement:  movement,
		encounter: encounter,
		log:       log,
	}
}

// Update steps every chaser. dt is in seconds. Returns the hits landed.
func (ai *ChaseAI) Update(chasers []*entity.Actor, target *entity.Actor, dt float64, now time.Time) []AttackResult {
	var hits []AttackResult
	if target == nil || target.IsDefeated() {
		return hits
	}

	for _, c := range chasers {
		if c.IsDefeated() {
			continue
		}
		c.TickCooldown(dt)

		if !(c.Pos.DistanceTo(target.Pos) <= c.DetectRange) {
			continue
		}

		approach(ai.movement, ai.encounter.resolver, c, target)

		if result, ok := ai.encounter.Strike(c, target, now); ok {
			hits = append(hits, result)
		}
	}

	return hits
}

// AllyAI drives the robot companion: it hunts the nearest enemy in detect
// range and otherwise trails the leader
type AllyAI struct {
	movement       *MovementSystem
	encounter      *Encounter
	followDistance float64
	log            *logrus.Entry
}

// NewAllyAI creates a new ally AI
func NewAllyAI(movement *MovementSystem, encounter *Encounter, followDistance float64, log *logrus.Entry) *AllyAI {
	return &AllyAI{
		movement:       movement,
		encounter:      encounter,
		followDistance: followDistance,
		log:            log,
	}
}

// Update steps the ally once. Returns the hits landed.
func (ai *AllyAI) Update(ally, leader *entity.Actor, enemies []*entity.Actor, dt float64, now time.Time) []AttackResult {
	var hits []AttackResult
	if ally == nil || ally.IsDefeated() {
		return hits
	}
	ally.TickCooldown(dt)

	target := nearest(ally, enemies)
	if target == nil {
		if leader != nil && ally.Pos.DistanceTo(leader.Pos) > ai.followDistance {
			stepToward(ai.movement, &ally.Mover, leader.Pos)
		}
		return hits
	}

	approach(ai.movement, ai.encounter.resolver, ally, target)

	if result, ok := ai.encounter.Strike(ally, target, now); ok {
		hits = append(hits, result)
	}
	return hits
}

// nearest returns the closest undefeated enemy inside the actor's detect range
func nearest(a *entity.Actor, enemies []*entity.Actor) *entity.Actor {
	var best *entity.Actor
	bestDist := math.Inf(1)
	for _, e := range enemies {
		if e.IsDefeated() {
			continue
		}
		d := a.Pos.DistanceTo(e.Pos)
		if d <= a.DetectRange && d < bestDist {
			best = e
			bestDist = d
		}
	}
	return best
}

// approach closes in on the target until it could be hit after turning.
// An attacker sitting exactly on the target has no side to face, so it
// backs off one step first.
func approach(ms *MovementSystem, r *CombatResolver, a, target *entity.Actor) bool {
	if a.Pos == target.Pos {
		return backOff(ms, &a.Mover)
	}
	if r.CanReach(a, target) {
		return false
	}
	return stepToward(ms, &a.Mover, target.Pos)
}

// stepToward moves a mover one step toward pos using -1/0/1 axis input
func stepToward(ms *MovementSystem, m *entity.Mover, pos entity.Position) bool {
	var dx, dy float64
	if gap := pos.X - m.Pos.X; math.Abs(gap) > arriveEpsilon {
		dx = sign(gap)
	}
	if gap := pos.Y - m.Pos.Y; math.Abs(gap) > arriveEpsilon {
		dy = sign(gap)
	}
	return ms.Move(m, dx, dy)
}

// backOff steps a mover against its facing, then along the other axis if
// that is blocked. Facing is restored so the next swing points back.
func backOff(ms *MovementSystem, m *entity.Mover) bool {
	facing := m.Facing
	defer m.Face(facing)

	var dx, dy float64
	switch facing {
	case entity.DirRight:
		dx = -1
	case entity.DirLeft:
		dx = 1
	case entity.DirDown:
		dy = -1
	case entity.DirUp:
		dy = 1
	}
	if ms.Move(m, dx, dy) {
		return true
	}
	return ms.Move(m, dy, dx) || ms.Move(m, -dy, -dx)
}
