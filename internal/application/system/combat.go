package system

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/domain/entity"
	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/infrastructure/config"
)

// AttackResult describes the outcome of a single PerformAttack call
type AttackResult struct {
	Attacker entity.EntityID
	Defender entity.EntityID
	Hit      bool
	Damage   int
	Defeated bool
}

// CombatResolver decides melee hits and applies damage.
// Reach is looked up per call from immutable config; nothing is shared between calls.
type CombatResolver struct {
	shortReach float64
	longReach  float64
	offscreen  entity.Position
	log        *logrus.Entry

	// Event callbacks
	OnHit    func(attacker, defender *entity.Actor)
	OnDefeat func(defender *entity.Actor)
}

// NewCombatResolver creates a new combat resolver
func NewCombatResolver(cfg config.CombatConfig, log *logrus.Entry) *CombatResolver {
	return &CombatResolver{
		shortReach: cfg.ShortReach,
		longReach:  cfg.LongReach,
		offscreen:  entity.Position{X: cfg.Offscreen.X, Y: cfg.Offscreen.Y},
		log:        log,
	}
}

// ReachFor returns the per-axis tolerance of an attacker archetype
func (r *CombatResolver) ReachFor(kind entity.Kind) float64 {
	if kind.Reach() == entity.ReachShort {
		return r.shortReach
	}
	return r.longReach
}

// InReach reports whether the defender is strictly on the faced side of the
// attacker and within reach on both axes independently. The region is a
// square ahead of the attacker, so diagonal offsets still land.
func (r *CombatResolver) InReach(attacker, defender *entity.Actor) bool {
	return r.inReachFacing(attacker, defender, attacker.Facing)
}

// CanReach reports whether the attacker would have the defender in reach
// after turning toward it. The attacker's facing is not changed.
func (r *CombatResolver) CanReach(attacker, defender *entity.Actor) bool {
	return r.inReachFacing(attacker, defender, FacingToward(attacker.Pos, defender.Pos))
}

func (r *CombatResolver) inReachFacing(attacker, defender *entity.Actor, facing entity.Direction) bool {
	reach := r.ReachFor(attacker.Kind)
	ax, ay := attacker.Pos.X, attacker.Pos.Y
	dx, dy := defender.Pos.X, defender.Pos.Y

	var ahead bool
	switch facing {
	case entity.DirRight:
		ahead = dx > ax
	case entity.DirLeft:
		ahead = dx < ax
	case entity.DirDown:
		ahead = dy > ay
	case entity.DirUp:
		ahead = dy < ay
	}

	return ahead && math.Abs(dx-ax) <= reach && math.Abs(dy-ay) <= reach
}

// PerformAttack resolves one attack. A defeated defender is still hittable;
// filtering corpses out of active lists is the caller's job (see Roster).
func (r *CombatResolver) PerformAttack(attacker, defender *entity.Actor) AttackResult {
	result := AttackResult{
		Attacker: attacker.ID,
		Defender: defender.ID,
	}

	if !r.InReach(attacker, defender) {
		return result
	}

	result.Hit = true
	result.Damage = attacker.AttackPower
	hpBefore := defender.Health
	result.Defeated = defender.TakeDamage(attacker.AttackPower)

	r.log.WithFields(logrus.Fields{
		"attacker_id":   attacker.ID,
		"attacker_kind": attacker.Kind,
		"defender_id":   defender.ID,
		"defender_kind": defender.Kind,
		"facing":        attacker.Facing,
		"damage":        result.Damage,
		"hp_before":     hpBefore,
		"hp_after":      defender.Health,
	}).Debug("Attack landed")

	if r.OnHit != nil {
		r.OnHit(attacker, defender)
	}

	if result.Defeated {
		defender.MarkDefeated(r.offscreen)
		r.log.WithFields(logrus.Fields{
			"defender_id":   defender.ID,
			"defender_kind": defender.Kind,
		}).Info("Actor defeated")

		if r.OnDefeat != nil {
			r.OnDefeat(defender)
		}
	}

	return result
}

// FacingToward returns the direction from one position to another,
// preferring the horizontal axis on ties
func FacingToward(from, to entity.Position) entity.Direction {
	dx := to.X - from.X
	dy := to.Y - from.Y

	if math.Abs(dx) >= math.Abs(dy) {
		if dx < 0 {
			return entity.DirLeft
		}
		return entity.DirRight
	}
	if dy < 0 {
		return entity.DirUp
	}
	return entity.DirDown
}
