package system

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/CSE110-Coblenz/cse-110-project-team-17-sub000/internal/domain/entity"
)

// ErrPlayerNotSet is returned when the encounter is used before SetPlayer
var ErrPlayerNotSet = errors.New("player not set")

// Encounter holds the player and the hostile roster and drives attacks
// between them
type Encounter struct {
	player         *entity.Actor
	enemies        *Roster
	resolver       *CombatResolver
	scheduler      *Scheduler
	attackDuration time.Duration
	log            *logrus.Entry
}

// NewEncounter creates an encounter with an empty roster
func NewEncounter(resolver *CombatResolver, scheduler *Scheduler, attackDuration time.Duration, log *logrus.Entry) *Encounter {
	return &Encounter{
		enemies:        NewRoster(),
		resolver:       resolver,
		scheduler:      scheduler,
		attackDuration: attackDuration,
		log:            log,
	}
}

// SetPlayer sets the player actor
func (e *Encounter) SetPlayer(p *entity.Actor) {
	e.player = p
}

// Player returns the player actor or ErrPlayerNotSet
func (e *Encounter) Player() (*entity.Actor, error) {
	if e.player == nil {
		return nil, ErrPlayerNotSet
	}
	return e.player, nil
}

// Enemies returns the hostile roster
func (e *Encounter) Enemies() *Roster {
	return e.enemies
}

// PlayerAttack swings the player at every active enemy.
// Only hits are returned. A swing on cooldown returns no results.
func (e *Encounter) PlayerAttack(now time.Time) ([]AttackResult, error) {
	player, err := e.Player()
	if err != nil {
		return nil, err
	}
	return e.Attack(player, now), nil
}

// Attack swings any friendly actor at every active enemy and prunes the
// defeated ones from the roster
func (e *Encounter) Attack(attacker *entity.Actor, now time.Time) []AttackResult {
	if !attacker.CanAttack() {
		return nil
	}
	attacker.AttackTimer = attacker.AttackCooldown
	e.strikePose(attacker, now)

	var hits []AttackResult
	for _, enemy := range e.enemies.Active() {
		result := e.resolver.PerformAttack(attacker, enemy)
		if result.Hit {
			hits = append(hits, result)
		}
	}

	e.Prune()
	return hits
}

// Strike turns the attacker toward a single target and swings if the
// cooldown allows and the target is in reach. A swing that does not happen
// leaves the attacker's facing unchanged.
func (e *Encounter) Strike(attacker, target *entity.Actor, now time.Time) (AttackResult, bool) {
	if !attacker.CanAttack() || !e.resolver.CanReach(attacker, target) {
		return AttackResult{}, false
	}

	attacker.Face(FacingToward(attacker.Pos, target.Pos))
	attacker.AttackTimer = attacker.AttackCooldown
	e.strikePose(attacker, now)

	result := e.resolver.PerformAttack(attacker, target)
	return result, result.Hit
}

// Prune drops defeated enemies from the roster and cancels their pending tasks
func (e *Encounter) Prune() []*entity.Actor {
	removed := e.enemies.Prune()
	if len(removed) == 0 {
		return nil
	}

	for _, a := range removed {
		e.scheduler.CancelOwner(a.ID)
	}
	e.log.WithFields(logrus.Fields{
		"removed":   len(removed),
		"remaining": e.enemies.Len(),
	}).Debug("Pruned defeated enemies")
	return removed
}

// strikePose shows the attack pose and schedules the swap back
func (e *Encounter) strikePose(a *entity.Actor, now time.Time) {
	a.Pose = entity.PoseAttack
	e.scheduler.CancelOwner(a.ID)
	e.scheduler.After(a.ID, now.Add(e.attackDuration), func() {
		a.Pose = entity.PoseIdle
	})
}
