package entity

// Kind is the archetype of a combat actor
type Kind int

const (
	KindPlayer Kind = iota
	KindRobot
	KindZombie
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindRobot:
		return "robot"
	case KindZombie:
		return "zombie"
	default:
		return "unknown"
	}
}

// ReachClass selects one of the two configured attack tolerances
type ReachClass int

const (
	ReachShort ReachClass = iota
	ReachLong
)

// Reach returns the reach class of the archetype.
// Zombies claw at short range; the player and the robot swing long.
func (k Kind) Reach() ReachClass {
	if k == KindZombie {
		return ReachShort
	}
	return ReachLong
}

// Pose is the sprite state of an actor
type Pose int

const (
	PoseIdle Pose = iota
	PoseAttack
)

// Actor is a movable entity that can fight
type Actor struct {
	ID   EntityID
	Kind Kind
	Mover

	Health      int // may go negative
	MaxHealth   int
	AttackPower int

	Visible bool
	Pose    Pose

	// AI
	DetectRange    float64
	AttackCooldown float64 // seconds between attacks
	AttackTimer    float64 // seconds until next attack is allowed
}

// NewActor creates a visible actor at full health
func NewActor(id EntityID, kind Kind, mover Mover, maxHealth, attackPower int) *Actor {
	return &Actor{
		ID:          id,
		Kind:        kind,
		Mover:       mover,
		Health:      maxHealth,
		MaxHealth:   maxHealth,
		AttackPower: attackPower,
		Visible:     true,
	}
}

// TakeDamage subtracts damage and reports whether the actor is now defeated.
// Health is not clamped at zero.
func (a *Actor) TakeDamage(damage int) bool {
	a.Health -= damage
	return a.IsDefeated()
}

// IsDefeated returns true once health has dropped to zero or below
func (a *Actor) IsDefeated() bool {
	return a.Health <= 0
}

// MarkDefeated hides the actor and parks it off-screen.
// The record stays; active lists must filter it out.
func (a *Actor) MarkDefeated(offscreen Position) {
	a.Visible = false
	a.Pose = PoseIdle
	a.Pos = offscreen
}

// TickCooldown counts the attack timer down by dt seconds
func (a *Actor) TickCooldown(dt float64) {
	if a.AttackTimer > 0 {
		a.AttackTimer -= dt
		if a.AttackTimer < 0 {
			a.AttackTimer = 0
		}
	}
}

// CanAttack returns true if the attack cooldown has elapsed
func (a *Actor) CanAttack() bool {
	return a.AttackTimer <= 0
}
