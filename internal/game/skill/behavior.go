package skill

// Behavior is the capability contract every skill implements.
// One instance per skill id, created once, registered once, and treated
// as immutable afterwards: EffectAt and StatsAt must be pure functions
// of level.
type Behavior interface {
	SkillID() string
	Category() Category
	Descriptor() Descriptor

	// EffectAt returns the per-level effect record. Level is clamped
	// into [1, MaxLevel] — out-of-range levels read as the nearest
	// valid level, never an error.
	EffectAt(level int32) Effect

	// StatsAt returns the skill's partial stat contribution at the
	// given level. Fields absent from the map are untouched by the
	// combiner — absence means "does not affect", not "affects with 0".
	StatsAt(level int32) Contribution

	// DescribeLevel returns tooltip text for one level.
	DescribeLevel(level int32) string

	// DescribeNextLevel returns the text for current+1, or
	// MaxLevelMarker when the skill is already capped.
	DescribeNextLevel(current int32) string
}

// Optional capability interfaces. A Behavior may implement any subset;
// absence means the skill has no per-frame or per-event logic.
// Same pattern as optional provider interfaces elsewhere in the code:
// consumers type-assert and skip silently.

// Activatable is implemented by skills that need explicit arming
// before they run (ActivationTriggered).
type Activatable interface {
	OnActivate(ownerID uint32, level int32)
	OnDeactivate(ownerID uint32)
}

// Updatable is implemented by skills with per-tick logic.
// Update returns false when the skill wants to deactivate itself.
type Updatable interface {
	Update(ownerID uint32, level int32, deltaMs int32) bool
}

// ProjectileModifier is implemented by skills that adjust projectiles
// before they spawn.
type ProjectileModifier interface {
	ModifyProjectile(proj *Projectile, level int32)
}

// Renderer is implemented by skills with a client-side visual overlay.
// RenderHint returns the client visual key for the given level.
type Renderer interface {
	RenderHint(level int32) string
}
