package skill

// Effect — per-level numeric snapshot of one skill's tunables.
// Each skill family defines its own record struct; Kind discriminates
// them for logging and tooling, nothing branches on it at runtime.
type Effect interface {
	Kind() string
}

// ActiveSkill — one skill currently held by a player.
// Supplied by the caller on every combination pass; the Registry does
// not own or validate these.
type ActiveSkill struct {
	SkillID string
	Level   int32
}

// Projectile carries the mutable parameters of one fired projectile.
// Passed to ProjectileModifier hooks before spawn.
type Projectile struct {
	Damage    float64
	Speed     float64
	Pierce    int32
	Knockback float64
}
