package skill

import "log/slog"

// Field enumerates the stat fields tracked by the combination engine.
// The schema is fixed: gameplay code reads fields by constant, never by
// ad-hoc string key.
type Field uint8

const (
	FieldDamageBonus Field = iota
	FieldProjectileCount
	FieldMaxHealthBonus
	FieldArmorBonus
	FieldFireRateMultiplier
	FieldDamageMultiplier
	FieldMoveSpeedMultiplier
	FieldSpawnRateMultiplier
	FieldKnockbackMultiplier
	FieldProjectileSpeedMultiplier
	FieldAuraRadius
	FieldPickupRadius
	FieldFireCooldown
	FieldSpellPeriod

	FieldCount
)

var fieldNames = [FieldCount]string{
	FieldDamageBonus:               "damageBonus",
	FieldProjectileCount:           "projectileCount",
	FieldMaxHealthBonus:            "maxHealthBonus",
	FieldArmorBonus:                "armorBonus",
	FieldFireRateMultiplier:        "fireRateMultiplier",
	FieldDamageMultiplier:          "damageMultiplier",
	FieldMoveSpeedMultiplier:       "moveSpeedMultiplier",
	FieldSpawnRateMultiplier:       "spawnRateMultiplier",
	FieldKnockbackMultiplier:       "knockbackMultiplier",
	FieldProjectileSpeedMultiplier: "projectileSpeedMultiplier",
	FieldAuraRadius:                "auraRadius",
	FieldPickupRadius:              "pickupRadius",
	FieldFireCooldown:              "fireCooldown",
	FieldSpellPeriod:               "spellPeriod",
}

// String returns the field's schema name.
func (f Field) String() string {
	if f >= FieldCount {
		return "unknown"
	}
	return fieldNames[f]
}

// Law defines how contributions to a field are folded together.
// All four laws are commutative, so the fold result does not depend on
// the order the active skills are iterated in.
type Law uint8

const (
	// LawAdditive sums contributions. Identity 0.
	LawAdditive Law = iota
	// LawMultiplicative multiplies contributions. Identity 1.
	LawMultiplicative
	// LawMax keeps the single best source. Identity 0.
	LawMax
	// LawMin keeps the fastest source. 0 is the "unset" sentinel on
	// both sides: the field starts at 0 until the first positive
	// contribution, and a 0 contribution never overrides a set value.
	LawMin
)

// fieldLaws classifies every Field. A field missing here would fold
// additively; the schema test requires the table to be complete so a
// new field cannot slip through unclassified.
var fieldLaws = map[Field]Law{
	FieldDamageBonus:               LawAdditive,
	FieldProjectileCount:           LawAdditive,
	FieldMaxHealthBonus:            LawAdditive,
	FieldArmorBonus:                LawAdditive,
	FieldFireRateMultiplier:        LawMultiplicative,
	FieldDamageMultiplier:          LawMultiplicative,
	FieldMoveSpeedMultiplier:       LawMultiplicative,
	FieldSpawnRateMultiplier:       LawMultiplicative,
	FieldKnockbackMultiplier:       LawMultiplicative,
	FieldProjectileSpeedMultiplier: LawMultiplicative,
	FieldAuraRadius:                LawMax,
	FieldPickupRadius:              LawMax,
	FieldFireCooldown:              LawMin,
	FieldSpellPeriod:               LawMin,
}

// LawOf returns the combination law for a field.
func LawOf(f Field) Law {
	return fieldLaws[f]
}

// Bundle — the aggregate stat state produced by one combination pass.
// A fresh Bundle is allocated per Combine call; nothing mutates it
// across calls.
type Bundle [FieldCount]float64

// IdentityBundle returns the neutral bundle: multiplicative fields 1,
// everything else 0.
func IdentityBundle() Bundle {
	var b Bundle
	for f := Field(0); f < FieldCount; f++ {
		if fieldLaws[f] == LawMultiplicative {
			b[f] = 1
		}
	}
	return b
}

// Get returns the bundle value for a field.
func (b Bundle) Get(f Field) float64 {
	if f >= FieldCount {
		return 0
	}
	return b[f]
}

// Contribution — a partial stat bundle produced by one skill at one
// level. A missing key means the field is untouched, which is distinct
// from contributing 0.
type Contribution map[Field]float64

// fold merges one contribution value into the bundle under the field's law.
func (b *Bundle) fold(f Field, v float64) {
	switch fieldLaws[f] {
	case LawMultiplicative:
		b[f] *= v
	case LawMax:
		if v > b[f] {
			b[f] = v
		}
	case LawMin:
		if v > 0 && (b[f] == 0 || v < b[f]) {
			b[f] = v
		}
	default:
		b[f] += v
	}
}

// Combiner folds active skill contributions into a Bundle through a
// Registry. Stateless apart from the registry reference — concurrent
// Combine calls are safe once registration is complete.
type Combiner struct {
	reg *Registry
}

// NewCombiner returns a Combiner reading behaviors from reg.
func NewCombiner(reg *Registry) *Combiner {
	return &Combiner{reg: reg}
}

// Combine resolves every active skill and folds its per-level
// contribution into a fresh identity bundle. Unknown skill ids are
// skipped with a warning — a stale loadout entry must not take the
// whole pass down.
func (c *Combiner) Combine(active []ActiveSkill) Bundle {
	b := IdentityBundle()
	for _, as := range active {
		beh := c.reg.Get(as.SkillID)
		if beh == nil {
			slog.Warn("combine: unknown skill, skipping", "skill_id", as.SkillID)
			continue
		}
		for f, v := range beh.StatsAt(as.Level) {
			if f >= FieldCount {
				continue
			}
			b.fold(f, v)
		}
	}
	return b
}
