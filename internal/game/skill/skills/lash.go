package skills

import (
	"fmt"

	"github.com/melnikovdev/hordego/internal/game/skill"
)

// LashEffect — per-level tunables for the Lash weapon.
type LashEffect struct {
	Damage     float64
	Knockback  float64 // multiplier, 1.0 = no change
	CooldownMs float64
	ArcDegrees float64
}

func (LashEffect) Kind() string { return "lash" }

// index = level-1
var lashLevels = []LashEffect{
	{Damage: 3, Knockback: 1.0, CooldownMs: 1300, ArcDegrees: 120},
	{Damage: 5, Knockback: 1.0, CooldownMs: 1300, ArcDegrees: 120},
	{Damage: 8, Knockback: 1.1, CooldownMs: 1200, ArcDegrees: 140},
	{Damage: 12, Knockback: 1.1, CooldownMs: 1200, ArcDegrees: 140},
	{Damage: 16, Knockback: 1.25, CooldownMs: 1100, ArcDegrees: 160},
}

// Lash — close-range arc swipe, the starting melee weapon.
type Lash struct {
	desc skill.Descriptor
}

func NewLash() *Lash {
	return &Lash{desc: skill.Descriptor{
		ID:          "lash",
		Name:        "Lash",
		Description: "Swipes a wide arc in front of the bearer.",
		Icon:        "icon_lash",
		Color:       0xC0392B,
		MaxLevel:    int32(len(lashLevels)),
		Category:    skill.CategoryWeapon,
		Activation:  skill.ActivationAuto,
		Grants:      []skill.Tag{skill.TagMelee},
	}}
}

func (s *Lash) SkillID() string              { return s.desc.ID }
func (s *Lash) Category() skill.Category     { return s.desc.Category }
func (s *Lash) Descriptor() skill.Descriptor { return s.desc }

func (s *Lash) EffectAt(level int32) skill.Effect {
	return lashLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
}

func (s *Lash) StatsAt(level int32) skill.Contribution {
	e := lashLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return skill.Contribution{
		skill.FieldDamageBonus:         e.Damage,
		skill.FieldKnockbackMultiplier: e.Knockback,
		skill.FieldFireCooldown:        e.CooldownMs,
	}
}

func (s *Lash) DescribeLevel(level int32) string {
	e := lashLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return fmt.Sprintf("Deals %.0f damage in a %.0f-degree arc every %.1fs",
		e.Damage, e.ArcDegrees, e.CooldownMs/1000)
}

func (s *Lash) DescribeNextLevel(current int32) string {
	if current >= s.desc.MaxLevel {
		return skill.MaxLevelMarker
	}
	return s.DescribeLevel(current + 1)
}
