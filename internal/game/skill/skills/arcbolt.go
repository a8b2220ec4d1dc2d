package skills

import (
	"fmt"

	"github.com/melnikovdev/hordego/internal/game/skill"
)

// ArcboltEffect — per-level tunables for the Arcbolt weapon.
type ArcboltEffect struct {
	Damage   float64
	FireRate float64 // multiplier on the global fire interval, <1 = faster
	Range    float64
}

func (ArcboltEffect) Kind() string { return "arcbolt" }

// index = level-1
var arcboltLevels = []ArcboltEffect{
	{Damage: 4, FireRate: 1.0, Range: 260},
	{Damage: 6, FireRate: 0.9, Range: 280},
	{Damage: 9, FireRate: 0.8, Range: 300},
}

// Arcbolt — homing bolt fired at the nearest enemy.
type Arcbolt struct {
	desc skill.Descriptor
}

func NewArcbolt() *Arcbolt {
	return &Arcbolt{desc: skill.Descriptor{
		ID:          "arcbolt",
		Name:        "Arcbolt",
		Description: "Launches a bolt at the nearest enemy.",
		Icon:        "icon_arcbolt",
		Color:       0x2980B9,
		MaxLevel:    int32(len(arcboltLevels)),
		Category:    skill.CategoryWeapon,
		Activation:  skill.ActivationAuto,
		Grants:      []skill.Tag{skill.TagProjectile},
	}}
}

func (s *Arcbolt) SkillID() string              { return s.desc.ID }
func (s *Arcbolt) Category() skill.Category     { return s.desc.Category }
func (s *Arcbolt) Descriptor() skill.Descriptor { return s.desc }

func (s *Arcbolt) EffectAt(level int32) skill.Effect {
	return arcboltLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
}

func (s *Arcbolt) StatsAt(level int32) skill.Contribution {
	e := arcboltLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return skill.Contribution{
		skill.FieldDamageBonus:        e.Damage,
		skill.FieldFireRateMultiplier: e.FireRate,
	}
}

func (s *Arcbolt) DescribeLevel(level int32) string {
	e := arcboltLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return fmt.Sprintf("Fires a %.0f damage bolt, fire interval x%.2f", e.Damage, e.FireRate)
}

func (s *Arcbolt) DescribeNextLevel(current int32) string {
	if current >= s.desc.MaxLevel {
		return skill.MaxLevelMarker
	}
	return s.DescribeLevel(current + 1)
}
