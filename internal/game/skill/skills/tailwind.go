package skills

import (
	"fmt"

	"github.com/melnikovdev/hordego/internal/game/skill"
)

// TailwindEffect — per-level tunables for Tailwind.
type TailwindEffect struct {
	ProjectileSpeed float64 // multiplier, >1 = faster
}

func (TailwindEffect) Kind() string { return "tailwind" }

// index = level-1
var tailwindLevels = []TailwindEffect{
	{ProjectileSpeed: 1.10},
	{ProjectileSpeed: 1.20},
	{ProjectileSpeed: 1.30},
}

// Tailwind — projectile speed passive. Also nudges each spawned
// projectile directly through the modifier hook.
type Tailwind struct {
	desc skill.Descriptor
}

func NewTailwind() *Tailwind {
	return &Tailwind{desc: skill.Descriptor{
		ID:          "tailwind",
		Name:        "Tailwind",
		Description: "Projectiles travel faster.",
		Icon:        "icon_tailwind",
		Color:       0x3498DB,
		MaxLevel:    int32(len(tailwindLevels)),
		Category:    skill.CategoryPassive,
		Activation:  skill.ActivationPassive,
		Requires:    []skill.Tag{skill.TagProjectile},
	}}
}

func (s *Tailwind) SkillID() string              { return s.desc.ID }
func (s *Tailwind) Category() skill.Category     { return s.desc.Category }
func (s *Tailwind) Descriptor() skill.Descriptor { return s.desc }

func (s *Tailwind) EffectAt(level int32) skill.Effect {
	return tailwindLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
}

func (s *Tailwind) StatsAt(level int32) skill.Contribution {
	e := tailwindLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return skill.Contribution{
		skill.FieldProjectileSpeedMultiplier: e.ProjectileSpeed,
	}
}

func (s *Tailwind) DescribeLevel(level int32) string {
	e := tailwindLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return fmt.Sprintf("Projectile speed x%.2f", e.ProjectileSpeed)
}

func (s *Tailwind) DescribeNextLevel(current int32) string {
	if current >= s.desc.MaxLevel {
		return skill.MaxLevelMarker
	}
	return s.DescribeLevel(current + 1)
}

// ModifyProjectile scales the projectile's own speed value.
func (s *Tailwind) ModifyProjectile(proj *skill.Projectile, level int32) {
	e := tailwindLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	proj.Speed *= e.ProjectileSpeed
}
