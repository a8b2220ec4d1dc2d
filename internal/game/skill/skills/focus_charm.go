package skills

import (
	"fmt"

	"github.com/melnikovdev/hordego/internal/game/skill"
)

// FocusCharmEffect — per-level tunables for Focus Charm.
type FocusCharmEffect struct {
	FireRate float64 // multiplier on the global fire interval
}

func (FocusCharmEffect) Kind() string { return "focus_charm" }

// index = level-1
var focusCharmLevels = []FocusCharmEffect{
	{FireRate: 0.92},
	{FireRate: 0.85},
	{FireRate: 0.78},
	{FireRate: 0.68},
	{FireRate: 0.60},
}

// FocusCharm — passive fire-rate amplifier for projectile weapons.
type FocusCharm struct {
	desc skill.Descriptor
}

func NewFocusCharm() *FocusCharm {
	return &FocusCharm{desc: skill.Descriptor{
		ID:          "focus_charm",
		Name:        "Focus Charm",
		Description: "Projectile weapons fire faster.",
		Icon:        "icon_focus_charm",
		Color:       0x16A085,
		MaxLevel:    int32(len(focusCharmLevels)),
		Category:    skill.CategoryPassive,
		Activation:  skill.ActivationPassive,
		Requires:    []skill.Tag{skill.TagProjectile},
	}}
}

func (s *FocusCharm) SkillID() string              { return s.desc.ID }
func (s *FocusCharm) Category() skill.Category     { return s.desc.Category }
func (s *FocusCharm) Descriptor() skill.Descriptor { return s.desc }

func (s *FocusCharm) EffectAt(level int32) skill.Effect {
	return focusCharmLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
}

func (s *FocusCharm) StatsAt(level int32) skill.Contribution {
	e := focusCharmLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return skill.Contribution{
		skill.FieldFireRateMultiplier: e.FireRate,
	}
}

func (s *FocusCharm) DescribeLevel(level int32) string {
	e := focusCharmLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return fmt.Sprintf("Fire interval x%.2f", e.FireRate)
}

func (s *FocusCharm) DescribeNextLevel(current int32) string {
	if current >= s.desc.MaxLevel {
		return skill.MaxLevelMarker
	}
	return s.DescribeLevel(current + 1)
}
