package skills

import (
	"fmt"

	"github.com/melnikovdev/hordego/internal/game/skill"
)

// GrimFocusEffect — per-level tunables for Grim Focus.
type GrimFocusEffect struct {
	Damage float64 // multiplier on all outgoing damage
}

func (GrimFocusEffect) Kind() string { return "grim_focus" }

// index = level-1
var grimFocusLevels = []GrimFocusEffect{
	{Damage: 1.08},
	{Damage: 1.16},
	{Damage: 1.25},
}

// GrimFocus — global damage amplifier, unlocked by melee mastery.
type GrimFocus struct {
	desc skill.Descriptor
}

func NewGrimFocus() *GrimFocus {
	return &GrimFocus{desc: skill.Descriptor{
		ID:          "grim_focus",
		Name:        "Grim Focus",
		Description: "All attacks hit harder.",
		Icon:        "icon_grim_focus",
		Color:       0x2C3E50,
		MaxLevel:    int32(len(grimFocusLevels)),
		Category:    skill.CategoryPassive,
		Activation:  skill.ActivationPassive,
		Requires:    []skill.Tag{skill.TagMelee},
	}}
}

func (s *GrimFocus) SkillID() string              { return s.desc.ID }
func (s *GrimFocus) Category() skill.Category     { return s.desc.Category }
func (s *GrimFocus) Descriptor() skill.Descriptor { return s.desc }

func (s *GrimFocus) EffectAt(level int32) skill.Effect {
	return grimFocusLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
}

func (s *GrimFocus) StatsAt(level int32) skill.Contribution {
	e := grimFocusLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return skill.Contribution{
		skill.FieldDamageMultiplier: e.Damage,
	}
}

func (s *GrimFocus) DescribeLevel(level int32) string {
	e := grimFocusLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return fmt.Sprintf("Damage x%.2f", e.Damage)
}

func (s *GrimFocus) DescribeNextLevel(current int32) string {
	if current >= s.desc.MaxLevel {
		return skill.MaxLevelMarker
	}
	return s.DescribeLevel(current + 1)
}
