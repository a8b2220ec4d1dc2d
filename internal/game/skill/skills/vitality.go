package skills

import (
	"fmt"

	"github.com/melnikovdev/hordego/internal/game/skill"
)

// VitalityEffect — per-level tunables for Vitality.
type VitalityEffect struct {
	MaxHealth float64
}

func (VitalityEffect) Kind() string { return "vitality" }

// index = level-1
var vitalityLevels = []VitalityEffect{
	{MaxHealth: 20},
	{MaxHealth: 40},
	{MaxHealth: 60},
	{MaxHealth: 80},
	{MaxHealth: 100},
}

// Vitality — flat max health passive.
type Vitality struct {
	desc skill.Descriptor
}

func NewVitality() *Vitality {
	return &Vitality{desc: skill.Descriptor{
		ID:          "vitality",
		Name:        "Vitality",
		Description: "Raises maximum health.",
		Icon:        "icon_vitality",
		Color:       0xE74C3C,
		MaxLevel:    int32(len(vitalityLevels)),
		Category:    skill.CategoryPassive,
		Activation:  skill.ActivationPassive,
	}}
}

func (s *Vitality) SkillID() string              { return s.desc.ID }
func (s *Vitality) Category() skill.Category     { return s.desc.Category }
func (s *Vitality) Descriptor() skill.Descriptor { return s.desc }

func (s *Vitality) EffectAt(level int32) skill.Effect {
	return vitalityLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
}

func (s *Vitality) StatsAt(level int32) skill.Contribution {
	e := vitalityLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return skill.Contribution{
		skill.FieldMaxHealthBonus: e.MaxHealth,
	}
}

func (s *Vitality) DescribeLevel(level int32) string {
	e := vitalityLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return fmt.Sprintf("+%.0f max health", e.MaxHealth)
}

func (s *Vitality) DescribeNextLevel(current int32) string {
	if current >= s.desc.MaxLevel {
		return skill.MaxLevelMarker
	}
	return s.DescribeLevel(current + 1)
}
