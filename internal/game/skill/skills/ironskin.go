package skills

import (
	"fmt"

	"github.com/melnikovdev/hordego/internal/game/skill"
)

// IronskinEffect — per-level tunables for Ironskin.
type IronskinEffect struct {
	Armor float64
}

func (IronskinEffect) Kind() string { return "ironskin" }

// index = level-1
var ironskinLevels = []IronskinEffect{
	{Armor: 1},
	{Armor: 2},
	{Armor: 3},
	{Armor: 4},
}

// Ironskin — flat incoming-damage reduction.
type Ironskin struct {
	desc skill.Descriptor
}

func NewIronskin() *Ironskin {
	return &Ironskin{desc: skill.Descriptor{
		ID:          "ironskin",
		Name:        "Ironskin",
		Description: "Reduces every hit taken by a flat amount.",
		Icon:        "icon_ironskin",
		Color:       0x7F8C8D,
		MaxLevel:    int32(len(ironskinLevels)),
		Category:    skill.CategoryPassive,
		Activation:  skill.ActivationPassive,
		Grants:      []skill.Tag{skill.TagDefense},
	}}
}

func (s *Ironskin) SkillID() string              { return s.desc.ID }
func (s *Ironskin) Category() skill.Category     { return s.desc.Category }
func (s *Ironskin) Descriptor() skill.Descriptor { return s.desc }

func (s *Ironskin) EffectAt(level int32) skill.Effect {
	return ironskinLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
}

func (s *Ironskin) StatsAt(level int32) skill.Contribution {
	e := ironskinLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return skill.Contribution{
		skill.FieldArmorBonus: e.Armor,
	}
}

func (s *Ironskin) DescribeLevel(level int32) string {
	e := ironskinLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return fmt.Sprintf("-%.0f damage from every hit", e.Armor)
}

func (s *Ironskin) DescribeNextLevel(current int32) string {
	if current >= s.desc.MaxLevel {
		return skill.MaxLevelMarker
	}
	return s.DescribeLevel(current + 1)
}
