package skills

import (
	"fmt"

	"github.com/melnikovdev/hordego/internal/game/skill"
)

// LoadstoneEffect — per-level tunables for Loadstone.
type LoadstoneEffect struct {
	PickupRadius float64
}

func (LoadstoneEffect) Kind() string { return "loadstone" }

// index = level-1
var loadstoneLevels = []LoadstoneEffect{
	{PickupRadius: 30},
	{PickupRadius: 50},
	{PickupRadius: 75},
}

// Loadstone — widens the drop pickup radius. Max law: only the
// strongest magnet counts.
type Loadstone struct {
	desc skill.Descriptor
}

func NewLoadstone() *Loadstone {
	return &Loadstone{desc: skill.Descriptor{
		ID:          "loadstone",
		Name:        "Loadstone",
		Description: "Draws in drops from further away.",
		Icon:        "icon_loadstone",
		Color:       0x95A5A6,
		MaxLevel:    int32(len(loadstoneLevels)),
		Category:    skill.CategoryPassive,
		Activation:  skill.ActivationPassive,
	}}
}

func (s *Loadstone) SkillID() string              { return s.desc.ID }
func (s *Loadstone) Category() skill.Category     { return s.desc.Category }
func (s *Loadstone) Descriptor() skill.Descriptor { return s.desc }

func (s *Loadstone) EffectAt(level int32) skill.Effect {
	return loadstoneLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
}

func (s *Loadstone) StatsAt(level int32) skill.Contribution {
	e := loadstoneLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return skill.Contribution{
		skill.FieldPickupRadius: e.PickupRadius,
	}
}

func (s *Loadstone) DescribeLevel(level int32) string {
	e := loadstoneLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return fmt.Sprintf("Pickup radius %.0f units", e.PickupRadius)
}

func (s *Loadstone) DescribeNextLevel(current int32) string {
	if current >= s.desc.MaxLevel {
		return skill.MaxLevelMarker
	}
	return s.DescribeLevel(current + 1)
}
