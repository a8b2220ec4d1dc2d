package skills

import (
	"fmt"

	"github.com/melnikovdev/hordego/internal/game/skill"
)

// SwiftBootsEffect — per-level tunables for Swift Boots.
type SwiftBootsEffect struct {
	MoveSpeed float64 // multiplier, >1 = faster
}

func (SwiftBootsEffect) Kind() string { return "swift_boots" }

// index = level-1
var swiftBootsLevels = []SwiftBootsEffect{
	{MoveSpeed: 1.05},
	{MoveSpeed: 1.10},
	{MoveSpeed: 1.15},
	{MoveSpeed: 1.20},
}

// SwiftBoots — movement speed passive.
type SwiftBoots struct {
	desc skill.Descriptor
}

func NewSwiftBoots() *SwiftBoots {
	return &SwiftBoots{desc: skill.Descriptor{
		ID:          "swift_boots",
		Name:        "Swift Boots",
		Description: "The bearer moves faster.",
		Icon:        "icon_swift_boots",
		Color:       0xF1C40F,
		MaxLevel:    int32(len(swiftBootsLevels)),
		Category:    skill.CategoryPassive,
		Activation:  skill.ActivationPassive,
	}}
}

func (s *SwiftBoots) SkillID() string              { return s.desc.ID }
func (s *SwiftBoots) Category() skill.Category     { return s.desc.Category }
func (s *SwiftBoots) Descriptor() skill.Descriptor { return s.desc }

func (s *SwiftBoots) EffectAt(level int32) skill.Effect {
	return swiftBootsLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
}

func (s *SwiftBoots) StatsAt(level int32) skill.Contribution {
	e := swiftBootsLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return skill.Contribution{
		skill.FieldMoveSpeedMultiplier: e.MoveSpeed,
	}
}

func (s *SwiftBoots) DescribeLevel(level int32) string {
	e := swiftBootsLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return fmt.Sprintf("Move speed x%.2f", e.MoveSpeed)
}

func (s *SwiftBoots) DescribeNextLevel(current int32) string {
	if current >= s.desc.MaxLevel {
		return skill.MaxLevelMarker
	}
	return s.DescribeLevel(current + 1)
}
