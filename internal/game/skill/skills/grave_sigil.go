package skills

import (
	"fmt"

	"github.com/melnikovdev/hordego/internal/game/skill"
)

// GraveSigilEffect — per-level tunables for Grave Sigil.
type GraveSigilEffect struct {
	SpawnRate float64 // multiplier on enemy spawn rate, >1 = more enemies
}

func (GraveSigilEffect) Kind() string { return "grave_sigil" }

// index = level-1
var graveSigilLevels = []GraveSigilEffect{
	{SpawnRate: 1.10},
	{SpawnRate: 1.20},
	{SpawnRate: 1.35},
}

// GraveSigil — curse-style passive: more enemies spawn, more drops to
// collect. The engine only reports the multiplier; the spawner decides
// what to do with it.
type GraveSigil struct {
	desc skill.Descriptor
}

func NewGraveSigil() *GraveSigil {
	return &GraveSigil{desc: skill.Descriptor{
		ID:          "grave_sigil",
		Name:        "Grave Sigil",
		Description: "The horde grows restless and plentiful.",
		Icon:        "icon_grave_sigil",
		Color:       0x4A235A,
		MaxLevel:    int32(len(graveSigilLevels)),
		Category:    skill.CategoryPassive,
		Activation:  skill.ActivationPassive,
	}}
}

func (s *GraveSigil) SkillID() string              { return s.desc.ID }
func (s *GraveSigil) Category() skill.Category     { return s.desc.Category }
func (s *GraveSigil) Descriptor() skill.Descriptor { return s.desc }

func (s *GraveSigil) EffectAt(level int32) skill.Effect {
	return graveSigilLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
}

func (s *GraveSigil) StatsAt(level int32) skill.Contribution {
	e := graveSigilLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return skill.Contribution{
		skill.FieldSpawnRateMultiplier: e.SpawnRate,
	}
}

func (s *GraveSigil) DescribeLevel(level int32) string {
	e := graveSigilLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return fmt.Sprintf("Enemy spawn rate x%.2f", e.SpawnRate)
}

func (s *GraveSigil) DescribeNextLevel(current int32) string {
	if current >= s.desc.MaxLevel {
		return skill.MaxLevelMarker
	}
	return s.DescribeLevel(current + 1)
}
