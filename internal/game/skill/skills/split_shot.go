package skills

import (
	"fmt"

	"github.com/melnikovdev/hordego/internal/game/skill"
)

// SplitShotEffect — per-level tunables for Split Shot.
type SplitShotEffect struct {
	ExtraProjectiles int32
	ExtraPierce      int32
}

func (SplitShotEffect) Kind() string { return "split_shot" }

// index = level-1
var splitShotLevels = []SplitShotEffect{
	{ExtraProjectiles: 1, ExtraPierce: 0},
	{ExtraProjectiles: 2, ExtraPierce: 0},
	{ExtraProjectiles: 3, ExtraPierce: 1},
}

// SplitShot — passive that adds projectiles to every projectile weapon.
// Requires a projectile source to be of any use, hence the tag gate.
type SplitShot struct {
	desc skill.Descriptor
}

func NewSplitShot() *SplitShot {
	return &SplitShot{desc: skill.Descriptor{
		ID:          "split_shot",
		Name:        "Split Shot",
		Description: "Every volley fires additional projectiles.",
		Icon:        "icon_split_shot",
		Color:       0xD35400,
		MaxLevel:    int32(len(splitShotLevels)),
		Category:    skill.CategoryPassive,
		Activation:  skill.ActivationPassive,
		Requires:    []skill.Tag{skill.TagProjectile},
	}}
}

func (s *SplitShot) SkillID() string              { return s.desc.ID }
func (s *SplitShot) Category() skill.Category     { return s.desc.Category }
func (s *SplitShot) Descriptor() skill.Descriptor { return s.desc }

func (s *SplitShot) EffectAt(level int32) skill.Effect {
	return splitShotLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
}

func (s *SplitShot) StatsAt(level int32) skill.Contribution {
	e := splitShotLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return skill.Contribution{
		skill.FieldProjectileCount: float64(e.ExtraProjectiles),
	}
}

func (s *SplitShot) DescribeLevel(level int32) string {
	e := splitShotLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return fmt.Sprintf("+%d projectile(s) per volley", e.ExtraProjectiles)
}

func (s *SplitShot) DescribeNextLevel(current int32) string {
	if current >= s.desc.MaxLevel {
		return skill.MaxLevelMarker
	}
	return s.DescribeLevel(current + 1)
}

// ModifyProjectile grants the per-level pierce bonus to spawned projectiles.
func (s *SplitShot) ModifyProjectile(proj *skill.Projectile, level int32) {
	e := splitShotLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	proj.Pierce += e.ExtraPierce
}
