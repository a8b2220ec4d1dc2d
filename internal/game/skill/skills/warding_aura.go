package skills

import (
	"fmt"

	"github.com/melnikovdev/hordego/internal/game/skill"
)

// WardingAuraEffect — per-level tunables for the Warding Aura weapon.
type WardingAuraEffect struct {
	Radius        float64
	DamagePerTick float64
	TickMs        float64
}

func (WardingAuraEffect) Kind() string { return "warding_aura" }

// index = level-1
var wardingAuraLevels = []WardingAuraEffect{
	{Radius: 40, DamagePerTick: 1, TickMs: 750},
	{Radius: 55, DamagePerTick: 2, TickMs: 750},
	{Radius: 70, DamagePerTick: 3, TickMs: 700},
	{Radius: 90, DamagePerTick: 4, TickMs: 650},
}

// WardingAura — damaging ring around the bearer. The radius folds under
// the max law: two aura sources never stack, the bigger ring wins.
type WardingAura struct {
	desc skill.Descriptor
}

func NewWardingAura() *WardingAura {
	return &WardingAura{desc: skill.Descriptor{
		ID:          "warding_aura",
		Name:        "Warding Aura",
		Description: "Burns enemies that come too close.",
		Icon:        "icon_warding_aura",
		Color:       0x27AE60,
		MaxLevel:    int32(len(wardingAuraLevels)),
		Category:    skill.CategoryWeapon,
		Activation:  skill.ActivationAuto,
		Grants:      []skill.Tag{skill.TagAura},
	}}
}

func (s *WardingAura) SkillID() string              { return s.desc.ID }
func (s *WardingAura) Category() skill.Category     { return s.desc.Category }
func (s *WardingAura) Descriptor() skill.Descriptor { return s.desc }

func (s *WardingAura) EffectAt(level int32) skill.Effect {
	return wardingAuraLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
}

func (s *WardingAura) StatsAt(level int32) skill.Contribution {
	e := wardingAuraLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return skill.Contribution{
		skill.FieldAuraRadius:  e.Radius,
		skill.FieldDamageBonus: e.DamagePerTick,
	}
}

func (s *WardingAura) DescribeLevel(level int32) string {
	e := wardingAuraLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return fmt.Sprintf("Burns for %.0f damage within %.0f units", e.DamagePerTick, e.Radius)
}

func (s *WardingAura) DescribeNextLevel(current int32) string {
	if current >= s.desc.MaxLevel {
		return skill.MaxLevelMarker
	}
	return s.DescribeLevel(current + 1)
}

// RenderHint returns the client overlay key. The ring visual thickens
// at the last level.
func (s *WardingAura) RenderHint(level int32) string {
	if skill.ClampLevel(level, s.desc.MaxLevel) == s.desc.MaxLevel {
		return "aura_ring_heavy"
	}
	return "aura_ring"
}
