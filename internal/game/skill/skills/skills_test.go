package skills

import (
	"math"
	"testing"

	"github.com/melnikovdev/hordego/internal/game/skill"
)

func newTestRegistry(t *testing.T) *skill.Registry {
	t.Helper()
	reg := skill.NewRegistry()
	RegisterAll(reg)
	t.Cleanup(reg.Clear)
	return reg
}

// TestAllSkills_LevelClamping: effectAt(0) must read as level 1 and any
// level past the cap must read as the cap, for every registered skill.
func TestAllSkills_LevelClamping(t *testing.T) {
	reg := newTestRegistry(t)

	for _, d := range reg.All() {
		b := reg.Get(d.ID)
		if b.EffectAt(0) != b.EffectAt(1) {
			t.Errorf("%s: effectAt(0) != effectAt(1)", d.ID)
		}
		if b.EffectAt(-5) != b.EffectAt(1) {
			t.Errorf("%s: negative level not clamped to 1", d.ID)
		}
		for _, k := range []int32{1, 7, 100} {
			if b.EffectAt(d.MaxLevel+k) != b.EffectAt(d.MaxLevel) {
				t.Errorf("%s: effectAt(max+%d) != effectAt(max)", d.ID, k)
			}
		}
	}
}

func TestAllSkills_DescriptorInvariants(t *testing.T) {
	reg := newTestRegistry(t)

	seen := make(map[string]bool)
	for _, d := range reg.All() {
		if d.ID == "" || d.Name == "" {
			t.Errorf("skill with empty id or name: %+v", d)
		}
		if seen[d.ID] {
			t.Errorf("duplicate skill id %q", d.ID)
		}
		seen[d.ID] = true
		if d.MaxLevel < 1 {
			t.Errorf("%s: MaxLevel = %d", d.ID, d.MaxLevel)
		}
	}
}

// TestAllSkills_RequiredTagsReachable: every required tag must be
// granted by at least one other skill, otherwise the skill can never be
// offered.
func TestAllSkills_RequiredTagsReachable(t *testing.T) {
	reg := newTestRegistry(t)

	grantable := make(map[skill.Tag]bool)
	for _, d := range reg.All() {
		for _, tag := range d.Grants {
			grantable[tag] = true
		}
	}
	for _, d := range reg.All() {
		for _, tag := range d.Requires {
			if !grantable[tag] {
				t.Errorf("%s requires tag %q that no skill grants", d.ID, tag)
			}
		}
	}
}

// TestAllSkills_StatsUseClassifiedFields: a contribution to a field
// outside the schema would be silently dropped by the combiner.
func TestAllSkills_StatsUseClassifiedFields(t *testing.T) {
	reg := newTestRegistry(t)

	for _, d := range reg.All() {
		b := reg.Get(d.ID)
		for lvl := int32(1); lvl <= d.MaxLevel; lvl++ {
			for f := range b.StatsAt(lvl) {
				if f >= skill.FieldCount {
					t.Errorf("%s lv.%d contributes to out-of-schema field %d", d.ID, lvl, f)
				}
			}
		}
	}
}

func TestCombine_ContentScenario(t *testing.T) {
	reg := newTestRegistry(t)
	c := skill.NewCombiner(reg)

	b := c.Combine([]skill.ActiveSkill{
		{SkillID: "arcbolt", Level: 2},     // fireRate 0.9
		{SkillID: "focus_charm", Level: 1}, // fireRate 0.92
		{SkillID: "lash", Level: 3},        // damage +8, knockback x1.1, cooldown 1200
		{SkillID: "warding_aura", Level: 2}, // radius 55, damage +2
		{SkillID: "vitality", Level: 5},    // +100 hp
	})

	if got, want := b.Get(skill.FieldFireRateMultiplier), 0.9*0.92; math.Abs(got-want) > 1e-9 {
		t.Errorf("fireRateMultiplier = %v, want %v", got, want)
	}
	// arcbolt lv2 damage 6 + lash lv3 damage 8 + aura lv2 tick 2
	if got := b.Get(skill.FieldDamageBonus); math.Abs(got-16) > 1e-9 {
		t.Errorf("damageBonus = %v, want 16", got)
	}
	if got := b.Get(skill.FieldAuraRadius); got != 55 {
		t.Errorf("auraRadius = %v, want 55", got)
	}
	if got := b.Get(skill.FieldFireCooldown); got != 1200 {
		t.Errorf("fireCooldown = %v, want 1200", got)
	}
	if got := b.Get(skill.FieldMaxHealthBonus); got != 100 {
		t.Errorf("maxHealthBonus = %v, want 100", got)
	}
	// Untouched multiplicative fields stay at identity.
	if got := b.Get(skill.FieldSpawnRateMultiplier); got != 1 {
		t.Errorf("spawnRateMultiplier = %v, want identity 1", got)
	}
}

func TestOptionalHooks_Presence(t *testing.T) {
	reg := newTestRegistry(t)

	if _, ok := reg.Get("storm_ring").(skill.Activatable); !ok {
		t.Error("storm_ring must implement Activatable")
	}
	if _, ok := reg.Get("storm_ring").(skill.Updatable); !ok {
		t.Error("storm_ring must implement Updatable")
	}
	if _, ok := reg.Get("split_shot").(skill.ProjectileModifier); !ok {
		t.Error("split_shot must implement ProjectileModifier")
	}
	if _, ok := reg.Get("warding_aura").(skill.Renderer); !ok {
		t.Error("warding_aura must implement Renderer")
	}
	// Pure stat passives carry no hooks.
	if _, ok := reg.Get("vitality").(skill.Updatable); ok {
		t.Error("vitality must not implement Updatable")
	}
}

func TestProjectileHooks_Modify(t *testing.T) {
	reg := newTestRegistry(t)

	proj := skill.Projectile{Damage: 10, Speed: 100, Pierce: 0}
	reg.Get("split_shot").(skill.ProjectileModifier).ModifyProjectile(&proj, 3)
	if proj.Pierce != 1 {
		t.Errorf("split_shot lv3 pierce = %d, want 1", proj.Pierce)
	}
	reg.Get("tailwind").(skill.ProjectileModifier).ModifyProjectile(&proj, 2)
	if math.Abs(proj.Speed-120) > 1e-9 {
		t.Errorf("tailwind lv2 speed = %v, want 120", proj.Speed)
	}
}

func TestStormRing_UpdateOnlyWhenArmed(t *testing.T) {
	ring := NewStormRing()

	// Not armed: Update is a no-op that keeps the skill alive.
	if !ring.Update(1, 1, 500) {
		t.Error("unarmed Update must return true")
	}

	ring.OnActivate(1, 1)
	if !ring.Update(1, 1, 2500) { // past the lv1 period
		t.Error("armed Update must return true")
	}
	ring.OnDeactivate(1)
}

func TestDescribeNextLevel_Content(t *testing.T) {
	reg := newTestRegistry(t)

	if got := reg.DescribeNextLevel("vitality", 5); got != skill.MaxLevelMarker {
		t.Errorf("vitality at cap: %q", got)
	}
	if got := reg.DescribeNextLevel("vitality", 1); got != "+40 max health" {
		t.Errorf("vitality next from 1: %q", got)
	}
	if got := reg.DescribeLevel("nope", 1); got != "" {
		t.Errorf("unknown skill description: %q", got)
	}
}
