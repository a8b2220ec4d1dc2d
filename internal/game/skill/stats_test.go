package skill

import (
	"fmt"
	"math"
	"testing"
)

// fakeEffect is a minimal Effect record for tests.
type fakeEffect struct {
	Power float64
}

func (fakeEffect) Kind() string { return "fake" }

// fakeSkill is a simple Behavior whose contribution table is supplied
// per level. Levels are clamped the same way content skills clamp.
type fakeSkill struct {
	desc   Descriptor
	levels []Contribution
}

func newFakeSkill(id string, levels []Contribution, grants, requires []Tag) *fakeSkill {
	return &fakeSkill{
		desc: Descriptor{
			ID:       id,
			Name:     id,
			MaxLevel: int32(len(levels)),
			Category: CategoryPassive,
			Grants:   grants,
			Requires: requires,
		},
		levels: levels,
	}
}

func (s *fakeSkill) SkillID() string        { return s.desc.ID }
func (s *fakeSkill) Category() Category     { return s.desc.Category }
func (s *fakeSkill) Descriptor() Descriptor { return s.desc }

func (s *fakeSkill) EffectAt(level int32) Effect {
	return fakeEffect{Power: float64(ClampLevel(level, s.desc.MaxLevel))}
}

func (s *fakeSkill) StatsAt(level int32) Contribution {
	return s.levels[LevelIndex(level, s.desc.MaxLevel)]
}

func (s *fakeSkill) DescribeLevel(level int32) string {
	return fmt.Sprintf("%s lv.%d", s.desc.ID, ClampLevel(level, s.desc.MaxLevel))
}

func (s *fakeSkill) DescribeNextLevel(current int32) string {
	if current >= s.desc.MaxLevel {
		return MaxLevelMarker
	}
	return s.DescribeLevel(current + 1)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCombine_EmptyIsIdentity(t *testing.T) {
	c := NewCombiner(NewRegistry())
	b := c.Combine(nil)

	for f := Field(0); f < FieldCount; f++ {
		want := 0.0
		if LawOf(f) == LawMultiplicative {
			want = 1.0
		}
		if !almostEqual(b.Get(f), want) {
			t.Errorf("identity bundle: field %s = %v, want %v", f, b.Get(f), want)
		}
	}
}

func TestCombine_AdditiveLaw(t *testing.T) {
	reg := NewRegistry()
	reg.Register(newFakeSkill("a", []Contribution{{FieldDamageBonus: 3}}, nil, nil))
	reg.Register(newFakeSkill("b", []Contribution{{FieldDamageBonus: 5}}, nil, nil))
	c := NewCombiner(reg)

	b := c.Combine([]ActiveSkill{{"a", 1}, {"b", 1}})
	if !almostEqual(b.Get(FieldDamageBonus), 8) {
		t.Errorf("additive: got %v, want 8", b.Get(FieldDamageBonus))
	}

	// Order must not matter
	b2 := c.Combine([]ActiveSkill{{"b", 1}, {"a", 1}})
	if b != b2 {
		t.Errorf("additive fold is order-dependent: %v vs %v", b, b2)
	}
}

func TestCombine_MultiplicativeLaw(t *testing.T) {
	reg := NewRegistry()
	reg.Register(newFakeSkill("a", []Contribution{{FieldFireRateMultiplier: 1.2}}, nil, nil))
	reg.Register(newFakeSkill("b", []Contribution{{FieldFireRateMultiplier: 0.8}}, nil, nil))
	c := NewCombiner(reg)

	b := c.Combine([]ActiveSkill{{"a", 1}, {"b", 1}})
	if !almostEqual(b.Get(FieldFireRateMultiplier), 0.96) {
		t.Errorf("multiplicative: got %v, want 0.96", b.Get(FieldFireRateMultiplier))
	}
}

func TestCombine_MaxLaw(t *testing.T) {
	reg := NewRegistry()
	reg.Register(newFakeSkill("a", []Contribution{{FieldAuraRadius: 40}}, nil, nil))
	reg.Register(newFakeSkill("b", []Contribution{{FieldAuraRadius: 70}}, nil, nil))
	c := NewCombiner(reg)

	b := c.Combine([]ActiveSkill{{"a", 1}, {"b", 1}})
	if !almostEqual(b.Get(FieldAuraRadius), 70) {
		t.Errorf("max: got %v, want 70 (not 110)", b.Get(FieldAuraRadius))
	}
}

func TestCombine_MinLaw(t *testing.T) {
	reg := NewRegistry()
	reg.Register(newFakeSkill("five", []Contribution{{FieldFireCooldown: 5}}, nil, nil))
	reg.Register(newFakeSkill("three", []Contribution{{FieldFireCooldown: 3}}, nil, nil))
	reg.Register(newFakeSkill("silent", []Contribution{{}}, nil, nil))
	c := NewCombiner(reg)

	// Only one contributor: its value is adopted as-is.
	b := c.Combine([]ActiveSkill{{"five", 1}, {"silent", 1}})
	if !almostEqual(b.Get(FieldFireCooldown), 5) {
		t.Errorf("min single: got %v, want 5", b.Get(FieldFireCooldown))
	}

	// Faster source wins.
	b = c.Combine([]ActiveSkill{{"five", 1}, {"three", 1}})
	if !almostEqual(b.Get(FieldFireCooldown), 3) {
		t.Errorf("min pair: got %v, want 3", b.Get(FieldFireCooldown))
	}
	b = c.Combine([]ActiveSkill{{"three", 1}, {"five", 1}})
	if !almostEqual(b.Get(FieldFireCooldown), 3) {
		t.Errorf("min pair reversed: got %v, want 3", b.Get(FieldFireCooldown))
	}

	// Nobody contributes: stays at the unset sentinel.
	b = c.Combine([]ActiveSkill{{"silent", 1}})
	if !almostEqual(b.Get(FieldFireCooldown), 0) {
		t.Errorf("min untouched: got %v, want 0", b.Get(FieldFireCooldown))
	}
}

func TestCombine_ZeroContributionNeverOverridesMin(t *testing.T) {
	reg := NewRegistry()
	reg.Register(newFakeSkill("set", []Contribution{{FieldSpellPeriod: 2000}}, nil, nil))
	reg.Register(newFakeSkill("zero", []Contribution{{FieldSpellPeriod: 0}}, nil, nil))
	c := NewCombiner(reg)

	b := c.Combine([]ActiveSkill{{"set", 1}, {"zero", 1}})
	if !almostEqual(b.Get(FieldSpellPeriod), 2000) {
		t.Errorf("zero overrode set min value: got %v", b.Get(FieldSpellPeriod))
	}
	b = c.Combine([]ActiveSkill{{"zero", 1}, {"set", 1}})
	if !almostEqual(b.Get(FieldSpellPeriod), 2000) {
		t.Errorf("zero-first order broke min fold: got %v", b.Get(FieldSpellPeriod))
	}
}

func TestCombine_UnknownSkillSkipped(t *testing.T) {
	c := NewCombiner(NewRegistry())
	b := c.Combine([]ActiveSkill{{"does-not-exist", 1}})

	if b != IdentityBundle() {
		t.Errorf("unknown skill changed the bundle: %v", b)
	}
}

// TestCombine_FireRateScenario: projectile weapon with per-level
// fireRateMultiplier [1.0 0.9 0.8] at level 2, plus an unrelated skill
// contributing 0.5 — combined rate must be 0.45.
func TestCombine_FireRateScenario(t *testing.T) {
	reg := NewRegistry()
	reg.Register(newFakeSkill("bow", []Contribution{
		{FieldFireRateMultiplier: 1.0},
		{FieldFireRateMultiplier: 0.9},
		{FieldFireRateMultiplier: 0.8},
	}, []Tag{TagProjectile}, nil))
	reg.Register(newFakeSkill("charm", []Contribution{
		{FieldFireRateMultiplier: 0.5},
	}, nil, nil))
	c := NewCombiner(reg)

	b := c.Combine([]ActiveSkill{{"bow", 2}, {"charm", 1}})
	if !almostEqual(b.Get(FieldFireRateMultiplier), 0.45) {
		t.Errorf("scenario: got %v, want 0.45", b.Get(FieldFireRateMultiplier))
	}
}

func TestCombine_AbsentFieldUntouched(t *testing.T) {
	reg := NewRegistry()
	reg.Register(newFakeSkill("dmg", []Contribution{{FieldDamageBonus: 7}}, nil, nil))
	c := NewCombiner(reg)

	b := c.Combine([]ActiveSkill{{"dmg", 1}})
	if !almostEqual(b.Get(FieldFireRateMultiplier), 1.0) {
		t.Errorf("multiplicative field disturbed by absent contribution: %v",
			b.Get(FieldFireRateMultiplier))
	}
	if !almostEqual(b.Get(FieldDamageBonus), 7) {
		t.Errorf("damageBonus: got %v, want 7", b.Get(FieldDamageBonus))
	}
}

// TestFieldLaws_Complete: every schema field must be classified
// explicitly. A field added to the enum without a law entry would fold
// additively by accident — fail here instead.
func TestFieldLaws_Complete(t *testing.T) {
	if len(fieldLaws) != int(FieldCount) {
		t.Fatalf("fieldLaws has %d entries, schema has %d fields", len(fieldLaws), FieldCount)
	}
	for f := Field(0); f < FieldCount; f++ {
		if _, ok := fieldLaws[f]; !ok {
			t.Errorf("field %s has no combination law", f)
		}
		if fieldNames[f] == "" {
			t.Errorf("field %d has no name", f)
		}
	}
}

func TestClampLevel(t *testing.T) {
	cases := []struct {
		level, maxLevel, want int32
	}{
		{0, 5, 1},
		{-3, 5, 1},
		{1, 5, 1},
		{5, 5, 5},
		{6, 5, 5},
		{100, 5, 5},
	}
	for _, tc := range cases {
		if got := ClampLevel(tc.level, tc.maxLevel); got != tc.want {
			t.Errorf("ClampLevel(%d, %d) = %d, want %d", tc.level, tc.maxLevel, got, tc.want)
		}
	}
}
