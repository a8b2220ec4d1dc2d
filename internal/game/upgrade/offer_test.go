package upgrade

import (
	"math/rand"
	"testing"

	"github.com/melnikovdev/hordego/internal/game/skill"
	"github.com/melnikovdev/hordego/internal/game/skill/skills"
)

func newTestRegistry(t *testing.T) *skill.Registry {
	t.Helper()
	reg := skill.NewRegistry()
	skills.RegisterAll(reg)
	t.Cleanup(reg.Clear)
	return reg
}

func choiceByID(choices []Choice, id string) (Choice, bool) {
	for _, c := range choices {
		if c.SkillID == id {
			return c, true
		}
	}
	return Choice{}, false
}

func TestRoll_RespectsCount(t *testing.T) {
	reg := newTestRegistry(t)
	rng := rand.New(rand.NewSource(1))

	choices := Roll(reg, nil, 3, rng)
	if len(choices) != 3 {
		t.Fatalf("expected 3 choices, got %d", len(choices))
	}
	seen := make(map[string]bool)
	for _, c := range choices {
		if seen[c.SkillID] {
			t.Errorf("duplicate choice %q", c.SkillID)
		}
		seen[c.SkillID] = true
		if c.NextLevel != 1 {
			t.Errorf("new skill %q offered at level %d", c.SkillID, c.NextLevel)
		}
	}
}

func TestRoll_GatedSkillsExcluded(t *testing.T) {
	reg := newTestRegistry(t)
	rng := rand.New(rand.NewSource(1))

	// No projectile source active: split_shot must never show up.
	choices := Roll(reg, nil, reg.Len(), rng)
	if _, ok := choiceByID(choices, "split_shot"); ok {
		t.Error("split_shot offered without its prerequisite")
	}

	// With arcbolt held, split_shot becomes a candidate.
	active := []skill.ActiveSkill{{SkillID: "arcbolt", Level: 1}}
	choices = Roll(reg, active, reg.Len(), rng)
	if _, ok := choiceByID(choices, "split_shot"); !ok {
		t.Error("split_shot not offered although its prerequisite is met")
	}
}

func TestRoll_HeldSkillOfferedAsLevelUp(t *testing.T) {
	reg := newTestRegistry(t)
	rng := rand.New(rand.NewSource(2))

	active := []skill.ActiveSkill{{SkillID: "vitality", Level: 2}}
	choices := Roll(reg, active, reg.Len(), rng)

	c, ok := choiceByID(choices, "vitality")
	if !ok {
		t.Fatal("held skill not offered as level-up")
	}
	if c.NextLevel != 3 {
		t.Errorf("vitality offered at level %d, want 3", c.NextLevel)
	}
	if c.Detail != "+60 max health" {
		t.Errorf("vitality detail = %q", c.Detail)
	}
}

func TestRoll_CappedSkillExcluded(t *testing.T) {
	reg := newTestRegistry(t)
	rng := rand.New(rand.NewSource(3))

	active := []skill.ActiveSkill{{SkillID: "arcbolt", Level: 3}} // cap
	choices := Roll(reg, active, reg.Len(), rng)
	if _, ok := choiceByID(choices, "arcbolt"); ok {
		t.Error("capped skill still offered")
	}
}

func TestRoll_DeterministicUnderSeed(t *testing.T) {
	reg := newTestRegistry(t)

	a := Roll(reg, nil, 3, rand.New(rand.NewSource(42)))
	b := Roll(reg, nil, 3, rand.New(rand.NewSource(42)))
	if len(a) != len(b) {
		t.Fatalf("different lengths: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].SkillID != b[i].SkillID {
			t.Errorf("roll %d differs: %q vs %q", i, a[i].SkillID, b[i].SkillID)
		}
	}
}
