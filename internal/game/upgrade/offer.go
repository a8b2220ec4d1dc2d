// Package upgrade rolls level-up choices from the skills a player is
// currently allowed to take.
package upgrade

import (
	"math/rand"

	"github.com/melnikovdev/hordego/internal/game/skill"
)

// Choice — одна карточка в окне выбора апгрейда.
type Choice struct {
	SkillID   string
	NextLevel int32  // 1 для нового скилла, иначе текущий+1
	Title     string // display name
	Detail    string // tooltip text for the offered level
}

// Roll picks up to n distinct upgrade choices for the given active set:
// new skills whose tag prerequisites are met, plus level-ups of held
// skills that are not capped yet. rng is injected so offer rolls are
// reproducible in tests and replays.
func Roll(reg *skill.Registry, active []skill.ActiveSkill, n int, rng *rand.Rand) []Choice {
	held := make(map[string]int32, len(active))
	for _, as := range active {
		held[as.SkillID] = as.Level
	}

	candidates := make([]Choice, 0, reg.Len())
	for _, d := range reg.AvailableSkills(active) {
		level, ok := held[d.ID]
		next := int32(1)
		if ok {
			if level >= d.MaxLevel {
				continue // capped, nothing to offer
			}
			next = level + 1
		}
		candidates = append(candidates, Choice{
			SkillID:   d.ID,
			NextLevel: next,
			Title:     d.Name,
			Detail:    reg.DescribeLevel(d.ID, next),
		})
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}
