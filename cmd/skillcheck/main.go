// skillcheck validates the built-in skill content and dumps per-level
// stat contributions. Run it after editing level tables; a non-zero
// exit means the content would misbehave at runtime.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/melnikovdev/hordego/internal/game/skill"
	"github.com/melnikovdev/hordego/internal/game/skill/skills"
	"github.com/melnikovdev/hordego/internal/game/upgrade"
)

func main() {
	reg := skill.NewRegistry()
	skills.RegisterAll(reg)

	problems := 0

	grantable := make(map[skill.Tag]bool)
	for _, d := range reg.All() {
		for _, tag := range d.Grants {
			grantable[tag] = true
		}
	}

	fmt.Println("=== Skill content ===")
	for _, d := range reg.All() {
		b := reg.Get(d.ID)
		fmt.Printf("%-14s %-8s maxLevel=%d grants=%v requires=%v\n",
			d.ID, d.Category, d.MaxLevel, d.Grants, d.Requires)

		if d.MaxLevel < 1 {
			fmt.Printf("  PROBLEM: maxLevel %d\n", d.MaxLevel)
			problems++
		}
		for _, tag := range d.Requires {
			if !grantable[tag] {
				fmt.Printf("  PROBLEM: required tag %q is granted by no skill\n", tag)
				problems++
			}
		}

		// Clamping must hold at both ends of the level table.
		if b.EffectAt(0) != b.EffectAt(1) || b.EffectAt(d.MaxLevel+10) != b.EffectAt(d.MaxLevel) {
			fmt.Printf("  PROBLEM: level clamping broken\n")
			problems++
		}

		for lvl := int32(1); lvl <= d.MaxLevel; lvl++ {
			contrib := b.StatsAt(lvl)
			fmt.Printf("  lv.%d  %s\n", lvl, b.DescribeLevel(lvl))
			for f, v := range contrib {
				if f >= skill.FieldCount {
					fmt.Printf("  PROBLEM: lv.%d contributes to out-of-schema field %d\n", lvl, f)
					problems++
					continue
				}
				fmt.Printf("        %-26s %v (law %d)\n", f, v, skill.LawOf(f))
			}
		}
	}

	// A fresh player must always have something to pick.
	fresh := upgrade.Roll(reg, nil, 3, rand.New(rand.NewSource(1)))
	fmt.Println("\n=== Sample fresh-player offer ===")
	for _, c := range fresh {
		fmt.Printf("  %-14s lv.%d  %s\n", c.SkillID, c.NextLevel, c.Detail)
	}
	if len(fresh) == 0 {
		fmt.Println("  PROBLEM: empty offer for a fresh player")
		problems++
	}

	fmt.Printf("\nskills: %d, problems: %d\n", reg.Len(), problems)
	if problems > 0 {
		os.Exit(1)
	}
}
