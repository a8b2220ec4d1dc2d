// Package skills holds the built-in skill content: one file per skill,
// each with its per-level effect table and Behavior implementation.
package skills

import (
	"log/slog"

	"github.com/melnikovdev/hordego/internal/game/skill"
)

// RegisterAll регистрирует весь встроенный набор скиллов в реестре.
// Вызывается один раз при старте сервера, до первого Combine.
func RegisterAll(reg *skill.Registry) {
	reg.Register(NewLash())
	reg.Register(NewArcbolt())
	reg.Register(NewWardingAura())
	reg.Register(NewStormRing())
	reg.Register(NewSplitShot())
	reg.Register(NewFocusCharm())
	reg.Register(NewVitality())
	reg.Register(NewIronskin())
	reg.Register(NewSwiftBoots())
	reg.Register(NewLoadstone())
	reg.Register(NewGrimFocus())
	reg.Register(NewTailwind())
	reg.Register(NewGraveSigil())

	slog.Info("registered built-in skills", "count", reg.Len())
}
