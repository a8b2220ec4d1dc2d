package skills

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/melnikovdev/hordego/internal/game/skill"
)

// StormRingEffect — per-level tunables for the Storm Ring weapon.
type StormRingEffect struct {
	StrikeDamage float64
	PeriodMs     float64
	Strikes      int32
}

func (StormRingEffect) Kind() string { return "storm_ring" }

// index = level-1
var stormRingLevels = []StormRingEffect{
	{StrikeDamage: 10, PeriodMs: 2400, Strikes: 1},
	{StrikeDamage: 12, PeriodMs: 2000, Strikes: 1},
	{StrikeDamage: 14, PeriodMs: 1700, Strikes: 2},
	{StrikeDamage: 18, PeriodMs: 1400, Strikes: 2},
}

// StormRing — triggered weapon calling lightning on random enemies.
// Must be armed (OnActivate) before its strike cycle runs; the session
// layer drives Update every tick while armed.
type StormRing struct {
	desc skill.Descriptor

	mu      sync.Mutex
	elapsed map[uint32]int32 // ownerID → ms since last strike cycle
}

func NewStormRing() *StormRing {
	return &StormRing{
		desc: skill.Descriptor{
			ID:          "storm_ring",
			Name:        "Storm Ring",
			Description: "Calls lightning down on random enemies.",
			Icon:        "icon_storm_ring",
			Color:       0x8E44AD,
			MaxLevel:    int32(len(stormRingLevels)),
			Category:    skill.CategoryWeapon,
			Activation:  skill.ActivationTriggered,
			Grants:      []skill.Tag{skill.TagStorm},
		},
		elapsed: make(map[uint32]int32),
	}
}

func (s *StormRing) SkillID() string              { return s.desc.ID }
func (s *StormRing) Category() skill.Category     { return s.desc.Category }
func (s *StormRing) Descriptor() skill.Descriptor { return s.desc }

func (s *StormRing) EffectAt(level int32) skill.Effect {
	return stormRingLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
}

func (s *StormRing) StatsAt(level int32) skill.Contribution {
	e := stormRingLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return skill.Contribution{
		skill.FieldSpellPeriod: e.PeriodMs,
	}
}

func (s *StormRing) DescribeLevel(level int32) string {
	e := stormRingLevels[skill.LevelIndex(level, s.desc.MaxLevel)]
	return fmt.Sprintf("%d strike(s) of %.0f damage every %.1fs",
		e.Strikes, e.StrikeDamage, e.PeriodMs/1000)
}

func (s *StormRing) DescribeNextLevel(current int32) string {
	if current >= s.desc.MaxLevel {
		return skill.MaxLevelMarker
	}
	return s.DescribeLevel(current + 1)
}

// OnActivate arms the strike cycle for one owner.
func (s *StormRing) OnActivate(ownerID uint32, level int32) {
	s.mu.Lock()
	s.elapsed[ownerID] = 0
	s.mu.Unlock()
	slog.Debug("storm ring armed", "owner", ownerID, "level", level)
}

// OnDeactivate drops the owner's cycle state.
func (s *StormRing) OnDeactivate(ownerID uint32) {
	s.mu.Lock()
	delete(s.elapsed, ownerID)
	s.mu.Unlock()
	slog.Debug("storm ring disarmed", "owner", ownerID)
}

// Update advances the strike cycle. Owners that were never armed are
// ignored. Always returns true — the ring never deactivates itself.
func (s *StormRing) Update(ownerID uint32, level int32, deltaMs int32) bool {
	e := stormRingLevels[skill.LevelIndex(level, s.desc.MaxLevel)]

	s.mu.Lock()
	defer s.mu.Unlock()
	acc, armed := s.elapsed[ownerID]
	if !armed {
		return true
	}
	acc += deltaMs
	if float64(acc) >= e.PeriodMs {
		acc = 0
		slog.Debug("storm ring strikes",
			"owner", ownerID, "strikes", e.Strikes, "damage", e.StrikeDamage)
	}
	s.elapsed[ownerID] = acc
	return true
}
