// Package session tracks per-player runtime skill state and keeps the
// aggregated stat bundle current as the skill set changes.
package session

import (
	"log/slog"
	"sync"

	"github.com/melnikovdev/hordego/internal/game/skill"
)

// Session владеет активным набором скиллов одного игрока и его
// актуальным stat bundle. Пересчёт выполняется при каждом изменении
// набора — bundle всегда согласован с active.
//
// Thread-safe: all methods are protected by sync.RWMutex.
type Session struct {
	mu       sync.RWMutex
	playerID int64
	ownerID  uint32 // runtime object id passed to skill hooks
	reg      *skill.Registry
	combiner *skill.Combiner
	active   []skill.ActiveSkill
	bundle   skill.Bundle
	dirty    bool // has unsaved loadout changes
}

// New creates an empty session for one player.
func New(playerID int64, ownerID uint32, reg *skill.Registry) *Session {
	return &Session{
		playerID: playerID,
		ownerID:  ownerID,
		reg:      reg,
		combiner: skill.NewCombiner(reg),
		bundle:   skill.IdentityBundle(),
	}
}

// PlayerID returns the owning player's persistent id.
func (s *Session) PlayerID() int64 {
	return s.playerID
}

// Stats returns the current aggregated bundle.
func (s *Session) Stats() skill.Bundle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bundle
}

// ActiveSkills returns a copy of the active skill list.
func (s *Session) ActiveSkills() []skill.ActiveSkill {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]skill.ActiveSkill, len(s.active))
	copy(out, s.active)
	return out
}

// Level returns the held level of a skill, or 0 if not held.
func (s *Session) Level(skillID string) int32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, as := range s.active {
		if as.SkillID == skillID {
			return as.Level
		}
	}
	return 0
}

// AddSkill grants a skill at level 1 or raises a held skill by one
// level, clamped at the skill's cap. Triggered skills are armed on
// first acquisition. Recomputes the bundle.
func (s *Session) AddSkill(skillID string) {
	b := s.reg.Get(skillID)
	if b == nil {
		slog.Warn("add skill: unknown id", "skill_id", skillID, "player", s.playerID)
		return
	}
	maxLevel := b.Descriptor().MaxLevel

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, as := range s.active {
		if as.SkillID == skillID {
			s.active[i].Level = skill.ClampLevel(as.Level+1, maxLevel)
			s.recompute()
			return
		}
	}

	s.active = append(s.active, skill.ActiveSkill{SkillID: skillID, Level: 1})
	if act, ok := b.(skill.Activatable); ok {
		act.OnActivate(s.ownerID, 1)
	}
	s.recompute()
}

// RemoveSkill drops a skill entirely, firing OnDeactivate if the skill
// is triggered. No-op when the skill is not held.
func (s *Session) RemoveSkill(skillID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, as := range s.active {
		if as.SkillID != skillID {
			continue
		}
		s.active = append(s.active[:i], s.active[i+1:]...)
		if act, ok := s.reg.Get(skillID).(skill.Activatable); ok {
			act.OnDeactivate(s.ownerID)
		}
		s.recompute()
		return
	}
}

// Restore replaces the whole loadout, e.g. after loading from the
// database, and replays it through one combination pass.
func (s *Session) Restore(loadout []skill.ActiveSkill) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = make([]skill.ActiveSkill, len(loadout))
	copy(s.active, loadout)
	for _, as := range s.active {
		if act, ok := s.reg.Get(as.SkillID).(skill.Activatable); ok {
			act.OnActivate(s.ownerID, as.Level)
		}
	}
	s.recompute()
	s.dirty = false
}

// Tick drives Updatable hooks of every held skill.
func (s *Session) Tick(deltaMs int32) {
	s.mu.RLock()
	active := make([]skill.ActiveSkill, len(s.active))
	copy(active, s.active)
	s.mu.RUnlock()

	for _, as := range active {
		if upd, ok := s.reg.Get(as.SkillID).(skill.Updatable); ok {
			if !upd.Update(s.ownerID, as.Level, deltaMs) {
				s.RemoveSkill(as.SkillID)
			}
		}
	}
}

// Dirty reports whether the loadout changed since the last MarkSaved.
func (s *Session) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

// MarkSaved clears the dirty flag after a successful persist.
func (s *Session) MarkSaved() {
	s.mu.Lock()
	s.dirty = false
	s.mu.Unlock()
}

// recompute rebuilds the bundle from the active set.
// Must be called with mu held.
func (s *Session) recompute() {
	s.bundle = s.combiner.Combine(s.active)
	s.dirty = true
}
