package skill

import "log/slog"

// Registry — lookup store mapping skill id → Behavior.
// Built once at process start (RegisterAll from the content package),
// read-only afterwards. No locking: registration must finish before
// the first reader starts, after that concurrent reads are safe.
type Registry struct {
	behaviors map[string]Behavior
	order     []string // registration order, for stable iteration
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{behaviors: make(map[string]Behavior, 32)}
}

// Register stores a behavior under its skill id. Re-registering an id
// replaces the previous behavior (last writer wins) — useful for
// content hot-reload, but worth a warning since in normal startup it
// means two skills share an id.
func (r *Registry) Register(b Behavior) {
	id := b.SkillID()
	if _, exists := r.behaviors[id]; exists {
		slog.Warn("skill re-registered, replacing previous behavior", "skill_id", id)
	} else {
		r.order = append(r.order, id)
	}
	r.behaviors[id] = b
}

// Get returns the behavior for id, or nil if not registered.
func (r *Registry) Get(id string) Behavior {
	return r.behaviors[id]
}

// Descriptor returns the descriptor for id.
// Second result is false if the id is not registered.
func (r *Registry) Descriptor(id string) (Descriptor, bool) {
	b, ok := r.behaviors[id]
	if !ok {
		return Descriptor{}, false
	}
	return b.Descriptor(), true
}

// All returns every registered descriptor in registration order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.behaviors[id].Descriptor())
	}
	return out
}

// ByCategory returns descriptors of the given category in registration order.
func (r *Registry) ByCategory(c Category) []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		if d := r.behaviors[id].Descriptor(); d.Category == c {
			out = append(out, d)
		}
	}
	return out
}

// Len returns the number of registered skills.
func (r *Registry) Len() int {
	return len(r.behaviors)
}

// Clear removes every registration. Test teardown only.
func (r *Registry) Clear() {
	r.behaviors = make(map[string]Behavior, 32)
	r.order = r.order[:0]
}

// GrantedTags returns the union of Grants over all active skills.
// Unknown ids contribute nothing.
func (r *Registry) GrantedTags(active []ActiveSkill) map[Tag]struct{} {
	granted := make(map[Tag]struct{}, 8)
	for _, as := range active {
		b, ok := r.behaviors[as.SkillID]
		if !ok {
			continue
		}
		for _, t := range b.Descriptor().Grants {
			granted[t] = struct{}{}
		}
	}
	return granted
}

// IsUnlockable reports whether every required tag of the skill is in
// granted. A skill with no requirements is always unlockable; an
// unregistered id never is.
func (r *Registry) IsUnlockable(id string, granted map[Tag]struct{}) bool {
	b, ok := r.behaviors[id]
	if !ok {
		return false
	}
	for _, t := range b.Descriptor().Requires {
		if _, ok := granted[t]; !ok {
			return false
		}
	}
	return true
}

// AvailableSkills returns descriptors of every skill whose requirements
// are satisfied by the tags granted by the active set. Recomputed from
// scratch on every call — O(skills × tags), no caching.
func (r *Registry) AvailableSkills(active []ActiveSkill) []Descriptor {
	granted := r.GrantedTags(active)
	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		if r.IsUnlockable(id, granted) {
			out = append(out, r.behaviors[id].Descriptor())
		}
	}
	return out
}

// DescribeLevel returns tooltip text for a skill level, or "" if the
// id is not registered.
func (r *Registry) DescribeLevel(id string, level int32) string {
	b, ok := r.behaviors[id]
	if !ok {
		return ""
	}
	return b.DescribeLevel(level)
}

// DescribeNextLevel returns the next-level tooltip text for a skill,
// or "" if the id is not registered.
func (r *Registry) DescribeNextLevel(id string, current int32) string {
	b, ok := r.behaviors[id]
	if !ok {
		return ""
	}
	return b.DescribeNextLevel(current)
}
