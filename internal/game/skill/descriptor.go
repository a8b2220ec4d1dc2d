package skill

// Tag — opaque capability token granted or required by a skill.
// Used only for prerequisite gating; the engine never interprets the value.
type Tag string

// Well-known tags granted by the built-in content set.
const (
	TagMelee      Tag = "melee"
	TagProjectile Tag = "projectile"
	TagAura       Tag = "aura"
	TagStorm      Tag = "storm"
	TagDefense    Tag = "defense"
)

// Category groups skills for selection UIs and filtering.
type Category int8

const (
	CategoryWeapon  Category = iota // Deals damage on its own schedule
	CategoryPassive                 // Pure stat modifier, no own schedule
)

// ParseCategory converts string to Category.
func ParseCategory(s string) Category {
	switch s {
	case "WEAPON":
		return CategoryWeapon
	case "PASSIVE":
		return CategoryPassive
	default:
		return CategoryPassive
	}
}

// String returns the canonical upper-case name of the category.
func (c Category) String() string {
	switch c {
	case CategoryWeapon:
		return "WEAPON"
	default:
		return "PASSIVE"
	}
}

// ActivationKind describes how a skill acts once held.
type ActivationKind int8

const (
	ActivationAuto      ActivationKind = iota // Fires on its own cycle (weapons)
	ActivationPassive                         // Always-on stat contribution
	ActivationTriggered                       // Needs OnActivate before it runs
)

// Descriptor — immutable static metadata for one skill.
// One instance per skill, shared across all sessions — do not modify
// after registration.
type Descriptor struct {
	ID          string // globally unique, stable
	Name        string
	Description string
	Icon        string // client icon key
	Color       uint32 // 0xRRGGBB accent color for UI
	MaxLevel    int32  // >= 1; equals the length of the skill's level table
	Category    Category
	Activation  ActivationKind
	Grants      []Tag // tags this skill contributes to the granted set
	Requires    []Tag // all of these must be granted before the skill unlocks
}

// MaxLevelMarker is returned by DescribeNextLevel when the skill is capped.
const MaxLevelMarker = "MAX"

// ClampLevel clamps level into [1, maxLevel].
// Levels below 1 read as level 1, levels above the cap read as the cap.
func ClampLevel(level, maxLevel int32) int32 {
	if level < 1 {
		return 1
	}
	if level > maxLevel {
		return maxLevel
	}
	return level
}

// LevelIndex returns the zero-based table index for a clamped level.
func LevelIndex(level, maxLevel int32) int {
	return int(ClampLevel(level, maxLevel) - 1)
}
