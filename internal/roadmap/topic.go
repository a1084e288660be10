package roadmap

import "time"

// Category names the skill a topic feeds. Categories map 1:1 to the
// fields of userstate.Skills.
type Category string

const (
	CategoryDSA          Category = "dsa"
	CategoryProjects     Category = "projects"
	CategoryFundamentals Category = "fundamentals"
	CategorySoftSkills   Category = "softSkills"
)

// Categories returns all categories in canonical order. The order is
// load-bearing: metric tie-breaking and display both follow it.
func Categories() []Category {
	return []Category{CategoryDSA, CategoryProjects, CategoryFundamentals, CategorySoftSkills}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryDSA, CategoryProjects, CategoryFundamentals, CategorySoftSkills:
		return true
	}
	return false
}

// DisplayName returns a human-readable name for a category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryDSA:
		return "DSA"
	case CategoryProjects:
		return "Projects"
	case CategoryFundamentals:
		return "CS Fundamentals"
	case CategorySoftSkills:
		return "Soft Skills"
	default:
		return string(c)
	}
}

// Difficulty determines the skill increase awarded on topic completion.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// SkillDelta returns the skill points awarded for completing a topic
// of this difficulty. Unknown difficulties award nothing.
func (d Difficulty) SkillDelta() int {
	switch d {
	case DifficultyEasy:
		return 3
	case DifficultyMedium:
		return 5
	case DifficultyHard:
		return 8
	}
	return 0
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	return d.SkillDelta() != 0
}

// Position is a display coordinate carried through AI payloads. It has
// no semantic weight in the engine.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Topic is a single unit of the learning roadmap, gated by its
// prerequisites.
type Topic struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      Category   `json:"category"`
	Difficulty    Difficulty `json:"difficulty"`
	Completed     bool       `json:"completed"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	Position      Position   `json:"position"`
	Prerequisites []string   `json:"prerequisites,omitempty"`
}

// Source records roadmap provenance. It affects display and audit only,
// never behavior.
type Source string

const (
	SourceDefault Source = "default"
	SourceAI      Source = "ai"
	SourceSystem  Source = "system"
)

// State is the user's roadmap: an ordered topic sequence plus
// provenance. Order is display order; only prerequisite satisfaction is
// semantically required.
type State struct {
	Topics      []Topic   `json:"topics"`
	Source      Source    `json:"source"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// CloneTopics returns a deep copy of topics, including prerequisite
// slices, so engine operations never alias caller state.
func CloneTopics(topics []Topic) []Topic {
	out := make([]Topic, len(topics))
	for i, t := range topics {
		out[i] = t
		if t.Prerequisites != nil {
			out[i].Prerequisites = append([]string(nil), t.Prerequisites...)
		}
		if t.CompletedAt != nil {
			at := *t.CompletedAt
			out[i].CompletedAt = &at
		}
	}
	return out
}
