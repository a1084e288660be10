package userstate

import (
	"math"

	"github.com/careercompass/compass/internal/roadmap"
)

// Clamp constrains a skill value to the closed range [0,100]. Clamping
// is idempotent.
func Clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ApplyDelta returns a copy of skills with delta added to the named
// category, clamped. All other fields are unchanged. This is the single
// additive path into the skill vector; the three producers of deltas
// (topic completion, project completion, manual adjustment) all route
// through it.
func ApplyDelta(skills Skills, c roadmap.Category, delta int) Skills {
	skills.set(c, skills.Get(c)+delta)
	return skills
}

// AverageWith pulls the named skill toward a demonstrated test score:
// skill' = round((skill + score) / 2). Averaging rather than adding is
// deliberate — repeated passes of the same test must not stack.
func AverageWith(skills Skills, c roadmap.Category, score int) Skills {
	avg := int(math.Round(float64(skills.Get(c)+score) / 2))
	skills.set(c, avg)
	return skills
}
