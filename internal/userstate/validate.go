package userstate

import "github.com/careercompass/compass/internal/roadmap"

// Validate checks an aggregate at the load boundary. The engine's
// clamping makes out-of-range skills unreachable through normal
// operation, but persisted blobs come from outside the process and get
// the defensive check anyway, along with roadmap integrity.
func Validate(state UserState) error {
	for _, c := range roadmap.Categories() {
		v := state.Skills.Get(c)
		if v < 0 || v > 100 {
			return &ErrSkillOutOfRange{Category: c, Value: v}
		}
	}
	return roadmap.Validate(state.Roadmap.Topics)
}
