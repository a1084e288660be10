package roadmap

// CompletionPolicy decides whose completed flag wins when a topic
// exists in both the old roadmap and an edited one. The validator never
// interprets edit intent; the caller picks the policy.
type CompletionPolicy int

const (
	// PreserveExisting carries completion over from the old state. An
	// AI edit can restructure the roadmap but never flip what the user
	// has already done. This is the default.
	PreserveExisting CompletionPolicy = iota

	// TrustIncoming takes the edited payload's completed flags as-is.
	TrustIncoming
)

// Reconcile merges an edited topic set with the previous roadmap.
// Topics present in old but absent from edited are hard deletions:
// any surviving prerequisite referencing a deleted id is stripped so
// the result never dangles, regardless of whether the generator obeyed
// its prompt. Completion flags follow the policy; completedAt carries
// over with the flag it belongs to.
func Reconcile(old, edited []Topic, policy CompletionPolicy) []Topic {
	surviving := make(map[string]bool, len(edited))
	for _, t := range edited {
		surviving[t.ID] = true
	}
	oldByID := ByID(old)

	out := CloneTopics(edited)
	for i := range out {
		kept := out[i].Prerequisites[:0]
		for _, id := range out[i].Prerequisites {
			if surviving[id] {
				kept = append(kept, id)
			}
		}
		if len(kept) == 0 {
			out[i].Prerequisites = nil
		} else {
			out[i].Prerequisites = kept
		}

		prev, existed := oldByID[out[i].ID]
		if policy == PreserveExisting && existed {
			out[i].Completed = prev.Completed
			out[i].CompletedAt = prev.CompletedAt
		}
	}
	return out
}
