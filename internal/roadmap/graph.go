package roadmap

import "sort"

// IsUnlocked reports whether every prerequisite of topic maps to a
// completed topic in all. A topic with no prerequisites is always
// unlocked. Prerequisites that resolve to no topic count as unmet;
// Validate catches those separately.
func IsUnlocked(topic Topic, all []Topic) bool {
	if len(topic.Prerequisites) == 0 {
		return true
	}
	done := CompletedSet(all)
	for _, id := range topic.Prerequisites {
		if !done[id] {
			return false
		}
	}
	return true
}

// CompletedSet returns the set of completed topic ids.
func CompletedSet(topics []Topic) map[string]bool {
	done := make(map[string]bool, len(topics))
	for _, t := range topics {
		if t.Completed {
			done[t.ID] = true
		}
	}
	return done
}

// ByID indexes topics by id. Later duplicates win; Validate rejects
// duplicate ids before any caller relies on this.
func ByID(topics []Topic) map[string]Topic {
	idx := make(map[string]Topic, len(topics))
	for _, t := range topics {
		idx[t.ID] = t
	}
	return idx
}

// Find returns the index of the topic with the given id, or -1.
func Find(topics []Topic, id string) int {
	for i := range topics {
		if topics[i].ID == id {
			return i
		}
	}
	return -1
}

// Validate checks the topic set for structural integrity: unique ids,
// no dangling prerequisite references, and an acyclic prerequisite
// relation. The first problem found is returned as a typed error.
func Validate(topics []Topic) error {
	idSet := make(map[string]bool, len(topics))
	for _, t := range topics {
		if idSet[t.ID] {
			return &ErrDuplicateTopic{TopicID: t.ID}
		}
		idSet[t.ID] = true
	}

	for _, t := range topics {
		for _, prereq := range t.Prerequisites {
			if !idSet[prereq] {
				return &ErrDanglingPrerequisite{TopicID: t.ID, MissingID: prereq}
			}
		}
	}

	if cycle := findCycle(topics); len(cycle) > 0 {
		return &ErrCyclicPrerequisite{TopicIDs: cycle}
	}
	return nil
}

// findCycle runs a colored depth-first walk over the prerequisite
// relation and returns the ids on the first cycle found, or nil.
func findCycle(topics []Topic) []string {
	const (
		white = iota // unvisited
		gray         // on the current path
		black        // fully explored
	)

	prereqs := make(map[string][]string, len(topics))
	for _, t := range topics {
		prereqs[t.ID] = t.Prerequisites
	}

	color := make(map[string]int, len(topics))
	var path []string
	var cycle []string

	var visit func(id string) bool
	visit = func(id string) bool {
		color[id] = gray
		path = append(path, id)
		for _, next := range prereqs[id] {
			switch color[next] {
			case gray:
				// Found a back edge: the cycle is the path suffix
				// starting at next.
				for i, p := range path {
					if p == next {
						cycle = append([]string(nil), path[i:]...)
						break
					}
				}
				return true
			case white:
				if visit(next) {
					return true
				}
			}
		}
		path = path[:len(path)-1]
		color[id] = black
		return false
	}

	for _, t := range topics {
		if color[t.ID] == white && visit(t.ID) {
			sort.Strings(cycle)
			return cycle
		}
	}
	return nil
}
