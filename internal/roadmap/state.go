package roadmap

// TopicState is a topic's position in the completion lifecycle:
//
//	Locked → Unlocked → AwaitingVerification → Completed
//
// Completed → Unlocked (uncomplete) is the only reverse edge, and it
// never reverses the skill credit awarded on completion.
type TopicState int

const (
	StateLocked TopicState = iota
	StateUnlocked
	StateAwaitingVerification
	StateCompleted
)

// PassingScore is the minimum mock-test score required for a topic in
// AwaitingVerification to reach Completed.
const PassingScore = 70

// StateOf derives a topic's lifecycle state. awaiting holds topic ids
// with an in-flight completion attempt; it is session-scoped and never
// persisted with the aggregate.
func StateOf(topic Topic, all []Topic, awaiting map[string]bool) TopicState {
	if topic.Completed {
		return StateCompleted
	}
	if !IsUnlocked(topic, all) {
		return StateLocked
	}
	if awaiting[topic.ID] {
		return StateAwaitingVerification
	}
	return StateUnlocked
}

// Label returns the display label for a topic state.
func (s TopicState) Label() string {
	switch s {
	case StateLocked:
		return "Locked"
	case StateUnlocked:
		return "Unlocked"
	case StateAwaitingVerification:
		return "Awaiting Verification"
	case StateCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Icon returns the display icon for a topic state.
func (s TopicState) Icon() string {
	switch s {
	case StateLocked:
		return "🔒"
	case StateUnlocked:
		return "🔓"
	case StateAwaitingVerification:
		return "📝"
	case StateCompleted:
		return "✅"
	default:
		return "?"
	}
}
