package roadmap

import (
	"fmt"
	"strings"
)

// ErrMalformedJSON indicates an external roadmap payload that is not
// valid JSON even after code-fence stripping.
type ErrMalformedJSON struct {
	Err error
}

func (e *ErrMalformedJSON) Error() string {
	return fmt.Sprintf("malformed roadmap JSON: %v", e.Err)
}

func (e *ErrMalformedJSON) Unwrap() error { return e.Err }

// ErrSchemaViolation indicates a structurally invalid payload. Field
// names the first offending field, including its index path.
type ErrSchemaViolation struct {
	Field  string
	Reason string
}

func (e *ErrSchemaViolation) Error() string {
	return fmt.Sprintf("roadmap payload schema violation at %s: %s", e.Field, e.Reason)
}

// ErrMissingExplanation indicates an edit payload without the required
// explanation string.
type ErrMissingExplanation struct{}

func (e *ErrMissingExplanation) Error() string {
	return "roadmap edit payload is missing an explanation"
}

// ErrDanglingPrerequisite indicates a prerequisite id with no matching
// topic in the same roadmap.
type ErrDanglingPrerequisite struct {
	TopicID   string
	MissingID string
}

func (e *ErrDanglingPrerequisite) Error() string {
	return fmt.Sprintf("topic %q references nonexistent prerequisite %q", e.TopicID, e.MissingID)
}

// ErrCyclicPrerequisite indicates that the prerequisite relation
// contains a cycle. TopicIDs lists the topics involved.
type ErrCyclicPrerequisite struct {
	TopicIDs []string
}

func (e *ErrCyclicPrerequisite) Error() string {
	return fmt.Sprintf("prerequisite cycle involving topics: %s", strings.Join(e.TopicIDs, ", "))
}

// ErrDuplicateTopic indicates two topics sharing an id.
type ErrDuplicateTopic struct {
	TopicID string
}

func (e *ErrDuplicateTopic) Error() string {
	return fmt.Sprintf("duplicate topic id %q", e.TopicID)
}

// ErrUnknownTopic indicates an operation referencing a topic id absent
// from the roadmap.
type ErrUnknownTopic struct {
	TopicID string
}

func (e *ErrUnknownTopic) Error() string {
	return fmt.Sprintf("unknown topic %q", e.TopicID)
}
