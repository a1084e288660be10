package userstate

import (
	"fmt"

	"github.com/careercompass/compass/internal/roadmap"
)

// ErrTopicLocked indicates a completion attempt on a topic whose
// prerequisites are not all completed. Checking before mutating is the
// caller's job; the engine enforces it anyway.
type ErrTopicLocked struct {
	TopicID string
}

func (e *ErrTopicLocked) Error() string {
	return fmt.Sprintf("topic %q is locked: prerequisites incomplete", e.TopicID)
}

// ErrUnknownProject indicates an operation referencing a project id
// absent from the aggregate.
type ErrUnknownProject struct {
	ProjectID string
}

func (e *ErrUnknownProject) Error() string {
	return fmt.Sprintf("unknown project %q", e.ProjectID)
}

// ErrInvalidTestCategory indicates a mock-test submission against a
// category that tests never feed (only dsa and fundamentals do).
type ErrInvalidTestCategory struct {
	Category roadmap.Category
}

func (e *ErrInvalidTestCategory) Error() string {
	return fmt.Sprintf("mock tests cannot target category %q (only dsa and fundamentals)", e.Category)
}

// ErrInvalidTestCounts indicates a submission with non-positive totals
// or more correct answers than questions.
type ErrInvalidTestCounts struct {
	TotalQuestions int
	CorrectAnswers int
}

func (e *ErrInvalidTestCounts) Error() string {
	return fmt.Sprintf("invalid test counts: %d correct of %d", e.CorrectAnswers, e.TotalQuestions)
}

// ErrSkillOutOfRange indicates a persisted skill value outside [0,100].
// Unreachable through the engine, which clamps; checked defensively at
// the load boundary.
type ErrSkillOutOfRange struct {
	Category roadmap.Category
	Value    int
}

func (e *ErrSkillOutOfRange) Error() string {
	return fmt.Sprintf("skill %q out of range: %d", e.Category, e.Value)
}
