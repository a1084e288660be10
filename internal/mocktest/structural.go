package mocktest

import "fmt"

// ErrInvalidQuestionSet reports the first structural problem in a
// generated test. Index is -1 for set-level problems.
type ErrInvalidQuestionSet struct {
	Index  int
	Reason string
}

func (e *ErrInvalidQuestionSet) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid question set: %s", e.Reason)
	}
	return fmt.Sprintf("invalid question %d: %s", e.Index, e.Reason)
}

// validateSet checks structural integrity beyond what the JSON schema
// can express. Schema validation already guarantees field presence and
// types; this catches semantic problems like out-of-range answers.
func validateSet(set QuestionSet, wantCount int) error {
	if len(set.Questions) == 0 {
		return &ErrInvalidQuestionSet{Index: -1, Reason: "no questions"}
	}
	if len(set.Questions) != wantCount {
		return &ErrInvalidQuestionSet{
			Index:  -1,
			Reason: fmt.Sprintf("expected %d questions, got %d", wantCount, len(set.Questions)),
		}
	}

	for i, q := range set.Questions {
		if q.Prompt == "" {
			return &ErrInvalidQuestionSet{Index: i, Reason: "empty prompt"}
		}
		if len(q.Options) != OptionsPerQuestion {
			return &ErrInvalidQuestionSet{
				Index:  i,
				Reason: fmt.Sprintf("expected %d options, got %d", OptionsPerQuestion, len(q.Options)),
			}
		}
		for j, opt := range q.Options {
			if opt == "" {
				return &ErrInvalidQuestionSet{
					Index:  i,
					Reason: fmt.Sprintf("option %d is empty", j),
				}
			}
		}
		if q.AnswerIndex < 0 || q.AnswerIndex >= OptionsPerQuestion {
			return &ErrInvalidQuestionSet{
				Index:  i,
				Reason: fmt.Sprintf("answer index %d out of range", q.AnswerIndex),
			}
		}
		if q.Explanation == "" {
			return &ErrInvalidQuestionSet{Index: i, Reason: "empty explanation"}
		}
	}
	return nil
}
