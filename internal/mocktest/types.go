// Package mocktest generates and grades multiple-choice mock tests.
// Tests exist for the dsa and fundamentals categories only; projects
// and soft skills are assessed through other channels.
package mocktest

import (
	"github.com/careercompass/compass/internal/roadmap"
)

// OptionsPerQuestion is fixed: every question has exactly four options.
const OptionsPerQuestion = 4

// DefaultQuestionCount is used when the caller does not specify one.
const DefaultQuestionCount = 5

// MaxQuestionCount bounds a single generated test.
const MaxQuestionCount = 20

// Question is one multiple-choice question.
type Question struct {
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answerIndex"`
	Explanation string   `json:"explanation"`
}

// QuestionSet is a generated mock test for one topic.
type QuestionSet struct {
	Topic     string           `json:"topic"`
	Category  roadmap.Category `json:"category"`
	Questions []Question       `json:"questions"`
}

// Grade counts correct answers. Answers shorter than the question list
// leave the remaining questions wrong; extra answers are ignored.
func Grade(set QuestionSet, answers []int) int {
	correct := 0
	for i, q := range set.Questions {
		if i >= len(answers) {
			break
		}
		if answers[i] == q.AnswerIndex {
			correct++
		}
	}
	return correct
}
