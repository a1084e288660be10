package mocktest

import (
	"fmt"
	"strings"
)

const generateSystemPrompt = `You are writing technical interview screening questions for computer science placement preparation. Questions must have exactly one defensibly correct answer.`

func buildGenerateUserMessage(input GenerateInput, count int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", input.Topic))
	b.WriteString(fmt.Sprintf("Category: %s\n", input.Category.DisplayName()))
	if input.SkillLevel > 0 {
		b.WriteString(fmt.Sprintf("Student skill level: %d/100\n", input.SkillLevel))
	}

	b.WriteString(fmt.Sprintf(`
Instructions:
Write %d multiple-choice questions on this topic:
1. Each question has exactly %d options and exactly one correct answer.
2. Distractors must be plausible mistakes, not obviously wrong fillers.
3. Calibrate difficulty to the student's skill level: lower levels get more recall questions, higher levels get more application and edge-case questions.
4. Provide a 1-2 sentence explanation for each correct answer.
5. Use plain text. Code snippets are allowed inline where they help.`, count, OptionsPerQuestion))

	return b.String()
}
