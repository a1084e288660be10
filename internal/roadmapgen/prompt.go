package roadmapgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/careercompass/compass/internal/roadmap"
	"github.com/careercompass/compass/internal/userstate"
)

const generateSystemPrompt = `You are a placement preparation mentor for computer science students. You design personalized learning roadmaps as prerequisite graphs: each topic may list the IDs of topics that must be completed first.`

func buildGenerateUserMessage(input GenerateInput) string {
	var b strings.Builder

	b.WriteString("Student Profile:\n")
	if input.Profile.Name != "" {
		b.WriteString(fmt.Sprintf("Name: %s\n", input.Profile.Name))
	}
	if input.Profile.College != "" {
		b.WriteString(fmt.Sprintf("College: %s\n", input.Profile.College))
	}
	if input.Profile.Role != "" {
		b.WriteString(fmt.Sprintf("Target role: %s\n", input.Profile.Role))
	}

	b.WriteString("\nCurrent skill levels (0-100):\n")
	for _, c := range roadmap.Categories() {
		b.WriteString(fmt.Sprintf("- %s: %d\n", c.DisplayName(), input.Skills.Get(c)))
	}

	if input.Goal != "" {
		b.WriteString(fmt.Sprintf("\nStated goal: %s\n", input.Goal))
	}

	b.WriteString(fmt.Sprintf(`
Instructions:
Create a placement preparation roadmap of at most %d topics:
1. Cover the four categories (dsa, projects, fundamentals, softSkills) with emphasis on the student's weakest areas.
2. Order topics by prerequisites: foundational topics first, each advanced topic listing the IDs of the topics it builds on. Prerequisites must reference IDs that exist in this roadmap, and the graph must contain no cycles.
3. Use stable kebab-case IDs (e.g. "dsa-arrays").
4. Set completed to false for every topic.
5. Lay out positions on a grid: x in [0, 800], y increasing with depth in the prerequisite graph, roughly 150 apart per level.
6. Mix difficulties: easy topics early, hard topics behind prerequisites.`, MaxTopics))

	return b.String()
}

const editSystemPrompt = `You are a placement preparation mentor editing a student's existing learning roadmap. You apply the requested change and return the complete modified roadmap, preserving everything the request does not touch.`

func buildEditUserMessage(input EditInput) (string, error) {
	current, err := json.MarshalIndent(map[string]any{"roadmap": input.Current}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal current roadmap: %w", err)
	}

	var b strings.Builder
	b.WriteString("Current roadmap:\n")
	b.Write(current)
	b.WriteString("\n\nRequested change:\n")
	b.WriteString(input.Instruction)
	b.WriteString(fmt.Sprintf(`

Instructions:
1. Apply only the requested change. Keep every other topic exactly as it is, including IDs, completion flags, and positions.
2. Return the FULL roadmap, not a diff. At most %d topics.
3. Keep prerequisites valid: every referenced ID must exist in the returned roadmap and the graph must stay acyclic. If a removed topic was a prerequisite of others, drop it from their prerequisite lists.
4. Provide a short explanation of what changed, under 50 characters.`, MaxTopics))

	return b.String(), nil
}

// GenerateInput carries everything the generation prompt needs.
type GenerateInput struct {
	Profile userstate.Profile
	Skills  userstate.Skills
	Goal    string
}

// EditInput carries the current roadmap and the user's instruction.
type EditInput struct {
	Current     []roadmap.Topic
	Instruction string
}
