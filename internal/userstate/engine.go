// Package userstate holds the per-user aggregate and the update rules
// that govern it. Every operation is a pure transformation: it takes a
// UserState snapshot and returns a new one, leaving the input untouched
// on failure. The surrounding application owns the long-lived instance
// and threads it through calls; there is no ambient state here.
//
// The skill-update rules are asymmetric on purpose, mirroring the
// product's design: topic completion is additive and never reversed,
// mock tests average the skill toward demonstrated ability, and project
// completion is a symmetric ±10 toggle.
package userstate

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/careercompass/compass/internal/roadmap"
)

// ProjectCompletionDelta is applied on project completion transitions,
// in both directions.
const ProjectCompletionDelta = 10

// SetTopicCompletion flips a topic's completed flag. Completing a
// locked or unknown topic fails without touching the input. The mapped
// skill increases by the difficulty delta on the not-completed →
// completed transition only; uncompleting never reverses it, so skills
// model cumulative learning rather than a toggle.
func SetTopicCompletion(state UserState, topicID string, completed bool, now time.Time) (UserState, error) {
	idx := roadmap.Find(state.Roadmap.Topics, topicID)
	if idx < 0 {
		return state, &roadmap.ErrUnknownTopic{TopicID: topicID}
	}

	topic := state.Roadmap.Topics[idx]
	if completed && !topic.Completed && !roadmap.IsUnlocked(topic, state.Roadmap.Topics) {
		return state, &ErrTopicLocked{TopicID: topicID}
	}

	next := state.Clone()
	t := &next.Roadmap.Topics[idx]
	wasCompleted := t.Completed
	t.Completed = completed
	if completed {
		at := now
		t.CompletedAt = &at
	} else {
		t.CompletedAt = nil
	}

	if completed && !wasCompleted {
		next.Skills = ApplyDelta(next.Skills, t.Category, t.Difficulty.SkillDelta())
	}

	next.Roadmap.LastUpdated = now
	next.Metadata.LastActive = now
	return next, nil
}

// ResolveVerification settles a test-gated completion attempt. A score
// at or above roadmap.PassingScore completes the topic (with the usual
// skill credit); a failing score returns the state unchanged and the
// topic drops back to Unlocked.
func ResolveVerification(state UserState, topicID string, score int, now time.Time) (UserState, bool, error) {
	if score < roadmap.PassingScore {
		if roadmap.Find(state.Roadmap.Topics, topicID) < 0 {
			return state, false, &roadmap.ErrUnknownTopic{TopicID: topicID}
		}
		return state, false, nil
	}
	next, err := SetTopicCompletion(state, topicID, true, now)
	if err != nil {
		return state, false, err
	}
	return next, true, nil
}

// MockTestInput is a raw test submission. The score is derived here,
// never supplied by the caller.
type MockTestInput struct {
	Topic          string
	Category       roadmap.Category
	TotalQuestions int
	CorrectAnswers int
}

// RecordMockTest appends a test result to the history and averages the
// targeted skill with the derived score. Only dsa and fundamentals are
// valid targets.
func RecordMockTest(state UserState, in MockTestInput, now time.Time) (UserState, error) {
	if in.Category != roadmap.CategoryDSA && in.Category != roadmap.CategoryFundamentals {
		return state, &ErrInvalidTestCategory{Category: in.Category}
	}
	if in.TotalQuestions <= 0 || in.CorrectAnswers < 0 || in.CorrectAnswers > in.TotalQuestions {
		return state, &ErrInvalidTestCounts{TotalQuestions: in.TotalQuestions, CorrectAnswers: in.CorrectAnswers}
	}

	score := int(math.Round(float64(in.CorrectAnswers) / float64(in.TotalQuestions) * 100))

	next := state.Clone()
	next.MockTests = append(next.MockTests, MockTestResult{
		ID:             uuid.NewString(),
		Topic:          in.Topic,
		Category:       in.Category,
		Score:          score,
		TotalQuestions: in.TotalQuestions,
		CorrectAnswers: in.CorrectAnswers,
		CompletedAt:    now,
	})
	next.Skills = AverageWith(next.Skills, in.Category, score)
	next.Metadata.LastActive = now
	return next, nil
}

// ProjectInput describes a new portfolio project.
type ProjectInput struct {
	Title       string
	Description string
	TechStack   []string
	Completed   bool
}

// AddProject appends a project. An already-completed project earns the
// completion delta immediately.
func AddProject(state UserState, in ProjectInput, now time.Time) (UserState, error) {
	next := state.Clone()
	p := Project{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		TechStack:   append([]string(nil), in.TechStack...),
		Completed:   in.Completed,
	}
	if in.Completed {
		at := now
		p.CompletedAt = &at
		next.Skills = ApplyDelta(next.Skills, roadmap.CategoryProjects, ProjectCompletionDelta)
	}
	next.Projects = append(next.Projects, p)
	next.Metadata.LastActive = now
	return next, nil
}

// SetProjectCompletion toggles a project's completion. Unlike topics,
// the skill adjustment is symmetric: +10 on complete, −10 on
// uncomplete, transitions only.
func SetProjectCompletion(state UserState, projectID string, completed bool, now time.Time) (UserState, error) {
	idx := -1
	for i := range state.Projects {
		if state.Projects[i].ID == projectID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return state, &ErrUnknownProject{ProjectID: projectID}
	}

	next := state.Clone()
	p := &next.Projects[idx]
	wasCompleted := p.Completed
	p.Completed = completed
	if completed {
		at := now
		p.CompletedAt = &at
	} else {
		p.CompletedAt = nil
	}

	switch {
	case completed && !wasCompleted:
		next.Skills = ApplyDelta(next.Skills, roadmap.CategoryProjects, ProjectCompletionDelta)
	case !completed && wasCompleted:
		next.Skills = ApplyDelta(next.Skills, roadmap.CategoryProjects, -ProjectCompletionDelta)
	}

	next.Metadata.LastActive = now
	return next, nil
}

// SetSkillLevel stores a manually adjusted skill value, clamped.
func SetSkillLevel(state UserState, c roadmap.Category, value int, now time.Time) (UserState, error) {
	if !c.Valid() {
		return state, &ErrInvalidTestCategory{Category: c}
	}
	next := state.Clone()
	next.Skills.set(c, value)
	next.Metadata.LastActive = now
	return next, nil
}

// ReplaceRoadmap swaps the entire roadmap for a new topic set, tagged
// with its provenance. The new set is validated first; on failure the
// prior state is returned untouched.
func ReplaceRoadmap(state UserState, topics []roadmap.Topic, source roadmap.Source, now time.Time) (UserState, error) {
	if err := roadmap.Validate(topics); err != nil {
		return state, err
	}
	next := state.Clone()
	next.Roadmap = roadmap.State{
		Topics:      roadmap.CloneTopics(topics),
		Source:      source,
		LastUpdated: now,
	}
	next.Metadata.LastActive = now
	return next, nil
}

// ApplyRoadmapEdit reconciles a validated edit payload against the
// current roadmap and applies it all-or-nothing. The reconciled set is
// re-validated because reconciliation itself must never produce an
// invalid graph.
func ApplyRoadmapEdit(state UserState, payload *roadmap.Payload, policy roadmap.CompletionPolicy, now time.Time) (UserState, error) {
	merged := roadmap.Reconcile(state.Roadmap.Topics, payload.Topics, policy)
	return ReplaceRoadmap(state, merged, roadmap.SourceAI, now)
}
