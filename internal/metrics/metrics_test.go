package metrics

import (
	"testing"
	"time"

	"github.com/careercompass/compass/internal/roadmap"
	"github.com/careercompass/compass/internal/userstate"
)

func TestWeightsSumToOne(t *testing.T) {
	sum := WeightSkills + WeightRoadmap + WeightProjects + WeightMockTests
	if sum != 1.0 {
		t.Fatalf("readiness weights sum to %v, want exactly 1.0", sum)
	}
}

func TestCompute_EmptyState(t *testing.T) {
	s := userstate.UserState{}
	d := Compute(s)

	if d.RoadmapProgress != 0 {
		t.Errorf("empty roadmap progress = %d, want 0 (no division error)", d.RoadmapProgress)
	}
	if d.ReadinessScore != 0 || d.AverageMockTestScore != 0 || d.ProjectsScore != 0 {
		t.Errorf("empty state should compute all zeros, got %+v", d)
	}
}

// The reference scenario: skills {50,30,60,55}, 2 of 6 topics done,
// 1 of 2 projects done, one test scoring 70. The weighted sum over the
// unrounded components is 19.5 + 10 + 2 + 7 = 38.5, which rounds to 39.
func TestCompute_ReferenceScenario(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	topics := make([]roadmap.Topic, 6)
	for i := range topics {
		topics[i] = roadmap.Topic{
			ID:         string(rune('a' + i)),
			Category:   roadmap.CategoryDSA,
			Difficulty: roadmap.DifficultyEasy,
			Completed:  i < 2,
		}
	}

	s := userstate.UserState{
		Skills:  userstate.Skills{DSA: 50, Projects: 30, Fundamentals: 60, SoftSkills: 55},
		Roadmap: roadmap.State{Topics: topics, Source: roadmap.SourceDefault, LastUpdated: now},
		Projects: []userstate.Project{
			{ID: "p1", Completed: true},
			{ID: "p2"},
		},
		MockTests: []userstate.MockTestResult{
			{ID: "t1", Category: roadmap.CategoryDSA, Score: 70, TotalQuestions: 10, CorrectAnswers: 7, CompletedAt: now},
		},
	}

	d := Compute(s)

	if d.SkillsAverage != 49 {
		t.Errorf("SkillsAverage = %d, want 49", d.SkillsAverage)
	}
	if d.RoadmapProgress != 33 {
		t.Errorf("RoadmapProgress = %d, want 33", d.RoadmapProgress)
	}
	if d.ProjectsScore != 10 {
		t.Errorf("ProjectsScore = %d, want 10", d.ProjectsScore)
	}
	if d.AverageMockTestScore != 70 {
		t.Errorf("AverageMockTestScore = %d, want 70", d.AverageMockTestScore)
	}
	if d.ReadinessScore != 39 {
		t.Errorf("ReadinessScore = %d, want 39", d.ReadinessScore)
	}
	if d.CompletedTopicsCount != 2 || d.TotalTopicsCount != 6 || d.CompletedProjectsCount != 1 {
		t.Errorf("counts wrong: %+v", d)
	}
}

func TestCompute_ProjectsScoreCapped(t *testing.T) {
	var projects []userstate.Project
	for i := 0; i < 15; i++ {
		projects = append(projects, userstate.Project{ID: string(rune('a' + i)), Completed: true})
	}
	d := Compute(userstate.UserState{Projects: projects})
	if d.ProjectsScore != 100 {
		t.Errorf("ProjectsScore = %d, want capped 100", d.ProjectsScore)
	}
}

func TestCompute_SkillExtremesTieBreakCanonical(t *testing.T) {
	// All equal: both extremes resolve to dsa, the first in canonical
	// order.
	d := Compute(userstate.UserState{
		Skills: userstate.Skills{DSA: 50, Projects: 50, Fundamentals: 50, SoftSkills: 50},
	})
	if d.WeakestSkill.Name != "DSA" || d.StrongestSkill.Name != "DSA" {
		t.Errorf("tie-break wrong: weakest=%q strongest=%q", d.WeakestSkill.Name, d.StrongestSkill.Name)
	}

	d = Compute(userstate.UserState{
		Skills: userstate.Skills{DSA: 45, Projects: 30, Fundamentals: 60, SoftSkills: 30},
	})
	if d.WeakestSkill.Name != "Projects" || d.WeakestSkill.Value != 30 {
		t.Errorf("weakest = %+v, want Projects/30 (earlier of the tie)", d.WeakestSkill)
	}
	if d.StrongestSkill.Name != "CS Fundamentals" || d.StrongestSkill.Value != 60 {
		t.Errorf("strongest = %+v", d.StrongestSkill)
	}
}

// Metrics are derived, not stored: computing twice over the same state
// must agree, and computing never mutates the state.
func TestCompute_Pure(t *testing.T) {
	s := userstate.DemoState(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	a := Compute(s)
	b := Compute(s)
	if a != b {
		t.Error("Compute is not deterministic")
	}
}
