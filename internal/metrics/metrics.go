// Package metrics derives display metrics from a UserState snapshot.
// Everything here is recomputed on every read and never persisted, so
// the numbers can't drift from the source aggregate.
package metrics

import (
	"math"

	"github.com/careercompass/compass/internal/roadmap"
	"github.com/careercompass/compass/internal/userstate"
)

// Readiness score component weights. They must sum to exactly 1.0;
// the tests assert it.
const (
	WeightSkills    = 0.4
	WeightRoadmap   = 0.3
	WeightProjects  = 0.2
	WeightMockTests = 0.1
)

// ProjectsScoreCap bounds the projects component: 10 points per
// completed project, capped.
const ProjectsScoreCap = 100

// SkillValue pairs a skill's display name with its current value.
type SkillValue struct {
	Name  string
	Value int
}

// Derived is the full set of computed metrics.
type Derived struct {
	ReadinessScore         int
	SkillsAverage          int
	RoadmapProgress        int
	CompletedTopicsCount   int
	TotalTopicsCount       int
	CompletedProjectsCount int
	ProjectsScore          int
	AverageMockTestScore   int
	WeakestSkill           SkillValue
	StrongestSkill         SkillValue
}

// Compute derives all metrics from state.
//
// Rounding strategy: the weighted readiness sum is taken over the
// unrounded components and rounded once at the end. The per-component
// fields are rounded independently for display, so they may not
// recombine to the readiness score exactly.
func Compute(state userstate.UserState) Derived {
	skillsAvg := float64(state.Skills.DSA+state.Skills.Projects+
		state.Skills.Fundamentals+state.Skills.SoftSkills) / 4

	var completedTopics int
	for _, t := range state.Roadmap.Topics {
		if t.Completed {
			completedTopics++
		}
	}
	totalTopics := len(state.Roadmap.Topics)
	var progress float64
	if totalTopics > 0 {
		progress = float64(completedTopics) / float64(totalTopics) * 100
	}

	var completedProjects int
	for _, p := range state.Projects {
		if p.Completed {
			completedProjects++
		}
	}
	projectsScore := completedProjects * 10
	if projectsScore > ProjectsScoreCap {
		projectsScore = ProjectsScoreCap
	}

	var testAvg float64
	if len(state.MockTests) > 0 {
		var sum int
		for _, r := range state.MockTests {
			sum += r.Score
		}
		testAvg = float64(sum) / float64(len(state.MockTests))
	}

	readiness := skillsAvg*WeightSkills +
		progress*WeightRoadmap +
		float64(projectsScore)*WeightProjects +
		testAvg*WeightMockTests

	weakest, strongest := extremes(state.Skills)

	return Derived{
		ReadinessScore:         int(math.Round(readiness)),
		SkillsAverage:          int(math.Round(skillsAvg)),
		RoadmapProgress:        int(math.Round(progress)),
		CompletedTopicsCount:   completedTopics,
		TotalTopicsCount:       totalTopics,
		CompletedProjectsCount: completedProjects,
		ProjectsScore:          projectsScore,
		AverageMockTestScore:   int(math.Round(testAvg)),
		WeakestSkill:           weakest,
		StrongestSkill:         strongest,
	}
}

// extremes finds the weakest and strongest skills. Ties break toward
// the earlier category in canonical order, which the strict < and >
// comparisons below give for free.
func extremes(s userstate.Skills) (weakest, strongest SkillValue) {
	first := true
	for _, c := range roadmap.Categories() {
		v := s.Get(c)
		sv := SkillValue{Name: c.DisplayName(), Value: v}
		if first {
			weakest, strongest = sv, sv
			first = false
			continue
		}
		if v < weakest.Value {
			weakest = sv
		}
		if v > strongest.Value {
			strongest = sv
		}
	}
	return weakest, strongest
}
