package userstate

import (
	"testing"

	"github.com/careercompass/compass/internal/roadmap"
)

func TestClamp(t *testing.T) {
	cases := []struct{ in, want int }{
		{-50, 0}, {-1, 0}, {0, 0}, {1, 1}, {99, 99}, {100, 100}, {101, 100}, {1000, 100},
	}
	for _, tc := range cases {
		if got := Clamp(tc.in); got != tc.want {
			t.Errorf("Clamp(%d) = %d, want %d", tc.in, got, tc.want)
		}
		// Idempotent.
		if got := Clamp(Clamp(tc.in)); got != tc.want {
			t.Errorf("Clamp not idempotent for %d", tc.in)
		}
	}
}

func TestApplyDelta_ClampsAndIsolates(t *testing.T) {
	s := Skills{DSA: 95, Projects: 30, Fundamentals: 60, SoftSkills: 55}

	out := ApplyDelta(s, roadmap.CategoryDSA, 8)
	if out.DSA != 100 {
		t.Errorf("DSA = %d, want clamped 100", out.DSA)
	}
	if out.Projects != 30 || out.Fundamentals != 60 || out.SoftSkills != 55 {
		t.Error("other skills must be unchanged")
	}
	if s.DSA != 95 {
		t.Error("input skills must not be mutated")
	}

	out = ApplyDelta(s, roadmap.CategoryProjects, -40)
	if out.Projects != 0 {
		t.Errorf("Projects = %d, want clamped 0", out.Projects)
	}
}

func TestAverageWith(t *testing.T) {
	cases := []struct {
		skill, score, want int
	}{
		{40, 80, 60},
		{0, 100, 50},
		{41, 80, 61}, // 60.5 rounds up
		{100, 100, 100},
		{0, 0, 0},
	}
	for _, tc := range cases {
		s := Skills{DSA: tc.skill}
		out := AverageWith(s, roadmap.CategoryDSA, tc.score)
		if out.DSA != tc.want {
			t.Errorf("AverageWith(%d, %d) = %d, want %d", tc.skill, tc.score, out.DSA, tc.want)
		}
	}
}
