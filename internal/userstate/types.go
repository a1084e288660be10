package userstate

import (
	"time"

	"github.com/careercompass/compass/internal/roadmap"
)

// Skills is the four-skill vector. Every value is always in [0,100];
// engine operations clamp before storing, never after reading.
type Skills struct {
	DSA          int `json:"dsa"`
	Projects     int `json:"projects"`
	Fundamentals int `json:"fundamentals"`
	SoftSkills   int `json:"softSkills"`
}

// Get returns the value for a category. Unknown categories read as 0.
func (s Skills) Get(c roadmap.Category) int {
	switch c {
	case roadmap.CategoryDSA:
		return s.DSA
	case roadmap.CategoryProjects:
		return s.Projects
	case roadmap.CategoryFundamentals:
		return s.Fundamentals
	case roadmap.CategorySoftSkills:
		return s.SoftSkills
	}
	return 0
}

// set stores a clamped value for a category. Unknown categories are a
// no-op; callers validate categories at the boundary.
func (s *Skills) set(c roadmap.Category, v int) {
	v = Clamp(v)
	switch c {
	case roadmap.CategoryDSA:
		s.DSA = v
	case roadmap.CategoryProjects:
		s.Projects = v
	case roadmap.CategoryFundamentals:
		s.Fundamentals = v
	case roadmap.CategorySoftSkills:
		s.SoftSkills = v
	}
}

// Profile holds display-only identity fields. The engine never reads
// them.
type Profile struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	College string `json:"college"`
	Role    string `json:"role"`
}

// Project is a portfolio entry. Completion feeds the projects skill
// symmetrically (unlike topics).
type Project struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TechStack   []string   `json:"techStack"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// MockTestResult is one entry of the append-only test history. Only
// dsa and fundamentals tests exist; score is derived from the answer
// counts at record time.
type MockTestResult struct {
	ID             string           `json:"id"`
	Topic          string           `json:"topic"`
	Category       roadmap.Category `json:"category"`
	Score          int              `json:"score"`
	TotalQuestions int              `json:"totalQuestions"`
	CorrectAnswers int              `json:"correctAnswers"`
	CompletedAt    time.Time        `json:"completedAt"`
}

// Metadata tracks aggregate lifecycle fields.
type Metadata struct {
	CreatedAt  time.Time `json:"createdAt"`
	LastActive time.Time `json:"lastActive"`
	Version    string    `json:"version"`
}

// StateVersion is written into Metadata.Version on creation.
const StateVersion = "1.0.0"

// UserState is the aggregate root and single source of truth for one
// user. It is mutated exclusively through engine operations, which take
// a snapshot and return a new one; derived metrics are recomputed on
// every read and never stored here.
type UserState struct {
	UserID    string           `json:"userId"`
	Profile   Profile          `json:"profile"`
	Skills    Skills           `json:"skills"`
	Roadmap   roadmap.State    `json:"roadmap"`
	Projects  []Project        `json:"projects"`
	MockTests []MockTestResult `json:"mockTests"`
	Metadata  Metadata         `json:"metadata"`
}

// Clone returns a deep copy. Engine operations clone before mutating so
// a failed operation leaves the caller's snapshot untouched.
func (s UserState) Clone() UserState {
	out := s
	out.Roadmap.Topics = roadmap.CloneTopics(s.Roadmap.Topics)
	out.Projects = make([]Project, len(s.Projects))
	for i, p := range s.Projects {
		out.Projects[i] = p
		if p.TechStack != nil {
			out.Projects[i].TechStack = append([]string(nil), p.TechStack...)
		}
		if p.CompletedAt != nil {
			at := *p.CompletedAt
			out.Projects[i].CompletedAt = &at
		}
	}
	out.MockTests = append([]MockTestResult(nil), s.MockTests...)
	return out
}
