package userstate

import (
	"time"

	"github.com/careercompass/compass/internal/roadmap"
)

// DefaultRoadmap returns the stock frontend placement track new users
// start with before generating a personalized one.
func DefaultRoadmap() []roadmap.Topic {
	return []roadmap.Topic{
		{
			ID:          "internet",
			Title:       "Internet Basics",
			Description: "How the internet works, HTTP/HTTPS, DNS, Browsers",
			Category:    roadmap.CategoryFundamentals,
			Difficulty:  roadmap.DifficultyEasy,
			Position:    roadmap.Position{X: 50, Y: 10},
		},
		{
			ID:            "html",
			Title:         "HTML",
			Description:   "Semantic HTML, Forms, Accessibility",
			Category:      roadmap.CategoryFundamentals,
			Difficulty:    roadmap.DifficultyEasy,
			Position:      roadmap.Position{X: 50, Y: 25},
			Prerequisites: []string{"internet"},
		},
		{
			ID:            "css",
			Title:         "CSS",
			Description:   "Styling, Flexbox, Grid, Responsive Design",
			Category:      roadmap.CategoryFundamentals,
			Difficulty:    roadmap.DifficultyMedium,
			Position:      roadmap.Position{X: 50, Y: 40},
			Prerequisites: []string{"html"},
		},
		{
			ID:            "javascript",
			Title:         "JavaScript",
			Description:   "ES6+, DOM, Async, Closures, Prototypes",
			Category:      roadmap.CategoryDSA,
			Difficulty:    roadmap.DifficultyMedium,
			Position:      roadmap.Position{X: 50, Y: 55},
			Prerequisites: []string{"css"},
		},
		{
			ID:            "dsa-arrays",
			Title:         "Arrays & Strings",
			Description:   "Two pointers, sliding window, prefix sums",
			Category:      roadmap.CategoryDSA,
			Difficulty:    roadmap.DifficultyHard,
			Position:      roadmap.Position{X: 50, Y: 70},
			Prerequisites: []string{"javascript"},
		},
		{
			ID:            "portfolio",
			Title:         "Portfolio Project",
			Description:   "Build and ship one substantial project",
			Category:      roadmap.CategoryProjects,
			Difficulty:    roadmap.DifficultyHard,
			Position:      roadmap.Position{X: 50, Y: 85},
			Prerequisites: []string{"javascript"},
		},
	}
}

// NewState creates an empty aggregate for a fresh user: all skills
// zeroed and the default roadmap installed.
func NewState(userID string, profile Profile, now time.Time) UserState {
	return UserState{
		UserID:  userID,
		Profile: profile,
		Roadmap: roadmap.State{
			Topics:      DefaultRoadmap(),
			Source:      roadmap.SourceDefault,
			LastUpdated: now,
		},
		Projects:  []Project{},
		MockTests: []MockTestResult{},
		Metadata: Metadata{
			CreatedAt:  now,
			LastActive: now,
			Version:    StateVersion,
		},
	}
}

// DemoUserID is the reserved id for the pre-populated demo aggregate.
// Demo data never syncs to the cloud mirror.
const DemoUserID = "demo-user"

// DemoState creates the pre-populated demo aggregate used by
// first-time visitors: two topics done, one finished project, one
// recorded test.
func DemoState(now time.Time) UserState {
	s := NewState(DemoUserID, Profile{
		Name:    "Demo Student",
		Email:   "demo@example.com",
		College: "Demo University",
		Role:    "Frontend Developer",
	}, now)

	s.Skills = Skills{DSA: 45, Projects: 30, Fundamentals: 60, SoftSkills: 55}

	for i := range s.Roadmap.Topics[:2] {
		at := now.AddDate(0, 0, -(2 - i))
		s.Roadmap.Topics[i].Completed = true
		s.Roadmap.Topics[i].CompletedAt = &at
	}

	projDone := now.AddDate(0, 0, -10)
	s.Projects = []Project{
		{
			ID:          "proj-portfolio",
			Title:       "Portfolio Website",
			Description: "Personal portfolio built with HTML, CSS, and JavaScript",
			TechStack:   []string{"HTML", "CSS", "JavaScript"},
			Completed:   true,
			CompletedAt: &projDone,
		},
		{
			ID:          "proj-todo",
			Title:       "Todo App",
			Description: "Task management app with React",
			TechStack:   []string{"React", "TypeScript", "CSS"},
		},
	}

	s.MockTests = []MockTestResult{
		{
			ID:             "test-internet",
			Topic:          "internet",
			Category:       roadmap.CategoryFundamentals,
			Score:          70,
			TotalQuestions: 5,
			CorrectAnswers: 3,
			CompletedAt:    now.AddDate(0, 0, -5),
		},
	}

	return s
}
