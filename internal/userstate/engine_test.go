package userstate

import (
	"errors"
	"testing"
	"time"

	"github.com/careercompass/compass/internal/roadmap"
)

var now = time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

func demoForTest(t *testing.T) UserState {
	t.Helper()
	s := DemoState(now)
	if err := Validate(s); err != nil {
		t.Fatalf("demo state invalid: %v", err)
	}
	return s
}

func TestSetTopicCompletion_HardTopicAddsEight(t *testing.T) {
	s := demoForTest(t)
	// dsa-arrays is hard and gated on javascript; complete the chain.
	s, err := SetTopicCompletion(s, "css", true, now)
	if err != nil {
		t.Fatal(err)
	}
	s, err = SetTopicCompletion(s, "javascript", true, now)
	if err != nil {
		t.Fatal(err)
	}

	before := s.Skills.DSA
	s, err = SetTopicCompletion(s, "dsa-arrays", true, now)
	if err != nil {
		t.Fatal(err)
	}
	if s.Skills.DSA != before+8 {
		t.Errorf("DSA = %d, want %d", s.Skills.DSA, before+8)
	}

	topic := s.Roadmap.Topics[roadmap.Find(s.Roadmap.Topics, "dsa-arrays")]
	if !topic.Completed || topic.CompletedAt == nil {
		t.Error("completion flag and timestamp should both be set")
	}
}

// Toggling completion repeatedly inflates the skill: completion credit
// fires on every not-completed → completed transition and uncompleting
// never reverses it. That is the documented product rule, surprising as
// it reads.
func TestSetTopicCompletion_ToggleQuirk(t *testing.T) {
	s := demoForTest(t)
	base := s.Skills.Fundamentals

	s, err := SetTopicCompletion(s, "css", true, now)
	if err != nil {
		t.Fatal(err)
	}
	if s.Skills.Fundamentals != base+5 {
		t.Fatalf("first completion: %d, want %d", s.Skills.Fundamentals, base+5)
	}

	s, err = SetTopicCompletion(s, "css", false, now)
	if err != nil {
		t.Fatal(err)
	}
	if s.Skills.Fundamentals != base+5 {
		t.Errorf("uncomplete must not reverse: %d, want %d", s.Skills.Fundamentals, base+5)
	}

	s, err = SetTopicCompletion(s, "css", true, now)
	if err != nil {
		t.Fatal(err)
	}
	if s.Skills.Fundamentals != base+10 {
		t.Errorf("recompletion adds again: %d, want %d", s.Skills.Fundamentals, base+10)
	}
}

func TestSetTopicCompletion_RejectsLockedAndUnknown(t *testing.T) {
	s := demoForTest(t)

	_, err := SetTopicCompletion(s, "dsa-arrays", true, now)
	var locked *ErrTopicLocked
	if !errors.As(err, &locked) {
		t.Errorf("expected ErrTopicLocked, got %v", err)
	}

	_, err = SetTopicCompletion(s, "nope", true, now)
	var unknown *roadmap.ErrUnknownTopic
	if !errors.As(err, &unknown) {
		t.Errorf("expected ErrUnknownTopic, got %v", err)
	}

	// Failed operations leave the input untouched.
	if s.Skills != DemoState(now).Skills {
		t.Error("failed operation mutated the snapshot")
	}
}

func TestResolveVerification(t *testing.T) {
	s := demoForTest(t)

	out, passed, err := ResolveVerification(s, "css", 70, now)
	if err != nil || !passed {
		t.Fatalf("score at threshold should pass: passed=%v err=%v", passed, err)
	}
	if !out.Roadmap.Topics[roadmap.Find(out.Roadmap.Topics, "css")].Completed {
		t.Error("passing verification should complete the topic")
	}

	out, passed, err = ResolveVerification(s, "css", 69, now)
	if err != nil {
		t.Fatal(err)
	}
	if passed {
		t.Error("69 should fail verification")
	}
	if out.Roadmap.Topics[roadmap.Find(out.Roadmap.Topics, "css")].Completed {
		t.Error("failed verification must not change state")
	}
}

func TestRecordMockTest_AveragesSkill(t *testing.T) {
	s := demoForTest(t)
	s.Skills.DSA = 40

	out, err := RecordMockTest(s, MockTestInput{
		Topic:          "arrays",
		Category:       roadmap.CategoryDSA,
		TotalQuestions: 5,
		CorrectAnswers: 4, // score 80
	}, now)
	if err != nil {
		t.Fatal(err)
	}
	if out.Skills.DSA != 60 {
		t.Errorf("DSA = %d, want round((40+80)/2) = 60", out.Skills.DSA)
	}
	last := out.MockTests[len(out.MockTests)-1]
	if last.Score != 80 || last.ID == "" {
		t.Errorf("recorded result wrong: %+v", last)
	}
	if len(out.MockTests) != len(s.MockTests)+1 {
		t.Error("history must be append-only")
	}
}

func TestRecordMockTest_RejectsBadInput(t *testing.T) {
	s := demoForTest(t)

	_, err := RecordMockTest(s, MockTestInput{Category: roadmap.CategorySoftSkills, TotalQuestions: 5}, now)
	var badCat *ErrInvalidTestCategory
	if !errors.As(err, &badCat) {
		t.Errorf("expected ErrInvalidTestCategory, got %v", err)
	}

	_, err = RecordMockTest(s, MockTestInput{Category: roadmap.CategoryDSA, TotalQuestions: 0}, now)
	var badCounts *ErrInvalidTestCounts
	if !errors.As(err, &badCounts) {
		t.Errorf("expected ErrInvalidTestCounts, got %v", err)
	}

	_, err = RecordMockTest(s, MockTestInput{Category: roadmap.CategoryDSA, TotalQuestions: 5, CorrectAnswers: 6}, now)
	if !errors.As(err, &badCounts) {
		t.Errorf("expected ErrInvalidTestCounts for correct > total, got %v", err)
	}
}

func TestProjectCompletion_SymmetricDelta(t *testing.T) {
	s := demoForTest(t)
	base := s.Skills.Projects

	out, err := SetProjectCompletion(s, "proj-todo", true, now)
	if err != nil {
		t.Fatal(err)
	}
	if out.Skills.Projects != base+10 {
		t.Errorf("complete: %d, want %d", out.Skills.Projects, base+10)
	}

	out, err = SetProjectCompletion(out, "proj-todo", false, now)
	if err != nil {
		t.Fatal(err)
	}
	if out.Skills.Projects != base {
		t.Errorf("uncomplete should reverse: %d, want %d", out.Skills.Projects, base)
	}

	// Re-completing an already-completed project is not a transition.
	out, err = SetProjectCompletion(s, "proj-portfolio", true, now)
	if err != nil {
		t.Fatal(err)
	}
	if out.Skills.Projects != base {
		t.Errorf("no-transition completion must not change skill: %d", out.Skills.Projects)
	}
}

func TestAddProject(t *testing.T) {
	s := demoForTest(t)
	base := s.Skills.Projects

	out, err := AddProject(s, ProjectInput{Title: "Chat App", Completed: true}, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Projects) != len(s.Projects)+1 {
		t.Fatal("project not appended")
	}
	if out.Skills.Projects != base+10 {
		t.Errorf("completed project should earn +10, got %d", out.Skills.Projects)
	}

	out, err = AddProject(s, ProjectInput{Title: "WIP"}, now)
	if err != nil {
		t.Fatal(err)
	}
	if out.Skills.Projects != base {
		t.Error("incomplete project must not change skill")
	}
}

func TestReplaceRoadmap_AllOrNothing(t *testing.T) {
	s := demoForTest(t)

	bad := []roadmap.Topic{
		{ID: "a", Category: roadmap.CategoryDSA, Difficulty: roadmap.DifficultyEasy, Prerequisites: []string{"ghost"}},
	}
	_, err := ReplaceRoadmap(s, bad, roadmap.SourceAI, now)
	var dangling *roadmap.ErrDanglingPrerequisite
	if !errors.As(err, &dangling) {
		t.Fatalf("expected ErrDanglingPrerequisite, got %v", err)
	}

	good := []roadmap.Topic{
		{ID: "a", Category: roadmap.CategoryDSA, Difficulty: roadmap.DifficultyEasy},
	}
	out, err := ReplaceRoadmap(s, good, roadmap.SourceAI, now)
	if err != nil {
		t.Fatal(err)
	}
	if out.Roadmap.Source != roadmap.SourceAI || len(out.Roadmap.Topics) != 1 {
		t.Errorf("roadmap not replaced: %+v", out.Roadmap)
	}
}

func TestApplyRoadmapEdit_PreservesCompletion(t *testing.T) {
	s := demoForTest(t)

	// Edit keeps internet and html (done in the demo) but claims both
	// are incomplete, drops everything else, and leaves a prerequisite
	// pointing at a dropped topic.
	payload := &roadmap.Payload{
		Topics: []roadmap.Topic{
			{ID: "internet", Category: roadmap.CategoryFundamentals, Difficulty: roadmap.DifficultyEasy},
			{ID: "html", Category: roadmap.CategoryFundamentals, Difficulty: roadmap.DifficultyEasy,
				Prerequisites: []string{"internet", "css"}},
		},
	}

	out, err := ApplyRoadmapEdit(s, payload, roadmap.PreserveExisting, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Roadmap.Topics) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(out.Roadmap.Topics))
	}
	html := out.Roadmap.Topics[roadmap.Find(out.Roadmap.Topics, "html")]
	if !html.Completed {
		t.Error("completion must carry over under PreserveExisting")
	}
	if len(html.Prerequisites) != 1 || html.Prerequisites[0] != "internet" {
		t.Errorf("dangling prerequisite not stripped: %v", html.Prerequisites)
	}
	if out.Roadmap.Source != roadmap.SourceAI {
		t.Errorf("source = %q, want ai", out.Roadmap.Source)
	}
}

func TestValidate_SkillOutOfRange(t *testing.T) {
	s := demoForTest(t)
	s.Skills.DSA = 140
	var oor *ErrSkillOutOfRange
	if !errors.As(Validate(s), &oor) {
		t.Fatal("expected ErrSkillOutOfRange")
	}
}

func TestClone_IsDeep(t *testing.T) {
	s := demoForTest(t)
	c := s.Clone()
	c.Roadmap.Topics[0].Completed = false
	c.Projects[0].TechStack[0] = "mutated"
	c.MockTests[0].Score = 0

	if !s.Roadmap.Topics[0].Completed {
		t.Error("clone shares roadmap topics")
	}
	if s.Projects[0].TechStack[0] == "mutated" {
		t.Error("clone shares tech stack slices")
	}
	if s.MockTests[0].Score == 0 {
		t.Error("clone shares mock test history")
	}
}
