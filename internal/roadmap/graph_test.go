package roadmap

import (
	"errors"
	"testing"
)

func topic(id string, completed bool, prereqs ...string) Topic {
	return Topic{
		ID:            id,
		Title:         id,
		Category:      CategoryDSA,
		Difficulty:    DifficultyEasy,
		Completed:     completed,
		Prerequisites: prereqs,
	}
}

func TestIsUnlocked_NoPrerequisites(t *testing.T) {
	all := []Topic{topic("a", false)}
	if !IsUnlocked(all[0], all) {
		t.Error("topic without prerequisites should always be unlocked")
	}
}

func TestIsUnlocked_RequiresAllPrereqsCompleted(t *testing.T) {
	all := []Topic{
		topic("a", true),
		topic("b", false),
		topic("c", false, "a", "b"),
	}
	if IsUnlocked(all[2], all) {
		t.Error("topic should be locked while any prerequisite is incomplete")
	}

	all[1].Completed = true
	if !IsUnlocked(all[2], all) {
		t.Error("topic should unlock once every prerequisite is completed")
	}
}

func TestValidate_DetectsDanglingPrerequisite(t *testing.T) {
	topics := []Topic{
		topic("a", false),
		topic("b", false, "ghost"),
	}
	err := Validate(topics)
	var dangling *ErrDanglingPrerequisite
	if !errors.As(err, &dangling) {
		t.Fatalf("expected ErrDanglingPrerequisite, got %v", err)
	}
	if dangling.TopicID != "b" || dangling.MissingID != "ghost" {
		t.Errorf("error should name topic and missing id, got %+v", dangling)
	}
}

func TestValidate_DetectsThreeCycle(t *testing.T) {
	topics := []Topic{
		topic("a", false, "b"),
		topic("b", false, "c"),
		topic("c", false, "a"),
	}
	err := Validate(topics)
	var cyclic *ErrCyclicPrerequisite
	if !errors.As(err, &cyclic) {
		t.Fatalf("expected ErrCyclicPrerequisite, got %v", err)
	}
	if len(cyclic.TopicIDs) != 3 {
		t.Errorf("cycle should involve all three topics, got %v", cyclic.TopicIDs)
	}
}

func TestValidate_DetectsSelfCycle(t *testing.T) {
	topics := []Topic{topic("a", false, "a")}
	var cyclic *ErrCyclicPrerequisite
	if !errors.As(Validate(topics), &cyclic) {
		t.Fatal("self-referencing prerequisite should be a cycle")
	}
}

func TestValidate_DetectsDuplicateID(t *testing.T) {
	topics := []Topic{topic("a", false), topic("a", false)}
	var dup *ErrDuplicateTopic
	if !errors.As(Validate(topics), &dup) {
		t.Fatal("expected ErrDuplicateTopic")
	}
}

func TestValidate_AcceptsValidChain(t *testing.T) {
	topics := []Topic{
		topic("a", false),
		topic("b", false, "a"),
		topic("c", false, "a", "b"),
	}
	if err := Validate(topics); err != nil {
		t.Fatalf("valid chain rejected: %v", err)
	}
}

func TestStateOf(t *testing.T) {
	all := []Topic{
		topic("a", true),
		topic("b", false, "a"),
		topic("c", false, "b"),
	}
	awaiting := map[string]bool{"b": true}

	cases := []struct {
		id   string
		want TopicState
	}{
		{"a", StateCompleted},
		{"b", StateAwaitingVerification},
		{"c", StateLocked},
	}
	for _, tc := range cases {
		got := StateOf(all[Find(all, tc.id)], all, awaiting)
		if got != tc.want {
			t.Errorf("StateOf(%s) = %s, want %s", tc.id, got.Label(), tc.want.Label())
		}
	}

	// Without an in-flight attempt, b is simply unlocked.
	if got := StateOf(all[1], all, nil); got != StateUnlocked {
		t.Errorf("StateOf(b) without attempt = %s, want Unlocked", got.Label())
	}
}
