package roadmap

import (
	"testing"
	"time"
)

func TestReconcile_StripsPrereqsOfDeletedTopics(t *testing.T) {
	old := []Topic{
		topic("html", true),
		topic("css", false, "html"),
		topic("js", false, "css"),
	}
	// The edit drops css; js still claims it as a prerequisite.
	edited := []Topic{
		topic("html", true),
		topic("js", false, "css", "html"),
	}

	out := Reconcile(old, edited, PreserveExisting)
	js := out[Find(out, "js")]
	if len(js.Prerequisites) != 1 || js.Prerequisites[0] != "html" {
		t.Errorf("deleted prerequisite not stripped: %v", js.Prerequisites)
	}
	if err := Validate(out); err != nil {
		t.Errorf("reconciled roadmap should validate: %v", err)
	}
}

func TestReconcile_PreserveExistingKeepsOldCompletion(t *testing.T) {
	done := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	old := []Topic{{ID: "a", Completed: true, CompletedAt: &done}}
	edited := []Topic{{ID: "a", Completed: false}}

	out := Reconcile(old, edited, PreserveExisting)
	if !out[0].Completed {
		t.Error("PreserveExisting should keep the old completed flag")
	}
	if out[0].CompletedAt == nil || !out[0].CompletedAt.Equal(done) {
		t.Error("completedAt should travel with the preserved flag")
	}
}

func TestReconcile_TrustIncomingTakesPayloadFlags(t *testing.T) {
	old := []Topic{topic("a", true)}
	edited := []Topic{topic("a", false)}

	out := Reconcile(old, edited, TrustIncoming)
	if out[0].Completed {
		t.Error("TrustIncoming should take the payload's completed flag")
	}
}

func TestReconcile_NewTopicsKeepPayloadState(t *testing.T) {
	old := []Topic{topic("a", true)}
	edited := []Topic{topic("a", true), topic("b", false, "a")}

	out := Reconcile(old, edited, PreserveExisting)
	if len(out) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(out))
	}
	b := out[Find(out, "b")]
	if b.Completed {
		t.Error("new topic should keep its payload completion state")
	}
	if len(b.Prerequisites) != 1 {
		t.Error("prerequisite to a surviving topic should be kept")
	}
}

func TestReconcile_DoesNotMutateInputs(t *testing.T) {
	old := []Topic{topic("a", true)}
	edited := []Topic{topic("b", false, "a", "ghost")}

	_ = Reconcile(old, edited, PreserveExisting)
	if len(edited[0].Prerequisites) != 2 {
		t.Error("Reconcile must not mutate the edited slice")
	}
}
