package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/careercompass/compass/internal/userstate"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestUserStateSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserStateRepo()
	ctx := context.Background()

	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	state := userstate.DemoState(now)

	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := repo.Load(ctx, state.UserID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.UserID != state.UserID {
		t.Errorf("user ID = %q, want %q", loaded.UserID, state.UserID)
	}
	if loaded.Skills != state.Skills {
		t.Errorf("skills = %+v, want %+v", loaded.Skills, state.Skills)
	}
	if len(loaded.Roadmap.Topics) != len(state.Roadmap.Topics) {
		t.Errorf("topics = %d, want %d", len(loaded.Roadmap.Topics), len(state.Roadmap.Topics))
	}
	if len(loaded.Projects) != len(state.Projects) {
		t.Errorf("projects = %d, want %d", len(loaded.Projects), len(state.Projects))
	}
	if len(loaded.MockTests) != len(state.MockTests) {
		t.Errorf("mock tests = %d, want %d", len(loaded.MockTests), len(state.MockTests))
	}
}

func TestUserStateSaveOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserStateRepo()
	ctx := context.Background()

	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	state := userstate.NewState("u1", userstate.Profile{Name: "Alice"}, now)

	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}

	state.Skills.DSA = 77
	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, err := repo.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Skills.DSA != 77 {
		t.Errorf("DSA = %d, want 77 after overwrite", loaded.Skills.DSA)
	}
}

func TestUserStateLoadMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserStateRepo()

	_, err := repo.Load(context.Background(), "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestUserStateDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserStateRepo()
	ctx := context.Background()

	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	if err := repo.Save(ctx, userstate.NewState("u1", userstate.Profile{}, now)); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.Delete(ctx, "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Load(ctx, "u1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got: %v", err)
	}

	// Deleting a missing user is not an error.
	if err := repo.Delete(ctx, "u1"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"roadmap-gen", "roadmap-edit", "roadmap-gen"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      purpose,
			InputTokens:  100 * (i + 1),
			OutputTokens: 50,
			LatencyMs:    20,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3", len(events))
	}
	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("events not newest-first: %d then %d", events[0].Sequence, events[1].Sequence)
	}

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "roadmap-gen"})
	if err != nil {
		t.Fatalf("filtered query: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("roadmap-gen events = %d, want 2", len(filtered))
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("limited query: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited events = %d, want 1", len(limited))
	}
}

func TestLLMEventGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "test-gen",
		Success:      true,
		RequestBody:  "[user]\ngenerate a test\n",
		ResponseBody: `{"questions":[]}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event")
	}
	if e.RequestBody == "" || e.ResponseBody == "" {
		t.Errorf("bodies not captured: %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "roadmap-gen", InputTokens: 100, OutputTokens: 200, LatencyMs: 10, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "roadmap-gen", InputTokens: 300, OutputTokens: 400, LatencyMs: 30, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "test-gen", InputTokens: 50, OutputTokens: 60, LatencyMs: 20, Success: true},
	}
	for i, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	// Sorted alphabetically: roadmap-gen then test-gen.
	if byPurpose[0].Purpose != "roadmap-gen" || byPurpose[0].Calls != 2 {
		t.Errorf("first purpose = %+v", byPurpose[0])
	}
	if byPurpose[0].InputTokens != 400 || byPurpose[0].OutputTokens != 600 {
		t.Errorf("roadmap-gen tokens = %+v", byPurpose[0])
	}
	if byPurpose[0].AvgLatencyMs != 20 {
		t.Errorf("avg latency = %d, want 20", byPurpose[0].AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 {
		t.Fatalf("models = %d, want 1", len(byModel))
	}
	if byModel[0].Calls != 3 || byModel[0].InputTokens != 450 {
		t.Errorf("model usage = %+v", byModel[0])
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq <= prev {
			t.Errorf("seq %d not increasing after %d", seq, prev)
		}
		prev = seq
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"user_states", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
