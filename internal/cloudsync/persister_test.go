package cloudsync

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/careercompass/compass/internal/store"
	"github.com/careercompass/compass/internal/userstate"
)

type fakeLocal struct {
	states map[string]userstate.UserState
	err    error
}

func newFakeLocal() *fakeLocal {
	return &fakeLocal{states: make(map[string]userstate.UserState)}
}

func (f *fakeLocal) Load(_ context.Context, userID string) (userstate.UserState, error) {
	if f.err != nil {
		return userstate.UserState{}, f.err
	}
	s, ok := f.states[userID]
	if !ok {
		return userstate.UserState{}, store.ErrNotFound
	}
	return s, nil
}

func (f *fakeLocal) Save(_ context.Context, state userstate.UserState) error {
	if f.err != nil {
		return f.err
	}
	f.states[state.UserID] = state
	return nil
}

func (f *fakeLocal) Delete(_ context.Context, userID string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.states, userID)
	return nil
}

type fakeRemote struct {
	saves   []string
	deletes []string
	err     error
}

func (f *fakeRemote) Save(_ context.Context, state userstate.UserState) error {
	if f.err != nil {
		return f.err
	}
	f.saves = append(f.saves, state.UserID)
	return nil
}

func (f *fakeRemote) Delete(_ context.Context, userID string) error {
	if f.err != nil {
		return f.err
	}
	f.deletes = append(f.deletes, userID)
	return nil
}

var testNow = time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

func TestPersister_SaveMirrorsToRemote(t *testing.T) {
	local := newFakeLocal()
	remote := &fakeRemote{}
	p := NewPersister(local, remote)

	state := userstate.NewState("u1", userstate.Profile{}, testNow)
	if err := p.Save(context.Background(), state); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, ok := local.states["u1"]; !ok {
		t.Error("state not saved locally")
	}
	if len(remote.saves) != 1 || remote.saves[0] != "u1" {
		t.Errorf("remote saves = %v, want [u1]", remote.saves)
	}
}

func TestPersister_RemoteFailureDoesNotFailSave(t *testing.T) {
	local := newFakeLocal()
	remote := &fakeRemote{err: errors.New("network down")}
	p := NewPersister(local, remote)

	state := userstate.NewState("u1", userstate.Profile{}, testNow)
	if err := p.Save(context.Background(), state); err != nil {
		t.Fatalf("save should succeed despite remote failure: %v", err)
	}
	if _, ok := local.states["u1"]; !ok {
		t.Error("state not saved locally")
	}
}

func TestPersister_LocalFailureFailsSave(t *testing.T) {
	local := newFakeLocal()
	local.err = errors.New("disk full")
	remote := &fakeRemote{}
	p := NewPersister(local, remote)

	state := userstate.NewState("u1", userstate.Profile{}, testNow)
	if err := p.Save(context.Background(), state); err == nil {
		t.Fatal("expected local failure to propagate")
	}
	if len(remote.saves) != 0 {
		t.Error("remote should not be written when local save fails")
	}
}

func TestPersister_DemoUserNeverMirrored(t *testing.T) {
	local := newFakeLocal()
	remote := &fakeRemote{}
	p := NewPersister(local, remote)

	state := userstate.DemoState(testNow)
	if err := p.Save(context.Background(), state); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := p.Delete(context.Background(), userstate.DemoUserID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if len(remote.saves) != 0 || len(remote.deletes) != 0 {
		t.Errorf("demo user hit the remote: saves=%v deletes=%v", remote.saves, remote.deletes)
	}
}

func TestPersister_NilRemoteIsLocalOnly(t *testing.T) {
	local := newFakeLocal()
	p := NewPersister(local, nil)

	state := userstate.NewState("u1", userstate.Profile{}, testNow)
	if err := p.Save(context.Background(), state); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := p.Load(context.Background(), "u1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.UserID != "u1" {
		t.Errorf("loaded user = %q", loaded.UserID)
	}
	if err := p.Delete(context.Background(), "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestPersister_DeleteMirrorsToRemote(t *testing.T) {
	local := newFakeLocal()
	remote := &fakeRemote{}
	p := NewPersister(local, remote)

	state := userstate.NewState("u1", userstate.Profile{}, testNow)
	if err := p.Save(context.Background(), state); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := p.Delete(context.Background(), "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(remote.deletes) != 1 || remote.deletes[0] != "u1" {
		t.Errorf("remote deletes = %v, want [u1]", remote.deletes)
	}
}
