package cloudsync

import (
	"context"
	"fmt"
	"os"

	"github.com/careercompass/compass/internal/store"
	"github.com/careercompass/compass/internal/userstate"
)

// Remote is the subset of the mirror the Persister needs. *Client
// satisfies it.
type Remote interface {
	Save(ctx context.Context, state userstate.UserState) error
	Delete(ctx context.Context, userID string) error
}

// Persister is a store.UserStateRepo that writes locally first and
// mirrors to the remote afterwards. Remote failures never fail the
// operation; they are reported as warnings. The demo user is never
// mirrored since its state is throwaway.
type Persister struct {
	local  store.UserStateRepo
	remote Remote
}

// NewPersister wraps a local repo with remote mirroring. A nil remote
// disables mirroring, leaving pure local behavior.
func NewPersister(local store.UserStateRepo, remote Remote) *Persister {
	return &Persister{local: local, remote: remote}
}

func (p *Persister) Load(ctx context.Context, userID string) (userstate.UserState, error) {
	return p.local.Load(ctx, userID)
}

func (p *Persister) Save(ctx context.Context, state userstate.UserState) error {
	if err := p.local.Save(ctx, state); err != nil {
		return err
	}

	if p.remote == nil || state.UserID == userstate.DemoUserID {
		return nil
	}
	if err := p.remote.Save(ctx, state); err != nil {
		fmt.Fprintf(os.Stderr, "warning: cloud sync failed: %v\n", err)
	}
	return nil
}

func (p *Persister) Delete(ctx context.Context, userID string) error {
	if err := p.local.Delete(ctx, userID); err != nil {
		return err
	}

	if p.remote == nil || userID == userstate.DemoUserID {
		return nil
	}
	if err := p.remote.Delete(ctx, userID); err != nil {
		fmt.Fprintf(os.Stderr, "warning: cloud sync delete failed: %v\n", err)
	}
	return nil
}
