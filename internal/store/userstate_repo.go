package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/careercompass/compass/ent"
	entuserstate "github.com/careercompass/compass/ent/userstate"
	"github.com/careercompass/compass/internal/userstate"
)

// userStateRepo implements UserStateRepo backed by ent. The aggregate is
// serialized to JSON and stored in a single document column, so schema
// migrations are only needed when the row shape changes, not the state
// shape.
type userStateRepo struct {
	client *ent.Client
}

func (r *userStateRepo) Load(ctx context.Context, userID string) (userstate.UserState, error) {
	row, err := r.client.UserState.Query().
		Where(entuserstate.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return userstate.UserState{}, ErrNotFound
		}
		return userstate.UserState{}, fmt.Errorf("query user state: %w", err)
	}

	return decodeState(row.Data)
}

func (r *userStateRepo) Save(ctx context.Context, state userstate.UserState) error {
	data, err := encodeState(state)
	if err != nil {
		return err
	}

	existing, err := r.client.UserState.Query().
		Where(entuserstate.UserID(state.UserID)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query user state: %w", err)
		}
		_, err = r.client.UserState.Create().
			SetUserID(state.UserID).
			SetData(data).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create user state: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update user state: %w", err)
	}
	return nil
}

func (r *userStateRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.client.UserState.Delete().
		Where(entuserstate.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete user state: %w", err)
	}
	return nil
}

// encodeState round-trips the aggregate through JSON into the generic
// map the document column stores.
func encodeState(state userstate.UserState) (map[string]interface{}, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("marshal user state: %w", err)
	}
	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode user state document: %w", err)
	}
	return data, nil
}

func decodeState(data map[string]interface{}) (userstate.UserState, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return userstate.UserState{}, fmt.Errorf("marshal user state document: %w", err)
	}
	var state userstate.UserState
	if err := json.Unmarshal(raw, &state); err != nil {
		return userstate.UserState{}, fmt.Errorf("unmarshal user state: %w", err)
	}
	if err := userstate.Validate(state); err != nil {
		return userstate.UserState{}, fmt.Errorf("stored user state invalid: %w", err)
	}
	return state, nil
}
