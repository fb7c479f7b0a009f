package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"marketplace-bff/internal/location"
	"marketplace-bff/internal/models"
	"marketplace-bff/internal/search"
	"marketplace-bff/internal/storage"
)

// Persisted keys, one value each per session.
const (
	KeyUser     = "user"
	KeyTokens   = "tokens"
	KeyTheme    = "theme"
	KeyUserView = "userView"
	KeyLocation = "location"
	KeyFilters  = "filters"
)

var allKeys = []string{KeyUser, KeyTokens, KeyTheme, KeyUserView, KeyLocation, KeyFilters}

type savedFilters struct {
	Contractors *search.Filters `json:"contractors,omitempty"`
	Jobs        *search.Filters `json:"jobs,omitempty"`
}

// Store keeps session State in a KVStore. Tokens go through the sealed store.
// Dispatches for the same session are serialized.
type Store struct {
	kv     storage.KVStore
	sealed storage.KVStore
	ttl    time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore builds a Store. sealed should encrypt at rest; kv may be the same backend unwrapped.
func NewStore(kv, sealed storage.KVStore, ttl time.Duration) *Store {
	return &Store{kv: kv, sealed: sealed, ttl: ttl, locks: make(map[string]*sync.Mutex)}
}

func (s *Store) lock(sessionID string) func() {
	s.mu.Lock()
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[sessionID] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}

func key(sessionID, name string) string {
	return "session:" + sessionID + ":" + name
}

// Load rebuilds the state for sessionID. Missing keys yield zero values.
func (s *Store) Load(ctx context.Context, sessionID string) (State, error) {
	var st State

	var u models.User
	ok, err := s.getJSON(ctx, s.kv, key(sessionID, KeyUser), &u)
	if err != nil {
		return State{}, err
	}
	if ok {
		st.User = &u
	}

	if _, err := s.getJSON(ctx, s.sealed, key(sessionID, KeyTokens), &st.Tokens); err != nil {
		if !errors.Is(err, storage.ErrTampered) {
			return State{}, err
		}
		// unreadable tokens mean the user has to log in again
		log.Printf("Session Load: discarding tokens for %s: %v", sessionID, err)
		st.Tokens = Tokens{}
	}

	if _, err := s.getJSON(ctx, s.kv, key(sessionID, KeyTheme), &st.Theme); err != nil {
		return State{}, err
	}
	if _, err := s.getJSON(ctx, s.kv, key(sessionID, KeyUserView), &st.View); err != nil {
		return State{}, err
	}
	var loc location.State
	if _, err := s.getJSON(ctx, s.kv, key(sessionID, KeyLocation), &loc); err != nil {
		return State{}, err
	}
	st.Location = loc

	var f savedFilters
	if _, err := s.getJSON(ctx, s.kv, key(sessionID, KeyFilters), &f); err != nil {
		return State{}, err
	}
	st.ContractorFilters, st.JobFilters = f.Contractors, f.Jobs

	return st, nil
}

// Dispatch loads the state, applies a, persists the result and returns it.
func (s *Store) Dispatch(ctx context.Context, sessionID string, a Action) (State, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	current, err := s.Load(ctx, sessionID)
	if err != nil {
		return State{}, err
	}
	next := Reduce(current, a)

	if _, ok := a.(Logout); ok {
		if err := s.Clear(ctx, sessionID); err != nil {
			return State{}, err
		}
		if next.Theme != "" {
			if err := s.setJSON(ctx, s.kv, key(sessionID, KeyTheme), next.Theme); err != nil {
				return State{}, err
			}
		}
		return next, nil
	}

	if err := s.save(ctx, sessionID, next); err != nil {
		return State{}, err
	}
	return next, nil
}

// Clear removes every persisted key for sessionID.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	keys := make([]string, 0, len(allKeys))
	for _, k := range allKeys {
		keys = append(keys, key(sessionID, k))
	}
	if err := s.kv.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	if err := s.sealed.Delete(ctx, key(sessionID, KeyTokens)); err != nil {
		return fmt.Errorf("failed to clear session tokens: %w", err)
	}
	return nil
}

func (s *Store) save(ctx context.Context, sessionID string, st State) error {
	if st.User != nil {
		if err := s.setJSON(ctx, s.kv, key(sessionID, KeyUser), st.User); err != nil {
			return err
		}
	}
	if st.Tokens.Access != "" {
		if err := s.setJSON(ctx, s.sealed, key(sessionID, KeyTokens), st.Tokens); err != nil {
			return err
		}
	}
	if err := s.setJSON(ctx, s.kv, key(sessionID, KeyTheme), st.Theme); err != nil {
		return err
	}
	if err := s.setJSON(ctx, s.kv, key(sessionID, KeyUserView), st.View); err != nil {
		return err
	}
	if err := s.setJSON(ctx, s.kv, key(sessionID, KeyLocation), st.Location); err != nil {
		return err
	}
	return s.setJSON(ctx, s.kv, key(sessionID, KeyFilters), savedFilters{
		Contractors: st.ContractorFilters,
		Jobs:        st.JobFilters,
	})
}

func (s *Store) getJSON(ctx context.Context, kv storage.KVStore, k string, dst any) (bool, error) {
	raw, err := kv.Get(ctx, k)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("failed to decode session key %s: %w", k, err)
	}
	return true, nil
}

func (s *Store) setJSON(ctx context.Context, kv storage.KVStore, k string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode session key %s: %w", k, err)
	}
	if err := kv.Set(ctx, k, raw, s.ttl); err != nil {
		return fmt.Errorf("failed to save session key %s: %w", k, err)
	}
	return nil
}
