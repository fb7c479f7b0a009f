package session_test

import (
	"context"
	"testing"
	"time"

	"marketplace-bff/internal/models"
	"marketplace-bff/internal/search"
	"marketplace-bff/internal/session"
	"marketplace-bff/internal/storage/memory"
	"marketplace-bff/internal/storage/secure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*session.Store, *memory.KV) {
	t.Helper()
	kv := memory.NewKV()
	box, err := secure.NewBox("test-secret")
	require.NoError(t, err)
	return session.NewStore(kv, secure.NewStore(kv, box), time.Hour), kv
}

func TestStore_DispatchPersists(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	_, err := store.Dispatch(ctx, "s1", session.Login{User: contractor(), Tokens: session.Tokens{Access: "tok", Refresh: "ref"}})
	require.NoError(t, err)
	_, err = store.Dispatch(ctx, "s1", session.SetFilters{Kind: search.KindContractors, Filters: search.Filters{Radius: 25}})
	require.NoError(t, err)

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, loaded.User)
	assert.Equal(t, "Sam", loaded.User.Name)
	assert.Equal(t, "tok", loaded.Tokens.Access)
	assert.Equal(t, models.UserViewContractor, loaded.View)
	require.NotNil(t, loaded.ContractorFilters)
	assert.Equal(t, 25.0, loaded.ContractorFilters.Radius)

	other, err := store.Load(ctx, "s2")
	require.NoError(t, err)
	assert.False(t, other.LoggedIn())
}

func TestStore_TokensAreSealed(t *testing.T) {
	ctx := context.Background()
	store, kv := newStore(t)

	_, err := store.Dispatch(ctx, "s1", session.Login{User: client(), Tokens: session.Tokens{Access: "plain-token"}})
	require.NoError(t, err)

	raw := kv.Raw("session:s1:tokens")
	require.NotEmpty(t, raw)
	assert.NotContains(t, string(raw), "plain-token")
}

func TestStore_LogoutClearsKeys(t *testing.T) {
	ctx := context.Background()
	store, kv := newStore(t)

	_, err := store.Dispatch(ctx, "s1", session.SetTheme{Theme: "dark"})
	require.NoError(t, err)
	_, err = store.Dispatch(ctx, "s1", session.Login{User: client(), Tokens: session.Tokens{Access: "a"}})
	require.NoError(t, err)

	out, err := store.Dispatch(ctx, "s1", session.Logout{})
	require.NoError(t, err)
	assert.Equal(t, "dark", out.Theme)
	assert.Nil(t, kv.Raw("session:s1:user"))
	assert.Nil(t, kv.Raw("session:s1:tokens"))

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, loaded.LoggedIn())
	assert.Equal(t, "dark", loaded.Theme)
}

func TestStore_TamperedTokensAreDropped(t *testing.T) {
	ctx := context.Background()
	store, kv := newStore(t)

	_, err := store.Dispatch(ctx, "s1", session.Login{User: client(), Tokens: session.Tokens{Access: "a"}})
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "session:s1:tokens", []byte("garbage"), 0))

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, loaded.Tokens.Access)
	assert.NotNil(t, loaded.User)
}
