package secure_test

import (
	"context"
	"testing"

	"marketplace-bff/internal/storage"
	"marketplace-bff/internal/storage/memory"
	"marketplace-bff/internal/storage/secure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SealsAtRest(t *testing.T) {
	ctx := context.Background()
	box, err := secure.NewBox("test-secret")
	require.NoError(t, err)

	inner := memory.NewKV()
	store := secure.NewStore(inner, box)

	require.NoError(t, store.Set(ctx, "tokens", []byte(`{"access":"abc"}`), 0))
	assert.NotContains(t, string(inner.Raw("tokens")), "abc")

	got, err := store.Get(ctx, "tokens")
	require.NoError(t, err)
	assert.Equal(t, `{"access":"abc"}`, string(got))
}

func TestStore_RejectsForeignKey(t *testing.T) {
	ctx := context.Background()
	inner := memory.NewKV()

	a, _ := secure.NewBox("one")
	b, _ := secure.NewBox("two")
	require.NoError(t, secure.NewStore(inner, a).Set(ctx, "k", []byte("v"), 0))

	_, err := secure.NewStore(inner, b).Get(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrTampered)
}

func TestStore_MissingKey(t *testing.T) {
	box, _ := secure.NewBox("s")
	_, err := secure.NewStore(memory.NewKV(), box).Get(context.Background(), "nope")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestNewBox_EmptySecret(t *testing.T) {
	_, err := secure.NewBox("")
	assert.Error(t, err)
}
