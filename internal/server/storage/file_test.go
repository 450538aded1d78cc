package storage

import (
	"testing"

	"github.com/avoronov84/domainkeeper/internal/common"
	"github.com/stretchr/testify/require"
)

func TestBlobStore_LoadBeforeAnySave(t *testing.T) {
	store, err := NewBlobStore(t.TempDir())
	require.NoError(t, err)

	_, _, err = store.Load()
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestBlobStore_SaveLoadRoundTrip(t *testing.T) {
	store, err := NewBlobStore(t.TempDir())
	require.NoError(t, err)

	payload := []byte("compressed settings payload")
	revision, err := store.Save(payload)
	require.NoError(t, err)
	require.NotEmpty(t, revision)

	got, gotRevision, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, payload, got)
	require.Equal(t, revision, gotRevision)
}

func TestBlobStore_SaveReplacesPayloadAndRevision(t *testing.T) {
	store, err := NewBlobStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save([]byte("first"))
	require.NoError(t, err)

	second, err := store.Save([]byte("second"))
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	got, revision, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, []byte("second"), got)
	require.Equal(t, second, revision)
}
