package platform

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notebook/pkg/adapters/jsondb"
	"github.com/aretw0/notebook/pkg/core"
	"github.com/aretw0/notebook/pkg/format"
)

func TestNew_Backends(t *testing.T) {
	backends := map[string]string{
		BackendJSON:   "notes.json",
		BackendSQLite: "notes.db",
	}

	for backend, file := range backends {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			nb, err := New(filepath.Join(t.TempDir(), file), WithBackend(backend))
			require.NoError(t, err)
			defer nb.Close()

			require.NoError(t, nb.Add(ctx, "Books to Read", "Gang of Four, Clean Architecture", "books"))
			require.NoError(t, nb.Add(ctx, "History Books", "The Color of Law", "books"))

			out, err := nb.Search(ctx, "History")
			require.NoError(t, err)
			assert.Equal(t, "Title: History Books\nContent:\n\tThe Color of Law\nTags: books\n\n", out)

			out, err = nb.Search(ctx, "nonexistent-token-xyz")
			require.NoError(t, err)
			assert.Equal(t, "", out)
		})
	}
}

func TestNew_Format(t *testing.T) {
	nb, err := New(filepath.Join(t.TempDir(), "notes.json"), WithFormat(format.NameJSON))
	require.NoError(t, err)

	out, err := nb.Search(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}

func TestNew_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := New(filepath.Join(dir, "notes.json"), WithFormat("xml"))
	assert.ErrorContains(t, err, "unknown format")

	_, err = New(filepath.Join(dir, "notes.json"), WithBackend("s3"))
	assert.ErrorContains(t, err, "unknown backend")

	for _, backend := range []string{BackendJSON, BackendSQLite} {
		_, err = New(filepath.Join(dir, "missing"), WithBackend(backend), WithMustExist(true))
		assert.True(t, errors.Is(err, core.ErrStorageUnavailable), "%s: got %v", backend, err)
	}
}

func TestNew_InjectedDependencies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	store, err := jsondb.Open(jsondb.Config{Path: path, Table: "work"})
	require.NoError(t, err)

	nb, err := New("ignored", WithStore(store), WithPresenter(format.NewJSON()), WithBackend("s3"))
	require.NoError(t, err)

	state := nb.State().(core.NotebookState)
	assert.Equal(t, "jsondb", state.StoreType)
	assert.Equal(t, format.NameJSON, state.PresenterType)
	assert.True(t, state.Watchable)
}

func TestInit_Table(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	ctx := context.Background()

	work, err := Init(path, WithTable("work"))
	require.NoError(t, err)
	require.NoError(t, work.Add(ctx, "Standup", "daily"))

	home, err := Init(path)
	require.NoError(t, err)
	records, err := home.Search(ctx, "Standup")
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = work.Search(ctx, "Standup")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
