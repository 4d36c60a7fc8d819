package jsonl_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stevenrichter16/mypoem"
	"github.com/stevenrichter16/mypoem/jsonl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Load(t *testing.T) {
	t.Parallel()

	t.Run("loads valid revisions file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "history.jsonl")
		content := `{"id":"r1","seq":1,"content":"roses are red\n","word_count":3,"line_count":1,"change_kind":"initial","created_at":"2025-01-15T10:30:00Z"}
{"id":"r2","seq":2,"content":"roses are dead\n","word_count":3,"line_count":1,"change_kind":"minor","created_at":"2025-01-15T10:31:00Z"}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		store := jsonl.NewStore()
		revisions, err := store.Load(path)

		require.NoError(t, err)
		assert.Len(t, revisions, 2)
		assert.Equal(t, "r1", revisions[0].ID)
		assert.Equal(t, 1, revisions[0].Seq)
		assert.Equal(t, "roses are red\n", revisions[0].Content)
		assert.Equal(t, mypoem.ChangeInitial, revisions[0].ChangeKind)
		assert.Equal(t, "r2", revisions[1].ID)
		assert.Equal(t, mypoem.ChangeMinor, revisions[1].ChangeKind)
	})

	t.Run("returns empty history for non-existent file", func(t *testing.T) {
		t.Parallel()

		store := jsonl.NewStore()
		revisions, err := store.Load("/nonexistent/history.jsonl")

		require.NoError(t, err)
		assert.Empty(t, revisions)
	})

	t.Run("skips blank lines", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "history.jsonl")
		content := "{\"id\":\"r1\",\"seq\":1}\n\n{\"id\":\"r2\",\"seq\":2}\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		store := jsonl.NewStore()
		revisions, err := store.Load(path)

		require.NoError(t, err)
		assert.Len(t, revisions, 2)
	})

	t.Run("returns error for malformed JSON", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "bad.jsonl")
		content := `{"id":"r1","seq":1}
not valid json`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		store := jsonl.NewStore()
		_, err := store.Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})
}

func TestStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("round-trips revisions through disk", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "history.jsonl")

		created := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
		revisions := []mypoem.Revision{
			mypoem.NewRevision("r1", 1, "the moon rises\n", created),
			mypoem.NewRevision("r2", 2, "the pale moon rises\n", created.Add(time.Minute)),
		}
		revisions[0].ChangeKind = mypoem.ChangeInitial
		revisions[1].ChangeKind = mypoem.ChangeMinor

		store := jsonl.NewStore()
		require.NoError(t, store.Save(path, revisions))

		loaded, err := store.Load(path)
		require.NoError(t, err)
		assert.Equal(t, revisions, loaded)
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "nested", "deep", "history.jsonl")

		store := jsonl.NewStore()
		require.NoError(t, store.Save(path, []mypoem.Revision{{ID: "r1", Seq: 1}}))

		_, err := os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "history.jsonl")

		store := jsonl.NewStore()
		require.NoError(t, store.Save(path, []mypoem.Revision{{ID: "r1", Seq: 1}, {ID: "r2", Seq: 2}}))
		require.NoError(t, store.Save(path, []mypoem.Revision{{ID: "r1", Seq: 1}}))

		loaded, err := store.Load(path)
		require.NoError(t, err)
		assert.Len(t, loaded, 1)
	})
}
