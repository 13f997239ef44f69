package reference

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createDataset(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ref.db")
	db, err := sqlx.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE manga (
		title TEXT NOT NULL,
		alt_titles TEXT,
		genres TEXT,
		authors TEXT,
		cover_url TEXT
	)`)
	require.NoError(t, err)

	rows := [][]any{
		{"斗罗大陆", `["Douluo Dalu","Soul Land"]`, `["热血","Fantasy"]`, `["唐家三少"]`, "https://img/1.jpg"},
		{" One Piece ", nil, "Action, Comedy", nil, nil},
		{"Third", "null", "[]", `[""]`, ""},
	}
	for _, r := range rows {
		_, err := db.Exec(`INSERT INTO manga (title, alt_titles, genres, authors, cover_url) VALUES (?, ?, ?, ?, ?)`, r...)
		require.NoError(t, err)
	}

	return path
}

func TestStore_Read(t *testing.T) {
	ctx := context.Background()
	store, err := Open(createDataset(t))
	require.NoError(t, err)
	defer store.Close()

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	first, err := store.Read(ctx, 0, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)

	assert.Equal(t, "斗罗大陆", first[0].Title)
	assert.Equal(t, []string{"Douluo Dalu", "Soul Land"}, first[0].AltTitles)
	assert.Equal(t, []string{"热血", "Fantasy"}, first[0].Genres)
	assert.Equal(t, []string{"唐家三少"}, first[0].Authors)
	assert.Equal(t, "https://img/1.jpg", first[0].CoverURL)

	assert.Equal(t, "One Piece", first[1].Title)
	assert.Equal(t, []string{"Action", "Comedy"}, first[1].Genres)
	assert.Empty(t, first[1].AltTitles)

	rest, err := store.Read(ctx, first[1].ID, 10)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "Third", rest[0].Title)
	assert.Empty(t, rest[0].AltTitles)
	assert.Empty(t, rest[0].Genres)
	assert.Empty(t, rest[0].Authors)
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.db"))
	assert.Error(t, err)
}
