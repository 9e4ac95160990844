package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/langex"
	"github.com/fwojciec/langex/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPerson(t *testing.T, name, city, country string, speaks, looksFor []string) *langex.Person {
	t.Helper()
	p, err := langex.NewPerson(name, city, country, speaks, looksFor, "/profile/"+name)
	require.NoError(t, err)
	return p
}

func TestPersonStore_SaveRun(t *testing.T) {
	t.Parallel()

	t.Run("assigns run ID and round trips persons in order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewPersonStore(db)
		ctx := context.Background()

		persons := []*langex.Person{
			newPerson(t, "Anna", "Berlin", "Germany", []string{"German", "English"}, []string{"Spanish"}),
			newPerson(t, "Bruno", "", "Brazil", []string{"Portuguese"}, nil),
		}
		run := &langex.Run{BaseURL: langex.DefaultBaseURL, Begin: 1, End: 3, Pages: 2, Stop: langex.StopRangeExhausted}

		err := store.SaveRun(ctx, run, persons)
		require.NoError(t, err)
		assert.NotEmpty(t, run.ID)
		assert.False(t, run.StartedAt.IsZero())

		found, err := store.FindPersons(ctx, run.ID)
		require.NoError(t, err)
		assert.Equal(t, persons, found)
	})

	t.Run("stores absent city as NULL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewPersonStore(db)
		ctx := context.Background()

		run := &langex.Run{BaseURL: langex.DefaultBaseURL, Begin: 1}
		require.NoError(t, store.SaveRun(ctx, run, []*langex.Person{newPerson(t, "Bruno", "", "Brazil", nil, nil)}))

		var nulls int
		err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM persons WHERE city IS NULL AND run_id = ?", run.ID).Scan(&nulls)
		require.NoError(t, err)
		assert.Equal(t, 1, nulls)
	})

	t.Run("appends runs without merging identical records", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewPersonStore(db)
		ctx := context.Background()
		anna := newPerson(t, "Anna", "Berlin", "Germany", nil, nil)

		first := &langex.Run{BaseURL: langex.DefaultBaseURL, Begin: 1}
		second := &langex.Run{BaseURL: langex.DefaultBaseURL, Begin: 1}
		require.NoError(t, store.SaveRun(ctx, first, []*langex.Person{anna}))
		require.NoError(t, store.SaveRun(ctx, second, []*langex.Person{anna}))
		assert.NotEqual(t, first.ID, second.ID)

		hash, err := sqlite.RecordHash(anna)
		require.NoError(t, err)

		var count int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM persons WHERE record_hash = ?", hash).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("saves a run without persons", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewPersonStore(db)
		ctx := context.Background()

		run := &langex.Run{BaseURL: langex.DefaultBaseURL, Begin: 1, End: 1, Stop: langex.StopRangeExhausted}
		require.NoError(t, store.SaveRun(ctx, run, nil))

		found, err := store.FindPersons(ctx, run.ID)
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("rejects invalid person without writing the run", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewPersonStore(db)
		ctx := context.Background()

		err := store.SaveRun(ctx, &langex.Run{BaseURL: langex.DefaultBaseURL, Begin: 1}, []*langex.Person{{Name: "Anna"}})
		require.Error(t, err)
		assert.Equal(t, langex.EINVALID, langex.ErrorCode(err))

		var runs int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM runs").Scan(&runs))
		assert.Equal(t, 0, runs)
	})
}

func TestPersonStore_FindPersons(t *testing.T) {
	t.Parallel()

	t.Run("returns not found for unknown run", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		store := sqlite.NewPersonStore(db)

		_, err := store.FindPersons(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, langex.ENOTFOUND, langex.ErrorCode(err))
	})
}

func TestRecordHash(t *testing.T) {
	t.Parallel()

	a, err := sqlite.RecordHash(newPerson(t, "Anna", "Berlin", "Germany", nil, nil))
	require.NoError(t, err)
	b, err := sqlite.RecordHash(newPerson(t, "Anna", "Berlin", "Germany", nil, nil))
	require.NoError(t, err)
	c, err := sqlite.RecordHash(newPerson(t, "Anna", "", "Germany", nil, nil))
	require.NoError(t, err)

	assert.Len(t, a, 16)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
