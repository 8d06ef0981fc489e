package contacts

import (
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewAssignsVersion7ID(t *testing.T) {
	c, err := New("Bea", 30, "bea@example.com", now)
	require.NoError(t, err)

	id, err := uuid.Parse(c.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.True(t, c.Active)
}

func TestInsertAndAll(t *testing.T) {
	s := openStore(t)
	c, err := New("Bea", 30, "bea@example.com", now)
	require.NoError(t, err)
	c.Tags = []string{"a", "b"}

	id, err := s.Insert(c)
	require.NoError(t, err)
	assert.Positive(t, id)

	all, err := s.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, c.ID, all[0].ID)
	assert.Equal(t, []string{"a", "b"}, all[0].Tags)
	assert.True(t, now.Equal(all[0].Joined))
}

func TestInsertWithoutID(t *testing.T) {
	s := openStore(t)
	_, err := s.Insert(Contact{Name: "nobody"})
	assert.ErrorIs(t, err, ErrNoID)
}

func TestAllSkipsInvalidJSON(t *testing.T) {
	s := openStore(t)
	_, err := s.db.Exec("INSERT INTO contacts (uid, data) VALUES (?, ?)", "broken", "{not json")
	require.NoError(t, err)
	c, err := New("Al", 25, "", now)
	require.NoError(t, err)
	_, err = s.Insert(c)
	require.NoError(t, err)

	all, err := s.All()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Al", all[0].Name)
}

func TestSaveUpdatesInPlace(t *testing.T) {
	s := openStore(t)
	list, err := Samples(now)
	require.NoError(t, err)
	require.NoError(t, s.Save(list))

	list[1].Name = "Albert"
	list[0], list[1] = list[1], list[0]
	require.NoError(t, s.Save(list))

	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, len(list), n)

	all, err := s.All()
	require.NoError(t, err)
	assert.Equal(t, "Albert", all[0].Name)
	assert.Equal(t, "Bea", all[1].Name)
}

func TestInsertAppendsAfterSavedOrder(t *testing.T) {
	s := openStore(t)
	list, err := Samples(now)
	require.NoError(t, err)
	slices.Reverse(list)
	require.NoError(t, s.Save(list))

	extra, err := New("Eve", 22, "", now)
	require.NoError(t, err)
	_, err = s.Insert(extra)
	require.NoError(t, err)

	all, err := s.All()
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, list[0].ID, all[0].ID)
	assert.Equal(t, "Eve", all[4].Name)
}

func TestSaveRejectsMissingID(t *testing.T) {
	s := openStore(t)
	err := s.Save([]Contact{{Name: "x"}})
	assert.ErrorIs(t, err, ErrNoID)

	n, err := s.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSeedOnlyOnce(t *testing.T) {
	s := openStore(t)

	seeded, err := s.Seed(now)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = s.Seed(now)
	require.NoError(t, err)
	assert.False(t, seeded)

	all, err := s.All()
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "Bea", all[0].Name)
	assert.Equal(t, "Dmitri", all[3].Name)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.db")
	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Seed(now)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	n, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}
