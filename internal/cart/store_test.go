package cart

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_OpenMissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")

	store, err := Open(path)

	require.NoError(t, err)
	assert.Empty(t, store.Items())
	assert.Zero(t, store.Total())
}

func TestStore_SavesOnEveryMutation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	store, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, store.Add(desk()))
	require.NoError(t, store.Add(lamp()))
	require.NoError(t, store.SetQuantity(lamp().ID, 3))

	// A fresh store over the same file sees the saved state.
	reloaded, err := Open(path)
	require.NoError(t, err)
	items := reloaded.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[1].Quantity)
	assert.InDelta(t, 499.90+3*45.50, reloaded.Total(), 0.001)
}

func TestStore_ClearPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	store, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, store.Add(desk()))
	require.NoError(t, store.Clear())

	reloaded, err := Open(path)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Items())
}

func TestStore_MigratesLegacyImageField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	legacy := `[{"productId":"11111111-1111-1111-1111-111111111111","name":"Walnut Desk","price":499.9,"quantity":2,"imageUrl":"https://img.example.com/desk.jpg"}]`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o600))

	store, err := Open(path)
	require.NoError(t, err)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "https://img.example.com/desk.jpg", items[0].MainImageURL)

	// The migration is written back, so the old key is gone from the file.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.NotContains(t, raw[0], "imageUrl")
	assert.Equal(t, "https://img.example.com/desk.jpg", raw[0]["mainImageUrl"])
}

func TestStore_CurrentFieldWinsOverLegacy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	stored := `[{"productId":"11111111-1111-1111-1111-111111111111","name":"Walnut Desk","price":499.9,"quantity":1,"mainImageUrl":"https://img.example.com/new.jpg","imageUrl":"https://img.example.com/old.jpg"}]`
	require.NoError(t, os.WriteFile(path, []byte(stored), 0o600))

	store, err := Open(path)
	require.NoError(t, err)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "https://img.example.com/new.jpg", items[0].MainImageURL)
}

func TestStore_CorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Open(path)

	require.Error(t, err)
}
