package stores

import (
	"context"
	"testing"

	"salonbook-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCreateThenList(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCatalogStore()

	svc := models.Service{Name: "Hair Cut", Prices: "150000", CreatorName: "Anna"}
	require.NoError(t, store.Create(ctx, &svc))
	assert.NotEqual(t, uuid.Nil, svc.ID)

	services, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Hair Cut", services[0].Name)
	assert.Equal(t, "150000", services[0].Prices)
}

func TestCatalogUpdateByID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCatalogStore()

	a := models.Service{Name: "Manicure", Prices: "100000"}
	b := models.Service{Name: "Manicure", Prices: "120000"}
	require.NoError(t, store.Create(ctx, &a))
	require.NoError(t, store.Create(ctx, &b))

	err := store.Update(ctx, a.ID, ServiceUpdate{Name: "Gel Manicure", Prices: "180000"})
	require.NoError(t, err)

	// Id-keyed mutation is single-record even with duplicate names.
	updated, err := store.ByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gel Manicure", updated.Name)

	other, err := store.ByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Manicure", other.Name)
}

// Regression coverage for the legacy surface: two services sharing one name
// are both rewritten by a name-keyed update. Broadcast is the contract here,
// not a bug to fix silently.
func TestCatalogUpdateByNameBroadcasts(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCatalogStore()

	a := models.Service{Name: "Spa", Prices: "300000"}
	b := models.Service{Name: "Spa", Prices: "350000"}
	c := models.Service{Name: "Massage", Prices: "400000"}
	require.NoError(t, store.Create(ctx, &a))
	require.NoError(t, store.Create(ctx, &b))
	require.NoError(t, store.Create(ctx, &c))

	affected, err := store.UpdateByName(ctx, "Spa", ServiceUpdate{Name: "Spa Deluxe", Prices: "500000"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	services, err := store.List(ctx)
	require.NoError(t, err)

	var deluxe, massage int
	for _, svc := range services {
		switch svc.Name {
		case "Spa Deluxe":
			deluxe++
			assert.Equal(t, "500000", svc.Prices)
		case "Massage":
			massage++
		}
	}
	assert.Equal(t, 2, deluxe)
	assert.Equal(t, 1, massage)
}

func TestCatalogDeleteByNameBroadcasts(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCatalogStore()

	a := models.Service{Name: "Spa", Prices: "300000"}
	b := models.Service{Name: "Spa", Prices: "350000"}
	require.NoError(t, store.Create(ctx, &a))
	require.NoError(t, store.Create(ctx, &b))

	affected, err := store.DeleteByName(ctx, "Spa")
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	services, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, services)
}

func TestCatalogByNameZeroMatchesIsNotAnError(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCatalogStore()

	affected, err := store.UpdateByName(ctx, "Nothing", ServiceUpdate{Name: "X", Prices: "1"})
	require.NoError(t, err)
	assert.Zero(t, affected)

	affected, err = store.DeleteByName(ctx, "Nothing")
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestCatalogNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCatalogStore()

	_, err := store.ByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.Update(ctx, uuid.New(), ServiceUpdate{Name: "X", Prices: "1"}), ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, uuid.New()), ErrNotFound)
}

func TestCatalogSearch(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCatalogStore()

	require.NoError(t, store.Create(ctx, &models.Service{Name: "Hair Cut", Prices: "150000"}))
	require.NoError(t, store.Create(ctx, &models.Service{Name: "Hair Color", Prices: "450000"}))
	require.NoError(t, store.Create(ctx, &models.Service{Name: "Manicure", Prices: "100000"}))

	matched, err := store.Search(ctx, "hair")
	require.NoError(t, err)
	assert.Len(t, matched, 2)

	matched, err = store.Search(ctx, "pedicure")
	require.NoError(t, err)
	assert.Empty(t, matched)
}
