package staticdata

import (
	"testing"

	"titoubarz-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIntegrity(t *testing.T) {
	repo := NewWilayaRepository()
	all := repo.GetAll()

	assert.Len(t, all, 58)

	ids := map[string]bool{}
	for _, w := range all {
		assert.NotEmpty(t, w.ID)
		assert.NotEmpty(t, w.Name)
		assert.NotEmpty(t, w.Communes, "wilaya %s has no communes", w.ID)
		assert.GreaterOrEqual(t, w.DeliveryPrice, 0, "wilaya %s", w.ID)
		assert.False(t, ids[w.ID], "duplicate wilaya id %s", w.ID)
		ids[w.ID] = true
	}
}

func TestGetByIDRoundTrip(t *testing.T) {
	repo := NewWilayaRepository()

	for _, w := range repo.GetAll() {
		got, err := repo.GetByID(w.ID)
		require.NoError(t, err)
		assert.Equal(t, w, *got)
	}
}

func TestGetByID(t *testing.T) {
	repo := NewWilayaRepository()

	w, err := repo.GetByID("16")
	require.NoError(t, err)
	assert.Equal(t, "Alger", w.Name)
	assert.Equal(t, 450, w.DeliveryPrice)
	assert.Contains(t, w.Communes, "Alger Centre")

	_, err = repo.GetByID("99")
	assert.ErrorIs(t, err, domain.ErrWilayaNotFound)

	_, err = repo.GetByID("")
	assert.ErrorIs(t, err, domain.ErrWilayaNotFound)
}

func TestGetAllKeepsOrder(t *testing.T) {
	repo := NewWilayaRepository()
	all := repo.GetAll()

	require.NotEmpty(t, all)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "16", all[15].ID)
	assert.Equal(t, "58", all[57].ID)
}
