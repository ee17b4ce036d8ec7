package usecase

import (
	"math"
	"testing"
	"time"

	"titoubarz-backend/internal/domain"
	"titoubarz-backend/internal/infrastructure/cache"
	"titoubarz-backend/internal/repository/staticdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeliveryUC(t *testing.T) *DeliveryUsecase {
	t.Helper()
	memCache := cache.NewMemoryCache(time.Minute, time.Minute)
	return NewDeliveryUsecase(staticdata.NewWilayaRepository(), memCache, time.Minute)
}

func TestQuotePaidDelivery(t *testing.T) {
	uc := newDeliveryUC(t)

	quote, err := uc.Quote("16", "Alger Centre", 100)
	require.NoError(t, err)

	assert.Equal(t, "Alger", quote.Wilaya)
	assert.Equal(t, "Alger Centre", quote.Commune)
	assert.Equal(t, 450, quote.DeliveryPrice)
	assert.Equal(t, 1, quote.EstimatedDays)
	assert.False(t, quote.FreeDelivery)
	assert.Equal(t, 100.0, quote.OrderValue)
	assert.Equal(t, 550.0, quote.TotalWithDelivery)
}

func TestQuoteFreeDeliveryThreshold(t *testing.T) {
	uc := newDeliveryUC(t)

	tests := []struct {
		name       string
		orderValue float64
		free       bool
		price      int
		total      float64
	}{
		{"well above threshold", 6000, true, 0, 6000},
		{"exactly at threshold", 5000, true, 0, 5000},
		{"just below threshold", 4999.99, false, 450, 5449.99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := uc.Quote("16", "Alger Centre", tt.orderValue)
			require.NoError(t, err)
			assert.Equal(t, tt.free, quote.FreeDelivery)
			assert.Equal(t, tt.price, quote.DeliveryPrice)
			assert.InDelta(t, tt.total, quote.TotalWithDelivery, 1e-9)
		})
	}
}

func TestQuoteValidationOrder(t *testing.T) {
	uc := newDeliveryUC(t)

	// Missing fields win over everything else.
	_, err := uc.Quote("", "Nowhere", 100)
	assert.ErrorIs(t, err, domain.ErrQuoteFieldsRequired)
	_, err = uc.Quote("16", "", 100)
	assert.ErrorIs(t, err, domain.ErrQuoteFieldsRequired)

	// Unknown wilaya beats commune membership.
	_, err = uc.Quote("99", "Alger Centre", 100)
	assert.ErrorIs(t, err, domain.ErrWilayaNotFound)

	// Commune matching is exact and case sensitive.
	_, err = uc.Quote("16", "alger centre", 100)
	assert.ErrorIs(t, err, domain.ErrCommuneNotInWilaya)
	_, err = uc.Quote("16", "Oran", 100)
	assert.ErrorIs(t, err, domain.ErrCommuneNotInWilaya)
}

func TestEstimatedDays(t *testing.T) {
	tests := []struct {
		wilayaID string
		days     int
	}{
		{"16", 1},
		{"9", 2},
		{"35", 2},
		{"42", 2},
		{"1", 5},
		{"49", 5},
		{"56", 5},
		{"31", 3},
		{"2", 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.days, estimatedDays(tt.wilayaID), "wilaya %s", tt.wilayaID)
	}
}

func TestGetZonesPartition(t *testing.T) {
	uc := newDeliveryUC(t)
	zones := uc.GetZones()

	assert.Equal(t, "Immediate Delivery (1-2 days)", zones.Immediate.Name)
	assert.Equal(t, "Fastest delivery for nearby areas", zones.Immediate.Description)
	assert.Equal(t, "Standard Delivery (3-4 days)", zones.Standard.Name)
	assert.Equal(t, "Standard delivery for most areas", zones.Standard.Description)
	assert.Equal(t, "Extended Delivery (5-7 days)", zones.Remote.Name)
	assert.Equal(t, "Extended delivery for remote areas", zones.Remote.Description)

	assert.Len(t, zones.Immediate.Wilayas, 4)
	assert.Len(t, zones.Remote.Wilayas, 10)

	// Every wilaya lands in exactly one zone.
	seen := map[string]int{}
	for _, z := range [][]domain.Wilaya{zones.Immediate.Wilayas, zones.Standard.Wilayas, zones.Remote.Wilayas} {
		for _, w := range z {
			seen[w.ID]++
		}
	}
	assert.Len(t, seen, len(uc.GetWilayas()))
	for id, n := range seen {
		assert.Equal(t, 1, n, "wilaya %s assigned to %d zones", id, n)
	}
}

func TestGetZonesCached(t *testing.T) {
	uc := newDeliveryUC(t)
	first := uc.GetZones()
	second := uc.GetZones()
	assert.Equal(t, first, second)
}

func TestGetStats(t *testing.T) {
	uc := newDeliveryUC(t)
	stats := uc.GetStats()
	all := uc.GetWilayas()

	assert.Equal(t, 58, stats.TotalWilayas)
	assert.Equal(t, 58, stats.Coverage.TotalAlgerianWilayas)
	assert.Equal(t, 100, stats.Coverage.Percentage)

	totalCommunes := 0
	priceSum := 0
	for _, w := range all {
		totalCommunes += len(w.Communes)
		priceSum += w.DeliveryPrice
	}
	assert.Equal(t, totalCommunes, stats.TotalCommunes)
	assert.Equal(t, int(math.Round(float64(priceSum)/float64(len(all)))), stats.AverageDeliveryPrice)

	// Price bands cover the whole catalog.
	assert.Equal(t, stats.TotalWilayas,
		stats.PriceRanges.Low+stats.PriceRanges.Medium+stats.PriceRanges.High)
	assert.Positive(t, stats.PriceRanges.Low)
	assert.Positive(t, stats.PriceRanges.High)
}

func TestSearchWilayas(t *testing.T) {
	uc := newDeliveryUC(t)

	_, err := uc.Search("")
	assert.ErrorIs(t, err, domain.ErrSearchQueryRequired)

	upper, err := uc.Search("ALGER")
	require.NoError(t, err)
	lower, err := uc.Search("alger")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
	assert.NotEmpty(t, upper)

	// Commune names match too.
	byCommune, err := uc.Search("Oum El Assel")
	require.NoError(t, err)
	require.Len(t, byCommune, 1)
	assert.Equal(t, "37", byCommune[0].ID)

	// Results keep catalog order.
	results, err := uc.Search("a")
	require.NoError(t, err)
	positions := map[string]int{}
	for i, w := range uc.GetWilayas() {
		positions[w.ID] = i
	}
	for i := 1; i < len(results); i++ {
		assert.Less(t, positions[results[i-1].ID], positions[results[i].ID])
	}

	none, err := uc.Search("zzzzzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}
