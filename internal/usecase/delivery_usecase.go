package usecase

import (
	"math"
	"strings"
	"time"

	"titoubarz-backend/internal/domain"
	"titoubarz-backend/pkg/cache"
)

// Estimated transit days by wilaya ID. Everything not listed ships in 3 days.
var (
	oneDayWilayas = map[string]bool{"16": true}
	twoDayWilayas = map[string]bool{"9": true, "35": true, "42": true}
	// Far south and border wilayas served by long-haul carriers.
	fiveDayWilayas = map[string]bool{
		"1": true, "11": true, "33": true, "37": true, "49": true,
		"50": true, "52": true, "53": true, "54": true, "56": true,
	}
)

type DeliveryUsecase struct {
	wilayaRepo domain.WilayaRepository
	cache      cache.CacheService
	cacheTTL   time.Duration
}

func NewDeliveryUsecase(wilayaRepo domain.WilayaRepository, cacheService cache.CacheService, cacheTTL time.Duration) *DeliveryUsecase {
	return &DeliveryUsecase{
		wilayaRepo: wilayaRepo,
		cache:      cacheService,
		cacheTTL:   cacheTTL,
	}
}

// GetWilayas returns the full catalog in its canonical order.
func (uc *DeliveryUsecase) GetWilayas() []domain.Wilaya {
	return uc.wilayaRepo.GetAll()
}

func (uc *DeliveryUsecase) GetWilaya(id string) (*domain.Wilaya, error) {
	return uc.wilayaRepo.GetByID(id)
}

func (uc *DeliveryUsecase) GetCommunes(wilayaID string) (*domain.WilayaCommunes, error) {
	w, err := uc.wilayaRepo.GetByID(wilayaID)
	if err != nil {
		return nil, err
	}
	return &domain.WilayaCommunes{
		Wilaya:        w.Name,
		Communes:      w.Communes,
		DeliveryPrice: w.DeliveryPrice,
	}, nil
}

// Quote prices a delivery for an order. Validation order is fixed: missing
// fields first, then wilaya lookup, then commune membership. Commune matching
// is exact and case sensitive. Orders at or above the free delivery threshold
// ship for free.
func (uc *DeliveryUsecase) Quote(wilayaID, commune string, orderValue float64) (*domain.DeliveryQuote, error) {
	if wilayaID == "" || commune == "" {
		return nil, domain.ErrQuoteFieldsRequired
	}

	w, err := uc.wilayaRepo.GetByID(wilayaID)
	if err != nil {
		return nil, err
	}

	found := false
	for _, c := range w.Communes {
		if c == commune {
			found = true
			break
		}
	}
	if !found {
		return nil, domain.ErrCommuneNotInWilaya
	}

	price := w.DeliveryPrice
	free := orderValue >= domain.FreeDeliveryThreshold
	if free {
		price = 0
	}

	return &domain.DeliveryQuote{
		Wilaya:            w.Name,
		Commune:           commune,
		DeliveryPrice:     price,
		EstimatedDays:     estimatedDays(w.ID),
		FreeDelivery:      free,
		OrderValue:        orderValue,
		TotalWithDelivery: orderValue + float64(price),
	}, nil
}

func estimatedDays(wilayaID string) int {
	switch {
	case oneDayWilayas[wilayaID]:
		return 1
	case twoDayWilayas[wilayaID]:
		return 2
	case fiveDayWilayas[wilayaID]:
		return 5
	default:
		return 3
	}
}

// GetZones groups the catalog into three delivery speed tiers. The immediate
// zone merges the 1-day and 2-day wilayas.
func (uc *DeliveryUsecase) GetZones() domain.DeliveryZones {
	if val, found := uc.cache.Get("delivery:zones"); found {
		return val.(domain.DeliveryZones)
	}

	zones := domain.DeliveryZones{
		Immediate: domain.DeliveryZone{
			Name:        "Immediate Delivery (1-2 days)",
			Wilayas:     []domain.Wilaya{},
			Description: "Fastest delivery for nearby areas",
		},
		Standard: domain.DeliveryZone{
			Name:        "Standard Delivery (3-4 days)",
			Wilayas:     []domain.Wilaya{},
			Description: "Standard delivery for most areas",
		},
		Remote: domain.DeliveryZone{
			Name:        "Extended Delivery (5-7 days)",
			Wilayas:     []domain.Wilaya{},
			Description: "Extended delivery for remote areas",
		},
	}

	for _, w := range uc.wilayaRepo.GetAll() {
		switch {
		case oneDayWilayas[w.ID] || twoDayWilayas[w.ID]:
			zones.Immediate.Wilayas = append(zones.Immediate.Wilayas, w)
		case fiveDayWilayas[w.ID]:
			zones.Remote.Wilayas = append(zones.Remote.Wilayas, w)
		default:
			zones.Standard.Wilayas = append(zones.Standard.Wilayas, w)
		}
	}

	uc.cache.Set("delivery:zones", zones, uc.cacheTTL)
	return zones
}

// GetStats summarizes the catalog: counts, mean price and price bands.
// Commune totals count list entries, duplicates included.
func (uc *DeliveryUsecase) GetStats() domain.DeliveryStats {
	if val, found := uc.cache.Get("delivery:stats"); found {
		return val.(domain.DeliveryStats)
	}

	all := uc.wilayaRepo.GetAll()

	stats := domain.DeliveryStats{
		TotalWilayas: len(all),
		Coverage: domain.Coverage{
			Percentage:           int(math.Round(float64(len(all)) / domain.ExpectedWilayaCount * 100)),
			TotalAlgerianWilayas: domain.ExpectedWilayaCount,
		},
	}

	priceSum := 0
	for _, w := range all {
		stats.TotalCommunes += len(w.Communes)
		priceSum += w.DeliveryPrice

		switch {
		case w.DeliveryPrice <= 600:
			stats.PriceRanges.Low++
		case w.DeliveryPrice <= 1000:
			stats.PriceRanges.Medium++
		default:
			stats.PriceRanges.High++
		}
	}
	if len(all) > 0 {
		stats.AverageDeliveryPrice = int(math.Round(float64(priceSum) / float64(len(all))))
	}

	uc.cache.Set("delivery:stats", stats, uc.cacheTTL)
	return stats
}

// Search matches wilayas whose name or any commune contains the query,
// case insensitively. Results keep catalog order.
func (uc *DeliveryUsecase) Search(query string) ([]domain.Wilaya, error) {
	if query == "" {
		return nil, domain.ErrSearchQueryRequired
	}

	q := strings.ToLower(query)
	results := []domain.Wilaya{}

	for _, w := range uc.wilayaRepo.GetAll() {
		if strings.Contains(strings.ToLower(w.Name), q) {
			results = append(results, w)
			continue
		}
		for _, c := range w.Communes {
			if strings.Contains(strings.ToLower(c), q) {
				results = append(results, w)
				break
			}
		}
	}
	return results, nil
}
