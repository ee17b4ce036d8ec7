package domain

import "errors"

// Wilaya is one entry of the embedded delivery catalog. Communes may contain
// duplicate names; lookups treat the list as a set, responses return it as-is.
type Wilaya struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Communes      []string `json:"communes"`
	DeliveryPrice int      `json:"deliveryPrice"`
}

// DeliveryQuote is the priced result of a wilaya/commune/order-value lookup.
// TotalWithDelivery is OrderValue plus DeliveryPrice; with free delivery the
// price drops to zero and the total equals the order value.
type DeliveryQuote struct {
	Wilaya            string  `json:"wilaya"`
	Commune           string  `json:"commune"`
	DeliveryPrice     int     `json:"deliveryPrice"`
	EstimatedDays     int     `json:"estimatedDays"`
	FreeDelivery      bool    `json:"freeDelivery"`
	OrderValue        float64 `json:"orderValue"`
	TotalWithDelivery float64 `json:"totalWithDelivery"`
}

// WilayaCommunes is the commune listing for a single wilaya.
type WilayaCommunes struct {
	Wilaya        string   `json:"wilaya"`
	Communes      []string `json:"communes"`
	DeliveryPrice int      `json:"deliveryPrice"`
}

type DeliveryZone struct {
	Name        string   `json:"name"`
	Wilayas     []Wilaya `json:"wilayas"`
	Description string   `json:"description"`
}

// DeliveryZones partitions the catalog into three speed tiers. Every wilaya
// appears in exactly one zone.
type DeliveryZones struct {
	Immediate DeliveryZone `json:"immediate"`
	Standard  DeliveryZone `json:"standard"`
	Remote    DeliveryZone `json:"remote"`
}

type PriceRanges struct {
	Low    int `json:"low"`    // <= 600 DZD
	Medium int `json:"medium"` // 601..1000 DZD
	High   int `json:"high"`   // > 1000 DZD
}

type Coverage struct {
	Percentage           int `json:"percentage"`
	TotalAlgerianWilayas int `json:"totalAlgerianWilayas"`
}

type DeliveryStats struct {
	TotalWilayas         int         `json:"totalWilayas"`
	TotalCommunes        int         `json:"totalCommunes"`
	AverageDeliveryPrice int         `json:"averageDeliveryPrice"`
	PriceRanges          PriceRanges `json:"priceRanges"`
	Coverage             Coverage    `json:"coverage"`
}

var (
	ErrWilayaNotFound      = errors.New("wilaya not found")
	ErrCommuneNotInWilaya  = errors.New("commune not found in the specified wilaya")
	ErrQuoteFieldsRequired = errors.New("wilaya id and commune are required")
	ErrSearchQueryRequired = errors.New("search query is required")
)

// WilayaRepository reads the embedded catalog. It takes no context because
// the data lives in memory for the life of the process.
type WilayaRepository interface {
	GetAll() []Wilaya
	GetByID(id string) (*Wilaya, error)
}
