package staticdata

import "titoubarz-backend/internal/domain"

type wilayaRepository struct {
	byID map[string]*domain.Wilaya
}

// NewWilayaRepository returns a repository backed by the embedded wilaya
// table. Lookups are O(1); GetAll preserves the table's catalog order.
func NewWilayaRepository() domain.WilayaRepository {
	byID := make(map[string]*domain.Wilaya, len(wilayas))
	for i := range wilayas {
		byID[wilayas[i].ID] = &wilayas[i]
	}
	return &wilayaRepository{byID: byID}
}

func (r *wilayaRepository) GetAll() []domain.Wilaya {
	return wilayas
}

func (r *wilayaRepository) GetByID(id string) (*domain.Wilaya, error) {
	w, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrWilayaNotFound
	}
	return w, nil
}
