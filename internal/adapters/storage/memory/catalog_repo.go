package memory

import (
	"context"

	"pet-friendly-stays/internal/domain/catalog"
)

// catalogRepo sirve el catálogo estático; nunca se modifica.
type catalogRepo struct {
	items []catalog.Accommodation
	byID  map[string]int
}

func NewCatalogRepo(items []catalog.Accommodation) catalog.Repository {
	r := &catalogRepo{
		items: make([]catalog.Accommodation, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	copy(r.items, items)
	for i, a := range r.items {
		r.byID[a.ID] = i
	}
	return r
}

func (r *catalogRepo) List(ctx context.Context) ([]catalog.Accommodation, error) {
	out := make([]catalog.Accommodation, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *catalogRepo) GetByID(ctx context.Context, id string) (catalog.Accommodation, error) {
	i, ok := r.byID[id]
	if !ok {
		return catalog.Accommodation{}, ErrNotFound
	}
	return r.items[i], nil
}
