package catalog

import "context"

type Repository interface {
	List(ctx context.Context) ([]Accommodation, error)
	GetByID(ctx context.Context, id string) (Accommodation, error)
}
