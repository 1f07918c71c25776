package reports

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

//go:embed seed.yaml
var seedYAML []byte

var ErrNotFound = errors.New("report not found")

func Seed() ([]Report, error) {
	var items []Report
	if err := yaml.Unmarshal(seedYAML, &items); err != nil {
		return nil, pkgerrors.Wrap(err, "reports seed")
	}
	return items, nil
}

type Service struct {
	items []Report
}

func NewService(items []Report) *Service {
	return &Service{items: items}
}

func (s *Service) List(ctx context.Context) []Report {
	return append([]Report(nil), s.items...)
}

func (s *Service) Get(ctx context.Context, id string) (Report, error) {
	id = strings.TrimSpace(id)
	for _, r := range s.items {
		if r.ID == id {
			return r, nil
		}
	}
	return Report{}, ErrNotFound
}

func (s *Service) Summary(ctx context.Context) Summary {
	return Summarize(s.items)
}

// Export devuelve el XLSX y un nombre de archivo sugerido.
func (s *Service) Export(ctx context.Context, id string) ([]byte, string, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	data, err := Export(r)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("travel-report-%s.xlsx", r.ID), nil
}
