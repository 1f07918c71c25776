package wizard

import (
	"context"
	_ "embed"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

//go:embed packages.yaml
var packagesYAML []byte

// Generator produce paquetes a partir de las preferencias completas.
type Generator interface {
	Generate(ctx context.Context, p Preference) ([]Package, error)
}

// StaticGenerator devuelve siempre la misma lista.
// TODO: rankear por Suitability contra la Preference cuando haya más de dos paquetes.
type StaticGenerator struct {
	packages []Package
}

func NewStaticGenerator() (*StaticGenerator, error) {
	var items []Package
	if err := yaml.Unmarshal(packagesYAML, &items); err != nil {
		return nil, errors.Wrap(err, "wizard: parse packages")
	}
	return &StaticGenerator{packages: items}, nil
}

// MustStaticGenerator es para wiring y tests; el yaml va embebido.
func MustStaticGenerator() *StaticGenerator {
	g, err := NewStaticGenerator()
	if err != nil {
		panic(err)
	}
	return g
}

func (g *StaticGenerator) Generate(ctx context.Context, p Preference) ([]Package, error) {
	out := make([]Package, len(g.packages))
	copy(out, g.packages)
	return out, nil
}
