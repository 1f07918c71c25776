package plans

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"sync"

	"pet-friendly-stays/internal/platform/logger"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

//go:embed seed.yaml
var seedYAML []byte

var ErrNotFound = errors.New("checklist item not found")

// KeyValue es el mismo contrato que usan los perfiles de mascotas.
type KeyValue interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

func StorageKey(clientID string) string {
	return "travelPlan:" + clientID
}

func Seed() (Template, error) {
	var t Template
	if err := yaml.Unmarshal(seedYAML, &t); err != nil {
		return Template{}, pkgerrors.Wrap(err, "plans seed")
	}
	return t, nil
}

// Plan es la vista completa del plan de un cliente.
type Plan struct {
	Checklist []ChecklistItem `json:"checklist"`
	Schedule  []ScheduleItem  `json:"schedule"`
	Progress  Progress        `json:"progress"`
}

// stored es lo que se persiste: sólo el estado de cada ítem.
type stored struct {
	Completed map[string]bool `json:"completed"`
}

type Service struct {
	kv   KeyValue
	tmpl Template
	log  logger.Logger
	mu   sync.Mutex
}

func NewService(kv KeyValue, tmpl Template, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{kv: kv, tmpl: tmpl, log: log}
}

func (s *Service) Get(ctx context.Context, clientID string) Plan {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, _ := s.load(ctx, clientID)
	return s.build(st)
}

// Toggle invierte un ítem y persiste. Si la escritura falla el cambio igual se devuelve.
// Si la lectura falló no se escribe: se pisaría lo guardado con el template.
func (s *Service) Toggle(ctx context.Context, clientID, itemID string) (Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasItem(itemID) {
		return Plan{}, ErrNotFound
	}

	st, err := s.load(ctx, clientID)
	st.Completed[itemID] = !st.Completed[itemID]
	if err != nil {
		s.log.Warn("travel plan not loaded, skipping save", map[string]any{"client_id": clientID, "err": err})
		return s.build(st), nil
	}

	raw, err := json.Marshal(st)
	if err == nil {
		err = s.kv.Save(context.WithoutCancel(ctx), StorageKey(clientID), raw)
	}
	if err != nil {
		s.log.Warn("travel plan save failed", map[string]any{"client_id": clientID, "err": err})
	}
	return s.build(st), nil
}

func (s *Service) hasItem(id string) bool {
	for _, it := range s.tmpl.Checklist {
		if it.ID == id {
			return true
		}
	}
	return false
}

// load arranca del template y aplica lo persistido; datos ilegibles = template.
// Sólo devuelve error si el backend falla.
func (s *Service) load(ctx context.Context, clientID string) (stored, error) {
	st := stored{Completed: make(map[string]bool, len(s.tmpl.Checklist))}
	for _, it := range s.tmpl.Checklist {
		st.Completed[it.ID] = it.Completed
	}

	raw, err := s.kv.Load(context.WithoutCancel(ctx), StorageKey(clientID))
	if err != nil {
		s.log.Warn("travel plan load failed", map[string]any{"client_id": clientID, "err": err})
		return st, err
	}
	if len(raw) == 0 {
		return st, nil
	}

	var saved stored
	if err := json.Unmarshal(raw, &saved); err != nil {
		s.log.Warn("travel plan corrupt, using defaults", map[string]any{"client_id": clientID, "err": err})
		return st, nil
	}
	for id, done := range saved.Completed {
		if _, ok := st.Completed[id]; ok {
			st.Completed[id] = done
		}
	}
	return st, nil
}

func (s *Service) build(st stored) Plan {
	items := make([]ChecklistItem, len(s.tmpl.Checklist))
	for i, it := range s.tmpl.Checklist {
		it.Completed = st.Completed[it.ID]
		items[i] = it
	}
	return Plan{
		Checklist: items,
		Schedule:  append([]ScheduleItem(nil), s.tmpl.Schedule...),
		Progress:  ComputeProgress(items),
	}
}
