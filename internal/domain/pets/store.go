package pets

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"pet-friendly-stays/internal/platform/logger"

	"github.com/google/uuid"
	"github.com/thoas/go-funk"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

// Store mantiene la colección completa de perfiles de un cliente.
// Se hidrata al abrir y reescribe la colección entera tras cada mutación.
// Si la carga falló no escribe nada hasta que una carga posterior funcione.
type Store struct {
	mu    sync.RWMutex
	kv    KeyValue
	key   string
	log   logger.Logger
	newID func() string
	items []Pet

	// loadErr != nil: lo persistido no se pudo leer todavía.
	loadErr error
}

// OpenStore carga la colección persistida bajo key. Datos ausentes, corruptos o
// ilegibles => lista vacía; en el último caso se reintenta con Reload.
func OpenStore(ctx context.Context, kv KeyValue, key string, log logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	s := &Store{
		kv:    kv,
		key:   key,
		log:   log.With(map[string]any{"store_key": key}),
		newID: uuid.NewString,
		items: []Pet{},
	}
	s.items, s.loadErr = s.load(ctx)
	if s.loadErr != nil {
		s.log.Warn("pet profiles load failed, starting empty", map[string]any{"err": s.loadErr})
	}
	return s
}

// Loaded indica si la colección en memoria parte de lo persistido.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr == nil
}

// Reload reintenta la carga si la anterior falló; no-op si ya cargó.
func (s *Store) Reload(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reloadLocked(ctx)
}

// reloadLocked: lo creado mientras no había carga queda después de lo persistido.
func (s *Store) reloadLocked(ctx context.Context) bool {
	if s.loadErr == nil {
		return true
	}
	items, err := s.load(ctx)
	if err != nil {
		s.loadErr = err
		return false
	}
	s.loadErr = nil
	s.items = append(items, s.items...)
	return true
}

// load sólo devuelve error si el backend falla; datos corruptos cuentan como vacíos.
func (s *Store) load(ctx context.Context) ([]Pet, error) {
	raw, err := s.kv.Load(context.WithoutCancel(ctx), s.key)
	if err != nil {
		return []Pet{}, err
	}
	if len(raw) == 0 {
		return []Pet{}, nil
	}

	var items []Pet
	if err := json.Unmarshal(raw, &items); err != nil {
		s.log.Warn("pet profiles corrupt, starting empty", map[string]any{"err": err})
		return []Pet{}, nil
	}
	out := make([]Pet, 0, len(items))
	for _, p := range items {
		if strings.TrimSpace(p.ID) == "" {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// saveLocked escribe la colección completa. Debe llamarse con mu tomado.
func (s *Store) saveLocked(ctx context.Context) {
	if !s.reloadLocked(ctx) {
		// Escribir ahora pisaría lo persistido con una colección parcial.
		s.log.Warn("pet profiles not loaded, skipping save", map[string]any{"err": s.loadErr, "count": len(s.items)})
		return
	}
	b, err := json.Marshal(s.items)
	if err != nil {
		s.log.Error("pet profiles marshal failed", map[string]any{"err": err})
		return
	}
	if err := s.kv.Save(context.WithoutCancel(ctx), s.key, b); err != nil {
		// No se propaga: el caller nunca ve fallos de persistencia.
		s.log.Error("pet profiles save failed", map[string]any{"err": err, "count": len(s.items)})
	}
}

type CreateInput struct {
	Name            string
	Species         Species
	Breed           string
	Age             int
	Weight          float64
	IsNeutered      bool
	PersonalityTags []string
	MedicalNotes    string
}

func (s *Store) List() []Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Pet, 0, len(s.items))
	for _, p := range s.items {
		out = append(out, clonePet(p))
	}
	return out
}

func (s *Store) Get(id string) (Pet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.items {
		if p.ID == id {
			return clonePet(p), true
		}
	}
	return Pet{}, false
}

func (s *Store) Create(ctx context.Context, in CreateInput) (Pet, error) {
	p := Pet{
		Name:            in.Name,
		Species:         in.Species,
		Breed:           in.Breed,
		Age:             in.Age,
		Weight:          in.Weight,
		IsNeutered:      in.IsNeutered,
		PersonalityTags: in.PersonalityTags,
		MedicalNotes:    in.MedicalNotes,
	}
	p, err := normalize(p)
	if err != nil {
		return Pet{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadLocked(ctx)

	p.ID = s.newID()
	s.items = append(s.items, p)
	s.saveLocked(ctx)

	return clonePet(p), nil
}

// Update reemplaza el perfil con el mismo ID. Si no existe no hace nada.
func (s *Store) Update(ctx context.Context, p Pet) error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrInvalidInput
	}
	p, err := normalize(p)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadLocked(ctx)

	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i] = p
			s.saveLocked(ctx)
			return nil
		}
	}
	return nil
}

// Remove elimina por ID. Si no existe no hace nada.
func (s *Store) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadLocked(ctx)

	out := make([]Pet, 0, len(s.items))
	for _, p := range s.items {
		if p.ID != id {
			out = append(out, p)
		}
	}
	if len(out) == len(s.items) {
		return
	}
	s.items = out
	s.saveLocked(ctx)
}

func normalize(p Pet) (Pet, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Breed = strings.TrimSpace(p.Breed)
	p.MedicalNotes = strings.TrimSpace(p.MedicalNotes)
	p.Species = Species(strings.ToLower(strings.TrimSpace(string(p.Species))))

	if p.Name == "" || p.Breed == "" {
		return Pet{}, ErrInvalidInput
	}
	if !p.Species.IsValid() {
		return Pet{}, ErrInvalidInput
	}
	if p.Age < 0 || p.Weight <= 0 {
		return Pet{}, ErrInvalidInput
	}

	tags := make([]string, 0, len(p.PersonalityTags))
	for _, t := range p.PersonalityTags {
		t = strings.ToLower(strings.TrimSpace(t))
		if !IsPersonalityTag(t) {
			return Pet{}, ErrInvalidInput
		}
		tags = append(tags, t)
	}
	p.PersonalityTags = funk.UniqString(tags)

	return p, nil
}

func clonePet(p Pet) Pet {
	tags := make([]string, len(p.PersonalityTags))
	copy(tags, p.PersonalityTags)
	p.PersonalityTags = tags
	return p
}
