package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var (
	ErrNotFound = errors.New("not found")
)

// KV guarda blobs por key en memoria (modo dev / tests).
type KV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewKV() *KV {
	return &KV{
		data: make(map[string][]byte),
	}
}

func (kv *KV) Load(ctx context.Context, key string) ([]byte, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()

	v, ok := kv.data[key]
	if !ok {
		return nil, nil
	}
	// copia para que el caller no comparta el buffer
	return append([]byte(nil), v...), nil
}

func (kv *KV) Save(ctx context.Context, key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("key required")
	}

	kv.mu.Lock()
	defer kv.mu.Unlock()

	kv.data[key] = append([]byte(nil), value...)
	return nil
}
