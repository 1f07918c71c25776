package pets

import "context"

// KeyValue es el puerto de persistencia: una key, un blob.
// Load devuelve (nil, nil) si la key no existe.
type KeyValue interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

// StorageKey arma la key de perfiles de un cliente.
func StorageKey(clientID string) string {
	return "petProfiles:" + clientID
}
