package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const clientKey ctxKey = "client_id"

// ClientHeader identifica al navegador/cliente dueño de los datos locales.
const ClientHeader = "X-Client-ID"

// ClientContext:
// - Si viene X-Client-ID => lo guarda en el contexto.
// - Si no viene => usa defaultID (equivale a un único navegador).
// No hay autenticación: el header solo separa espacios de datos.
func ClientContext(defaultID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(ClientHeader))
			if id == "" {
				id = defaultID
			}
			ctx := context.WithValue(r.Context(), clientKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClientID(ctx context.Context) string {
	v, _ := ctx.Value(clientKey).(string)
	return v
}
