// Package redis guarda las respuestas de peticiones POST con Idempotency-Key.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "idemp:"
	lockTTL   = 30 * time.Second
)

// StoredResponse respuesta cacheada de una petición idempotente.
type StoredResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type,omitempty"`
	Body        []byte `json:"body"`
}

// IdempotencyStore almacén de respuestas sobre Redis.
type IdempotencyStore struct {
	rdb goredis.Cmdable
	ttl time.Duration
}

// NewIdempotencyStore construye el almacén. ttl es la vigencia de cada respuesta guardada.
func NewIdempotencyStore(rdb goredis.Cmdable, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &IdempotencyStore{rdb: rdb, ttl: ttl}
}

// Connect abre el cliente y verifica la conexión con PING.
func Connect(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{Addr: addr, Password: password, DB: db})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", addr, err)
	}
	return rdb, nil
}

// Key clave de caché: ruta + usuario + Idempotency-Key.
func Key(route, userID, idempotencyKey string) string {
	return keyPrefix + route + ":" + userID + ":" + idempotencyKey
}

// Get devuelve la respuesta guardada; (nil, nil) si no existe.
func (s *IdempotencyStore) Get(ctx context.Context, key string) (*StoredResponse, error) {
	val, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis: get %s: %w", key, err)
	}
	var out StoredResponse
	if err := json.Unmarshal(val, &out); err != nil {
		return nil, fmt.Errorf("redis: respuesta corrupta en %s: %w", key, err)
	}
	return &out, nil
}

// Lock reserva la clave mientras la petición original se procesa.
// false indica que otra petición con la misma clave sigue en curso.
func (s *IdempotencyStore) Lock(ctx context.Context, key string) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, key+":lock", "1", lockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("redis: lock %s: %w", key, err)
	}
	return ok, nil
}

// Save guarda la respuesta y libera el lock.
func (s *IdempotencyStore) Save(ctx context.Context, key string, resp StoredResponse) error {
	payload, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, key, string(payload), s.ttl).Err(); err != nil {
		return fmt.Errorf("redis: set %s: %w", key, err)
	}
	return s.Unlock(ctx, key)
}

// Unlock libera el lock sin guardar (respuestas de error no se cachean).
func (s *IdempotencyStore) Unlock(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, key+":lock").Err(); err != nil {
		return fmt.Errorf("redis: unlock %s: %w", key, err)
	}
	return nil
}
