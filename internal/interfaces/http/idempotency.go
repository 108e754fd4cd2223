package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/workspace-api/internal/infrastructure/redis"
)

// HeaderIdempotencyKey cabecera que identifica un reintento de la misma petición.
const (
	HeaderIdempotencyKey = "Idempotency-Key"
	headerReplayed       = "Idempotent-Replayed"
)

// IdempotencyStore almacén de respuestas; lo implementa *redis.IdempotencyStore.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) (*redis.StoredResponse, error)
	Lock(ctx context.Context, key string) (bool, error)
	Save(ctx context.Context, key string, resp redis.StoredResponse) error
	Unlock(ctx context.Context, key string) error
}

// Idempotency repite la respuesta guardada de un POST con la misma Idempotency-Key.
// Solo se guardan respuestas 2xx. Con store nil o sin cabecera la petición pasa sin cambios.
// Si Redis falla la petición se procesa normalmente.
func Idempotency(store IdempotencyStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idemKey := c.Get(HeaderIdempotencyKey)
		if store == nil || idemKey == "" || c.Method() != fiber.MethodPost {
			return c.Next()
		}
		ctx := c.UserContext()
		key := redis.Key(c.Path(), GetUserID(c), idemKey)

		cached, err := store.Get(ctx, key)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("idempotencia no disponible")
			return c.Next()
		}
		if cached != nil {
			c.Set(headerReplayed, "true")
			if cached.ContentType != "" {
				c.Set(fiber.HeaderContentType, cached.ContentType)
			}
			return c.Status(cached.Status).Send(cached.Body)
		}

		locked, err := store.Lock(ctx, key)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("idempotencia no disponible")
			return c.Next()
		}
		if !locked {
			return fail(c, fiber.StatusConflict, CodeConflict, "la petición con esta Idempotency-Key sigue en proceso", nil)
		}

		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = store.Unlock(ctx, key)
				return herr
			}
		}

		status := c.Response().StatusCode()
		if status < fiber.StatusOK || status >= fiber.StatusMultipleChoices {
			if err := store.Unlock(ctx, key); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("no se pudo liberar el lock de idempotencia")
			}
			return nil
		}
		resp := redis.StoredResponse{
			Status:      status,
			ContentType: string(c.Response().Header.ContentType()),
			Body:        append([]byte(nil), c.Response().Body()...),
		}
		if err := store.Save(ctx, key, resp); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("no se pudo guardar la respuesta idempotente")
		}
		return nil
	}
}
