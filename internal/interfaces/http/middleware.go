package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/seu-usuario/clientes-api/pkg/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestID reaproveita o X-Request-ID do chamador ou gera um novo, e o
// devolve no header da resposta.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(requestIDHeader, id)
		c.Set(requestIDHeader, id)
		return c.Next()
	}
}

// GetRequestID lê o ID da requisição atual (vazio se o middleware não rodou).
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDHeader).(string); ok {
		return id
	}
	return ""
}

// RequestLogger loga uma linha por requisição atendida.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Info().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("requisição atendida")
		return err
	}
}
