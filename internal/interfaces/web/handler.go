package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rmaia/estoque-web/pkg/logger"
)

// erroServidor loga a falha inesperada de persistência e devolve o 500
// genérico em texto plano.
func erroServidor(log *logger.Logger, c *fiber.Ctx, err error, contexto string) error {
	log.Error().Err(err).Str("rota", c.Path()).Msg(contexto)
	return c.Status(fiber.StatusInternalServerError).SendString("Erro no servidor")
}
