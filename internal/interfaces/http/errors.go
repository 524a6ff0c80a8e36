package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/clientes-api/internal/domain"
)

// Mensagens fixas da superfície de clientes. O detalhe que o serviço gerou é
// descartado aqui de propósito: o chamador só vê a mensagem do tipo de erro.
// A superfície de pedidos NÃO faz isso e repassa a mensagem detalhada.
const (
	msgCustomerNotFound = "Cliente não encontrado."
	msgBadRequest       = "Erro na requisição."
	msgDuplicate        = "Erro na requisição: e-mail ou CPF já cadastrado."
	msgInternal         = "Erro interno no servidor."
)

// customerError traduz o erro do caso de uso para status + mensagem fixa.
func customerError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, msgCustomerNotFound
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, msgDuplicate
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, msgBadRequest
	default:
		return fiber.StatusInternalServerError, msgInternal
	}
}
