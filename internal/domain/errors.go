package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound     = errors.New("recurso não encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidInput = errors.New("entrada inválida")
)

// NotFoundError carrega a mensagem exata de "não encontrado" de cada
// entidade. Casa com ErrNotFound via errors.Is.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// CustomerNotFound erro para cliente inexistente.
func CustomerNotFound(id int64) error {
	return &NotFoundError{Message: CustomerNotFoundMessage(id)}
}

// OrderNotFound erro para pedido inexistente.
func OrderNotFound(id int64) error {
	return &NotFoundError{Message: OrderNotFoundMessage(id)}
}

// CustomerNotFoundMessage mensagem detalhada de cliente inexistente.
func CustomerNotFoundMessage(id int64) string {
	return fmt.Sprintf("Cliente não encontrado com o ID: %d", id)
}

// OrderNotFoundMessage mensagem detalhada de pedido inexistente.
func OrderNotFoundMessage(id int64) string {
	return fmt.Sprintf("Pedido não encontrado com o ID: %d", id)
}
