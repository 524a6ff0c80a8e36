package repository

import (
	"context"

	"github.com/seu-usuario/clientes-api/internal/domain/entity"
)

// CustomerRepository define o porto de persistência para Customer.
// GetByID devolve (nil, nil) quando o cliente não existe; os métodos de
// leitura carregam também os pedidos do cliente.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id int64) error
}
