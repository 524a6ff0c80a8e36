package repository

import (
	"context"

	"github.com/seu-usuario/clientes-api/internal/domain/entity"
)

// OrderRepository define o porto de persistência para Order.
// GetByID devolve (nil, nil) quando o pedido não existe.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	List(ctx context.Context) ([]*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByCustomer(ctx context.Context, customerID int64) error
}
