package usecase

import (
	"context"

	"github.com/seu-usuario/clientes-api/internal/application/dto"
	"github.com/seu-usuario/clientes-api/internal/domain"
	"github.com/seu-usuario/clientes-api/internal/domain/repository"
)

// OrderUseCase casos de uso de pedidos. Diferente dos clientes, consulta e
// atualização sinalizam ausência com resultado nil em vez de erro; só a
// deleção devolve domain.ErrNotFound.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase constrói o caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// List devolve todos os pedidos.
func (uc *OrderUseCase) List(ctx context.Context) ([]*dto.OrderResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.NewOrderResponse(o))
	}
	return out, nil
}

// GetByID devolve (nil, nil) quando o pedido não existe.
func (uc *OrderUseCase) GetByID(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return dto.NewOrderResponse(order), nil
}

// Create persiste o pedido como veio.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.OrderRequest) (*dto.OrderResponse, error) {
	order := in.ToEntity()
	if err := uc.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return dto.NewOrderResponse(order), nil
}

// Update persiste o body sob o ID da rota se o pedido existe; senão devolve
// (nil, nil) como sentinela de ausência.
func (uc *OrderUseCase) Update(ctx context.Context, id int64, in dto.OrderRequest) (*dto.OrderResponse, error) {
	exists, err := uc.repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}
	order := in.ToEntity()
	order.ID = id
	if err := uc.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return dto.NewOrderResponse(order), nil
}

// Delete remove o pedido; inexistente devolve domain.ErrNotFound com a
// mensagem detalhada.
func (uc *OrderUseCase) Delete(ctx context.Context, id int64) error {
	exists, err := uc.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.OrderNotFound(id)
	}
	return uc.repo.Delete(ctx, id)
}
