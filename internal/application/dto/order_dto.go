package dto

import (
	"github.com/seu-usuario/clientes-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// OrderRequest body para POST /orders e PUT /orders/:id.
type OrderRequest struct {
	TotalValue decimal.Decimal `json:"totalValue"`
	Status     string          `json:"status"`
	CustomerID *int64          `json:"customerId"`
}

// OrderResponse pedido nas respostas.
type OrderResponse struct {
	ID         int64           `json:"id"`
	TotalValue decimal.Decimal `json:"totalValue"`
	Status     string          `json:"status"`
	CustomerID *int64          `json:"customerId,omitempty"`
}

// NewOrderResponse converte a entidade para o DTO de resposta.
func NewOrderResponse(o *entity.Order) *OrderResponse {
	return &OrderResponse{
		ID:         o.ID,
		TotalValue: o.TotalValue,
		Status:     o.Status,
		CustomerID: o.CustomerID,
	}
}

// ToEntity monta a entidade a partir do body (o ID vem da rota, não do body).
func (r OrderRequest) ToEntity() *entity.Order {
	return &entity.Order{
		TotalValue: r.TotalValue,
		Status:     r.Status,
		CustomerID: r.CustomerID,
	}
}
