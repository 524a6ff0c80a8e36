package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seu-usuario/clientes-api/internal/domain"
	"github.com/seu-usuario/clientes-api/internal/domain/entity"
	"github.com/seu-usuario/clientes-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementação de OrderRepository (usável com pool ou tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste um novo pedido e preenche o ID gerado. Referência a
// cliente inexistente sobe como domain.ErrInvalidInput.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (total_value, status, customer_id)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, order.TotalValue, order.Status, order.CustomerID).Scan(&order.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID busca um pedido por ID. Devolve (nil, nil) quando não existe.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	query := `SELECT id, total_value, status, customer_id FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id).Scan(&o.ID, &o.TotalValue, &o.Status, &o.CustomerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// List devolve todos os pedidos na ordem natural do banco.
func (r *OrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, `SELECT id, total_value, status, customer_id FROM orders ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.TotalValue, &o.Status, &o.CustomerID); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Update regrava o pedido inteiro sob o ID dado.
func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	query := `UPDATE orders SET total_value = $2, status = $3, customer_id = $4 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, order.ID, order.TotalValue, order.Status, order.CustomerID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Delete remove um pedido por ID.
func (r *OrderRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// ExistsByID verifica a existência do pedido.
func (r *OrderRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists order: %w", err)
	}
	return exists, nil
}

// DeleteByCustomer remove todos os pedidos do cliente (cascata explícita).
func (r *OrderRepo) DeleteByCustomer(ctx context.Context, customerID int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM orders WHERE customer_id = $1`, customerID)
	if err != nil {
		return fmt.Errorf("delete orders of customer: %w", err)
	}
	return nil
}
