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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementação de CustomerRepository (usável com pool ou tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste um novo cliente e preenche o ID gerado.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (name, email, phone, document_number, registration_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		customer.Name, customer.Email, customer.Phone, customer.DocumentNumber,
		customer.RegistrationDate,
	).Scan(&customer.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID busca um cliente por ID, com seus pedidos. Devolve (nil, nil)
// quando não existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	query := `
		SELECT id, name, email, phone, document_number, registration_date
		FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.DocumentNumber, &c.RegistrationDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	orders, err := r.ordersByCustomer(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Orders = orders
	return &c, nil
}

// List devolve todos os clientes, cada um com seus pedidos, na ordem
// natural do banco.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	query := `
		SELECT id, name, email, phone, document_number, registration_date
		FROM customers ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	byID := make(map[int64]*entity.Customer)
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.DocumentNumber, &c.RegistrationDate); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		c.Orders = []entity.Order{}
		list = append(list, &c)
		byID[c.ID] = &c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	orderRows, err := r.q.Query(ctx, `
		SELECT id, total_value, status, customer_id
		FROM orders WHERE customer_id IS NOT NULL ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list orders of customers: %w", err)
	}
	defer orderRows.Close()
	for orderRows.Next() {
		var o entity.Order
		if err := orderRows.Scan(&o.ID, &o.TotalValue, &o.Status, &o.CustomerID); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if owner, ok := byID[*o.CustomerID]; ok {
			owner.Orders = append(owner.Orders, o)
		}
	}
	return list, orderRows.Err()
}

// Update atualiza os campos editáveis do cliente; registration_date não muda.
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, email = $3, phone = $4, document_number = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.Name, customer.Email, customer.Phone, customer.DocumentNumber,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete remove um cliente por ID.
func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) ordersByCustomer(ctx context.Context, customerID int64) ([]entity.Order, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, total_value, status, customer_id
		FROM orders WHERE customer_id = $1 ORDER BY id`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list orders of customer: %w", err)
	}
	defer rows.Close()
	orders := []entity.Order{}
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.TotalValue, &o.Status, &o.CustomerID); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
