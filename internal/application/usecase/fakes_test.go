package usecase_test

import (
	"context"
	"sync"

	"github.com/seu-usuario/clientes-api/internal/application/usecase"
	"github.com/seu-usuario/clientes-api/internal/domain"
	"github.com/seu-usuario/clientes-api/internal/domain/entity"
	"github.com/seu-usuario/clientes-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória dos repositórios, no lugar do PostgreSQL.
// Devolvem cópias nas leituras, como um banco de verdade.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	mu        sync.Mutex
	seq       int64
	customers map[int64]entity.Customer
	getCalls  int // quantas vezes GetByID bateu no "banco"
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[int64]entity.Customer)}
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.customers {
		if existing.Email == c.Email || existing.DocumentNumber == c.DocumentNumber {
			return domain.ErrDuplicate
		}
	}
	f.seq++
	c.ID = f.seq
	f.customers[c.ID] = *c
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	c, ok := f.customers[id]
	if !ok {
		return nil, nil
	}
	cp := c
	cp.Orders = append([]entity.Order(nil), c.Orders...)
	return &cp, nil
}

func (f *fakeCustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Customer
	for id := int64(1); id <= f.seq; id++ {
		if c, ok := f.customers[id]; ok {
			cp := c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.customers[c.ID] = *c
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.customers, id)
	return nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	seq    int64
	orders map[int64]entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[int64]entity.Order)}
}

func (f *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	o.ID = f.seq
	f.orders[o.ID] = *o
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := o
	return &cp, nil
}

func (f *fakeOrderRepo) List(_ context.Context) ([]*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Order
	for id := int64(1); id <= f.seq; id++ {
		if o, ok := f.orders[id]; ok {
			cp := o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, o *entity.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders[o.ID] = *o
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.orders[id]
	return ok, nil
}

func (f *fakeOrderRepo) DeleteByCustomer(_ context.Context, customerID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, o := range f.orders {
		if o.CustomerID != nil && *o.CustomerID == customerID {
			delete(f.orders, id)
		}
	}
	return nil
}

// fakeTxRunner executa o callback direto sobre os fakes: nos testes de caso
// de uso só interessa a ordem das operações, não a transação em si.
type fakeTxRunner struct {
	customers *fakeCustomerRepo
	orders    *fakeOrderRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	customers repository.CustomerRepository,
	orders repository.OrderRepository,
) error) error {
	return fn(f.customers, f.orders)
}

var _ usecase.TxRunner = (*fakeTxRunner)(nil)
