package usecase

import (
	"context"
	"time"

	"github.com/seu-usuario/clientes-api/internal/application/dto"
	"github.com/seu-usuario/clientes-api/internal/domain"
	"github.com/seu-usuario/clientes-api/internal/domain/entity"
	"github.com/seu-usuario/clientes-api/internal/domain/repository"
)

// CustomerCache cache limitado das consultas por ID, com invalidação
// explícita nas mutações para evitar leituras velhas.
type CustomerCache interface {
	Get(id int64) (*entity.Customer, bool)
	Set(id int64, customer *entity.Customer)
	Invalidate(id int64)
}

// TxRunner executa fn com os repositórios atados a uma única transação.
type TxRunner interface {
	Run(ctx context.Context, fn func(customers repository.CustomerRepository, orders repository.OrderRepository) error) error
}

// CustomerUseCase casos de uso de clientes.
type CustomerUseCase struct {
	repo  repository.CustomerRepository
	tx    TxRunner
	cache CustomerCache
}

// NewCustomerUseCase constrói o caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, tx TxRunner, cache CustomerCache) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, tx: tx, cache: cache}
}

// Register carimba a data de cadastro e persiste. Violação de unicidade
// (e-mail ou CPF) sobe do repositório como domain.ErrDuplicate.
func (uc *CustomerUseCase) Register(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	customer := &entity.Customer{
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		DocumentNumber:   in.DocumentNumber,
		RegistrationDate: time.Now(),
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return dto.NewCustomerResponse(customer), nil
}

// Update sobrescreve os campos editáveis do cliente existente; a data de
// cadastro e os pedidos ficam intocados. Invalida a entrada do cache.
func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.CustomerNotFound(id)
	}
	existing.Name = in.Name
	existing.Email = in.Email
	existing.Phone = in.Phone
	existing.DocumentNumber = in.DocumentNumber
	if err := uc.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	uc.cache.Invalidate(id)
	return dto.NewCustomerResponse(existing), nil
}

// GetByID consulta com read-through no cache.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	if cached, ok := uc.cache.Get(id); ok {
		return dto.NewCustomerResponse(cached), nil
	}
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.CustomerNotFound(id)
	}
	uc.cache.Set(id, customer)
	return dto.NewCustomerResponse(customer), nil
}

// List devolve todos os clientes, cada um com seus pedidos.
func (uc *CustomerUseCase) List(ctx context.Context) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.NewCustomerResponse(c))
	}
	return out, nil
}

// Delete remove o cliente e seus pedidos em uma única transação:
// primeiro os pedidos, depois o cliente. Invalida a entrada do cache.
func (uc *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.CustomerNotFound(id)
	}
	err = uc.tx.Run(ctx, func(customers repository.CustomerRepository, orders repository.OrderRepository) error {
		if err := orders.DeleteByCustomer(ctx, id); err != nil {
			return err
		}
		return customers.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	uc.cache.Invalidate(id)
	return nil
}
