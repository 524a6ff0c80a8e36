package dto

import "github.com/seu-usuario/clientes-api/internal/domain/entity"

// dateLayout formato da data de cadastro nas respostas (ISO, só a data).
const dateLayout = "2006-01-02"

// CustomerRequest body para POST /customers e PUT /customers/:id.
// registrationDate nunca vem do chamador: o serviço carimba no registro.
type CustomerRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required,telefone_br"`
	DocumentNumber string `json:"documentNumber" validate:"required,cpf"`
}

// CustomerResponse cliente nas respostas, com os pedidos aninhados.
type CustomerResponse struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone"`
	DocumentNumber   string          `json:"documentNumber"`
	RegistrationDate string          `json:"registrationDate"`
	Orders           []OrderResponse `json:"orders"`
}

// NewCustomerResponse converte a entidade para o DTO de resposta.
func NewCustomerResponse(c *entity.Customer) *CustomerResponse {
	orders := make([]OrderResponse, 0, len(c.Orders))
	for i := range c.Orders {
		orders = append(orders, *NewOrderResponse(&c.Orders[i]))
	}
	return &CustomerResponse{
		ID:               c.ID,
		Name:             c.Name,
		Email:            c.Email,
		Phone:            c.Phone,
		DocumentNumber:   c.DocumentNumber,
		RegistrationDate: c.RegistrationDate.Format(dateLayout),
		Orders:           orders,
	}
}
