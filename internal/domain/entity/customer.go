package entity

import "time"

// Customer representa um cliente cadastrado. O ID é gerado pelo banco
// (BIGSERIAL) e a data de cadastro é carimbada pelo serviço no registro.
type Customer struct {
	ID               int64
	Name             string
	Email            string // único entre todos os clientes
	Phone            string // formato (99) 9999-9999
	DocumentNumber   string // CPF no formato 999.999.999-99, único
	RegistrationDate time.Time
	Orders           []Order // pedidos do cliente; removidos em cascata com ele
}
