package entity

import "github.com/shopspring/decimal"

// Order representa um pedido. A referência ao cliente é opcional e fraca:
// o pedido aponta para o dono, nunca o contrário.
type Order struct {
	ID         int64
	TotalValue decimal.Decimal
	Status     string // rótulo livre: NEW, PAID, etc.
	CustomerID *int64 // nil quando o pedido não pertence a nenhum cliente
}
