package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/clientes-api/internal/application/validation"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	CustomerSvc CustomerService
	OrderSvc    OrderService
	Validate    *validation.Validator
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	customers := app.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerSvc, deps.Validate)
	customers.Post("/", customerHandler.Register)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	orders := app.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderSvc)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)
}
