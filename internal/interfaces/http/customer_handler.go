package http

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/clientes-api/internal/application/dto"
	"github.com/seu-usuario/clientes-api/internal/application/validation"
)

// CustomerService contrato do caso de uso consumido pelo handler.
type CustomerService interface {
	Register(ctx context.Context, in dto.CustomerRequest) (*dto.CustomerResponse, error)
	Update(ctx context.Context, id int64, in dto.CustomerRequest) (*dto.CustomerResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error)
	List(ctx context.Context) ([]*dto.CustomerResponse, error)
	Delete(ctx context.Context, id int64) error
}

// CustomerHandler atende as rotas de /customers.
type CustomerHandler struct {
	svc      CustomerService
	validate *validation.Validator
}

// NewCustomerHandler constrói o handler.
func NewCustomerHandler(svc CustomerService, validate *validation.Validator) *CustomerHandler {
	return &CustomerHandler{svc: svc, validate: validate}
}

// parseID lê o :id da rota como inteiro.
func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// Register POST /customers
func (h *CustomerHandler) Register(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse(msgBadRequest))
	}
	if violations := h.validate.Customer(in); len(violations) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse(violations...))
	}
	customer, err := h.svc.Register(c.UserContext(), in)
	if err != nil {
		status, msg := customerError(err)
		return c.Status(status).JSON(dto.NewErrorResponse(msg))
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// Update PUT /customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse(msgBadRequest))
	}
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse(msgBadRequest))
	}
	if violations := h.validate.Customer(in); len(violations) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse(violations...))
	}
	customer, err := h.svc.Update(c.UserContext(), id, in)
	if err != nil {
		status, msg := customerError(err)
		return c.Status(status).JSON(dto.NewErrorResponse(msg))
	}
	return c.JSON(customer)
}

// GetByID GET /customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse(msgBadRequest))
	}
	customer, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		status, msg := customerError(err)
		return c.Status(status).JSON(dto.NewErrorResponse(msg))
	}
	return c.JSON(customer)
}

// List GET /customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.svc.List(c.UserContext())
	if err != nil {
		status, msg := customerError(err)
		return c.Status(status).JSON(dto.NewErrorResponse(msg))
	}
	return c.JSON(list)
}

// Delete DELETE /customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse(msgBadRequest))
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		status, msg := customerError(err)
		return c.Status(status).JSON(dto.NewErrorResponse(msg))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
