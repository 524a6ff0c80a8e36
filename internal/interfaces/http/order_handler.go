package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/clientes-api/internal/application/dto"
	"github.com/seu-usuario/clientes-api/internal/domain"
)

// OrderService contrato do caso de uso consumido pelo handler. GetByID e
// Update devolvem (nil, nil) quando o pedido não existe.
type OrderService interface {
	List(ctx context.Context) ([]*dto.OrderResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.OrderResponse, error)
	Create(ctx context.Context, in dto.OrderRequest) (*dto.OrderResponse, error)
	Update(ctx context.Context, id int64, in dto.OrderRequest) (*dto.OrderResponse, error)
	Delete(ctx context.Context, id int64) error
}

// OrderHandler atende as rotas de /orders. Diferente da superfície de
// clientes, o 404 daqui carrega a mensagem detalhada com o ID.
type OrderHandler struct {
	svc OrderService
}

// NewOrderHandler constrói o handler.
func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// Create POST /orders
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.OrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse(msgBadRequest))
	}
	order, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse(msgBadRequest))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewErrorResponse(msgInternal))
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// List GET /orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	list, err := h.svc.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewErrorResponse(msgInternal))
	}
	return c.JSON(list)
}

// GetByID GET /orders/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse(msgBadRequest))
	}
	order, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewErrorResponse(msgInternal))
	}
	if order == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.NewErrorResponse(domain.OrderNotFoundMessage(id)))
	}
	return c.JSON(order)
}

// Update PUT /orders/:id
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse(msgBadRequest))
	}
	var in dto.OrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse(msgBadRequest))
	}
	order, err := h.svc.Update(c.UserContext(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse(msgBadRequest))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewErrorResponse(msgInternal))
	}
	if order == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.NewErrorResponse(domain.OrderNotFoundMessage(id)))
	}
	return c.JSON(order)
}

// Delete DELETE /orders/:id
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse(msgBadRequest))
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.NewErrorResponse(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.NewErrorResponse(msgInternal))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
