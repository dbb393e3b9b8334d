package inventory

import (
	"errors"
	"time"

	"agrofacil-backend/internal/auth"
	"agrofacil-backend/internal/logging"
	"agrofacil-backend/internal/models"
	"agrofacil-backend/internal/report"
	"agrofacil-backend/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

type ItemRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Category    string  `json:"category" validate:"max=100"`
	Quantity    float64 `json:"quantity" validate:"gte=0"`
	Unit        string  `json:"unit" validate:"required,max=20"`
	MinStock    float64 `json:"min_stock" validate:"gte=0"`
	CostPerUnit float64 `json:"cost_per_unit" validate:"gte=0"`
	Supplier    string  `json:"supplier" validate:"max=100"`
	ExpiryDate  *string `json:"expiry_date"` // "2006-01-02", opcional
}

type ItemResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	MinStock    float64 `json:"min_stock"`
	CostPerUnit float64 `json:"cost_per_unit"`
	Supplier    string  `json:"supplier"`
	ExpiryDate  *string `json:"expiry_date"`
	LowStock    bool    `json:"low_stock"`
	Value       float64 `json:"value"`
}

func toResponse(item models.InventoryItem) ItemResponse {
	var expiry *string
	if item.ExpiryDate != nil {
		s := item.ExpiryDate.Format("2006-01-02")
		expiry = &s
	}
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Category:    item.Category,
		Quantity:    item.Quantity,
		Unit:        item.Unit,
		MinStock:    item.MinStock,
		CostPerUnit: item.CostPerUnit,
		Supplier:    item.Supplier,
		ExpiryDate:  expiry,
		LowStock:    item.LowStock(),
		Value:       item.Value(),
	}
}

func parseBody(c *fiber.Ctx) (*models.InventoryItem, error) {
	var body ItemRequest
	if err := c.BodyParser(&body); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(body); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Dados do item inválidos: "+err.Error())
	}

	var expiry *time.Time
	if body.ExpiryDate != nil && *body.ExpiryDate != "" {
		d, err := time.Parse("2006-01-02", *body.ExpiryDate)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "expiry_date inválida, use 'YYYY-MM-DD'")
		}
		expiry = &d
	}

	return &models.InventoryItem{
		Name:        body.Name,
		Category:    body.Category,
		Quantity:    body.Quantity,
		Unit:        body.Unit,
		MinStock:    body.MinStock,
		CostPerUnit: body.CostPerUnit,
		Supplier:    body.Supplier,
		ExpiryDate:  expiry,
	}, nil
}

func mapStoreErr(err error) error {
	if errors.Is(err, store.ErrNotAuthenticated) {
		return fiber.NewError(fiber.StatusUnauthorized, "Usuário não autenticado")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Item não encontrado")
	}
	logging.LogError("inventory", "store", err)
	return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível acessar o estoque")
}

// POST /api/inventory
func CreateHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		item, err := parseBody(c)
		if err != nil {
			return err
		}

		if err := s.CreateInventoryItem(userID, item); err != nil {
			return mapStoreErr(err)
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(*item))
	}
}

// GET /api/inventory
func ListHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		items, err := s.ListInventory(userID)
		if err != nil {
			return mapStoreErr(err)
		}

		resp := make([]ItemResponse, 0, len(items))
		for _, item := range items {
			resp = append(resp, toResponse(item))
		}
		return c.JSON(resp)
	}
}

// GET /api/inventory/low-stock
func LowStockHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		items, err := s.ListInventory(userID)
		if err != nil {
			return mapStoreErr(err)
		}

		low := report.LowStockItems(items)
		resp := make([]ItemResponse, 0, len(low))
		for _, item := range low {
			resp = append(resp, toResponse(item))
		}
		return c.JSON(resp)
	}
}

// PUT /api/inventory/:id
func UpdateHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id inválido")
		}

		item, err := parseBody(c)
		if err != nil {
			return err
		}

		updated, err := s.UpdateInventoryItem(userID, uint(id), *item)
		if err != nil {
			return mapStoreErr(err)
		}
		return c.JSON(toResponse(*updated))
	}
}

// DELETE /api/inventory/:id
func DeleteHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id inválido")
		}

		if err := s.DeleteInventoryItem(userID, uint(id)); err != nil {
			return mapStoreErr(err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
