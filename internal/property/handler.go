package property

import (
	"errors"

	"agrofacil-backend/internal/auth"
	"agrofacil-backend/internal/logging"
	"agrofacil-backend/internal/models"
	"agrofacil-backend/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

type PropertyRequest struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Location     string   `json:"location" validate:"max=255"`
	Area         float64  `json:"area" validate:"required,gt=0"`
	Crops        []string `json:"crops"`
	Status       string   `json:"status" validate:"required,oneof=Ativa Preparando Inativa"`
	Productivity string   `json:"productivity" validate:"max=100"`
}

type PropertyResponse struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	Area         float64  `json:"area"`
	Crops        []string `json:"crops"`
	Status       string   `json:"status"`
	Productivity string   `json:"productivity"`
	CreatedAt    string   `json:"created_at"`
}

func toResponse(p models.Property) PropertyResponse {
	crops := p.Crops
	if crops == nil {
		crops = []string{}
	}
	return PropertyResponse{
		ID:           p.ID,
		Name:         p.Name,
		Location:     p.Location,
		Area:         p.Area,
		Crops:        crops,
		Status:       string(p.Status),
		Productivity: p.Productivity,
		CreatedAt:    p.CreatedAt.Format("2006-01-02"),
	}
}

func mapStoreErr(err error) error {
	if errors.Is(err, store.ErrNotAuthenticated) {
		return fiber.NewError(fiber.StatusUnauthorized, "Usuário não autenticado")
	}
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return fiber.NewError(fiber.StatusBadRequest, verr.Error())
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Propriedade não encontrada")
	}
	logging.LogError("property", "store", err)
	return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível acessar as propriedades")
}

// POST /api/properties
func CreateHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var body PropertyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados da propriedade inválidos: "+err.Error())
		}

		prop := models.Property{
			Name:         body.Name,
			Location:     body.Location,
			Area:         body.Area,
			Crops:        body.Crops,
			Status:       models.PropertyStatus(body.Status),
			Productivity: body.Productivity,
		}
		if err := s.CreateProperty(userID, &prop); err != nil {
			return mapStoreErr(err)
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(prop))
	}
}

// GET /api/properties
func ListHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		props, err := s.ListProperties(userID)
		if err != nil {
			return mapStoreErr(err)
		}

		resp := make([]PropertyResponse, 0, len(props))
		for _, p := range props {
			resp = append(resp, toResponse(p))
		}
		return c.JSON(resp)
	}
}

// PUT /api/properties/:id
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

		var body PropertyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}
		if err := validate.Struct(body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dados da propriedade inválidos: "+err.Error())
		}

		updated, err := s.UpdateProperty(userID, uint(id), models.Property{
			Name:         body.Name,
			Location:     body.Location,
			Area:         body.Area,
			Crops:        body.Crops,
			Status:       models.PropertyStatus(body.Status),
			Productivity: body.Productivity,
		})
		if err != nil {
			return mapStoreErr(err)
		}

		return c.JSON(toResponse(*updated))
	}
}

// DELETE /api/properties/:id
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

		if err := s.DeleteProperty(userID, uint(id)); err != nil {
			return mapStoreErr(err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
