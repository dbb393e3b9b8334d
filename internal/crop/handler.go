package crop

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

type CropRequest struct {
	Name          string  `json:"name" validate:"required,max=100"`
	Area          float64 `json:"area" validate:"required,gt=0"`
	PlantingDate  string  `json:"planting_date" validate:"required"` // "2006-01-02"
	HarvestDate   string  `json:"harvest_date" validate:"required"`
	Stage         string  `json:"stage" validate:"required"`
	ExpectedYield string  `json:"expected_yield" validate:"max=100"`
	// progress não é aceito: sempre derivado do estágio no servidor
}

type CropResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Area          float64 `json:"area"`
	PlantingDate  string  `json:"planting_date"`
	HarvestDate   string  `json:"harvest_date"`
	Stage         string  `json:"stage"`
	Progress      int     `json:"progress"`
	ExpectedYield string  `json:"expected_yield"`
}

func toResponse(c models.Crop) CropResponse {
	return CropResponse{
		ID:            c.ID,
		Name:          c.Name,
		Area:          c.Area,
		PlantingDate:  c.PlantingDate.Format("2006-01-02"),
		HarvestDate:   c.HarvestDate.Format("2006-01-02"),
		Stage:         string(c.Stage),
		Progress:      c.Progress,
		ExpectedYield: c.ExpectedYield,
	}
}

func parseBody(c *fiber.Ctx) (*models.Crop, error) {
	var body CropRequest
	if err := c.BodyParser(&body); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(body); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Dados da cultura inválidos: "+err.Error())
	}

	planting, err := time.Parse("2006-01-02", body.PlantingDate)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "planting_date inválida, use 'YYYY-MM-DD'")
	}
	harvest, err := time.Parse("2006-01-02", body.HarvestDate)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "harvest_date inválida, use 'YYYY-MM-DD'")
	}

	return &models.Crop{
		Name:          body.Name,
		Area:          body.Area,
		PlantingDate:  planting,
		HarvestDate:   harvest,
		Stage:         models.CropStage(body.Stage),
		ExpectedYield: body.ExpectedYield,
	}, nil
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
		return fiber.NewError(fiber.StatusNotFound, "Cultura não encontrada")
	}
	logging.LogError("crop", "store", err)
	return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível acessar as culturas")
}

// POST /api/crops
func CreateHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		crop, err := parseBody(c)
		if err != nil {
			return err
		}

		if err := s.CreateCrop(userID, crop); err != nil {
			return mapStoreErr(err)
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(*crop))
	}
}

// GET /api/crops
func ListHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		crops, err := s.ListCrops(userID)
		if err != nil {
			return mapStoreErr(err)
		}

		resp := make([]CropResponse, 0, len(crops))
		for _, crop := range crops {
			resp = append(resp, toResponse(crop))
		}
		return c.JSON(resp)
	}
}

// GET /api/crops/summary
func SummaryHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		crops, err := s.ListCrops(userID)
		if err != nil {
			return mapStoreErr(err)
		}
		return c.JSON(report.ComputeCropSummary(crops))
	}
}

// PUT /api/crops/:id
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

		crop, err := parseBody(c)
		if err != nil {
			return err
		}

		updated, err := s.UpdateCrop(userID, uint(id), *crop)
		if err != nil {
			return mapStoreErr(err)
		}
		return c.JSON(toResponse(*updated))
	}
}

// DELETE /api/crops/:id
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

		if err := s.DeleteCrop(userID, uint(id)); err != nil {
			return mapStoreErr(err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
