package financial

import (
	"errors"
	"strings"
	"time"

	"agrofacil-backend/internal/auth"
	"agrofacil-backend/internal/logging"
	"agrofacil-backend/internal/models"
	"agrofacil-backend/internal/report"
	"agrofacil-backend/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var validate = validator.New()

type TransactionRequest struct {
	Type        string          `json:"type" validate:"required"`
	Category    string          `json:"category" validate:"required,max=100"`
	Description string          `json:"description" validate:"required,max=255"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date" validate:"required"` // "2006-01-02"
}

type TransactionResponse struct {
	ID          uint            `json:"id"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
}

type FinancialReportResponse struct {
	Totals       report.FinancialTotals `json:"totals"`
	Monthly      []report.MonthBucket   `json:"monthly"`
	Categories   []report.CategoryTotal `json:"categories"`
	Recent       []TransactionResponse  `json:"recent"`
	Transactions int                    `json:"transaction_count"`
}

func toResponse(tx models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID,
		Type:        string(tx.Type),
		Category:    tx.Category,
		Description: tx.Description,
		Amount:      tx.Amount,
		Date:        tx.Date.Format("2006-01-02"),
	}
}

// parseType normaliza "Receita"/"Despesa" do formulário para o valor
// minúsculo armazenado.
func parseType(raw string) (models.TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(models.TransactionIncome):
		return models.TransactionIncome, nil
	case string(models.TransactionExpense):
		return models.TransactionExpense, nil
	default:
		return "", fiber.NewError(fiber.StatusBadRequest, "type deve ser 'receita' ou 'despesa'")
	}
}

func parseBody(c *fiber.Ctx) (*models.Transaction, error) {
	var body TransactionRequest
	if err := c.BodyParser(&body); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if err := validate.Struct(body); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Dados da transação inválidos: "+err.Error())
	}

	typ, err := parseType(body.Type)
	if err != nil {
		return nil, err
	}
	if body.Amount.IsNegative() {
		return nil, fiber.NewError(fiber.StatusBadRequest, "amount não pode ser negativo")
	}
	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "date inválida, use 'YYYY-MM-DD'")
	}

	return &models.Transaction{
		Type:        typ,
		Category:    body.Category,
		Description: body.Description,
		Amount:      body.Amount,
		Date:        date,
	}, nil
}

func mapStoreErr(err error) error {
	if errors.Is(err, store.ErrNotAuthenticated) {
		return fiber.NewError(fiber.StatusUnauthorized, "Usuário não autenticado")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Transação não encontrada")
	}
	logging.LogError("financial", "store", err)
	return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível carregar os relatórios")
}

// POST /api/transactions
func CreateTransactionHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		tx, err := parseBody(c)
		if err != nil {
			return err
		}

		if err := s.CreateTransaction(userID, tx); err != nil {
			return mapStoreErr(err)
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(*tx))
	}
}

// GET /api/transactions (ordem de negócio: data decrescente)
func ListTransactionsHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		txs, err := s.ListTransactions(userID)
		if err != nil {
			return mapStoreErr(err)
		}

		resp := make([]TransactionResponse, 0, len(txs))
		for _, tx := range txs {
			resp = append(resp, toResponse(tx))
		}
		return c.JSON(resp)
	}
}

// PUT /api/transactions/:id
func UpdateTransactionHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id inválido")
		}

		tx, err := parseBody(c)
		if err != nil {
			return err
		}

		updated, err := s.UpdateTransaction(userID, uint(id), *tx)
		if err != nil {
			return mapStoreErr(err)
		}
		return c.JSON(toResponse(*updated))
	}
}

// DELETE /api/transactions/:id
func DeleteTransactionHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id inválido")
		}

		if err := s.DeleteTransaction(userID, uint(id)); err != nil {
			return mapStoreErr(err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/reports/financial
// Snapshot fresco → agregação pura → resposta. Nada é cacheado: cada mutação
// força o cliente a reconsultar.
func ReportHandler(s *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		txs, err := s.ListTransactions(userID)
		if err != nil {
			return mapStoreErr(err)
		}

		buckets := report.MonthlyRollup(txs)

		recent := make([]TransactionResponse, 0, 10)
		for i, tx := range txs {
			if i == 10 {
				break
			}
			recent = append(recent, toResponse(tx))
		}

		return c.JSON(FinancialReportResponse{
			Totals:       report.ComputeTotals(txs),
			Monthly:      buckets[:],
			Categories:   report.CategoryBreakdown(txs),
			Recent:       recent,
			Transactions: len(txs),
		})
	}
}
