package store

import (
	"errors"
	"testing"
	"time"

	"agrofacil-backend/internal/database"
	"agrofacil-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrindo sqlite em memória: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrando schema: %v", err)
	}
	return New(db)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNotAuthenticated(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.ListProperties(0); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("ListProperties(0) err = %v, want ErrNotAuthenticated", err)
	}
	if err := s.CreateProperty(0, &models.Property{Name: "x", Area: 1}); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("CreateProperty(0) err = %v, want ErrNotAuthenticated", err)
	}
	if err := s.DeleteTransaction(0, 1); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("DeleteTransaction(0) err = %v, want ErrNotAuthenticated", err)
	}
}

func TestPropertyCRUDScopedByUser(t *testing.T) {
	s := newTestStore(t)

	mine := models.Property{
		Name:     "Fazenda Boa Vista",
		Location: "Sorriso - MT",
		Area:     120.5,
		Crops:    []string{"Soja", "Milho"},
		Status:   models.PropertyStatusActive,
	}
	if err := s.CreateProperty(1, &mine); err != nil {
		t.Fatalf("CreateProperty: %v", err)
	}
	theirs := models.Property{Name: "Sítio Alheio", Area: 10, Status: models.PropertyStatusInactive}
	if err := s.CreateProperty(2, &theirs); err != nil {
		t.Fatalf("CreateProperty: %v", err)
	}

	props, err := s.ListProperties(1)
	if err != nil {
		t.Fatalf("ListProperties: %v", err)
	}
	if len(props) != 1 || props[0].Name != "Fazenda Boa Vista" {
		t.Fatalf("usuário 1 deveria ver só a própria propriedade, got %+v", props)
	}
	if len(props[0].Crops) != 2 || props[0].Crops[0] != "Soja" {
		t.Errorf("Crops = %v, want ordem preservada [Soja Milho]", props[0].Crops)
	}

	// update de registro de outro usuário não encontra nada
	if _, err := s.UpdateProperty(1, theirs.ID, mine); err == nil {
		t.Fatal("UpdateProperty sobre registro alheio deveria falhar")
	}

	// delete de registro alheio também não
	err = s.DeleteProperty(1, theirs.ID)
	var serr *StoreError
	if !errors.As(err, &serr) || !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("DeleteProperty alheio: err = %v, want StoreError(ErrRecordNotFound)", err)
	}

	if err := s.DeleteProperty(1, mine.ID); err != nil {
		t.Fatalf("DeleteProperty: %v", err)
	}
	props, _ = s.ListProperties(1)
	if len(props) != 0 {
		t.Errorf("propriedade não foi removida: %+v", props)
	}
}

func TestListNewestFirst(t *testing.T) {
	s := newTestStore(t)

	first := models.InventoryItem{Name: "Calcário", Quantity: 10, Unit: "kg"}
	if err := s.CreateInventoryItem(1, &first); err != nil {
		t.Fatalf("CreateInventoryItem: %v", err)
	}
	second := models.InventoryItem{Name: "Ureia", Quantity: 5, Unit: "kg"}
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	if err := s.CreateInventoryItem(1, &second); err != nil {
		t.Fatalf("CreateInventoryItem: %v", err)
	}

	items, err := s.ListInventory(1)
	if err != nil {
		t.Fatalf("ListInventory: %v", err)
	}
	if len(items) != 2 || items[0].Name != "Ureia" {
		t.Errorf("lista deveria vir da criação mais recente para a mais antiga, got %v, %v", items[0].Name, items[1].Name)
	}
}

func TestCropProgressDerivedFromStage(t *testing.T) {
	s := newTestStore(t)

	c := models.Crop{
		Name:         "Soja",
		Area:         50,
		PlantingDate: date(2026, time.October, 1),
		HarvestDate:  date(2027, time.February, 15),
		Stage:        models.StageHarvest,
		Progress:     7, // valor do cliente é ignorado
	}
	if err := s.CreateCrop(1, &c); err != nil {
		t.Fatalf("CreateCrop: %v", err)
	}
	if c.Progress != 100 {
		t.Errorf("progress após create = %d, want 100 (Colheita)", c.Progress)
	}

	// round-trip: muda só o estágio, progresso acompanha na próxima leitura
	c.Stage = models.StagePlanning
	if _, err := s.UpdateCrop(1, c.ID, c); err != nil {
		t.Fatalf("UpdateCrop: %v", err)
	}

	crops, err := s.ListCrops(1)
	if err != nil {
		t.Fatalf("ListCrops: %v", err)
	}
	if len(crops) != 1 {
		t.Fatalf("len(crops) = %d, want 1", len(crops))
	}
	if crops[0].Progress != 0 {
		t.Errorf("progress após update para Planejamento = %d, want 0", crops[0].Progress)
	}
}

func TestCropInvalidStageRejected(t *testing.T) {
	s := newTestStore(t)

	c := models.Crop{
		Name:         "Milho",
		Area:         20,
		PlantingDate: date(2026, time.September, 1),
		HarvestDate:  date(2027, time.January, 10),
		Stage:        "Germinação",
	}
	err := s.CreateCrop(1, &c)
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("estágio inválido: err = %v, want *models.ValidationError", err)
	}

	crops, _ := s.ListCrops(1)
	if len(crops) != 0 {
		t.Errorf("nada deveria ter sido gravado, got %+v", crops)
	}
}

func TestCropDateOrderRejected(t *testing.T) {
	s := newTestStore(t)

	c := models.Crop{
		Name:         "Café",
		Area:         15,
		PlantingDate: date(2026, time.June, 1),
		HarvestDate:  date(2026, time.June, 1), // igual também é inválido
		Stage:        models.StagePlanting,
	}
	err := s.CreateCrop(1, &c)
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("plantio sem preceder colheita: err = %v, want *models.ValidationError", err)
	}
}

func TestTransactionsOrderedByDateDesc(t *testing.T) {
	s := newTestStore(t)

	older := models.Transaction{
		Type: models.TransactionIncome, Category: "Venda de Soja",
		Description: "Saca", Amount: decimal.NewFromInt(1000),
		Date: date(2026, time.March, 1),
	}
	newer := models.Transaction{
		Type: models.TransactionExpense, Category: "Diesel",
		Description: "Abastecimento", Amount: decimal.NewFromInt(400),
		Date: date(2026, time.May, 20),
	}
	if err := s.CreateTransaction(1, &older); err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if err := s.CreateTransaction(1, &newer); err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}

	txs, err := s.ListTransactions(1)
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if len(txs) != 2 || !txs[0].Date.After(txs[1].Date) {
		t.Fatalf("relatórios exigem data decrescente, got %v antes de %v", txs[0].Date, txs[1].Date)
	}
	if !txs[1].Amount.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Amount não sobreviveu ao round-trip: %s", txs[1].Amount)
	}
}

func TestUpdateTransaction(t *testing.T) {
	s := newTestStore(t)

	tx := models.Transaction{
		Type: models.TransactionIncome, Category: "Venda de Milho",
		Description: "Lote 3", Amount: decimal.NewFromInt(250),
		Date: date(2026, time.April, 2),
	}
	if err := s.CreateTransaction(1, &tx); err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}

	tx.Amount = decimal.NewFromInt(300)
	tx.Type = models.TransactionExpense
	updated, err := s.UpdateTransaction(1, tx.ID, tx)
	if err != nil {
		t.Fatalf("UpdateTransaction: %v", err)
	}
	if !updated.Amount.Equal(decimal.NewFromInt(300)) || updated.Type != models.TransactionExpense {
		t.Errorf("update não aplicado: %+v", updated)
	}
}
