// Package store é o cliente do record store: CRUD sobre as quatro coleções
// (propriedades, culturas, estoque, transações financeiras), sempre recortado
// pelo usuário dono. Nenhuma operação lê estado global de sessão — o userID
// vem explícito em cada chamada.
package store

import (
	"agrofacil-backend/internal/models"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) scoped(userID uint) (*gorm.DB, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}
	return s.db.Where("user_id = ?", userID), nil
}

// -------------------------------------------------
// Propriedades
// -------------------------------------------------

func (s *Store) ListProperties(userID uint) ([]models.Property, error) {
	q, err := s.scoped(userID)
	if err != nil {
		return nil, err
	}
	var props []models.Property
	if err := q.Order("created_at DESC").Find(&props).Error; err != nil {
		return nil, wrap("list properties", err)
	}
	return props, nil
}

func (s *Store) CreateProperty(userID uint, p *models.Property) error {
	if userID == 0 {
		return ErrNotAuthenticated
	}
	p.UserID = userID
	if err := s.db.Create(p).Error; err != nil {
		return wrap("create property", err)
	}
	return nil
}

func (s *Store) UpdateProperty(userID uint, id uint, in models.Property) (*models.Property, error) {
	q, err := s.scoped(userID)
	if err != nil {
		return nil, err
	}
	var p models.Property
	if err := q.First(&p, "id = ?", id).Error; err != nil {
		return nil, wrap("update property", err)
	}
	p.Name = in.Name
	p.Location = in.Location
	p.Area = in.Area
	p.Crops = in.Crops
	p.Status = in.Status
	p.Productivity = in.Productivity
	if err := s.db.Save(&p).Error; err != nil {
		return nil, wrap("update property", err)
	}
	return &p, nil
}

func (s *Store) DeleteProperty(userID uint, id uint) error {
	q, err := s.scoped(userID)
	if err != nil {
		return err
	}
	res := q.Delete(&models.Property{}, "id = ?", id)
	if res.Error != nil {
		return wrap("delete property", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrap("delete property", gorm.ErrRecordNotFound)
	}
	return nil
}

// -------------------------------------------------
// Culturas
// -------------------------------------------------

// applyCropInvariants deriva o progresso do estágio e confere a ordem das
// datas. Toda escrita de cultura passa por aqui — o progresso vindo do
// cliente é ignorado.
func applyCropInvariants(c *models.Crop) error {
	progress, err := models.ProgressForStage(c.Stage)
	if err != nil {
		return err
	}
	c.Progress = progress
	if !c.PlantingDate.Before(c.HarvestDate) {
		return &models.ValidationError{
			Field:   "planting_date",
			Message: "data de plantio deve ser anterior à data de colheita",
		}
	}
	return nil
}

func (s *Store) ListCrops(userID uint) ([]models.Crop, error) {
	q, err := s.scoped(userID)
	if err != nil {
		return nil, err
	}
	var crops []models.Crop
	if err := q.Order("created_at DESC").Find(&crops).Error; err != nil {
		return nil, wrap("list crops", err)
	}
	return crops, nil
}

func (s *Store) CreateCrop(userID uint, c *models.Crop) error {
	if userID == 0 {
		return ErrNotAuthenticated
	}
	if err := applyCropInvariants(c); err != nil {
		return err
	}
	c.UserID = userID
	if err := s.db.Create(c).Error; err != nil {
		return wrap("create crop", err)
	}
	return nil
}

func (s *Store) UpdateCrop(userID uint, id uint, in models.Crop) (*models.Crop, error) {
	q, err := s.scoped(userID)
	if err != nil {
		return nil, err
	}
	var c models.Crop
	if err := q.First(&c, "id = ?", id).Error; err != nil {
		return nil, wrap("update crop", err)
	}
	c.Name = in.Name
	c.Area = in.Area
	c.PlantingDate = in.PlantingDate
	c.HarvestDate = in.HarvestDate
	c.Stage = in.Stage
	c.ExpectedYield = in.ExpectedYield
	if err := applyCropInvariants(&c); err != nil {
		return nil, err
	}
	if err := s.db.Save(&c).Error; err != nil {
		return nil, wrap("update crop", err)
	}
	return &c, nil
}

func (s *Store) DeleteCrop(userID uint, id uint) error {
	q, err := s.scoped(userID)
	if err != nil {
		return err
	}
	res := q.Delete(&models.Crop{}, "id = ?", id)
	if res.Error != nil {
		return wrap("delete crop", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrap("delete crop", gorm.ErrRecordNotFound)
	}
	return nil
}

// -------------------------------------------------
// Estoque
// -------------------------------------------------

func (s *Store) ListInventory(userID uint) ([]models.InventoryItem, error) {
	q, err := s.scoped(userID)
	if err != nil {
		return nil, err
	}
	var items []models.InventoryItem
	if err := q.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, wrap("list inventory", err)
	}
	return items, nil
}

func (s *Store) CreateInventoryItem(userID uint, item *models.InventoryItem) error {
	if userID == 0 {
		return ErrNotAuthenticated
	}
	item.UserID = userID
	if err := s.db.Create(item).Error; err != nil {
		return wrap("create inventory item", err)
	}
	return nil
}

func (s *Store) UpdateInventoryItem(userID uint, id uint, in models.InventoryItem) (*models.InventoryItem, error) {
	q, err := s.scoped(userID)
	if err != nil {
		return nil, err
	}
	var item models.InventoryItem
	if err := q.First(&item, "id = ?", id).Error; err != nil {
		return nil, wrap("update inventory item", err)
	}
	item.Name = in.Name
	item.Category = in.Category
	item.Quantity = in.Quantity
	item.Unit = in.Unit
	item.MinStock = in.MinStock
	item.CostPerUnit = in.CostPerUnit
	item.Supplier = in.Supplier
	item.ExpiryDate = in.ExpiryDate
	if err := s.db.Save(&item).Error; err != nil {
		return nil, wrap("update inventory item", err)
	}
	return &item, nil
}

func (s *Store) DeleteInventoryItem(userID uint, id uint) error {
	q, err := s.scoped(userID)
	if err != nil {
		return err
	}
	res := q.Delete(&models.InventoryItem{}, "id = ?", id)
	if res.Error != nil {
		return wrap("delete inventory item", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrap("delete inventory item", gorm.ErrRecordNotFound)
	}
	return nil
}

// -------------------------------------------------
// Transações financeiras
// -------------------------------------------------

// ListTransactions ordena por data decrescente (ordem de negócio dos
// relatórios), não por criação.
func (s *Store) ListTransactions(userID uint) ([]models.Transaction, error) {
	q, err := s.scoped(userID)
	if err != nil {
		return nil, err
	}
	var txs []models.Transaction
	if err := q.Order("date DESC, id DESC").Find(&txs).Error; err != nil {
		return nil, wrap("list transactions", err)
	}
	return txs, nil
}

func (s *Store) CreateTransaction(userID uint, tx *models.Transaction) error {
	if userID == 0 {
		return ErrNotAuthenticated
	}
	tx.UserID = userID
	if err := s.db.Create(tx).Error; err != nil {
		return wrap("create transaction", err)
	}
	return nil
}

func (s *Store) UpdateTransaction(userID uint, id uint, in models.Transaction) (*models.Transaction, error) {
	q, err := s.scoped(userID)
	if err != nil {
		return nil, err
	}
	var tx models.Transaction
	if err := q.First(&tx, "id = ?", id).Error; err != nil {
		return nil, wrap("update transaction", err)
	}
	tx.Type = in.Type
	tx.Category = in.Category
	tx.Description = in.Description
	tx.Amount = in.Amount
	tx.Date = in.Date
	if err := s.db.Save(&tx).Error; err != nil {
		return nil, wrap("update transaction", err)
	}
	return &tx, nil
}

func (s *Store) DeleteTransaction(userID uint, id uint) error {
	q, err := s.scoped(userID)
	if err != nil {
		return err
	}
	res := q.Delete(&models.Transaction{}, "id = ?", id)
	if res.Error != nil {
		return wrap("delete transaction", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrap("delete transaction", gorm.ErrRecordNotFound)
	}
	return nil
}
