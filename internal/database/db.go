package database

import (
	"agrofacil-backend/internal/config"
	"agrofacil-backend/internal/logging"
	"agrofacil-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	log := logging.GetLogger()

	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Não foi possível conectar ao banco: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("Erro no AutoMigrate: %v", err)
	}

	log.Info("Conexão com o banco estabelecida. Migration concluída.")
}

// Migrate aplica o schema das quatro coleções e dos usuários.
// Separado do Init para os testes de repositório rodarem sobre sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Crop{},
		&models.InventoryItem{},
		&models.Transaction{},
	)
}
