package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Max-Antonio/lu-estilo-API/internal/config"
	"github.com/Max-Antonio/lu-estilo-API/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Migrate registra a tabela de junção explícita e roda o AutoMigrate.
// Separado do NewDB para os testes poderem migrar um banco próprio.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Pedido{}, "Produtos", &models.PedidoProduto{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.Usuario{},
		&models.Cliente{},
		&models.Produto{},
		&models.Pedido{},
		&models.PedidoProduto{},
		&models.AuditLog{},
	)
}
