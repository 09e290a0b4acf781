package infra

import (
	"fmt"

	"tiendapos/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate for every entity. The schema is small enough that
// AutoMigrate covers it; decimal precision comes from the struct tags.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return db, nil
}

// RunMigrations creates or updates all tables. Shared with integration tests.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Producto{},
		&model.Empleado{},
		&model.MovimientoInventario{},
		&model.Recepcion{},
		&model.Venta{},
		&model.DetalleVenta{},
		&model.ReporteProducto{},
	)
}
