package store

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/diillson/joinery-estimator-go/internal/shared/types"
)

// DefaultSQLitePath is used when no DSN is configured for sqlite.
const DefaultSQLitePath = "joinery.db"

// Connect opens the database selected by dbType.
func Connect(dbType, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch dbType {
	case "", "sqlite":
		if dsn == "" {
			dsn = DefaultSQLitePath
		}
		dialector = sqlite.Open(dsn)
	case "postgres", "postgresql":
		dialector = postgres.Open(dsn)
	case "mysql", "mariadb":
		dialector = mysql.Open(dsn)
	case "sqlserver", "mssql":
		dialector = sqlserver.Open(dsn)
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnknownDBType, dbType)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", dbTypeName(dbType), err)
	}

	return db, nil
}

// AutoMigrate runs automatic migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&OperationModel{},
		&MaterialModel{},
		&DetailTypeModel{},
		&DetailComponentModel{},
		&DetailMaterialModel{},
		&ProjectModel{},
		&ProjectDetailModel{},
		&ProjectManualOperationModel{},
		&ProjectExpenseModel{},
	)
}

// Close closes the database connection.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dbTypeName(dbType string) string {
	if dbType == "" {
		return "sqlite"
	}
	return dbType
}
