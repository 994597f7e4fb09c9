package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// ErrInvalidDSN is returned when the connection settings cannot form a valid DSN.
	ErrInvalidDSN = errors.New("invalid database connection settings")
	// ErrUnsupportedDriver is returned for drivers other than postgres, mysql and sqlite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Connect establishes a connection pool to the configured database and
// verifies it with a ping bounded by ctx and the configured timeout.
func Connect(ctx context.Context, cfg Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	// Silence GORM; failures are reported by the callers through zap.
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 20
	}
	if cfg.Driver == DriverSQLite {
		// Every connection to ":memory:" would open a fresh empty database.
		maxOpen = 1
	}
	maxIdle := maxOpen / 2
	if maxIdle < 1 {
		maxIdle = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.timeout())*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func dialectorFor(cfg Config) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverPostgres, "":
		connConfig, err := pgx.ParseConfig(cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDSN, err)
		}
		return postgres.New(postgres.Config{Conn: stdlib.OpenDB(*connConfig)}), nil
	case DriverMySQL:
		return mysql.Open(cfg.DSN()), nil
	case DriverSQLite:
		if cfg.Name == "" {
			return nil, fmt.Errorf("%w: sqlite requires a database name", ErrInvalidDSN)
		}
		return sqlite.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
