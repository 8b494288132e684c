package data

import (
	"context"
	"fmt"
	"time"

	"shipcatalog/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(
	NewData,
	NewShipRepo,
	NewWriteLimiter,
)

// Storage drivers accepted in conf.Data.Driver.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Data encapsulates database and redis connections. db is nil for the memory driver
// and rdb is nil when redis is not configured or unreachable.
type Data struct {
	db  *gorm.DB
	rdb *redis.Client
	log *log.Helper
}

// NewData creates Data instance with database and Redis connections
func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	l := log.NewHelper(logger)
	data := &Data{log: l}

	switch c.Driver {
	case DriverMemory:
		l.Info("using in-memory ship storage")
	case DriverPostgres, "":
		db, err := openPostgres(c.Database)
		if err != nil {
			l.Errorf("failed to connect to database: %v", err)
			return nil, nil, err
		}
		data.db = db
		l.Info("database connected successfully")
	default:
		return nil, nil, fmt.Errorf("unknown data driver %q", c.Driver)
	}

	if c.Redis != nil && c.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         c.Redis.Addr,
			Password:     c.Redis.Password,
			ReadTimeout:  c.Redis.ReadTimeout.AsDuration(),
			WriteTimeout: c.Redis.WriteTimeout.AsDuration(),
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := rdb.Ping(ctx).Err(); err != nil {
			// Redis is optional, continue without it
			l.Warnf("failed to connect to redis: %v", err)
			_ = rdb.Close()
		} else {
			data.rdb = rdb
			l.Info("redis connected successfully")
		}
	}

	cleanup := func() {
		l.Info("closing data resources")
		if data.rdb != nil {
			if err := data.rdb.Close(); err != nil {
				l.Errorf("failed to close redis: %v", err)
			}
		}
		if data.db != nil {
			if sqlDB, err := data.db.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					l.Errorf("failed to close database: %v", err)
				}
			}
		}
	}

	return data, cleanup, nil
}

func openPostgres(c *conf.Data_Database) (*gorm.DB, error) {
	if c == nil || c.Source == "" {
		return nil, fmt.Errorf("database source is required for the %s driver", DriverPostgres)
	}
	db, err := gorm.Open(postgres.Open(c.Source), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if c.AutoMigrate {
		if err := db.AutoMigrate(&Ship{}); err != nil {
			return nil, fmt.Errorf("failed to migrate ship table: %w", err)
		}
	}
	return db, nil
}
