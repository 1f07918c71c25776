package storage

import (
	"context"
	"fmt"

	"pet-friendly-stays/internal/adapters/storage/memory"
	"pet-friendly-stays/internal/adapters/storage/mongo"
	"pet-friendly-stays/internal/adapters/storage/postgres"
	redisstore "pet-friendly-stays/internal/adapters/storage/redis"
	"pet-friendly-stays/internal/adapters/storage/sqlite"
	"pet-friendly-stays/internal/domain/pets"
	"pet-friendly-stays/internal/domain/wizard"
	"pet-friendly-stays/internal/platform/config"
	"pet-friendly-stays/internal/platform/logger"
)

// Backends agrupa lo que necesita el router según STORAGE_DRIVER.
// Las sesiones del asistente sólo salen de memoria si el driver es redis.
type Backends struct {
	KV       pets.KeyValue
	Sessions wizard.SessionRepository
	Close    func() error
}

func Open(ctx context.Context, cfg config.Config, log logger.Logger) (Backends, error) {
	b := Backends{
		Sessions: memory.NewWizardSessions(),
		Close:    func() error { return nil },
	}

	switch cfg.StorageDriver {
	case config.DriverMemory:
		b.KV = memory.NewKV()

	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return Backends{}, err
		}
		b.KV = sqlite.NewKV(db)
		b.Close = db.Close

	case config.DriverPostgres:
		if cfg.PostgresDSN == "" {
			return Backends{}, fmt.Errorf("storage: DB_DSN is required for driver %q", cfg.StorageDriver)
		}
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			return Backends{}, err
		}
		b.KV = postgres.NewKV(db)
		b.Close = db.Close

	case config.DriverRedis:
		client, err := redisstore.Open(ctx, redisstore.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return Backends{}, err
		}
		b.KV = redisstore.NewKV(client)
		b.Sessions = redisstore.NewWizardSessions(client, cfg.WizardSessionTTL)
		b.Close = client.Close

	case config.DriverMongo:
		client, db, err := mongo.Open(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return Backends{}, err
		}
		b.KV = mongo.NewKV(db)
		b.Close = func() error { return client.Disconnect(context.Background()) }

	default:
		return Backends{}, fmt.Errorf("storage: unknown driver %q", cfg.StorageDriver)
	}

	log.Info("storage ready", map[string]any{"driver": cfg.StorageDriver})
	return b, nil
}
