package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Drivers de persistencia soportados para el puerto KeyValue.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMongo    = "mongo"
)

// Config reúne toda la configuración del proceso.
type Config struct {
	Port      string `mapstructure:"PORT"`
	AppName   string `mapstructure:"APP_NAME"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	StorageDriver string `mapstructure:"STORAGE_DRIVER"`
	SQLitePath    string `mapstructure:"SQLITE_PATH"`
	PostgresDSN   string `mapstructure:"DB_DSN"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	MongoURI      string `mapstructure:"MONGO_URI"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	// Token del proveedor de mapas. Vacío = mapa sin configurar (se puede pegar en runtime).
	MapboxToken string `mapstructure:"MAPBOX_TOKEN"`

	// Con MAPBOX_VERIFY_TOKEN=true, PUT /map/token consulta MAPBOX_API_URL antes de aceptar el token.
	MapboxVerifyToken bool   `mapstructure:"MAPBOX_VERIFY_TOKEN"`
	MapboxAPIURL      string `mapstructure:"MAPBOX_API_URL"`

	RateLimitPerMin  int           `mapstructure:"RATE_LIMIT_PER_MIN"`
	VetLookupDelay   time.Duration `mapstructure:"VET_LOOKUP_DELAY"`
	WizardSessionTTL time.Duration `mapstructure:"WIZARD_SESSION_TTL"`
}

// Load lee .env (si existe), luego config.yaml (si existe) y por último variables de entorno.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	// AutomaticEnv no participa en Unmarshal salvo que la key sea conocida: los defaults las registran.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.normalize()
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_NAME", "pet-friendly-stays")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")

	v.SetDefault("STORAGE_DRIVER", DriverMemory)
	v.SetDefault("SQLITE_PATH", "pet-friendly-stays.db")
	v.SetDefault("DB_DSN", "")

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "pet_friendly_stays")

	v.SetDefault("MAPBOX_TOKEN", "")
	v.SetDefault("MAPBOX_VERIFY_TOKEN", false)
	v.SetDefault("MAPBOX_API_URL", "https://api.mapbox.com")

	v.SetDefault("RATE_LIMIT_PER_MIN", 200)
	v.SetDefault("VET_LOOKUP_DELAY", "1s")
	v.SetDefault("WIZARD_SESSION_TTL", "24h")
}

func (c *Config) normalize() {
	c.StorageDriver = strings.ToLower(strings.TrimSpace(c.StorageDriver))
	if c.StorageDriver == "" {
		c.StorageDriver = DriverMemory
	}
	c.Port = strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.RateLimitPerMin < 0 {
		c.RateLimitPerMin = 0
	}
	if c.VetLookupDelay < 0 {
		c.VetLookupDelay = 0
	}
}

// Addr devuelve la dirección de escucha para http.Server.
func (c Config) Addr() string {
	return ":" + c.Port
}
