package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/tokentrack/burn-tracker/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// DatabaseConfig holds database configuration for job-run bookkeeping
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// EthereumConfig holds chain RPC configuration
type EthereumConfig struct {
	RPCURL  string       `mapstructure:"rpc_url"`
	ChainID domain.Chain `mapstructure:"chain_id"`
	// StartBlock is the fallback scan start when a token has no registry
	// deployment block and no cached cursor
	StartBlock uint64 `mapstructure:"start_block"`
	// ChunkSize bounds the block width of a single eth_getLogs call
	ChunkSize uint64 `mapstructure:"chunk_size"`
	// CallTimeout bounds each individual RPC call
	CallTimeout time.Duration `mapstructure:"call_timeout"`
}

// AuthConfig holds the shared-secret authorization for cron/worker routes
type AuthConfig struct {
	CronSecret string `mapstructure:"cron_secret"`
}

// RateLimitConfig holds per-provider rate limit configuration
type RateLimitConfig struct {
	RequestsPerSecond int           `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	MaxQueueTime      time.Duration `mapstructure:"max_queue_time"`
}

// RateLimiterConfig holds rate limiter proxy configuration
type RateLimiterConfig struct {
	RedisKeyPrefix          string                     `mapstructure:"redis_key_prefix"`
	MaxWorkers              int                        `mapstructure:"max_workers"`
	MaxQueueSize            int                        `mapstructure:"max_queue_size"`
	EnableLocalFallback     bool                       `mapstructure:"enable_local_fallback"`
	LocalFallbackMultiplier float64                    `mapstructure:"local_fallback_multiplier"`
	Providers               map[string]RateLimitConfig `mapstructure:"providers"`
}

// RefreshConfig holds refresh scheduler configuration
type RefreshConfig struct {
	// Cadence per interval class; these control nextUpdate assignment
	ShortInterval  time.Duration `mapstructure:"short_interval"`
	MediumInterval time.Duration `mapstructure:"medium_interval"`
	LongInterval   time.Duration `mapstructure:"long_interval"`

	BatchSize  int           `mapstructure:"batch_size"`
	BatchDelay time.Duration `mapstructure:"batch_delay"`

	// Sweep loop cadences for cmd/sweeper
	FullSweepEvery   time.Duration `mapstructure:"full_sweep_every"`
	ActiveSweepEvery time.Duration `mapstructure:"active_sweep_every"`

	// WorkerPoolSize bounds concurrent background recomputations
	WorkerPoolSize  int `mapstructure:"worker_pool_size"`
	WorkerQueueSize int `mapstructure:"worker_queue_size"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig            `mapstructure:",squash"`
	Server                ServerConfig      `mapstructure:"server"`
	Redis                 RedisConfig       `mapstructure:"redis"`
	Database              DatabaseConfig    `mapstructure:"database"`
	Ethereum              EthereumConfig    `mapstructure:"ethereum"`
	Auth                  AuthConfig        `mapstructure:"auth"`
	RateLimiter           RateLimiterConfig `mapstructure:"ratelimit"`
	Refresh               RefreshConfig     `mapstructure:"refresh"`
	RegistryPath          string            `mapstructure:"registry_path"`
	LockedSupplyAddresses []string          `mapstructure:"locked_supply_addresses"`
}

// SweeperConfig holds configuration for the sweeper program
type SweeperConfig struct {
	BaseConfig   `mapstructure:",squash"`
	Redis        RedisConfig       `mapstructure:"redis"`
	Database     DatabaseConfig    `mapstructure:"database"`
	Ethereum     EthereumConfig    `mapstructure:"ethereum"`
	RateLimiter  RateLimiterConfig `mapstructure:"ratelimit"`
	Refresh      RefreshConfig     `mapstructure:"refresh"`
	RegistryPath string            `mapstructure:"registry_path"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	setCommonDefaults(v)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateCommon(cfg.Ethereum, cfg.RegistryPath); err != nil {
		return nil, err
	}
	if cfg.Auth.CronSecret == "" {
		return nil, errors.New("auth.cron_secret is required")
	}

	return &cfg, nil
}

// LoadSweeperConfig loads configuration for the sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	setCommonDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateCommon(cfg.Ethereum, cfg.RegistryPath); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setCommonDefaults applies defaults shared by both binaries
func setCommonDefaults(v *viper.Viper) {
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	v.SetDefault("ethereum.chain_id", "assetchain")
	v.SetDefault("ethereum.chunk_size", 5000)
	v.SetDefault("ethereum.call_timeout", "15s")
	v.SetDefault("registry_path", "config/tokens.json")
	v.SetDefault("ratelimit.redis_key_prefix", "burntracker:limiter:")
	v.SetDefault("ratelimit.enable_local_fallback", true)
	v.SetDefault("refresh.short_interval", "5m")
	v.SetDefault("refresh.medium_interval", "30m")
	v.SetDefault("refresh.long_interval", "1h")
	v.SetDefault("refresh.batch_size", 5)
	v.SetDefault("refresh.batch_delay", "1s")
	v.SetDefault("refresh.full_sweep_every", "5m")
	v.SetDefault("refresh.active_sweep_every", "30s")
	v.SetDefault("refresh.worker_pool_size", 4)
	v.SetDefault("refresh.worker_queue_size", 256)
}

// readConfig reads the config file, tolerating a missing file so that pure
// environment-variable deployments work
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// validateCommon checks fields both binaries depend on
func validateCommon(eth EthereumConfig, registryPath string) error {
	if eth.RPCURL == "" {
		return errors.New("ethereum.rpc_url is required")
	}
	if registryPath == "" {
		return errors.New("registry_path is required")
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("BURN_TRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables.
// This is required for viper to map env vars to config struct fields when no
// config file exists.
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Redis
		"redis.addr",
		"redis.password",
		"redis.db",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Ethereum
		"ethereum.rpc_url",
		"ethereum.chain_id",
		"ethereum.start_block",
		"ethereum.chunk_size",
		"ethereum.call_timeout",
		// Auth
		"auth.cron_secret",
		// Rate limiter
		"ratelimit.redis_key_prefix",
		"ratelimit.max_workers",
		"ratelimit.max_queue_size",
		"ratelimit.enable_local_fallback",
		"ratelimit.local_fallback_multiplier",
		// Refresh
		"refresh.short_interval",
		"refresh.medium_interval",
		"refresh.long_interval",
		"refresh.batch_size",
		"refresh.batch_delay",
		"refresh.full_sweep_every",
		"refresh.active_sweep_every",
		"refresh.worker_pool_size",
		"refresh.worker_queue_size",
		// Misc
		"registry_path",
		"locked_supply_addresses",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// IntervalFor returns the refresh cadence for an interval class
func (c *RefreshConfig) IntervalFor(class domain.IntervalClass) time.Duration {
	switch class {
	case domain.IntervalShort:
		return c.ShortInterval
	case domain.IntervalMedium:
		return c.MediumInterval
	default:
		return c.LongInterval
	}
}
