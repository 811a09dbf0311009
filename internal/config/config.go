package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-collectibles/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// URIConfig holds URL normalizer configuration
type URIConfig struct {
	IPFSGateway string `mapstructure:"ipfs_gateway"`
}

// OpenSeaConfig holds configuration for the full-featured provider
type OpenSeaConfig struct {
	URL        string `mapstructure:"url"`
	APIKey     string `mapstructure:"api_key"`
	AssetLimit int    `mapstructure:"asset_limit"`
	EventLimit int    `mapstructure:"event_limit"`
}

// NftPortConfig holds configuration for the minimal provider
type NftPortConfig struct {
	URL        string `mapstructure:"url"`
	APIKey     string `mapstructure:"api_key"`
	AssetLimit int    `mapstructure:"asset_limit"`
	Chain      string `mapstructure:"chain"`
}

// ProvidersConfig holds the provider API configurations
type ProvidersConfig struct {
	OpenSea OpenSeaConfig `mapstructure:"opensea"`
	NftPort NftPortConfig `mapstructure:"nftport"`
}

// ProbeConfig holds content-type probe configuration
type ProbeConfig struct {
	Timeout    time.Duration `mapstructure:"timeout"`
	SniffBytes int64         `mapstructure:"sniff_bytes"`
	Workers    int           `mapstructure:"workers"`
	CacheTTL   time.Duration `mapstructure:"cache_ttl"`
}

// FetchConfig holds per-wallet fetch configuration
type FetchConfig struct {
	Workers     int           `mapstructure:"workers"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

// RateLimitConfig holds the limit for a single provider
type RateLimitConfig struct {
	RequestsPerSecond int           `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	MaxQueueTime      time.Duration `mapstructure:"max_queue_time"`
}

// RateLimiterConfig holds rate limit proxy configuration
type RateLimiterConfig struct {
	MaxWorkers   int                        `mapstructure:"max_workers"`
	MaxQueueSize int                        `mapstructure:"max_queue_size"`
	Providers    map[string]RateLimitConfig `mapstructure:"providers"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// Enabled reports whether snapshot publishing is configured
func (c NATSConfig) Enabled() bool {
	return c.URL != ""
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// CollectiblesConfig holds everything a fetch cycle needs, shared by the API and the CLI
type CollectiblesConfig struct {
	BlacklistPath string `mapstructure:"blacklist_path"`

	URI         URIConfig         `mapstructure:"uri"`
	Providers   ProvidersConfig   `mapstructure:"providers"`
	Probe       ProbeConfig       `mapstructure:"probe"`
	Fetch       FetchConfig       `mapstructure:"fetch"`
	RateLimiter RateLimiterConfig `mapstructure:"ratelimit"`
	NATS        NATSConfig        `mapstructure:"nats"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig         `mapstructure:",squash"`
	CollectiblesConfig `mapstructure:",squash"`
	Server             ServerConfig `mapstructure:"server"`
	Auth               AuthConfig   `mapstructure:"auth"`
}

// CLIConfig holds configuration for the fetch-collectibles command
type CLIConfig struct {
	BaseConfig         `mapstructure:",squash"`
	CollectiblesConfig `mapstructure:",squash"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	setCollectiblesDefaults(v)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 120)
	v.SetDefault("server.idle_timeout", 120)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.CollectiblesConfig.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadCLIConfig loads configuration for the fetch-collectibles command
func LoadCLIConfig(configFile string, envPath string) (*CLIConfig, error) {
	v := configureViper("fetch-collectibles", configFile, envPath)

	setCollectiblesDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg CLIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.CollectiblesConfig.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setCollectiblesDefaults sets the defaults shared by every service running fetch cycles
func setCollectiblesDefaults(v *viper.Viper) {
	v.SetDefault("uri.ipfs_gateway", domain.DEFAULT_IPFS_GATEWAY)
	v.SetDefault("providers.opensea.url", "https://api.opensea.io/api/v1")
	v.SetDefault("providers.opensea.asset_limit", 200)
	v.SetDefault("providers.opensea.event_limit", 300)
	v.SetDefault("providers.nftport.url", "https://api.nftport.xyz")
	v.SetDefault("providers.nftport.asset_limit", 50)
	v.SetDefault("providers.nftport.chain", "ethereum")
	v.SetDefault("probe.timeout", "5s")
	v.SetDefault("probe.sniff_bytes", 512)
	v.SetDefault("probe.workers", 16)
	v.SetDefault("probe.cache_ttl", "10m")
	v.SetDefault("fetch.workers", 16)
	v.SetDefault("fetch.http_timeout", "30s")
	v.SetDefault("ratelimit.max_workers", runtime.NumCPU()*4)
	v.SetDefault("ratelimit.max_queue_size", 1000)
	v.SetDefault("ratelimit.providers", map[string]interface{}{
		string(domain.ProviderOpenSea): map[string]interface{}{
			"requests_per_second": 4,
			"burst":               4,
			"max_queue_time":      "2m",
		},
		string(domain.ProviderNftPort): map[string]interface{}{
			"requests_per_second": 10,
			"burst":               10,
			"max_queue_time":      "2m",
		},
	})
	v.SetDefault("nats.stream_name", "COLLECTIBLES")
	v.SetDefault("nats.subject_prefix", "collectibles")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "ff-collectibles")
}

func (c *CollectiblesConfig) validate() error {
	if c.Providers.NftPort.AssetLimit > 50 {
		c.Providers.NftPort.AssetLimit = 50
	}
	if c.Probe.SniffBytes <= 0 {
		return errors.New("probe.sniff_bytes must be positive")
	}
	if c.Fetch.Workers <= 0 {
		return errors.New("fetch.workers must be positive")
	}
	return nil
}

// readConfig reads the config file, a missing file falls back to environment variables
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("FF_COLLECTIBLES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"blacklist_path",
		// URI
		"uri.ipfs_gateway",
		// Providers
		"providers.opensea.url",
		"providers.opensea.api_key",
		"providers.opensea.asset_limit",
		"providers.opensea.event_limit",
		"providers.nftport.url",
		"providers.nftport.api_key",
		"providers.nftport.asset_limit",
		"providers.nftport.chain",
		// Probe
		"probe.timeout",
		"probe.sniff_bytes",
		"probe.workers",
		"probe.cache_ttl",
		// Fetch
		"fetch.workers",
		"fetch.http_timeout",
		// Rate limiter
		"ratelimit.max_workers",
		"ratelimit.max_queue_size",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.subject_prefix",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile)) // later files override earlier ones
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
