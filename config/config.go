package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v2"
)

var GatewayConfig *Config

const (
	// MaxCacheTTL bounds catalog caching.
	MaxCacheTTL = 5 * time.Minute
	// MaxPollerTTL bounds poller cache caching; poller data goes stale quickly.
	MaxPollerTTL = time.Minute

	// RouterNorthbound marks endpoints serving the public API.
	RouterNorthbound = "northbound-api-router"
	// RouterSouthbound marks endpoints reachable from managed nodes.
	RouterSouthbound = "southbound-api-router"
)

var (
	ErrNegativeCacheTTL  = errors.New("cache ttl cannot be negative")
	ErrNegativePollerTTL = errors.New("cache poller_ttl cannot be negative")
	ErrCacheTTLTooLarge  = errors.New("cache ttl exceeds maximum allowed value of 5 minutes")
	ErrPollerTTLTooLarge = errors.New("cache poller_ttl exceeds maximum allowed value of 1 minute")
)

type (
	// Config -.
	Config struct {
		App           `yaml:"app"`
		HTTP          `yaml:"http"`
		Log           `yaml:"logger"`
		Secrets       `yaml:"secrets"`
		DB            `yaml:"db"`
		Auth          `yaml:"auth"`
		Redfish       `yaml:"redfish"`
		HTTPEndpoints []HTTPEndpoint `yaml:"http_endpoints"`
		SSDP          `yaml:"ssdp"`
		Dell          `yaml:"dell"`
		NFS           `yaml:"nfs"`
		Broker        `yaml:"broker"`
		Cache         `yaml:"cache"`
	}

	// App -.
	App struct {
		Name          string `env-required:"true" yaml:"name" env:"APP_NAME"`
		Version       string `env-required:"true"`
		EncryptionKey string `yaml:"encryption_key" env:"APP_ENCRYPTION_KEY"`
	}

	// HTTP -.
	HTTP struct {
		Host           string   `env-required:"true" yaml:"host" env:"HTTP_HOST"`
		Port           string   `env-required:"true" yaml:"port" env:"HTTP_PORT"`
		AllowedOrigins []string `env-required:"true" yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS"`
		AllowedHeaders []string `env-required:"true" yaml:"allowed_headers" env:"HTTP_ALLOWED_HEADERS"`
		TLS            TLS      `yaml:"tls"`
	}

	// TLS -.
	TLS struct {
		Enabled     bool   `yaml:"enabled" env:"HTTP_TLS_ENABLED"`
		CertFile    string `yaml:"certFile" env:"HTTP_TLS_CERT_FILE"`
		KeyFile     string `yaml:"keyFile" env:"HTTP_TLS_KEY_FILE"`
		PFXFile     string `yaml:"pfxFile" env:"HTTP_TLS_PFX_FILE"`
		PFXPassword string `yaml:"pfxPassword" env:"HTTP_TLS_PFX_PASSWORD"`
	}

	// Log -.
	Log struct {
		Level string `env-required:"true" yaml:"log_level"   env:"LOG_LEVEL"`
	}

	// Secrets -.
	Secrets struct {
		Address string `yaml:"address" env:"SECRETS_ADDR"`
		Token   string `yaml:"token" env:"SECRETS_TOKEN"`
		Path    string `yaml:"path" env:"SECRETS_PATH"`
	}

	// DB -.
	DB struct {
		PoolMax int    `env-required:"true" yaml:"pool_max" env:"DB_POOL_MAX"`
		URL     string `yaml:"url" env:"DB_URL"`
	}

	// Auth -.
	Auth struct {
		Disabled      bool   `yaml:"disabled" env:"AUTH_DISABLED"`
		AdminUsername string `yaml:"adminUsername" env:"AUTH_ADMIN_USERNAME"`
		AdminPassword string `yaml:"adminPassword" env:"AUTH_ADMIN_PASSWORD"`
		JWTKey        string `env-required:"true" yaml:"jwtKey" env:"AUTH_JWT_KEY"`
		ClientID      string `yaml:"clientId" env:"AUTH_CLIENT_ID"`
		Issuer        string `yaml:"issuer" env:"AUTH_ISSUER"`

		SessionTimeout time.Duration `yaml:"sessionTimeout" env:"AUTH_SESSION_TIMEOUT"`
	}

	// Redfish -.
	Redfish struct {
		ReservedManagerID string `yaml:"reserved_manager_id" env:"REDFISH_RESERVED_MANAGER_ID"`
		BasePath          string `yaml:"base_path" env:"REDFISH_BASE_PATH"`
		// ServiceUUID pins the service root UUID. Empty persists a generated one under StateDir.
		ServiceUUID string `yaml:"service_uuid" env:"REDFISH_SERVICE_UUID"`
		StateDir    string `yaml:"state_dir" env:"REDFISH_STATE_DIR"`
	}

	// HTTPEndpoint describes one listener of the wider platform.
	HTTPEndpoint struct {
		Address      string `yaml:"address"`
		Port         int    `yaml:"port"`
		HTTPSEnabled bool   `yaml:"httpsEnabled"`
		Routers      string `yaml:"routers"`
	}

	// SSDP -.
	SSDP struct {
		Enabled bool `yaml:"enabled" env:"SSDP_ENABLED"`
	}

	// Dell -.
	Dell struct {
		WsmanURL   string        `yaml:"wsman_url" env:"DELL_WSMAN_URL"`
		Timeout    time.Duration `yaml:"timeout" env:"DELL_TIMEOUT"`
		RacadmPath string        `yaml:"racadm_path" env:"DELL_RACADM_PATH"`
	}

	// NFS -.
	NFS struct {
		ShareName string `yaml:"share_name" env:"NFS_SHARE_NAME"`
		Directory string `yaml:"directory" env:"NFS_DIRECTORY"`
	}

	// Broker -.
	Broker struct {
		URL         string `yaml:"url" env:"BROKER_URL"`
		Login       string `yaml:"login" env:"BROKER_LOGIN"`
		Passcode    string `yaml:"passcode" env:"BROKER_PASSCODE"`
		Destination string `yaml:"destination" env:"BROKER_DESTINATION"`
	}

	// Cache -.
	Cache struct {
		TTL       time.Duration `yaml:"ttl" env:"CACHE_TTL"`
		PollerTTL time.Duration `yaml:"poller_ttl" env:"CACHE_POLLER_TTL"`
	}
)

// defaultConfig constructs the in-memory default configuration.
func defaultConfig() *Config {
	return &Config{
		App: App{
			Name:          "redfish-gateway",
			Version:       "DEVELOPMENT",
			EncryptionKey: "",
		},
		HTTP: HTTP{
			Host:           "localhost",
			Port:           "8181",
			AllowedOrigins: []string{"*"},
			AllowedHeaders: []string{"*"},
			TLS: TLS{
				Enabled: false,
			},
		},
		Log: Log{
			Level: "info",
		},
		Secrets: Secrets{
			Address: "http://localhost:8200",
			Token:   "",
			Path:    "secret/data/rackhd",
		},
		DB: DB{
			PoolMax: 2,
			URL:     "",
		},
		Auth: Auth{
			Disabled:      false,
			AdminUsername: "admin",
			AdminPassword: "admin123",
			JWTKey:        "your_secret_jwt_key",

			SessionTimeout: 30 * time.Minute,
		},
		Redfish: Redfish{
			ReservedManagerID: "RackHD",
			BasePath:          "/redfish/v1",
		},
		HTTPEndpoints: []HTTPEndpoint{
			{Address: "0.0.0.0", Port: 8181, HTTPSEnabled: false, Routers: RouterNorthbound},
			{Address: "172.31.128.1", Port: 9080, HTTPSEnabled: false, Routers: RouterSouthbound},
		},
		SSDP: SSDP{
			Enabled: true,
		},
		Dell: Dell{
			WsmanURL:   "http://localhost:46011",
			Timeout:    30 * time.Second,
			RacadmPath: "racadm",
		},
		NFS: NFS{
			ShareName: "/nfs",
			Directory: "/nfs",
		},
		Broker: Broker{
			URL:         "",
			Destination: "/queue/rackhd.workflows",
		},
		Cache: Cache{
			TTL:       30 * time.Second,
			PollerTTL: 5 * time.Second,
		},
	}
}

// ValidateCacheConfig checks the cache TTLs are within bounds.
func (c *Config) ValidateCacheConfig() error {
	switch {
	case c.Cache.TTL < 0:
		return ErrNegativeCacheTTL
	case c.Cache.PollerTTL < 0:
		return ErrNegativePollerTTL
	case c.Cache.TTL > MaxCacheTTL:
		return ErrCacheTTLTooLarge
	case c.Cache.PollerTTL > MaxPollerTTL:
		return ErrPollerTTLTooLarge
	}

	return nil
}

// Endpoints returns the configured endpoints served by the named router.
func (c *Config) Endpoints(router string) []HTTPEndpoint {
	out := make([]HTTPEndpoint, 0, len(c.HTTPEndpoints))

	for _, ep := range c.HTTPEndpoints {
		if ep.Routers == router {
			out = append(out, ep)
		}
	}

	return out
}

// resolveConfigPath determines the effective config file path based on a flag value or default location.
func resolveConfigPath(configPathFlag string) (string, error) {
	if configPathFlag != "" {
		return configPathFlag, nil
	}

	ex, err := os.Executable()
	if err != nil {
		return "", err
	}

	exPath := filepath.Dir(ex)

	return filepath.Join(exPath, "config", "config.yml"), nil
}

// readOrInitConfig attempts to read the config file; if it doesn't exist, writes the provided cfg to disk.
func readOrInitConfig(configPath string, cfg *Config) error {
	err := cleanenv.ReadConfig(configPath, cfg)
	if err == nil {
		return nil
	}

	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		configDir := filepath.Dir(configPath)
		if mkErr := os.MkdirAll(configDir, os.ModePerm); mkErr != nil {
			return mkErr
		}

		file, cErr := os.Create(configPath)
		if cErr != nil {
			return cErr
		}
		defer file.Close()

		encoder := yaml.NewEncoder(file)
		defer encoder.Close()

		return encoder.Encode(cfg)
	}

	return err
}

// NewConfig returns app config.
func NewConfig() (*Config, error) {
	GatewayConfig = defaultConfig()

	var configPathFlag string
	if flag.Lookup("config") == nil {
		flag.StringVar(&configPathFlag, "config", "", "path to config file")
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	configPath, err := resolveConfigPath(configPathFlag)
	if err != nil {
		return nil, err
	}

	if err := readOrInitConfig(configPath, GatewayConfig); err != nil {
		return nil, err
	}

	if err := cleanenv.ReadEnv(GatewayConfig); err != nil {
		return nil, err
	}

	if err := GatewayConfig.ValidateCacheConfig(); err != nil {
		return nil, fmt.Errorf("config - NewConfig: %w", err)
	}

	return GatewayConfig, nil
}
