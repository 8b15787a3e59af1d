package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/tendant/content-browser/pkg/contentbrowser"
	registryfsjson "github.com/tendant/content-browser/pkg/contentbrowser/registry/fsjson"
	registrymemory "github.com/tendant/content-browser/pkg/contentbrowser/registry/memory"
	"github.com/tendant/content-browser/pkg/contentbrowser/site"
	fsstorage "github.com/tendant/content-browser/pkg/contentbrowser/storage/fs"
	memorystorage "github.com/tendant/content-browser/pkg/contentbrowser/storage/memory"
	s3storage "github.com/tendant/content-browser/pkg/contentbrowser/storage/s3"
)

// Option applies configuration to a ServerConfig instance.
type Option func(*ServerConfig) error

// Load constructs a ServerConfig by applying the supplied options on top of library defaults.
func Load(opts ...Option) (*ServerConfig, error) {
	cfg := defaults()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() ServerConfig {
	return ServerConfig{
		Port:                  "8080",
		Environment:           "development",
		ContentRoot:           "./content",
		RegistryType:          "memory",
		DefaultStorageBackend: "memory",
		StorageBackends: []StorageBackendConfig{
			{
				Name:   "memory",
				Type:   "memory",
				Config: map[string]interface{}{},
			},
		},
		EnableEventLogging: true,
	}
}

// ServerConfig represents configuration for the content-browser binaries
type ServerConfig struct {
	Port        string
	Environment string // development, production, testing

	// Content source configuration
	ContentRoot string // Directory holding one subfolder per content item

	// Link registry configuration
	RegistryType string // "memory", "fsjson"
	RegistryPath string // Registry file path when using fsjson

	// Output storage configuration
	DefaultStorageBackend string
	StorageBackends       []StorageBackendConfig

	EnableEventLogging bool
}

// StorageBackendConfig represents configuration for an output storage backend
type StorageBackendConfig struct {
	Name   string
	Type   string // "memory", "fs", "s3"
	Config map[string]interface{}
}

// Validate validates the configuration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}

	if c.RegistryType != "memory" && c.RegistryType != "fsjson" {
		return errors.New("registry_type must be 'memory' or 'fsjson'")
	}

	if c.RegistryType == "fsjson" && c.RegistryPath == "" {
		return errors.New("registry_path is required when using fsjson")
	}

	// Ensure default storage backend exists in configured backends
	found := false
	for _, backend := range c.StorageBackends {
		if backend.Name == c.DefaultStorageBackend {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("default storage backend '%s' not found in configured backends", c.DefaultStorageBackend)
	}

	return nil
}

// BuildService creates a Service instance from the configuration
func (c *ServerConfig) BuildService(logger *slog.Logger) (contentbrowser.Service, error) {
	var options []contentbrowser.Option

	for _, backendConfig := range c.StorageBackends {
		store, err := c.buildStorageBackend(backendConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to build storage backend %s: %w", backendConfig.Name, err)
		}
		options = append(options, contentbrowser.WithStore(backendConfig.Name, store))
	}
	options = append(options, contentbrowser.WithDefaultStore(c.DefaultStorageBackend))

	registry, err := c.buildRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to build registry: %w", err)
	}
	options = append(options, contentbrowser.WithRegistry(registry))

	options = append(options, contentbrowser.WithAssembler(site.New()))

	if c.EnableEventLogging && logger != nil {
		options = append(options, contentbrowser.WithEventSink(contentbrowser.NewLoggingEventSink(logger)))
	} else {
		options = append(options, contentbrowser.WithEventSink(contentbrowser.NewNoopEventSink()))
	}

	return contentbrowser.New(options...)
}

// buildRegistry creates a Registry based on the configuration
func (c *ServerConfig) buildRegistry() (contentbrowser.Registry, error) {
	switch c.RegistryType {
	case "memory":
		return registrymemory.New(), nil
	case "fsjson":
		return registryfsjson.New(registryfsjson.Config{Path: c.RegistryPath})
	default:
		return nil, fmt.Errorf("unsupported registry type: %s", c.RegistryType)
	}
}

// buildStorageBackend creates a Store based on the backend configuration
func (c *ServerConfig) buildStorageBackend(config StorageBackendConfig) (contentbrowser.Store, error) {
	switch config.Type {
	case "memory":
		return memorystorage.New(), nil

	case "fs":
		fsConfig := fsstorage.Config{
			BaseDir: getString(config.Config, "base_dir", "./data/site"),
		}
		return fsstorage.New(fsConfig)

	case "s3":
		s3Config := s3storage.Config{
			Region:                 getString(config.Config, "region", "us-east-1"),
			Bucket:                 getString(config.Config, "bucket", ""),
			AccessKeyID:            getString(config.Config, "access_key_id", ""),
			SecretAccessKey:        getString(config.Config, "secret_access_key", ""),
			Endpoint:               getString(config.Config, "endpoint", ""),
			UsePathStyle:           getBool(config.Config, "use_path_style", false),
			KeyPrefix:              getString(config.Config, "key_prefix", ""),
			CreateBucketIfNotExist: getBool(config.Config, "create_bucket_if_not_exist", false),
		}
		return s3storage.New(s3Config)

	default:
		return nil, fmt.Errorf("unsupported storage backend type: %s", config.Type)
	}
}

func getString(config map[string]interface{}, key string, defaultValue string) string {
	if value, exists := config[key]; exists {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return defaultValue
}

func getBool(config map[string]interface{}, key string, defaultValue bool) bool {
	if value, exists := config[key]; exists {
		if b, ok := value.(bool); ok {
			return b
		}
		if str, ok := value.(string); ok {
			if b, err := strconv.ParseBool(str); err == nil {
				return b
			}
		}
	}
	return defaultValue
}
