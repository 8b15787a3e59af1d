package config

import (
	"fmt"
)

// WithPort sets the server port
func WithPort(port string) Option {
	return func(c *ServerConfig) error {
		if port == "" {
			return fmt.Errorf("port cannot be empty")
		}
		c.Port = port
		return nil
	}
}

// WithEnvironment sets the environment (development, production, testing)
func WithEnvironment(env string) Option {
	return func(c *ServerConfig) error {
		if env == "" {
			return fmt.Errorf("environment cannot be empty")
		}
		c.Environment = env
		return nil
	}
}

// WithContentRoot sets the content source directory
func WithContentRoot(root string) Option {
	return func(c *ServerConfig) error {
		if root == "" {
			return fmt.Errorf("content root cannot be empty")
		}
		c.ContentRoot = root
		return nil
	}
}

// WithMemoryRegistry selects the in-memory link registry
func WithMemoryRegistry() Option {
	return func(c *ServerConfig) error {
		c.RegistryType = "memory"
		c.RegistryPath = ""
		return nil
	}
}

// WithFileRegistry selects the JSON file link registry at the given path
func WithFileRegistry(path string) Option {
	return func(c *ServerConfig) error {
		if path == "" {
			return fmt.Errorf("registry path cannot be empty")
		}
		c.RegistryType = "fsjson"
		c.RegistryPath = path
		return nil
	}
}

// WithDefaultStorage sets the default storage backend name
func WithDefaultStorage(name string) Option {
	return func(c *ServerConfig) error {
		if name == "" {
			return fmt.Errorf("default storage backend name cannot be empty")
		}
		c.DefaultStorageBackend = name
		return nil
	}
}

// WithMemoryStorage adds an in-memory storage backend
// If name is empty, defaults to "memory"
func WithMemoryStorage(name string) Option {
	return func(c *ServerConfig) error {
		if name == "" {
			name = "memory"
		}
		backend := StorageBackendConfig{
			Name:   name,
			Type:   "memory",
			Config: map[string]interface{}{},
		}
		c.StorageBackends = upsertStorageBackend(c.StorageBackends, backend)
		return nil
	}
}

// WithFilesystemStorage adds a filesystem storage backend
// If name is empty, defaults to "fs"
func WithFilesystemStorage(name, baseDir string) Option {
	return func(c *ServerConfig) error {
		if name == "" {
			name = "fs"
		}
		if baseDir == "" {
			return fmt.Errorf("filesystem base directory cannot be empty")
		}

		backend := StorageBackendConfig{
			Name: name,
			Type: "fs",
			Config: map[string]interface{}{
				"base_dir": baseDir,
			},
		}
		c.StorageBackends = upsertStorageBackend(c.StorageBackends, backend)
		return nil
	}
}

// WithS3Storage adds an S3 storage backend
// If name is empty, defaults to "s3"
func WithS3Storage(name, bucket, region string) Option {
	return func(c *ServerConfig) error {
		if name == "" {
			name = "s3"
		}
		if bucket == "" {
			return fmt.Errorf("S3 bucket cannot be empty")
		}
		if region == "" {
			region = "us-east-1"
		}

		backend := StorageBackendConfig{
			Name: name,
			Type: "s3",
			Config: map[string]interface{}{
				"bucket": bucket,
				"region": region,
			},
		}
		c.StorageBackends = upsertStorageBackend(c.StorageBackends, backend)
		return nil
	}
}

// WithS3StorageOption sets one extra config key on an existing S3 backend
func WithS3StorageOption(name, key string, value interface{}) Option {
	return func(c *ServerConfig) error {
		if name == "" {
			name = "s3"
		}
		for i := range c.StorageBackends {
			if c.StorageBackends[i].Name == name && c.StorageBackends[i].Type == "s3" {
				c.StorageBackends[i].Config[key] = value
				return nil
			}
		}
		return fmt.Errorf("S3 backend %q not configured", name)
	}
}

// WithEventLogging toggles event logging
func WithEventLogging(enabled bool) Option {
	return func(c *ServerConfig) error {
		c.EnableEventLogging = enabled
		return nil
	}
}
