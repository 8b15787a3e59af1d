package config

import (
	"fmt"
	"os"
)

// WithEnv applies environment variable overrides using the provided prefix.
//
// Environment variable mapping:
//
// Server (cmd/browser-server only):
//   PORT - Server port (default: "8080")
//   ENVIRONMENT - Runtime environment (default: "development")
//
// Content source:
//   CONTENT_ROOT - Directory holding one subfolder per content item
//
// Link registry:
//   REGISTRY_PATH - Path to the registry JSON file
//                   If set, automatically sets REGISTRY_TYPE=fsjson
//                   If empty, uses the in-memory registry
//
// Output storage:
//   STORAGE_URL - Storage connection string (one of):
//                 - "memory://" - In-memory storage (default)
//                 - "file:///path/to/site" - Filesystem storage
//                 - "s3://bucket" - S3 storage (credentials from AWS_* vars)
func WithEnv(prefix string) Option {
	return func(c *ServerConfig) error {
		if v, ok := lookupEnv(prefix, "PORT"); ok && v != "" {
			c.Port = v
		}
		if v, ok := lookupEnv(prefix, "ENVIRONMENT"); ok && v != "" {
			c.Environment = v
		}
		if v, ok := lookupEnv(prefix, "CONTENT_ROOT"); ok && v != "" {
			c.ContentRoot = v
		}

		applyRegistryEnv(prefix, c)

		if err := applyStorageEnv(prefix, c); err != nil {
			return err
		}

		return nil
	}
}

// applyRegistryEnv applies registry configuration from environment
func applyRegistryEnv(prefix string, c *ServerConfig) {
	path, ok := lookupEnv(prefix, "REGISTRY_PATH")
	if !ok || path == "" {
		c.RegistryType = "memory"
		c.RegistryPath = ""
		return
	}
	c.RegistryType = "fsjson"
	c.RegistryPath = path
}

// applyStorageEnv applies storage configuration from environment
func applyStorageEnv(prefix string, c *ServerConfig) error {
	storageURL, hasURL := lookupEnv(prefix, "STORAGE_URL")

	if !hasURL || storageURL == "" || storageURL == "memory" || storageURL == "memory://" {
		c.DefaultStorageBackend = "memory"
		backend := StorageBackendConfig{
			Name:   "memory",
			Type:   "memory",
			Config: map[string]interface{}{},
		}
		c.StorageBackends = upsertStorageBackend(c.StorageBackends, backend)
		return nil
	}

	if len(storageURL) > 7 && storageURL[:7] == "file://" {
		return applyFilesystemStorage(storageURL, c)
	} else if len(storageURL) > 5 && storageURL[:5] == "s3://" {
		return applyS3Storage(storageURL, c)
	}

	return fmt.Errorf("unsupported STORAGE_URL format: %s (use 'memory://', 'file://...', or 's3://...')", storageURL)
}

// applyFilesystemStorage configures filesystem storage from URL
// Format: file:///path/to/site
func applyFilesystemStorage(url string, c *ServerConfig) error {
	path := url[7:] // Remove "file://"
	if path == "" {
		return fmt.Errorf("filesystem path cannot be empty in STORAGE_URL")
	}

	backend := StorageBackendConfig{
		Name: "fs",
		Type: "fs",
		Config: map[string]interface{}{
			"base_dir": path,
		},
	}

	c.DefaultStorageBackend = "fs"
	c.StorageBackends = upsertStorageBackend(c.StorageBackends, backend)
	return nil
}

// applyS3Storage configures S3 storage from URL
// Format: s3://bucket or s3://bucket?params
func applyS3Storage(url string, c *ServerConfig) error {
	bucket := url[5:] // Remove "s3://"

	queryIdx := -1
	for i, ch := range bucket {
		if ch == '?' {
			queryIdx = i
			break
		}
	}

	bucketName := bucket
	if queryIdx > 0 {
		bucketName = bucket[:queryIdx]
	}

	if bucketName == "" {
		return fmt.Errorf("S3 bucket name cannot be empty in STORAGE_URL")
	}

	backend := StorageBackendConfig{
		Name: "s3",
		Type: "s3",
		Config: map[string]interface{}{
			"bucket": bucketName,
			"region": "us-east-1", // Default
		},
	}

	if accessKey, ok := os.LookupEnv("AWS_ACCESS_KEY_ID"); ok && accessKey != "" {
		backend.Config["access_key_id"] = accessKey
	}
	if secretKey, ok := os.LookupEnv("AWS_SECRET_ACCESS_KEY"); ok && secretKey != "" {
		backend.Config["secret_access_key"] = secretKey
	}
	if region, ok := os.LookupEnv("AWS_REGION"); ok && region != "" {
		backend.Config["region"] = region
	}

	c.DefaultStorageBackend = "s3"
	c.StorageBackends = upsertStorageBackend(c.StorageBackends, backend)
	return nil
}

func lookupEnv(prefix, key string) (string, bool) {
	return os.LookupEnv(prefix + key)
}

func upsertStorageBackend(backends []StorageBackendConfig, backend StorageBackendConfig) []StorageBackendConfig {
	if backend.Config == nil {
		backend.Config = map[string]interface{}{}
	}
	for i := range backends {
		if backends[i].Name == backend.Name {
			backends[i] = backend
			return backends
		}
	}
	return append(backends, backend)
}
