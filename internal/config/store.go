package config

import "os"

// Store reads named configuration values, typically provider credentials.
// Values are looked up live on every call: secrets can be injected into the
// process environment after startup, so callers must not cache results.
type Store interface {
	Get(key string) string
}

// EnvStore reads from the process environment.
type EnvStore struct{}

func NewEnvStore() EnvStore {
	return EnvStore{}
}

func (EnvStore) Get(key string) string {
	return os.Getenv(key)
}

// StaticStore serves values from a fixed map. Used by tests so provider
// availability can be exercised without mutating real environment variables.
type StaticStore map[string]string

func (s StaticStore) Get(key string) string {
	return s[key]
}
