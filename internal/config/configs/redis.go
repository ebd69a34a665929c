package configs

import "time"

// Redis configures the idempotency guard. An empty Addr disables the guard
// and leaves deduplication to the storage unique key alone.
type Redis struct {
	// Addr accepts either a redis:// URL or a host:port pair.
	Addr string `env:"ADDRESS"`
	// KeyTTL is how long a tracking idempotency key is remembered.
	KeyTTL time.Duration `env:"KEY_TTL" envDefault:"24h"`
}
