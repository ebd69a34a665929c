package configs

import "time"

// Auth configures verification of access tokens issued by the hosted auth
// provider. The secret must be injected; there is no default.
type Auth struct {
	JWTSecret string        `env:"JWT_SECRET"`
	Audience  string        `env:"AUDIENCE" envDefault:"authenticated"`
	Leeway    time.Duration `env:"LEEWAY" envDefault:"30s"`
}
