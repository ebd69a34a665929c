package configs

// Creative configures how creative references are turned into URLs.
type Creative struct {
	// BaseURL is the public object storage prefix that relative creative
	// references are resolved against.
	BaseURL string `env:"BASE_URL"`
}
