package configs

// Kafka configures the tracking event stream. No brokers means events are
// not published.
type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"adframe.activity"`
}
