package configs

import "time"

// Tracking configures the asynchronous impression/click task runner.
type Tracking struct {
	// Workers is the number of goroutines draining the queue.
	Workers int `env:"WORKERS" envDefault:"4"`
	// QueueSize bounds pending tasks; tasks beyond it are dropped.
	QueueSize int `env:"QUEUE_SIZE" envDefault:"1024"`
	// Timeout bounds a single tracking write, both queued and inline
	// (click-through).
	Timeout time.Duration `env:"TIMEOUT" envDefault:"2s"`
	// DrainTimeout bounds how long shutdown waits for queued tasks once the
	// HTTP server has stopped.
	DrainTimeout time.Duration `env:"DRAIN_TIMEOUT" envDefault:"5s"`
}
