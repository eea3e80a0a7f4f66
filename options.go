package campushub

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Database drivers.
const (
	driverEmbedded = "embedded"
	driverRedis    = "redis"
	driverValkey   = "valkey"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver     string
	addrs      []string
	password   string
	standalone bool
	keyPrefix  string

	seed      bool
	seedForce bool

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithValkey configures the client to connect to a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverValkey
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverRedis
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithEmbedded runs an in-process store. Data lives as long as the Client.
func WithEmbedded() Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverEmbedded
		c.addrs = nil
		c.password = ""
	})
}

// WithStandalone disables cluster topology discovery.
// Use for standalone Valkey/Redis instances.
func WithStandalone() Option {
	return optionFunc(func(c *clientConfig) {
		c.standalone = true
	})
}

// WithKeyPrefix namespaces the catalog keys. Default: "campushub:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithSeed loads the reference catalogs on connect when they are not loaded yet.
func WithSeed() Option {
	return optionFunc(func(c *clientConfig) {
		c.seed = true
	})
}

// WithForceSeed loads the reference catalogs on connect, overwriting stored ones.
func WithForceSeed() Option {
	return optionFunc(func(c *clientConfig) {
		c.seed = true
		c.seedForce = true
	})
}

// WithLogger enables structured logging for library operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithMetrics registers operation metrics (counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithMetrics(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
