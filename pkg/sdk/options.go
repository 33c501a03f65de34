package sommelier

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addrs    []string
	password string

	keyPrefix string

	generator Generator
	openAI    *OpenAIConfig

	seedFile string

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithValkey configures the client to connect to a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis configures the client to connect to a Redis instance.
// Valkey and Redis share a protocol, so this is an alias of WithValkey.
func WithRedis(addr, password string) Option {
	return WithValkey(addr, password)
}

// WithKeyPrefix overrides the storage key prefix. Default: "somm:".
// Must match the prefix of any API instance sharing the database.
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithOpenAI enables the OpenAI-compatible generation provider.
// Without it the client uses the deterministic built-in generator.
func WithOpenAI(cfg OpenAIConfig) Option {
	return optionFunc(func(c *clientConfig) {
		c.openAI = &cfg
	})
}

// WithGenerator sets a custom generation provider.
// Takes precedence over WithOpenAI.
func WithGenerator(g Generator) Option {
	return optionFunc(func(c *clientConfig) {
		c.generator = g
	})
}

// WithSeedFile loads a YAML wine catalog into the database on connect.
func WithSeedFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.seedFile = path
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
