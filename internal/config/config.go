package config

// DefaultInputPath is the measurement file read from the working directory.
const DefaultInputPath = "001.input.txt"

// DefaultLogLevel keeps a successful run silent on stderr.
const DefaultLogLevel = "warn"

// Config holds the fixed runtime settings of sonarsweep.
type Config struct {
	InputPath string
	LogLevel  string
}

type Option func(c *Config)

func WithInputPath(path string) Option {
	return func(c *Config) {
		c.InputPath = path
	}
}

func WithLogLevel(lv string) Option {
	return func(c *Config) {
		c.LogLevel = lv
	}
}

// Default returns the built-in configuration with opts applied in order.
func Default(opts ...Option) Config {
	c := Config{
		InputPath: DefaultInputPath,
		LogLevel:  DefaultLogLevel,
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}
