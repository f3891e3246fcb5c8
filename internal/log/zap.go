package log

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	logLevel string
	out      io.Writer
}

type Option func(o *options)

func WithLogLevel(lv string) Option {
	return Option(func(o *options) {
		o.logLevel = lv
	})
}

// WithOutput sends log records to w instead of stderr.
func WithOutput(w io.Writer) Option {
	return Option(func(o *options) {
		o.out = w
	})
}

func NewLogger(opts ...Option) (*zap.Logger, error) {
	options := options{
		logLevel: "warn",
		out:      os.Stderr,
	}

	for _, e := range opts {
		e(&options)
	}

	encConfig := zap.NewProductionEncoderConfig()
	encConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var al zap.AtomicLevel
	err := al.UnmarshalText([]byte(options.logLevel))
	if err != nil {
		return nil, fmt.Errorf("al.UnmarshalText: level=%s, %w", options.logLevel, err)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encConfig),
		zapcore.Lock(zapcore.AddSync(options.out)),
		al,
	)
	return zap.New(core), nil
}
