package hamfile

import (
	"github.com/arloliu/fermihamil/endian"
	"github.com/arloliu/fermihamil/errs"
	"github.com/arloliu/fermihamil/format"
	"github.com/arloliu/fermihamil/internal/options"
)

type config struct {
	flag Flag
}

// Option configures a hamfile writer.
type Option = options.Option[*config]

func newConfig(opts ...Option) (config, error) {
	cfg := config{flag: NewFlag()}
	if err := options.Apply(&cfg, opts...); err != nil {
		return config{}, err
	}

	return cfg, nil
}

// WithCompression selects the compression codec applied to the payload.
// The default is format.CompressionNone.
func WithCompression(typ format.CompressionType) Option {
	return options.New(func(cfg *config) error {
		if _, ok := validCompressions[uint8(typ)]; !ok {
			return errs.ErrInvalidCompression
		}
		cfg.flag.SetCompressionType(typ)

		return nil
	})
}

// WithLittleEndian writes the container in little-endian byte order.
// This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(cfg *config) {
		cfg.flag.WithLittleEndian()
	})
}

// WithBigEndian writes the container in big-endian byte order.
func WithBigEndian() Option {
	return options.NoError(func(cfg *config) {
		cfg.flag.WithBigEndian()
	})
}

// WithNativeEndian writes the container in the host's native byte order,
// avoiding byte swaps on the writing machine. Readers resolve the order
// from the header, so the file stays portable either way.
func WithNativeEndian() Option {
	return options.NoError(func(cfg *config) {
		if endian.IsNativeLittleEndian() {
			cfg.flag.WithLittleEndian()
		} else {
			cfg.flag.WithBigEndian()
		}
	})
}
