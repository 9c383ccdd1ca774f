package compress

import (
	"github.com/arloliu/fermihamil/errs"
	"github.com/arloliu/fermihamil/format"
)

// Compressor compresses a serialized Hamiltonian payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The returned slice is newly allocated and owned by the caller; the
	// input slice is never modified. Internal buffers may be reused across
	// calls.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload previously produced by the matching
// Compressor.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original
	// payload. It returns an error if the data is corrupted or was produced
	// by a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one compression algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// CodecFor returns the codec implementing the given compression type.
func CodecFor(typ format.CompressionType) (Codec, error) {
	switch typ {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, errs.ErrInvalidCompression
	}
}
