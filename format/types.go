package format

import (
	"github.com/arloliu/fermihamil/errs"
)

type (
	Encoding        uint8
	CompressionType uint8
)

const (
	EncodingFermions Encoding = 0x1 // EncodingFermions identifies a sum of fermionic terms.
	EncodingQubits   Encoding = 0x2 // EncodingQubits identifies a sum of Pauli strings.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (e Encoding) String() string {
	switch e {
	case EncodingFermions:
		return "fermions"
	case EncodingQubits:
		return "qubits"
	default:
		return "Unknown"
	}
}

// ParseEncoding maps an encoding name to its Encoding value.
func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "fermions":
		return EncodingFermions, nil
	case "qubits":
		return EncodingQubits, nil
	default:
		return 0, errs.ErrInvalidEncoding
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a compression name to its CompressionType value.
func ParseCompression(s string) (CompressionType, error) {
	switch s {
	case "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, errs.ErrInvalidCompression
	}
}
