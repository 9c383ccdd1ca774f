package hamfile

import (
	"github.com/arloliu/fermihamil/endian"
	"github.com/arloliu/fermihamil/errs"
	"github.com/arloliu/fermihamil/format"
)

const (
	// HeaderSize is the fixed size of the container header in bytes:
	// 2 bytes of options, 1 byte encoding, 1 byte compression and a 4-byte
	// payload length.
	HeaderSize = 8

	// ChecksumSize is the size of the trailing xxHash64 checksum in bytes.
	ChecksumSize = 8

	// EndiannessMask selects the byte order bit in the Options field.
	EndiannessMask = 0x0001

	// MagicNumberMask selects the magic number bits (bits 4-15) in the
	// Options field.
	MagicNumberMask = 0xFFF0

	// MagicHamV1Opt is the version 1 magic number for the hamfile format.
	MagicHamV1Opt = 0xFA40
)

var (
	validEncodings = map[uint8]struct{}{
		uint8(format.EncodingFermions): {},
		uint8(format.EncodingQubits):   {},
	}

	validCompressions = map[uint8]struct{}{
		uint8(format.CompressionNone): {},
		uint8(format.CompressionZstd): {},
		uint8(format.CompressionS2):   {},
		uint8(format.CompressionLZ4):  {},
	}
)

// Flag represents the packed field for various flags in the hamfile header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 1-3 are reserved for future use, must be set to 0.
	// Bit 4-15 are magic number to identify the hamfile format:
	//   - 0xFA40 (0b1111_1010_0100_0000): hamfile format v1
	Options uint16

	// Encoding indicates whether the payload holds fermionic terms or Pauli
	// strings.
	Encoding uint8

	// Compression indicates the compression applied to the payload.
	Compression uint8
}

// NewFlag creates a new Flag with default settings: little-endian byte order
// and no compression. The encoding is filled in by the writer.
func NewFlag() Flag {
	flag := Flag{
		Options:     MagicHamV1Opt,
		Compression: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()

	return flag
}

// IsLittleEndian returns whether the container is little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the container is big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number is valid.
func (f Flag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicHamV1Opt
}

// EncodingType returns the payload encoding recorded in the header.
func (f Flag) EncodingType() format.Encoding {
	return format.Encoding(f.Encoding)
}

// SetEncodingType records the payload encoding in the header.
func (f *Flag) SetEncodingType(enc format.Encoding) {
	f.Encoding = uint8(enc)
}

// CompressionType returns the payload compression recorded in the header.
func (f Flag) CompressionType() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// SetCompressionType records the payload compression in the header.
func (f *Flag) SetCompressionType(compression format.CompressionType) {
	f.Compression = uint8(compression)
}

// Validate checks if the flag header contains valid values.
func (f Flag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	if _, ok := validEncodings[f.Encoding]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	if _, ok := validCompressions[f.Compression]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// GetEndianEngine returns the appropriate endian engine based on the flag.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
