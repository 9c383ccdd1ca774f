package hamfile

import (
	"fmt"

	"github.com/arloliu/fermihamil/compress"
	"github.com/arloliu/fermihamil/endian"
	"github.com/arloliu/fermihamil/errs"
	"github.com/arloliu/fermihamil/format"
	"github.com/arloliu/fermihamil/internal/hash"
	"github.com/arloliu/fermihamil/terms"
)

// ReadFermionSum decodes a hamfile container holding a fermionic sum.
//
// It validates the header, the payload length and the checksum before
// decoding, and fails with errs.ErrInvalidEncoding if the container holds a
// qubit sum instead.
func ReadFermionSum[T terms.Float](data []byte) (*terms.FermionSum[T], error) {
	payload, err := readPayload(data, format.EncodingFermions)
	if err != nil {
		return nil, err
	}

	repr := terms.NewFermionSum[T]()
	if err := jsonCodec.Unmarshal(payload, repr); err != nil {
		return nil, fmt.Errorf("decode fermion payload: %w", err)
	}

	return repr, nil
}

// ReadPauliSum decodes a hamfile container holding a qubit sum.
func ReadPauliSum[T terms.Float](data []byte) (*terms.PauliSum[T], error) {
	payload, err := readPayload(data, format.EncodingQubits)
	if err != nil {
		return nil, err
	}

	repr := terms.NewPauliSum[T]()
	if err := jsonCodec.Unmarshal(payload, repr); err != nil {
		return nil, fmt.Errorf("decode qubit payload: %w", err)
	}

	return repr, nil
}

// ReadEncoding reports which encoding a hamfile container holds without
// decoding its payload.
func ReadEncoding(data []byte) (format.Encoding, error) {
	flag, _, err := parseHeader(data)
	if err != nil {
		return 0, err
	}

	return flag.EncodingType(), nil
}

func readPayload(data []byte, want format.Encoding) ([]byte, error) {
	flag, engine, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	if flag.EncodingType() != want {
		return nil, errs.ErrInvalidEncoding
	}

	payloadLen := engine.Uint32(data[4:HeaderSize])
	if len(data) != HeaderSize+int(payloadLen)+ChecksumSize {
		return nil, errs.ErrInvalidPayload
	}

	payload := data[HeaderSize : HeaderSize+int(payloadLen)]
	checksum := engine.Uint64(data[HeaderSize+int(payloadLen):])
	if checksum != hash.Checksum(payload) {
		return nil, errs.ErrChecksumMismatch
	}

	codec, err := compress.CodecFor(flag.CompressionType())
	if err != nil {
		return nil, err
	}

	decompressed, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}

	return decompressed, nil
}

// parseHeader resolves the container's byte order from the magic number and
// returns the decoded flag together with the matching endian engine.
func parseHeader(data []byte) (Flag, endian.EndianEngine, error) {
	if len(data) < HeaderSize+ChecksumSize {
		return Flag{}, nil, errs.ErrInvalidPayload
	}

	engine := endian.GetLittleEndianEngine()
	options := engine.Uint16(data[0:2])
	if options&MagicNumberMask != MagicHamV1Opt {
		// The magic number is asymmetric, so a big-endian container never
		// matches under a little-endian read.
		engine = endian.GetBigEndianEngine()
		options = engine.Uint16(data[0:2])
		if options&MagicNumberMask != MagicHamV1Opt {
			return Flag{}, nil, errs.ErrInvalidMagicNumber
		}
	}

	flag := Flag{
		Options:     options,
		Encoding:    data[2],
		Compression: data[3],
	}
	if err := flag.Validate(); err != nil {
		return Flag{}, nil, err
	}

	return flag, engine, nil
}
