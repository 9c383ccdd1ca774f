package hamfile

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/arloliu/fermihamil/compress"
	"github.com/arloliu/fermihamil/format"
	"github.com/arloliu/fermihamil/internal/hash"
	"github.com/arloliu/fermihamil/internal/pool"
	"github.com/arloliu/fermihamil/terms"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteFermionSum serializes a fermionic sum into a hamfile container.
//
// The sum is encoded as its JSON envelope, optionally compressed, and framed
// with the header and checksum described in the package documentation. The
// returned slice is owned by the caller.
func WriteFermionSum[T terms.Float](repr *terms.FermionSum[T], opts ...Option) ([]byte, error) {
	payload, err := jsonCodec.Marshal(repr)
	if err != nil {
		return nil, fmt.Errorf("encode fermion payload: %w", err)
	}

	return writePayload(payload, format.EncodingFermions, opts...)
}

// WritePauliSum serializes a qubit sum into a hamfile container.
func WritePauliSum[T terms.Float](repr *terms.PauliSum[T], opts ...Option) ([]byte, error) {
	payload, err := jsonCodec.Marshal(repr)
	if err != nil {
		return nil, fmt.Errorf("encode qubit payload: %w", err)
	}

	return writePayload(payload, format.EncodingQubits, opts...)
}

func writePayload(payload []byte, enc format.Encoding, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	flag := cfg.flag
	flag.SetEncodingType(enc)
	if err := flag.Validate(); err != nil {
		return nil, err
	}

	codec, err := compress.CodecFor(flag.CompressionType())
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}

	engine := flag.GetEndianEngine()

	buf := pool.GetHamBuffer()
	defer pool.PutHamBuffer(buf)

	buf.B = engine.AppendUint16(buf.B, flag.Options)
	buf.B = append(buf.B, flag.Encoding, flag.Compression)
	buf.B = engine.AppendUint32(buf.B, uint32(len(compressed)))
	buf.MustWrite(compressed)
	buf.B = engine.AppendUint64(buf.B, hash.Checksum(compressed))

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}
