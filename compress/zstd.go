package compress

// ZstdCompressor provides Zstandard compression for Hamiltonian payloads.
//
// Zstd gives the best compression ratio of the available codecs and is the
// recommended choice for archived Hamiltonians, where files are written once
// and decompressed rarely. The sumrepr JSON envelope typically shrinks by a
// factor of 10 or more.
//
// Two implementations exist behind build tags: the default pure-Go
// klauspost/compress encoder, and a cgo binding to libzstd selected with
// the cgo_zstd tag for workloads where encode throughput dominates.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
