// Package compress provides the compression codecs used by the hamfile
// container format.
//
// Serialized operator sums are JSON payloads with long runs of repeated
// structure (envelope keys, Z strings, index arrays), which compress very
// well. Four codecs are available, selected by format.CompressionType:
//
//   - Zstd: best ratio, the default for archived Hamiltonians
//   - S2: fastest round trip at a moderate ratio
//   - LZ4: fast block compression, widely interoperable
//   - Noop: pass-through for debugging and baseline measurements
//
// All codecs are stateless values and safe for concurrent use; the zstd and
// lz4 implementations reuse pooled encoder state internally.
package compress
