// Package hamfile implements the binary container for serialized Hamiltonians.
//
// A hamfile wraps the JSON envelope of a fermionic or qubit sum in a compact
// binary frame with an integrity checksum:
//
//	┌──────────────────────────┐
//	│ Flag (4 bytes)           │ magic number, byte order, encoding, compression
//	├──────────────────────────┤
//	│ Payload length (4 bytes) │ compressed payload size in bytes
//	├──────────────────────────┤
//	│ Payload (variable)       │ optionally compressed JSON envelope
//	├──────────────────────────┤
//	│ Checksum (8 bytes)       │ xxHash64 of the compressed payload
//	└──────────────────────────┘
//
// The flag records the container's byte order, so a reader resolves the
// correct endian engine from the first two bytes before decoding the rest of
// the header.
//
// # Writing
//
//	repr := terms.NewFermionSum[float64]()
//	// ... populate repr ...
//	data, err := hamfile.WriteFermionSum(repr, hamfile.WithCompression(format.CompressionZstd))
//
// # Reading
//
//	repr, err := hamfile.ReadFermionSum[float64](data)
//
// Readers verify the magic number, the declared payload length and the
// checksum before decoding, and return sentinel errors from the errs package
// when any of them is inconsistent.
package hamfile
