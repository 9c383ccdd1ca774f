// Package errs defines sentinel errors shared across fermihamil packages.
//
// All errors are plain sentinel values so callers can test them with
// errors.Is after call sites wrap them with additional context.
package errs

import "errors"

var (
	// ErrIndexRange indicates a qubit or orbital index at or beyond the
	// supported register width.
	ErrIndexRange = errors.New("index out of range")

	// ErrInvalidPauli indicates a value that does not encode one of the
	// four Pauli operators I, X, Y, Z.
	ErrInvalidPauli = errors.New("invalid Pauli operator")

	// ErrInvalidTerm indicates a malformed fermionic term code, e.g. an
	// index array whose length or ordering does not match any term shape.
	ErrInvalidTerm = errors.New("invalid fermionic term")

	// ErrInvalidEncoding indicates an unknown sum encoding identifier.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrInvalidCompression indicates an unknown compression identifier.
	ErrInvalidCompression = errors.New("invalid compression")

	// ErrInvalidMagicNumber indicates a container whose flag word does not
	// carry the hamfile magic number in either byte order.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidHeaderFlags indicates a container header with out-of-range
	// flag, encoding or compression fields.
	ErrInvalidHeaderFlags = errors.New("invalid header flags")

	// ErrInvalidPayload indicates a container payload that is truncated or
	// otherwise inconsistent with its header.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrChecksumMismatch indicates a container whose payload digest does
	// not match the stored checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)
