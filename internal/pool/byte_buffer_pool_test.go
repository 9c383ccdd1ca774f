package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBufferWrite(t *testing.T) {
	bb := NewByteBuffer(16)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 16, bb.Cap())

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	bb.MustWrite([]byte(" world"))
	require.Equal(t, []byte("hello world"), bb.Bytes())
	require.Equal(t, 11, bb.Len())
}

func TestByteBufferReset(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("data"))
	capBefore := bb.Cap()

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, capBefore, bb.Cap())
}

func TestByteBufferWriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("payload"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "payload", out.String())
}

func TestByteBufferPoolReuse(t *testing.T) {
	p := NewByteBufferPool(32, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("contents"))
	p.Put(bb)

	// A recycled buffer comes back empty.
	bb2 := p.Get()
	require.Equal(t, 0, bb2.Len())
}

func TestByteBufferPoolDiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(8, 64)

	bb := p.Get()
	bb.MustWrite(make([]byte, 1024))
	require.Greater(t, bb.Cap(), 64)

	// Put must drop the oversized buffer rather than retain it; the next
	// Get hands out a fresh default-capacity buffer.
	p.Put(bb)
	bb2 := p.Get()
	require.LessOrEqual(t, bb2.Cap(), 64)
}

func TestByteBufferPoolNilPut(t *testing.T) {
	p := NewByteBufferPool(8, 64)
	require.NotPanics(t, func() {
		p.Put(nil)
	})
}

func TestDefaultHamPool(t *testing.T) {
	bb := GetHamBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	bb.MustWrite([]byte("header|payload|checksum"))
	PutHamBuffer(bb)
}
