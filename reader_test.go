package rlzjb

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// onlyReader hides io.ByteReader so the buffered path is taken.
type onlyReader struct{ r io.Reader }

func (o onlyReader) Read(p []byte) (int, error) { return o.r.Read(p) }

func TestDecompressFromReader(t *testing.T) {
	input := bytes.Repeat([]byte("stream block data "), 20)
	enc := encode(input, encodeOptions{SearchLimit: MaxDistance})
	stream := concat(enc, []byte("next"))

	t.Run("byte reader", func(t *testing.T) {
		r := bytes.NewReader(stream)
		out, consumed, err := DecompressFromReader(r, len(input), nil)
		require.NoError(t, err)
		assert.Equal(t, input, out)
		assert.Equal(t, int64(len(enc)), consumed)

		rest, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, []byte("next"), rest)
	})

	t.Run("plain reader", func(t *testing.T) {
		r := onlyReader{iotest.OneByteReader(bytes.NewReader(stream))}
		out, consumed, err := DecompressFromReader(r, len(input), nil)
		require.NoError(t, err)
		assert.Equal(t, input, out)
		assert.Equal(t, int64(len(enc)), consumed)
	})

	t.Run("nil reader", func(t *testing.T) {
		_, _, err := DecompressFromReader(nil, 1, nil)
		assert.ErrorIs(t, err, ErrNilReader)
	})

	t.Run("read error", func(t *testing.T) {
		boom := errors.New("boom")
		r := io.MultiReader(bytes.NewReader([]byte{0x00, 'a'}), iotest.ErrReader(boom))
		_, consumed, err := DecompressFromReader(r, 8, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, boom), "got %v", err)
		assert.False(t, errors.Is(err, ErrMalformedInput))
		assert.Equal(t, int64(2), consumed)
	})

	t.Run("truncated", func(t *testing.T) {
		_, _, err := DecompressFromReader(bytes.NewReader(enc[:len(enc)-1]), len(input), nil)
		assert.True(t, errors.Is(err, ErrMalformedInput), "got %v", err)
	})
}

func TestDecompressNFromReader(t *testing.T) {
	a := []byte("first block, first block, first block")
	b := bytes.Repeat([]byte{0x42}, 300)
	c := []byte("z")
	stream := concat(
		encode(a, encodeOptions{SearchLimit: 64}),
		encode(b, encodeOptions{SearchLimit: 64}),
		encode(c, encodeOptions{SearchLimit: 64}),
	)

	blocks, consumed, err := DecompressNFromReader(bytes.NewReader(stream), []int{len(a), len(b), len(c)}, nil)
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	assert.Equal(t, a, blocks[0])
	assert.Equal(t, b, blocks[1])
	assert.Equal(t, c, blocks[2])
	assert.Equal(t, int64(len(stream)), consumed)

	_, _, err = DecompressNFromReader(bytes.NewReader(stream), []int{len(a), len(b), len(c), 1}, nil)
	assert.True(t, errors.Is(err, ErrShortOutput), "got %v", err)

	_, _, err = DecompressNFromReader(nil, []int{1}, nil)
	assert.ErrorIs(t, err, ErrNilReader)
}

func TestDecompressUntilEOF(t *testing.T) {
	sizes := []int{10, 200, 33}
	var stream []byte
	var want [][]byte
	for i, n := range sizes {
		block := bytes.Repeat([]byte{byte('a' + i), byte('A' + i)}, n)[:n]
		want = append(want, block)
		stream = append(stream, encode(block, encodeOptions{SearchLimit: MaxDistance})...)
	}

	t.Run("all blocks", func(t *testing.T) {
		next := func(index int) (int, error) { return sizes[index], nil }
		blocks, consumed, err := DecompressUntilEOF(onlyReader{bytes.NewReader(stream)}, next, nil)
		require.NoError(t, err)
		assert.Equal(t, want, blocks)
		assert.Equal(t, int64(len(stream)), consumed)
	})

	t.Run("empty stream", func(t *testing.T) {
		called := false
		next := func(int) (int, error) { called = true; return 0, nil }
		blocks, consumed, err := DecompressUntilEOF(bytes.NewReader(nil), next, nil)
		require.NoError(t, err)
		assert.Empty(t, blocks)
		assert.Zero(t, consumed)
		assert.False(t, called)
	})

	t.Run("provider error", func(t *testing.T) {
		stop := errors.New("unknown size")
		next := func(index int) (int, error) {
			if index == 1 {
				return 0, stop
			}
			return sizes[index], nil
		}
		_, _, err := DecompressUntilEOF(bytes.NewReader(stream), next, nil)
		assert.True(t, errors.Is(err, stop), "got %v", err)
	})

	t.Run("zero size block with input left", func(t *testing.T) {
		calls := 0
		next := func(int) (int, error) { calls++; return 0, nil }
		blocks, consumed, err := DecompressUntilEOF(bytes.NewReader([]byte{0x00, 'a'}), next, nil)
		assert.ErrorIs(t, err, ErrNoProgress)
		assert.Nil(t, blocks)
		assert.Zero(t, consumed)
		assert.Equal(t, 1, calls)
	})

	t.Run("zero size block between blocks", func(t *testing.T) {
		lens := []int{sizes[0], 0}
		next := func(index int) (int, error) { return lens[index], nil }
		_, consumed, err := DecompressUntilEOF(bytes.NewReader(stream), next, nil)
		assert.ErrorIs(t, err, ErrNoProgress)
		assert.Positive(t, consumed)
	})

	t.Run("nil arguments", func(t *testing.T) {
		_, _, err := DecompressUntilEOF(nil, func(int) (int, error) { return 0, nil }, nil)
		assert.ErrorIs(t, err, ErrNilReader)

		_, _, err = DecompressUntilEOF(bytes.NewReader(stream), nil, nil)
		assert.ErrorIs(t, err, ErrNilOutLenProvider)
	})
}

func TestCountingByteReader(t *testing.T) {
	r := &countingByteReader{base: &sliceByteReader{data: []byte{1, 2}}}

	b, ok, err := r.next()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, byte(1), b)

	b, err = r.must(ErrUnexpectedEOF)
	require.NoError(t, err)
	assert.Equal(t, byte(2), b)

	_, ok, err = r.next()
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = r.must(ErrUnexpectedEOF)
	assert.True(t, errors.Is(err, ErrUnexpectedEOF))
	assert.Equal(t, int64(2), r.count)
}
