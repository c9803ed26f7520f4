package blockdev

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWriteBlock(t *testing.T) {
	d := New()
	data := bytes.Repeat([]byte{0xAB}, BlockSize)
	require.NoError(t, d.WriteBlock(7, data))

	got := make([]byte, BlockSize)
	require.NoError(t, d.ReadBlock(7, got))
	assert.Equal(t, data, got)

	// Neighboring blocks stay zeroed.
	require.NoError(t, d.ReadBlock(8, got))
	assert.Equal(t, make([]byte, BlockSize), got)
}

func TestPartialWriteKeepsTail(t *testing.T) {
	d := New()
	require.NoError(t, d.WriteBlock(0, bytes.Repeat([]byte{0xFF}, BlockSize)))
	require.NoError(t, d.WriteBlock(0, []byte{1, 2, 3}))

	got := make([]byte, BlockSize)
	require.NoError(t, d.ReadBlock(0, got))
	assert.Equal(t, []byte{1, 2, 3}, got[:3])
	assert.Equal(t, byte(0xFF), got[3])
}

func TestOutOfRange(t *testing.T) {
	d := New()
	buf := make([]byte, BlockSize)
	assert.ErrorIs(t, d.ReadBlock(-1, buf), ErrOutOfRange)
	assert.ErrorIs(t, d.ReadBlock(NumBlocks, buf), ErrOutOfRange)
	assert.ErrorIs(t, d.WriteBlock(NumBlocks, buf), ErrOutOfRange)
	assert.ErrorIs(t, d.WriteBlock(0, make([]byte, BlockSize+1)), ErrOutOfRange)
}
