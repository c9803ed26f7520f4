// Package blockdev provides the RAM-backed block device the per-window
// filesystems sit on. Contents live exactly as long as the process.
package blockdev

import "errors"

const (
	// BlockSize is the number of bytes per block.
	BlockSize = 256
	// NumBlocks is the number of blocks per device.
	NumBlocks = 255
)

// ErrOutOfRange is returned for block numbers outside the device.
var ErrOutOfRange = errors.New("blockdev: block number out of range")

// RAMDisk is a volatile fixed-geometry block device.
type RAMDisk struct {
	blocks [NumBlocks][BlockSize]byte
}

// New returns a zeroed RAMDisk.
func New() *RAMDisk {
	return &RAMDisk{}
}

// ReadBlock copies block n into buf. buf shorter than BlockSize reads a
// prefix; longer is an error.
func (d *RAMDisk) ReadBlock(n int, buf []byte) error {
	if n < 0 || n >= NumBlocks {
		return ErrOutOfRange
	}
	if len(buf) > BlockSize {
		return ErrOutOfRange
	}
	copy(buf, d.blocks[n][:len(buf)])
	return nil
}

// WriteBlock copies buf into block n. buf shorter than BlockSize leaves
// the tail of the block untouched.
func (d *RAMDisk) WriteBlock(n int, buf []byte) error {
	if n < 0 || n >= NumBlocks {
		return ErrOutOfRange
	}
	if len(buf) > BlockSize {
		return ErrOutOfRange
	}
	copy(d.blocks[n][:len(buf)], buf)
	return nil
}
