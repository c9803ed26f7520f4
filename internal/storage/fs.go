// Package storage implements the bounded block filesystem each window
// owns. Files live in fixed-size blocks on a blockdev.RAMDisk; the
// directory holds at most MaxFiles short-named entries. There is no
// delete: the workspace only ever creates, overwrites, and reads.
package storage

import (
	"errors"

	"github.com/GriffinCanCode/QuadDesk/internal/blockdev"
)

const (
	// MaxFiles is the directory capacity.
	MaxFiles = 30
	// MaxFilenameLen is the longest allowed filename, in bytes.
	MaxFilenameLen = 10
	// MaxFileBlocks is the largest number of blocks one file may use.
	MaxFileBlocks = 64
	// MaxFileBytes is the largest file content size.
	MaxFileBytes = MaxFileBlocks * blockdev.BlockSize
	// MaxOpen is the number of simultaneously open handles.
	MaxOpen = 16
)

var (
	ErrDirectoryFull = errors.New("storage: directory full")
	ErrInvalidName   = errors.New("storage: empty filename")
	ErrNameTooLong   = errors.New("storage: filename too long")
	ErrFileTooLarge  = errors.New("storage: file too large")
	ErrNotFound      = errors.New("storage: file not found")
	ErrTooManyOpen   = errors.New("storage: too many open files")
	ErrBadHandle     = errors.New("storage: bad file handle")
	ErrDiskFull      = errors.New("storage: no free blocks")
)

type dirEntry struct {
	used    bool
	name    string
	size    int
	nblocks int
	blocks  [MaxFileBlocks]int
}

type openFile struct {
	used   bool
	entry  int
	offset int
	write  bool
}

// FileSystem is one window's private filesystem instance.
type FileSystem struct {
	disk *blockdev.RAMDisk
	dir  [MaxFiles]dirEntry
	used [blockdev.NumBlocks]bool
	open [MaxOpen]openFile
}

// New creates an empty filesystem on disk. Block 0 is reserved.
func New(disk *blockdev.RAMDisk) *FileSystem {
	fs := &FileSystem{disk: disk}
	fs.used[0] = true
	return fs
}

// OpenCreate opens name for writing, creating it if needed and
// truncating any existing content. Returns a handle for Write.
func (fs *FileSystem) OpenCreate(name string) (int, error) {
	if name == "" {
		return 0, ErrInvalidName
	}
	if len(name) > MaxFilenameLen {
		return 0, ErrNameTooLong
	}
	idx := fs.findEntry(name)
	if idx < 0 {
		idx = fs.freeEntry()
		if idx < 0 {
			return 0, ErrDirectoryFull
		}
		fs.dir[idx] = dirEntry{used: true, name: name}
	} else {
		fs.truncate(idx)
	}
	return fs.allocHandle(idx, true)
}

// OpenRead opens an existing file for reading from the start.
func (fs *FileSystem) OpenRead(name string) (int, error) {
	idx := fs.findEntry(name)
	if idx < 0 {
		return 0, ErrNotFound
	}
	return fs.allocHandle(idx, false)
}

// Write appends data to the file behind a write handle.
func (fs *FileSystem) Write(fd int, data []byte) error {
	h, err := fs.handle(fd)
	if err != nil {
		return err
	}
	if !h.write {
		return ErrBadHandle
	}
	e := &fs.dir[h.entry]
	if e.size+len(data) > MaxFileBytes {
		return ErrFileTooLarge
	}
	for len(data) > 0 {
		off := e.size % blockdev.BlockSize
		var blk int
		if off == 0 {
			blk, err = fs.allocBlock()
			if err != nil {
				return err
			}
			e.blocks[e.nblocks] = blk
			e.nblocks++
		} else {
			blk = e.blocks[e.nblocks-1]
		}
		var buf [blockdev.BlockSize]byte
		if err := fs.disk.ReadBlock(blk, buf[:]); err != nil {
			return err
		}
		n := copy(buf[off:], data)
		if err := fs.disk.WriteBlock(blk, buf[:]); err != nil {
			return err
		}
		e.size += n
		data = data[n:]
	}
	return nil
}

// Read copies file content from the handle's position into buf and
// advances the position. Returns 0 at end of file.
func (fs *FileSystem) Read(fd int, buf []byte) (int, error) {
	h, err := fs.handle(fd)
	if err != nil {
		return 0, err
	}
	if h.write {
		return 0, ErrBadHandle
	}
	e := &fs.dir[h.entry]
	total := 0
	for len(buf) > 0 && h.offset < e.size {
		blk := e.blocks[h.offset/blockdev.BlockSize]
		off := h.offset % blockdev.BlockSize
		avail := blockdev.BlockSize - off
		if left := e.size - h.offset; left < avail {
			avail = left
		}
		if len(buf) < avail {
			avail = len(buf)
		}
		var block [blockdev.BlockSize]byte
		if err := fs.disk.ReadBlock(blk, block[:]); err != nil {
			return total, err
		}
		copy(buf[:avail], block[off:off+avail])
		buf = buf[avail:]
		h.offset += avail
		total += avail
	}
	return total, nil
}

// Close releases a handle.
func (fs *FileSystem) Close(fd int) error {
	if fd < 0 || fd >= MaxOpen || !fs.open[fd].used {
		return ErrBadHandle
	}
	fs.open[fd] = openFile{}
	return nil
}

// ListDirectory returns the filenames in stable slot order.
func (fs *FileSystem) ListDirectory() ([]string, error) {
	names := make([]string, 0, MaxFiles)
	for i := range fs.dir {
		if fs.dir[i].used {
			names = append(names, fs.dir[i].name)
		}
	}
	return names, nil
}

func (fs *FileSystem) findEntry(name string) int {
	for i := range fs.dir {
		if fs.dir[i].used && fs.dir[i].name == name {
			return i
		}
	}
	return -1
}

func (fs *FileSystem) freeEntry() int {
	for i := range fs.dir {
		if !fs.dir[i].used {
			return i
		}
	}
	return -1
}

func (fs *FileSystem) truncate(idx int) {
	e := &fs.dir[idx]
	for i := 0; i < e.nblocks; i++ {
		fs.used[e.blocks[i]] = false
	}
	e.size = 0
	e.nblocks = 0
}

func (fs *FileSystem) allocBlock() (int, error) {
	for i := 1; i < blockdev.NumBlocks; i++ {
		if !fs.used[i] {
			fs.used[i] = true
			return i, nil
		}
	}
	return 0, ErrDiskFull
}

func (fs *FileSystem) allocHandle(entry int, write bool) (int, error) {
	for fd := range fs.open {
		if !fs.open[fd].used {
			fs.open[fd] = openFile{used: true, entry: entry, write: write}
			return fd, nil
		}
	}
	return 0, ErrTooManyOpen
}

func (fs *FileSystem) handle(fd int) (*openFile, error) {
	if fd < 0 || fd >= MaxOpen || !fs.open[fd].used {
		return nil, ErrBadHandle
	}
	return &fs.open[fd], nil
}
