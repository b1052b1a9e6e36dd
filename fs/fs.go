// Package fs implements the flat file metadata store: a fixed-size inode
// table with no directories, no block allocation, and no durability. The
// kernel's create_file syscall delegates here.
package fs

import (
	"errors"
	"time"
)

// MaxFiles is the inode table capacity.
const MaxFiles = 1024

// ErrCapacityExceeded is returned by Create when no inode slot is free.
var ErrCapacityExceeded = errors.New("fs: inode table full")

// Inode is one file metadata record. The block pointers are tracked for
// interface completeness but never populated: file data storage is out of
// scope.
type Inode struct {
	Number    uint32
	Size      uint32
	Direct    [12]uint32
	Indirect  uint32
	Perm      uint32
	Timestamp uint32
}

// Table is a fixed-capacity inode table.
//
// Historically a slot counted as free while its Size was zero, which made a
// legitimately empty file indistinguishable from a free slot. Occupancy is
// tracked explicitly instead, so a zero-length file keeps its slot; the
// zero-Size convention survives only as the initial state of a fresh inode.
type Table struct {
	clock func() uint32
	used  [MaxFiles]bool
	inode [MaxFiles]Inode
	count int
}

// New creates an empty table. clock supplies inode timestamps; nil selects
// wall-clock seconds.
func New(clock func() uint32) *Table {
	if clock == nil {
		clock = func() uint32 { return uint32(time.Now().Unix()) }
	}
	return &Table{clock: clock}
}

// Create reserves the first free inode slot, initializes it with the given
// permissions and the current timestamp, and returns its inode number.
func (t *Table) Create(perm uint32) (uint32, error) {
	for i := range t.inode {
		if t.used[i] {
			continue
		}
		t.used[i] = true
		t.inode[i] = Inode{
			Number:    uint32(i),
			Perm:      perm,
			Timestamp: t.clock(),
		}
		t.count++
		return uint32(i), nil
	}
	return 0, ErrCapacityExceeded
}

// Inode returns a copy of the inode record, if the slot is in use.
func (t *Table) Inode(n uint32) (Inode, bool) {
	if n >= MaxFiles || !t.used[n] {
		return Inode{}, false
	}
	return t.inode[n], true
}

// Len returns the number of inodes in use.
func (t *Table) Len() int { return t.count }
