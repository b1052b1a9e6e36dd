// Package kernel implements a minimal single-CPU kernel core: a page-granular
// physical memory allocator, a round-robin process scheduler, and the syscall
// and interrupt dispatch that tie them together.
package kernel

import "sync"

// FileStore is the file metadata collaborator the syscall layer delegates
// file creation to.
type FileStore interface {
	Create(perm uint32) (uint32, error)
}

// Kernel owns all kernel state: the page pool, the PID counter, the ready
// queue, and the current-process slot.
//
// Every entry point takes k.mu for its full duration. On real hardware the
// same discipline is "interrupts disabled during tick and dispatch"; here the
// timer goroutine and the monitor both call in, so the lock is the explicit
// form of that invariant rather than an incidental detail.
type Kernel struct {
	mu sync.Mutex

	pages pageTable
	procs processTable

	current *PCB
	ready   readyQueue

	files FileStore
}

// New creates a kernel with every page free and no processes. Construction
// is the one-time init: re-initializing a live kernel in place would leak
// every outstanding allocation, so no such method exists. Make a fresh
// Kernel instead.
func New(files FileStore) *Kernel {
	k := &Kernel{files: files}
	k.pages.init()
	k.procs.init()
	return k
}

// AllocPage reserves the first free page in index order.
func (k *Kernel) AllocPage() (Page, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.pages.alloc()
}

// FreePage frees the page containing addr. Freeing an address outside the
// pool fails with ERANGE; freeing an already-free page fails with EFREE.
func (k *Kernel) FreePage(addr uintptr) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.pages.releaseAddr(addr)
}

// FreePages returns the number of unallocated pages.
func (k *Kernel) FreePages() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.pages.avail
}

// ProcInfo is a point-in-time view of one process.
type ProcInfo struct {
	PID   PID
	State State
}

// Snapshot is a point-in-time view of scheduler and allocator state.
type Snapshot struct {
	Current   *ProcInfo
	Ready     []ProcInfo
	FreePages int
}

// Snapshot captures the current process, the ready queue in FIFO order, and
// the free-page count.
func (k *Kernel) Snapshot() Snapshot {
	k.mu.Lock()
	defer k.mu.Unlock()

	var s Snapshot
	if k.current != nil {
		s.Current = &ProcInfo{PID: k.current.pid, State: k.current.state}
	}
	k.ready.each(func(p *PCB) {
		s.Ready = append(s.Ready, ProcInfo{PID: p.pid, State: p.state})
	})
	s.FreePages = k.pages.avail
	return s
}
