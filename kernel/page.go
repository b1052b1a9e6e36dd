package kernel

const (
	// PageSize is the physical memory allocation unit.
	PageSize = 4096
	// PageShift is log2(PageSize).
	PageShift = 12
	// NumPages is the size of the managed pool (4 MiB total).
	NumPages = 1024
)

// Page is an opaque physical page index in [0, NumPages).
type Page uint32

// InvalidPage is returned when no page could be reserved.
const InvalidPage = Page(^uint32(0))

// Valid reports whether p refers to a page inside the managed pool.
func (p Page) Valid() bool { return p < NumPages }

// Addr returns the physical base address of the page. This is the only
// page-to-address conversion; address 0 is page 0 and is a valid result.
func (p Page) Addr() uintptr { return uintptr(p) << PageShift }

// pageTable tracks ownership of the fixed physical pool, one flag per page.
// A page is free XOR owned by exactly one consumer; there is no reference
// counting.
type pageTable struct {
	free  [NumPages]bool
	avail int
}

// init marks the whole pool free. It must run exactly once, before any
// allocation: running it again would leak every outstanding allocation.
func (pt *pageTable) init() {
	for i := range pt.free {
		pt.free[i] = true
	}
	pt.avail = NumPages
}

// alloc reserves the first free page in index order.
func (pt *pageTable) alloc() (Page, error) {
	for i := range pt.free {
		if !pt.free[i] {
			continue
		}
		pt.free[i] = false
		pt.avail--
		return Page(i), nil
	}
	return InvalidPage, ErrOutOfMemory
}

// release frees a page by index.
func (pt *pageTable) release(p Page) error {
	if !p.Valid() {
		return ErrOutOfRange
	}
	if pt.free[p] {
		return ErrDoubleFree
	}
	pt.free[p] = true
	pt.avail++
	return nil
}

// releaseAddr frees the page containing addr. The bound is checked before
// the index is narrowed, so addresses past the pool cannot alias into it.
func (pt *pageTable) releaseAddr(addr uintptr) error {
	idx := addr / PageSize
	if idx >= NumPages {
		return ErrOutOfRange
	}
	return pt.release(Page(idx))
}
