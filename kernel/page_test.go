package kernel

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageAddr(t *testing.T) {
	assert.Equal(t, uintptr(0), Page(0).Addr())
	assert.Equal(t, uintptr(3*PageSize), Page(3).Addr())
	assert.True(t, Page(NumPages-1).Valid())
	assert.False(t, Page(NumPages).Valid())
	assert.False(t, InvalidPage.Valid())
}

func TestAllocExhaustion(t *testing.T) {
	k := New(nil)

	var last Page
	for i := 0; i < NumPages; i++ {
		p, err := k.AllocPage()
		require.NoError(t, err, "allocation %d", i)
		require.Equal(t, Page(i), p, "first-fit must hand out pages in index order")
		last = p
	}

	_, err := k.AllocPage()
	require.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, 0, k.FreePages())

	// Freeing one page allows exactly one more allocation.
	require.NoError(t, k.FreePage(last.Addr()))
	p, err := k.AllocPage()
	require.NoError(t, err)
	assert.Equal(t, last, p)
	_, err = k.AllocPage()
	require.ErrorIs(t, err, ErrOutOfMemory)
}

func TestFreePageOutOfRange(t *testing.T) {
	k := New(nil)
	err := k.FreePage(uintptr(NumPages * PageSize))
	require.ErrorIs(t, err, ErrOutOfRange)
	// An address far past the pool must not alias back into it.
	err = k.FreePage(uintptr(NumPages*PageSize)*4096 + 17)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestFreePageDoubleFree(t *testing.T) {
	k := New(nil)
	p, err := k.AllocPage()
	require.NoError(t, err)

	require.NoError(t, k.FreePage(p.Addr()))
	err = k.FreePage(p.Addr())
	require.ErrorIs(t, err, ErrDoubleFree)
	// A never-allocated page is also "already free".
	err = k.FreePage(Page(7).Addr() + 123)
	require.ErrorIs(t, err, ErrDoubleFree)
}

// TestNoDoubleOwnership runs a randomized alloc/free sequence against a
// shadow ownership model: at every point each page index has at most one
// owner, and the allocator agrees with the model about which pages are free.
func TestNoDoubleOwnership(t *testing.T) {
	k := New(nil)
	rng := rand.New(rand.NewSource(1))

	owned := make(map[Page]bool)
	var order []Page

	for step := 0; step < 10_000; step++ {
		if rng.Intn(2) == 0 {
			p, err := k.AllocPage()
			if errors.Is(err, ErrOutOfMemory) {
				require.Len(t, owned, NumPages)
				continue
			}
			require.NoError(t, err)
			require.False(t, owned[p], "step %d: page %d handed out twice", step, p)
			owned[p] = true
			order = append(order, p)
		} else {
			if len(order) == 0 {
				// Nothing owned: any free must report a double free.
				err := k.FreePage(Page(rng.Intn(NumPages)).Addr())
				require.ErrorIs(t, err, ErrDoubleFree)
				continue
			}
			i := rng.Intn(len(order))
			p := order[i]
			require.NoError(t, k.FreePage(p.Addr()))
			delete(owned, p)
			order[i] = order[len(order)-1]
			order = order[:len(order)-1]
		}
		require.Equal(t, NumPages-len(owned), k.FreePages(), "step %d", step)
	}
}
