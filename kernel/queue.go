package kernel

// maxProcs bounds the ready queue. Every live process owns two pages, so the
// pool caps the number of live processes at NumPages/2 and the ring can
// never overflow before the allocator runs dry.
const maxProcs = NumPages / 2

// readyQueue is a fixed-capacity FIFO ring of runnable processes with O(1)
// push and pop. head and tail grow monotonically; maxProcs divides the
// uint16 wraparound, so head-tail is always the queue length.
type readyQueue struct {
	head  uint16
	tail  uint16
	slots [maxProcs]*PCB
}

func (q *readyQueue) push(p *PCB) bool {
	if q.head-q.tail >= maxProcs {
		return false
	}
	q.slots[q.head%maxProcs] = p
	q.head++
	return true
}

func (q *readyQueue) pop() (*PCB, bool) {
	if q.tail == q.head {
		return nil, false
	}
	p := q.slots[q.tail%maxProcs]
	q.slots[q.tail%maxProcs] = nil
	q.tail++
	return p, true
}

func (q *readyQueue) len() int { return int(q.head - q.tail) }

// each visits queued PCBs in FIFO order.
func (q *readyQueue) each(fn func(*PCB)) {
	for i := q.tail; i != q.head; i++ {
		fn(q.slots[i%maxProcs])
	}
}
