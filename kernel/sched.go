package kernel

// CreateProcess allocates a PCB and a stack, assigns the next PID, and
// appends the new process to the ready queue tail.
func (k *Kernel) CreateProcess(entry uintptr) (PID, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.createProcess(entry)
}

func (k *Kernel) createProcess(entry uintptr) (PID, error) {
	pcbPage, err := k.pages.alloc()
	if err != nil {
		return 0, err
	}
	stackPage, err := k.pages.alloc()
	if err != nil {
		// A failed creation must leak nothing.
		_ = k.pages.release(pcbPage)
		return 0, err
	}
	pid, err := k.procs.nextPID()
	if err != nil {
		_ = k.pages.release(stackPage)
		_ = k.pages.release(pcbPage)
		return 0, err
	}

	p := &PCB{
		pid:   pid,
		state: Ready,
		entry: entry,
		pc:    entry,
		// The stack grows downward from the top of its page.
		sp:    stackPage.Addr() + PageSize,
		page:  pcbPage,
		stack: stackPage,
	}
	if !k.ready.push(p) {
		// Unreachable while maxProcs >= NumPages/2, but the ring reports
		// overflow rather than dropping a PCB.
		_ = k.pages.release(stackPage)
		_ = k.pages.release(pcbPage)
		return 0, ErrOutOfMemory
	}
	return pid, nil
}

// Tick runs one scheduling decision. It is invoked from interrupt context
// (the timer vector) and is serialized by the kernel lock; it never reenters
// itself.
//
// Policy is plain round robin: a running process is demoted to the ready
// tail, then the ready head becomes current. With no contenders this is an
// idle no-op. A sole process is requeued and immediately reselected, which
// is wasteful but correct and invisible outside the locked section.
func (k *Kernel) Tick() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.tick()
}

func (k *Kernel) tick() {
	if cur := k.current; cur != nil {
		if cur.state == Running {
			_ = cur.transition(Ready)
			k.ready.push(cur)
		}
		// A Blocked process belongs to a future I/O wait list; a Terminated
		// one keeps its pages (no reclamation is defined). Neither stays in
		// the current slot.
		k.current = nil
	}
	next, ok := k.ready.pop()
	if !ok {
		return
	}
	_ = next.transition(Running)
	k.current = next
}
