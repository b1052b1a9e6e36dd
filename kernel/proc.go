package kernel

// PID identifies a process. PID 0 is reserved and never assigned.
type PID uint32

// State is the scheduling state of a process.
type State uint8

const (
	Ready State = iota
	Running
	Blocked
	Terminated
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Blocked:
		return "blocked"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// canBecome reports whether the transition s -> to is legal. Terminated is
// terminal; a blocked process must be unblocked to Ready before it can run.
func (s State) canBecome(to State) bool {
	switch s {
	case Ready:
		return to == Running
	case Running:
		return to == Ready || to == Blocked || to == Terminated
	case Blocked:
		return to == Ready
	default:
		return false
	}
}

// PCB is the per-process scheduling record. It is backed by one page for the
// record itself and one page for the kernel stack; both stay owned by the
// PCB for its entire life (no reclamation is defined for terminated
// processes).
type PCB struct {
	pid   PID
	state State

	entry uintptr
	sp    uintptr
	pc    uintptr

	page  Page // backing page for the PCB record
	stack Page // backing page for the kernel stack
}

// transition moves the PCB to a new state, rejecting illegal moves.
func (p *PCB) transition(to State) error {
	if !p.state.canBecome(to) {
		return ErrBadTransition
	}
	p.state = to
	return nil
}

// processTable hands out PIDs: strictly increasing from 1, never reused,
// even after termination. When the 32-bit counter would wrap, creation
// fails with EPIDS rather than aliasing a stale PID.
type processTable struct {
	next PID
}

func (t *processTable) init() { t.next = 1 }

func (t *processTable) nextPID() (PID, error) {
	if t.next == 0 {
		return 0, ErrPIDExhausted
	}
	pid := t.next
	t.next++
	return pid, nil
}
