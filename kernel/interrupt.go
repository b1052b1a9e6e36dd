package kernel

import "errors"

// Interrupt vectors recognized by the router.
const (
	// VecTimer is IRQ0 after the conventional PIC remap.
	VecTimer = 32
	// VecSyscall is the software interrupt vector (0x80).
	VecSyscall = 128
)

// TrapFrame models the register state the platform trap glue saves on entry:
// the syscall number and argument on the way in, the result and errno on the
// way out.
type TrapFrame struct {
	Num Syscall
	Arg uint64
	Ret uint64
	Err Errno
}

// Route delivers one interrupt. The timer vector drives the scheduler, the
// syscall vector goes through Dispatch with the result written back into the
// frame, and every other vector is ignored: hardware may raise spurious or
// unrecognized vectors, and that is not an error.
func (k *Kernel) Route(vector int, frame *TrapFrame) {
	switch vector {
	case VecTimer:
		k.Tick()
	case VecSyscall:
		if frame == nil {
			return
		}
		ret, err := k.Dispatch(frame.Num, frame.Arg)
		frame.Ret = ret
		frame.Err = errnoOf(err)
	}
}

// errnoOf flattens a kernel error into its ABI errno.
func errnoOf(err error) Errno {
	if err == nil {
		return EOK
	}
	var ke *Error
	if errors.As(err, &ke) {
		return ke.Code
	}
	return EINVAL
}
